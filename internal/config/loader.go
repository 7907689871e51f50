package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	ErrEnvUnset  = fmt.Errorf("environment variable is not set")
	ErrNotObject = fmt.Errorf("configuration root is not a JSON object")
)

// FromEnv loads the configuration from the JSON file named by the given
// environment variable. A .env file in the working directory is applied
// first when present. Every failure here happens before any request is
// served; the caller decides whether it is fatal.
func FromEnv(variable string) (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	path := os.Getenv(variable)
	if path == "" {
		return nil, fmt.Errorf("%w: %s", ErrEnvUnset, variable)
	}

	return FromJSONFile(path)
}

// FromJSONFile reads a JSON object from path into a fresh Config.
func FromJSONFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var root any
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	object, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, path)
	}

	cfg := &config{values: make(map[string]any, len(object))}
	for key, value := range object {
		cfg.values[key] = value
	}
	return cfg, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}
