package main

import (
	"log"
	"os"

	"graphite/internal/bootstrap"
	"graphite/internal/config"
	"graphite/wrapper"
)

const settingsEnv = "GRAPHITE_SETTINGS"

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.FromEnv(settingsEnv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	greeting := cfg.String("greeting", "hello")

	handler := func(req *wrapper.Request) *wrapper.Response {
		name, ok := req.Args().GetFirst("name")
		if !ok {
			name = "world"
		}
		resp := wrapper.NewResponse(greeting + ", " + name + "\n")
		resp.SetContentType("text/plain")
		return resp
	}

	app := bootstrap.New(cfg, handler)
	if err = app.Run(); err != nil {
		log.Fatalf("Service stopped: %s", err)
	}
}
