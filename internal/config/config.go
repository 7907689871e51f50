package config

// Config is the typed settings store handed to the serving layer. It is
// populated once at startup and read-only afterwards; handlers receive
// it by reference, never as a copy.
type Config interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	String(key string, def string) string
	Int(key string, def int) int
	Bool(key string, def bool) bool
}

type config struct {
	values map[string]any
}

func New() Config {
	return &config{values: make(map[string]any)}
}

func (c *config) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

func (c *config) Set(key string, value any) {
	c.values[key] = value
}

func (c *config) String(key string, def string) string {
	if s, ok := c.values[key].(string); ok {
		return s
	}
	return def
}

// Int tolerates the float64 that encoding/json produces for every JSON
// number.
func (c *config) Int(key string, def int) int {
	switch v := c.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

func (c *config) Bool(key string, def bool) bool {
	if b, ok := c.values[key].(bool); ok {
		return b
	}
	return def
}
