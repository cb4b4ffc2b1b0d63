// Package config holds process-level bootstrap settings — the knobs
// that are fixed for the lifetime of the process rather than supplied
// per request.
package config

import "flag"

// Config holds the settings resolved once at process startup.
type Config struct {
	Host string
	Port int
}

// Default returns a Config with sensible local-development defaults.
func Default() *Config {
	return &Config{
		Host: "127.0.0.1",
		Port: 13370,
	}
}

// Load parses host/port flags on top of Default(), leaving any flag the
// caller omits at its default value.
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("carnav-core", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Host to bind to (use 0.0.0.0 to allow remote access)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
