// Package config handles configuration for the client: defaults, optional
// JSON overlay, then command-line flags, later sources winning.
package config

import "time"

// Config holds runtime settings for the taskpurse CLI.
type Config struct {
	ServerEndpointAddr  string
	LocalDBPath         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.LocalDBPath = "taskpurse.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
