// Package config loads runtime settings for the auth client.
package config

import "time"

// Config holds runtime settings for the auth client.
//
// Fields:
//   - ServerBaseURL: base URL of the identity service.
//   - RequestTimeout: end-to-end bound on every request.
//   - ResetLink: optional emailed reset link; when set, the client starts
//     on the change-password screen with the link's token.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	ResetLink      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://api-trivago.gangoo.eu"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
