package config

import "time"

// Config holds runtime settings for vaultctl.
//
// Fields:
//   - ServerEndpointAddr: host:port of the vaultd gRPC endpoint.
//   - SecretKey: shared HS256 secret; empty sends no caller token.
//   - RequestTimeout: deadline applied to each attempt.
//   - RetryAttempts: total attempts when vaultd is unreachable.
type Config struct {
	ServerEndpointAddr string
	SecretKey          string
	RequestTimeout     time.Duration
	RetryAttempts      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SecretKey = ""
	c.RequestTimeout = 5 * time.Second
	c.RetryAttempts = 3
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
