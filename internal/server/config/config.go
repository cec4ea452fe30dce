// Package config handles configuration for vaultd, including defaults,
// JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/vivault/internal/cryptox"
)

// Config holds runtime settings for the vault host process.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint. Keep it on loopback.
//   - DatabaseDriver: "sqlite" (default) or "postgres".
//   - DatabaseDSN: file path for SQLite, connection string for PostgreSQL.
//   - SecretKey: HMAC secret for caller tokens (HS256). Empty disables caller auth.
//   - SessionTTL: how long an unlock stays valid.
//   - KDFAlgorithm / KDFIterations: verifier derivation for newly initialized vaults.
//     Zero iterations selects the algorithm default.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDriver   string
	DatabaseDSN      string
	SecretKey        string
	SessionTTL       time.Duration
	KDFAlgorithm     string
	KDFIterations    uint32
	LogLevel         string
}

// LoadDefaults populates Config with local single-user defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "127.0.0.1:50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "vault.db"
	c.SecretKey = ""
	c.SessionTTL = 60 * time.Minute
	c.KDFAlgorithm = cryptox.AlgorithmPBKDF2
	c.KDFIterations = 0
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
