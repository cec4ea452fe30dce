package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vivault/internal/flagx"
	"github.com/dmitrijs2005/vivault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "5s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	SecretKey          string         `json:"secret_key"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	RetryAttempts      int            `json:"retry_attempts"`
}

// parseJson overlays Config with values loaded from the file given by -c or
// -config. Missing fields keep their current value. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.RetryAttempts > 0 {
		cfg.RetryAttempts = c.RetryAttempts
	}
}
