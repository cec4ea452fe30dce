package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vivault/internal/flagx"
	"github.com/dmitrijs2005/vivault/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "1h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	SessionTTL       timex.Duration `json:"session_ttl"`
	KDFAlgorithm     string         `json:"kdf_algorithm"`
	KDFIterations    uint32         `json:"kdf_iterations"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c or -config. Fields
// missing from the file keep their current value. Unreadable or invalid
// files panic, as with bad flags.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.KDFAlgorithm, c.KDFAlgorithm)
	setString(&config.LogLevel, c.LogLevel)

	if c.SessionTTL.Duration > 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.KDFIterations > 0 {
		config.KDFIterations = c.KDFIterations
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
