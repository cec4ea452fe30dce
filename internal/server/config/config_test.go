package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/vivault/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.EndpointAddrGRPC)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "vault.db", c.DatabaseDSN)
	assert.Empty(t, c.SecretKey)
	assert.Equal(t, time.Hour, c.SessionTTL)
	assert.Equal(t, cryptox.AlgorithmPBKDF2, c.KDFAlgorithm)
	assert.Zero(t, c.KDFIterations)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"vaultd"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}
