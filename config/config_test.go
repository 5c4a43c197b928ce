package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SDES_PLAINTEXT", "SDES_KEY", "SDES_TEXT", "SDES_PARALLEL", "SDES_WORKERS", "SDES_OUTPUT_DIR", "SDES_DEBUG"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "10110101", cfg.Defaults.Plaintext)
	assert.Equal(t, "1010000010", cfg.Defaults.Key)
	assert.Equal(t, "Hello!", cfg.Defaults.Text)
	assert.True(t, cfg.Search.Parallel)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SDES_KEY", "0000011111")
	t.Setenv("SDES_PARALLEL", "false")
	t.Setenv("SDES_WORKERS", "3")
	t.Setenv("SDES_OUTPUT_DIR", "/tmp/sdes")
	t.Setenv("SDES_DEBUG", "1")

	cfg := Load()
	assert.Equal(t, "0000011111", cfg.Defaults.Key)
	assert.False(t, cfg.Search.Parallel)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, "/tmp/sdes", cfg.Output.Dir)
	assert.True(t, cfg.Debug)
	assert.Contains(t, cfg.String(), "workers=3")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SDES_WORKERS", "many")
	t.Setenv("SDES_PARALLEL", "maybe")

	cfg := Load()
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.True(t, cfg.Search.Parallel)
}
