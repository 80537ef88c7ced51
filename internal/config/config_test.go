package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("CFGTEST_DEFAULTS_")
	require.NoError(t, err)

	assert.Equal(t, uint64(60), cfg.Ceiling)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKOFF_CEILING", "300")
	t.Setenv("BACKOFF_LOG_LEVEL", "debug")

	cfg, err := Load("BACKOFF_")
	require.NoError(t, err)

	assert.Equal(t, uint64(300), cfg.Ceiling)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadZeroCeiling(t *testing.T) {
	t.Setenv("ZERO_CEILING", "0")

	cfg, err := Load("ZERO_")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Ceiling)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative ceiling", "BAD_CEILING", "-1"},
		{"non-numeric ceiling", "BAD_CEILING", "soon"},
		{"unknown log level", "BAD_LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load("BAD_")
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_CEILING=22\nDOTENV_LOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DOTENV_CEILING")
		os.Unsetenv("DOTENV_LOG_LEVEL")
	})

	cfg, err := Load("DOTENV_", path)
	require.NoError(t, err)

	assert.Equal(t, uint64(22), cfg.Ceiling)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEEP_CEILING=22\n"), 0o600))
	t.Setenv("KEEP_CEILING", "6")

	cfg, err := Load("KEEP_", path)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), cfg.Ceiling)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load("MISSING_", filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
