package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAddr, EnvStoreURL, EnvSeed, EnvLogLevel, EnvLogFormat, EnvShutdownTimeout} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.StoreURL, "commands pick their own store when none is configured")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	data := "BIASLAB_ADDR=127.0.0.1:9000\nBIASLAB_SEED=7\nBIASLAB_STORE_URL=sqlite:///tmp/plans.db\nBIASLAB_SHUTDOWN_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, uint32(7), cfg.Seed)
	assert.Equal(t, "sqlite:///tmp/plans.db", cfg.StoreURL)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIASLAB_SEED=7\nBIASLAB_LOG_FORMAT=json\n"), 0o600))
	t.Setenv(EnvSeed, "99")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(99), cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "negative seed", key: EnvSeed, value: "-1", wantErr: EnvSeed},
		{name: "seed overflows uint32", key: EnvSeed, value: "4294967296", wantErr: EnvSeed},
		{name: "seed not a number", key: EnvSeed, value: "abc", wantErr: EnvSeed},
		{name: "timeout without unit", key: EnvShutdownTimeout, value: "10", wantErr: EnvShutdownTimeout},
		{name: "zero timeout", key: EnvShutdownTimeout, value: "0s", wantErr: EnvShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIASLAB_SEED='unterminated\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
