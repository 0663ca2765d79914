package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "accounts.toml"), cfg.AccountsPath)
	assert.Equal(t, filepath.Join(dir, "secrets"), cfg.SecretsDir)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "https://tmc.mooc.fi", cfg.ProbeURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SecretsBackendAuto, cfg.SecretsBackend)
	assert.Equal(t, cfg.AccountsPath, cfg.Viper.GetString(AccountsPathKey))
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[accounts]
path = "/tmp/tmc/accounts.toml"

[backend]
timeout = "5s"
probe_url = "http://probe.test"
client_id = "cli"
client_secret = "shh"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tmc/accounts.toml", cfg.AccountsPath)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "http://probe.test", cfg.ProbeURL)
	assert.Equal(t, "cli", cfg.ClientID)
	assert.Equal(t, "shh", cfg.ClientSecret)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nlevel = \"debug\"\n"), 0o600))
	t.Setenv("TMC_LOG_LEVEL", "error")
	t.Setenv("TMC_BACKEND_TIMEOUT", "2s")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.BackendTimeout)
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMC_BACKEND_TIMEOUT", "0s")

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, BackendTimeoutKey)
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[backend\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}

func TestLoadRejectsUnknownSecretsBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMC_SECRETS_BACKEND", "keychain")

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported secrets.backend")
}
