// Package config loads tmc-cli settings from config.toml and TMC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tomlrepo "github.com/drcDRt/tmc-cli/internal/adapters/repo/toml"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TMC"

	AccountsPathKey   = tomlrepo.AccountsPathKey
	SecretsDirKey     = "secrets.dir"
	BackendTimeoutKey = "backend.timeout"
	ProbeURLKey       = "backend.probe_url"
	ClientIDKey       = "backend.client_id"
	ClientSecretKey   = "backend.client_secret"
	SecretsBackendKey = "secrets.backend"
	LogLevelKey       = "log.level"

	// SecretsBackendAuto tries pass first and falls back to files.
	SecretsBackendAuto = "auto"
	SecretsBackendPass = "pass"
	SecretsBackendFile = "file"

	configDirName  = "tmc-cli"
	configFileName = "config"
	configFileType = "toml"
)

// Config is the resolved configuration of one invocation. Viper is kept so
// adapters can read their own keys.
type Config struct {
	Viper          *viper.Viper
	AccountsPath   string
	SecretsDir     string
	BackendTimeout time.Duration
	ProbeURL       string
	ClientID       string
	ClientSecret   string
	SecretsBackend string
	LogLevel       string
}

// Load reads config.toml from dir, or from the user config directory when
// dir is empty. A missing file is not an error.
func Load(dir string) (Config, error) {
	if dir == "" {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config directory: %w", err)
		}
		dir = filepath.Join(userConfigDir, configDirName)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	// Nested keys are only resolved from the environment once bound.
	for _, key := range []string{AccountsPathKey, SecretsDirKey, BackendTimeoutKey, ProbeURLKey, ClientIDKey, ClientSecretKey, SecretsBackendKey, LogLevelKey} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	timeout := v.GetDuration(BackendTimeoutKey)
	if timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %q", BackendTimeoutKey, v.GetString(BackendTimeoutKey))
	}

	switch backend := strings.ToLower(v.GetString(SecretsBackendKey)); backend {
	case SecretsBackendAuto, SecretsBackendPass, SecretsBackendFile:
	default:
		return Config{}, fmt.Errorf("unsupported %s %q", SecretsBackendKey, backend)
	}

	return Config{
		Viper:          v,
		AccountsPath:   v.GetString(AccountsPathKey),
		SecretsDir:     v.GetString(SecretsDirKey),
		BackendTimeout: timeout,
		ProbeURL:       v.GetString(ProbeURLKey),
		ClientID:       v.GetString(ClientIDKey),
		ClientSecret:   v.GetString(ClientSecretKey),
		SecretsBackend: strings.ToLower(v.GetString(SecretsBackendKey)),
		LogLevel:       v.GetString(LogLevelKey),
	}, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(AccountsPathKey, filepath.Join(dir, "accounts.toml"))
	v.SetDefault(SecretsDirKey, filepath.Join(dir, "secrets"))
	v.SetDefault(BackendTimeoutKey, "30s")
	v.SetDefault(ProbeURLKey, "https://tmc.mooc.fi")
	v.SetDefault(SecretsBackendKey, SecretsBackendAuto)
	v.SetDefault(LogLevelKey, "warn")
}
