package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/drcDRt/tmc-cli/internal/adapters/backend/tmcapi"
	tomlrepo "github.com/drcDRt/tmc-cli/internal/adapters/repo/toml"
	chainstore "github.com/drcDRt/tmc-cli/internal/adapters/secrets/chain"
	filestore "github.com/drcDRt/tmc-cli/internal/adapters/secrets/file"
	passstore "github.com/drcDRt/tmc-cli/internal/adapters/secrets/pass"
	"github.com/drcDRt/tmc-cli/internal/adapters/termio"
	"github.com/drcDRt/tmc-cli/internal/commands"
	"github.com/drcDRt/tmc-cli/internal/config"
	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/gateway"
	"github.com/drcDRt/tmc-cli/internal/ports"
)

type app struct {
	dispatcher *dispatch.Dispatcher
}

func wireApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) (*app, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	secretStore, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	accounts, err := tomlrepo.NewAccountStore(cfg.Viper, secretStore)
	if err != nil {
		return nil, fmt.Errorf("wire account store: %w", err)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	core := &tmcapi.Client{
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		ProbeURL:       cfg.ProbeURL,
		HTTPClient:     &http.Client{Timeout: cfg.BackendTimeout},
		RequestTimeout: cfg.BackendTimeout,
	}

	dispatcher := dispatch.New(dispatch.Deps{
		IO:        termio.NewTerminal(stdin, stdout, stderr),
		Gateway:   gateway.New(core, cfg.BackendTimeout, logger),
		Accounts:  accounts,
		Workspace: tomlrepo.NewWorkspaceStore(workingDir),
		Logger:    logger,
	})
	dispatcher.Register(
		commands.NewLogin(),
		commands.NewLogout(),
		commands.NewAccounts(),
		commands.NewCourses(),
		commands.NewListExercises(),
		commands.NewVersion(version),
	)

	return &app{dispatcher: dispatcher}, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", config.LogLevelKey, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:  parsed,
		Prefix: "tmc",
	}), nil
}

func newSecretStore(cfg config.Config) (ports.SecretStore, error) {
	switch cfg.SecretsBackend {
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.SecretsDir), nil
	case config.SecretsBackendPass:
		return passstore.NewStore(), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	}
}
