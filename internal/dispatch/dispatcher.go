package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	"github.com/drcDRt/tmc-cli/internal/session"
	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1

	msgNoConnection      = "You don't have internet connection currently."
	msgAccountsReadError = "Failed to read the accounts file."
	msgNoAccounts        = `No accounts found. Log in with "tmc login" first.`
	msgUnconfigured      = "Backend is not configured."
	logLevelFlag         = "log-level"
)

type Deps struct {
	IO        ports.IO
	Gateway   ports.Gateway
	Accounts  ports.AccountStore
	Workspace ports.WorkspaceStore
	Logger    *log.Logger
}

type Dispatcher struct {
	deps     Deps
	commands []Command
}

func New(deps Deps) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return &Dispatcher{deps: deps}
}

// Register adds commands in the order they are listed in help output.
func (d *Dispatcher) Register(commands ...Command) {
	d.commands = append(d.commands, commands...)
}

// Run executes one invocation and returns the process exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			d.deps.Logger.Error("recovered from panic", "panic", r)
			d.deps.IO.Println(fmt.Sprintf("Unexpected error: %v", r))
			code = ExitError
		}
	}()

	code = ExitOK
	root := d.newRootCmd(&code)
	root.SetArgs(args)
	root.InitDefaultHelpCmd()

	if isUnknownCommand(root, args) {
		err := fmt.Errorf("%w %q", domain.ErrUnknownCommand, args[0])
		d.deps.Logger.Debug("dispatch failed", "err", err)
		d.deps.IO.Println(fmt.Sprintf("Unknown command %q.", args[0]))
		return ExitError
	}

	if err := root.ExecuteContext(ctx); err != nil {
		d.deps.IO.Println("Error: " + err.Error())
		return ExitError
	}

	return code
}

func (d *Dispatcher) newRootCmd(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "tmc",
		Short:         "TMC command-line client: log in, list courses and exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := cmd.Flags().GetString(logLevelFlag)
			if err != nil {
				return err
			}
			if level == "" {
				return nil
			}

			parsed, err := log.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrUserInput, err)
			}
			d.deps.Logger.SetLevel(parsed)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().String(logLevelFlag, "", "log level (debug, info, warn, error)")

	out := ioWriter{io: d.deps.IO}
	root.SetOut(out)
	root.SetErr(out)

	for _, command := range d.commands {
		root.AddCommand(d.newCobraCmd(command, code))
	}

	return root
}

func (d *Dispatcher) newCobraCmd(command Command, code *int) *cobra.Command {
	fields := command.RequiredFields()

	use := command.Name()
	positional := 0
	for _, field := range fields {
		if !field.Positional {
			continue
		}
		positional++
		if field.Required {
			use += " <" + field.Name + ">"
		} else {
			use += " [" + field.Name + "]"
		}
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: command.Short(),
		Args:  cobra.MaximumNArgs(positional),
		RunE: func(cmd *cobra.Command, positionals []string) error {
			values := Args{}
			for _, field := range fields {
				if field.Positional {
					if len(positionals) > 0 {
						values[field.Name] = strings.TrimSpace(positionals[0])
						positionals = positionals[1:]
					}
					continue
				}

				value, err := cmd.Flags().GetString(field.Flag)
				if err != nil {
					return err
				}
				values[field.Name] = strings.TrimSpace(value)
			}

			*code = d.dispatch(cmd.Context(), command, values)
			return nil
		},
	}

	for _, field := range fields {
		if field.Positional {
			continue
		}
		cmd.Flags().StringP(field.Flag, field.Shorthand, "", field.Usage)
	}

	return cmd
}

func (d *Dispatcher) dispatch(ctx context.Context, command Command, args Args) int {
	logger := d.deps.Logger.With("command", command.Name())
	workspace := d.loadWorkspace(ctx, logger)
	deps := session.Deps{
		IO:        d.deps.IO,
		Gateway:   d.deps.Gateway,
		Accounts:  d.deps.Accounts,
		Workspace: workspace,
		Logger:    logger,
	}
	base := session.New(deps, nil)
	fields := command.RequiredFields()

	for _, field := range fields {
		if args[field.Name] == "" && field.Stored != nil {
			args[field.Name] = field.Stored(base)
		}
	}

	for _, field := range fields {
		if field.Required && !field.promptable() && args[field.Name] == "" {
			d.deps.IO.Println(field.MissingMessage)
			return ExitOK
		}
	}

	online := !isOffline(command)
	if online && d.deps.Gateway != nil && !d.deps.Gateway.HasConnection(ctx) {
		logger.Debug("connectivity gate closed", "err", domain.ErrConnectivity)
		d.deps.IO.Println(msgNoConnection)
		return ExitError
	}

	if err := d.prompt(fields, args); err != nil {
		logger.Debug("prompt failed", "err", err)
		d.deps.IO.Println(err.Error())
		return ExitError
	}

	accounts, ok := d.accountsFor(ctx, command.Scope(), workspace, logger)
	if !ok {
		return ExitOK
	}

	code := ExitOK
	for _, account := range accounts {
		sc := base
		if account != nil {
			sc = session.New(deps, account)
			if command.Scope() == ScopeEach && len(accounts) > 1 {
				d.deps.IO.Println("Server " + account.ServerURL)
			}
		}

		if online && !sc.LoadBackendWithoutLogin() {
			d.reportBackendUnavailable(account)
			continue
		}

		if err := command.Execute(ctx, sc, args); err != nil {
			logger.Warn("command failed", "err", err)
			d.deps.IO.Println("Error: " + err.Error())
			if errors.Is(err, domain.ErrConnectivity) {
				code = ExitError
			}
		}
	}

	return code
}

func (d *Dispatcher) prompt(fields []FieldSpec, args Args) error {
	for _, field := range fields {
		if !field.promptable() || args[field.Name] != "" {
			continue
		}

		var (
			value string
			err   error
		)
		if field.Masked {
			value, err = d.deps.IO.PromptPassword(field.Prompt)
		} else {
			value, err = d.deps.IO.PromptLine(field.Prompt)
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", domain.ErrUserInput, field.Name, err)
		}
		args[field.Name] = strings.TrimSpace(value)
	}

	return nil
}

// accountsFor returns the accounts the command runs for. A nil entry means
// a run without a bound account. ok is false when nothing should run.
func (d *Dispatcher) accountsFor(ctx context.Context, scope Scope, workspace *domain.CourseInfo, logger *log.Logger) ([]*domain.Account, bool) {
	if scope == ScopeNone {
		return []*domain.Account{nil}, true
	}

	list, err := d.deps.Accounts.Load(ctx)
	if err != nil {
		logger.Warn("load accounts", "err", err)
		d.deps.IO.Println(msgAccountsReadError)
		return nil, false
	}
	if list.Len() == 0 {
		d.deps.IO.Println(msgNoAccounts)
		return nil, false
	}

	if scope == ScopeActive {
		if workspace != nil {
			if account, found := list.Find(workspace.Account.ServerURL); found {
				return []*domain.Account{&account}, true
			}
		}
		account, _ := list.Default()
		return []*domain.Account{&account}, true
	}

	all := list.Accounts()
	accounts := make([]*domain.Account, 0, len(all))
	for i := range all {
		accounts = append(accounts, &all[i])
	}
	return accounts, true
}

func (d *Dispatcher) loadWorkspace(ctx context.Context, logger *log.Logger) *domain.CourseInfo {
	if d.deps.Workspace == nil {
		return nil
	}

	info, err := d.deps.Workspace.Load(ctx)
	if err != nil {
		logger.Warn("ignoring workspace course info", "err", err)
		return nil
	}

	return info
}

func (d *Dispatcher) reportBackendUnavailable(account *domain.Account) {
	if d.deps.Gateway == nil || account == nil {
		d.deps.IO.Println(msgUnconfigured)
		return
	}

	d.deps.IO.Println(fmt.Sprintf("Stored credentials for %s are incomplete. Log in again with \"tmc login\".", account.ServerURL))
}

func isOffline(command Command) bool {
	offline, ok := command.(Offline)
	return ok && offline.Offline()
}

func isUnknownCommand(root *cobra.Command, args []string) bool {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return false
	}

	found, _, err := root.Find(args)
	return err != nil || found == root
}

// ioWriter sends cobra's help and usage text through the IO boundary.
type ioWriter struct {
	io ports.IO
}

func (w ioWriter) Write(p []byte) (int, error) {
	w.io.Print(string(p))
	return len(p), nil
}
