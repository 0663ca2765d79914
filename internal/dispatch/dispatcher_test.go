package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/drcDRt/tmc-cli/internal/adapters/termio/termiotest"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports/mocks"
	"github.com/drcDRt/tmc-cli/internal/session"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name    string
	scope   Scope
	fields  []FieldSpec
	offline bool
	execute func(ctx context.Context, sc *session.Context, args Args) error

	calls []Args
	seen  []domain.Account
}

func (f *fakeCommand) Name() string                { return f.name }
func (f *fakeCommand) Short() string               { return "fake " + f.name }
func (f *fakeCommand) Scope() Scope                { return f.scope }
func (f *fakeCommand) RequiredFields() []FieldSpec { return f.fields }
func (f *fakeCommand) Offline() bool               { return f.offline }

func (f *fakeCommand) Execute(ctx context.Context, sc *session.Context, args Args) error {
	copied := Args{}
	for k, v := range args {
		copied[k] = v
	}
	f.calls = append(f.calls, copied)
	if account, ok := sc.Account(); ok {
		f.seen = append(f.seen, account)
	}
	if f.execute != nil {
		return f.execute(ctx, sc, args)
	}
	return nil
}

func newTestDispatcher(t *testing.T, commands ...Command) (*Dispatcher, *termiotest.Scripted, *mocks.MockGateway, *mocks.MockAccountStore) {
	t.Helper()

	io := termiotest.NewScripted()
	gw := mocks.NewMockGateway(t)
	accounts := mocks.NewMockAccountStore(t)
	d := New(Deps{IO: io, Gateway: gw, Accounts: accounts})
	d.Register(commands...)
	return d, io, gw, accounts
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	d, io, _, _ := newTestDispatcher(t, &fakeCommand{name: "known"})

	code := d.Run(context.Background(), []string{"bogus"})

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Unknown command \"bogus\".\n", io.Out())
}

func TestRunWithoutArgumentsPrintsHelp(t *testing.T) {
	t.Parallel()

	d, io, _, _ := newTestDispatcher(t, &fakeCommand{name: "known"})

	code := d.Run(context.Background(), nil)

	assert.Equal(t, ExitOK, code)
	io.AssertContains(t, "known")
	io.AssertContains(t, "fake known")
}

func TestRunHelpCommandIsKnown(t *testing.T) {
	t.Parallel()

	d, io, _, _ := newTestDispatcher(t, &fakeCommand{name: "known"})

	assert.Equal(t, ExitOK, d.Run(context.Background(), []string{"help", "known"}))
	io.AssertNotContains(t, "Unknown command")
}

func TestRunFlagErrorExitsWithError(t *testing.T) {
	t.Parallel()

	d, io, _, _ := newTestDispatcher(t, &fakeCommand{name: "known", offline: true})

	code := d.Run(context.Background(), []string{"known", "--nope"})

	assert.Equal(t, ExitError, code)
	io.AssertContains(t, "unknown flag: --nope")
}

func TestRunTooManyPositionalsExitsWithError(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "known", offline: true, fields: []FieldSpec{{Name: "course", Positional: true}}}
	d, _, _, _ := newTestDispatcher(t, cmd)

	assert.Equal(t, ExitError, d.Run(context.Background(), []string{"known", "a", "b"}))
	assert.Empty(t, cmd.calls)
}

func TestRunInvalidLogLevelExitsWithError(t *testing.T) {
	t.Parallel()

	d, _, _, _ := newTestDispatcher(t, &fakeCommand{name: "known", offline: true})

	assert.Equal(t, ExitError, d.Run(context.Background(), []string{"--log-level", "loud", "known"}))
}

func TestRootPreRunReportsUndefinedLogLevelFlag(t *testing.T) {
	t.Parallel()

	d, _, _, _ := newTestDispatcher(t)
	code := ExitOK
	root := d.newRootCmd(&code)

	err := root.PersistentPreRunE(&cobra.Command{Use: "bare"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), logLevelFlag)
}

func TestRunMissingNonPromptableFieldStopsBeforeBackend(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{
		name:  "needs",
		scope: ScopeEach,
		fields: []FieldSpec{
			{Name: "course", Positional: true, Required: true, MissingMessage: "No course specified"},
		},
	}
	d, io, _, _ := newTestDispatcher(t, cmd)

	code := d.Run(context.Background(), []string{"needs"})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "No course specified\n", io.Out())
	assert.Empty(t, cmd.calls)
}

func TestRunConnectivityGateRunsBeforePrompts(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "online", fields: []FieldSpec{{Name: "user", Flag: "user", Prompt: "username: ", Required: true}}}
	d, io, gw, _ := newTestDispatcher(t, cmd)
	gw.EXPECT().HasConnection(mock.Anything).Return(false).Once()
	io.AddLinePrompt("alice")

	code := d.Run(context.Background(), []string{"online"})

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "You don't have internet connection currently.\n", io.Out())
	assert.Empty(t, io.Asked())
	assert.Empty(t, cmd.calls)
}

func TestRunOfflineCommandSkipsGate(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "local", offline: true}
	d, _, _, _ := newTestDispatcher(t, cmd)

	assert.Equal(t, ExitOK, d.Run(context.Background(), []string{"local"}))
	assert.Len(t, cmd.calls, 1)
}

func TestRunFlagsOverrideStoredValuesAndStoredValuesAreNotPrompted(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{
		name:    "fields",
		offline: true,
		fields: []FieldSpec{
			{Name: "server", Flag: "server", Shorthand: "s", Prompt: "server: ", Required: true, Stored: func(*session.Context) string { return "http://stored.test" }},
			{Name: "user", Flag: "user", Shorthand: "u", Prompt: "user: ", Required: true, Stored: func(*session.Context) string { return "stored-user" }},
			{Name: "password", Flag: "password", Shorthand: "p", Prompt: "password: ", Masked: true, Required: true},
		},
	}
	d, io, _, _ := newTestDispatcher(t, cmd)
	io.AddPasswordPrompt("secret")

	d.Run(context.Background(), []string{"fields", "-u", "flag-user"})

	io.AssertAllPromptsUsed(t)
	require.Len(t, cmd.calls, 1)
	assert.Equal(t, Args{"server": "http://stored.test", "user": "flag-user", "password": "secret"}, cmd.calls[0])
}

func TestRunScopeEachVisitsEveryAccountInOrder(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("http://a.test", "alice", "pw")
	b := domain.NewAccount("http://b.test", "bob", "pw")
	cmd := &fakeCommand{name: "each", scope: ScopeEach, execute: func(_ context.Context, sc *session.Context, _ Args) error {
		account, _ := sc.Account()
		if account.ServerURL == "http://a.test" {
			return errors.New("first failed")
		}
		sc.IO().Println("ran " + account.ServerURL)
		return nil
	}}
	d, io, gw, accounts := newTestDispatcher(t, cmd)
	gw.EXPECT().HasConnection(mock.Anything).Return(true).Once()
	accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(a, b), nil).Once()

	code := d.Run(context.Background(), []string{"each"})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, []domain.Account{a, b}, cmd.seen)
	assert.Equal(t, "Server http://a.test\nError: first failed\nServer http://b.test\nran http://b.test\n", io.Out())
}

func TestRunScopeActivePrefersWorkspaceAccount(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("http://a.test", "alice", "pw")
	b := domain.NewAccount("http://b.test", "bob", "pw")
	cmd := &fakeCommand{name: "active", scope: ScopeActive}
	io := termiotest.NewScripted()
	gw := mocks.NewMockGateway(t)
	gw.EXPECT().HasConnection(mock.Anything).Return(true).Once()
	accounts := mocks.NewMockAccountStore(t)
	accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(a, b), nil).Once()
	workspace := mocks.NewMockWorkspaceStore(t)
	workspace.EXPECT().Load(mock.Anything).Return(domain.NewCourseInfo(domain.NewAccount("http://b.test", "bob", ""), nil), nil).Once()

	d := New(Deps{IO: io, Gateway: gw, Accounts: accounts, Workspace: workspace})
	d.Register(cmd)
	d.Run(context.Background(), []string{"active"})

	assert.Equal(t, []domain.Account{b}, cmd.seen)
	io.AssertNotContains(t, "Server ")
}

func TestRunWorkspaceErrorIsIgnored(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "local", offline: true}
	workspace := mocks.NewMockWorkspaceStore(t)
	workspace.EXPECT().Load(mock.Anything).Return(nil, domain.ErrPersistence).Once()

	d := New(Deps{IO: termiotest.NewScripted(), Workspace: workspace})
	d.Register(cmd)

	assert.Equal(t, ExitOK, d.Run(context.Background(), []string{"local"}))
	assert.Len(t, cmd.calls, 1)
}

func TestRunRecoversFromPanic(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "boom", offline: true, execute: func(context.Context, *session.Context, Args) error {
		panic("kaboom")
	}}
	d, io, _, _ := newTestDispatcher(t, cmd)

	code := d.Run(context.Background(), []string{"boom"})

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Unexpected error: kaboom\n", io.Out())
}

func TestRunWithoutGatewaySkipsHandler(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommand{name: "online"}
	d := New(Deps{IO: termiotest.NewScripted()})
	d.Register(cmd)

	assert.Equal(t, ExitOK, d.Run(context.Background(), []string{"online"}))
	assert.Empty(t, cmd.calls)
}

func TestScopeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", ScopeNone.String())
	assert.Equal(t, "active", ScopeActive.String())
	assert.Equal(t, "each", ScopeEach.String())
}
