package commands

import (
	"context"
	"fmt"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/session"
)

// offline is embedded by commands that only touch local state.
type offline struct{}

func (offline) Offline() bool {
	return true
}

type Logout struct {
	offline
}

func NewLogout() Logout {
	return Logout{}
}

func (Logout) Name() string {
	return "logout"
}

func (Logout) Short() string {
	return "Forget the account of a server"
}

func (Logout) Scope() dispatch.Scope {
	return dispatch.ScopeNone
}

func (Logout) RequiredFields() []dispatch.FieldSpec {
	return []dispatch.FieldSpec{serverField("server address to log out from")}
}

func (Logout) Execute(ctx context.Context, sc *session.Context, args dispatch.Args) error {
	server := domain.NormalizeServerURL(args.Get(fieldServer))

	accounts, err := sc.Accounts().Load(ctx)
	if err != nil {
		sc.Logger().Warn("load accounts before logout", "err", err)
		sc.IO().Println(msgAccountsReadError)
		return nil
	}

	if !accounts.Remove(server) {
		sc.IO().Println(fmt.Sprintf("Not logged in to %s.", server))
		return nil
	}

	if err := sc.Accounts().Save(ctx, accounts); err != nil {
		sc.Logger().Warn("save accounts", "err", err)
		sc.IO().Println(msgAccountsWriteError)
		return nil
	}

	sc.IO().Println(fmt.Sprintf("Logged out from %s.", server))
	return nil
}

type Accounts struct {
	offline
}

func NewAccounts() Accounts {
	return Accounts{}
}

func (Accounts) Name() string {
	return "accounts"
}

func (Accounts) Short() string {
	return "List the stored accounts"
}

func (Accounts) Scope() dispatch.Scope {
	return dispatch.ScopeNone
}

func (Accounts) RequiredFields() []dispatch.FieldSpec {
	return nil
}

func (Accounts) Execute(ctx context.Context, sc *session.Context, _ dispatch.Args) error {
	accounts, err := sc.Accounts().Load(ctx)
	if err != nil {
		sc.Logger().Warn("load accounts", "err", err)
		sc.IO().Println(msgAccountsReadError)
		return nil
	}

	if accounts.Len() == 0 {
		sc.IO().Println("No accounts found.")
		return nil
	}

	for _, account := range accounts.Accounts() {
		sc.IO().Println(fmt.Sprintf("Server %s (%s)", account.ServerURL, account.Username))
	}

	return nil
}
