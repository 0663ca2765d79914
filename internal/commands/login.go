// Package commands holds the handlers registered with the dispatcher.
package commands

import (
	"context"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/session"
)

const (
	fieldServer   = "server"
	fieldUsername = "username"
	fieldPassword = "password"
	fieldCourse   = "course-name"

	msgAccountsWriteError = "Failed to write the accounts file."
	msgAccountsReadError  = "Failed to read the accounts file."
)

type Login struct{}

func NewLogin() Login {
	return Login{}
}

func (Login) Name() string {
	return "login"
}

func (Login) Short() string {
	return "Log in to a TMC server and remember the account"
}

func (Login) Scope() dispatch.Scope {
	return dispatch.ScopeNone
}

func (Login) RequiredFields() []dispatch.FieldSpec {
	return []dispatch.FieldSpec{
		serverField("server address"),
		{
			Name:      fieldUsername,
			Flag:      "user",
			Shorthand: "u",
			Usage:     "username",
			Prompt:    "username: ",
			Required:  true,
			Stored: func(sc *session.Context) string {
				if info := sc.CourseInfo(); info != nil {
					return info.Account.Username
				}
				return ""
			},
		},
		{
			Name:      fieldPassword,
			Flag:      "password",
			Shorthand: "p",
			Usage:     "password",
			Prompt:    "password: ",
			Masked:    true,
			Required:  true,
		},
	}
}

func (Login) Execute(ctx context.Context, sc *session.Context, args dispatch.Args) error {
	account := domain.NewAccount(args.Get(fieldServer), args.Get(fieldUsername), args.Get(fieldPassword))

	if !sc.Gateway().TryLogin(ctx, account) {
		sc.IO().Println("Login failed.")
		return nil
	}

	accounts, err := sc.Accounts().Load(ctx)
	if err != nil {
		sc.Logger().Warn("load accounts before login save", "err", err)
		sc.IO().Println(msgAccountsReadError)
		return nil
	}

	accounts.Put(account)
	if err := sc.Accounts().Save(ctx, accounts); err != nil {
		sc.Logger().Warn("save accounts", "err", err)
		sc.IO().Println(msgAccountsWriteError)
		return nil
	}

	sc.IO().Println("Login successful.")
	return nil
}

func serverField(usage string) dispatch.FieldSpec {
	return dispatch.FieldSpec{
		Name:      fieldServer,
		Flag:      "server",
		Shorthand: "s",
		Usage:     usage,
		Prompt:    "server address: ",
		Required:  true,
		Stored: func(sc *session.Context) string {
			if info := sc.CourseInfo(); info != nil {
				return info.Account.ServerURL
			}
			return ""
		},
	}
}
