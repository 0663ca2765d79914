// Package session holds the per-account state handed to command handlers.
package session

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
)

// Deps are shared by every Context built during one invocation.
type Deps struct {
	IO        ports.IO
	Gateway   ports.Gateway
	Accounts  ports.AccountStore
	Workspace *domain.CourseInfo
	Logger    *log.Logger
}

// Context is built fresh for each (command, account) pair and never
// persisted.
type Context struct {
	deps       Deps
	account    domain.Account
	hasAccount bool
}

// New binds deps to account. A nil account yields a context for commands
// that do not act on a stored account.
func New(deps Deps, account *domain.Account) *Context {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	ctx := &Context{deps: deps}
	if account != nil {
		ctx.account = *account
		ctx.hasAccount = true
	}

	return ctx
}

func (c *Context) IO() ports.IO {
	return c.deps.IO
}

func (c *Context) Gateway() ports.Gateway {
	return c.deps.Gateway
}

func (c *Context) Accounts() ports.AccountStore {
	return c.deps.Accounts
}

func (c *Context) Logger() *log.Logger {
	return c.deps.Logger
}

func (c *Context) Account() (domain.Account, bool) {
	return c.account, c.hasAccount
}

// LoadBackendWithoutLogin reports whether backend calls can be made for the
// bound account using only what is stored. It never touches the network.
func (c *Context) LoadBackendWithoutLogin() bool {
	if c.deps.Gateway == nil {
		c.deps.Logger.Debug("no backend gateway configured")
		return false
	}
	if !c.hasAccount {
		return true
	}
	if !c.account.HasStoredCredentials() {
		c.deps.Logger.Debug("stored credentials are incomplete", "server", c.account.ServerURL)
		return false
	}

	return true
}

// CourseInfo returns the workspace course when it belongs to the bound
// account, or whenever no account is bound.
func (c *Context) CourseInfo() *domain.CourseInfo {
	info := c.deps.Workspace
	if info == nil || !c.hasAccount {
		return info
	}
	if info.Account.ServerURL != c.account.ServerURL {
		return nil
	}

	return info
}

// ListCourses fetches the courses of the bound account while showing
// progress on the IO.
func (c *Context) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if c.deps.Gateway == nil {
		return nil, domain.ErrUnconfigured
	}

	tracker := c.deps.IO.Progress("Fetching courses")
	defer tracker.Done()

	return c.deps.Gateway.ListCourses(ctx, c.account, tracker).Await(ctx)
}

func (c *Context) CourseDetails(ctx context.Context, course domain.Course) (domain.Course, error) {
	if c.deps.Gateway == nil {
		return domain.Course{}, domain.ErrUnconfigured
	}

	tracker := c.deps.IO.Progress("Fetching exercises")
	defer tracker.Done()

	return c.deps.Gateway.GetCourseDetails(ctx, c.account, course, tracker).Await(ctx)
}

// FindCourse looks a course up by name. An error is returned only for
// failures other than a missing backend, which is reported as
// LookupUnconfigured.
func (c *Context) FindCourse(ctx context.Context, name string) (domain.Course, domain.Lookup, error) {
	courses, err := c.ListCourses(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnconfigured) {
			return domain.Course{}, domain.LookupUnconfigured, nil
		}
		return domain.Course{}, domain.LookupNotFound, err
	}

	for _, course := range courses {
		if course.Name == name {
			return course, domain.LookupFound, nil
		}
	}

	return domain.Course{}, domain.LookupNotFound, nil
}
