// Package gateway runs exercise-server calls off the caller's goroutine and
// turns their failures into classified errors.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/drcDRt/tmc-cli/internal/async"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
)

const DefaultTimeout = 30 * time.Second

type Gateway struct {
	core    ports.Core
	timeout time.Duration
	logger  *log.Logger
}

var _ ports.Gateway = (*Gateway)(nil)

// New wraps core. A nil core yields a gateway whose backend calls resolve
// with domain.ErrUnconfigured.
func New(core ports.Core, timeout time.Duration, logger *log.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Gateway{
		core:    core,
		timeout: timeout,
		logger:  logger.WithPrefix("gateway"),
	}
}

// HasConnection probes the server. Without a core there is nothing to reach
// and the gate stays open so handlers can report the missing backend.
func (g *Gateway) HasConnection(ctx context.Context) bool {
	if g.core == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.core.Ping(ctx); err != nil {
		g.logger.Debug("connectivity probe failed", "err", err)
		return false
	}

	return true
}

func (g *Gateway) TryLogin(ctx context.Context, account domain.Account) bool {
	if g.core == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.core.Authenticate(ctx, account); err != nil {
		g.logger.Debug("login failed", "server", account.ServerURL, "user", account.Username, "err", classify(err))
		return false
	}

	return true
}

func (g *Gateway) ListCourses(ctx context.Context, account domain.Account, observer ports.ProgressObserver) *async.Future[[]domain.Course] {
	if g.core == nil {
		return async.Resolved[[]domain.Course](nil, domain.ErrUnconfigured)
	}

	return async.Go(ctx, func(ctx context.Context) ([]domain.Course, error) {
		ctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		courses, err := g.core.ListCourses(ctx, account, orNop(observer))
		if err != nil {
			err = classify(err)
			g.logger.Debug("list courses failed", "server", account.ServerURL, "err", err)
			return nil, fmt.Errorf("list courses: %w", err)
		}

		return courses, nil
	})
}

func (g *Gateway) GetCourseDetails(ctx context.Context, account domain.Account, course domain.Course, observer ports.ProgressObserver) *async.Future[domain.Course] {
	if g.core == nil {
		return async.Resolved(domain.Course{}, domain.ErrUnconfigured)
	}

	return async.Go(ctx, func(ctx context.Context) (domain.Course, error) {
		ctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		detailed, err := g.core.GetCourseDetails(ctx, account, course, orNop(observer))
		if err != nil {
			err = classify(err)
			g.logger.Debug("course details failed", "server", account.ServerURL, "course", course.Name, "err", err)
			return domain.Course{}, fmt.Errorf("get course %s: %w", course.Name, err)
		}

		return detailed, nil
	})
}

// classify maps timeouts onto ErrConnectivity and keeps already classified
// errors as they are.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConnectivity),
		errors.Is(err, domain.ErrAuth),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUnconfigured),
		errors.Is(err, domain.ErrUserInput):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", domain.ErrConnectivity, err)
	default:
		return err
	}
}

func orNop(observer ports.ProgressObserver) ports.ProgressObserver {
	if observer == nil {
		return ports.NopProgress{}
	}
	return observer
}
