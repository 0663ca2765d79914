package ports

import (
	"context"

	"github.com/drcDRt/tmc-cli/internal/async"
	"github.com/drcDRt/tmc-cli/internal/domain"
)

// ProgressObserver receives fire-and-forget progress notifications.
// Fraction is in [0,1]; a negative value means unknown.
type ProgressObserver interface {
	Progress(message string, fraction float64)
}

type NopProgress struct{}

func (NopProgress) Progress(string, float64) {}

// Core is the synchronous client of the exercise server.
type Core interface {
	Ping(ctx context.Context) error
	Authenticate(ctx context.Context, account domain.Account) error
	ListCourses(ctx context.Context, account domain.Account, observer ProgressObserver) ([]domain.Course, error)
	GetCourseDetails(ctx context.Context, account domain.Account, course domain.Course, observer ProgressObserver) (domain.Course, error)
}

// Gateway is the asynchronous facade handlers talk to. Expected failures
// are reported as false or as classified errors inside the future.
type Gateway interface {
	HasConnection(ctx context.Context) bool
	TryLogin(ctx context.Context, account domain.Account) bool
	ListCourses(ctx context.Context, account domain.Account, observer ProgressObserver) *async.Future[[]domain.Course]
	GetCourseDetails(ctx context.Context, account domain.Account, course domain.Course, observer ProgressObserver) *async.Future[domain.Course]
}
