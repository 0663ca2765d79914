package ports

import (
	"context"

	"github.com/drcDRt/tmc-cli/internal/domain"
)

type AccountStore interface {
	Load(ctx context.Context) (domain.AccountList, error)
	Save(ctx context.Context, accounts domain.AccountList) error
}

// WorkspaceStore resolves the course bound to the current working tree.
// Load returns nil without error when no workspace exists.
type WorkspaceStore interface {
	Load(ctx context.Context) (*domain.CourseInfo, error)
}
