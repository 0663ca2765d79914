package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const WorkspaceFileName = ".tmc.toml"

// WorkspaceStore finds the nearest .tmc.toml from a start directory up to
// the filesystem root.
type WorkspaceStore struct {
	startDir string
}

var _ ports.WorkspaceStore = (*WorkspaceStore)(nil)

func NewWorkspaceStore(startDir string) *WorkspaceStore {
	return &WorkspaceStore{startDir: filepath.Clean(startDir)}
}

func (s *WorkspaceStore) Load(ctx context.Context) (*domain.CourseInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := s.find()
	if !ok {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read workspace file: %w", domain.ErrPersistence, err)
	}

	var workspace workspaceSchema
	if err := toml.Unmarshal(data, &workspace); err != nil {
		return nil, fmt.Errorf("%w: decode workspace file %s: %w", domain.ErrPersistence, path, err)
	}
	if strings.TrimSpace(workspace.ServerURL) == "" {
		return nil, fmt.Errorf("%w: workspace file %s has no server_url", domain.ErrPersistence, path)
	}

	account := domain.NewAccount(workspace.ServerURL, workspace.Username, "")
	if workspace.Course == "" {
		return domain.NewCourseInfo(account, nil), nil
	}

	course := domain.NewCourse(workspace.Course)
	return domain.NewCourseInfo(account, &course), nil
}

func (s *WorkspaceStore) find() (string, bool) {
	dir := s.startDir
	for {
		candidate := filepath.Join(dir, WorkspaceFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
