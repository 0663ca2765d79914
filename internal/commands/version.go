package commands

import (
	"context"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/session"
)

type Version struct {
	offline
	version string
}

func NewVersion(version string) Version {
	if version == "" {
		version = "dev"
	}
	return Version{version: version}
}

func (Version) Name() string {
	return "version"
}

func (Version) Short() string {
	return "Print the tmc version"
}

func (Version) Scope() dispatch.Scope {
	return dispatch.ScopeNone
}

func (Version) RequiredFields() []dispatch.FieldSpec {
	return nil
}

func (v Version) Execute(_ context.Context, sc *session.Context, _ dispatch.Args) error {
	sc.IO().Println("tmc " + v.version)
	return nil
}
