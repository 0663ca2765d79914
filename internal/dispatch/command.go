// Package dispatch routes a command line to its handler, filling in missing
// inputs and iterating over the accounts the command applies to.
package dispatch

import (
	"context"

	"github.com/drcDRt/tmc-cli/internal/session"
)

// Scope selects the accounts a command runs for.
type Scope int

const (
	// ScopeNone runs once without a bound account.
	ScopeNone Scope = iota
	// ScopeActive runs for the workspace account when it is registered,
	// otherwise for the first account.
	ScopeActive
	// ScopeEach runs for every account in list order.
	ScopeEach
)

func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeActive:
		return "active"
	case ScopeEach:
		return "each"
	default:
		return "unknown"
	}
}

type Command interface {
	Name() string
	Short() string
	Scope() Scope
	RequiredFields() []FieldSpec
	Execute(ctx context.Context, sc *session.Context, args Args) error
}

// Offline is implemented by commands that never contact the backend. They
// skip the connectivity gate and the stored-credentials check.
type Offline interface {
	Offline() bool
}

// FieldSpec declares one input of a command.
//
// A value is resolved from the flag (or positional argument), then from
// Stored, then by prompting with Prompt. A required field without a prompt
// that is still empty makes the dispatcher print MissingMessage and stop.
type FieldSpec struct {
	Name           string
	Flag           string
	Shorthand      string
	Usage          string
	Positional     bool
	Prompt         string
	Masked         bool
	Required       bool
	MissingMessage string
	Stored         func(sc *session.Context) string
}

func (f FieldSpec) promptable() bool {
	return f.Prompt != ""
}

// Args holds resolved field values by FieldSpec.Name.
type Args map[string]string

func (a Args) Get(name string) string {
	return a[name]
}
