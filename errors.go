package xwalk

import "strings"

// Kind classifies an Error per spec.md §7.
type Kind int

const (
	// KindInput marks an atom or selector that fails validation: a
	// coordinate outside +-9999 A, a residue number outside
	// [-999, 9999], or a malformed selector.
	KindInput Kind = iota
	// KindGeometric marks a source or target atom that falls outside the
	// grid: either its cell lies beyond the grid's extent, or (in
	// local-grid mode) the atom was skipped entirely when the local box
	// was built.
	KindGeometric
	// KindConsistency marks a target shell that cannot be cleared: the
	// cell remains occupied by an unrelated atom's shell after the
	// target atom's own shell has been un-occupied.
	KindConsistency
	// KindConfiguration marks a non-positive D_max or cell size.
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindGeometric:
		return "geometric"
	case KindConsistency:
		return "consistency"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error is xwalk's error type, carrying one of the four kinds spec.md
// §7 names plus a decoration trail recording which calls propagated it,
// the same shape as other_examples/rmera-gochem__interfaces.go's Error
// interface (Error() string, Decorate(string) []string).
type Error struct {
	Kind Kind
	msg  string
	deco []string
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.deco) == 0 {
		return e.msg
	}
	return strings.Join(e.deco, " -> ") + ": " + e.msg
}

// Decorate appends s to the error's call trail and returns the updated
// trail, mirroring gochem's Decorate convention of recording the chain
// of functions an error passed through on its way up. An empty s is not
// appended.
func (e *Error) Decorate(s string) []string {
	if s == "" {
		return e.deco
	}
	e.deco = append(e.deco, s)
	return e.deco
}

// classifyGridError maps a grid package sentinel error onto an xwalk
// Kind. grid returns plain sentinel errors rather than
// xwalk.Error values to avoid importing the root package (which would
// create an import cycle); the driver classifies them at the boundary.
func classifyGridError(err error) Kind {
	switch {
	case err == nil:
		return KindInput
	default:
		msg := err.Error()
		switch {
		case strings.Contains(msg, "outside grid bounds"),
			strings.Contains(msg, "not part of this grid"):
			return KindGeometric
		case strings.Contains(msg, "another atom's shell"):
			return KindConsistency
		case strings.Contains(msg, "cell size must be positive"),
			strings.Contains(msg, "maximum distance must be positive"):
			return KindConfiguration
		default:
			return KindInput
		}
	}
}
