package xwalk

import (
	"errors"
	"testing"

	"github.com/xwalk-go/xwalk/grid"
)

func TestErrorString(t *testing.T) {
	e := newError(KindConfiguration, "cell size must be positive")
	if e.Error() != "cell size must be positive" {
		t.Fatalf("Error() = %q", e.Error())
	}
	e.Decorate("Run")
	if e.Error() != "Run: cell size must be positive" {
		t.Fatalf("Error() after Decorate = %q", e.Error())
	}
}

func TestClassifyGridError(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{grid.ErrOutOfBounds, KindGeometric},
		{grid.ErrUnknownAtom, KindGeometric},
		{grid.ErrShellConflict, KindConsistency},
		{grid.ErrNonPositiveCellSize, KindConfiguration},
		{grid.ErrNonPositiveMaxDist, KindConfiguration},
		{errors.New("some other failure"), KindInput},
	}
	for _, c := range cases {
		if got := classifyGridError(c.err); got != c.want {
			t.Fatalf("classifyGridError(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
