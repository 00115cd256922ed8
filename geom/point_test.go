package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := NewPoint(0, 0, 0)
	b := NewPoint(3, 4, 0)
	if got := Distance(a, b); math.Abs(got-5) > 1e-9 {
		t.Fatalf("Distance = %v, want 5", got)
	}
}

func TestPointEqualTolerance(t *testing.T) {
	a := NewPoint(1, 1, 1)
	b := a.Add(CoincidenceTolerance/2, 0, 0)
	if !a.Equal(b) {
		t.Fatalf("expected %v and %v to be equal within tolerance", a, b)
	}
	c := a.Add(1, 0, 0)
	if a.Equal(c) {
		t.Fatalf("expected %v and %v to differ", a, c)
	}
}

func TestBoxExtendAndExpand(t *testing.T) {
	box := EmptyBox()
	box = box.Extend(NewPoint(1, 2, 3))
	box = box.Extend(NewPoint(-1, 5, 0))
	dx, dy, dz := box.Extent()
	if dx != 2 || dy != 3 || dz != 3 {
		t.Fatalf("Extent = (%v, %v, %v), want (2, 3, 3)", dx, dy, dz)
	}
	expanded := box.ExpandBy(1)
	if !expanded.Contains(NewPoint(-2, 1, -1)) {
		t.Fatalf("expanded box should contain the margin corner")
	}
}

func TestIntersect(t *testing.T) {
	a := Box{Min: NewPoint(0, 0, 0), Max: NewPoint(10, 10, 10)}
	b := Box{Min: NewPoint(5, 5, 5), Max: NewPoint(15, 15, 15)}
	i := Intersect(a, b)
	if i.Min.X() != 5 || i.Max.X() != 10 {
		t.Fatalf("Intersect = %+v, want min 5 max 10 on X", i)
	}
}
