/*
Package geom provides the three-dimensional geometry primitives the
distance engine is built on: points in Ångström space, axis-aligned
bounding boxes, and Euclidean distance.

This package intentionally knows nothing about atoms, grids, or paths.
*/
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CoincidenceTolerance is the distance under which two points are
// treated as the same location, in Ångström.
const CoincidenceTolerance = 1e-4

// Point is a Cartesian position in Ångström units, with an optional
// radius (used by callers that attach a sphere to the point, e.g. an
// atom's van der Waals radius). Point is a pure value type.
type Point struct {
	Vec    r3.Vec
	Radius float64
}

// NewPoint builds a Point with no radius.
func NewPoint(x, y, z float64) Point {
	return Point{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// NewPointR builds a Point with the given radius.
func NewPointR(x, y, z, radius float64) Point {
	return Point{Vec: r3.Vec{X: x, Y: y, Z: z}, Radius: radius}
}

// X returns the Cartesian X-coordinate.
func (p Point) X() float64 { return p.Vec.X }

// Y returns the Cartesian Y-coordinate.
func (p Point) Y() float64 { return p.Vec.Y }

// Z returns the Cartesian Z-coordinate.
func (p Point) Z() float64 { return p.Vec.Z }

// Add returns a new point translated by (dx, dy, dz); the radius is
// carried over unchanged.
func (p Point) Add(dx, dy, dz float64) Point {
	return Point{Vec: r3.Add(p.Vec, r3.Vec{X: dx, Y: dy, Z: dz}), Radius: p.Radius}
}

// Copy returns an independent copy of p. Point has no pointer fields,
// so this is equivalent to a plain assignment; it exists so callers
// coming from pointer-heavy code (the norm elsewhere in this module)
// have an explicit, self-documenting way to detach a value.
func (p Point) Copy() Point {
	return p
}

// Equal reports whether p and q are the same location within
// CoincidenceTolerance. Radius is not compared: two points may
// coincide in space while carrying different radii.
func (p Point) Equal(q Point) bool {
	return Distance(p, q) <= CoincidenceTolerance
}

// Distance returns the Euclidean distance between a and b in Ångström.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a.Vec, b.Vec))
}

// Box is an axis-aligned bounding box in Ångström space.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a Box with inverted bounds, ready to be grown by
// repeated calls to Extend.
func EmptyBox() Box {
	return Box{
		Min: NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Extend grows the box, if necessary, so that it contains p.
func (b Box) Extend(p Point) Box {
	min := NewPoint(minf(b.Min.X(), p.X()), minf(b.Min.Y(), p.Y()), minf(b.Min.Z(), p.Z()))
	max := NewPoint(maxf(b.Max.X(), p.X()), maxf(b.Max.Y(), p.Y()), maxf(b.Max.Z(), p.Z()))
	return Box{Min: min, Max: max}
}

// ExpandBy grows the box outward on every face by margin Ångström.
func (b Box) ExpandBy(margin float64) Box {
	return Box{
		Min: b.Min.Add(-margin, -margin, -margin),
		Max: b.Max.Add(margin, margin, margin),
	}
}

// Extent returns the box's edge lengths along X, Y and Z.
func (b Box) Extent() (dx, dy, dz float64) {
	return b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y(), b.Max.Z() - b.Min.Z()
}

// Contains reports whether p lies within the box (inclusive of the
// faces).
func (b Box) Contains(p Point) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Intersect returns the box covering the overlap of a and b. If a and
// b do not overlap along some axis, the returned box is degenerate
// (Min > Max along that axis) on that axis.
func Intersect(a, b Box) Box {
	return Box{
		Min: NewPoint(maxf(a.Min.X(), b.Min.X()), maxf(a.Min.Y(), b.Min.Y()), maxf(a.Min.Z(), b.Min.Z())),
		Max: NewPoint(minf(a.Max.X(), b.Max.X()), minf(a.Max.Y(), b.Max.Y()), minf(a.Max.Z(), b.Max.Z())),
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
