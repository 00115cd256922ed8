package xwalk

import "github.com/xwalk-go/xwalk/pairs"

// Params is the engine's full set of recognised options, per spec.md
// §6. It is an immutable configuration struct with named, typed
// fields, not a string-keyed table: spec.md §9 explicitly rejects
// "global parameter tables keyed by enumerated tags" and
// "string-encoded booleans and doubles in the source parameter table".
type Params struct {
	// MaxDistance is D_max, in Ångström, the bound on the grid search.
	// No Euclidean pre-screen is applied: every enumerated pair is
	// searched, and a pair with no path within the bound is reported
	// unreachable. Defaults to DefaultCrossLinkerLength.
	MaxDistance float64
	// CellSize is the occupancy grid's cubic cell edge length, in
	// Ångström. Defaults to DefaultCellSize.
	CellSize float64
	// SolventRadius inflates every atom's van der Waals sphere before
	// it is rasterised into the grid. Defaults to DefaultSolventRadius
	// (or SolventRadiusBackbone when BackboneOnly is set).
	SolventRadius float64
	// Intramolecular and Intermolecular are the chain predicate from
	// spec.md §4.4; both false admits any chain combination.
	Intramolecular bool
	Intermolecular bool
	// Homomeric enables symmetry deduplication of candidate pairs.
	Homomeric bool
	// LocalGrid forces per-source grid rebuilding (spec.md §4.2's
	// local-grid mode), regardless of the structure's bounding box.
	LocalGrid bool
	// BackboneOnly restricts candidate selection to backbone atoms;
	// it is a predicate on the atom list, not a subtype (spec.md §9).
	BackboneOnly bool
	// Selector1 and Selector2 are the two selector halves of the pair
	// specification (spec.md §4.4).
	Selector1, Selector2 pairs.Selector
}

// Validate checks the configuration fields that abort the run per
// spec.md §7 ("Configuration" errors). It does not inspect atoms; Run
// validates every atom once, before enumerating pairs, and aborts on the
// first invalid one.
func (p Params) Validate() error {
	if p.MaxDistance <= 0 {
		return newError(KindConfiguration, "max distance must be positive")
	}
	if p.CellSize <= 0 {
		return newError(KindConfiguration, "cell size must be positive")
	}
	if p.SolventRadius < 0 {
		return newError(KindConfiguration, "solvent radius must not be negative")
	}
	return nil
}

// effectiveMaxDistance clamps MaxDistance to MaxSASDDistance, the hard
// ceiling spec.md §6 imposes irrespective of the caller's request.
func (p Params) effectiveMaxDistance() float64 {
	if p.MaxDistance > MaxSASDDistance {
		return MaxSASDDistance
	}
	return p.MaxDistance
}

// WithDefaults returns a copy of p with zero-valued fields replaced by
// the engine's documented defaults.
func WithDefaults(p Params) Params {
	if p.MaxDistance == 0 {
		p.MaxDistance = DefaultCrossLinkerLength
	}
	if p.CellSize == 0 {
		p.CellSize = DefaultCellSize
	}
	if p.SolventRadius == 0 {
		if p.BackboneOnly {
			p.SolventRadius = SolventRadiusBackbone
		} else {
			p.SolventRadius = DefaultSolventRadius
		}
	}
	return p
}
