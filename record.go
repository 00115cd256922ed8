package xwalk

import "github.com/xwalk-go/xwalk/atom"

// Record is one emitted result, per spec.md §6's output record format:
// index, source/target descriptors, Euclidean distance, SASD (or a
// sentinel for "unreachable"), and an optional probability column.
type Record struct {
	Index      int
	Source     *atom.Atom
	Target     *atom.Atom
	Euclidean  float64
	SASD       float64
	Reachable  bool
	// Probability is populated by an external peptide-scoring
	// collaborator, never by this engine (spec.md §6, SPEC_FULL.md §S.3).
	Probability *float64
	// Err holds a per-pair KindGeometric or KindConsistency error; the
	// record still carries Euclidean and a sentinel SASD in this case,
	// per spec.md §7 ("the offending pair is emitted with a sentinel
	// SASD field and the driver continues").
	Err error
}
