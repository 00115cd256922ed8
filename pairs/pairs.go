package pairs

import (
	"strconv"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
)

// Pair is a single candidate atom pair, directional: A is the source,
// B is the target.
type Pair struct {
	A, B *atom.Atom
}

// Spec is a pair specification: two selectors plus the ordering and
// deduplication rules of spec.md §4.4.
type Spec struct {
	Selector1, Selector2 Selector
	Intramolecular       bool
	Intermolecular       bool
	Homomeric            bool
}

// Enumerate produces every candidate pair (a, b) with a drawn from
// Selector1 and b from Selector2, subject to a != b, the
// intra/intermolecular chain predicate, and homomeric deduplication.
// A duplicate-pair cache ensures (a, b) and (b, a) are not both
// emitted when the two selectors overlap. spec.md §4.4 scopes this to
// callers that have not requested directional output; Spec has no such
// option yet, so the cache applies unconditionally.
func Enumerate(atoms atom.List, spec Spec) []Pair {
	s1 := spec.Selector1.Select(atoms)
	s2 := spec.Selector2.Select(atoms)

	seen := make(map[string]bool)
	var out []Pair
	for _, a := range s1 {
		for _, b := range s2 {
			if a == b {
				continue
			}
			if spec.Intramolecular && a.Chain != b.Chain {
				continue
			}
			if spec.Intermolecular && a.Chain == b.Chain {
				continue
			}
			key := pairKey(a, b, spec.Homomeric)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Pair{A: a, B: b})
		}
	}
	return out
}

// pairKey builds a canonical, order-independent key for (a, b). Under
// homomeric deduplication, the key is built from residue identity alone
// (residue name, residue number, atom name) so that equivalent pairs
// across symmetric chains collapse to a single entry; otherwise the key
// includes chain via the atom's full descriptor.
func pairKey(a, b *atom.Atom, homomeric bool) string {
	var ka, kb string
	if homomeric {
		ka, kb = residueIdentity(a), residueIdentity(b)
	} else {
		ka, kb = a.Descriptor(), b.Descriptor()
	}
	if ka > kb {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

func residueIdentity(a *atom.Atom) string {
	return a.ResName + "-" + strconv.Itoa(a.ResSeq) + "-" + a.Name
}

// Euclidean returns the straight-line distance between a pair's two
// atoms, in Ångström.
func (p Pair) Euclidean() float64 {
	return geom.Distance(p.A.Position, p.B.Position)
}
