/*
Package pairs enumerates candidate atom pairs for the distance engine.

A Selector names a subset of an atom list by identity fields — residue
name, residue number, chain, atom name, alternate location — with an
empty slice on any field meaning "any value admitted". Two selectors
describe the two ends of a candidate pair; Enumerate combines them with
the ordering and deduplication rules spec.md §4.4 lays out.

The selector shape (several "allowed values" slices, membership tested
rather than parsed) mirrors other_examples/rmera-gochem__handy.go's
Molecules2Atoms, which selects atoms out of a molecule the same way.
*/
package pairs

import "github.com/xwalk-go/xwalk/atom"

// Selector names a subset of an atom list. A nil or empty slice on any
// field means "any value admitted" for that field.
type Selector struct {
	ResNames []string
	ResSeqs  []int
	Chains   []byte
	Names    []string
	AltLocs  []byte
}

// Matches reports whether a satisfies every populated field of s.
func (s Selector) Matches(a *atom.Atom) bool {
	if len(s.ResNames) > 0 && !containsString(s.ResNames, a.ResName) {
		return false
	}
	if len(s.ResSeqs) > 0 && !containsInt(s.ResSeqs, a.ResSeq) {
		return false
	}
	if len(s.Chains) > 0 && !containsByte(s.Chains, a.Chain) {
		return false
	}
	if len(s.Names) > 0 && !containsString(s.Names, a.Name) {
		return false
	}
	if len(s.AltLocs) > 0 && !containsByte(s.AltLocs, a.AltLoc) {
		return false
	}
	return true
}

// Select returns every atom in atoms that matches s, preserving order.
func (s Selector) Select(atoms atom.List) atom.List {
	out := make(atom.List, 0, len(atoms))
	for _, a := range atoms {
		if s.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsByte(haystack []byte, needle byte) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
