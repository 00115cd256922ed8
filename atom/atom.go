/*
Package atom provides the semantic atom record the distance engine is
built on, plus van der Waals radius lookup by element.

The atom model mirrors the field set of goChem's Atom struct (see
other_examples/rmera-gochem__chem.go in the retrieval pack this project
was grown from) extended with PDB identity fields: residue sequence
number, chain and alternate-location indicator, which atom equality
compares, and insertion code, which it does not.
*/
package atom

import (
	"strconv"

	"github.com/xwalk-go/xwalk/geom"
)

// DefaultVdwRadius is used when an atom's element is not present in
// the radius table.
const DefaultVdwRadius = 1.5

// Atom is an immutable-once-populated record for a single atom in a
// protein structure.
type Atom struct {
	Serial      int
	Name        string
	ResName     string
	ResSeq      int
	ICode       byte // insertion code, zero byte if absent
	Chain       byte
	AltLoc      byte // zero byte if absent
	Position    geom.Point
	Element     string
	Vdw         float64
	Charge      *float64
	Aromatic    bool
	Metallic    bool
}

// New builds an Atom and resolves its van der Waals radius from the
// built-in element table (DefaultVdwRadius if the element is unknown).
// The radius is resolved once, at construction, per spec.md §4.1 ("the
// moment the atom is admitted to the grid"); callers that build atoms
// ahead of grid construction get the same one-shot resolution.
func New(serial int, name, resName string, resSeq int, icode, chain, altLoc byte, pos geom.Point, element string) *Atom {
	return &Atom{
		Serial:   serial,
		Name:     name,
		ResName:  resName,
		ResSeq:   resSeq,
		ICode:    icode,
		Chain:    chain,
		AltLoc:   altLoc,
		Position: pos,
		Element:  element,
		Vdw:      VdwRadius(element),
	}
}

// Equal reports whether two atoms are the same atom, per spec.md §3:
// identifying fields must match exactly and coordinates must agree
// within geom.CoincidenceTolerance.
func (a *Atom) Equal(b *Atom) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name &&
		a.Chain == b.Chain &&
		a.AltLoc == b.AltLoc &&
		a.ResName == b.ResName &&
		a.ResSeq == b.ResSeq &&
		a.Position.Equal(b.Position)
}

// Copy returns an independent copy of a.
func (a *Atom) Copy() *Atom {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Charge != nil {
		c := *a.Charge
		cp.Charge = &c
	}
	return &cp
}

// Descriptor formats the atom as spec.md §6's
// residueName-residueNumber-chain-atomName descriptor.
func (a *Atom) Descriptor() string {
	return a.ResName + "-" + strconv.Itoa(a.ResSeq) + "-" + string(a.Chain) + "-" + a.Name
}

// CoordinateBound, with ResSeqMin and ResSeqMax below, gives the
// atom-validity limits spec.md §7 names for the "Input" error kind:
// coordinates outside +-CoordinateBound Å, or a residue sequence number
// outside [ResSeqMin, ResSeqMax] (asymmetric: -999 to 9999).
const CoordinateBound = 9999.0

// ResSeqMin and ResSeqMax bound ResSeq, per spec.md §7.
const (
	ResSeqMin = -999
	ResSeqMax = 9999
)

// Valid reports whether a's coordinates and residue sequence number
// fall within spec.md §7's Input-error bounds.
func (a *Atom) Valid() bool {
	p := a.Position
	if p.X() < -CoordinateBound || p.X() > CoordinateBound ||
		p.Y() < -CoordinateBound || p.Y() > CoordinateBound ||
		p.Z() < -CoordinateBound || p.Z() > CoordinateBound {
		return false
	}
	return a.ResSeq >= ResSeqMin && a.ResSeq <= ResSeqMax
}

// backboneNames are the four main-chain atom names shared by every
// amino acid. BackboneOnly mode is a predicate over these, not a
// distinct Atom subtype (spec.md §9).
var backboneNames = map[string]bool{"N": true, "CA": true, "C": true, "O": true}

// IsBackbone reports whether a is one of the four main-chain atoms.
func (a *Atom) IsBackbone() bool {
	return backboneNames[a.Name]
}

// List is an ordered sequence of atoms. Order is caller-meaningful
// (matches input file order) but not semantically significant to the
// engine.
type List []*Atom

// Len returns the number of atoms.
func (l List) Len() int { return len(l) }

// Backbone returns every backbone atom in l, preserving order.
func (l List) Backbone() List {
	out := make(List, 0, len(l))
	for _, a := range l {
		if a.IsBackbone() {
			out = append(out, a)
		}
	}
	return out
}
