package atom

import (
	"testing"

	"github.com/xwalk-go/xwalk/geom"
)

func TestVdwRadiusKnownAndUnknown(t *testing.T) {
	if r := VdwRadius("C"); r != 1.70 {
		t.Fatalf("VdwRadius(C) = %v, want 1.70", r)
	}
	if r := VdwRadius("Xx"); r != DefaultVdwRadius {
		t.Fatalf("VdwRadius(unknown) = %v, want default %v", r, DefaultVdwRadius)
	}
}

func TestNewResolvesRadius(t *testing.T) {
	a := New(1, "NZ", "LYS", 42, 0, 'A', 0, geom.NewPoint(0, 0, 0), "N")
	if a.Vdw != VdwRadius("N") {
		t.Fatalf("New did not resolve Vdw radius: got %v", a.Vdw)
	}
}

func TestEqual(t *testing.T) {
	p1 := geom.NewPoint(1, 2, 3)
	p2 := p1.Add(geom.CoincidenceTolerance/2, 0, 0)
	a := New(1, "NZ", "LYS", 42, 0, 'A', 0, p1, "N")
	b := New(2, "NZ", "LYS", 42, 0, 'A', 0, p2, "N")
	if !a.Equal(b) {
		t.Fatalf("expected atoms with differing serials but matching identity to be equal")
	}
	c := New(3, "NZ", "LYS", 43, 0, 'A', 0, p1, "N")
	if a.Equal(c) {
		t.Fatalf("expected atoms with different ResSeq to differ")
	}
}

func TestDescriptor(t *testing.T) {
	a := New(1, "NZ", "LYS", 42, 0, 'A', 0, geom.NewPoint(0, 0, 0), "N")
	if got, want := a.Descriptor(), "LYS-42-A-NZ"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestValid(t *testing.T) {
	a := New(1, "NZ", "LYS", 42, 0, 'A', 0, geom.NewPoint(0, 0, 0), "N")
	if !a.Valid() {
		t.Fatalf("expected an ordinary atom to be valid")
	}
	badCoord := New(2, "NZ", "LYS", 42, 0, 'A', 0, geom.NewPoint(20000, 0, 0), "N")
	if badCoord.Valid() {
		t.Fatalf("expected an atom outside coordinate bounds to be invalid")
	}
	badResSeq := New(3, "NZ", "LYS", -5000, 0, 'A', 0, geom.NewPoint(0, 0, 0), "N")
	if badResSeq.Valid() {
		t.Fatalf("expected an atom outside residue sequence bounds to be invalid")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	charge := 1.0
	a := New(1, "NZ", "LYS", 42, 0, 'A', 0, geom.NewPoint(0, 0, 0), "N")
	a.Charge = &charge
	b := a.Copy()
	*b.Charge = 2.0
	if *a.Charge != 1.0 {
		t.Fatalf("Copy shared the Charge pointer with the original")
	}
}
