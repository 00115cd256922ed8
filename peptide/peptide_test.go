package peptide

import "testing"

func TestEligibleAcceptsSimpleTrypticPeptide(t *testing.T) {
	// Single central lysine, tryptic C-terminus, no miscleavage.
	if !Eligible("ALKFGR", 0) {
		t.Fatalf("expected ALKFGR to be eligible")
	}
}

func TestEligibleRejectsTooShort(t *testing.T) {
	if Eligible("AK", 0) {
		t.Fatalf("expected a 2-residue sequence to be rejected on length")
	}
}

func TestEligibleRejectsTooManyMiscleavages(t *testing.T) {
	if Eligible("ALKFGR", 2) {
		t.Fatalf("expected miscleavages=2 to be rejected")
	}
}

func TestEligibleRejectsNonTrypticCTerminus(t *testing.T) {
	if Eligible("ALKFGA", 0) {
		t.Fatalf("expected a non-K/R C-terminus to be rejected")
	}
}
