package xwalk

import "testing"

func TestWithDefaults(t *testing.T) {
	p := WithDefaults(Params{})
	if p.MaxDistance != DefaultCrossLinkerLength {
		t.Fatalf("MaxDistance default = %v, want %v", p.MaxDistance, DefaultCrossLinkerLength)
	}
	if p.CellSize != DefaultCellSize {
		t.Fatalf("CellSize default = %v, want %v", p.CellSize, DefaultCellSize)
	}
	if p.SolventRadius != DefaultSolventRadius {
		t.Fatalf("SolventRadius default = %v, want %v", p.SolventRadius, DefaultSolventRadius)
	}
}

func TestWithDefaultsBackboneSolventRadius(t *testing.T) {
	p := WithDefaults(Params{BackboneOnly: true})
	if p.SolventRadius != SolventRadiusBackbone {
		t.Fatalf("backbone-only SolventRadius default = %v, want %v", p.SolventRadius, SolventRadiusBackbone)
	}
}

func TestValidateRejectsNonPositiveMaxDistance(t *testing.T) {
	p := WithDefaults(Params{MaxDistance: -1})
	if err := p.Validate(); err == nil {
		t.Fatalf("expected Validate to reject negative MaxDistance")
	}
}

func TestEffectiveMaxDistanceClampsToCeiling(t *testing.T) {
	p := WithDefaults(Params{MaxDistance: 500})
	if got := p.effectiveMaxDistance(); got != MaxSASDDistance {
		t.Fatalf("effectiveMaxDistance() = %v, want %v", got, MaxSASDDistance)
	}
}
