package potential

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
)

// Scenario 5: n-butane-style dihedral with a single cosine term (k=1, n=3,
// phi0=0) at geometry phi=0 (spec.md §8 scenario 5).
func TestButaneDihedralAtPhiZero(t *testing.T) {
	var rec ffcore.TorsionRecord
	rec.Atoms = [4]int32{0, 1, 2, 3}
	for i := range rec.Components {
		rec.Components[i] = ffcore.UnusedTorsionTerm
	}
	rec.Components[0] = ffcore.TorsionTerm{K: 1, Phi0: 0, N: 3}

	positions := [4]pbc.Vec3{
		{0, 1, 0},
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
	}
	box := pbc.Vec3{0, 0, 0}

	res := EvaluateTorsion(rec, positions, box)
	if !almostEqual(res.Energy, 2.0, 1e-6) {
		t.Fatalf("expected dihedral energy 2.0, got %v", res.Energy)
	}
	for k, f := range res.Force {
		for axis, c := range f {
			if !almostEqual(c, 0, 1e-6) {
				t.Fatalf("expected zero force at the potential extremum, atom %d axis %d = %v", k, axis, c)
			}
		}
	}
}

func TestTorsionStopsAtNaNSentinel(t *testing.T) {
	var rec ffcore.TorsionRecord
	rec.Components[0] = ffcore.TorsionTerm{K: 5, Phi0: 0, N: 2}
	rec.Components[1] = ffcore.UnusedTorsionTerm
	rec.Components[2] = ffcore.TorsionTerm{K: 1000, Phi0: 0, N: 1} // must be ignored

	positions := [4]pbc.Vec3{{0, 1, 0}, {0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	box := pbc.Vec3{0, 0, 0}
	res := EvaluateTorsion(rec, positions, box)
	want := 5 * (1 + math.Cos(0))
	if !almostEqual(res.Energy, want, 1e-6) {
		t.Fatalf("expected energy %v stopping at sentinel, got %v", want, res.Energy)
	}
}
