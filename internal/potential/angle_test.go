package potential

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
)

// Scenario 4: water HOH angle at equilibrium has zero energy and zero force
// on all three atoms (spec.md §8 scenario 4).
func TestWaterAngleAtEquilibriumIsZero(t *testing.T) {
	theta0 := 104.52 * math.Pi / 180
	rec := ffcore.AngleRecord{A: 0, B: 1, C: 2, K: 55, Theta0: theta0}

	// Place H-O-H with the O at the vertex and both O-H bonds at 0.9572 A,
	// separated by exactly theta0.
	bond := 0.9572
	half := theta0 / 2
	posB := pbc.Vec3{0, 0, 0}
	posA := pbc.Vec3{bond * math.Sin(half), bond * math.Cos(half), 0}
	posC := pbc.Vec3{-bond * math.Sin(half), bond * math.Cos(half), 0}
	box := pbc.Vec3{0, 0, 0}

	res := EvaluateAngle(rec, posA, posB, posC, box)
	if !almostEqual(res.Energy, 0, 1e-8) {
		t.Fatalf("expected zero angle energy at equilibrium, got %v", res.Energy)
	}
	for _, f := range []pbc.Vec3{res.ForceA, res.ForceB, res.ForceC} {
		for _, c := range f {
			if !almostEqual(c, 0, 1e-6) {
				t.Fatalf("expected zero force at equilibrium angle, got %v", f)
			}
		}
	}
}
