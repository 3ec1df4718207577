package potential

import (
	"math"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
)

// AngleResult is the energy and per-atom force contribution of one harmonic
// angle term, atoms ordered (A, B, C) with B the vertex.
type AngleResult struct {
	Energy         float64
	ForceA, ForceB, ForceC pbc.Vec3
}

// EvaluateAngle computes the harmonic angle potential U = k*(theta-theta0)^2
// and its analytic three-atom force distribution (spec.md §4.3). Bonded
// vectors use the bonded minimum-image convention.
func EvaluateAngle(rec ffcore.AngleRecord, posA, posB, posC, box pbc.Vec3) AngleResult {
	r21 := pbc.MinImageBonded(pbc.Sub(posA, posB), box)
	r23 := pbc.MinImageBonded(pbc.Sub(posC, posB), box)

	norm21 := pbc.Dot(r21, r21)
	norm23 := pbc.Dot(r23, r23)
	norm21inv := 1 / math.Sqrt(norm21)
	norm23inv := 1 / math.Sqrt(norm23)

	cosTheta := pbc.Dot(r21, r23) * norm21inv * norm23inv
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)

	deltaTheta := theta - rec.Theta0
	energy := rec.K * deltaTheta * deltaTheta

	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	var coef float64
	if sinTheta != 0 {
		coef = -2 * rec.K * deltaTheta / sinTheta
	}

	var forceA, forceC pbc.Vec3
	for k := 0; k < 3; k++ {
		forceA[k] = coef * (cosTheta*r21[k]*norm21inv - r23[k]*norm23inv) * norm21inv
		forceC[k] = coef * (cosTheta*r23[k]*norm23inv - r21[k]*norm21inv) * norm23inv
	}
	forceB := pbc.Vec3{-(forceA[0] + forceC[0]), -(forceA[1] + forceC[1]), -(forceA[2] + forceC[2])}

	return AngleResult{Energy: energy, ForceA: forceA, ForceB: forceB, ForceC: forceC}
}
