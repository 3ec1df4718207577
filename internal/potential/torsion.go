package potential

import (
	"math"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
)

// TorsionResult is the energy and per-atom force contribution of one
// dihedral or improper term, in atom order (0,1,2,3) as stored in the
// record's Atoms field.
type TorsionResult struct {
	Energy float64
	Force  [4]pbc.Vec3
}

// dihedralAngle computes the signed dihedral angle phi formed by four atoms
// and the three chain vectors between them, using the bonded minimum-image
// convention on each segment.
func dihedralAngle(p0, p1, p2, p3, box pbc.Vec3) (phi float64, r12, r23, r34 pbc.Vec3) {
	r12 = pbc.MinImageBonded(pbc.Sub(p1, p0), box)
	r23 = pbc.MinImageBonded(pbc.Sub(p2, p1), box)
	r34 = pbc.MinImageBonded(pbc.Sub(p3, p2), box)

	n1 := pbc.Cross(r12, r23)
	n2 := pbc.Cross(r23, r34)
	b2norm := pbc.Norm(r23)
	b2unit := pbc.Vec3{r23[0] / b2norm, r23[1] / b2norm, r23[2] / b2norm}
	m1 := pbc.Cross(n1, b2unit)

	x := pbc.Dot(n1, n2)
	y := pbc.Dot(m1, n2)
	phi = math.Atan2(y, x)
	return phi, r12, r23, r34
}

// EvaluateTorsion evaluates a packed dihedral or improper record: it scans
// rec.Components until it finds the NaN sentinel (spec.md §4.4), accumulates
// the periodic-Fourier or harmonic-improper potential and its d(pot)/d(phi)
// coefficient for every component present, then distributes the combined
// torque across the four atoms via the standard chain-rule construction
// (as used by OpenMM's dihedral force kernel).
func EvaluateTorsion(rec ffcore.TorsionRecord, positions [4]pbc.Vec3, box pbc.Vec3) TorsionResult {
	phi, r12, r23, r34 := dihedralAngle(positions[0], positions[1], positions[2], positions[3], box)

	var pot, coef float64
	for _, c := range rec.Components {
		if math.IsNaN(c.K) {
			break
		}
		if c.N > 0 {
			arg := c.N*phi - c.Phi0
			pot += c.K * (1 + math.Cos(arg))
			coef += -c.N * c.K * math.Sin(arg)
		} else {
			diff := phi - c.Phi0
			if diff < -math.Pi {
				diff += 2 * math.Pi
			} else if diff > math.Pi {
				diff -= 2 * math.Pi
			}
			pot += c.K * diff * diff
			coef += 2 * c.K * diff
		}
	}

	cross1 := pbc.Cross(r12, r23)
	cross2 := pbc.Cross(r23, r34)
	norm2Delta2 := pbc.Dot(r23, r23)
	normBC := math.Sqrt(norm2Delta2)
	normCross1 := pbc.Dot(cross1, cross1)
	normCross2 := pbc.Dot(cross2, cross2)

	ff0 := (-coef * normBC) / normCross1
	ff3 := (coef * normBC) / normCross2
	ff1 := pbc.Dot(r12, r23) / norm2Delta2
	ff2 := pbc.Dot(r34, r23) / norm2Delta2

	force1 := pbc.Vec3{ff0 * cross1[0], ff0 * cross1[1], ff0 * cross1[2]}
	force4 := pbc.Vec3{ff3 * cross2[0], ff3 * cross2[1], ff3 * cross2[2]}
	s := pbc.Vec3{
		ff1*force1[0] - ff2*force4[0],
		ff1*force1[1] - ff2*force4[1],
		ff1*force1[2] - ff2*force4[2],
	}

	var res TorsionResult
	res.Energy = pot
	res.Force[0] = pbc.Vec3{-force1[0], -force1[1], -force1[2]}
	res.Force[1] = pbc.Vec3{force1[0] + s[0], force1[1] + s[1], force1[2] + s[2]}
	res.Force[2] = pbc.Vec3{force4[0] - s[0], force4[1] - s[1], force4[2] - s[2]}
	res.Force[3] = pbc.Vec3{-force4[0], -force4[1], -force4[2]}
	return res
}
