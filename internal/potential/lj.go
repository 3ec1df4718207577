// Package potential implements the bonded and non-bonded energy/force
// kernels: Lennard-Jones with NBFix overrides and Lorentz-Berthelot
// combining, reaction-field or bare Coulomb electrostatics, harmonic bonds
// and angles, and the shared dihedral/improper torsion kernel (spec.md §4.2,
// §4.3, §4.4).
package potential

import (
	"math"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
)

// sigmaEpsilon resolves the pairwise sigma/epsilon for atom types it, jt,
// checking the NBFix override table first and falling back to the
// Lorentz-Berthelot combining rule; found14 selects the 1-4 parameter pair
// (spec.md §4.2.1).
func sigmaEpsilon(ix *ffcore.Index, it, jt int32, found14 bool) (sigma, epsilon float64) {
	for _, nb := range ix.NBFix {
		if (int32(nb.TypeA) == it && int32(nb.TypeB) == jt) || (int32(nb.TypeA) == jt && int32(nb.TypeB) == it) {
			if found14 {
				return nb.Sigma14, nb.Epsilon14
			}
			return nb.Sigma, nb.Epsilon
		}
	}

	si, sj := ix.Sigma[it], ix.Sigma[jt]
	ei, ej := ix.Epsilon[it], ix.Epsilon[jt]
	if found14 {
		si, sj = ix.Sigma14[it], ix.Sigma14[jt]
		ei, ej = ix.Epsilon14[it], ix.Epsilon14[jt]
	}
	sigma = 0.5 * (si + sj)
	epsilon = math.Sqrt(ei * ej)
	return sigma, epsilon
}

// ljAB converts (sigma, epsilon) into the 12-6 coefficients A = 4*eps*sigma^12,
// B = 4*eps*sigma^6 used by the potential/force expressions.
func ljAB(sigma, epsilon float64) (a, b float64) {
	s2 := sigma * sigma
	s6 := s2 * s2 * s2
	s12 := s6 * s6
	return 4 * epsilon * s12, 4 * epsilon * s6
}

// lennardJones evaluates the 12-6 potential and its radial force magnitude
// (dU/dr, matching the sign convention of EvaluatePair) at distance dist,
// dividing both by the 1-4 scale factor when scale != 1.
func lennardJones(a, b, dist, scale float64) (pot, force float64) {
	rinv1 := 1 / dist
	rinv2 := rinv1 * rinv1
	rinv6 := rinv2 * rinv2 * rinv2
	rinv12 := rinv6 * rinv6
	pot = (a*rinv12 - b*rinv6) / scale
	force = (-12*a*rinv12+6*b*rinv6)*rinv1/scale
	return pot, force
}
