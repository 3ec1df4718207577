package potential

import (
	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
)

// PairResult is the outcome of evaluating one non-excluded, in-cutoff atom
// pair: the three decomposed energy contributions and the force each atom
// receives from this pair alone.
type PairResult struct {
	Bond, LJ, Elec float64
	ForceI, ForceJ pbc.Vec3
}

// insets reports whether pair (i, j) has exactly one endpoint in each of
// setA/setB (spec.md §4.2 "Between-sets semantics" — an unordered partition,
// so either (i in A, j in B) or (i in B, j in A) count).
func insets(i, j int32, setA, setB []int) bool {
	inA := func(x int32) bool {
		for _, v := range setA {
			if int32(v) == x {
				return true
			}
		}
		return false
	}
	inB := func(x int32) bool {
		for _, v := range setB {
			if int32(v) == x {
				return true
			}
		}
		return false
	}
	return (inA(i) && inB(j)) || (inB(i) && inA(j))
}

// EvaluatePair computes the bonded, van der Waals, and electrostatic
// contribution of a single atom pair i < j, applying the exclusion,
// between-sets, and cutoff skip rules in the order spec.md §4.2 defines
// them. ok is false when the pair contributes nothing.
func EvaluatePair(ix *ffcore.Index, charges []float64, elecFactor float64, i, j int32, posI, posJ, box pbc.Vec3, opts ffcore.Options) (PairResult, bool) {
	if opts.BetweenSets != nil && !insets(i, j, opts.BetweenSets.A, opts.BetweenSets.B) {
		return PairResult{}, false
	}

	bondIdx := ix.BondedIndex(i, j)
	isBonded := bondIdx >= 0
	isExcluded := ix.IsExcluded(i, j)
	if isExcluded && !isBonded {
		return PairResult{}, false
	}

	disp := pbc.MinImage(pbc.Sub(posI, posJ), box)
	dist := pbc.Norm(disp)
	if opts.Cutoff > 0 && dist > opts.Cutoff {
		return PairResult{}, false
	}
	if dist == 0 {
		return PairResult{}, false
	}
	unit := pbc.Vec3{disp[0] / dist, disp[1] / dist, disp[2] / dist}

	var res PairResult
	var coeff float64

	if isBonded {
		k0 := ix.BondK[bondIdx]
		r0 := ix.BondR0[bondIdx]
		x := dist - r0
		res.Bond = k0 * x * x
		coeff += 2 * k0 * x
	}

	if !isExcluded {
		it, jt := ix.TypeOf[i], ix.TypeOf[j]
		vdwScale, elecScale, found14 := ix.Scale14(i, j)
		if !found14 {
			vdwScale, elecScale = 1, 1
		}

		sigma, epsilon := sigmaEpsilon(ix, it, jt, found14)
		a, b := ljAB(sigma, epsilon)
		potLJ, forceLJ := lennardJones(a, b, dist, vdwScale)
		res.LJ = potLJ
		coeff += forceLJ

		qiqj := elecFactor * charges[i] * charges[j]
		var potElec, forceElec float64
		if opts.RFA {
			potElec, forceElec = reactionField(qiqj, dist, opts.Cutoff, opts.SolventDielectric, elecScale)
		} else {
			potElec, forceElec = coulomb(qiqj, dist, elecScale)
		}
		res.Elec = potElec
		coeff += forceElec
	}

	res.ForceI = pbc.Vec3{-coeff * unit[0], -coeff * unit[1], -coeff * unit[2]}
	res.ForceJ = pbc.Vec3{coeff * unit[0], coeff * unit[1], coeff * unit[2]}
	return res, true
}
