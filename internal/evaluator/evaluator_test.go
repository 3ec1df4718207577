package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/units"
)

func argonPairIndex() *ffcore.Index {
	return &ffcore.Index{
		NumAtoms:    2,
		NumTypes:    1,
		TypeOf:      []int32{0, 0},
		Sigma:       []float64{3.405},
		Epsilon:     []float64{0.238},
		Sigma14:     []float64{3.405},
		Epsilon14:   []float64{0.238},
		ExclOffsets: []int32{0, 0, 0},
		BondOffsets: []int32{0, 0, 0},
		S14Offsets:  []int32{0, 0, 0},
		E14Offsets:  []int32{0, 0, 0},
	}
}

func waterIndex() *ffcore.Index {
	return &ffcore.Index{
		NumAtoms:    3,
		NumTypes:    2,
		TypeOf:      []int32{0, 1, 1},
		Sigma:       []float64{3.15, 0},
		Epsilon:     []float64{0.155, 0},
		Sigma14:     []float64{3.15, 0},
		Epsilon14:   []float64{0.155, 0},
		ExclOffsets: []int32{0, 2, 3, 3},
		ExclValues:  []int32{1, 2, 2},
		BondOffsets: []int32{0, 2, 2, 2},
		BondJ:       []int32{1, 2},
		BondK:       []float64{450, 450},
		BondR0:      []float64{0.9572, 0.9572},
		S14Offsets:  []int32{0, 0, 0, 0},
		E14Offsets:  []int32{0, 0, 0, 0},
		Angles: []ffcore.AngleRecord{
			{A: 1, B: 0, C: 2, K: 55, Theta0: 1.8242181},
		},
	}
}

// Newton's third law: for a two-atom system the net force on the pair
// (summed over both atoms) must vanish (spec.md §8 "Newton's third law").
func TestNewtonThirdLawArgonPair(t *testing.T) {
	ev, err := New(argonPairIndex(), []float64{0, 0}, ffcore.Options{}, units.Coulomb, 1)
	require.NoError(t, err)

	frame := &ffcore.Frame{Coords: [][3]float64{{0, 0, 0}, {4.0, 0, 0}}}
	res, err := ev.Evaluate(context.Background(), frame)
	require.NoError(t, err)

	for axis := 0; axis < 3; axis++ {
		sum := res.Forces[0][axis] + res.Forces[1][axis]
		require.InDelta(t, 0, sum, 1e-9)
	}
}

// Energy decomposition consistency: summing per-atom attribution reproduces
// the aggregate decomposition (spec.md §8 "Energy decomposition
// consistency").
func TestEnergyDecompositionConsistency(t *testing.T) {
	charges := []float64{-0.834, 0.417, 0.417}
	ev, err := New(waterIndex(), charges, ffcore.Options{}, units.Coulomb, 1)
	require.NoError(t, err)

	frame := &ffcore.Frame{Coords: [][3]float64{
		{0, 0, 0},
		{0.9572, 0, 0},
		{-0.24, 0.93, 0},
	}}
	res, err := ev.Evaluate(context.Background(), frame)
	require.NoError(t, err)

	var sumBond, sumVdw, sumElec, sumAngle float64
	for _, ae := range res.AtomEnergy {
		sumBond += ae.Bond
		sumVdw += ae.VanDerWaals
		sumElec += ae.Electrostatic
		sumAngle += ae.Angle
	}
	require.InDelta(t, res.Energy.Bond, sumBond, 1e-9)
	require.InDelta(t, res.Energy.VanDerWaals, sumVdw, 1e-9)
	require.InDelta(t, res.Energy.Electrostatic, sumElec, 1e-9)
	require.InDelta(t, res.Energy.Angle, sumAngle, 1e-9)
}

// PBC invariance: translating every coordinate by a whole number of box
// vectors must leave energies and forces unchanged (spec.md §8 "PBC
// invariance").
func TestPBCInvariance(t *testing.T) {
	ev, err := New(argonPairIndex(), []float64{0.3, -0.3}, ffcore.Options{}, units.Coulomb, 1)
	require.NoError(t, err)

	box := [3]float64{20, 20, 20}
	base := &ffcore.Frame{Coords: [][3]float64{{1, 1, 1}, {3, 2, 1}}, Box: box}
	shifted := &ffcore.Frame{Coords: [][3]float64{{21, -19, 1}, {23, -18, 1}}, Box: box}

	r1, err := ev.Evaluate(context.Background(), base)
	require.NoError(t, err)
	r2, err := ev.Evaluate(context.Background(), shifted)
	require.NoError(t, err)

	require.InDelta(t, r1.Energy.Total(), r2.Energy.Total(), 1e-8)
	for i := range r1.Forces {
		for k := 0; k < 3; k++ {
			require.InDelta(t, r1.Forces[i][k], r2.Forces[i][k], 1e-8)
		}
	}
}

// Frame independence: the evaluator carries no state between calls, so
// evaluating frame B right after frame A gives the same energy as
// evaluating frame B again (spec.md §8 "Frame independence").
func TestFrameIndependence(t *testing.T) {
	ev, err := New(argonPairIndex(), []float64{0, 0}, ffcore.Options{}, units.Coulomb, 1)
	require.NoError(t, err)

	frameA := &ffcore.Frame{Coords: [][3]float64{{0, 0, 0}, {4.0, 0, 0}}}
	frameB := &ffcore.Frame{Coords: [][3]float64{{0, 0, 0}, {5.0, 0, 0}}}

	ctx := context.Background()
	_, err = ev.Evaluate(ctx, frameA)
	require.NoError(t, err)
	resB1, err := ev.Evaluate(ctx, frameB)
	require.NoError(t, err)

	resB2, err := ev.Evaluate(ctx, frameB)
	require.NoError(t, err)

	require.InDelta(t, resB1.Energy.Total(), resB2.Energy.Total(), 1e-12)
}

// Between-sets symmetry: swapping the two sets must not change the total
// energy (spec.md §8 "Symmetry").
func TestBetweenSetsSymmetry(t *testing.T) {
	ix := argonPairIndex()
	charges := []float64{0.2, -0.2}

	optsAB := ffcore.Options{BetweenSets: &ffcore.BetweenSets{A: []int{0}, B: []int{1}}}
	optsBA := ffcore.Options{BetweenSets: &ffcore.BetweenSets{A: []int{1}, B: []int{0}}}

	evAB, err := New(ix, charges, optsAB, units.Coulomb, 1)
	require.NoError(t, err)
	evBA, err := New(ix, charges, optsBA, units.Coulomb, 1)
	require.NoError(t, err)

	frame := &ffcore.Frame{Coords: [][3]float64{{0, 0, 0}, {4.0, 0, 0}}}
	resAB, err := evAB.Evaluate(context.Background(), frame)
	require.NoError(t, err)
	resBA, err := evBA.Evaluate(context.Background(), frame)
	require.NoError(t, err)

	require.InDelta(t, resAB.Energy.Total(), resBA.Energy.Total(), 1e-12)
}
