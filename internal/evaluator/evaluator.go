// Package evaluator drives the non-bonded pair loop and the bonded angle,
// dihedral, and improper kernels over one or more coordinate frames,
// combining their contributions into a single energy/force result per frame
// (spec.md §5).
package evaluator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/pbc"
	"github.com/sarat-asymmetrica/ffcore/internal/potential"
	"github.com/sarat-asymmetrica/ffcore/internal/units"
)

// EnergyComponents is the energy decomposition of spec.md §4, one value per
// term. All fields are in kcal/mol.
type EnergyComponents struct {
	Bond, VanDerWaals, Electrostatic, Angle, Dihedral, Improper float64
}

// Total sums the six components.
func (e EnergyComponents) Total() float64 {
	return e.Bond + e.VanDerWaals + e.Electrostatic + e.Angle + e.Dihedral + e.Improper
}

// Result is the full output of evaluating one frame: decomposed energies,
// the net force on every atom, and the per-atom energy attribution of
// spec.md §4.5 (each pairwise/angle/torsion contribution split evenly across
// its participating atoms).
type Result struct {
	Energy     EnergyComponents
	Forces     [][3]float64
	AtomEnergy []EnergyComponents
}

// Evaluator holds the immutable inputs needed to evaluate any number of
// frames: the packed topology index, per-atom charges, the construction-time
// options, and the derived Coulomb prefactor.
type Evaluator struct {
	Index      *ffcore.Index
	Charges    []float64
	Options    ffcore.Options
	ElecFactor float64
	// Workers bounds the number of goroutines used to partition the pair
	// loop; 0 selects runtime.GOMAXPROCS(0).
	Workers int
}

// New validates charges against the index and returns a ready Evaluator.
func New(ix *ffcore.Index, charges []float64, opts ffcore.Options, elecFactor float64, workers int) (*Evaluator, error) {
	if len(charges) != ix.NumAtoms {
		return nil, ffcore.InvalidShapeError{Reason: "charges length does not match index atom count"}
	}
	if opts.RFA && opts.Cutoff <= 0 {
		return nil, ffcore.InvalidConfigurationError{Reason: "rfa requires cutoff > 0"}
	}
	if opts.RFA && opts.SolventDielectric == 0 {
		opts.SolventDielectric = units.DefaultSolventDielectric
	}
	return &Evaluator{Index: ix, Charges: charges, Options: opts, ElecFactor: elecFactor, Workers: workers}, nil
}

type workerAccum struct {
	energy           EnergyComponents
	forceX, forceY, forceZ []float64
	atomE            []EnergyComponents
}

func newWorkerAccum(n int) *workerAccum {
	return &workerAccum{
		forceX: make([]float64, n),
		forceY: make([]float64, n),
		forceZ: make([]float64, n),
		atomE:  make([]EnergyComponents, n),
	}
}

// Evaluate computes the energy decomposition, per-atom forces, and per-atom
// energy attribution for one coordinate frame.
func (ev *Evaluator) Evaluate(ctx context.Context, frame *ffcore.Frame) (*Result, error) {
	n := ev.Index.NumAtoms
	if len(frame.Coords) != n {
		return nil, ffcore.InvalidShapeError{Reason: "frame coordinate count does not match index atom count"}
	}
	box := pbc.Vec3(frame.Box)

	workers := ev.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	accums := make([]*workerAccum, workers)
	g, _ := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			accums[w] = newWorkerAccum(n)
			continue
		}
		g.Go(func() error {
			acc := newWorkerAccum(n)
			for i := lo; i < hi; i++ {
				for j := i + 1; j < n; j++ {
					posI := pbc.Vec3(frame.Coords[i])
					posJ := pbc.Vec3(frame.Coords[j])
					res, ok := potential.EvaluatePair(ev.Index, ev.Charges, ev.ElecFactor, int32(i), int32(j), posI, posJ, box, ev.Options)
					if !ok {
						continue
					}
					acc.energy.Bond += res.Bond
					acc.energy.VanDerWaals += res.LJ
					acc.energy.Electrostatic += res.Elec

					acc.atomE[i].Bond += res.Bond * 0.5
					acc.atomE[j].Bond += res.Bond * 0.5
					acc.atomE[i].VanDerWaals += res.LJ * 0.5
					acc.atomE[j].VanDerWaals += res.LJ * 0.5
					acc.atomE[i].Electrostatic += res.Elec * 0.5
					acc.atomE[j].Electrostatic += res.Elec * 0.5

					acc.forceX[i] += res.ForceI[0]
					acc.forceY[i] += res.ForceI[1]
					acc.forceZ[i] += res.ForceI[2]
					acc.forceX[j] += res.ForceJ[0]
					acc.forceY[j] += res.ForceJ[1]
					acc.forceZ[j] += res.ForceJ[2]
				}
			}
			accums[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Forces:     make([][3]float64, n),
		AtomEnergy: make([]EnergyComponents, n),
	}
	fx := make([]float64, n)
	fy := make([]float64, n)
	fz := make([]float64, n)
	for _, acc := range accums {
		result.Energy.Bond += acc.energy.Bond
		result.Energy.VanDerWaals += acc.energy.VanDerWaals
		result.Energy.Electrostatic += acc.energy.Electrostatic
		// floats.Add performs the final per-axis reduction of each
		// worker's private force buffer into the shared total, so the
		// hot pair loop above never touches a shared slice.
		floats.Add(fx, acc.forceX)
		floats.Add(fy, acc.forceY)
		floats.Add(fz, acc.forceZ)
		for i := 0; i < n; i++ {
			result.AtomEnergy[i].Bond += acc.atomE[i].Bond
			result.AtomEnergy[i].VanDerWaals += acc.atomE[i].VanDerWaals
			result.AtomEnergy[i].Electrostatic += acc.atomE[i].Electrostatic
		}
	}
	for i := 0; i < n; i++ {
		result.Forces[i] = [3]float64{fx[i], fy[i], fz[i]}
	}

	if ev.Options.BetweenSets != nil {
		return result, nil
	}

	for _, a := range ev.Index.Angles {
		posA := pbc.Vec3(frame.Coords[a.A])
		posB := pbc.Vec3(frame.Coords[a.B])
		posC := pbc.Vec3(frame.Coords[a.C])
		ar := potential.EvaluateAngle(a, posA, posB, posC, box)
		result.Energy.Angle += ar.Energy
		addForce(result.Forces, int(a.A), ar.ForceA)
		addForce(result.Forces, int(a.B), ar.ForceB)
		addForce(result.Forces, int(a.C), ar.ForceC)
		share := ar.Energy / 3
		result.AtomEnergy[a.A].Angle += share
		result.AtomEnergy[a.B].Angle += share
		result.AtomEnergy[a.C].Angle += share
	}

	for _, d := range ev.Index.Dihedrals {
		tr := potential.EvaluateTorsion(d, positionsOf(frame, d.Atoms), box)
		result.Energy.Dihedral += tr.Energy
		share := tr.Energy / 4
		for k := 0; k < 4; k++ {
			addForce(result.Forces, int(d.Atoms[k]), tr.Force[k])
			result.AtomEnergy[d.Atoms[k]].Dihedral += share
		}
	}

	for _, imp := range ev.Index.Impropers {
		tr := potential.EvaluateTorsion(imp, positionsOf(frame, imp.Atoms), box)
		result.Energy.Improper += tr.Energy
		share := tr.Energy / 4
		for k := 0; k < 4; k++ {
			addForce(result.Forces, int(imp.Atoms[k]), tr.Force[k])
			result.AtomEnergy[imp.Atoms[k]].Improper += share
		}
	}

	return result, nil
}

func positionsOf(frame *ffcore.Frame, atoms [4]int32) [4]pbc.Vec3 {
	var out [4]pbc.Vec3
	for k := 0; k < 4; k++ {
		out[k] = pbc.Vec3(frame.Coords[atoms[k]])
	}
	return out
}

func addForce(forces [][3]float64, atom int, f pbc.Vec3) {
	forces[atom][0] += f[0]
	forces[atom][1] += f[1]
	forces[atom][2] += f[2]
}
