package ffcore

import "math"

// MaxTorsionComponents bounds the fixed-width slot count the torsion kernel
// scans per dihedral/improper record. A component with K == NaN is the
// sentinel that stops accumulation (spec.md §4.4, §9 "Polymorphism over
// parameter kinds").
const MaxTorsionComponents = 6

// TorsionTerm is one packed Fourier (or harmonic-improper) component.
// N > 0 selects the periodic form; N <= 0 selects the non-periodic harmonic
// improper form (spec.md §4.4 step 2).
type TorsionTerm struct {
	K    float64
	Phi0 float64 // radians
	N    float64
}

// UnusedTorsionTerm is the sentinel value written into unused component
// slots; the kernel stops scanning a record's component list as soon as it
// sees K is NaN.
var UnusedTorsionTerm = TorsionTerm{K: math.NaN()}

// NBFixResolved is an indexed NBFix override ready for symmetric pair
// matching in the pair kernel.
type NBFixResolved struct {
	TypeA, TypeB         int
	Epsilon, Sigma       float64
	Epsilon14, Sigma14   float64
}

// AngleRecord is a packed, pre-converted (radians) angle term.
type AngleRecord struct {
	A, B, C    int32
	K, Theta0  float64
}

// TorsionRecord is a packed dihedral or improper term: four atom indexes
// plus up to MaxTorsionComponents resolved Fourier/harmonic components.
type TorsionRecord struct {
	Atoms      [4]int32
	Components [MaxTorsionComponents]TorsionTerm
}

// Index is the complete set of packed, index-friendly arrays produced by
// the topology indexer (spec.md §4.1). It is built once from an immutable
// snapshot of the input topology and parameters and is read-only during
// evaluation; every kernel takes an *Index plus per-frame coordinates.
type Index struct {
	NumAtoms int
	NumTypes int

	TypeOf []int32 // atom -> interned unique-type index

	// Per-type Lennard-Jones parameters (length NumTypes).
	Sigma, Epsilon, Sigma14, Epsilon14 []float64

	// NBFix overrides, scanned linearly (F is expected to be small).
	NBFix []NBFixResolved

	// Per-atom exclusion list (1-2 and 1-3 neighbors), j > i, CSR-packed.
	ExclOffsets []int32
	ExclValues  []int32

	// Per-atom bonded-neighbor list (1-2 only), j > i, CSR-packed, parallel
	// K/R0 arrays addressed by the same position.
	BondOffsets []int32
	BondJ       []int32
	BondK       []float64
	BondR0      []float64

	// Per-atom 1-4 van der Waals scaling list, j > i, CSR-packed.
	S14Offsets []int32
	S14J       []int32
	S14Scale   []float64

	// Per-atom 1-4 electrostatic scaling list, j > i, CSR-packed.
	E14Offsets []int32
	E14J       []int32
	E14Scale   []float64

	Angles    []AngleRecord
	Dihedrals []TorsionRecord
	Impropers []TorsionRecord

	UreyBradleyDetected bool
}

// Exclusions returns the slice of excluded partners (j > i) for atom i.
func (ix *Index) Exclusions(i int) []int32 {
	return ix.ExclValues[ix.ExclOffsets[i]:ix.ExclOffsets[i+1]]
}

// IsExcluded reports whether j (j > i) is in atom i's exclusion list.
func (ix *Index) IsExcluded(i, j int32) bool {
	return contains(ix.ExclValues[ix.ExclOffsets[i]:ix.ExclOffsets[i+1]], j)
}

// BondedIndex returns the position of j in atom i's bonded-neighbor list, or
// -1 if i and j are not directly bonded.
func (ix *Index) BondedIndex(i, j int32) int {
	lo, hi := ix.BondOffsets[i], ix.BondOffsets[i+1]
	for k := lo; k < hi; k++ {
		if ix.BondJ[k] == j {
			return int(k)
		}
	}
	return -1
}

// Scale14 returns (vdwScale, elecScale, found) for the 1-4 pair (i,j), j>i.
func (ix *Index) Scale14(i, j int32) (float64, float64, bool) {
	vdw, foundVdw := find14(ix.S14Offsets, ix.S14J, ix.S14Scale, i, j)
	elec, foundElec := find14(ix.E14Offsets, ix.E14J, ix.E14Scale, i, j)
	return vdw, elec, foundVdw || foundElec
}

func find14(offsets, js []int32, scales []float64, i, j int32) (float64, bool) {
	lo, hi := offsets[i], offsets[i+1]
	for k := lo; k < hi; k++ {
		if js[k] == j {
			return scales[k], true
		}
	}
	return 1, false
}

func contains(s []int32, v int32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
