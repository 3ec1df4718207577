// Package ffcore defines the data model shared by the topology indexer, the
// non-bonded/bonded kernels, and the evaluator: the raw (upstream-supplied)
// topology and parameter tables of spec.md §3/§6, and the packed, index-
// friendly arrays the indexer produces from them.
//
// Nothing in this package parses parameter files or structure files — those
// are treated as external collaborators (spec.md §1) that hand fully-typed
// Go values to NewIndex.
package ffcore

// Wildcard is the token that matches any atom type at its tuple position
// during parameter-table lookup.
const Wildcard = "X"

// Topology is the raw, upstream-supplied bonded connectivity plus per-atom
// typing. All index slices refer to positions in Types/Charges.
type Topology struct {
	Types   []string  // atom-type name per atom, t[i]
	Charges []float64 // partial charge per atom, q[i], elementary units

	Bonds     [][2]int // (a, b) atom-index pairs
	Angles    [][3]int // (a, b, c) atom-index triples, b is the vertex
	Dihedrals [][4]int // (a, b, c, d) atom-index quadruples
	Impropers [][4]int // (a, b, c, d); canonical center is position 2
}

// NumAtoms returns the atom count implied by Types.
func (t *Topology) NumAtoms() int { return len(t.Types) }

// AtomTypeParams holds the per-type Lennard-Jones parameters in the
// combining-rule table (§3 UniqueType table).
type AtomTypeParams struct {
	Sigma     float64
	Epsilon   float64
	Sigma14   float64
	Epsilon14 float64
}

// BondParams holds the harmonic bond stiffness and equilibrium length.
type BondParams struct {
	K  float64 // kcal/(mol*Angstrom^2)
	R0 float64 // Angstroms
}

// AngleParams holds the harmonic angle stiffness and equilibrium angle.
// ThetaDeg is in degrees, matching the parameter-table boundary convention
// (spec.md §6); the indexer converts to radians when packing.
type AngleParams struct {
	K        float64
	ThetaDeg float64
}

// DihedralComponent is one Fourier term of a (possibly multi-term) dihedral
// parameter record. PhiDeg is in degrees; N is the periodicity (>=1). Scnb
// and Scee are the 1-4 van der Waals and electrostatic scaling divisors,
// taken from the first component per spec.md §4.1's duplicate-suppression
// rule (first occurrence wins).
type DihedralComponent struct {
	K      float64
	PhiDeg float64
	N      int
	Scnb   float64
	Scee   float64
}

// ImproperParams is the harmonic (non-periodic) improper form:
// U = k*(psi-psi_eq)^2, detected by a zero periodicity field.
type ImproperParams struct {
	K     float64
	PsiEq float64 // degrees
}

// ImproperPeriodicParams is the periodic improper form, structurally
// identical to a single dihedral Fourier component.
type ImproperPeriodicParams struct {
	K      float64
	PhiDeg float64
	N      int
}

// NBFixParams overrides the Lorentz-Berthelot combining rule for a specific
// unordered atom-type pair. RMin/RMin14 are r_min values (converted to sigma
// by the indexer); Epsilon/Epsilon14 are well depths.
type NBFixParams struct {
	RMin      float64
	Epsilon   float64
	RMin14    float64
	Epsilon14 float64
}

// UreyBradleyParams is only inspected for a nonzero K to drive the one-shot
// warning of spec.md §4.1/§7; Urey-Bradley terms are never evaluated.
type UreyBradleyParams struct {
	K float64
}

// Entry types pair a type-tuple key with its parameters. Bonded-term tables
// are modeled as ordered slices rather than Go maps because spec.md §4.1's
// wildcard resolution is defined in terms of "the parameter table's
// iteration order" and Go map iteration order is intentionally randomized;
// a slice preserves whatever order the upstream parameter-file parser
// produced (see DESIGN.md for this Open Question resolution).
type AtomTypeEntry struct {
	Type   string
	Params AtomTypeParams
}

type BondTypeEntry struct {
	Key    [2]string
	Params BondParams
}

type AngleTypeEntry struct {
	Key    [3]string
	Params AngleParams
}

type DihedralTypeEntry struct {
	Key        [4]string
	Components []DihedralComponent
}

type ImproperTypeEntry struct {
	Key    [4]string
	Params ImproperParams
}

type ImproperPeriodicTypeEntry struct {
	Key    [4]string
	Params ImproperPeriodicParams
}

type NBFixEntry struct {
	Key    [2]string
	Params NBFixParams
}

type UreyBradleyEntry struct {
	Key    [3]string
	Params UreyBradleyParams
}

// Parameters is the full parameter set supplied to NewIndex, keyed by
// atom-type tuples exactly as described in spec.md §6.
type Parameters struct {
	AtomTypes             []AtomTypeEntry
	BondTypes             []BondTypeEntry
	AngleTypes            []AngleTypeEntry
	DihedralTypes         []DihedralTypeEntry
	ImproperTypes         []ImproperTypeEntry
	ImproperPeriodicTypes []ImproperPeriodicTypeEntry
	NBFixTypes            []NBFixEntry
	UreyBradleyTypes      []UreyBradleyEntry
}

// BetweenSets restricts pair evaluation to pairs with one endpoint in A and
// the other in B (spec.md §4.2 "Between-sets semantics"); configuring this
// also suppresses all bonded kernels for the evaluation.
type BetweenSets struct {
	A []int
	B []int
}

// Options carries the evaluator construction-time configuration recognized
// by spec.md §6.
type Options struct {
	BetweenSets       *BetweenSets
	Cutoff            float64 // 0 disables
	RFA               bool    // requires Cutoff > 0
	SolventDielectric float64 // default 78.5 when RFA is enabled and this is 0
}

// Frame is one coordinate snapshot: Coords is N x 3, Box is the (Lx,Ly,Lz)
// side lengths (0 along an axis disables PBC on that axis).
type Frame struct {
	Coords [][3]float64
	Box    [3]float64
}
