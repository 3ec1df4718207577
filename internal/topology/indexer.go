// Package topology builds a packed ffcore.Index from a raw ffcore.Topology
// and ffcore.Parameters — atom-type interning, per-type LJ combining,
// NBFix resolution, exclusion/bond/angle/1-4 list construction, dihedral
// deduplication, and improper center detection — the single largest
// component of the evaluator (spec.md §2, §4.1).
package topology

import (
	"math"
	"sort"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/logging"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// sigmaFromRMin converts an r_min (CHARMM-convention NBFix radius) to the
// Lennard-Jones sigma parameter: sigma = r_min * 2^(-1/6) (spec.md §4.1
// "NBFix" — matches the reference implementation's rmin->sigma step).
func sigmaFromRMin(rmin float64) float64 {
	return rmin * math.Pow(2, -1.0/6.0)
}

// NewIndex resolves topo against prm and packs the result into an
// *ffcore.Index ready for repeated evaluation. logger receives the one-shot
// Urey-Bradley warning (spec.md §4.1/§7); pass a nop logger in tests.
func NewIndex(topo *ffcore.Topology, prm *ffcore.Parameters, logger logging.Logger) (*ffcore.Index, error) {
	n := topo.NumAtoms()
	if len(topo.Charges) != n {
		return nil, ffcore.InvalidShapeError{Reason: "charges length does not match atom-type length"}
	}

	typeNames, typeOf, err := internTypes(topo.Types)
	if err != nil {
		return nil, err
	}
	numTypes := len(typeNames)

	sigma := make([]float64, numTypes)
	epsilon := make([]float64, numTypes)
	sigma14 := make([]float64, numTypes)
	epsilon14 := make([]float64, numTypes)
	for i, name := range typeNames {
		p, ok := resolveAtomType(prm.AtomTypes, name)
		if !ok {
			return nil, ffcore.ParameterMissingError{Term: "atom type", Types: []string{name}}
		}
		sigma[i], epsilon[i], sigma14[i], epsilon14[i] = p.Sigma, p.Epsilon, p.Sigma14, p.Epsilon14
	}

	nbfix, err := indexNBFix(prm.NBFixTypes, typeNames)
	if err != nil {
		return nil, err
	}

	if len(prm.UreyBradleyTypes) > 0 {
		hasNonzero := false
		for _, e := range prm.UreyBradleyTypes {
			if e.Params.K != 0 {
				hasNonzero = true
				break
			}
		}
		if hasNonzero && logger != nil {
			logger.Warn("Urey-Bradley terms are present in the parameter set but are not evaluated")
		}
	}

	bondOffsets, bondJ, bondK, bondR0, err := indexBonds(n, topo.Bonds, topo.Types, prm.BondTypes)
	if err != nil {
		return nil, err
	}

	exclOffsets, exclValues := indexExclusions(n, topo.Bonds, topo.Angles)

	angles, err := indexAngles(topo.Angles, topo.Types, prm.AngleTypes)
	if err != nil {
		return nil, err
	}

	dihedrals, s14pairs, e14pairs, err := indexDihedrals(topo.Dihedrals, topo.Types, prm.DihedralTypes)
	if err != nil {
		return nil, err
	}

	impropers, err := indexImpropers(topo.Impropers, topo.Types, topo.Bonds, prm)
	if err != nil {
		return nil, err
	}

	s14Offsets, s14J, s14Scale := packScale14(n, s14pairs)
	e14Offsets, e14J, e14Scale := packScale14(n, e14pairs)

	return &ffcore.Index{
		NumAtoms:  n,
		NumTypes:  numTypes,
		TypeOf:    typeOf,
		Sigma:     sigma,
		Epsilon:   epsilon,
		Sigma14:   sigma14,
		Epsilon14: epsilon14,
		NBFix:     nbfix,

		ExclOffsets: exclOffsets,
		ExclValues:  exclValues,

		BondOffsets: bondOffsets,
		BondJ:       bondJ,
		BondK:       bondK,
		BondR0:      bondR0,

		S14Offsets: s14Offsets,
		S14J:       s14J,
		S14Scale:   s14Scale,

		E14Offsets: e14Offsets,
		E14J:       e14J,
		E14Scale:   e14Scale,

		Angles:    angles,
		Dihedrals: dihedrals,
		Impropers: impropers,
	}, nil
}

// internTypes assigns a stable, first-seen-order integer id to each distinct
// atom-type name (ordered, not a map, so NumTypes-sized arrays are built in
// a deterministic and reproducible sequence).
func internTypes(types []string) ([]string, []int32, error) {
	ids := make(map[string]int32, len(types))
	var names []string
	typeOf := make([]int32, len(types))
	for i, t := range types {
		id, ok := ids[t]
		if !ok {
			id = int32(len(names))
			ids[t] = id
			names = append(names, t)
		}
		typeOf[i] = id
	}
	return names, typeOf, nil
}

type scale14Pair struct {
	i, j  int32
	scale float64
}

// indexBonds builds the CSR bonded-neighbor list (lower atom index first,
// j > i within each row) with resolved K/R0 attached in parallel arrays.
func indexBonds(n int, bonds [][2]int, types []string, table []ffcore.BondTypeEntry) ([]int32, []int32, []float64, []float64, error) {
	type rec struct {
		j          int32
		k, r0      float64
	}
	rows := make([][]rec, n)
	for _, b := range bonds {
		a, c := b[0], b[1]
		lo, hi := a, c
		if lo > hi {
			lo, hi = hi, lo
		}
		p, ok := resolveBond(table, [2]string{types[lo], types[hi]})
		if !ok {
			return nil, nil, nil, nil, ffcore.ParameterMissingError{Term: "bond", Types: []string{types[lo], types[hi]}}
		}
		rows[lo] = append(rows[lo], rec{j: int32(hi), k: p.K, r0: p.R0})
	}

	offsets := make([]int32, n+1)
	var js []int32
	var ks, r0s []float64
	for i := 0; i < n; i++ {
		offsets[i] = int32(len(js))
		for _, r := range rows[i] {
			js = append(js, r.j)
			ks = append(ks, r.k)
			r0s = append(r0s, r.r0)
		}
	}
	offsets[n] = int32(len(js))
	return offsets, js, ks, r0s, nil
}

// indexExclusions builds the 1-2/1-3 exclusion CSR list (union of bonded
// neighbors and angle end-atoms), lower index first, j > i per row.
func indexExclusions(n int, bonds [][2]int, angles [][3]int) ([]int32, []int32) {
	rows := make([]map[int32]struct{}, n)
	add := func(a, b int) {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		if rows[lo] == nil {
			rows[lo] = make(map[int32]struct{})
		}
		rows[lo][int32(hi)] = struct{}{}
	}
	for _, b := range bonds {
		add(b[0], b[1])
	}
	for _, a := range angles {
		add(a[0], a[1])
		add(a[1], a[2])
		add(a[0], a[2])
	}

	offsets := make([]int32, n+1)
	var values []int32
	for i := 0; i < n; i++ {
		offsets[i] = int32(len(values))
		var row []int32
		for j := range rows[i] {
			row = append(row, j)
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		values = append(values, row...)
	}
	offsets[n] = int32(len(values))
	return offsets, values
}

// indexAngles resolves each angle triple and converts the equilibrium angle
// to radians for kernel consumption.
func indexAngles(angles [][3]int, types []string, table []ffcore.AngleTypeEntry) ([]ffcore.AngleRecord, error) {
	var out []ffcore.AngleRecord
	for _, a := range angles {
		key := [3]string{types[a[0]], types[a[1]], types[a[2]]}
		p, ok := resolveAngle(table, key)
		if !ok {
			return nil, ffcore.ParameterMissingError{Term: "angle", Types: key[:]}
		}
		out = append(out, ffcore.AngleRecord{
			A: int32(a[0]), B: int32(a[1]), C: int32(a[2]),
			K: p.K, Theta0: degToRad(p.ThetaDeg),
		})
	}
	return out, nil
}

// indexDihedrals deduplicates dihedrals on their sorted atom quadruple
// (first occurrence wins, spec.md §4.1), resolves Fourier components, and
// collects the first component's Scnb/Scee into the 1-4 scaling pair lists.
func indexDihedrals(dihedrals [][4]int, types []string, table []ffcore.DihedralTypeEntry) ([]ffcore.TorsionRecord, []scale14Pair, []scale14Pair, error) {
	seen := make(map[[4]int]struct{})
	var records []ffcore.TorsionRecord
	var s14, e14 []scale14Pair

	for _, d := range dihedrals {
		key := sortedQuad(d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		tkey := [4]string{types[d[0]], types[d[1]], types[d[2]], types[d[3]]}
		comps, ok := resolveDihedral(table, tkey)
		if !ok {
			return nil, nil, nil, ffcore.ParameterMissingError{Term: "dihedral", Types: tkey[:]}
		}

		var rec ffcore.TorsionRecord
		rec.Atoms = [4]int32{int32(d[0]), int32(d[1]), int32(d[2]), int32(d[3])}
		for i := range rec.Components {
			rec.Components[i] = ffcore.UnusedTorsionTerm
		}
		for i, c := range comps {
			if i >= ffcore.MaxTorsionComponents {
				break
			}
			rec.Components[i] = ffcore.TorsionTerm{K: c.K, Phi0: degToRad(c.PhiDeg), N: float64(c.N)}
		}
		records = append(records, rec)

		lo, hi := d[0], d[3]
		scnb, scee := 1.0, 1.0
		if len(comps) > 0 {
			if comps[0].Scnb != 0 {
				scnb = comps[0].Scnb
			}
			if comps[0].Scee != 0 {
				scee = comps[0].Scee
			}
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		s14 = append(s14, scale14Pair{i: int32(lo), j: int32(hi), scale: scnb})
		e14 = append(e14, scale14Pair{i: int32(lo), j: int32(hi), scale: scee})
	}
	return records, s14, e14, nil
}

func sortedQuad(d [4]int) [4]int {
	s := d
	sort.Ints(s[:])
	return s
}

// indexImpropers resolves each improper's center and parameter term,
// falling back to bond-graph center detection when the direct permutation
// scan fails (spec.md §4.1, see resolveImproper).
func indexImpropers(impropers [][4]int, types []string, bonds [][2]int, prm *ffcore.Parameters) ([]ffcore.TorsionRecord, error) {
	var out []ffcore.TorsionRecord
	for _, imp := range impropers {
		idx := [4]int32{int32(imp[0]), int32(imp[1]), int32(imp[2]), int32(imp[3])}
		tkey := [4]string{types[imp[0]], types[imp[1]], types[imp[2]], types[imp[3]]}

		finalIdx, term, ok := resolveImproper(prm, bonds, idx, tkey)
		if !ok {
			return nil, ffcore.ParameterMissingError{Term: "improper", Types: tkey[:]}
		}

		var rec ffcore.TorsionRecord
		rec.Atoms = finalIdx
		for i := range rec.Components {
			rec.Components[i] = ffcore.UnusedTorsionTerm
		}
		rec.Components[0] = term
		out = append(out, rec)
	}
	return out, nil
}

// packScale14 collapses a list of (possibly duplicate) scale14Pair entries
// into CSR form, first occurrence winning per (i,j) — relying on the fact
// that appends preserve original dihedral-processing order and find14
// always returns the lowest-offset match.
func packScale14(n int, pairs []scale14Pair) ([]int32, []int32, []float64) {
	rows := make([][]scale14Pair, n)
	for _, p := range pairs {
		rows[p.i] = append(rows[p.i], p)
	}
	offsets := make([]int32, n+1)
	var js []int32
	var scales []float64
	for i := 0; i < n; i++ {
		offsets[i] = int32(len(js))
		seenJ := make(map[int32]struct{})
		for _, p := range rows[i] {
			if _, dup := seenJ[p.j]; dup {
				continue
			}
			seenJ[p.j] = struct{}{}
			js = append(js, p.j)
			scales = append(scales, p.scale)
		}
	}
	offsets[n] = int32(len(js))
	return offsets, js, scales
}

// indexNBFix resolves the NBFix override table against the interned type
// names, producing a small linearly-scanned override list symmetric in
// (TypeA, TypeB) (spec.md §4.1 "NBFix").
func indexNBFix(table []ffcore.NBFixEntry, typeNames []string) ([]ffcore.NBFixResolved, error) {
	index := make(map[string]int, len(typeNames))
	for i, name := range typeNames {
		index[name] = i
	}
	var out []ffcore.NBFixResolved
	for _, e := range table {
		a, aok := index[e.Key[0]]
		b, bok := index[e.Key[1]]
		if !aok || !bok {
			continue // override names a type pair not present in this topology
		}
		out = append(out, ffcore.NBFixResolved{
			TypeA:     a,
			TypeB:     b,
			Sigma:     sigmaFromRMin(e.Params.RMin),
			Epsilon:   e.Params.Epsilon,
			Sigma14:   sigmaFromRMin(e.Params.RMin14),
			Epsilon14: e.Params.Epsilon14,
		})
	}
	return out, nil
}
