package topology

import "github.com/sarat-asymmetrica/ffcore/internal/ffcore"

// resolveAtomType returns the LJ parameters for a single atom type, or false
// if the type is not present in the table (atom types never use wildcards).
func resolveAtomType(table []ffcore.AtomTypeEntry, t string) (ffcore.AtomTypeParams, bool) {
	for _, e := range table {
		if e.Type == t {
			return e.Params, true
		}
	}
	return ffcore.AtomTypeParams{}, false
}

// resolveBond implements the generic resolution order of spec.md §4.1 for a
// 2-tuple key: exact, then wildcard scan (bonds have no reversed lookup).
func resolveBond(table []ffcore.BondTypeEntry, types [2]string) (ffcore.BondParams, bool) {
	for _, e := range table {
		if e.Key == types {
			return e.Params, true
		}
	}
	for _, e := range table {
		key := e.Key[:]
		if hasWildcard(key) && wildcardMatch(key, types[:]) {
			return e.Params, true
		}
	}
	return ffcore.BondParams{}, false
}

// resolveAngle implements the 3-tuple resolution order (exact, then
// wildcard; no reversed lookup for angles).
func resolveAngle(table []ffcore.AngleTypeEntry, types [3]string) (ffcore.AngleParams, bool) {
	for _, e := range table {
		if e.Key == types {
			return e.Params, true
		}
	}
	for _, e := range table {
		key := e.Key[:]
		if hasWildcard(key) && wildcardMatch(key, types[:]) {
			return e.Params, true
		}
	}
	return ffcore.AngleParams{}, false
}

// resolveDihedral implements the full 4-tuple resolution order for proper
// dihedrals: exact, reversed, then wildcard (spec.md §4.1 "Type resolution
// order" — reversed lookup applies to dihedrals only).
func resolveDihedral(table []ffcore.DihedralTypeEntry, types [4]string) ([]ffcore.DihedralComponent, bool) {
	for _, e := range table {
		if e.Key == types {
			return e.Components, true
		}
	}
	reversed := [4]string{types[3], types[2], types[1], types[0]}
	for _, e := range table {
		if e.Key == reversed {
			return e.Components, true
		}
	}
	for _, e := range table {
		key := e.Key[:]
		if hasWildcard(key) && wildcardMatch(key, types[:]) {
			return e.Components, true
		}
	}
	return nil, false
}
