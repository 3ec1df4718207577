package topology

import (
	"sort"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
)

// improperPerms enumerates the permutations of index positions (0,1,2,3)
// with position 2 fixed — the six orderings of the three non-center atoms
// into positions 0, 1, 3 (spec.md §4.1 "Improper parameter resolution").
var improperPerms = [6][4]int{
	{0, 1, 2, 3},
	{0, 3, 2, 1},
	{1, 0, 2, 3},
	{1, 3, 2, 0},
	{3, 0, 2, 1},
	{3, 1, 2, 0},
}

// improperKind distinguishes which table an improper match came from.
type improperKind int

const (
	improperKindNone improperKind = iota
	improperKindHarmonic
	improperKindPeriodic
)

// improperMatch is the result of a successful permutation scan. Only the
// matched parameter term is kept — the permutation that matched selects a
// parameter-table entry, never a reordering of the caller's atom indices.
type improperMatch struct {
	kind     improperKind
	harmonic ffcore.ImproperParams
	periodic ffcore.ImproperPeriodicParams
}

// scanImproperPermutations tries all six center-fixed permutations of
// origTypes against the explicit and periodic improper tables, exact match
// first and then wildcard substitution, in the order spec.md §4.1 describes.
func scanImproperPermutations(prm *ffcore.Parameters, origTypes [4]string) (improperMatch, bool) {
	for _, p := range improperPerms {
		q := [4]string{origTypes[p[0]], origTypes[p[1]], origTypes[p[2]], origTypes[p[3]]}

		for _, e := range prm.ImproperTypes {
			if e.Key == q {
				return improperMatch{kind: improperKindHarmonic, harmonic: e.Params}, true
			}
		}
		for _, e := range prm.ImproperPeriodicTypes {
			if e.Key == q {
				return improperMatch{kind: improperKindPeriodic, periodic: e.Params}, true
			}
		}
		for _, e := range prm.ImproperTypes {
			key := e.Key[:]
			if hasWildcard(key) && wildcardMatch(key, q[:]) {
				return improperMatch{kind: improperKindHarmonic, harmonic: e.Params}, true
			}
		}
		for _, e := range prm.ImproperPeriodicTypes {
			key := e.Key[:]
			if hasWildcard(key) && wildcardMatch(key, q[:]) {
				return improperMatch{kind: improperKindPeriodic, periodic: e.Params}, true
			}
		}
	}
	return improperMatch{}, false
}

// detectCenter finds the atom (among the four improper indexes) bonded to
// the other three within the quadruple — the chemical center — by scanning
// the raw bond list. Returns the position (0-3) of the center in idx, or -1
// if no atom has all three others as neighbors.
func detectCenter(idx [4]int32, bonds [][2]int) int {
	adj := func(a, b int32) bool {
		for _, bd := range bonds {
			x, y := int32(bd[0]), int32(bd[1])
			if (x == a && y == b) || (x == b && y == a) {
				return true
			}
		}
		return false
	}
	for c := 0; c < 4; c++ {
		count := 0
		for k := 0; k < 4; k++ {
			if k == c {
				continue
			}
			if adj(idx[c], idx[k]) {
				count++
			}
		}
		if count == 3 {
			return c
		}
	}
	return -1
}

// relocateCenter rebuilds the atom-index and type quadruples with the
// detected center spliced into position 2 and the remaining three sorted
// alphabetically by atom type, mirroring the reference implementation's
// detectImproperCenter/getImproperParameter retry (spec.md §4.1).
func relocateCenter(idx [4]int32, types [4]string, centerPos int) ([4]int32, [4]string) {
	type pair struct {
		idx int32
		typ string
	}
	var rest []pair
	for k := 0; k < 4; k++ {
		if k == centerPos {
			continue
		}
		rest = append(rest, pair{idx[k], types[k]})
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].typ < rest[j].typ })

	newIdx := [4]int32{rest[0].idx, rest[1].idx, idx[centerPos], rest[2].idx}
	newTypes := [4]string{rest[0].typ, rest[1].typ, types[centerPos], rest[2].typ}
	return newIdx, newTypes
}

// resolveImproper resolves one improper record to a final atom order (with
// the chemical center guaranteed to land at position 2) and its resolved
// parameter term, following spec.md §4.1's permutation scan with a
// bond-graph center-detection fallback.
func resolveImproper(prm *ffcore.Parameters, bonds [][2]int, idx [4]int32, types [4]string) ([4]int32, ffcore.TorsionTerm, bool) {
	if m, ok := scanImproperPermutations(prm, types); ok {
		return idx, improperTerm(m), true
	}

	centerPos := detectCenter(idx, bonds)
	if centerPos < 0 {
		return idx, ffcore.TorsionTerm{}, false
	}
	relocIdx, relocTypes := relocateCenter(idx, types, centerPos)

	if m, ok := scanImproperPermutations(prm, relocTypes); ok {
		return relocIdx, improperTerm(m), true
	}
	return idx, ffcore.TorsionTerm{}, false
}

func improperTerm(m improperMatch) ffcore.TorsionTerm {
	switch m.kind {
	case improperKindPeriodic:
		return ffcore.TorsionTerm{K: m.periodic.K, Phi0: degToRad(m.periodic.PhiDeg), N: float64(m.periodic.N)}
	default: // improperKindHarmonic
		return ffcore.TorsionTerm{K: m.harmonic.K, Phi0: degToRad(m.harmonic.PsiEq), N: 0}
	}
}
