package topology

import (
	"testing"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
)

func TestScanImproperPermutationsExactMatch(t *testing.T) {
	prm := &ffcore.Parameters{
		ImproperTypes: []ffcore.ImproperTypeEntry{
			{Key: [4]string{"HA", "CT", "C", "O"}, Params: ffcore.ImproperParams{K: 10, PsiEq: 0}},
		},
	}
	// center (C) already sits at position 2 in the input order.
	m, ok := scanImproperPermutations(prm, [4]string{"HA", "CT", "C", "O"})
	if !ok || m.kind != improperKindHarmonic || m.harmonic.K != 10 {
		t.Fatalf("expected harmonic match, got %+v ok=%v", m, ok)
	}
}

func TestScanImproperPermutationsPeriodicFallback(t *testing.T) {
	prm := &ffcore.Parameters{
		ImproperPeriodicTypes: []ffcore.ImproperPeriodicTypeEntry{
			{Key: [4]string{"X", "X", "C", "O"}, Params: ffcore.ImproperPeriodicParams{K: 1, PhiDeg: 180, N: 2}},
		},
	}
	m, ok := scanImproperPermutations(prm, [4]string{"HA", "CT", "C", "O"})
	if !ok || m.kind != improperKindPeriodic {
		t.Fatalf("expected periodic wildcard match, got %+v ok=%v", m, ok)
	}
}

func TestResolveImproperKeepsAtomOrderOnNonIdentityPermutationMatch(t *testing.T) {
	// Center (C) already sits at position 2. The parameter table only has
	// an entry for the reversed (0,3) ordering of the outer atoms, so the
	// permutation scan matches on a non-identity permutation — the
	// returned atom quadruple must stay exactly as given, since the
	// permutation only selects which table entry matched, not how the
	// geometry-consuming atom order is built.
	prm := &ffcore.Parameters{
		ImproperTypes: []ffcore.ImproperTypeEntry{
			{Key: [4]string{"O", "CT", "C", "HA"}, Params: ffcore.ImproperParams{K: 7, PsiEq: 0}},
		},
	}
	idx := [4]int32{10, 11, 12, 13}
	types := [4]string{"HA", "CT", "C", "O"}
	bonds := [][2]int{{12, 10}, {12, 11}, {12, 13}}

	finalIdx, term, ok := resolveImproper(prm, bonds, idx, types)
	if !ok {
		t.Fatal("expected wildcard-free non-identity permutation to resolve")
	}
	if finalIdx != idx {
		t.Fatalf("expected atom order unchanged at %v, got %v", idx, finalIdx)
	}
	if term.K != 7 {
		t.Fatalf("expected resolved K=7, got %v", term.K)
	}
}

func TestDetectCenterFromBondGraph(t *testing.T) {
	// Star graph: atom 2 bonded to 0, 1, 3; atoms 0,1,3 not bonded to each
	// other.
	idx := [4]int32{0, 1, 2, 3}
	bonds := [][2]int{{2, 0}, {2, 1}, {2, 3}}
	if got := detectCenter(idx, bonds); got != 2 {
		t.Fatalf("expected center at position 2, got %d", got)
	}
}

func TestResolveImproperFallsBackToGraphDetection(t *testing.T) {
	// Input order places the center (atom 2, type "C") at position 1,
	// which the direct permutation scan (fixed at position 2) cannot match
	// directly; bond-graph detection should relocate it.
	prm := &ffcore.Parameters{
		ImproperTypes: []ffcore.ImproperTypeEntry{
			{Key: [4]string{"HA", "N", "C", "O"}, Params: ffcore.ImproperParams{K: 5, PsiEq: 0}},
		},
	}
	idx := [4]int32{0, 2, 1, 3}
	types := [4]string{"HA", "C", "N", "O"}
	bonds := [][2]int{{2, 0}, {2, 1}, {2, 3}}

	finalIdx, term, ok := resolveImproper(prm, bonds, idx, types)
	if !ok {
		t.Fatal("expected relocation to resolve")
	}
	if finalIdx[2] != 2 {
		t.Fatalf("expected atom 2 (the detected center) at position 2, got %v", finalIdx)
	}
	if term.K != 5 {
		t.Fatalf("expected resolved K=5, got %v", term.K)
	}
}
