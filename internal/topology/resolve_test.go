package topology

import "github.com/sarat-asymmetrica/ffcore/internal/ffcore"
import "testing"

func TestResolveBondExactThenWildcard(t *testing.T) {
	table := []ffcore.BondTypeEntry{
		{Key: [2]string{"CT", "HC"}, Params: ffcore.BondParams{K: 340, R0: 1.09}},
		{Key: [2]string{"X", "X"}, Params: ffcore.BondParams{K: 1, R0: 1}},
	}
	p, ok := resolveBond(table, [2]string{"CT", "HC"})
	if !ok || p.K != 340 {
		t.Fatalf("expected exact match, got %+v ok=%v", p, ok)
	}
	p, ok = resolveBond(table, [2]string{"OS", "NA"})
	if !ok || p.K != 1 {
		t.Fatalf("expected wildcard fallback, got %+v ok=%v", p, ok)
	}
}

func TestResolveDihedralReversedBeforeWildcard(t *testing.T) {
	table := []ffcore.DihedralTypeEntry{
		{Key: [4]string{"HC", "CT", "CT", "HC"}, Components: []ffcore.DihedralComponent{{K: 1}}},
		{Key: [4]string{"X", "CT", "CT", "X"}, Components: []ffcore.DihedralComponent{{K: 2}}},
	}
	comps, ok := resolveDihedral(table, [4]string{"HC", "CT", "CT", "HC"})
	if !ok || comps[0].K != 1 {
		t.Fatalf("expected exact match, got %+v ok=%v", comps, ok)
	}

	// reversed tuple should hit the exact entry before the wildcard entry
	rev := [4]string{"OS", "CT", "CT", "NA"}
	table2 := []ffcore.DihedralTypeEntry{
		{Key: [4]string{"NA", "CT", "CT", "OS"}, Components: []ffcore.DihedralComponent{{K: 5}}},
		{Key: [4]string{"X", "CT", "CT", "X"}, Components: []ffcore.DihedralComponent{{K: 9}}},
	}
	comps, ok = resolveDihedral(table2, rev)
	if !ok || comps[0].K != 5 {
		t.Fatalf("expected reversed exact match, got %+v ok=%v", comps, ok)
	}
}

func TestResolveAtomTypeNoWildcard(t *testing.T) {
	table := []ffcore.AtomTypeEntry{
		{Type: "CT", Params: ffcore.AtomTypeParams{Sigma: 1.9, Epsilon: 0.1}},
	}
	_, ok := resolveAtomType(table, "X")
	if ok {
		t.Fatal("atom types must never wildcard-match")
	}
}
