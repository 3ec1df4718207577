package potential

import "testing"

// Cutoff monotonicity: with RFA enabled, the potential must vanish as the
// distance approaches the cutoff from below (spec.md §8 "Cutoff
// monotonicity").
func TestReactionFieldVanishesAtCutoff(t *testing.T) {
	cutoff := 12.0
	qiqj := 332.0636 * 0.5 * -0.5
	pot, _ := reactionField(qiqj, cutoff-1e-7, cutoff, 78.5, 1)
	if !almostEqual(pot, 0, 1e-4) {
		t.Fatalf("expected potential near zero approaching cutoff, got %v", pot)
	}
}

func TestCoulombMatchesReferenceConstant(t *testing.T) {
	pot, force := coulomb(332.0636, 1, 1)
	if !almostEqual(pot, 332.0636, tol) {
		t.Fatalf("expected 332.0636, got %v", pot)
	}
	if !almostEqual(force, -332.0636, tol) {
		t.Fatalf("expected force -332.0636, got %v", force)
	}
}
