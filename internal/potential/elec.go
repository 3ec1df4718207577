package potential

// reactionField evaluates the generalized reaction-field electrostatic
// potential and its radial force magnitude (Tironi et al., J. Chem. Phys.
// 102(13):5451-5459, 1995), used when RFA is enabled (spec.md §4.2.2).
func reactionField(qiqj, dist, cutoff, solventDielectric, scale float64) (pot, force float64) {
	denom := 2*solventDielectric + 1
	krf := (1 / (cutoff * cutoff * cutoff)) * (solventDielectric - 1) / denom
	crf := (1 / cutoff) * (3 * solventDielectric) / denom

	common := qiqj / scale
	dist2 := dist * dist
	pot = common * ((1 / dist) + krf*dist2 - crf)
	force = common * (2*krf*dist - 1/dist2)
	return pot, force
}

// coulomb evaluates bare, cutoff-truncated Coulomb electrostatics.
func coulomb(qiqj, dist, scale float64) (pot, force float64) {
	pot = qiqj / dist / scale
	force = -pot / dist
	return pot, force
}
