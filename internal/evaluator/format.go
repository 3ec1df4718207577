package evaluator

// FormattedEnergies is the flat, consumer-facing energy breakdown returned
// by FormatEnergies (spec.md §4.5's canonical field names).
type FormattedEnergies struct {
	Bond      float64 `json:"bond"`
	VdW       float64 `json:"vdw"`
	Elec      float64 `json:"elec"`
	Angle     float64 `json:"angle"`
	Dihedral  float64 `json:"dihedral"`
	Improper  float64 `json:"improper"`
	Total     float64 `json:"total"`
}

// FormatEnergies renders an EnergyComponents under the field names spec.md
// §4.5 specifies for reporting.
func FormatEnergies(e EnergyComponents) FormattedEnergies {
	return FormattedEnergies{
		Bond:     e.Bond,
		VdW:      e.VanDerWaals,
		Elec:     e.Electrostatic,
		Angle:    e.Angle,
		Dihedral: e.Dihedral,
		Improper: e.Improper,
		Total:    e.Total(),
	}
}
