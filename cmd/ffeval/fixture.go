package main

import (
	"encoding/json"
	"os"

	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
)

// systemFixture is the on-disk JSON shape read from --topology: a topology
// plus the full parameter set it resolves against. It exists because the
// upstream `.prm`/`prmtop` parsers are out of scope (spec.md Non-goals) —
// this is the stand-in external collaborator that would normally produce an
// ffcore.Topology/ffcore.Parameters pair.
type systemFixture struct {
	Topology   topologyFixture   `json:"topology"`
	Parameters parametersFixture `json:"parameters"`
}

type topologyFixture struct {
	Types     []string  `json:"types"`
	Charges   []float64 `json:"charges"`
	Bonds     [][2]int  `json:"bonds"`
	Angles    [][3]int  `json:"angles"`
	Dihedrals [][4]int  `json:"dihedrals"`
	Impropers [][4]int  `json:"impropers"`
}

type atomTypeFixture struct {
	Type      string  `json:"type"`
	Sigma     float64 `json:"sigma"`
	Epsilon   float64 `json:"epsilon"`
	Sigma14   float64 `json:"sigma14"`
	Epsilon14 float64 `json:"epsilon14"`
}

type bondTypeFixture struct {
	Types [2]string `json:"types"`
	K     float64   `json:"k"`
	R0    float64   `json:"r0"`
}

type angleTypeFixture struct {
	Types    [3]string `json:"types"`
	K        float64   `json:"k"`
	ThetaDeg float64   `json:"theta0_deg"`
}

type dihedralComponentFixture struct {
	K      float64 `json:"k"`
	PhiDeg float64 `json:"phi0_deg"`
	N      int     `json:"n"`
	Scnb   float64 `json:"scnb"`
	Scee   float64 `json:"scee"`
}

type dihedralTypeFixture struct {
	Types      [4]string                  `json:"types"`
	Components []dihedralComponentFixture `json:"components"`
}

type improperTypeFixture struct {
	Types [4]string `json:"types"`
	K     float64   `json:"k"`
	PsiEq float64   `json:"psi_eq_deg"`
}

type improperPeriodicTypeFixture struct {
	Types  [4]string `json:"types"`
	K      float64   `json:"k"`
	PhiDeg float64   `json:"phi0_deg"`
	N      int       `json:"n"`
}

type nbfixTypeFixture struct {
	Types     [2]string `json:"types"`
	RMin      float64   `json:"rmin"`
	Epsilon   float64   `json:"epsilon"`
	RMin14    float64   `json:"rmin14"`
	Epsilon14 float64   `json:"epsilon14"`
}

type ureyBradleyTypeFixture struct {
	Types [3]string `json:"types"`
	K     float64   `json:"k"`
}

type parametersFixture struct {
	AtomTypes             []atomTypeFixture             `json:"atom_types"`
	BondTypes             []bondTypeFixture              `json:"bond_types"`
	AngleTypes            []angleTypeFixture             `json:"angle_types"`
	DihedralTypes         []dihedralTypeFixture          `json:"dihedral_types"`
	ImproperTypes         []improperTypeFixture          `json:"improper_types"`
	ImproperPeriodicTypes []improperPeriodicTypeFixture `json:"improper_periodic_types"`
	NBFixTypes            []nbfixTypeFixture             `json:"nbfix_types"`
	UreyBradleyTypes      []ureyBradleyTypeFixture       `json:"urey_bradley_types"`
}

type frameFixture struct {
	Coords [][3]float64 `json:"coords"`
	Box    [3]float64   `json:"box"`
}

type framesFixture struct {
	Frames []frameFixture `json:"frames"`
}

func readSystemFixture(path string) (*ffcore.Topology, *ffcore.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var fx systemFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, nil, err
	}
	return fx.Topology.toTopology(), fx.Parameters.toParameters(), nil
}

func readFramesFixture(path string) ([]ffcore.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx framesFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, err
	}
	frames := make([]ffcore.Frame, len(fx.Frames))
	for i, f := range fx.Frames {
		frames[i] = ffcore.Frame{Coords: f.Coords, Box: f.Box}
	}
	return frames, nil
}

func (t topologyFixture) toTopology() *ffcore.Topology {
	return &ffcore.Topology{
		Types:     t.Types,
		Charges:   t.Charges,
		Bonds:     t.Bonds,
		Angles:    t.Angles,
		Dihedrals: t.Dihedrals,
		Impropers: t.Impropers,
	}
}

func (p parametersFixture) toParameters() *ffcore.Parameters {
	out := &ffcore.Parameters{}
	for _, a := range p.AtomTypes {
		out.AtomTypes = append(out.AtomTypes, ffcore.AtomTypeEntry{
			Type:   a.Type,
			Params: ffcore.AtomTypeParams{Sigma: a.Sigma, Epsilon: a.Epsilon, Sigma14: a.Sigma14, Epsilon14: a.Epsilon14},
		})
	}
	for _, b := range p.BondTypes {
		out.BondTypes = append(out.BondTypes, ffcore.BondTypeEntry{
			Key:    b.Types,
			Params: ffcore.BondParams{K: b.K, R0: b.R0},
		})
	}
	for _, a := range p.AngleTypes {
		out.AngleTypes = append(out.AngleTypes, ffcore.AngleTypeEntry{
			Key:    a.Types,
			Params: ffcore.AngleParams{K: a.K, ThetaDeg: a.ThetaDeg},
		})
	}
	for _, d := range p.DihedralTypes {
		var comps []ffcore.DihedralComponent
		for _, c := range d.Components {
			comps = append(comps, ffcore.DihedralComponent{K: c.K, PhiDeg: c.PhiDeg, N: c.N, Scnb: c.Scnb, Scee: c.Scee})
		}
		out.DihedralTypes = append(out.DihedralTypes, ffcore.DihedralTypeEntry{Key: d.Types, Components: comps})
	}
	for _, i := range p.ImproperTypes {
		out.ImproperTypes = append(out.ImproperTypes, ffcore.ImproperTypeEntry{
			Key:    i.Types,
			Params: ffcore.ImproperParams{K: i.K, PsiEq: i.PsiEq},
		})
	}
	for _, i := range p.ImproperPeriodicTypes {
		out.ImproperPeriodicTypes = append(out.ImproperPeriodicTypes, ffcore.ImproperPeriodicTypeEntry{
			Key:    i.Types,
			Params: ffcore.ImproperPeriodicParams{K: i.K, PhiDeg: i.PhiDeg, N: i.N},
		})
	}
	for _, nb := range p.NBFixTypes {
		out.NBFixTypes = append(out.NBFixTypes, ffcore.NBFixEntry{
			Key:    nb.Types,
			Params: ffcore.NBFixParams{RMin: nb.RMin, Epsilon: nb.Epsilon, RMin14: nb.RMin14, Epsilon14: nb.Epsilon14},
		})
	}
	for _, ub := range p.UreyBradleyTypes {
		out.UreyBradleyTypes = append(out.UreyBradleyTypes, ffcore.UreyBradleyEntry{
			Key:    ub.Types,
			Params: ffcore.UreyBradleyParams{K: ub.K},
		})
	}
	return out
}
