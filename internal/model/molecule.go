package model

import (
	"errors"
	"fmt"
)

// BondKind is the type of a single bond between two atoms of a molecule.
type BondKind string

// Bond kinds accepted in the structured response.
const (
	BondSingle BondKind = "single"
	BondDouble BondKind = "double"
	BondTriple BondKind = "triple"
	BondIonic  BondKind = "ionic"
)

// BondKinds returns every bond kind in schema order.
func BondKinds() []BondKind {
	return []BondKind{BondSingle, BondDouble, BondTriple, BondIonic}
}

// Valid reports whether k is a known bond kind.
func (k BondKind) Valid() bool {
	switch k {
	case BondSingle, BondDouble, BondTriple, BondIonic:
		return true
	default:
		return false
	}
}

// Order returns the number of shared electron pairs (0 for ionic).
func (k BondKind) Order() int {
	switch k {
	case BondSingle:
		return 1
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	default:
		return 0
	}
}

// BondType is the dominant bonding mechanism of a substance.
type BondType string

// Bonding mechanisms accepted in the structured response.
const (
	BondTypeIonic    BondType = "ionic"
	BondTypeCovalent BondType = "covalent"
	BondTypeMetallic BondType = "metallic"
	BondTypeNone     BondType = "none"
)

// BondTypes returns every bonding mechanism in schema order.
func BondTypes() []BondType {
	return []BondType{BondTypeIonic, BondTypeCovalent, BondTypeMetallic, BondTypeNone}
}

// Valid reports whether t is a known bonding mechanism.
func (t BondType) Valid() bool {
	switch t {
	case BondTypeIonic, BondTypeCovalent, BondTypeMetallic, BondTypeNone:
		return true
	default:
		return false
	}
}

// StageLabel describes what happens during the bonding step of the
// simulation for this mechanism.
func (t BondType) StageLabel() string {
	if t == BondTypeIonic {
		return "Electron transfer and electrostatic attraction"
	}
	return "Atoms approach and share electrons"
}

// AtomInfo is one atom as described by the model.
type AtomInfo struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	AtomicNumber     int     `json:"atomicNumber"`
	Mass             float64 `json:"mass,omitempty"`
	Shells           []int   `json:"shells"`
	ValenceElectrons int     `json:"valenceElectrons"`
	Color            string  `json:"color"`
}

// IsDonor reports whether the atom gives electrons away in an ionic bond.
// Atoms with at most three valence electrons are treated as donors.
func (a AtomInfo) IsDonor() bool {
	return a.ValenceElectrons <= 3
}

// IonicCharge returns the charge the atom carries after an ionic transfer:
// +valence for donors, -(8 - valence) for acceptors.
func (a AtomInfo) IonicCharge() int {
	if a.IsDonor() {
		return a.ValenceElectrons
	}
	return -(8 - a.ValenceElectrons)
}

// ChargeLabel formats IonicCharge with an explicit sign, e.g. "+1" or "-1".
func (a AtomInfo) ChargeLabel() string {
	return fmt.Sprintf("%+d", a.IonicCharge())
}

// BondInfo links two atoms by their index in Molecule.Atoms.
type BondInfo struct {
	FromIndex int      `json:"fromIndex"`
	ToIndex   int      `json:"toIndex"`
	Type      BondKind `json:"type"`
}

// Molecule is the structured explanation of a substance returned by the
// generative model.
type Molecule struct {
	IsAtom      bool       `json:"isAtom"`
	Name        string     `json:"name"`
	CommonName  string     `json:"commonName,omitempty"`
	Formula     string     `json:"formula"`
	Description string     `json:"description"`
	Atoms       []AtomInfo `json:"atoms"`
	Bonds       []BondInfo `json:"bonds"`
	BondType    BondType   `json:"bondType"`

	ElectronFormulaSVG   string `json:"electronFormulaSvg,omitempty"`
	LewisStructureSVG    string `json:"lewisStructureSvg,omitempty"`
	StructuralFormulaSVG string `json:"structuralFormulaSvg,omitempty"`

	// Text fallbacks for when the SVGs are missing or rejected.
	LewisStructure    string `json:"lewisStructure,omitempty"`
	ElectronFormula   string `json:"electronFormula,omitempty"`
	StructuralFormula string `json:"structuralFormula,omitempty"`

	FormationMechanism string `json:"formationMechanism"`
	LewisExplanation   string `json:"lewisExplanation"`

	HasHydrogenBonds        bool   `json:"hasHydrogenBonds"`
	HydrogenBondDescription string `json:"hydrogenBondDescription,omitempty"`
}

// Validation errors returned by Molecule.Validate.
var (
	ErrMissingName     = errors.New("molecule has no name")
	ErrMissingFormula  = errors.New("molecule has no formula")
	ErrInvalidBondType = errors.New("invalid bond type")
	ErrInvalidBondKind = errors.New("invalid bond kind")
	ErrBondOutOfRange  = errors.New("bond references an atom out of range")
)

// Validate checks the enumerations and bond indices. It does not judge the
// chemistry itself.
func (m *Molecule) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if m.Formula == "" {
		return ErrMissingFormula
	}
	if !m.BondType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidBondType, m.BondType)
	}
	for i, b := range m.Bonds {
		if !b.Type.Valid() {
			return fmt.Errorf("bond %d: %w: %q", i, ErrInvalidBondKind, b.Type)
		}
		if b.FromIndex < 0 || b.FromIndex >= len(m.Atoms) || b.ToIndex < 0 || b.ToIndex >= len(m.Atoms) {
			return fmt.Errorf("bond %d (%d-%d): %w", i, b.FromIndex, b.ToIndex, ErrBondOutOfRange)
		}
	}
	return nil
}

// BondCounts tallies bonds by kind.
func (m *Molecule) BondCounts() map[BondKind]int {
	counts := make(map[BondKind]int)
	for _, b := range m.Bonds {
		counts[b.Type]++
	}
	return counts
}

// SharedPairs returns the total number of shared electron pairs across all
// covalent bonds.
func (m *Molecule) SharedPairs() int {
	total := 0
	for _, b := range m.Bonds {
		total += b.Type.Order()
	}
	return total
}
