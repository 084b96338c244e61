package model

import (
	"errors"
	"testing"
)

// newSodiumChloride returns a valid ionic molecule for testing.
func newSodiumChloride() *Molecule {
	return &Molecule{
		Name:     "Sodium chloride",
		Formula:  "NaCl",
		BondType: BondTypeIonic,
		Atoms: []AtomInfo{
			{Symbol: "Na", AtomicNumber: 11, Shells: []int{2, 8, 1}, ValenceElectrons: 1},
			{Symbol: "Cl", AtomicNumber: 17, Shells: []int{2, 8, 7}, ValenceElectrons: 7},
		},
		Bonds: []BondInfo{{FromIndex: 0, ToIndex: 1, Type: BondIonic}},
	}
}

// TestMoleculeValidate tests enumeration and index checks.
func TestMoleculeValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(m *Molecule)
		expected error
	}{
		{"valid molecule", func(*Molecule) {}, nil},
		{"missing name", func(m *Molecule) { m.Name = "" }, ErrMissingName},
		{"missing formula", func(m *Molecule) { m.Formula = "" }, ErrMissingFormula},
		{"unknown bond type", func(m *Molecule) { m.BondType = "hydrogen" }, ErrInvalidBondType},
		{"unknown bond kind", func(m *Molecule) { m.Bonds[0].Type = "quadruple" }, ErrInvalidBondKind},
		{"index past end", func(m *Molecule) { m.Bonds[0].ToIndex = 2 }, ErrBondOutOfRange},
		{"negative index", func(m *Molecule) { m.Bonds[0].FromIndex = -1 }, ErrBondOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newSodiumChloride()
			tc.mutate(m)
			err := m.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

// TestIonicCharge tests the donor/acceptor charge heuristic.
func TestIonicCharge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		valence int
		charge  int
		label   string
	}{
		{1, 1, "+1"},
		{2, 2, "+2"},
		{3, 3, "+3"},
		{6, -2, "-2"},
		{7, -1, "-1"},
	}

	for _, tc := range testCases {
		a := AtomInfo{ValenceElectrons: tc.valence}
		if got := a.IonicCharge(); got != tc.charge {
			t.Errorf("valence %d: expected charge %d, got %d", tc.valence, tc.charge, got)
		}
		if got := a.ChargeLabel(); got != tc.label {
			t.Errorf("valence %d: expected label %q, got %q", tc.valence, tc.label, got)
		}
	}
}

// TestBondCounts tests bond tallies and shared pair counting.
func TestBondCounts(t *testing.T) {
	t.Parallel()

	co2 := &Molecule{
		Name:     "Carbon dioxide",
		Formula:  "CO2",
		BondType: BondTypeCovalent,
		Atoms:    []AtomInfo{{Symbol: "O"}, {Symbol: "C"}, {Symbol: "O"}},
		Bonds: []BondInfo{
			{FromIndex: 0, ToIndex: 1, Type: BondDouble},
			{FromIndex: 1, ToIndex: 2, Type: BondDouble},
		},
	}

	counts := co2.BondCounts()
	if counts[BondDouble] != 2 || len(counts) != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
	if got := co2.SharedPairs(); got != 4 {
		t.Errorf("expected 4 shared pairs, got %d", got)
	}
	if got := newSodiumChloride().SharedPairs(); got != 0 {
		t.Errorf("ionic bonds share no pairs, got %d", got)
	}
}

// TestEnumerations tests the enumeration helpers.
func TestEnumerations(t *testing.T) {
	t.Parallel()

	for _, k := range BondKinds() {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	for _, bt := range BondTypes() {
		if !bt.Valid() {
			t.Errorf("%q should be valid", bt)
		}
	}
	if BondTypeIonic.StageLabel() == BondTypeCovalent.StageLabel() {
		t.Error("ionic and covalent stages should be labelled differently")
	}
}

// TestAnalysisFail tests that a failure clears the molecule.
func TestAnalysisFail(t *testing.T) {
	t.Parallel()

	a := NewAnalysis("NaCl")
	a.Molecule = newSodiumChloride()
	if !a.HasData() {
		t.Fatal("expected data before failure")
	}

	a.Fail(errors.New("boom"))
	if a.HasData() {
		t.Error("expected no data after failure")
	}
	if a.ErrorMessage != "boom" {
		t.Errorf("unexpected error message %q", a.ErrorMessage)
	}
}
