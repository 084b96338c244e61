package periodic

import "testing"

// TestLayout tests that every element 1..118 appears exactly once.
func TestLayout(t *testing.T) {
	t.Parallel()

	g := Layout()
	seen := make(map[int]int)
	for _, row := range g.Main {
		for _, z := range row {
			if z != 0 {
				seen[z]++
			}
		}
	}
	for _, z := range g.Lanthanides {
		seen[z]++
	}
	for _, z := range g.Actinides {
		seen[z]++
	}

	for z := 1; z <= MaxAtomicNumber; z++ {
		if seen[z] != 1 {
			t.Errorf("z=%d appears %d times", z, seen[z])
		}
	}
}

// TestLayoutMatchesTablePositions tests that grid cells agree with group and period.
func TestLayoutMatchesTablePositions(t *testing.T) {
	t.Parallel()

	g := Layout()
	for _, e := range Elements() {
		if e.Category == CategoryLanthanide || e.Category == CategoryActinide {
			continue
		}
		z, ok := g.Cell(e.Period, e.Group)
		if !ok || z != e.AtomicNumber {
			t.Errorf("%s expected at period %d group %d, found %d", e.Symbol, e.Period, e.Group, z)
		}
	}
}

// TestGridCell tests cell lookup edge cases.
func TestGridCell(t *testing.T) {
	t.Parallel()

	g := Layout()
	testCases := []struct {
		name   string
		period int
		group  int
		z      int
		ok     bool
	}{
		{"hydrogen", 1, 1, 1, true},
		{"helium", 1, 18, 2, true},
		{"gap in period one", 1, 2, 0, false},
		{"lanthanum", 6, 3, 57, true},
		{"hafnium after gap", 6, 4, 72, true},
		{"oganesson", 7, 18, 118, true},
		{"out of range", 8, 1, 0, false},
		{"zero group", 3, 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			z, ok := g.Cell(tc.period, tc.group)
			if z != tc.z || ok != tc.ok {
				t.Errorf("Cell(%d, %d) = %d, %v; expected %d, %v", tc.period, tc.group, z, ok, tc.z, tc.ok)
			}
		})
	}
}
