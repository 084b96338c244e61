package periodic

import (
	"slices"
	"testing"
)

// TestShellsForSumsToAtomicNumber checks the core invariant for the whole table.
func TestShellsForSumsToAtomicNumber(t *testing.T) {
	t.Parallel()

	for z := 1; z <= MaxAtomicNumber; z++ {
		shells := ShellsFor(z)
		if len(shells) == 0 {
			t.Fatalf("z=%d: expected at least one shell", z)
		}

		sum := 0
		for _, n := range shells {
			if n <= 0 {
				t.Errorf("z=%d: shell counts must be positive, got %v", z, shells)
			}
			sum += n
		}
		if sum != z {
			t.Errorf("z=%d: shells %v sum to %d", z, shells, sum)
		}
	}
}

// TestShellsForKnownValues tests band results and the exception table.
func TestShellsForKnownValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		z        int
		expected []int
	}{
		{"hydrogen", 1, []int{1}},
		{"helium", 2, []int{2}},
		{"carbon", 6, []int{2, 4}},
		{"sodium", 11, []int{2, 8, 1}},
		{"argon", 18, []int{2, 8, 8}},
		{"calcium", 20, []int{2, 8, 8, 2}},
		{"iron", 26, []int{2, 8, 14, 2}},
		{"chromium exception", 24, []int{2, 8, 13, 1}},
		{"copper exception", 29, []int{2, 8, 18, 1}},
		{"bromine", 35, []int{2, 8, 18, 7}},
		{"molybdenum exception", 42, []int{2, 8, 18, 13, 1}},
		{"palladium exception", 46, []int{2, 8, 18, 18}},
		{"silver exception", 47, []int{2, 8, 18, 18, 1}},
		{"iodine", 53, []int{2, 8, 18, 18, 7}},
		{"barium", 56, []int{2, 8, 18, 18, 8, 2}},
		{"gold exception", 79, []int{2, 8, 18, 32, 18, 1}},
		{"mercury", 80, []int{2, 8, 18, 32, 18, 2}},
		{"radon", 86, []int{2, 8, 18, 32, 18, 8}},
		{"francium", 87, []int{2, 8, 18, 32, 18, 9}},
		{"radium", 88, []int{2, 8, 18, 32, 18, 10}},
		{"fermium", 100, []int{2, 8, 18, 32, 18, 22}},
		{"copernicium", 112, []int{2, 8, 18, 32, 18, 34}},
		{"oganesson", 118, []int{2, 8, 18, 32, 18, 40}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ShellsFor(tc.z)
			if !slices.Equal(got, tc.expected) {
				t.Errorf("ShellsFor(%d) = %v, expected %v", tc.z, got, tc.expected)
			}
		})
	}
}

// TestShellsForHeavyElements tests that every atomic number past mercury
// keeps five inner shells and puts the rest in the sixth.
func TestShellsForHeavyElements(t *testing.T) {
	t.Parallel()

	for z := 81; z <= MaxAtomicNumber+2; z++ {
		expected := []int{2, 8, 18, 32, 18, z - 78}
		if got := ShellsFor(z); !slices.Equal(got, expected) {
			t.Errorf("ShellsFor(%d) = %v, expected %v", z, got, expected)
		}
	}
}

// TestShellsForNonPositive tests that invalid input yields no shells.
func TestShellsForNonPositive(t *testing.T) {
	t.Parallel()

	for _, z := range []int{0, -1, -100} {
		if got := ShellsFor(z); len(got) != 0 {
			t.Errorf("ShellsFor(%d) = %v, expected empty", z, got)
		}
		if got := ValenceElectrons(z); got != 0 {
			t.Errorf("ValenceElectrons(%d) = %d, expected 0", z, got)
		}
	}
}

// TestShellsForReturnsCopies tests that callers cannot mutate the tables.
func TestShellsForReturnsCopies(t *testing.T) {
	t.Parallel()

	t.Run("exception", func(t *testing.T) {
		t.Parallel()
		first := ShellsFor(29)
		first[0] = 99
		if second := ShellsFor(29); second[0] != 2 {
			t.Errorf("exception table was mutated: %v", second)
		}
	})

	t.Run("band", func(t *testing.T) {
		t.Parallel()
		first := ShellsFor(26)
		first[2] = 99
		if second := ShellsFor(26); second[2] != 14 {
			t.Errorf("band base was mutated: %v", second)
		}
	})
}

// TestValenceElectrons tests the outermost shell lookup.
func TestValenceElectrons(t *testing.T) {
	t.Parallel()

	testCases := map[int]int{1: 1, 8: 6, 11: 1, 17: 7, 29: 1, 46: 18, 87: 9, 118: 40}
	for z, expected := range testCases {
		if got := ValenceElectrons(z); got != expected {
			t.Errorf("ValenceElectrons(%d) = %d, expected %d", z, got, expected)
		}
	}
}

// TestShellsForIdempotent tests that repeated calls agree.
func TestShellsForIdempotent(t *testing.T) {
	t.Parallel()

	for z := 1; z <= MaxAtomicNumber; z++ {
		if !slices.Equal(ShellsFor(z), ShellsFor(z)) {
			t.Errorf("ShellsFor(%d) is not deterministic", z)
		}
	}
}
