package periodic

import (
	"strconv"
	"strings"
	"testing"
)

// TestConfigFor tests noble-gas notation, the exceptions and the small atoms.
func TestConfigFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		z        int
		expected string
	}{
		{"hydrogen has no core", 1, "1s¹"},
		{"helium has no core", 2, "1s²"},
		{"lithium", 3, "[He] 2s¹"},
		{"neon uses helium core", 10, "[He] 2s² 2p⁶"},
		{"sodium", 11, "[Ne] 3s¹"},
		{"sulfur", 16, "[Ne] 3s² 3p⁴"},
		{"iron", 26, "[Ar] 4s² 3d⁶"},
		{"chromium exception", 24, "[Ar] 3d⁵ 4s¹"},
		{"copper exception", 29, "[Ar] 3d¹⁰ 4s¹"},
		{"palladium exception", 46, "[Kr] 4d¹⁰"},
		{"platinum exception", 78, "[Xe] 4f¹⁴ 5d⁹ 6s¹"},
		{"gold exception", 79, "[Xe] 4f¹⁴ 5d¹⁰ 6s¹"},
		{"bromine", 35, "[Ar] 4s² 3d¹⁰ 4p⁵"},
		{"lead", 82, "[Xe] 6s² 4f¹⁴ 5d¹⁰ 6p²"},
		{"oganesson", 118, "[Rn] 7s² 5f¹⁴ 6d¹⁰ 7p⁶"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ConfigFor(tc.z); got != tc.expected {
				t.Errorf("ConfigFor(%d) = %q, expected %q", tc.z, got, tc.expected)
			}
		})
	}
}

// superscriptValue converts a superscript digit run back to an integer.
func superscriptValue(t *testing.T, s string) int {
	t.Helper()

	var digits strings.Builder
	for _, r := range s {
		found := false
		for d, sup := range superscriptDigits {
			if string(r) == sup {
				digits.WriteByte(byte('0' + d))
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected rune %q in %q", r, s)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		t.Fatalf("invalid superscript %q: %v", s, err)
	}
	return n
}

// TestConfigForElectronCount tests that the core plus every subshell adds up to z.
func TestConfigForElectronCount(t *testing.T) {
	t.Parallel()

	coreZ := map[string]int{"[He]": 2, "[Ne]": 10, "[Ar]": 18, "[Kr]": 36, "[Xe]": 54, "[Rn]": 86}

	for z := 1; z <= MaxAtomicNumber; z++ {
		cfg := ConfigFor(z)
		if cfg != strings.TrimSpace(cfg) {
			t.Errorf("z=%d: configuration %q has surrounding whitespace", z, cfg)
		}

		total := 0
		for _, token := range strings.Fields(cfg) {
			if n, ok := coreZ[token]; ok {
				total += n
				continue
			}
			// Tokens look like "3d¹⁰": a digit, a letter, then the count.
			total += superscriptValue(t, token[2:])
		}
		if total != z {
			t.Errorf("z=%d: configuration %q accounts for %d electrons", z, cfg, total)
		}
	}
}

// TestConfigForUndercountsBeyondTable documents the known limitation past 7p.
func TestConfigForUndercountsBeyondTable(t *testing.T) {
	t.Parallel()

	if got := ConfigFor(120); got != ConfigFor(118) {
		t.Errorf("expected the fill walk to stop at 7p, got %q", got)
	}
}

// TestSuperscript tests superscript digit rendering.
func TestSuperscript(t *testing.T) {
	t.Parallel()

	testCases := map[int]string{0: "⁰", 1: "¹", 6: "⁶", 10: "¹⁰", 14: "¹⁴", 123: "¹²³"}
	for n, expected := range testCases {
		if got := Superscript(n); got != expected {
			t.Errorf("Superscript(%d) = %q, expected %q", n, got, expected)
		}
	}
}

// TestSubshellString tests subshell labels.
func TestSubshellString(t *testing.T) {
	t.Parallel()

	if got := (Subshell{N: 4, Letter: 'f', Capacity: 14}).String(); got != "4f" {
		t.Errorf("expected 4f, got %q", got)
	}
}
