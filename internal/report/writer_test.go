package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
)

func sodiumChlorideAnalysis() *model.Analysis {
	a := model.NewAnalysis("NaCl")
	a.NormalizedQuery = "NaCl"
	a.Model = "gemini-2.5-flash"
	a.Language = "en"
	a.Molecule = &model.Molecule{
		Name:        "sodium chloride",
		CommonName:  "table salt",
		Formula:     "NaCl",
		Description: "An ionic compound.",
		BondType:    model.BondTypeIonic,
		Atoms: []model.AtomInfo{
			{Symbol: "Na", Name: "Sodium", AtomicNumber: 11, Shells: []int{2, 8, 1}, ValenceElectrons: 1},
			{Symbol: "Cl", Name: "Chlorine", AtomicNumber: 17, Shells: []int{2, 8, 7}, ValenceElectrons: 7},
		},
		Bonds:              []model.BondInfo{{FromIndex: 0, ToIndex: 1, Type: model.BondIonic}},
		FormationMechanism: "Step 1: Na gives one electron to Cl.",
		LewisExplanation:   "8 valence electrons in total.",
		LewisStructureSVG:  `<svg viewBox="0 0 400 300"></svg>`,
	}
	return a
}

// TestFormatFromFlags tests flag to format mapping.
func TestFormatFromFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		json, markdown bool
		want           Format
	}{
		{false, false, FormatSimple},
		{true, false, FormatJSON},
		{false, true, FormatMarkdown},
	}
	for _, tt := range tests {
		if got := FormatFromFlags(tt.json, tt.markdown); got != tt.want {
			t.Errorf("FormatFromFlags(%v, %v) = %v, want %v", tt.json, tt.markdown, got, tt.want)
		}
	}
}

// TestNew tests that New returns the writer for each format.
func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, ok := New(FormatJSON, &buf).(*JSONWriter); !ok {
		t.Error("expected JSONWriter")
	}
	if _, ok := New(FormatMarkdown, &buf).(*MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter")
	}
	if _, ok := New(Format("bogus"), &buf).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter fallback")
	}
}

// TestSimpleWriter tests the plain text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("atom", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAtom(periodic.Describe(11)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Sodium (Na)", "2, 8, 1", "[Ne] 3s¹", "Alkali metal", "1 / 3"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("placeholder atom is flagged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAtom(periodic.Describe(95)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "approximate data") {
			t.Errorf("expected approximate note, got:\n%s", buf.String())
		}
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteTable(periodic.Layout()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(buf.String(), "\n")
		if !strings.HasPrefix(lines[1], "1   H ") || !strings.HasSuffix(strings.TrimRight(lines[1], " "), "He") {
			t.Errorf("unexpected first period line %q", lines[1])
		}
		if !strings.Contains(buf.String(), "(La series)") || !strings.Contains(buf.String(), "Ce") {
			t.Error("expected lanthanide row")
		}
	})

	t.Run("analysis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteAnalysis(sodiumChlorideAnalysis()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"sodium chloride (NaCl)", "table salt", "ion +1", "ion -1", "Na[0] - Cl[1]  ionic", "Electron transfer"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("analysis without data", func(t *testing.T) {
		t.Parallel()

		a := model.NewAnalysis("unobtainium")
		a.ErrorMessage = "model unavailable"

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAnalysis(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != "No data available for \"unobtainium\": model unavailable\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("history", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No analyses stored yet.") {
			t.Errorf("unexpected empty history output %q", buf.String())
		}

		buf.Reset()
		_, err := w.WriteHistory([]database.AnalysisMetadata{{
			ID: 7, Query: "water", Formula: "H2O", BondType: "covalent", Model: "gemini-2.5-flash",
			CreatedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"7", "2026-04-01 09:30", "water", "H2O", "covalent"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected %q in history output:\n%s", want, buf.String())
			}
		}
	})
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("atom", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteAtom(periodic.Describe(8)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got["symbol"] != "O" || got["valenceElectrons"] != float64(6) {
			t.Errorf("unexpected atom JSON: %v", got)
		}
	})

	t.Run("table cells cover every element once", func(t *testing.T) {
		t.Parallel()

		cells := TableCells(periodic.Layout())
		if len(cells) != periodic.MaxAtomicNumber {
			t.Fatalf("expected %d cells, got %d", periodic.MaxAtomicNumber, len(cells))
		}
		seen := make(map[int]bool)
		for _, c := range cells {
			if seen[c.AtomicNumber] {
				t.Errorf("duplicate cell for %d", c.AtomicNumber)
			}
			seen[c.AtomicNumber] = true
		}
		for _, c := range cells {
			if c.AtomicNumber == 58 && (c.Series != "lanthanide" || c.Row != 8 || c.Column != 4) {
				t.Errorf("unexpected cerium cell %+v", c)
			}
		}
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != "[]" {
			t.Errorf("expected [], got %q", got)
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteAnalysis(sodiumChlorideAnalysis()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"query\": \"NaCl\"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("atom with shell chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteAtom(periodic.Describe(17)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# Chlorine (Cl)", "## Periodic trends", "```mermaid", "Electrons per shell", "Halogen"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("comparison", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		atoms := []periodic.Atom{periodic.Describe(11), periodic.Describe(17)}
		if _, err := NewMarkdownWriter(&buf).WriteComparison(atoms); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# Element comparison", "Na", "Cl", "0.93", "3.16"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteTable(periodic.Layout()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# Periodic table", "**La**", "## Legend", "Noble gas"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("analysis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := sodiumChlorideAnalysis()
		a.Sanitized = 2
		if _, err := NewMarkdownWriter(&buf).WriteAnalysis(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# Sodium Chloride (NaCl)", "## Atoms", "Na+1", "Cl-1", "## Bonds", "Bonds by kind", "Electron transfer", "Lewis structure (SVG)", "2 unsafe item(s)"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("analysis without data", func(t *testing.T) {
		t.Parallel()

		a := model.NewAnalysis("H2O")
		a.Fail(nil)
		a.TimedOut = true

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteAnalysis(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No data available") || !strings.Contains(buf.String(), "timed out") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}
