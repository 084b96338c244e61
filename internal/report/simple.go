package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
)

// SimpleWriter outputs human-readable text for the terminal.
type SimpleWriter struct {
	baseWriter

	// verbose adds the drawings' text fallbacks and pipeline steps.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

const labelWidth = 20

func writeField(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "  %-*s %s\n", labelWidth, label+":", value)
}

// WriteAtom outputs the detail view of one element.
func (w *SimpleWriter) WriteAtom(a periodic.Atom) (int, error) {
	var sb strings.Builder
	w.atomBlock(&sb, a)
	return w.writeString(sb.String())
}

func (w *SimpleWriter) atomBlock(sb *strings.Builder, a periodic.Atom) {
	title := fmt.Sprintf("%s (%s)", a.Name, a.Symbol)
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")

	writeField(sb, "Atomic number", fmt.Sprint(a.AtomicNumber))
	writeField(sb, "Atomic mass", formatMass(a.Mass))
	writeField(sb, "Category", a.Category.Label())
	writeField(sb, "Group / Period", groupPeriod(a.Element))
	writeField(sb, "Shells", joinInts(a.Shells))
	writeField(sb, "Valence electrons", fmt.Sprint(a.ValenceElectrons))
	writeField(sb, "Configuration", orDash(a.ElectronConfig))
	writeField(sb, "Atomic radius", a.Trends.Radius)
	writeField(sb, "Electronegativity", a.Trends.Electronegativity)
	writeField(sb, "Character", a.Trends.Character)
	sb.WriteString("\n  " + a.Summary + "\n")
	if a.Synthetic {
		sb.WriteString("  (approximate data: this element is not in the built-in table)\n")
	}
}

// WriteComparison outputs several elements one after another.
func (w *SimpleWriter) WriteComparison(atoms []periodic.Atom) (int, error) {
	var sb strings.Builder
	for i, a := range atoms {
		if i > 0 {
			sb.WriteString("\n")
		}
		w.atomBlock(&sb, a)
	}
	return w.writeString(sb.String())
}

// WriteTable outputs the periodic table as a fixed-width grid of symbols.
func (w *SimpleWriter) WriteTable(grid periodic.Grid) (int, error) {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 1; col <= periodic.GridColumns; col++ {
		fmt.Fprintf(&sb, "%-4d", col)
	}
	sb.WriteString("\n")

	for row, cells := range grid.Main {
		fmt.Fprintf(&sb, "%-4d", row+1)
		for _, z := range cells {
			sb.WriteString(cell(z))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, detached := range []struct {
		label string
		row   []int
	}{
		{"La", grid.Lanthanides},
		{"Ac", grid.Actinides},
	} {
		sb.WriteString(strings.Repeat(" ", 4+3*4))
		for _, z := range detached.row {
			sb.WriteString(cell(z))
		}
		fmt.Fprintf(&sb, " (%s series)\n", detached.label)
	}
	return w.writeString(sb.String())
}

func cell(z int) string {
	if z == 0 {
		return "    "
	}
	return fmt.Sprintf("%-4s", periodic.Lookup(z).Symbol)
}

// WriteAnalysis outputs one analysis.
func (w *SimpleWriter) WriteAnalysis(a *model.Analysis) (int, error) {
	var sb strings.Builder

	if !a.HasData() {
		sb.WriteString(noDataMessage(a) + "\n")
		return w.writeString(sb.String())
	}

	m := a.Molecule
	title := fmt.Sprintf("%s (%s)", m.Name, m.Formula)
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")

	if m.CommonName != "" {
		writeField(&sb, "Common name", m.CommonName)
	}
	writeField(&sb, "Kind", kindLabel(m))
	writeField(&sb, "Bond type", string(m.BondType))
	writeField(&sb, "Hydrogen bonds", yesNo(m.HasHydrogenBonds))
	writeField(&sb, "Model", a.Model)
	if a.FromCache {
		writeField(&sb, "Source", fmt.Sprintf("cache (#%d, %s)", a.ID, a.CreatedAt.Format("2006-01-02 15:04")))
	}

	if m.Description != "" {
		sb.WriteString("\n" + m.Description + "\n")
	}

	if len(m.Atoms) > 0 {
		sb.WriteString("\nAtoms\n-----\n")
		for i, atom := range m.Atoms {
			line := fmt.Sprintf("  [%d] %-3s Z=%-3d shells %-14s valence %d", i, atom.Symbol, atom.AtomicNumber, joinInts(atom.Shells), atom.ValenceElectrons)
			if m.BondType == model.BondTypeIonic {
				line += "  ion " + atom.ChargeLabel()
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(m.Bonds) > 0 {
		sb.WriteString("\nBonds\n-----\n")
		for _, b := range m.Bonds {
			fmt.Fprintf(&sb, "  %s - %s  %s\n", atomLabel(m, b.FromIndex), atomLabel(m, b.ToIndex), b.Type)
		}
	}

	sb.WriteString("\nFormation (" + m.BondType.StageLabel() + ")\n")
	sb.WriteString(strings.Repeat("-", len("Formation")) + "\n")
	sb.WriteString(m.FormationMechanism + "\n")

	sb.WriteString("\nLewis structure\n---------------\n")
	sb.WriteString(m.LewisExplanation + "\n")

	if m.HasHydrogenBonds && m.HydrogenBondDescription != "" {
		sb.WriteString("\nHydrogen bonding\n----------------\n")
		sb.WriteString(m.HydrogenBondDescription + "\n")
	}

	if w.verbose {
		for _, f := range []struct{ label, text string }{
			{"Electron formula", m.ElectronFormula},
			{"Lewis formula", m.LewisStructure},
			{"Structural formula", m.StructuralFormula},
		} {
			if f.text != "" {
				sb.WriteString("\n" + f.label + ":\n" + f.text + "\n")
			}
		}
		if len(a.Steps) > 0 {
			sb.WriteString("\nSteps: " + strings.Join(a.Steps, ", ") + "\n")
		}
		if a.Sanitized > 0 {
			fmt.Fprintf(&sb, "Removed %d unsafe drawing item(s)\n", a.Sanitized)
		}
	}

	return w.writeString(sb.String())
}

func kindLabel(m *model.Molecule) string {
	if m.IsAtom {
		return "single atom"
	}
	return "compound"
}

func atomLabel(m *model.Molecule, i int) string {
	if i < 0 || i >= len(m.Atoms) {
		return "?"
	}
	return fmt.Sprintf("%s[%d]", m.Atoms[i].Symbol, i)
}

// WriteHistory outputs one line per stored analysis.
func (w *SimpleWriter) WriteHistory(entries []database.AnalysisMetadata) (int, error) {
	if len(entries) == 0 {
		return w.writeString("No analyses stored yet.\n")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-6s %-17s %-24s %-12s %-10s %s\n", "ID", "Date", "Query", "Formula", "Bond", "Model")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-6d %-17s %-24s %-12s %-10s %s\n",
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04"),
			truncateString(e.Query, 24),
			orDash(e.Formula),
			orDash(e.BondType),
			e.Model,
		)
	}
	return w.writeString(sb.String())
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
