package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
)

// MarkdownWriter outputs reports in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

func (w *MarkdownWriter) build(md *markdown.Markdown) (int, error) {
	return len(md.String()), md.Build()
}

// WriteAtom outputs the detail view of one element.
func (w *MarkdownWriter) WriteAtom(a periodic.Atom) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(a.Name + " (" + a.Symbol + ")")
	md.PlainText("")
	if a.Synthetic {
		md.Note("Approximate data: this element is not in the built-in table.")
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Atomic number", strconv.Itoa(a.AtomicNumber)},
			{"Atomic mass", formatMass(a.Mass)},
			{"Category", a.Category.Label()},
			{"Group / Period", groupPeriod(a.Element)},
			{"Shells", joinInts(a.Shells)},
			{"Valence electrons", strconv.Itoa(a.ValenceElectrons)},
			{"Electron configuration", "`" + orDash(a.ElectronConfig) + "`"},
		},
	})
	md.PlainText("")

	md.H2("Periodic trends")
	md.PlainText("")
	md.BulletList(
		"**Atomic radius:** "+a.Trends.Radius,
		"**Electronegativity:** "+a.Trends.Electronegativity,
		"**Character:** "+a.Trends.Character,
	)
	md.PlainText("")
	md.PlainText(a.Summary)
	md.PlainText("")

	if len(a.Shells) > 0 {
		w.writeShellChart(md, a)
	}
	w.writeFooter(md)
	return w.build(md)
}

// writeShellChart writes a mermaid pie chart of electrons per shell.
func (w *MarkdownWriter) writeShellChart(md *markdown.Markdown, a periodic.Atom) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Electrons per shell"),
		piechart.WithShowData(true),
	)
	for i, n := range a.Shells {
		chart.LabelAndIntValue(shellName(i), uint64(n)) //nolint:gosec // shell counts are positive
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteComparison outputs several elements as one table, one column each.
func (w *MarkdownWriter) WriteComparison(atoms []periodic.Atom) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Element comparison")
	md.PlainText("")

	if len(atoms) == 0 {
		md.PlainText("No elements to compare.")
		return w.build(md)
	}

	header := []string{"Property"}
	for _, a := range atoms {
		header = append(header, a.Symbol)
	}

	row := func(label string, value func(periodic.Atom) string) []string {
		r := []string{label}
		for _, a := range atoms {
			r = append(r, value(a))
		}
		return r
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows: [][]string{
			row("Name", func(a periodic.Atom) string { return a.Name }),
			row("Atomic number", func(a periodic.Atom) string { return strconv.Itoa(a.AtomicNumber) }),
			row("Category", func(a periodic.Atom) string { return a.Category.Label() }),
			row("Group / Period", func(a periodic.Atom) string { return groupPeriod(a.Element) }),
			row("Shells", func(a periodic.Atom) string { return joinInts(a.Shells) }),
			row("Valence electrons", func(a periodic.Atom) string { return strconv.Itoa(a.ValenceElectrons) }),
			row("Configuration", func(a periodic.Atom) string { return orDash(a.ElectronConfig) }),
			row("Electronegativity", func(a periodic.Atom) string {
				if v, ok := periodic.Electronegativity(a.AtomicNumber); ok {
					return strconv.FormatFloat(v, 'f', -1, 64)
				}
				return "-"
			}),
		},
	})
	md.PlainText("")

	md.H2("Trends")
	md.PlainText("")
	for _, a := range atoms {
		md.H3(a.Name)
		md.PlainText("")
		md.BulletList(a.Trends.Radius, a.Trends.Electronegativity, a.Trends.Character)
		md.PlainText("")
	}

	w.writeFooter(md)
	return w.build(md)
}

// WriteTable outputs the periodic table as a Markdown table.
func (w *MarkdownWriter) WriteTable(grid periodic.Grid) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Periodic table")
	md.PlainText("")

	header := make([]string, 0, periodic.GridColumns+1)
	header = append(header, "")
	for col := 1; col <= periodic.GridColumns; col++ {
		header = append(header, strconv.Itoa(col))
	}

	rows := make([][]string, 0, periodic.GridMainRows+2)
	for r, cells := range grid.Main {
		rows = append(rows, markdownRow(strconv.Itoa(r+1), cells[:], 0))
	}
	rows = append(rows,
		markdownRow("La", grid.Lanthanides, 3),
		markdownRow("Ac", grid.Actinides, 3),
	)

	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")

	legend := make([]string, 0, len(periodic.Categories()))
	for _, c := range periodic.Categories() {
		legend = append(legend, fmt.Sprintf("%s `%s`", c.Label(), c.Color()))
	}
	md.H2("Legend")
	md.PlainText("")
	md.BulletList(legend...)
	md.PlainText("")

	w.writeFooter(md)
	return w.build(md)
}

func markdownRow(label string, cells []int, offset int) []string {
	row := make([]string, periodic.GridColumns+1)
	row[0] = "**" + label + "**"
	for i, z := range cells {
		if z != 0 && offset+i < periodic.GridColumns {
			row[offset+i+1] = periodic.Lookup(z).Symbol
		}
	}
	return row
}

// WriteAnalysis outputs one analysis.
func (w *MarkdownWriter) WriteAnalysis(a *model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if !a.HasData() {
		md.H1(a.Query)
		md.PlainText("")
		if a.TimedOut {
			md.Warningf("%s (timed out)", noDataMessage(a))
		} else {
			md.Warningf("%s", noDataMessage(a))
		}
		md.PlainText("")
		return w.build(md)
	}

	m := a.Molecule
	title := cases.Title(analysisLanguage(a), cases.NoLower).String(m.Name)
	md.H1(title + " (" + m.Formula + ")")
	md.PlainText("")

	rows := [][]string{
		{"Formula", "`" + m.Formula + "`"},
		{"Kind", kindLabel(m)},
		{"Bond type", string(m.BondType)},
		{"Hydrogen bonds", yesNo(m.HasHydrogenBonds)},
		{"Model", a.Model},
		{"Date", a.CreatedAt.Format("2006-01-02 15:04:05 MST")},
	}
	if m.CommonName != "" {
		rows = append([][]string{{"Common name", m.CommonName}}, rows...)
	}
	md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
	md.PlainText("")

	if m.Description != "" {
		md.PlainText(m.Description)
		md.PlainText("")
	}

	w.writeAtoms(md, m)
	w.writeBonds(md, m)

	md.H2("Formation: " + m.BondType.StageLabel())
	md.PlainText("")
	md.PlainText(m.FormationMechanism)
	md.PlainText("")

	md.H2("Lewis structure")
	md.PlainText("")
	md.PlainText(m.LewisExplanation)
	md.PlainText("")
	if m.LewisStructure != "" {
		md.CodeBlocks(markdown.SyntaxHighlight("text"), m.LewisStructure)
		md.PlainText("")
	}

	if m.HasHydrogenBonds {
		md.H2("Hydrogen bonding")
		md.PlainText("")
		md.PlainText(orDash(m.HydrogenBondDescription))
		md.PlainText("")
	}

	for _, d := range []struct{ title, svg string }{
		{"Electron formula (SVG)", m.ElectronFormulaSVG},
		{"Lewis structure (SVG)", m.LewisStructureSVG},
		{"Structural formula (SVG)", m.StructuralFormulaSVG},
	} {
		if d.svg != "" {
			md.Details(d.title, d.svg)
		}
	}
	if a.Sanitized > 0 {
		md.Importantf("%d unsafe item(s) were removed from the generated drawings.", a.Sanitized)
		md.PlainText("")
	}

	w.writeFooter(md)
	return w.build(md)
}

func analysisLanguage(a *model.Analysis) language.Tag {
	tag, err := language.Parse(a.Language)
	if err != nil {
		return language.English
	}
	return tag
}

func (w *MarkdownWriter) writeAtoms(md *markdown.Markdown, m *model.Molecule) {
	if len(m.Atoms) == 0 {
		return
	}
	md.H2("Atoms")
	md.PlainText("")

	header := []string{"#", "Symbol", "Name", "Z", "Shells", "Valence"}
	ionic := m.BondType == model.BondTypeIonic
	if ionic {
		header = append(header, "Ion")
	}
	rows := make([][]string, len(m.Atoms))
	for i, atom := range m.Atoms {
		rows[i] = []string{
			strconv.Itoa(i),
			atom.Symbol,
			atom.Name,
			strconv.Itoa(atom.AtomicNumber),
			joinInts(atom.Shells),
			strconv.Itoa(atom.ValenceElectrons),
		}
		if ionic {
			rows[i] = append(rows[i], atom.Symbol+atom.ChargeLabel())
		}
	}
	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
}

func (w *MarkdownWriter) writeBonds(md *markdown.Markdown, m *model.Molecule) {
	if len(m.Bonds) == 0 {
		return
	}
	md.H2("Bonds")
	md.PlainText("")

	rows := make([][]string, len(m.Bonds))
	for i, b := range m.Bonds {
		rows[i] = []string{atomLabel(m, b.FromIndex), atomLabel(m, b.ToIndex), string(b.Type)}
	}
	md.Table(markdown.TableSet{Header: []string{"From", "To", "Type"}, Rows: rows})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Bonds by kind"),
		piechart.WithShowData(true),
	)
	counts := m.BondCounts()
	for _, kind := range model.BondKinds() {
		if n := counts[kind]; n > 0 {
			chart.LabelAndIntValue(string(kind), uint64(n)) //nolint:gosec // counts are positive
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
	if pairs := m.SharedPairs(); pairs > 0 {
		md.PlainTextf("Shared electron pairs: %d", pairs)
		md.PlainText("")
	}
}

// WriteHistory outputs stored analysis summaries as a table.
func (w *MarkdownWriter) WriteHistory(entries []database.AnalysisMetadata) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Analysis history")
	md.PlainText("")

	if len(entries) == 0 {
		md.PlainText("No analyses stored yet.")
		return w.build(md)
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.FormatInt(e.ID, 10),
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Query,
			orDash(e.Formula),
			orDash(e.BondType),
			e.Model,
			e.Language,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Date", "Query", "Formula", "Bond", "Model", "Language"},
		Rows:   rows,
	})
	md.PlainText("")
	return w.build(md)
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by atomscope*")
}
