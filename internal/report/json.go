package report

import (
	"encoding/json"
	"io"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *JSONWriter) encode(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

// WriteAtom outputs one element.
func (w *JSONWriter) WriteAtom(a periodic.Atom) (int, error) {
	return w.encode(a)
}

// WriteComparison outputs an array of elements.
func (w *JSONWriter) WriteComparison(atoms []periodic.Atom) (int, error) {
	if atoms == nil {
		atoms = []periodic.Atom{}
	}
	return w.encode(atoms)
}

// TableCell is one occupied cell of the periodic table in JSON output.
type TableCell struct {
	AtomicNumber int               `json:"atomicNumber"`
	Symbol       string            `json:"symbol"`
	Name         string            `json:"name"`
	Category     periodic.Category `json:"category"`
	Color        string            `json:"color"`
	Row          int               `json:"row"`
	Column       int               `json:"column"`
	Series       string            `json:"series,omitempty"`
}

// TableCells flattens a grid into its occupied cells. Main-grid rows are
// numbered 1-7; the lanthanide and actinide rows are 8 and 9 with their
// series named.
func TableCells(grid periodic.Grid) []TableCell {
	cells := make([]TableCell, 0, periodic.MaxAtomicNumber)
	add := func(z, row, col int, series string) {
		e := periodic.Lookup(z)
		cells = append(cells, TableCell{
			AtomicNumber: z,
			Symbol:       e.Symbol,
			Name:         e.Name,
			Category:     e.Category,
			Color:        e.Category.Color(),
			Row:          row,
			Column:       col,
			Series:       series,
		})
	}

	for r, row := range grid.Main {
		for c, z := range row {
			if z != 0 {
				add(z, r+1, c+1, "")
			}
		}
	}
	for c, z := range grid.Lanthanides {
		add(z, periodic.GridMainRows+1, c+4, "lanthanide")
	}
	for c, z := range grid.Actinides {
		add(z, periodic.GridMainRows+2, c+4, "actinide")
	}
	return cells
}

// WriteTable outputs the occupied cells of the table.
func (w *JSONWriter) WriteTable(grid periodic.Grid) (int, error) {
	return w.encode(TableCells(grid))
}

// WriteAnalysis outputs one analysis.
func (w *JSONWriter) WriteAnalysis(a *model.Analysis) (int, error) {
	return w.encode(a)
}

// WriteHistory outputs stored analysis summaries as an array.
func (w *JSONWriter) WriteHistory(entries []database.AnalysisMetadata) (int, error) {
	if entries == nil {
		entries = []database.AnalysisMetadata{}
	}
	return w.encode(entries)
}
