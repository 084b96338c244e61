package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
)

// Writer defines the interface for report output.
type Writer interface {
	// WriteAtom outputs the detail view of one element.
	WriteAtom(a periodic.Atom) (int, error)

	// WriteComparison outputs several elements side by side.
	WriteComparison(atoms []periodic.Atom) (int, error)

	// WriteTable outputs the periodic table layout.
	WriteTable(grid periodic.Grid) (int, error)

	// WriteAnalysis outputs one analysis. An analysis without a molecule
	// is reported as "no data available".
	WriteAnalysis(a *model.Analysis) (int, error)

	// WriteHistory outputs stored analysis summaries.
	WriteHistory(entries []database.AnalysisMetadata) (int, error)
}

// Format selects a Writer implementation.
type Format string

// Supported formats.
const (
	FormatSimple   Format = "simple"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// FormatFromFlags maps the --json and --markdown flags to a Format.
func FormatFromFlags(jsonReport, markdownReport bool) Format {
	switch {
	case jsonReport:
		return FormatJSON
	case markdownReport:
		return FormatMarkdown
	default:
		return FormatSimple
	}
}

// New returns the Writer for format. Unknown formats fall back to plain text.
func New(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeString writes s to the output.
func (b baseWriter) writeString(s string) (int, error) {
	return io.WriteString(b.output, s)
}

// shellNames are the letter names of the electron shells, innermost first.
var shellNames = []string{"K", "L", "M", "N", "O", "P", "Q"}

func shellName(i int) string {
	if i >= 0 && i < len(shellNames) {
		return shellNames[i]
	}
	return strconv.Itoa(i + 1)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func formatMass(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

func groupPeriod(e periodic.Element) string {
	if e.Group == 0 && e.Period == 0 {
		return "-"
	}
	return strconv.Itoa(e.Group) + " / " + strconv.Itoa(e.Period)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// noDataMessage is shown for analyses that carry no molecule.
func noDataMessage(a *model.Analysis) string {
	msg := "No data available for " + strconv.Quote(a.Query)
	if a.ErrorMessage != "" {
		msg += ": " + a.ErrorMessage
	}
	return msg
}
