// Package svg cleans model-generated SVG markup before it is stored or
// rendered. Only an allow-list of drawing elements and presentation
// attributes survives; scripts, foreign content, event handlers and external
// references are removed.
package svg

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// MaxInputBytes bounds the size of a single drawing.
const MaxInputBytes = 512 * 1024

var (
	// ErrNotSVG is returned when the input contains no <svg> element.
	ErrNotSVG = errors.New("svg: input has no <svg> element")

	// ErrTooLarge is returned when the input exceeds MaxInputBytes.
	ErrTooLarge = errors.New("svg: input too large")
)

// Report counts what Sanitize removed.
type Report struct {
	RemovedElements   int
	RemovedAttributes int
}

// Removed returns the total number of removed items.
func (r Report) Removed() int {
	return r.RemovedElements + r.RemovedAttributes
}

// The tokenizer lowercases names; SVG is case sensitive, so both tables map
// the lowercase form back to the canonical spelling.
var allowedElements = canonical(
	"svg", "g", "defs", "title", "desc", "symbol",
	"path", "circle", "ellipse", "line", "polyline", "polygon", "rect",
	"text", "tspan", "marker",
	"linearGradient", "radialGradient", "stop",
)

var allowedAttributes = canonical(
	"id", "class", "style", "xmlns", "xmlns:xlink", "version",
	"x", "y", "x1", "y1", "x2", "y2", "cx", "cy", "r", "rx", "ry", "dx", "dy", "fx", "fy",
	"d", "points", "width", "height", "viewBox", "preserveAspectRatio", "transform",
	"fill", "fill-opacity", "fill-rule", "stroke", "stroke-width", "stroke-opacity",
	"stroke-dasharray", "stroke-linecap", "stroke-linejoin", "opacity",
	"font-size", "font-family", "font-weight", "font-style", "letter-spacing",
	"text-anchor", "dominant-baseline", "alignment-baseline", "baseline-shift",
	"marker-start", "marker-mid", "marker-end",
	"markerWidth", "markerHeight", "markerUnits", "refX", "refY", "orient",
	"offset", "stop-color", "stop-opacity", "gradientUnits",
	"href", "xlink:href",
)

// blockedElements are dropped together with everything inside them.
var blockedElements = map[string]bool{
	"script":        true,
	"style":         true,
	"foreignobject": true,
	"iframe":        true,
	"object":        true,
	"embed":         true,
	"image":         true,
	"animate":       true,
	"set":           true,
}

func canonical(names ...string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = n
	}
	return m
}

// Sanitize returns the cleaned markup. An empty or blank input yields an
// empty result and no error.
func Sanitize(s string) (string, error) {
	out, _, err := SanitizeWithReport(s)
	return out, err
}

// SanitizeWithReport is Sanitize that also reports what was removed.
func SanitizeWithReport(s string) (string, Report, error) {
	var report Report
	if strings.TrimSpace(s) == "" {
		return "", report, nil
	}
	if len(s) > MaxInputBytes {
		return "", report, ErrTooLarge
	}

	var (
		b        strings.Builder
		z        = html.NewTokenizer(strings.NewReader(s))
		skip     int
		skipName string
		sawRoot  bool
		open     []string
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", report, err
			}
			break
		}
		tok := z.Token()

		// Only the blocked element's own name is counted; void HTML tags
		// such as <br> never produce an end tag.
		if skip > 0 {
			if tok.Data == skipName {
				switch tt {
				case html.StartTagToken:
					skip++
				case html.EndTagToken:
					skip--
				}
			}
			continue
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			if blockedElements[tok.Data] {
				report.RemovedElements++
				if tt == html.StartTagToken {
					skip, skipName = 1, tok.Data
				}
				continue
			}
			name, ok := allowedElements[tok.Data]
			if !ok {
				report.RemovedElements++
				continue
			}
			if name == "svg" {
				sawRoot = true
			}
			b.WriteByte('<')
			b.WriteString(name)
			report.RemovedAttributes += writeAttributes(&b, tok.Attr)
			if tt == html.SelfClosingTagToken {
				b.WriteString("/>")
				continue
			}
			b.WriteByte('>')
			open = append(open, name)
		case html.EndTagToken:
			name, ok := allowedElements[tok.Data]
			if !ok {
				continue
			}
			i := lastIndex(open, name)
			if i < 0 {
				continue
			}
			// Close from the innermost element outwards so the output nests.
			for j := len(open) - 1; j >= i; j-- {
				writeEndTag(&b, open[j])
			}
			open = open[:i]
		case html.TextToken:
			b.WriteString(html.EscapeString(tok.Data))
		default:
			// comments, doctypes, processing instructions
		}
	}

	if !sawRoot {
		return "", report, ErrNotSVG
	}
	for i := len(open) - 1; i >= 0; i-- {
		writeEndTag(&b, open[i])
	}
	return strings.TrimSpace(b.String()), report, nil
}

// lastIndex returns the position of the innermost open element called name.
func lastIndex(open []string, name string) int {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == name {
			return i
		}
	}
	return -1
}

func writeEndTag(b *strings.Builder, name string) {
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

// writeAttributes writes the allowed attributes and returns how many were dropped.
func writeAttributes(b *strings.Builder, attrs []html.Attribute) int {
	dropped := 0
	for _, a := range attrs {
		name, ok := allowedAttributes[a.Key]
		if !ok || !safeValue(name, a.Val) {
			dropped++
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	return dropped
}

func safeValue(name, value string) bool {
	v := strings.ToLower(strings.Join(strings.Fields(value), ""))
	switch {
	case strings.Contains(v, "javascript:"), strings.Contains(v, "data:"),
		strings.Contains(v, "expression("), strings.Contains(v, "@import"):
		return false
	case name == "href" || name == "xlink:href":
		return strings.HasPrefix(v, "#")
	}
	for rest := v; ; {
		i := strings.Index(rest, "url(")
		if i < 0 {
			return true
		}
		rest = strings.TrimLeft(rest[i+len("url("):], `'"`)
		if !strings.HasPrefix(rest, "#") {
			return false
		}
	}
}
