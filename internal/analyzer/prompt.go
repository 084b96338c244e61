package analyzer

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageName returns the English name of tag, e.g. "Vietnamese".
func languageName(tag language.Tag) string {
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return "English"
}

// BuildPrompt assembles the request text for query.
func BuildPrompt(query string, lang language.Tag) string {
	name := languageName(lang)

	var b strings.Builder
	b.WriteString("Act as an experienced chemistry teacher. Analyze the substance ")
	b.WriteString(strconv.Quote(strings.TrimSpace(query)))
	b.WriteString(".\n\n")

	b.WriteString("SVG REQUIREMENTS (very important):\n")
	b.WriteString("- Draw cleanly and in textbook style, balanced on the canvas.\n")
	b.WriteString("- Leave enough padding so nothing is clipped.\n")
	b.WriteString("- Use a bold sans-serif font.\n")
	b.WriteString("- Use dark strokes (#1e5b36, #000) and avoid pale colors.\n")
	b.WriteString("- Electron formula: draw electrons as clear dots (circle r=3) arranged in pairs.\n")
	b.WriteString("- Lewis formula: bonds are straight lines, lone pairs are dots.\n\n")

	b.WriteString("CONTENT REQUIREMENTS:\n")
	b.WriteString("- Formation mechanism: split into explicit steps (Step 1, Step 2, ...) from electron configuration to tendency to process to result.\n")
	b.WriteString("- Hydrogen bonding: if the substance forms hydrogen bonds (H2O, NH3, alcohols, acids, ...), explain the donor and acceptor in detail.\n")
	b.WriteString("- Write all descriptive text in ")
	b.WriteString(name)
	b.WriteString(".\n")

	return b.String()
}
