package analyzer

import (
	"golang.org/x/text/language"
	"google.golang.org/genai"

	"github.com/atomscope/atomscope/internal/model"
)

// svgCanvas is the drawing area every generated SVG must use.
const svgCanvas = "viewBox='0 0 400 300'"

// ResponseSchema returns the structured-output schema. Free-text fields ask
// for lang; the drawing rules are fixed.
func ResponseSchema(lang language.Tag) *genai.Schema {
	name := languageName(lang)

	atom := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"symbol":       {Type: genai.TypeString},
			"name":         {Type: genai.TypeString, Description: "IUPAC element name, e.g. Sodium"},
			"atomicNumber": {Type: genai.TypeInteger},
			"mass":         {Type: genai.TypeNumber},
			"shells": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeInteger},
				Description: "Electrons per shell from the inside out, e.g. Na is [2, 8, 1]",
			},
			"valenceElectrons": {Type: genai.TypeInteger},
			"color":            {Type: genai.TypeString, Description: "Muted hex color for the element, CPK inspired"},
		},
		Required: []string{"symbol", "name", "atomicNumber", "shells", "valenceElectrons", "color"},
	}

	bond := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fromIndex": {Type: genai.TypeInteger},
			"toIndex":   {Type: genai.TypeInteger},
			"type":      {Type: genai.TypeString, Enum: enumStrings(model.BondKinds())},
		},
		Required: []string{"fromIndex", "toIndex", "type"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isAtom":      {Type: genai.TypeBoolean},
			"name":        {Type: genai.TypeString, Description: "Official IUPAC name"},
			"commonName":  {Type: genai.TypeString, Description: "Common " + name + " name, if any"},
			"formula":     {Type: genai.TypeString},
			"description": {Type: genai.TypeString, Description: "General description in " + name},
			"atoms":       {Type: genai.TypeArray, Items: atom},
			"bonds":       {Type: genai.TypeArray, Items: bond},
			"bondType":    {Type: genai.TypeString, Enum: enumStrings(model.BondTypes())},

			"electronFormulaSvg": {Type: genai.TypeString, Description: "SVG (" + svgCanvas + ") of the ELECTRON FORMULA: " +
				"large element symbols, every valence electron as a filled dot, dots paired on the four sides, " +
				"shared electrons placed between the symbols, dark high-contrast colors."},
			"lewisStructureSvg": {Type: genai.TypeString, Description: "SVG (" + svgCanvas + ") of the LEWIS STRUCTURE: " +
				"shared pairs as single, double or triple lines, lone pairs as dots on their atom, " +
				"chemically reasonable geometry (bent water, linear CO2), clear labels."},
			"structuralFormulaSvg": {Type: genai.TypeString, Description: "SVG (" + svgCanvas + ") of the STRUCTURAL FORMULA: " +
				"lines for bonds only, no electrons, correct connectivity."},

			"lewisStructure":    {Type: genai.TypeString},
			"electronFormula":   {Type: genai.TypeString},
			"structuralFormula": {Type: genai.TypeString},

			"formationMechanism": {Type: genai.TypeString, Description: name + " text in numbered steps: " +
				"1. electron configuration of each atom; 2. tendency to gain, lose or share electrons to reach an octet; " +
				"3. the process (e.g. Na gives 1e to Cl); 4. resulting ions or shared pairs; 5. electrostatic attraction if ionic."},
			"lewisExplanation": {Type: genai.TypeString, Description: name + " explanation of the Lewis formula: " +
				"total valence electrons, bonding pairs, lone pairs on each atom."},
			"hasHydrogenBonds": {Type: genai.TypeBoolean},
			"hydrogenBondDescription": {Type: genai.TypeString, Description: name + " description of hydrogen bonding, if any. " +
				"Name the donor (mobile H bound to which electronegative element) and the acceptor (which element has a free lone pair)."},
		},
		Required: []string{"isAtom", "name", "formula", "atoms", "bondType", "formationMechanism", "lewisExplanation", "hasHydrogenBonds"},
	}
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
