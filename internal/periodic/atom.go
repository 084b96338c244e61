package periodic

import "golang.org/x/text/language"

// Atom is the full per-element detail shown in the atom view.
type Atom struct {
	Element
	Shells           []int  `json:"shells"`
	ValenceElectrons int    `json:"valenceElectrons"`
	Color            string `json:"color"`
	ElectronConfig   string `json:"electronConfig"`
	Trends           Trends `json:"trends"`
	Summary          string `json:"summary"`
}

// summaryText is the one-line atom description catalog for one language.
type summaryText struct {
	nobleGas    string
	metal       string
	metalloid   string
	hydrogen    string
	nonmetal    string
	lowValence  string
	highValence string
	fourValence string
}

var summaries = map[language.Tag]summaryText{
	language.English: {
		nobleGas:    "Stable noble gas, chemically inert because its outer shell is full (8 electrons, or 2 for helium).",
		metal:       "Metal atom that tends to lose electrons to reach a stable configuration.",
		metalloid:   "Metalloid with properties intermediate between metals and nonmetals.",
		hydrogen:    "A special nonmetal that tends to share electrons or gain one electron.",
		nonmetal:    "Nonmetal atom that tends to gain or share electrons to reach a stable configuration.",
		lowValence:  "Metal-like atom that tends to lose electrons.",
		highValence: "Nonmetal-like atom that tends to gain electrons.",
		fourValence: "Atom with 4 outer electrons that tends to form covalent bonds.",
	},
	language.Vietnamese: {
		nobleGas:    "Khí hiếm bền vững, trơ về mặt hóa học do có lớp vỏ ngoài cùng bão hòa (8e hoặc 2e với He).",
		metal:       "Nguyên tử kim loại, có xu hướng nhường electron để đạt cấu hình bền vững.",
		metalloid:   "Á kim, có tính chất trung gian giữa kim loại và phi kim.",
		hydrogen:    "Nguyên tử phi kim đặc biệt, có xu hướng góp chung electron hoặc nhận 1 electron.",
		nonmetal:    "Nguyên tử phi kim, có xu hướng nhận electron hoặc góp chung electron để đạt cấu hình bền vững.",
		lowValence:  "Nguyên tử kim loại, có xu hướng nhường electron.",
		highValence: "Nguyên tử phi kim, có xu hướng nhận electron.",
		fourValence: "Nguyên tử có 4 electron lớp ngoài cùng, xu hướng tạo liên kết cộng hóa trị.",
	},
}

// Describe returns the English atom detail for z.
func Describe(z int) Atom {
	return defaultDescriber.Atom(z)
}

// AllAtoms returns the detail for every atomic number 1..MaxAtomicNumber,
// placeholders included.
func AllAtoms() []Atom {
	return defaultDescriber.AllAtoms()
}

// Atom composes the element record with its derived data.
func (d *Describer) Atom(z int) Atom {
	e := Lookup(z)
	shells := ShellsFor(z)
	valence := 0
	if len(shells) > 0 {
		valence = shells[len(shells)-1]
	}

	a := Atom{
		Element:          e,
		Shells:           shells,
		ValenceElectrons: valence,
		Color:            e.Category.Color(),
		ElectronConfig:   ConfigFor(z),
		Trends:           d.Describe(e.AtomicNumber, e.Group, e.Period, e.Category),
	}
	a.Summary = d.Summary(a)
	return a
}

// AllAtoms returns the detail for 1..MaxAtomicNumber in this language.
func (d *Describer) AllAtoms() []Atom {
	atoms := make([]Atom, 0, MaxAtomicNumber)
	for z := 1; z <= MaxAtomicNumber; z++ {
		atoms = append(atoms, d.Atom(z))
	}
	return atoms
}

// Summary returns a one-line description of how the atom tends to react.
// Uncategorized atoms are judged by their valence electron count.
func (d *Describer) Summary(a Atom) string {
	text := summaries[d.lang]

	switch {
	case a.Category == CategoryNobleGas:
		return text.nobleGas
	case a.Category.IsMetal():
		return text.metal
	case a.Category == CategoryMetalloid:
		return text.metalloid
	case a.Category == CategoryNonmetal || a.Category == CategoryHalogen:
		if a.AtomicNumber == 1 {
			return text.hydrogen
		}
		return text.nonmetal
	case a.ValenceElectrons <= 3:
		return text.lowValence
	case a.ValenceElectrons >= 5:
		return text.highValence
	default:
		return text.fourValence
	}
}
