package periodic

import "strconv"

// MaxAtomicNumber is the highest atomic number the periodic table view covers.
const MaxAtomicNumber = 118

// Element is an immutable element record.
type Element struct {
	AtomicNumber int      `json:"atomicNumber"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Mass         float64  `json:"mass"`
	Category     Category `json:"category"`
	// Group is 1-18; 0 means undefined.
	Group int `json:"group"`
	// Period is 1-7; 0 means undefined.
	Period int `json:"period"`
	// Synthetic marks a placeholder built for an atomic number that has no
	// table entry. Its mass, group and period are approximations.
	Synthetic bool `json:"synthetic,omitempty"`
}

// elementTable lists the elements with known data, ordered by atomic number.
var elementTable = []Element{
	{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", Mass: 1.008, Category: CategoryNonmetal, Group: 1, Period: 1},
	{AtomicNumber: 2, Symbol: "He", Name: "Helium", Mass: 4.0026, Category: CategoryNobleGas, Group: 18, Period: 1},
	{AtomicNumber: 3, Symbol: "Li", Name: "Lithium", Mass: 6.94, Category: CategoryAlkaliMetal, Group: 1, Period: 2},
	{AtomicNumber: 4, Symbol: "Be", Name: "Beryllium", Mass: 9.0122, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 2},
	{AtomicNumber: 5, Symbol: "B", Name: "Boron", Mass: 10.81, Category: CategoryMetalloid, Group: 13, Period: 2},
	{AtomicNumber: 6, Symbol: "C", Name: "Carbon", Mass: 12.011, Category: CategoryNonmetal, Group: 14, Period: 2},
	{AtomicNumber: 7, Symbol: "N", Name: "Nitrogen", Mass: 14.007, Category: CategoryNonmetal, Group: 15, Period: 2},
	{AtomicNumber: 8, Symbol: "O", Name: "Oxygen", Mass: 15.999, Category: CategoryNonmetal, Group: 16, Period: 2},
	{AtomicNumber: 9, Symbol: "F", Name: "Fluorine", Mass: 18.998, Category: CategoryHalogen, Group: 17, Period: 2},
	{AtomicNumber: 10, Symbol: "Ne", Name: "Neon", Mass: 20.180, Category: CategoryNobleGas, Group: 18, Period: 2},
	{AtomicNumber: 11, Symbol: "Na", Name: "Sodium", Mass: 22.990, Category: CategoryAlkaliMetal, Group: 1, Period: 3},
	{AtomicNumber: 12, Symbol: "Mg", Name: "Magnesium", Mass: 24.305, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 3},
	{AtomicNumber: 13, Symbol: "Al", Name: "Aluminium", Mass: 26.982, Category: CategoryPostTransitionMetal, Group: 13, Period: 3},
	{AtomicNumber: 14, Symbol: "Si", Name: "Silicon", Mass: 28.085, Category: CategoryMetalloid, Group: 14, Period: 3},
	{AtomicNumber: 15, Symbol: "P", Name: "Phosphorus", Mass: 30.974, Category: CategoryNonmetal, Group: 15, Period: 3},
	{AtomicNumber: 16, Symbol: "S", Name: "Sulfur", Mass: 32.06, Category: CategoryNonmetal, Group: 16, Period: 3},
	{AtomicNumber: 17, Symbol: "Cl", Name: "Chlorine", Mass: 35.45, Category: CategoryHalogen, Group: 17, Period: 3},
	{AtomicNumber: 18, Symbol: "Ar", Name: "Argon", Mass: 39.948, Category: CategoryNobleGas, Group: 18, Period: 3},
	{AtomicNumber: 19, Symbol: "K", Name: "Potassium", Mass: 39.098, Category: CategoryAlkaliMetal, Group: 1, Period: 4},
	{AtomicNumber: 20, Symbol: "Ca", Name: "Calcium", Mass: 40.078, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 4},
	{AtomicNumber: 21, Symbol: "Sc", Name: "Scandium", Mass: 44.956, Category: CategoryTransitionMetal, Group: 3, Period: 4},
	{AtomicNumber: 22, Symbol: "Ti", Name: "Titanium", Mass: 47.867, Category: CategoryTransitionMetal, Group: 4, Period: 4},
	{AtomicNumber: 23, Symbol: "V", Name: "Vanadium", Mass: 50.942, Category: CategoryTransitionMetal, Group: 5, Period: 4},
	{AtomicNumber: 24, Symbol: "Cr", Name: "Chromium", Mass: 51.996, Category: CategoryTransitionMetal, Group: 6, Period: 4},
	{AtomicNumber: 25, Symbol: "Mn", Name: "Manganese", Mass: 54.938, Category: CategoryTransitionMetal, Group: 7, Period: 4},
	{AtomicNumber: 26, Symbol: "Fe", Name: "Iron", Mass: 55.845, Category: CategoryTransitionMetal, Group: 8, Period: 4},
	{AtomicNumber: 27, Symbol: "Co", Name: "Cobalt", Mass: 58.933, Category: CategoryTransitionMetal, Group: 9, Period: 4},
	{AtomicNumber: 28, Symbol: "Ni", Name: "Nickel", Mass: 58.693, Category: CategoryTransitionMetal, Group: 10, Period: 4},
	{AtomicNumber: 29, Symbol: "Cu", Name: "Copper", Mass: 63.546, Category: CategoryTransitionMetal, Group: 11, Period: 4},
	{AtomicNumber: 30, Symbol: "Zn", Name: "Zinc", Mass: 65.38, Category: CategoryTransitionMetal, Group: 12, Period: 4},
	{AtomicNumber: 31, Symbol: "Ga", Name: "Gallium", Mass: 69.723, Category: CategoryPostTransitionMetal, Group: 13, Period: 4},
	{AtomicNumber: 32, Symbol: "Ge", Name: "Germanium", Mass: 72.630, Category: CategoryMetalloid, Group: 14, Period: 4},
	{AtomicNumber: 33, Symbol: "As", Name: "Arsenic", Mass: 74.922, Category: CategoryMetalloid, Group: 15, Period: 4},
	{AtomicNumber: 34, Symbol: "Se", Name: "Selenium", Mass: 78.96, Category: CategoryNonmetal, Group: 16, Period: 4},
	{AtomicNumber: 35, Symbol: "Br", Name: "Bromine", Mass: 79.904, Category: CategoryHalogen, Group: 17, Period: 4},
	{AtomicNumber: 36, Symbol: "Kr", Name: "Krypton", Mass: 83.798, Category: CategoryNobleGas, Group: 18, Period: 4},
	{AtomicNumber: 37, Symbol: "Rb", Name: "Rubidium", Mass: 85.468, Category: CategoryAlkaliMetal, Group: 1, Period: 5},
	{AtomicNumber: 38, Symbol: "Sr", Name: "Strontium", Mass: 87.62, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 5},
	{AtomicNumber: 39, Symbol: "Y", Name: "Yttrium", Mass: 88.906, Category: CategoryTransitionMetal, Group: 3, Period: 5},
	{AtomicNumber: 40, Symbol: "Zr", Name: "Zirconium", Mass: 91.224, Category: CategoryTransitionMetal, Group: 4, Period: 5},
	{AtomicNumber: 41, Symbol: "Nb", Name: "Niobium", Mass: 92.906, Category: CategoryTransitionMetal, Group: 5, Period: 5},
	{AtomicNumber: 42, Symbol: "Mo", Name: "Molybdenum", Mass: 95.95, Category: CategoryTransitionMetal, Group: 6, Period: 5},
	{AtomicNumber: 43, Symbol: "Tc", Name: "Technetium", Mass: 98, Category: CategoryTransitionMetal, Group: 7, Period: 5},
	{AtomicNumber: 44, Symbol: "Ru", Name: "Ruthenium", Mass: 101.07, Category: CategoryTransitionMetal, Group: 8, Period: 5},
	{AtomicNumber: 45, Symbol: "Rh", Name: "Rhodium", Mass: 102.91, Category: CategoryTransitionMetal, Group: 9, Period: 5},
	{AtomicNumber: 46, Symbol: "Pd", Name: "Palladium", Mass: 106.42, Category: CategoryTransitionMetal, Group: 10, Period: 5},
	{AtomicNumber: 47, Symbol: "Ag", Name: "Silver", Mass: 107.87, Category: CategoryTransitionMetal, Group: 11, Period: 5},
	{AtomicNumber: 48, Symbol: "Cd", Name: "Cadmium", Mass: 112.41, Category: CategoryTransitionMetal, Group: 12, Period: 5},
	{AtomicNumber: 49, Symbol: "In", Name: "Indium", Mass: 114.82, Category: CategoryPostTransitionMetal, Group: 13, Period: 5},
	{AtomicNumber: 50, Symbol: "Sn", Name: "Tin", Mass: 118.71, Category: CategoryPostTransitionMetal, Group: 14, Period: 5},
	{AtomicNumber: 51, Symbol: "Sb", Name: "Antimony", Mass: 121.76, Category: CategoryMetalloid, Group: 15, Period: 5},
	{AtomicNumber: 52, Symbol: "Te", Name: "Tellurium", Mass: 127.60, Category: CategoryMetalloid, Group: 16, Period: 5},
	{AtomicNumber: 53, Symbol: "I", Name: "Iodine", Mass: 126.90, Category: CategoryHalogen, Group: 17, Period: 5},
	{AtomicNumber: 54, Symbol: "Xe", Name: "Xenon", Mass: 131.29, Category: CategoryNobleGas, Group: 18, Period: 5},
	{AtomicNumber: 55, Symbol: "Cs", Name: "Cesium", Mass: 132.91, Category: CategoryAlkaliMetal, Group: 1, Period: 6},
	{AtomicNumber: 56, Symbol: "Ba", Name: "Barium", Mass: 137.33, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 6},
	{AtomicNumber: 57, Symbol: "La", Name: "Lanthanum", Mass: 138.91, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 58, Symbol: "Ce", Name: "Cerium", Mass: 140.12, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 59, Symbol: "Pr", Name: "Praseodymium", Mass: 140.91, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 60, Symbol: "Nd", Name: "Neodymium", Mass: 144.24, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 61, Symbol: "Pm", Name: "Promethium", Mass: 145, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 62, Symbol: "Sm", Name: "Samarium", Mass: 150.36, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 63, Symbol: "Eu", Name: "Europium", Mass: 151.96, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 64, Symbol: "Gd", Name: "Gadolinium", Mass: 157.25, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 65, Symbol: "Tb", Name: "Terbium", Mass: 158.93, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 66, Symbol: "Dy", Name: "Dysprosium", Mass: 162.50, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 67, Symbol: "Ho", Name: "Holmium", Mass: 164.93, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 68, Symbol: "Er", Name: "Erbium", Mass: 167.26, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 69, Symbol: "Tm", Name: "Thulium", Mass: 168.93, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 70, Symbol: "Yb", Name: "Ytterbium", Mass: 173.05, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 71, Symbol: "Lu", Name: "Lutetium", Mass: 174.97, Category: CategoryLanthanide, Group: 3, Period: 6},
	{AtomicNumber: 72, Symbol: "Hf", Name: "Hafnium", Mass: 178.49, Category: CategoryTransitionMetal, Group: 4, Period: 6},
	{AtomicNumber: 73, Symbol: "Ta", Name: "Tantalum", Mass: 180.95, Category: CategoryTransitionMetal, Group: 5, Period: 6},
	{AtomicNumber: 74, Symbol: "W", Name: "Tungsten", Mass: 183.84, Category: CategoryTransitionMetal, Group: 6, Period: 6},
	{AtomicNumber: 75, Symbol: "Re", Name: "Rhenium", Mass: 186.21, Category: CategoryTransitionMetal, Group: 7, Period: 6},
	{AtomicNumber: 76, Symbol: "Os", Name: "Osmium", Mass: 190.23, Category: CategoryTransitionMetal, Group: 8, Period: 6},
	{AtomicNumber: 77, Symbol: "Ir", Name: "Iridium", Mass: 192.22, Category: CategoryTransitionMetal, Group: 9, Period: 6},
	{AtomicNumber: 78, Symbol: "Pt", Name: "Platinum", Mass: 195.08, Category: CategoryTransitionMetal, Group: 10, Period: 6},
	{AtomicNumber: 79, Symbol: "Au", Name: "Gold", Mass: 196.97, Category: CategoryTransitionMetal, Group: 11, Period: 6},
	{AtomicNumber: 80, Symbol: "Hg", Name: "Mercury", Mass: 200.59, Category: CategoryTransitionMetal, Group: 12, Period: 6},
	{AtomicNumber: 81, Symbol: "Tl", Name: "Thallium", Mass: 204.38, Category: CategoryPostTransitionMetal, Group: 13, Period: 6},
	{AtomicNumber: 82, Symbol: "Pb", Name: "Lead", Mass: 207.2, Category: CategoryPostTransitionMetal, Group: 14, Period: 6},
	{AtomicNumber: 83, Symbol: "Bi", Name: "Bismuth", Mass: 208.98, Category: CategoryPostTransitionMetal, Group: 15, Period: 6},
	{AtomicNumber: 84, Symbol: "Po", Name: "Polonium", Mass: 209, Category: CategoryMetalloid, Group: 16, Period: 6},
	{AtomicNumber: 85, Symbol: "At", Name: "Astatine", Mass: 210, Category: CategoryHalogen, Group: 17, Period: 6},
	{AtomicNumber: 86, Symbol: "Rn", Name: "Radon", Mass: 222, Category: CategoryNobleGas, Group: 18, Period: 6},
	{AtomicNumber: 87, Symbol: "Fr", Name: "Francium", Mass: 223, Category: CategoryAlkaliMetal, Group: 1, Period: 7},
	{AtomicNumber: 88, Symbol: "Ra", Name: "Radium", Mass: 226, Category: CategoryAlkalineEarthMetal, Group: 2, Period: 7},
	{AtomicNumber: 89, Symbol: "Ac", Name: "Actinium", Mass: 227, Category: CategoryActinide, Group: 3, Period: 7},
	{AtomicNumber: 90, Symbol: "Th", Name: "Thorium", Mass: 232.04, Category: CategoryActinide, Group: 3, Period: 7},
	{AtomicNumber: 92, Symbol: "U", Name: "Uranium", Mass: 238.03, Category: CategoryActinide, Group: 3, Period: 7},
}

// elementIndex maps atomic number to its position in elementTable.
var elementIndex = buildIndex(elementTable)

func buildIndex(table []Element) map[int]int {
	index := make(map[int]int, len(table))
	for i, e := range table {
		if _, dup := index[e.AtomicNumber]; dup {
			panic("periodic: duplicate atomic number " + strconv.Itoa(e.AtomicNumber))
		}
		index[e.AtomicNumber] = i
	}
	return index
}

// Lookup returns the element record for atomic number z.
// Numbers without a table entry yield a synthesized placeholder
// (Symbol "Uu", Category unknown, Synthetic true); Lookup never fails.
func Lookup(z int) Element {
	if i, ok := elementIndex[z]; ok {
		return elementTable[i]
	}
	return placeholder(z)
}

// Known reports whether z has a real table entry.
func Known(z int) bool {
	_, ok := elementIndex[z]
	return ok
}

// Elements returns a copy of the static table in atomic-number order.
func Elements() []Element {
	out := make([]Element, len(elementTable))
	copy(out, elementTable)
	return out
}

// FindBySymbol returns the element with the given symbol (case-sensitive,
// e.g. "Na"). Only table entries are searched.
func FindBySymbol(symbol string) (Element, bool) {
	for _, e := range elementTable {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Element{}, false
}

// placeholder builds the approximate record used for unlisted atomic numbers.
func placeholder(z int) Element {
	return Element{
		AtomicNumber: z,
		Symbol:       "Uu",
		Name:         "Element " + strconv.Itoa(z),
		Mass:         float64(z * 2),
		Category:     CategoryUnknown,
		Synthetic:    true,
	}
}
