package periodic

// Category is the chemical family an element belongs to.
type Category string

// Known element categories.
const (
	CategoryAlkaliMetal         Category = "alkali-metal"
	CategoryAlkalineEarthMetal  Category = "alkaline-earth-metal"
	CategoryTransitionMetal     Category = "transition-metal"
	CategoryPostTransitionMetal Category = "post-transition-metal"
	CategoryMetalloid           Category = "metalloid"
	CategoryNonmetal            Category = "nonmetal"
	CategoryHalogen             Category = "halogen"
	CategoryNobleGas            Category = "noble-gas"
	CategoryLanthanide          Category = "lanthanide"
	CategoryActinide            Category = "actinide"
	CategoryUnknown             Category = "unknown"
)

// unknownColor is used for CategoryUnknown and anything unrecognized.
const unknownColor = "#9ca3af"

// categoryInfo is the per-category presentation metadata.
type categoryInfo struct {
	color string
	label string
	metal bool
}

var categories = map[Category]categoryInfo{
	CategoryAlkaliMetal:         {color: "#ef4444", label: "Alkali metal", metal: true},
	CategoryAlkalineEarthMetal:  {color: "#f97316", label: "Alkaline earth metal", metal: true},
	CategoryTransitionMetal:     {color: "#eab308", label: "Transition metal", metal: true},
	CategoryPostTransitionMetal: {color: "#84cc16", label: "Post-transition metal", metal: true},
	CategoryMetalloid:           {color: "#10b981", label: "Metalloid"},
	CategoryNonmetal:            {color: "#06b6d4", label: "Nonmetal"},
	CategoryHalogen:             {color: "#3b82f6", label: "Halogen"},
	CategoryNobleGas:            {color: "#8b5cf6", label: "Noble gas"},
	CategoryLanthanide:          {color: "#d946ef", label: "Lanthanide", metal: true},
	CategoryActinide:            {color: "#f43f5e", label: "Actinide", metal: true},
	CategoryUnknown:             {color: unknownColor, label: "Unknown"},
}

// Categories returns every category in table order.
func Categories() []Category {
	return []Category{
		CategoryAlkaliMetal,
		CategoryAlkalineEarthMetal,
		CategoryTransitionMetal,
		CategoryPostTransitionMetal,
		CategoryMetalloid,
		CategoryNonmetal,
		CategoryHalogen,
		CategoryNobleGas,
		CategoryLanthanide,
		CategoryActinide,
		CategoryUnknown,
	}
}

// ParseCategory converts a string into a Category.
// Unrecognized values map to CategoryUnknown and ok is false.
func ParseCategory(s string) (c Category, ok bool) {
	c = Category(s)
	if _, found := categories[c]; found {
		return c, true
	}
	return CategoryUnknown, false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// IsMetal reports whether c belongs to the metal family
// (alkali, alkaline earth, transition, post-transition, lanthanide, actinide).
func (c Category) IsMetal() bool {
	return categories[c].metal
}

// Color returns the hex color associated with the category.
func (c Category) Color() string {
	if info, ok := categories[c]; ok {
		return info.color
	}
	return unknownColor
}

// Label returns a human-readable category name.
func (c Category) Label() string {
	if info, ok := categories[c]; ok {
		return info.label
	}
	return categories[CategoryUnknown].label
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
