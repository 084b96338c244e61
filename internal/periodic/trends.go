package periodic

import (
	"strconv"

	"golang.org/x/text/language"
)

// Trends holds the canned periodic-trend explanations for one element.
type Trends struct {
	Radius            string `json:"radius"`
	Electronegativity string `json:"electronegativity"`
	Character         string `json:"character"`
}

// electronegativity lists known Pauling values for a subset of elements.
// Zero means undefined (noble gases) and is never printed.
var electronegativity = map[int]float64{
	1: 2.20, 2: 0,
	3: 0.98, 4: 1.57, 5: 2.04, 6: 2.55, 7: 3.04, 8: 3.44, 9: 3.98, 10: 0,
	11: 0.93, 12: 1.31, 13: 1.61, 14: 1.90, 15: 2.19, 16: 2.58, 17: 3.16, 18: 0,
	19: 0.82, 20: 1.00, 26: 1.83, 29: 1.90, 30: 1.65, 35: 2.96,
	37: 0.82, 47: 1.93, 53: 2.66, 79: 2.54, 80: 2.00,
}

// Electronegativity returns the known Pauling electronegativity of z.
// ok is false when no value is recorded or the value is undefined.
func Electronegativity(z int) (value float64, ok bool) {
	v, found := electronegativity[z]
	if !found || v == 0 {
		return 0, false
	}
	return v, true
}

// trendText is the phrase catalog for one language. Functions take the
// interpolated parts they need.
type trendText struct {
	radiusPeriodOne     string
	radiusGroupOne      string
	radiusGroupEighteen string
	radiusMiddle        func(period int) string

	enNobleGas string
	enLow      func(value string) string
	enHigh     func(value string) string
	enMiddle   func(value string) string

	charMetal     string
	charNobleGas  string
	charMetalloid string
	charNonmetal  string
}

var englishText = trendText{
	radiusPeriodOne:     "Very small atomic radius: only one electron shell.",
	radiusGroupOne:      "Largest atomic radius in its period: the nuclear charge is the smallest, so the outer electrons are held weakly.",
	radiusGroupEighteen: "Smallest atomic radius in its period: the large nuclear charge pulls the shells in tightly.",
	radiusMiddle: func(period int) string {
		return "Medium atomic radius. Across period " + strconv.Itoa(period) +
			" the radius shrinks from left to right as the growing nuclear charge pulls electrons closer."
	},

	enNobleGas: "Undefined (noble gases have a stable configuration and hardly gain or lose electrons).",
	enLow: func(value string) string {
		return "Low electronegativity" + value + ". Readily loses electrons and acts as a strong reducing agent."
	},
	enHigh: func(value string) string {
		return "High electronegativity" + value + ". Readily gains electrons and acts as a strong oxidizing agent."
	},
	enMiddle: func(value string) string {
		return "Moderate electronegativity" + value + ". Across a period electronegativity increases from left to right."
	},

	charMetal:     "Metallic: tends to lose electrons. Metallic character decreases across a period and increases down a group.",
	charNobleGas:  "Inert: a saturated, stable electron configuration means it practically does not react.",
	charMetalloid: "Metalloid: properties intermediate between metals and nonmetals.",
	charNonmetal:  "Nonmetallic: tends to gain electrons. Nonmetallic character increases across a period and decreases down a group.",
}

var vietnameseText = trendText{
	radiusPeriodOne:     "Bán kính nguyên tử rất nhỏ do chỉ có 1 lớp electron.",
	radiusGroupOne:      "Bán kính nguyên tử lớn nhất trong chu kỳ do điện tích hạt nhân nhỏ nhất, lực hút electron yếu.",
	radiusGroupEighteen: "Bán kính nguyên tử nhỏ nhất trong chu kỳ do điện tích hạt nhân lớn, hút mạnh lớp vỏ.",
	radiusMiddle: func(period int) string {
		return "Bán kính trung bình. Trong chu kỳ " + strconv.Itoa(period) +
			", bán kính giảm dần từ trái sang phải do điện tích hạt nhân tăng dần, hút e mạnh hơn."
	},

	enNobleGas: "Không xác định (Khí hiếm có cấu hình bền vững, khó nhận hay nhường e).",
	enLow: func(value string) string {
		return "Độ âm điện nhỏ" + value + ". Dễ nhường electron, thể hiện tính khử mạnh."
	},
	enHigh: func(value string) string {
		return "Độ âm điện lớn" + value + ". Dễ nhận electron, thể hiện tính oxi hóa mạnh."
	},
	enMiddle: func(value string) string {
		return "Độ âm điện trung bình" + value + ". Trong chu kỳ, độ âm điện tăng dần từ trái sang phải."
	},

	charMetal:     "Tính kim loại: Xu hướng nhường electron. Tính kim loại giảm dần trong chu kỳ, tăng dần trong nhóm.",
	charNobleGas:  "Tính trơ: Cấu hình electron bão hòa bền vững, thực tế không tham gia phản ứng.",
	charMetalloid: "Á kim: Có tính chất trung gian giữa kim loại và phi kim.",
	charNonmetal:  "Tính phi kim: Xu hướng nhận electron. Tính phi kim tăng dần trong chu kỳ, giảm dần trong nhóm.",
}

// supportedLanguages is ordered by preference; the first entry is the fallback.
var supportedLanguages = []language.Tag{language.English, language.Vietnamese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage picks the closest supported language for a BCP 47 string
// such as "vi", "vi-VN" or "en-GB". Unparseable input falls back to English.
func MatchLanguage(s string) language.Tag {
	_, index, _ := languageMatcher.Match(language.Make(s))
	return supportedLanguages[index]
}

// Describer selects trend text in one language.
type Describer struct {
	lang language.Tag
	text *trendText
}

// NewDescriber returns a Describer for the closest supported language.
func NewDescriber(lang language.Tag) *Describer {
	_, index, _ := languageMatcher.Match(lang)
	tag := supportedLanguages[index]
	text := &englishText
	if tag == language.Vietnamese {
		text = &vietnameseText
	}
	return &Describer{lang: tag, text: text}
}

// Language returns the language the Describer writes in.
func (d *Describer) Language() language.Tag {
	return d.lang
}

var defaultDescriber = NewDescriber(language.English)

// TrendsFor describes atomic radius, electronegativity and metallic
// character of an element in English. It is a pure text selection.
func TrendsFor(z, group, period int, category Category) Trends {
	return defaultDescriber.Describe(z, group, period, category)
}

// Describe selects the three trend texts by period, group and category.
func (d *Describer) Describe(z, group, period int, category Category) Trends {
	return Trends{
		Radius:            d.radius(group, period),
		Electronegativity: d.electronegativity(z, group, category),
		Character:         d.character(group, period, category),
	}
}

func (d *Describer) radius(group, period int) string {
	switch {
	case period == 1:
		return d.text.radiusPeriodOne
	case group == 1:
		return d.text.radiusGroupOne
	case group == 18:
		return d.text.radiusGroupEighteen
	default:
		return d.text.radiusMiddle(period)
	}
}

func (d *Describer) electronegativity(z, group int, category Category) string {
	if category == CategoryNobleGas {
		return d.text.enNobleGas
	}

	value := ""
	if v, ok := Electronegativity(z); ok {
		value = " (" + strconv.FormatFloat(v, 'f', -1, 64) + ")"
	}

	switch {
	case group == 1 || group == 2:
		return d.text.enLow(value)
	case group >= 16:
		return d.text.enHigh(value)
	default:
		return d.text.enMiddle(value)
	}
}

func (d *Describer) character(group, period int, category Category) string {
	switch {
	case category.IsMetal():
		return d.text.charMetal
	case category == CategoryNobleGas:
		return d.text.charNobleGas
	case category == CategoryMetalloid:
		return d.text.charMetalloid
	case category == CategoryNonmetal || category == CategoryHalogen:
		return d.text.charNonmetal
	}

	// Unclassified elements fall back to their position in the table.
	if group <= 12 || (group == 13 && period > 2) {
		return d.text.charMetal
	}
	return d.text.charNonmetal
}
