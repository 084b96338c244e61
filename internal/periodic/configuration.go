package periodic

import (
	"strconv"
	"strings"
)

// Subshell is one entry of the Aufbau fill order.
type Subshell struct {
	N        int
	Letter   byte
	Capacity int
}

// String returns the subshell label, e.g. "3d".
func (s Subshell) String() string {
	return strconv.Itoa(s.N) + string(s.Letter)
}

// fillOrder is the approximate Aufbau order from 1s through 7p.
var fillOrder = []Subshell{
	{1, 's', 2},
	{2, 's', 2}, {2, 'p', 6},
	{3, 's', 2}, {3, 'p', 6},
	{4, 's', 2}, {3, 'd', 10}, {4, 'p', 6},
	{5, 's', 2}, {4, 'd', 10}, {5, 'p', 6},
	{6, 's', 2}, {4, 'f', 14}, {5, 'd', 10}, {6, 'p', 6},
	{7, 's', 2}, {5, 'f', 14}, {6, 'd', 10}, {7, 'p', 6},
}

// nobleCore is a noble gas used as a configuration prefix together with the
// position in fillOrder right after its own configuration.
type nobleCore struct {
	z      int
	symbol string
	next   int
}

// nobleCores is ordered by atomic number.
var nobleCores = []nobleCore{
	{z: 2, symbol: "He", next: 1},
	{z: 10, symbol: "Ne", next: 3},
	{z: 18, symbol: "Ar", next: 5},
	{z: 36, symbol: "Kr", next: 8},
	{z: 54, symbol: "Xe", next: 11},
	{z: 86, symbol: "Rn", next: 15},
}

// configExceptions are configurations that break the Aufbau order.
var configExceptions = map[int]string{
	24: "[Ar] 3d⁵ 4s¹",
	29: "[Ar] 3d¹⁰ 4s¹",
	41: "[Kr] 4d⁴ 5s¹",
	42: "[Kr] 4d⁵ 5s¹",
	44: "[Kr] 4d⁷ 5s¹",
	45: "[Kr] 4d⁸ 5s¹",
	46: "[Kr] 4d¹⁰",
	47: "[Kr] 4d¹⁰ 5s¹",
	78: "[Xe] 4f¹⁴ 5d⁹ 6s¹",
	79: "[Xe] 4f¹⁴ 5d¹⁰ 6s¹",
}

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// Superscript renders a non-negative integer with Unicode superscript digits.
func Superscript(n int) string {
	digits := strconv.Itoa(n)
	var sb strings.Builder
	for i := 0; i < len(digits); i++ {
		if digits[i] == '-' {
			sb.WriteString("⁻")
			continue
		}
		sb.WriteString(superscriptDigits[digits[i]-'0'])
	}
	return sb.String()
}

// ConfigFor returns the noble-gas abbreviated electron configuration of z,
// for example "[Ne] 3s² 3p⁴".
//
// Known anomalies are returned verbatim. Otherwise the largest noble gas
// strictly below z becomes the bracketed core and the remaining electrons
// are walked through the fixed fill order. Past 7p the walk stops, so
// atomic numbers above 118 are undercounted.
func ConfigFor(z int) string {
	if cfg, ok := configExceptions[z]; ok {
		return cfg
	}

	remaining := z
	start := 0
	var tokens []string

	for i := len(nobleCores) - 1; i >= 0; i-- {
		core := nobleCores[i]
		if z > core.z {
			tokens = append(tokens, "["+core.symbol+"]")
			remaining -= core.z
			start = core.next
			break
		}
	}

	for _, sub := range fillOrder[start:] {
		if remaining <= 0 {
			break
		}
		take := min(remaining, sub.Capacity)
		tokens = append(tokens, sub.String()+Superscript(take))
		remaining -= take
	}

	return strings.TrimSpace(strings.Join(tokens, " "))
}
