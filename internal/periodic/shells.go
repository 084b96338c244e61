package periodic

// shellExceptions lists atomic numbers whose shell occupancy disagrees with
// the band rule. Values are returned as copies.
var shellExceptions = map[int][]int{
	24: {2, 8, 13, 1},         // Cr
	29: {2, 8, 18, 1},         // Cu
	42: {2, 8, 18, 13, 1},     // Mo
	46: {2, 8, 18, 18},        // Pd
	47: {2, 8, 18, 18, 1},     // Ag
	79: {2, 8, 18, 32, 18, 1}, // Au
}

// shellBand fills atomic numbers up to and including max.
// The last entry of base is grown by z-offset when grow is the index of that
// entry; otherwise z-offset is appended as the outermost shell.
type shellBand struct {
	max    int
	base   []int
	grow   int // index of the shell that absorbs z-offset, -1 to append
	offset int
}

// shellBands is ordered by max. The final band has no upper bound, so
// everything past mercury lands in a single sixth shell.
var shellBands = []shellBand{
	{max: 2, base: nil, grow: -1, offset: 0},
	{max: 10, base: []int{2}, grow: -1, offset: 2},
	{max: 18, base: []int{2, 8}, grow: -1, offset: 10},
	{max: 20, base: []int{2, 8, 8}, grow: -1, offset: 18},
	{max: 30, base: []int{2, 8, 8, 2}, grow: 2, offset: 20},
	{max: 36, base: []int{2, 8, 18}, grow: -1, offset: 28},
	{max: 38, base: []int{2, 8, 18, 8}, grow: -1, offset: 36},
	{max: 48, base: []int{2, 8, 18, 8, 2}, grow: 3, offset: 38},
	{max: 54, base: []int{2, 8, 18, 18}, grow: -1, offset: 46},
	{max: 56, base: []int{2, 8, 18, 18, 8}, grow: -1, offset: 54},
	{max: 70, base: []int{2, 8, 18, 18, 8, 2}, grow: 3, offset: 56},
	{max: 80, base: []int{2, 8, 18, 32, 8, 2}, grow: 4, offset: 70},
	{max: 0, base: []int{2, 8, 18, 32, 18}, grow: -1, offset: 78},
}

// ShellsFor returns the electron count of each occupied shell, innermost
// first. The counts always sum to z and the last one is at least 1 for any
// z >= 1. Non-positive z yields an empty slice.
//
// Atomic numbers in the exception table get their literal sequence; all
// others follow a fixed band rule that does not model subshell order.
func ShellsFor(z int) []int {
	if z <= 0 {
		return []int{}
	}
	if shells, ok := shellExceptions[z]; ok {
		return append([]int(nil), shells...)
	}

	band := shellBands[len(shellBands)-1]
	for _, b := range shellBands[:len(shellBands)-1] {
		if z <= b.max {
			band = b
			break
		}
	}

	shells := make([]int, len(band.base), len(band.base)+1)
	copy(shells, band.base)
	if band.grow < 0 {
		return append(shells, z-band.offset)
	}
	shells[band.grow] += z - band.offset
	return shells
}

// ValenceElectrons returns the outermost shell count for z, or 0 when z has
// no occupied shell.
func ValenceElectrons(z int) int {
	shells := ShellsFor(z)
	if len(shells) == 0 {
		return 0
	}
	return shells[len(shells)-1]
}
