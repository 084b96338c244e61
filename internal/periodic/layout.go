package periodic

// Grid dimensions of the standard 18-column layout.
const (
	GridColumns = 18
	// GridMainRows is the number of period rows (1-7).
	GridMainRows = 7
)

// Grid is the periodic table layout. Main[row][col] holds the atomic number
// at period row+1, group column col+1, or 0 for an empty cell. Lanthanides
// and Actinides are the two detached f-block rows.
type Grid struct {
	Main        [GridMainRows][GridColumns]int
	Lanthanides []int
	Actinides   []int
}

// Lanthanide and actinide rows start right after the element that stays in
// the main grid (La at 57, Ac at 89).
const (
	firstDetachedLanthanide = 58
	firstDetachedActinide   = 90
	detachedRowLength       = 14
)

// Layout builds the periodic table grid.
func Layout() Grid {
	var g Grid

	g.Main[0][0] = 1
	g.Main[0][17] = 2

	// Periods 2 and 3: s-block then p-block.
	for row, start := range []int{3, 11} {
		g.Main[row+1][0] = start
		g.Main[row+1][1] = start + 1
		for col := 12; col < GridColumns; col++ {
			g.Main[row+1][col] = start + 2 + (col - 12)
		}
	}

	// Periods 4 and 5 are contiguous.
	for row, start := range []int{19, 37} {
		for col := 0; col < GridColumns; col++ {
			g.Main[row+3][col] = start + col
		}
	}

	// Periods 6 and 7 jump over the detached f-block after group 3.
	for row, start := range []int{55, 87} {
		for col := 0; col < 3; col++ {
			g.Main[row+5][col] = start + col
		}
		for col := 3; col < GridColumns; col++ {
			g.Main[row+5][col] = start + 14 + col
		}
	}

	g.Lanthanides = detachedRow(firstDetachedLanthanide)
	g.Actinides = detachedRow(firstDetachedActinide)
	return g
}

func detachedRow(first int) []int {
	row := make([]int, detachedRowLength)
	for i := range row {
		row[i] = first + i
	}
	return row
}

// Cell returns the atomic number at a 1-based period row and group column.
// ok is false for empty or out-of-range cells.
func (g Grid) Cell(period, group int) (z int, ok bool) {
	if period < 1 || period > GridMainRows || group < 1 || group > GridColumns {
		return 0, false
	}
	z = g.Main[period-1][group-1]
	return z, z != 0
}
