package game

// catalog is the fixed list of winning patterns. The first entry is the fallback.
var catalog = []Pattern{
	{ID: ModeComplete, Label: "Complete", Icon: "🟩", Cells: allCells()},
	{
		ID: ModeL, Label: "L", Icon: "🇱",
		// left column + bottom row
		Cells: []Coord{
			{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
			{4, 1}, {4, 2}, {4, 3}, {4, 4},
		},
	},
	{
		ID: ModeU, Label: "U", Icon: "🇺",
		// left column + bottom row + right column
		Cells: []Coord{
			{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
			{4, 1}, {4, 2}, {4, 3},
			{4, 4}, {3, 4}, {2, 4}, {1, 4}, {0, 4},
		},
	},
	{
		ID: ModeO, Label: "O", Icon: "🅾️",
		// border
		Cells: []Coord{
			{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
			{1, 0}, {1, 4},
			{2, 0}, {2, 4},
			{3, 0}, {3, 4},
			{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4},
		},
	},
	{
		ID: ModeX, Label: "X", Icon: "❌",
		// both diagonals, center once
		Cells: []Coord{
			{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4},
			{0, 4}, {1, 3}, {3, 1}, {4, 0},
		},
	},
}

func allCells() []Coord {
	out := make([]Coord, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out = append(out, Coord{r, c})
		}
	}
	return out
}

// Catalog returns every pattern in display order.
func Catalog() []Pattern {
	out := make([]Pattern, len(catalog))
	for i, p := range catalog {
		out[i] = p.clone()
	}
	return out
}

// LookupPattern finds a catalog entry by id.
func LookupPattern(id ModeID) (Pattern, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Pattern{}, false
}

// Contains reports whether (row, col) is one of p's cells.
func (p Pattern) Contains(row, col int) bool {
	for _, c := range p.Cells {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

func (p Pattern) clone() Pattern {
	p.Cells = append([]Coord(nil), p.Cells...)
	return p
}
