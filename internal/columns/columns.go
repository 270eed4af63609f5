// internal/columns/columns.go
//
// Static B/I/N/G/O column lookup.
// The five columns partition 1..75 into contiguous ranges of 15 numbers.

package columns

// Column is one of the five fixed number ranges of a bingo card.
type Column struct {
	Letter string
	Start  int
	End    int
	Color  string
}

// Neutral is returned when a number or index does not map to a column.
const Neutral = "#888"

var all = [5]Column{
	{Letter: "B", Start: 1, End: 15, Color: "#e74c3c"},
	{Letter: "I", Start: 16, End: 30, Color: "#f39c12"},
	{Letter: "N", Start: 31, End: 45, Color: "#2ecc71"},
	{Letter: "G", Start: 46, End: 60, Color: "#3498db"},
	{Letter: "O", Start: 61, End: 75, Color: "#9b59b6"},
}

// All returns the five columns in card order.
func All() []Column {
	out := make([]Column, len(all))
	copy(out, all[:])
	return out
}

// At returns the column at index i (0..4).
func At(i int) (Column, bool) {
	if i < 0 || i >= len(all) {
		return Column{}, false
	}
	return all[i], true
}

// LetterFor returns the column letter for n.
// Callers supply n in 1..75; anything above 60 reports "O".
func LetterFor(n int) string {
	switch {
	case n <= 15:
		return "B"
	case n <= 30:
		return "I"
	case n <= 45:
		return "N"
	case n <= 60:
		return "G"
	}
	return "O"
}

// ColorFor returns the color of the column owning n, or Neutral.
func ColorFor(n int) string {
	for _, c := range all {
		if n >= c.Start && n <= c.End {
			return c.Color
		}
	}
	return Neutral
}

// ColorForColumnIndex returns the color of column i, or Neutral outside 0..4.
func ColorForColumnIndex(i int) string {
	if c, ok := At(i); ok {
		return c.Color
	}
	return Neutral
}
