// internal/game/types.go
//
// Core type definitions for the bingo engine.
// Defines:
//   - Number: a ball value in 1..75.
//   - Cell/Grid: a 5x5 card face where any cell may be the FREE sentinel.
//   - Card: a named grid in the registry.
//   - Coord/Pattern/ModeID: winning pattern descriptions.

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Number is a called ball value. Valid values are 1..75; callers own range checks.
type Number int

// Size is the row and column count of every card.
const Size = 5

// Cell is a single grid value: a Number, or Free.
// Free encodes as JSON null.
type Cell int

// Free is the sentinel cell that satisfies every pattern.
// In Go code Cell(0) is Free; in JSON only null is, and a literal 0 is rejected.
const Free Cell = 0

// IsFree reports whether c is the FREE sentinel.
func (c Cell) IsFree() bool { return c == Free }

// Number returns the number held in c. Meaningless when c is Free.
func (c Cell) Number() Number { return Number(c) }

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsFree() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Free
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n == 0 {
		return errors.New("cell 0 is not a number; FREE is null")
	}
	*c = Cell(n)
	return nil
}

// Grid is a card face indexed [row][col]. The fixed array keeps every grid 5x5.
type Grid [Size][Size]Cell

// UnmarshalJSON rejects any shape other than 5 rows of 5 cells.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	if len(rows) != Size {
		return fmt.Errorf("grid has %d rows, want %d", len(rows), Size)
	}
	var out Grid
	for r, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("grid row %d has %d cells, want %d", r, len(row), Size)
		}
		copy(out[r][:], row)
	}
	*g = out
	return nil
}

// Card is a named grid held by the registry.
type Card struct {
	ID   string `json:"id"`   // stable across updates
	Name string `json:"name"` // mutable
	Grid Grid   `json:"grid"`
}

// Coord addresses a grid cell.
type Coord struct {
	Row int
	Col int
}

// ModeID names a winning pattern in the catalog.
type ModeID string

const (
	ModeComplete ModeID = "complete"
	ModeL        ModeID = "L"
	ModeU        ModeID = "U"
	ModeO        ModeID = "O"
	ModeX        ModeID = "X"
)

// Pattern is a named set of cells that must all be satisfied for a card to win.
type Pattern struct {
	ID    ModeID
	Label string
	Icon  string
	Cells []Coord
}
