// internal/game/grid.go
//
// Grid construction helpers: random cards and normalization of scanned cards.

package game

import (
	"math/rand/v2"

	"github.com/robalobadob/bingo/internal/columns"
)

// center is the conventional FREE cell.
var center = Coord{Row: 2, Col: 2}

// GenerateRandomGrid draws five distinct numbers per column from that column's
// range (full Fisher–Yates shuffle, keep the first five) and frees the center.
func GenerateRandomGrid() Grid {
	var g Grid
	for col, c := range columns.All() {
		pool := make([]int, 0, c.End-c.Start+1)
		for n := c.Start; n <= c.End; n++ {
			pool = append(pool, n)
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for row := 0; row < Size; row++ {
			g[row][col] = Cell(pool[row])
		}
	}
	g[center.Row][center.Col] = Free
	return g
}

// NormalizeScannedGrid turns a raw matrix read from a card photo into a Grid.
// Values in 1..75 are kept; anything else, and any missing cell, becomes Free.
// The center is always Free.
func NormalizeScannedGrid(rows [][]int) Grid {
	var g Grid
	for r := 0; r < Size && r < len(rows); r++ {
		for c := 0; c < Size && c < len(rows[r]); c++ {
			if v := rows[r][c]; v >= 1 && v <= 75 {
				g[r][c] = Cell(v)
			}
		}
	}
	g[center.Row][center.Col] = Free
	return g
}
