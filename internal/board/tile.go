// Package board provides minefield construction, mine placement and reveal
// propagation. Everything here is deterministic given its random source and
// holds no state outside the Board value itself.
package board

import "fmt"

// Point is a grid coordinate. X is the column, Y the row, both 0-based.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a single grid cell.
//
// AdjacentMines is only meaningful when IsMine is false. A tile can only be
// flagged while it is hidden.
type Tile struct {
	X, Y          int
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int
}

// Point returns the tile's coordinates.
func (t Tile) Point() Point {
	return Point{X: t.X, Y: t.Y}
}

// Rune returns the tile's debug character: '#' hidden, 'F' flagged,
// '*' revealed mine, '.' revealed empty, or the adjacency digit.
func (t Tile) Rune() rune {
	switch {
	case t.IsFlagged && !t.IsRevealed:
		return 'F'
	case !t.IsRevealed:
		return '#'
	case t.IsMine:
		return '*'
	case t.AdjacentMines == 0:
		return '.'
	default:
		return rune('0' + t.AdjacentMines)
	}
}
