package board

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSize is returned when a board would have no rows or columns.
	ErrInvalidSize = errors.New("board: rows and columns must be positive")
	// ErrInvalidMineCount is returned for a negative mine count.
	ErrInvalidMineCount = errors.New("board: mine count must not be negative")
	// ErrTooManyMines is returned when the mines cannot fit outside the safe zone.
	ErrTooManyMines = errors.New("board: not enough free tiles for mines")
	// ErrOutOfBounds is returned for coordinates that lie off the grid.
	ErrOutOfBounds = errors.New("board: coordinates out of bounds")
)

// neighborOffsets lists the king-move offsets in the fixed order used by
// both mine counting and flood fill.
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a Rows x Cols grid of tiles addressed Tiles[y][x].
type Board struct {
	Rows  int
	Cols  int
	Tiles [][]Tile
}

// NewEmpty creates a board with no mines where every tile is hidden,
// unflagged and has a zero adjacency count.
func NewEmpty(rows, cols int) *Board {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
		for x := range tiles[y] {
			tiles[y][x] = Tile{X: x, Y: y}
		}
	}

	return &Board{
		Rows:  rows,
		Cols:  cols,
		Tiles: tiles,
	}
}

// InBounds returns true if (x, y) lies on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Tile returns the tile at (x, y). The coordinates must be in bounds.
func (b *Board) Tile(x, y int) *Tile {
	return &b.Tiles[y][x]
}

// Neighbors returns the up to 8 in-bounds tiles adjacent to (x, y),
// excluding (x, y) itself. The order is fixed for a given coordinate.
func (b *Board) Neighbors(x, y int) []*Tile {
	neighbors := make([]*Tile, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d.X, y+d.Y
		if b.InBounds(nx, ny) {
			neighbors = append(neighbors, &b.Tiles[ny][nx])
		}
	}
	return neighbors
}

// SafeZone returns (x, y) and its in-bounds neighbours.
func (b *Board) SafeZone(x, y int) []Point {
	zone := []Point{{X: x, Y: y}}
	for _, n := range b.Neighbors(x, y) {
		zone = append(zone, n.Point())
	}
	return zone
}

// ToggleFlag flips the flag on a hidden tile. ok is false, and nothing
// changes, when the tile is already revealed.
func (b *Board) ToggleFlag(x, y int) (flagged, ok bool) {
	t := b.Tile(x, y)
	if t.IsRevealed {
		return t.IsFlagged, false
	}
	t.IsFlagged = !t.IsFlagged
	return t.IsFlagged, true
}

// Mines returns the number of mine tiles.
func (b *Board) Mines() int {
	return b.count(func(t *Tile) bool { return t.IsMine })
}

// Flags returns the number of flagged tiles.
func (b *Board) Flags() int {
	return b.count(func(t *Tile) bool { return t.IsFlagged })
}

// Revealed returns the number of revealed tiles.
func (b *Board) Revealed() int {
	return b.count(func(t *Tile) bool { return t.IsRevealed })
}

func (b *Board) count(match func(t *Tile) bool) int {
	n := 0
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			if match(&b.Tiles[y][x]) {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([][]Tile, len(b.Tiles))
	for y := range b.Tiles {
		tiles[y] = make([]Tile, len(b.Tiles[y]))
		copy(tiles[y], b.Tiles[y])
	}
	return &Board{Rows: b.Rows, Cols: b.Cols, Tiles: tiles}
}

// String renders the board one row per line using Tile.Rune.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			sb.WriteRune(b.Tiles[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// computeAdjacency sets AdjacentMines on every non-mine tile.
func (b *Board) computeAdjacency() {
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			t := &b.Tiles[y][x]
			if t.IsMine {
				continue
			}
			count := 0
			for _, n := range b.Neighbors(x, y) {
				if n.IsMine {
					count++
				}
			}
			t.AdjacentMines = count
		}
	}
}
