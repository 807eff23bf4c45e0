package ui

// Board placement on the screen. Row 0 holds the status line and the board
// starts two rows below it.
const (
	BoardLeft = 2
	BoardTop  = 2
	// TileWidth is the number of columns per tile: the glyph and a gap.
	TileWidth = 2
)

// Layout maps between tile coordinates and screen cells.
type Layout struct {
	Rows int
	Cols int
}

// NewLayout returns the layout for a rows x cols board.
func NewLayout(rows, cols int) Layout {
	return Layout{Rows: rows, Cols: cols}
}

// ScreenPos returns the screen cell holding the glyph of tile (x, y).
func (l Layout) ScreenPos(x, y int) (sx, sy int) {
	return BoardLeft + x*TileWidth, BoardTop + y
}

// TileAt returns the tile under screen cell (sx, sy). A click on the gap
// after a glyph belongs to that tile.
func (l Layout) TileAt(sx, sy int) (x, y int, ok bool) {
	if sx < BoardLeft || sy < BoardTop {
		return 0, 0, false
	}
	x = (sx - BoardLeft) / TileWidth
	y = sy - BoardTop
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// Width is the number of screen columns needed to draw the board.
func (l Layout) Width() int {
	return BoardLeft + l.Cols*TileWidth
}

// Height is the number of screen rows needed to draw the board, the notice
// and the help line.
func (l Layout) Height() int {
	return BoardTop + l.Rows + 4
}

// MessageRow is the row of the notice below the board.
func (l Layout) MessageRow() int {
	return BoardTop + l.Rows + 1
}

// HelpRow is the row of the key help.
func (l Layout) HelpRow() int {
	return BoardTop + l.Rows + 3
}
