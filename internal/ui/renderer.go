package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/session"
	"github.com/samdwyer/minesweeper/internal/theme"
)

// HelpText lists the key bindings under the board.
const HelpText = "click/space reveal  right-click/f flag  arrows/hjkl move  r new game  q quit"

// View is a snapshot of everything drawn in one frame.
type View struct {
	Board          *board.Board
	State          session.State
	RemainingFlags int
	Elapsed        time.Duration
	Exploded       *board.Point
	Cursor         board.Point
	// Notice is shown below the board once the game ends.
	Notice *session.Notice
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *theme.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, th *theme.Theme) *Renderer {
	return &Renderer{screen: screen, theme: th}
}

// Render draws the status line, the board, the notice and the help line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	layout := NewLayout(v.Board.Rows, v.Board.Cols)
	width, height := r.screen.Size()
	if width < layout.Width() || height < layout.Height() {
		r.drawText(0, 0, "Terminal too small, please resize", r.theme.Accent)
		r.screen.Show()
		return
	}

	r.drawText(0, 0, StatusLine(v.RemainingFlags, v.Elapsed, v.State), r.theme.Text)

	lost := v.State == session.StateLost
	for y := 0; y < v.Board.Rows; y++ {
		for x := 0; x < v.Board.Cols; x++ {
			tile := *v.Board.Tile(x, y)
			cell := r.cell(tile, Classify(tile, lost, v.Exploded))
			if !v.State.Terminal() && v.Cursor == tile.Point() {
				cell.Style = cell.Style.Background(r.theme.Cursor)
			}

			sx, sy := layout.ScreenPos(x, y)
			r.screen.SetContent(sx, sy, cell.Glyph, cell.Style)
		}
	}

	if v.Notice != nil {
		r.RenderMessage(v.Notice.Title+" "+v.Notice.Message, layout.MessageRow())
	}
	r.drawText(0, layout.HelpRow(), HelpText, r.theme.Text)

	r.screen.Show()
}

// cell returns the themed glyph for a tile of the given kind.
func (r *Renderer) cell(t board.Tile, kind TileKind) theme.Cell {
	switch kind {
	case KindFlag:
		return r.theme.Flag
	case KindWrongFlag:
		return r.theme.WrongFlag
	case KindMine:
		return r.theme.Mine
	case KindExploded:
		return r.theme.Exploded
	case KindEmpty:
		return r.theme.Empty
	case KindDigit:
		return r.theme.Digit(t.AdjacentMines)
	default:
		return r.theme.Hidden
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, r.theme.Accent.Bold(true))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
