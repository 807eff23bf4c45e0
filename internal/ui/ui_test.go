package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/session"
)

func TestClassify(t *testing.T) {
	exploded := &board.Point{X: 1, Y: 1}

	tests := []struct {
		name     string
		tile     board.Tile
		lost     bool
		exploded *board.Point
		want     TileKind
	}{
		{"hidden", board.Tile{}, false, nil, KindHidden},
		{"hidden mine", board.Tile{IsMine: true}, false, nil, KindHidden},
		{"flag", board.Tile{IsFlagged: true}, false, nil, KindFlag},
		{"flag on mine after loss", board.Tile{IsFlagged: true, IsMine: true, IsRevealed: true}, true, exploded, KindFlag},
		{"flag on safe tile after loss", board.Tile{IsFlagged: true, IsRevealed: true}, true, exploded, KindWrongFlag},
		{"flag on safe tile while playing", board.Tile{IsFlagged: true}, false, nil, KindFlag},
		{"revealed mine", board.Tile{X: 0, Y: 0, IsMine: true, IsRevealed: true}, true, exploded, KindMine},
		{"exploded mine", board.Tile{X: 1, Y: 1, IsMine: true, IsRevealed: true}, true, exploded, KindExploded},
		{"empty", board.Tile{IsRevealed: true}, false, nil, KindEmpty},
		{"digit", board.Tile{IsRevealed: true, AdjacentMines: 3}, false, nil, KindDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tile, tt.lost, tt.exploded))
		})
	}
}

func TestTileKindString(t *testing.T) {
	assert.Equal(t, "wrong_flag", KindWrongFlag.String())
	assert.Equal(t, "digit", KindDigit.String())
	assert.Equal(t, "unknown", TileKind(99).String())
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{time.Second, "0:01"},
		{65 * time.Second, "1:05"},
		{10 * time.Minute, "10:00"},
		{61*time.Minute + 1500*time.Millisecond, "61:01"},
		{-time.Second, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.in))
		})
	}
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Mines:  10   Time: 0:00   Reveal any tile to start",
		StatusLine(10, 0, session.StateNotStarted))
	assert.Equal(t, "Mines:  -2   Time: 1:05   Playing",
		StatusLine(-2, 65*time.Second, session.StatePlaying))
	assert.Contains(t, StatusLine(0, 0, session.StateLost), "Boom")
}

func TestLayoutRoundTrip(t *testing.T) {
	l := NewLayout(9, 16)

	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			sx, sy := l.ScreenPos(x, y)

			gx, gy, ok := l.TileAt(sx, sy)
			assert.True(t, ok)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)

			gx, gy, ok = l.TileAt(sx+1, sy)
			assert.True(t, ok, "gap column belongs to the tile on its left")
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}

func TestLayoutTileAtOutside(t *testing.T) {
	l := NewLayout(8, 8)

	tests := []struct {
		name   string
		sx, sy int
	}{
		{"status line", BoardLeft, 0},
		{"left margin", BoardLeft - 1, BoardTop},
		{"right of board", BoardLeft + 8*TileWidth, BoardTop},
		{"below board", BoardLeft, BoardTop + 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := l.TileAt(tt.sx, tt.sy)
			assert.False(t, ok)
		})
	}
}

func TestLayoutRows(t *testing.T) {
	l := NewLayout(8, 8)

	assert.Equal(t, BoardTop+8*1+1, l.MessageRow())
	assert.Greater(t, l.HelpRow(), l.MessageRow())
	assert.Greater(t, l.Height(), l.HelpRow())
	assert.Equal(t, BoardLeft+16, l.Width())
}
