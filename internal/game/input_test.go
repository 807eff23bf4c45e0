package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/minesweeper/internal/board"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"escape", tcell.KeyEscape, 0, ActionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, ActionQuit},
		{"q", tcell.KeyRune, 'q', ActionQuit},
		{"enter", tcell.KeyEnter, 0, ActionReveal},
		{"space", tcell.KeyRune, ' ', ActionReveal},
		{"f", tcell.KeyRune, 'f', ActionFlag},
		{"F", tcell.KeyRune, 'F', ActionFlag},
		{"r", tcell.KeyRune, 'r', ActionReset},
		{"up", tcell.KeyUp, 0, ActionMoveUp},
		{"down", tcell.KeyDown, 0, ActionMoveDown},
		{"left", tcell.KeyLeft, 0, ActionMoveLeft},
		{"right", tcell.KeyRight, 0, ActionMoveRight},
		{"k", tcell.KeyRune, 'k', ActionMoveUp},
		{"j", tcell.KeyRune, 'j', ActionMoveDown},
		{"h", tcell.KeyRune, 'h', ActionMoveLeft},
		{"l", tcell.KeyRune, 'l', ActionMoveRight},
		{"unbound rune", tcell.KeyRune, 'z', ActionNone},
		{"unbound key", tcell.KeyTab, 0, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyAction(tt.key, tt.r))
		})
	}
}

func TestMouseAction(t *testing.T) {
	assert.Equal(t, ActionReveal, MouseAction(tcell.Button1))
	assert.Equal(t, ActionFlag, MouseAction(tcell.Button2))
	assert.Equal(t, ActionReveal, MouseAction(tcell.Button1|tcell.Button2))
	assert.Equal(t, ActionNone, MouseAction(tcell.Button3))
	assert.Equal(t, ActionNone, MouseAction(tcell.ButtonNone))
}

func TestMouseTrackerReportsPressOnce(t *testing.T) {
	var m mouseTracker

	assert.Equal(t, tcell.Button1, m.Press(tcell.Button1))
	assert.Equal(t, tcell.ButtonNone, m.Press(tcell.Button1), "held button is not a new press")
	assert.Equal(t, tcell.Button2, m.Press(tcell.Button1|tcell.Button2))
	assert.Equal(t, tcell.ButtonNone, m.Press(tcell.ButtonNone))
	assert.Equal(t, tcell.Button1, m.Press(tcell.Button1), "press after release counts again")
}

func TestMouseTrackerIgnoresWheel(t *testing.T) {
	var m mouseTracker

	assert.Equal(t, tcell.ButtonNone, m.Press(tcell.WheelUp))
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name string
		from board.Point
		a    Action
		want board.Point
	}{
		{"up", board.Point{X: 2, Y: 2}, ActionMoveUp, board.Point{X: 2, Y: 1}},
		{"down", board.Point{X: 2, Y: 2}, ActionMoveDown, board.Point{X: 2, Y: 3}},
		{"left", board.Point{X: 2, Y: 2}, ActionMoveLeft, board.Point{X: 1, Y: 2}},
		{"right", board.Point{X: 2, Y: 2}, ActionMoveRight, board.Point{X: 3, Y: 2}},
		{"clamp top", board.Point{X: 0, Y: 0}, ActionMoveUp, board.Point{X: 0, Y: 0}},
		{"clamp left", board.Point{X: 0, Y: 0}, ActionMoveLeft, board.Point{X: 0, Y: 0}},
		{"clamp bottom", board.Point{X: 4, Y: 3}, ActionMoveDown, board.Point{X: 4, Y: 3}},
		{"clamp right", board.Point{X: 4, Y: 3}, ActionMoveRight, board.Point{X: 4, Y: 3}},
		{"not a move", board.Point{X: 1, Y: 1}, ActionFlag, board.Point{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoveCursor(tt.from, tt.a, 4, 5))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "reveal", ActionReveal.String())
	assert.Equal(t, "move_right", ActionMoveRight.String())
	assert.Equal(t, "unknown", Action(99).String())
}
