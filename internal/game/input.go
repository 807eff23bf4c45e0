package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
)

// Action is a player command decoded from a key or mouse event.
type Action int

const (
	// ActionNone means the event is ignored.
	ActionNone Action = iota
	// ActionReveal reveals the tile under the cursor.
	ActionReveal
	// ActionFlag toggles the flag under the cursor.
	ActionFlag
	// ActionReset starts a new game.
	ActionReset
	// ActionQuit exits the loop.
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	default:
		return "unknown"
	}
}

// KeyAction maps a key press to an action. r is only consulted for
// tcell.KeyRune.
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionReveal
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyRune:
		switch r {
		case ' ':
			return ActionReveal
		case 'f', 'F':
			return ActionFlag
		case 'r', 'R':
			return ActionReset
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionMoveUp
		case 'j':
			return ActionMoveDown
		case 'h':
			return ActionMoveLeft
		case 'l':
			return ActionMoveRight
		}
	}
	return ActionNone
}

// MouseAction maps newly pressed buttons to an action. The primary button
// reveals and the secondary button flags.
func MouseAction(pressed tcell.ButtonMask) Action {
	switch {
	case pressed&tcell.Button1 != 0:
		return ActionReveal
	case pressed&tcell.Button2 != 0:
		return ActionFlag
	default:
		return ActionNone
	}
}

// mouseTracker turns the button state reported on every mouse event into
// press edges, so holding a button acts once.
type mouseTracker struct {
	held tcell.ButtonMask
}

// Press records the current button state and returns the buttons that were
// not held on the previous event.
func (m *mouseTracker) Press(buttons tcell.ButtonMask) tcell.ButtonMask {
	buttons &= tcell.Button1 | tcell.Button2 | tcell.Button3
	pressed := buttons &^ m.held
	m.held = buttons
	return pressed
}

// MoveCursor applies a movement action to p, clamped to a rows x cols board.
// Other actions return p unchanged.
func MoveCursor(p board.Point, a Action, rows, cols int) board.Point {
	switch a {
	case ActionMoveUp:
		p.Y--
	case ActionMoveDown:
		p.Y++
	case ActionMoveLeft:
		p.X--
	case ActionMoveRight:
		p.X++
	default:
		return p
	}
	p.X = max(0, min(p.X, cols-1))
	p.Y = max(0, min(p.Y, rows-1))
	return p
}
