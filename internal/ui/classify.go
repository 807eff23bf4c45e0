package ui

import (
	"fmt"
	"time"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/session"
)

// TileKind is what a tile looks like to the player.
type TileKind int

const (
	// KindHidden is an unrevealed, unflagged tile.
	KindHidden TileKind = iota
	// KindFlag is a flagged tile.
	KindFlag
	// KindWrongFlag is a flag on a safe tile, shown once the game is lost.
	KindWrongFlag
	// KindMine is a revealed mine.
	KindMine
	// KindExploded is the mine that lost the game.
	KindExploded
	// KindEmpty is a revealed tile with no adjacent mines.
	KindEmpty
	// KindDigit is a revealed tile with adjacent mines.
	KindDigit
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case KindHidden:
		return "hidden"
	case KindFlag:
		return "flag"
	case KindWrongFlag:
		return "wrong_flag"
	case KindMine:
		return "mine"
	case KindExploded:
		return "exploded"
	case KindEmpty:
		return "empty"
	case KindDigit:
		return "digit"
	default:
		return "unknown"
	}
}

// Classify decides how a tile is drawn. A flag hides whatever is under it
// until the game is lost, when flags on safe tiles are marked wrong.
// exploded is the mine that lost the game, or nil.
func Classify(t board.Tile, lost bool, exploded *board.Point) TileKind {
	if t.IsFlagged {
		if lost && !t.IsMine {
			return KindWrongFlag
		}
		return KindFlag
	}
	if !t.IsRevealed {
		return KindHidden
	}
	if t.IsMine {
		if exploded != nil && *exploded == t.Point() {
			return KindExploded
		}
		return KindMine
	}
	if t.AdjacentMines == 0 {
		return KindEmpty
	}
	return KindDigit
}

// FormatElapsed renders a duration as m:ss, truncating partial seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// StatusLine is the text of the top row.
func StatusLine(remainingFlags int, elapsed time.Duration, state session.State) string {
	return fmt.Sprintf("Mines: %3d   Time: %s   %s", remainingFlags, FormatElapsed(elapsed), stateLabel(state))
}

func stateLabel(state session.State) string {
	switch state {
	case session.StateNotStarted:
		return "Reveal any tile to start"
	case session.StatePlaying:
		return "Playing"
	case session.StateWon:
		return "Cleared!"
	case session.StateLost:
		return "Boom"
	default:
		return ""
	}
}
