package session

import "time"

// Notice is an end-of-game message for the player.
type Notice struct {
	Outcome State
	Title   string
	Message string
}

var (
	// WinNotice is sent when the last safe tile is revealed.
	WinNotice = Notice{Outcome: StateWon, Title: "You Win!", Message: "You found all the mines!"}
	// LossNotice is sent when a mine is revealed.
	LossNotice = Notice{Outcome: StateLost, Title: "Game Over", Message: "You hit a mine!"}
)

// Listener receives the session's outputs for the presentation layer.
//
// Notify and Haptic are called synchronously from Reveal and Flag. Tick is
// called from the timer goroutine.
type Listener interface {
	Tick(elapsed time.Duration)
	Notify(n Notice)
	Haptic()
}

type nopListener struct{}

func (nopListener) Tick(time.Duration) {}
func (nopListener) Notify(Notice)      {}
func (nopListener) Haptic()            {}
