// Package session owns a single game of Minesweeper: the live board, the
// stopwatch and the flag budget, and the rules for how player actions change
// them.
package session

// State represents where a session is in its lifecycle.
type State int

const (
	// StateNotStarted means the board is empty and waiting for the first reveal.
	StateNotStarted State = iota
	// StatePlaying means mines are placed and the clock is running.
	StatePlaying
	// StateWon means every safe tile has been revealed.
	StateWon
	// StateLost means a mine was revealed.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
