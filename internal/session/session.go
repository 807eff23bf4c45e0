package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/timer"
)

// Params are the board dimensions and mine count of a session.
type Params struct {
	Rows  int
	Cols  int
	Mines int
}

// Validate checks that a board with these parameters can exist and leaves
// at least one tile free for the first click. Whether the mines also fit
// around a particular first click is checked when the board is generated.
func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", board.ErrInvalidSize, p.Rows, p.Cols)
	}
	if p.Mines < 0 {
		return fmt.Errorf("%w: %d", board.ErrInvalidMineCount, p.Mines)
	}
	if p.Mines >= p.Rows*p.Cols {
		return fmt.Errorf("%w: %d mines on %d tiles", board.ErrTooManyMines, p.Mines, p.Rows*p.Cols)
	}
	return nil
}

// Generator builds the populated board for a session, keeping origin safe.
type Generator func(ctx context.Context, p Params, origin board.Point) (*board.Board, error)

// RandomGenerator places mines with board.Generate using rng.
func RandomGenerator(rng *rand.Rand) Generator {
	return func(ctx context.Context, p Params, origin board.Point) (*board.Board, error) {
		return board.Generate(ctx, p.Rows, p.Cols, p.Mines, &origin, rng)
	}
}

// FixedGenerator always places mines at exactly the given points, ignoring
// the origin and the mine count.
func FixedGenerator(mines ...board.Point) Generator {
	return func(_ context.Context, p Params, _ board.Point) (*board.Board, error) {
		return board.FromMines(p.Rows, p.Cols, mines)
	}
}

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets how the board is populated on the first reveal.
func WithGenerator(g Generator) Option {
	return func(s *Session) {
		s.generate = g
	}
}

// WithRand populates boards from rng.
func WithRand(rng *rand.Rand) Option {
	return WithGenerator(RandomGenerator(rng))
}

// WithListener sets the receiver of ticks, notices and haptic requests.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// WithLogger sets the session logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTimer sets the stopwatch used for the elapsed time.
func WithTimer(t *timer.Timer) Option {
	return func(s *Session) {
		s.clock = t
	}
}

// Session holds the state of one game and applies player actions to it.
// It is not safe for concurrent use; all calls belong on the event loop.
type Session struct {
	params   Params
	generate Generator
	listener Listener
	logger   logrus.FieldLogger
	clock    *timer.Timer

	id              uuid.UUID
	board           *board.Board
	state           State
	firstClickTaken bool
	remainingFlags  int
	exploded        *board.Point
}

// New creates a session waiting for its first reveal.
func New(params Params, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		params:   params,
		generate: RandomGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
		listener: nopListener{},
		logger:   discard,
		clock:    timer.New(timer.DefaultInterval),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Reset()
	return s, nil
}

// Reveal opens the tile at (x, y).
//
// The first reveal of a game places the mines around a safe zone at (x, y)
// and starts the clock. Revealing a mine loses the game and exposes the whole
// board; revealing an empty tile opens its region; revealing the last safe
// tile wins. Reveals after the game is over, and reveals of revealed or
// flagged tiles, do nothing.
func (s *Session) Reveal(ctx context.Context, x, y int) error {
	if s.GameOver() {
		return nil
	}
	if !s.board.InBounds(x, y) {
		return s.outOfBounds(x, y)
	}

	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.reveal")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("tile.x", x),
		attribute.Int("tile.y", y),
		attribute.Bool("session.first_click", !s.firstClickTaken),
	)

	if !s.firstClickTaken {
		if s.board.Tile(x, y).IsFlagged {
			return nil
		}
		if err := s.populate(ctx, x, y); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	tile := s.board.Tile(x, y)
	if tile.IsRevealed || tile.IsFlagged {
		span.SetAttributes(attribute.Bool("reveal.noop", true))
		return nil
	}

	if tile.IsMine {
		s.lose(tile.Point())
		span.SetAttributes(attribute.String("session.state", s.state.String()))
		return nil
	}

	revealed := 1
	if tile.AdjacentMines == 0 {
		revealed = s.board.RevealFloodFill(x, y)
	} else {
		tile.IsRevealed = true
	}

	s.log().WithFields(logrus.Fields{
		"x":        x,
		"y":        y,
		"revealed": revealed,
	}).Debug("revealed tiles")

	if s.board.CheckWin() {
		s.win()
	}

	span.SetAttributes(
		attribute.Int("reveal.count", revealed),
		attribute.String("session.state", s.state.String()),
	)
	return nil
}

// Flag toggles the flag on a hidden tile and asks for a haptic pulse.
// Revealed tiles and finished games are left alone. The remaining flag count
// is a display budget only and may go negative.
func (s *Session) Flag(x, y int) error {
	if s.GameOver() {
		return nil
	}
	if !s.board.InBounds(x, y) {
		return s.outOfBounds(x, y)
	}

	flagged, ok := s.board.ToggleFlag(x, y)
	if !ok {
		return nil
	}
	if flagged {
		s.remainingFlags--
	} else {
		s.remainingFlags++
	}

	s.log().WithFields(logrus.Fields{
		"x":         x,
		"y":         y,
		"flagged":   flagged,
		"remaining": s.remainingFlags,
	}).Debug("toggled flag")

	s.listener.Haptic()
	return nil
}

// Reset discards the current game and starts a new one with an empty board.
func (s *Session) Reset() {
	s.clock.Reset()

	s.id = uuid.New()
	s.board = board.NewEmpty(s.params.Rows, s.params.Cols)
	s.state = StateNotStarted
	s.firstClickTaken = false
	s.remainingFlags = s.params.Mines
	s.exploded = nil

	s.log().WithFields(logrus.Fields{
		"rows":  s.params.Rows,
		"cols":  s.params.Cols,
		"mines": s.params.Mines,
	}).Info("new game")
}

// Close stops the clock. The session must not be used afterwards.
func (s *Session) Close() {
	s.clock.Pause()
}

// Board returns a copy of the current board for rendering.
func (s *Session) Board() *board.Board {
	return s.board.Clone()
}

// Params returns the session parameters.
func (s *Session) Params() Params {
	return s.params
}

// ID identifies the current game. It changes on every Reset.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// GameOver returns true once the game is won or lost.
func (s *Session) GameOver() bool {
	return s.state.Terminal()
}

// FirstClickTaken returns true once mines have been placed.
func (s *Session) FirstClickTaken() bool {
	return s.firstClickTaken
}

// RemainingFlags returns the mine count minus the flags placed.
func (s *Session) RemainingFlags() int {
	return s.remainingFlags
}

// Elapsed returns the time spent playing the current game.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Exploded returns the mine that lost the game, if any.
func (s *Session) Exploded() (board.Point, bool) {
	if s.exploded == nil {
		return board.Point{}, false
	}
	return *s.exploded, true
}

func (s *Session) populate(ctx context.Context, x, y int) error {
	b, err := s.generate(ctx, s.params, board.Point{X: x, Y: y})
	if err != nil {
		return fmt.Errorf("generate board: %w", err)
	}

	// Flags placed before the first click carry over to the real board.
	for yy := range s.board.Tiles {
		for xx := range s.board.Tiles[yy] {
			if s.board.Tiles[yy][xx].IsFlagged {
				b.Tiles[yy][xx].IsFlagged = true
			}
		}
	}

	s.board = b
	s.firstClickTaken = true
	s.state = StatePlaying

	s.clock.Reset()
	s.clock.Start(s.listener.Tick)

	s.log().WithFields(logrus.Fields{
		"x":     x,
		"y":     y,
		"mines": b.Mines(),
	}).Info("board generated")
	return nil
}

func (s *Session) lose(at board.Point) {
	s.board.Tile(at.X, at.Y).IsRevealed = true
	s.exploded = &at
	s.board.RevealAll()
	s.clock.Pause()
	s.state = StateLost

	s.log().WithFields(logrus.Fields{
		"x":       at.X,
		"y":       at.Y,
		"elapsed": s.clock.Elapsed().String(),
	}).Info("game lost")

	s.listener.Notify(LossNotice)
}

func (s *Session) win() {
	s.clock.Pause()
	s.state = StateWon

	s.log().WithFields(logrus.Fields{
		"elapsed": s.clock.Elapsed().String(),
		"flags":   s.board.Flags(),
	}).Info("game won")

	s.listener.Notify(WinNotice)
}

func (s *Session) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d board", board.ErrOutOfBounds, x, y, s.params.Rows, s.params.Cols)
}

func (s *Session) log() logrus.FieldLogger {
	return s.logger.WithField("session", s.id.String())
}
