// Package game provides the main game loop.
//
// The loop owns the session and the screen. Everything that changes the
// board runs on the loop goroutine; the timer only posts events to it.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/config"
	"github.com/samdwyer/minesweeper/internal/session"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/theme"
	"github.com/samdwyer/minesweeper/internal/timer"
	"github.com/samdwyer/minesweeper/internal/ui"
)

// eventSink is the part of the screen the session listener talks to.
type eventSink interface {
	PostEvent(ev tcell.Event) error
	Beep() error
}

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sink     eventSink
	session  *session.Session
	layout   ui.Layout
	logger   logrus.FieldLogger
	seed     int64

	cursor  board.Point
	notice  *session.Notice
	mouse   mouseTracker
	running bool
}

// New creates a new game instance and takes over the terminal.
func New(cfg config.Config, logger *logrus.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg, logger, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, theme.Default())
	return g, nil
}

// newGame builds everything except the renderer, sending session output
// to sink.
func newGame(cfg config.Config, logger *logrus.Logger, sink eventSink) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		sink:    sink,
		layout:  ui.NewLayout(cfg.Rows, cfg.Cols),
		logger:  logger,
		seed:    seed,
		running: true,
	}

	s, err := session.New(cfg.Params(),
		session.WithRand(rand.New(rand.NewSource(seed))),
		session.WithListener(&listener{game: g}),
		session.WithLogger(logger),
		session.WithTimer(timer.New(cfg.TickInterval)),
	)
	if err != nil {
		return nil, err
	}
	g.session = s

	return g, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.session.Close()

	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	params := g.session.Params()
	initSpan.SetAttributes(
		attribute.Int("board.rows", params.Rows),
		attribute.Int("board.cols", params.Cols),
		attribute.Int("board.mines", params.Mines),
		attribute.Int64("game.seed", g.seed),
	)
	g.logger.WithFields(logrus.Fields{
		"rows":  params.Rows,
		"cols":  params.Cols,
		"mines": params.Mines,
		"seed":  g.seed,
	}).Info("starting game loop")
	initSpan.End()

	// Main game loop
	for g.running {
		// Render current state
		g.renderer.Render(g.view())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// view snapshots the session for the renderer.
func (g *Game) view() ui.View {
	v := ui.View{
		Board:          g.session.Board(),
		State:          g.session.State(),
		RemainingFlags: g.session.RemainingFlags(),
		Elapsed:        g.session.Elapsed(),
		Cursor:         g.cursor,
		Notice:         g.notice,
	}
	if p, ok := g.session.Exploded(); ok {
		v.Exploded = &p
	}
	return v
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, KeyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// Timer tick; the next render picks up the new elapsed time.
	case nil:
		// The screen was finalized.
		g.running = false
	}
}

// handleMouseEvent moves the cursor to the tile under the pointer and acts
// on newly pressed buttons.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := g.mouse.Press(ev.Buttons())

	x, y, ok := g.layout.TileAt(ev.Position())
	if !ok {
		return
	}
	g.cursor = board.Point{X: x, Y: y}
	g.apply(ctx, MouseAction(pressed))
}

// apply performs one player action.
func (g *Game) apply(ctx context.Context, a Action) {
	switch a {
	case ActionNone:
		return
	case ActionQuit:
		g.running = false
	case ActionReset:
		g.session.Reset()
		g.notice = nil
	case ActionReveal:
		if err := g.session.Reveal(ctx, g.cursor.X, g.cursor.Y); err != nil {
			g.logger.WithError(err).WithField("cursor", g.cursor.String()).Warn("reveal failed")
		}
	case ActionFlag:
		if err := g.session.Flag(g.cursor.X, g.cursor.Y); err != nil {
			g.logger.WithError(err).WithField("cursor", g.cursor.String()).Warn("flag failed")
		}
	default:
		g.cursor = MoveCursor(g.cursor, a, g.layout.Rows, g.layout.Cols)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
	if g.screen != nil {
		g.screen.Close()
	}
}

// listener forwards session output to the loop.
type listener struct {
	game *Game
}

// Tick runs on the timer goroutine, so it only posts an event. A full queue
// drops the tick; the next one carries the same information.
func (l *listener) Tick(elapsed time.Duration) {
	_ = l.game.sink.PostEvent(tcell.NewEventInterrupt(elapsed))
}

// Notify runs on the loop from inside Reveal.
func (l *listener) Notify(n session.Notice) {
	l.game.notice = &n
	l.game.logger.WithFields(logrus.Fields{
		"outcome": n.Outcome.String(),
		"elapsed": ui.FormatElapsed(l.game.session.Elapsed()),
	}).Info(n.Title)
}

// Haptic rings the terminal bell.
func (l *listener) Haptic() {
	if err := l.game.sink.Beep(); err != nil {
		l.game.logger.WithError(err).Debug("beep failed")
	}
}
