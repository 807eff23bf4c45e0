package board

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Generate creates a fully populated board with mineCount mines.
//
// When safe is non-nil, neither the safe tile nor any of its neighbours will
// hold a mine. Mines are placed by rejection sampling from rng, so the same
// seed always produces the same board. Parameters that would make the
// sampling loop run forever are rejected with ErrTooManyMines.
func Generate(ctx context.Context, rows, cols, mineCount int, safe *Point, rng *rand.Rand) (*Board, error) {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if mineCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMineCount, mineCount)
	}

	b := NewEmpty(rows, cols)

	excluded := make(map[Point]bool)
	if safe != nil {
		if !b.InBounds(safe.X, safe.Y) {
			return nil, fmt.Errorf("%w: safe origin %s on %dx%d board", ErrOutOfBounds, safe, rows, cols)
		}
		for _, p := range b.SafeZone(safe.X, safe.Y) {
			excluded[p] = true
		}
	}

	free := rows*cols - len(excluded)
	if mineCount > free {
		return nil, fmt.Errorf("%w: %d mines, %d free tiles", ErrTooManyMines, mineCount, free)
	}

	attempts := 0
	for placed := 0; placed < mineCount; {
		attempts++
		x := rng.Intn(cols)
		y := rng.Intn(rows)
		t := b.Tile(x, y)
		if t.IsMine || excluded[Point{X: x, Y: y}] {
			continue
		}
		t.IsMine = true
		placed++
	}

	b.computeAdjacency()

	span.SetAttributes(
		attribute.Int("board.rows", rows),
		attribute.Int("board.cols", cols),
		attribute.Int("board.mines", mineCount),
		attribute.Bool("board.safe_origin", safe != nil),
		attribute.Int("board.sample_attempts", attempts),
		attribute.Int64("board.generation_us", time.Since(startTime).Microseconds()),
	)

	return b, nil
}

// FromMines creates a board with mines at exactly the given points and the
// adjacency counts filled in. Duplicate points are counted once.
func FromMines(rows, cols int, mines []Point) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	b := NewEmpty(rows, cols)
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: mine at %s on %dx%d board", ErrOutOfBounds, p, rows, cols)
		}
		b.Tile(p.X, p.Y).IsMine = true
	}
	b.computeAdjacency()

	return b, nil
}
