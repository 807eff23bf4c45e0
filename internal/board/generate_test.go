package board

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMineCount(t *testing.T) {
	ctx := context.Background()
	safe := &Point{X: 3, Y: 3}

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b, err := Generate(ctx, 8, 8, 10, safe, rng)
		require.NoError(t, err)
		assert.Equal(t, 10, b.Mines(), "seed %d", seed)
	}
}

func TestGenerateSafeZoneNeverMined(t *testing.T) {
	ctx := context.Background()
	const rows, cols, mines = 8, 8, 40

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rng := rand.New(rand.NewSource(int64(y*cols + x)))
			b, err := Generate(ctx, rows, cols, mines, &Point{X: x, Y: y}, rng)
			require.NoError(t, err)

			for _, p := range b.SafeZone(x, y) {
				assert.False(t, b.Tile(p.X, p.Y).IsMine, "mine at %s in safe zone of (%d,%d)\n%s", p, x, y, b)
			}
			assert.Zero(t, b.Tile(x, y).AdjacentMines, "first click at (%d,%d) should open an empty tile", x, y)
			assert.Equal(t, mines, b.Mines())
		}
	}
}

func TestGenerateAdjacencyMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	b, err := Generate(context.Background(), 16, 30, 99, &Point{X: 15, Y: 8}, rng)
	require.NoError(t, err)

	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			tile := b.Tile(x, y)
			if tile.IsMine {
				continue
			}
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx >= 0 && nx < b.Cols && ny >= 0 && ny < b.Rows && b.Tiles[ny][nx].IsMine {
						want++
					}
				}
			}
			assert.Equal(t, want, tile.AdjacentMines, "adjacency at (%d,%d)", x, y)
		}
	}
}

func TestGenerateWithoutSafeOrigin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := Generate(context.Background(), 4, 4, 16, nil, rng)
	require.NoError(t, err)

	assert.Equal(t, 16, b.Mines())
}

func TestGenerateFillsEveryFreeTile(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b, err := Generate(context.Background(), 4, 4, 12, &Point{X: 0, Y: 0}, rng)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inZone := x <= 1 && y <= 1
			assert.Equal(t, !inZone, b.Tile(x, y).IsMine, "tile (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 5, b.Tile(1, 1).AdjacentMines)
	assert.Equal(t, 2, b.Tile(0, 1).AdjacentMines)
	assert.Zero(t, b.Tile(0, 0).AdjacentMines)
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		mines      int
		safe       *Point
		want       error
	}{
		{"no rows", 0, 5, 1, nil, ErrInvalidSize},
		{"negative cols", 5, -1, 1, nil, ErrInvalidSize},
		{"negative mines", 5, 5, -1, nil, ErrInvalidMineCount},
		{"safe origin off grid", 3, 3, 1, &Point{X: 5, Y: 5}, ErrOutOfBounds},
		{"safe zone covers board", 3, 3, 1, &Point{X: 1, Y: 1}, ErrTooManyMines},
		{"more mines than tiles", 2, 2, 5, nil, ErrTooManyMines},
		{"one more than free tiles", 4, 4, 13, &Point{X: 0, Y: 0}, ErrTooManyMines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			b, err := Generate(context.Background(), tt.rows, tt.cols, tt.mines, tt.safe, rng)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, b)
		})
	}
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	safe := &Point{X: 4, Y: 4}

	b1, err := Generate(ctx, 9, 9, 10, safe, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	b2, err := Generate(ctx, 9, 9, 10, safe, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)

	assert.Equal(t, b1.Tiles, b2.Tiles)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	b1, err := Generate(ctx, 16, 16, 40, nil, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	b2, err := Generate(ctx, 16, 16, 40, nil, rand.New(rand.NewSource(54321)))
	require.NoError(t, err)

	b1.RevealAll()
	b2.RevealAll()
	assert.NotEqual(t, b1.String(), b2.String())
}

func TestFromMines(t *testing.T) {
	b, err := FromMines(3, 3, []Point{{1, 1}, {1, 1}})
	require.NoError(t, err)

	assert.Equal(t, 1, b.Mines())
	for _, n := range b.Neighbors(1, 1) {
		assert.Equal(t, 1, n.AdjacentMines)
	}

	_, err = FromMines(3, 3, []Point{{3, 0}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = FromMines(0, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
