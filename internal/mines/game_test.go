package mines

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelWarn,
		NoColor: true,
	}))
	os.Exit(m.Run())
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestGame(t *testing.T, width, height int, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(clock.Now),
	}, opts...)
	g, err := NewGame(width, height, opts...)
	require.NoError(t, err)
	return g, clock
}

func states(g *Game) []TileState {
	s := make([]TileState, len(g.tiles))
	for i, t := range g.tiles {
		s[i] = t.State
	}
	return s
}

func TestNewGameRejectsBadSize(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
		{0, 0},
	}
	for _, test := range tests {
		g, err := NewGame(test.width, test.height)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidSize)
		var sizeErr SizeError
		if assert.ErrorAs(t, err, &sizeErr) {
			assert.Equal(t, test.width, sizeErr.Width)
			assert.Equal(t, test.height, sizeErr.Height)
		}
	}
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t, 10, 7)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 7, g.Height())
	assert.Equal(t, 10*7/5, g.MineCount())
	assert.Equal(t, Start, g.State().Phase)
	assert.Equal(t, time.Duration(0), g.Elapsed())

	for i, tile := range g.Tiles() {
		assert.Equal(t, Empty(0), tile.Value)
		assert.Equal(t, Unrevealed, tile.State)
		assert.Equal(t, i%10, tile.X)
		assert.Equal(t, i/10, tile.Y)
	}
}

func TestDefaultMineCount(t *testing.T) {
	tests := []struct {
		width, height, mines int
	}{
		{11, 11, 24},
		{5, 11, 11},
		{16, 16, 51},
		{3, 5, 3},
		{1, 1, 0},
		{2, 2, 0},
	}
	for _, test := range tests {
		g, _ := newTestGame(t, test.width, test.height)
		assert.Equal(t, test.mines, g.MineCount(), "%dx%d", test.width, test.height)
	}
}

func TestOutOfBoundsIsNoop(t *testing.T) {
	g, _ := newTestGame(t, 5, 5)
	points := []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}}
	for _, p := range points {
		assert.Nil(t, g.PrimaryReveal(p.X, p.Y))
		assert.Nil(t, g.ToggleFlag(p.X, p.Y))
		assert.Nil(t, g.AlternateAction(p.X, p.Y))
		assert.Nil(t, g.Chord(p.X, p.Y))
		_, ok := g.Tile(p.X, p.Y)
		assert.False(t, ok)
	}
	assert.Equal(t, Start, g.State().Phase)
}

func TestFirstClickOnFlagIsIgnored(t *testing.T) {
	g, _ := newTestGame(t, 9, 9)

	g.ToggleFlag(4, 4)
	assert.Nil(t, g.PrimaryReveal(4, 4))
	assert.Equal(t, Start, g.State().Phase)

	for _, tile := range g.tiles {
		assert.False(t, tile.Value.IsMine())
	}
}

func TestFlagToggle(t *testing.T) {
	g, _ := newTestGame(t, 5, 1, WithMines(Point{2, 0}))

	assert.Equal(t, Changes{{1, 0}}, g.ToggleFlag(1, 0))
	tile, _ := g.Tile(1, 0)
	assert.Equal(t, Flagged, tile.State)
	assert.Equal(t, 1, g.CountFlags())
	assert.Equal(t, 0, g.MinesRemaining())

	assert.Equal(t, Changes{{1, 0}}, g.ToggleFlag(1, 0))
	tile, _ = g.Tile(1, 0)
	assert.Equal(t, Unrevealed, tile.State)

	g.PrimaryReveal(0, 0)
	require.Equal(t, Playing, g.State().Phase)
	tile, _ = g.Tile(0, 0)
	require.Equal(t, Revealed, tile.State)

	assert.Nil(t, g.ToggleFlag(0, 0))
	tile, _ = g.Tile(0, 0)
	assert.Equal(t, Revealed, tile.State)
}

func TestOneByTwo(t *testing.T) {
	g, _ := newTestGame(t, 1, 2, WithMines(Point{0, 1}))
	require.Equal(t, 1, g.MineCount())

	changes := g.PrimaryReveal(0, 0)

	tile, _ := g.Tile(0, 0)
	assert.Equal(t, Empty(1), tile.Value)
	assert.Equal(t, Revealed, tile.State)
	assert.Equal(t, Changes{{0, 0}}, changes)

	// The only safe tile is open, so the first click is also the win.
	other, _ := g.Tile(0, 1)
	assert.True(t, other.Value.IsMine())
	assert.Equal(t, Won, g.State().Phase)
	assert.Equal(t, Flagged, other.State)
	assert.Equal(t, 0, g.MinesRemaining())
}

func TestNumberedFirstClickDoesNotCascade(t *testing.T) {
	g, _ := newTestGame(t, 1, 3, WithMines(Point{0, 2}))

	changes := g.PrimaryReveal(0, 1)

	tile, _ := g.Tile(0, 1)
	assert.Equal(t, Empty(1), tile.Value)
	assert.Equal(t, Changes{{0, 1}}, changes)
	assert.Equal(t, Playing, g.State().Phase)
	assert.Equal(t, 1, g.MinesRemaining())
	assert.Equal(t, "#\n1\n#\n", g.String())
}

func TestZeroMinesWinsImmediately(t *testing.T) {
	for _, p := range []Point{{0, 0}, {1, 1}, {2, 0}, {1, 2}} {
		g, clock := newTestGame(t, 3, 3, WithMineCount(0))
		clock.Advance(time.Second)
		changes := g.PrimaryReveal(p.X, p.Y)

		assert.Equal(t, Won, g.State().Phase)
		assert.Len(t, changes, 9)
		for _, tile := range g.tiles {
			assert.Equal(t, Revealed, tile.State)
		}
	}
}

func TestDensityClampedByExclusionZone(t *testing.T) {
	g, _ := newTestGame(t, 3, 3)
	require.Equal(t, 1, g.MineCount())

	g.PrimaryReveal(0, 0)

	assert.Equal(t, 0, g.MineCount())
	assert.Equal(t, Won, g.State().Phase)
}

func TestFloodFillStopsAtWall(t *testing.T) {
	wall := []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	g, _ := newTestGame(t, 5, 5, WithMines(wall...))

	changes := g.PrimaryReveal(0, 0)

	assert.Len(t, changes, 10)
	for _, tile := range g.tiles {
		if tile.X < 2 {
			assert.Equal(t, Revealed, tile.State, "%d:%d", tile.X, tile.Y)
		} else {
			assert.Equal(t, Unrevealed, tile.State, "%d:%d", tile.X, tile.Y)
		}
	}
	assert.Equal(t, Playing, g.State().Phase)
	assert.Equal(t,
		".2###\n"+
			".3###\n"+
			".3###\n"+
			".3###\n"+
			".2###\n",
		g.String(),
	)
}

func TestFloodFillKeepsFlags(t *testing.T) {
	g, _ := newTestGame(t, 4, 4, WithMines(Point{3, 3}))

	g.ToggleFlag(0, 3)
	g.PrimaryReveal(0, 0)

	tile, _ := g.Tile(0, 3)
	assert.Equal(t, Flagged, tile.State)
	assert.Equal(t, Playing, g.State().Phase)

	g.ToggleFlag(0, 3)
	g.PrimaryReveal(0, 3)
	assert.Equal(t, Won, g.State().Phase)
}

func TestLoss(t *testing.T) {
	// M 1 0 1 M 2 M
	mines := []Point{{0, 0}, {4, 0}, {6, 0}}
	g, clock := newTestGame(t, 7, 1, WithMines(mines...))

	g.PrimaryReveal(2, 0)
	require.Equal(t, Playing, g.State().Phase)
	assert.Equal(t, "#1.1###\n", g.String())

	g.ToggleFlag(0, 0)
	g.ToggleFlag(5, 0)
	clock.Advance(3 * time.Second)

	changes := g.PrimaryReveal(4, 0)

	assert.Equal(t, Lost, g.State().Phase)
	assert.Equal(t, 3*time.Second, g.State().Elapsed)
	assert.Equal(t, 3*time.Second, g.Elapsed())
	assert.ElementsMatch(t, Changes{{4, 0}, {5, 0}, {6, 0}}, changes)

	want := []TileState{Flagged, Revealed, Revealed, Revealed, Exploded, WrongFlag, Revealed}
	assert.Equal(t, want, states(g))

	exploded := 0
	for _, tile := range g.tiles {
		if tile.State == Exploded {
			exploded++
		}
	}
	assert.Equal(t, 1, exploded)

	assert.Nil(t, g.PrimaryReveal(5, 0))
	assert.Nil(t, g.ToggleFlag(0, 0))
	assert.Nil(t, g.AlternateAction(1, 0))
	assert.Equal(t, want, states(g))
}

func TestFirstClickOnLayoutMineLoses(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, WithMines(Point{1, 1}))

	g.PrimaryReveal(1, 1)

	assert.Equal(t, Lost, g.State().Phase)
	tile, _ := g.Tile(1, 1)
	assert.Equal(t, Exploded, tile.State)
}

func TestChord(t *testing.T) {
	newChordGame := func(t *testing.T) *Game {
		g, _ := newTestGame(t, 3, 3, WithMines(Point{0, 0}, Point{2, 2}))
		g.PrimaryReveal(1, 1)
		tile, _ := g.Tile(1, 1)
		require.Equal(t, Empty(2), tile.Value)
		require.Equal(t, Revealed, tile.State)
		return g
	}

	t.Run("too few flags", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		before := states(g)

		assert.Nil(t, g.Chord(1, 1))
		assert.Nil(t, g.AlternateAction(1, 1))
		assert.Equal(t, before, states(g))
		assert.Equal(t, Playing, g.State().Phase)
	})

	t.Run("too many flags", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		g.ToggleFlag(2, 2)
		g.ToggleFlag(1, 0)
		before := states(g)

		assert.Nil(t, g.Chord(1, 1))
		assert.Equal(t, before, states(g))
	})

	t.Run("satisfied", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		g.ToggleFlag(2, 2)

		changes := g.Chord(1, 1)

		assert.Len(t, changes, 6)
		assert.Equal(t, Won, g.State().Phase)
		for _, tile := range g.tiles {
			if tile.Value.IsMine() {
				assert.Equal(t, Flagged, tile.State)
			} else {
				assert.Equal(t, Revealed, tile.State)
			}
		}
	})

	t.Run("via primary reveal", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		g.ToggleFlag(2, 2)

		g.PrimaryReveal(1, 1)

		assert.Equal(t, Won, g.State().Phase)
	})

	t.Run("via alternate action", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		g.ToggleFlag(2, 2)

		g.AlternateAction(1, 1)

		assert.Equal(t, Won, g.State().Phase)
	})

	t.Run("wrong flag detonates", func(t *testing.T) {
		g := newChordGame(t)
		g.ToggleFlag(0, 0)
		g.ToggleFlag(0, 1)

		g.Chord(1, 1)

		assert.Equal(t, Lost, g.State().Phase)
		tile, _ := g.Tile(2, 2)
		assert.Equal(t, Exploded, tile.State)
		tile, _ = g.Tile(0, 1)
		assert.Equal(t, WrongFlag, tile.State)
		tile, _ = g.Tile(0, 0)
		assert.Equal(t, Flagged, tile.State)
	})
}

func TestAlternateActionFlags(t *testing.T) {
	g, _ := newTestGame(t, 4, 4)

	g.AlternateAction(2, 2)
	tile, _ := g.Tile(2, 2)
	assert.Equal(t, Flagged, tile.State)
	assert.Equal(t, Start, g.State().Phase)

	g.AlternateAction(2, 2)
	tile, _ = g.Tile(2, 2)
	assert.Equal(t, Unrevealed, tile.State)
}

func TestWinFlagsMines(t *testing.T) {
	g, clock := newTestGame(t, 4, 1, WithMines(Point{2, 0}))

	g.PrimaryReveal(0, 0)
	require.Equal(t, Playing, g.State().Phase)
	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, g.Elapsed())

	changes := g.PrimaryReveal(3, 0)

	assert.Equal(t, Won, g.State().Phase)
	assert.Equal(t, 1500*time.Millisecond, g.State().Elapsed)
	assert.Equal(t, Changes{{3, 0}, {2, 0}}, changes)
	assert.Equal(t, 0, g.MinesRemaining())

	clock.Advance(time.Hour)
	assert.Equal(t, 1500*time.Millisecond, g.Elapsed())
	assert.Nil(t, g.PrimaryReveal(2, 0))
	assert.Nil(t, g.ToggleFlag(2, 0))
}

func TestResize(t *testing.T) {
	g, _ := newTestGame(t, 11, 11, WithLimits(Limits{Min: 1, Max: 20, Step: 5}))

	require.True(t, g.IncreaseSize())
	assert.Equal(t, 16, g.Width())
	assert.Equal(t, 16, g.Height())
	assert.Equal(t, 16*16/5, g.MineCount())

	require.True(t, g.IncreaseSize())
	assert.Equal(t, 20, g.Width())
	assert.False(t, g.IncreaseSize())

	g.PrimaryReveal(10, 10)
	require.Equal(t, Playing, g.State().Phase)
	assert.False(t, g.DecreaseSize())
	assert.Equal(t, 20, g.Width())

	g.Restart()
	assert.Equal(t, Start, g.State().Phase)
	assert.Equal(t, 20, g.Width())

	for range 5 {
		g.DecreaseSize()
	}
	assert.Equal(t, 1, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, 0, g.MineCount())
	assert.False(t, g.DecreaseSize())
}

func TestResizeAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, 3, 3, WithMines(Point{1, 1}))
	g.PrimaryReveal(1, 1)
	require.Equal(t, Lost, g.State().Phase)

	require.True(t, g.IncreaseSize())
	assert.Equal(t, Start, g.State().Phase)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 8*8/5, g.MineCount())
	for _, tile := range g.tiles {
		assert.Equal(t, Unrevealed, tile.State)
		assert.False(t, tile.Value.IsMine())
	}
}

func TestRestartKeepsLayout(t *testing.T) {
	g, _ := newTestGame(t, 1, 2, WithMines(Point{0, 1}))
	g.PrimaryReveal(0, 1)
	require.Equal(t, Lost, g.State().Phase)

	g.Restart()
	g.PrimaryReveal(0, 0)

	tile, _ := g.Tile(0, 1)
	assert.True(t, tile.Value.IsMine())
	assert.Equal(t, Won, g.State().Phase)
}
