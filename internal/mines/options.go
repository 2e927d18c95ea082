package mines

import (
	"hash/maphash"
	"math/rand/v2"
	"time"
)

const DefaultDensity = 0.2

// Limits bounds the board dimensions reachable through resizing.
type Limits struct {
	Min, Max, Step int
}

var DefaultLimits = Limits{Min: 1, Max: 1000, Step: 5}

func (l Limits) clamp(n int) int {
	return max(l.Min, min(l.Max, n))
}

type Option func(*Game)

func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rnd = r }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithDensity sets the share of tiles that become mines on every board,
// including boards created by resizing.
func WithDensity(d float64) Option {
	return func(g *Game) {
		g.density = d
		g.fixedCount = -1
	}
}

// WithMineCount pins the mine count for the current dimensions. Resizing
// falls back to the density.
func WithMineCount(n int) Option {
	return func(g *Game) { g.fixedCount = n }
}

// WithMines fixes the mine layout instead of drawing one on the first click.
// Out-of-bounds and duplicate points are ignored.
func WithMines(points ...Point) Option {
	return func(g *Game) {
		g.layout = append([]Point(nil), points...)
	}
}

func WithLimits(l Limits) Option {
	return func(g *Game) { g.limits = l }
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
