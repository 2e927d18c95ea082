package mines

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

var Log *slog.Logger = slog.Default()

// Game is the rules engine: the tile grid, mine placement on the first click,
// reveal/flag/chord handling and the Start -> Playing -> Won/Lost machine.
// A Game is not safe for concurrent use; it is meant to be driven by a single
// event loop delivering one input at a time.
type Game struct {
	grid
	mineCount int
	state     GameState

	density    float64
	fixedCount int // -1 when the density decides
	layout     []Point
	limits     Limits

	rnd *rand.Rand
	now func() time.Time
}

func NewGame(width, height int, opts ...Option) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, SizeError{width, height}
	}
	g := &Game{
		density:    DefaultDensity,
		fixedCount: -1,
		limits:     DefaultLimits,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = newRand()
	}
	g.reset(width, height)
	return g, nil
}

func (g *Game) reset(width, height int) {
	g.grid = newGrid(width, height)
	g.state = GameState{Phase: Start}
	g.mineCount = g.targetMineCount()
}

func (g *Game) Width() int       { return g.width }
func (g *Game) Height() int      { return g.height }
func (g *Game) MineCount() int   { return g.mineCount }
func (g *Game) State() GameState { return g.state }
func (g *Game) Limits() Limits   { return g.limits }

func (g *Game) InBounds(x, y int) bool {
	return g.inBounds(x, y)
}

func (g *Game) Tile(x, y int) (Tile, bool) {
	if !g.inBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[g.index(x, y)], true
}

// Tiles returns a row-major copy of the board.
func (g *Game) Tiles() []Tile {
	return append([]Tile(nil), g.tiles...)
}

func (g *Game) CountFlags() (count int) {
	for _, t := range g.tiles {
		if t.State == Flagged {
			count++
		}
	}
	return
}

func (g *Game) MinesRemaining() int {
	return g.mineCount - g.CountFlags()
}

func (g *Game) Elapsed() time.Duration {
	return g.state.ElapsedAt(g.now())
}

// PrimaryReveal is the left click. On the first click it places the mines
// around the clicked tile; afterwards it chords satisfied numbers and
// reveals. Out-of-bounds coordinates are ignored.
func (g *Game) PrimaryReveal(x, y int) Changes {
	if !g.inBounds(x, y) {
		return nil
	}
	i := g.index(x, y)
	var changes Changes
	switch g.state.Phase {
	case Start:
		if g.tiles[i].State == Flagged {
			return nil
		}
		g.start(i)
		g.revealTile(i, &changes)
		g.checkWon(&changes)
	case Playing:
		g.revealedClicked(i, &changes)
		g.revealTile(i, &changes)
		g.checkWon(&changes)
	}
	return changes
}

// ToggleFlag flips a tile between unrevealed and flagged.
func (g *Game) ToggleFlag(x, y int) Changes {
	if !g.inBounds(x, y) || g.state.Over() {
		return nil
	}
	var changes Changes
	g.flagTile(g.index(x, y), &changes)
	return changes
}

// AlternateAction chords a revealed tile and toggles the flag on a covered one.
func (g *Game) AlternateAction(x, y int) Changes {
	if !g.inBounds(x, y) || g.state.Over() {
		return nil
	}
	i := g.index(x, y)
	var changes Changes
	switch g.tiles[i].State {
	case Revealed:
		g.revealedClicked(i, &changes)
		g.checkWon(&changes)
	case Unrevealed, Flagged:
		g.flagTile(i, &changes)
	}
	return changes
}

func (g *Game) Chord(x, y int) Changes {
	if !g.inBounds(x, y) {
		return nil
	}
	var changes Changes
	g.revealedClicked(g.index(x, y), &changes)
	g.checkWon(&changes)
	return changes
}

// Restart throws the board away and starts over with the same dimensions.
func (g *Game) Restart() {
	g.reset(g.width, g.height)
}

func (g *Game) IncreaseSize() bool {
	return g.resize(g.limits.Step)
}

func (g *Game) DecreaseSize() bool {
	return g.resize(-g.limits.Step)
}

func (g *Game) resize(delta int) bool {
	if g.state.Phase == Playing {
		return false
	}
	w, h := g.limits.clamp(g.width+delta), g.limits.clamp(g.height+delta)
	if w <= 0 || h <= 0 || (w == g.width && h == g.height) {
		return false
	}
	g.layout = nil
	g.fixedCount = -1
	g.reset(w, h)
	Log.Debug("board resized", "width", w, "height", h, "mines", g.mineCount)
	return true
}

func (g *Game) start(seed int) {
	g.placeMines(seed)
	g.placeNumbers()
	g.state = playing(g.now())
	Log.Debug("game started",
		"seed", Point{seed % g.width, seed / g.width},
		"width", g.width, "height", g.height, "mines", g.mineCount,
	)
}

// revealTile opens tile i. Zero tiles flood outward through an explicit
// stack; flagged and revealed tiles stop the fill.
func (g *Game) revealTile(i int, changes *Changes) {
	if g.state.Phase != Playing {
		return
	}
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := &g.tiles[j]
		if t.State == Revealed || t.State == Flagged {
			continue
		}
		if t.Value.IsMine() {
			g.setState(j, Exploded, changes)
			g.revealAll(changes)
			g.state = g.state.finish(Lost, g.now())
			Log.Debug("game lost", "at", Point{t.X, t.Y}, "elapsed", g.state.Elapsed)
			return
		}
		g.setState(j, Revealed, changes)
		if t.Value == 0 {
			for _, n := range g.neighbors(j) {
				if g.tiles[n].State == Unrevealed {
					stack = append(stack, n)
				}
			}
		}
	}
}

// revealAll is the loss sweep: uncover the mines the player did not find
// and cross out the flags that were wrong.
func (g *Game) revealAll(changes *Changes) {
	for i, t := range g.tiles {
		switch {
		case t.Value.IsMine() && t.State != Exploded && t.State != Flagged:
			g.setState(i, Revealed, changes)
		case !t.Value.IsMine() && t.State == Flagged:
			g.setState(i, WrongFlag, changes)
		}
	}
}

func (g *Game) isWon() bool {
	for _, t := range g.tiles {
		if t.State != Revealed && !t.Value.IsMine() {
			return false
		}
	}
	return true
}

func (g *Game) checkWon(changes *Changes) {
	if g.state.Phase != Playing || !g.isWon() {
		return
	}
	g.state = g.state.finish(Won, g.now())
	for i, t := range g.tiles {
		if t.Value.IsMine() {
			g.setState(i, Flagged, changes)
		}
	}
	Log.Debug("game won", "elapsed", g.state.Elapsed)
}

func (g *Game) flagTile(i int, changes *Changes) {
	switch g.tiles[i].State {
	case Unrevealed:
		g.setState(i, Flagged, changes)
	case Flagged:
		g.setState(i, Unrevealed, changes)
	}
}

// revealedClicked chords tile i: once its flagged neighbours match its
// number, every other neighbour is revealed. A mismatch does nothing.
func (g *Game) revealedClicked(i int, changes *Changes) {
	t := g.tiles[i]
	if g.state.Phase != Playing || t.State != Revealed || t.Value.Count() == 0 {
		return
	}
	ns := g.neighbors(i)
	flags := 0
	for _, n := range ns {
		if g.tiles[n].State == Flagged {
			flags++
		}
	}
	if flags != t.Value.Count() {
		return
	}
	for _, n := range ns {
		if g.tiles[n].State == Flagged {
			continue
		}
		g.revealTile(n, changes)
		if g.state.Phase != Playing {
			return
		}
	}
}
