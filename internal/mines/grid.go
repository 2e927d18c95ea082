package mines

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y int
}

// Value is what a tile hides: a mine or the number of mined neighbours.
type Value int8

const Mine Value = -1

func Empty(n int) Value {
	return Value(n)
}

func (v Value) IsMine() bool {
	return v == Mine
}

// Count returns the adjacent mine count, or 0 for a mine.
func (v Value) Count() int {
	if v.IsMine() {
		return 0
	}
	return int(v)
}

func (v Value) String() string {
	if v.IsMine() {
		return "mine"
	}
	return "empty(" + strconv.Itoa(int(v)) + ")"
}

type TileState uint8

const (
	Unrevealed TileState = iota
	Flagged
	Revealed
	Exploded  // post-game-over
	WrongFlag // post-game-over
)

func (s TileState) String() string {
	switch s {
	case Unrevealed:
		return "unrevealed"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	case Exploded:
		return "exploded"
	case WrongFlag:
		return "wrong flag"
	default:
		return "TileState(" + strconv.Itoa(int(s)) + ")"
	}
}

type Tile struct {
	Value Value
	State TileState
	X, Y  int
}

// Rune is the one-character board dump representation of a tile.
func (t Tile) Rune() rune {
	switch t.State {
	case Unrevealed:
		return '#'
	case Flagged:
		return 'F'
	case Exploded:
		return 'X'
	case WrongFlag:
		return 'W'
	}
	if t.Value.IsMine() {
		return '*'
	}
	if t.Value == 0 {
		return '.'
	}
	return rune('0' + t.Value)
}

// Changes lists the coordinates whose tile state changed during one call,
// in the order they changed.
type Changes []Point

type grid struct {
	width, height int
	tiles         []Tile
}

func newGrid(width, height int) grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Tile{Value: Empty(0), State: Unrevealed, X: i % width, Y: i / width}
	}
	return grid{width: width, height: height, tiles: tiles}
}

func (g grid) inBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

func (g grid) index(x, y int) int {
	return y*g.width + x
}

// neighbors returns the indices of the up to 8 in-bounds tiles around i.
func (g grid) neighbors(i int) []int {
	x, y := i%g.width, i/g.width
	ns := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.inBounds(x+dx, y+dy) {
				ns = append(ns, g.index(x+dx, y+dy))
			}
		}
	}
	return ns
}

// setState records i in changes when the state actually differs.
func (g grid) setState(i int, s TileState, changes *Changes) {
	t := &g.tiles[i]
	if t.State == s {
		return
	}
	t.State = s
	if changes != nil {
		*changes = append(*changes, Point{t.X, t.Y})
	}
}

// String dumps the grid top row first, so y grows upward on screen.
func (g grid) String() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := range g.width {
			b.WriteRune(g.tiles[g.index(x, y)].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
