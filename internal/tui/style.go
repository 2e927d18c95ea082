package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/glsweeper/internal/mines"
)

var numberColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorBlack,
	8: tcell.ColorGray,
}

// Glyph is the character drawn in the middle of a tile.
func Glyph(t mines.Tile) rune {
	switch t.State {
	case mines.Flagged:
		return 'F'
	case mines.Exploded, mines.WrongFlag:
		return 'X'
	case mines.Revealed:
		if t.Value.IsMine() {
			return '*'
		}
		if n := t.Value.Count(); n > 0 {
			return rune('0' + n)
		}
	}
	return ' '
}

// TileStyle colours covered tiles in a checkerboard so neighbours stay
// apart even when a tile is a single cell wide.
func TileStyle(t mines.Tile) tcell.Style {
	base := tcell.StyleDefault
	switch t.State {
	case mines.Unrevealed:
		if (t.X+t.Y)%2 == 0 {
			return base.Background(tcell.ColorGray)
		}
		return base.Background(tcell.ColorSilver)
	case mines.Flagged:
		return base.Background(tcell.ColorOlive).Foreground(tcell.ColorWhite).Bold(true)
	case mines.Exploded:
		return base.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	case mines.WrongFlag:
		return base.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite)
	}
	base = base.Background(tcell.ColorWhite)
	if t.Value.IsMine() {
		return base.Foreground(tcell.ColorBlack).Bold(true)
	}
	if n := t.Value.Count(); n > 0 {
		return base.Foreground(numberColors[n]).Bold(true)
	}
	return base
}
