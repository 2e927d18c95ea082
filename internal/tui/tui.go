// Package tui draws a game on a terminal and turns mouse and key events into
// game commands.
//
// A terminal cell is roughly twice as tall as it is wide, so the board is
// laid out in units of two columns by one row and projected through a
// viewport.Viewport. The last row holds the status line.
package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/glsweeper/internal/input"
	"github.com/vancomm/glsweeper/internal/middleware"
	"github.com/vancomm/glsweeper/internal/mines"
	"github.com/vancomm/glsweeper/internal/viewport"
)

type UI struct {
	screen  tcell.Screen
	game    *mines.Game
	handle  middleware.Handler
	cursor  mines.Point
	pressed tcell.ButtonMask
}

// New binds a screen to a game. A nil handler applies commands directly.
func New(screen tcell.Screen, game *mines.Game, handle middleware.Handler) *UI {
	if handle == nil {
		handle = input.Apply
	}
	u := &UI{screen: screen, game: game, handle: handle}
	u.centerCursor()
	return u
}

func (u *UI) Cursor() mines.Point {
	return u.cursor
}

func (u *UI) centerCursor() {
	u.cursor = mines.Point{X: u.game.Width() / 2, Y: u.game.Height() / 2}
}

func (u *UI) viewport() viewport.Viewport {
	cols, rows := u.screen.Size()
	return viewport.Viewport{Width: float64(cols) / 2, Height: float64(max(rows-1, 0))}
}

// tileAt maps the cell through its centre.
func (u *UI) tileAt(vp viewport.Viewport, col, row int) (int, int, bool) {
	return vp.TileAt((float64(col)+0.5)/2, float64(row)+0.5, u.game.Width(), u.game.Height())
}

// Draw repaints the whole screen.
func (u *UI) Draw() {
	u.screen.Clear()
	vp := u.viewport()
	cols, rows := u.screen.Size()
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			if x, y, ok := u.tileAt(vp, col, row); ok {
				u.drawCell(vp, col, row, x, y)
			}
		}
	}
	u.drawStatus()
	u.screen.Show()
}

// DrawChanges repaints only the listed tiles and the status line.
func (u *UI) DrawChanges(changes mines.Changes) {
	vp := u.viewport()
	for _, p := range changes {
		u.drawTile(vp, p.X, p.Y)
	}
	u.drawStatus()
	u.screen.Show()
}

// Tick refreshes the clock.
func (u *UI) Tick() {
	u.drawStatus()
	u.screen.Show()
}

func (u *UI) drawTile(vp viewport.Viewport, x, y int) {
	r := vp.TileRect(x, y, u.game.Width(), u.game.Height())
	cols, rows := u.screen.Size()
	minCol, maxCol := int(math.Floor(r.MinX*2)), int(math.Ceil(r.MaxX*2))
	minRow, maxRow := int(math.Floor(r.MinY)), int(math.Ceil(r.MaxY))
	for row := max(minRow, 0); row < min(maxRow, rows-1); row++ {
		for col := max(minCol, 0); col < min(maxCol, cols); col++ {
			if tx, ty, ok := u.tileAt(vp, col, row); ok && tx == x && ty == y {
				u.drawCell(vp, col, row, x, y)
			}
		}
	}
}

func (u *UI) drawCell(vp viewport.Viewport, col, row, x, y int) {
	t, _ := u.game.Tile(x, y)
	glyph := ' '
	cx, cy := vp.TileRect(x, y, u.game.Width(), u.game.Height()).Center()
	if col == int(math.Floor(cx*2)) && row == int(math.Floor(cy)) {
		glyph = Glyph(t)
	}
	style := TileStyle(t)
	if x == u.cursor.X && y == u.cursor.Y {
		style = style.Reverse(true)
	}
	u.screen.SetContent(col, row, glyph, nil, style)
}

func (u *UI) drawStatus() {
	cols, rows := u.screen.Size()
	if rows == 0 {
		return
	}
	st := u.game.State()
	line := fmt.Sprintf(" Mines: %d  Time: %s", u.game.MinesRemaining(), u.game.Elapsed().Truncate(time.Second))
	style := tcell.StyleDefault
	switch st.Phase {
	case mines.Won:
		line += "  You win! r to play again"
		style = style.Foreground(tcell.ColorGreen)
	case mines.Lost:
		line += "  Boom. r to try again"
		style = style.Foreground(tcell.ColorRed)
	}
	drawText(u.screen, 0, rows-1, cols, style, line)
}

// HandleEvent processes one terminal event and reports whether the user
// asked to quit.
func (u *UI) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.Draw()
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
	return false
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := buttons &^ u.pressed
	u.pressed = buttons
	if pressed == tcell.ButtonNone {
		return
	}
	col, row := ev.Position()
	x, y, ok := u.tileAt(u.viewport(), col, row)
	if !ok {
		return
	}
	var action input.Action
	switch {
	case pressed&tcell.Button1 != 0:
		action = input.Reveal
	case pressed&tcell.Button2 != 0:
		action = input.Flag
	case pressed&tcell.Button3 != 0:
		action = input.Alternate
	}
	u.moveCursor(x, y)
	u.apply(input.Command{Action: action, X: x, Y: y})
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	c := u.cursor
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveCursor(c.X, c.Y+1)
	case tcell.KeyDown:
		u.moveCursor(c.X, c.Y-1)
	case tcell.KeyLeft:
		u.moveCursor(c.X-1, c.Y)
	case tcell.KeyRight:
		u.moveCursor(c.X+1, c.Y)
	case tcell.KeyEnter:
		u.apply(input.Command{Action: input.Reveal, X: c.X, Y: c.Y})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'f':
			u.apply(input.Command{Action: input.Flag, X: c.X, Y: c.Y})
		case ' ':
			u.apply(input.Command{Action: input.Alternate, X: c.X, Y: c.Y})
		case 'c':
			u.apply(input.Command{Action: input.Chord, X: c.X, Y: c.Y})
		case 'r':
			u.apply(input.Command{Action: input.Restart})
		case '+', '=':
			u.apply(input.Command{Action: input.Grow})
		case '-':
			u.apply(input.Command{Action: input.Shrink})
		}
	}
	return false
}

func (u *UI) moveCursor(x, y int) {
	if !u.game.InBounds(x, y) || (x == u.cursor.X && y == u.cursor.Y) {
		return
	}
	old := u.cursor
	u.cursor = mines.Point{X: x, Y: y}
	u.DrawChanges(mines.Changes{old, u.cursor})
}

func (u *UI) apply(cmd input.Command) {
	changes, redraw := u.handle(u.game, cmd)
	if redraw {
		if !u.game.InBounds(u.cursor.X, u.cursor.Y) {
			u.centerCursor()
		}
		u.Draw()
		return
	}
	u.DrawChanges(changes)
}

func drawText(s tcell.Screen, col, row, width int, style tcell.Style, text string) {
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(col, row, ' ', nil, style)
	}
}
