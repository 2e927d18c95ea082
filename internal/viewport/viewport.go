// Package viewport maps between surface coordinates and board tiles.
//
// The board is drawn into the largest centred square of the surface, with
// tile (0, 0) in the bottom-left corner and y growing upward. Surface
// coordinates have their origin in the top-left corner and y growing
// downward, as pointer events report them.
package viewport

import "math"

type Viewport struct {
	Width, Height float64
}

type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Contains(px, py float64) bool {
	return r.MinX <= px && px < r.MaxX && r.MinY <= py && py < r.MaxY
}

func (r Rect) Center() (float64, float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Board is the letterboxed square the tiles are drawn into.
func (v Viewport) Board() Rect {
	if v.Width > v.Height {
		ox := (v.Width - v.Height) / 2
		return Rect{MinX: ox, MinY: 0, MaxX: ox + v.Height, MaxY: v.Height}
	}
	oy := (v.Height - v.Width) / 2
	return Rect{MinX: 0, MinY: oy, MaxX: v.Width, MaxY: oy + v.Width}
}

// TileAt converts a surface point into tile coordinates on a cols x rows
// board. Points outside the board give ok == false and coordinates that
// are out of range, never an error.
func (v Viewport) TileAt(px, py float64, cols, rows int) (x, y int, ok bool) {
	b := v.Board()
	side := b.MaxX - b.MinX
	if side <= 0 || cols <= 0 || rows <= 0 {
		return -1, -1, false
	}
	fx := (px - b.MinX) / side * float64(cols)
	fy := float64(rows) - (py-b.MinY)/side*float64(rows)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	ok = 0 <= x && x < cols && 0 <= y && y < rows
	return x, y, ok
}

// TileRect is the surface area covered by tile (x, y).
func (v Viewport) TileRect(x, y, cols, rows int) Rect {
	b := v.Board()
	side := b.MaxX - b.MinX
	w := side / float64(cols)
	h := side / float64(rows)
	return Rect{
		MinX: b.MinX + float64(x)*w,
		MaxX: b.MinX + float64(x+1)*w,
		MinY: b.MinY + float64(rows-1-y)*h,
		MaxY: b.MinY + float64(rows-y)*h,
	}
}
