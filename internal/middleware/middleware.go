package middleware

import (
	"github.com/vancomm/glsweeper/internal/input"
	"github.com/vancomm/glsweeper/internal/mines"
)

// Handler applies one command to the game and reports the changed tiles and
// whether the whole board must be redrawn. input.Apply is the innermost one.
type Handler func(g *mines.Game, cmd input.Command) (mines.Changes, bool)

type Middleware func(Handler) Handler

func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
