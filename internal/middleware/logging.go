package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/glsweeper/internal/input"
	"github.com/vancomm/glsweeper/internal/mines"
)

// Logging logs every command and tags each round, from the first reveal to
// the win or loss, with its own id.
func Logging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		var round uuid.UUID
		return func(g *mines.Game, cmd input.Command) (mines.Changes, bool) {
			before := g.State().Phase
			start := time.Now()

			changes, redraw := next(g, cmd)

			after := g.State().Phase
			if before == mines.Start && after != mines.Start {
				round = uuid.New()
				logger.Info("round started",
					slog.String("round", round.String()),
					slog.Int("width", g.Width()),
					slog.Int("height", g.Height()),
					slog.Int("mines", g.MineCount()),
				)
			}

			logger.Debug(
				"handled command",
				slog.String("command", cmd.String()),
				slog.String("phase", after.String()),
				slog.Int("changes", len(changes)),
				slog.Bool("redraw", redraw),
				slog.Any("duration (µs)", int64(time.Since(start)/time.Microsecond)),
			)

			if before != after && (after == mines.Won || after == mines.Lost) {
				logger.Info("round finished",
					slog.String("round", round.String()),
					slog.String("result", after.String()),
					slog.Duration("elapsed", g.State().Elapsed),
				)
			}
			return changes, redraw
		}
	}
}
