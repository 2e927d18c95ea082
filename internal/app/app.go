package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/glsweeper/internal/input"
	"github.com/vancomm/glsweeper/internal/middleware"
	"github.com/vancomm/glsweeper/internal/mines"
	"github.com/vancomm/glsweeper/internal/tui"
)

var errQuit = errors.New("quit")

// App runs one game on an initialised screen. The game is only touched by
// the loop goroutine; terminal events and clock ticks reach it over
// channels.
type App struct {
	logger *slog.Logger
	screen tcell.Screen
	game   *mines.Game
	tick   time.Duration
}

func New(logger *slog.Logger, screen tcell.Screen, game *mines.Game) *App {
	return &App{
		logger: logger,
		screen: screen,
		game:   game,
		tick:   time.Second,
	}
}

// Start blocks until the user quits or ctx is cancelled. The caller owns
// the screen and finalises it afterwards.
func (a *App) Start(ctx context.Context) error {
	a.screen.EnableMouse()

	ui := tui.New(a.screen, a.game, middleware.Wrap(
		input.Apply,
		middleware.Logging(a.logger),
	))
	ui.Draw()

	events := make(chan tcell.Event)
	ticks := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.screen.ChannelEvents(events, ctx.Done())
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(a.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			select {
			case <-ctx.Done():
				return nil
			case ticks <- struct{}{}:
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return errQuit
				}
				if ui.HandleEvent(ev) {
					return errQuit
				}
			case <-ticks:
				if a.game.State().Phase == mines.Playing {
					ui.Tick()
				}
			}
		}
	})

	a.logger.Info("game on",
		slog.Int("width", a.game.Width()),
		slog.Int("height", a.game.Height()),
		slog.Int("mines", a.game.MineCount()),
	)

	err := g.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	a.logger.Info("game closed")
	return err
}
