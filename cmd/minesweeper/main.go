package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/glsweeper/internal/app"
	"github.com/vancomm/glsweeper/internal/config"
	"github.com/vancomm/glsweeper/internal/mines"
)

var flags struct {
	width, height int
	density       float64
	seed          uint64
	development   bool
	logLevel      string
	logFile       string
}

var rootCmd = &cobra.Command{
	Use:           "minesweeper",
	Short:         "Minesweeper in the terminal",
	Long:          "Minesweeper in the terminal. Left click reveals, right click flags, middle click chords.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
		defer rotator.Close()

		logger, err := newLogger(cfg, rotator)
		if err != nil {
			return err
		}

		game, err := newGame(cfg)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("unable to open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("unable to init terminal: %w", err)
		}
		defer screen.Fini()

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return app.New(logger, screen, game).Start(ctx)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flags.width, "width", 0, "board width (env MINES_WIDTH)")
	pf.IntVar(&flags.height, "height", 0, "board height (env MINES_HEIGHT)")
	pf.Float64Var(&flags.density, "density", 0, "share of tiles that are mines (env MINES_DENSITY)")
	pf.Uint64Var(&flags.seed, "seed", 0, "seed for mine placement, 0 is random (env MINES_SEED)")
	pf.BoolVar(&flags.development, "dev", false, "human-readable debug logs (env DEVELOPMENT)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (env MINES_LOG_LEVEL)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file for the terminal game (env MINES_LOG_FILE)")

	rootCmd.AddCommand(scriptCmd)
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Board.Width = flags.width
	}
	if f.Changed("height") {
		cfg.Board.Height = flags.height
	}
	if f.Changed("density") {
		cfg.Board.Density = flags.density
	}
	if f.Changed("seed") {
		cfg.Board.Seed = flags.seed
	}
	if f.Changed("dev") {
		cfg.Development = flags.development
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGame(cfg *config.App) (*mines.Game, error) {
	opts := []mines.Option{
		mines.WithDensity(cfg.Board.Density),
		mines.WithLimits(cfg.Board.Limits()),
	}
	if cfg.Board.Seed != 0 {
		opts = append(opts, mines.WithRand(rand.New(rand.NewPCG(cfg.Board.Seed, cfg.Board.Seed))))
	}
	return mines.NewGame(cfg.Board.Width, cfg.Board.Height, opts...)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
