package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/glsweeper/internal/input"
	"github.com/vancomm/glsweeper/internal/middleware"
	"github.com/vancomm/glsweeper/internal/mines"
)

var quiet bool

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Play a list of text commands and print the board",
	Long: `Play a list of text commands, one per line, and print the board after each.
Reads stdin when no file is given.

  o x y   reveal          f x y   toggle flag
  a x y   alternate       c x y   chord
  r       restart         + / -   grow / shrink the board
  g       print the board

Tile (0, 0) is the bottom-left corner; the top row is printed first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("unable to open script: %w", err)
			}
			defer f.Close()
			r = f
		}
		cmds, err := input.ParseScript(r)
		if err != nil {
			return err
		}

		game, err := newGame(cfg)
		if err != nil {
			return err
		}
		handle := middleware.Wrap(input.Apply, middleware.Logging(logger))
		return runScript(cmd.OutOrStdout(), game, handle, cmds, quiet)
	},
}

func init() {
	scriptCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the final board")
}

func runScript(w io.Writer, g *mines.Game, handle middleware.Handler, cmds []input.Command, quiet bool) error {
	for _, cmd := range cmds {
		handle(g, cmd)
		if quiet {
			continue
		}
		if err := printBoard(w, g, cmd.String()); err != nil {
			return err
		}
	}
	if quiet || len(cmds) == 0 {
		return printBoard(w, g, "final")
	}
	return nil
}

func printBoard(w io.Writer, g *mines.Game, title string) error {
	_, err := fmt.Fprintf(w, "> %s\n%s%s, %d mines left\n\n",
		title, g.String(), g.State().Phase, g.MinesRemaining())
	return err
}
