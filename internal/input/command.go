package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/glsweeper/internal/mines"
)

type Command struct {
	Action Action
	X, Y   int
}

func (c Command) String() string {
	if c.Action.Positional() {
		return fmt.Sprintf("%s %d %d", c.Action, c.X, c.Y)
	}
	return c.Action.String()
}

// ParseCommand reads one line of the text protocol, e.g. "o 3 4" or "+".
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Action: Noop}, nil
	}
	action, err := ParseAction(tokens[0])
	if err != nil {
		return Command{}, err
	}
	args := tokens[1:]
	if !action.Positional() {
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments", action)
		}
		return Command{Action: action}, nil
	}
	x, y, err := parseXY(args)
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", action, err)
	}
	return Command{Action: action, X: x, Y: y}, nil
}

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("want 2 arguments, got %d", len(args))
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// ParseScript reads one command per line. Blank lines and lines starting
// with '#' are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// Apply feeds the command to the game. The returned bool is true when the
// whole board was replaced and must be redrawn.
func Apply(g *mines.Game, cmd Command) (mines.Changes, bool) {
	switch cmd.Action {
	case Reveal:
		return g.PrimaryReveal(cmd.X, cmd.Y), false
	case Flag:
		return g.ToggleFlag(cmd.X, cmd.Y), false
	case Alternate:
		return g.AlternateAction(cmd.X, cmd.Y), false
	case Chord:
		return g.Chord(cmd.X, cmd.Y), false
	case Restart:
		g.Restart()
		return nil, true
	case Grow:
		return nil, g.IncreaseSize()
	case Shrink:
		return nil, g.DecreaseSize()
	default:
		return nil, false
	}
}
