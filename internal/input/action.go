package input

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	Noop Action = iota
	Reveal
	Flag
	Alternate
	Chord
	Restart
	Grow
	Shrink
	lastAction
)

var actionNames = [...]string{
	Noop:      "noop",
	Reveal:    "reveal",
	Flag:      "flag",
	Alternate: "alternate",
	Chord:     "chord",
	Restart:   "restart",
	Grow:      "grow",
	Shrink:    "shrink",
}

// short command words of the text protocol
var actionWords = map[string]Action{
	"g": Noop,
	"o": Reveal,
	"f": Flag,
	"a": Alternate,
	"c": Chord,
	"r": Restart,
	"+": Grow,
	"-": Shrink,
}

func (a Action) String() string {
	if a < lastAction {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Positional actions take a tile coordinate.
func (a Action) Positional() bool {
	switch a {
	case Reveal, Flag, Alternate, Chord:
		return true
	}
	return false
}

var ErrBadAction error

func init() {
	var allowed []string
	for a := Noop; a < lastAction; a++ {
		allowed = append(allowed, "'"+a.String()+"'")
	}
	ErrBadAction = fmt.Errorf("action must be one of %s", strings.Join(allowed, ", "))
}

// ParseAction accepts both the long names and the one-letter words.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if a, ok := actionWords[s]; ok {
		return a, nil
	}
	for a := Noop; a < lastAction; a++ {
		if s == actionNames[a] {
			return a, nil
		}
	}
	return Noop, ErrBadAction
}
