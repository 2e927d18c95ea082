package mines

import (
	"strconv"
	"time"
)

type Phase uint8

const (
	Start Phase = iota
	Playing
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// GameState is the phase of a game plus its timing data. StartedAt is set
// while Playing, Elapsed once the game is Won or Lost.
type GameState struct {
	Phase     Phase
	StartedAt time.Time
	Elapsed   time.Duration
}

func (s GameState) Over() bool {
	return s.Phase == Won || s.Phase == Lost
}

// ElapsedAt is the play time as seen at now.
func (s GameState) ElapsedAt(now time.Time) time.Duration {
	switch s.Phase {
	case Playing:
		return now.Sub(s.StartedAt)
	case Won, Lost:
		return s.Elapsed
	default:
		return 0
	}
}

func playing(now time.Time) GameState {
	return GameState{Phase: Playing, StartedAt: now}
}

func (s GameState) finish(p Phase, now time.Time) GameState {
	return GameState{Phase: p, StartedAt: s.StartedAt, Elapsed: now.Sub(s.StartedAt)}
}
