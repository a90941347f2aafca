package engine

import "github.com/pkg/errors"

// SessionState is the finite game state machine
type SessionState uint8

const (
	StateMenu SessionState = iota
	StatePlaying
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition is returned for a transition the state machine does not allow
var ErrInvalidTransition = errors.New("invalid session transition")

// transitions lists allowed edges; reset into Playing is allowed from every state
var transitions = map[SessionState][]SessionState{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StatePlaying, StateGameOver, StateMenu},
	StateGameOver: {StatePlaying, StateMenu},
}

// CanTransition reports whether from -> to is allowed
func CanTransition(from, to SessionState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// checkTransition wraps ErrInvalidTransition with the offending edge
func checkTransition(from, to SessionState) error {
	if !CanTransition(from, to) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}

// Snapshot is the externally observable session summary
type Snapshot struct {
	State    SessionState
	Score    int64
	Distance float64
	Shield   bool
}
