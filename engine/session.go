package engine

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle state of a match
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the complete mutable state of one match
// It is owned by a single goroutine; Step and the lifecycle methods are not safe for concurrent use
type Session struct {
	Rules   Rules
	Actors  [2]*Actor // Indexed by Side
	Phase   Phase
	Winner  Side // Valid only in PhaseGameOver
	Frame   int64
	MatchID uuid.UUID

	Clock *PausableClock
}

// NewSession creates a running match with both actors at their start positions
func NewSession(rules Rules, provider TimeProvider) *Session {
	s := &Session{
		Rules: rules,
		Clock: NewPausableClock(provider),
	}
	s.reset()
	return s
}

// reset discards both actors and recreates them
func (s *Session) reset() {
	s.Actors = [2]*Actor{
		newActor(SideLeft, s.Rules),
		newActor(SideRight, s.Rules),
	}
	s.Phase = PhaseRunning
	s.Winner = SideLeft
	s.Frame = 0
	s.MatchID = uuid.New()
}

// Actor returns the actor on the given side
func (s *Session) Actor(side Side) *Actor {
	return s.Actors[side]
}

// Left returns Player 1
func (s *Session) Left() *Actor {
	return s.Actors[SideLeft]
}

// Right returns Player 2
func (s *Session) Right() *Actor {
	return s.Actors[SideRight]
}

// Restart begins a new match from any phase
func (s *Session) Restart() {
	s.reset()
	s.Clock.Reset()
}

// TogglePause switches between Running and Paused
// Returns false when the phase does not allow pausing (game over)
func (s *Session) TogglePause() bool {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhasePaused
		s.Clock.Pause()
		return true
	case PhasePaused:
		s.Phase = PhaseRunning
		s.Clock.Resume()
		return true
	default:
		return false
	}
}

// IsRunning reports whether the simulation advances on Step
func (s *Session) IsRunning() bool {
	return s.Phase == PhaseRunning
}

// Elapsed returns match time excluding pauses
func (s *Session) Elapsed() time.Duration {
	return s.Clock.Elapsed()
}

// finish ends the match in favor of winner
func (s *Session) finish(winner Side) {
	s.Phase = PhaseGameOver
	s.Winner = winner
	s.Clock.Pause()
}
