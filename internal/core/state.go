// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Status is the lifecycle state of a game session.
type Status int

const (
	StatusIdle   Status = iota // Created, not started
	StatusActive               // Accepting input and ticks
	StatusPaused               // Frozen; only the pause toggle is accepted
	StatusEnded                // Terminal; a new session must be started
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusActive:
		return "Active"
	case StatusPaused:
		return "Paused"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether a session may move from one status to another
// within a single play-through. Starting a new session is not a transition:
// it replaces the session and is always allowed.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusIdle:
		return to == StatusActive
	case StatusActive:
		return to == StatusPaused || to == StatusEnded
	case StatusPaused:
		return to == StatusActive || to == StatusEnded
	default:
		return false
	}
}

// Snapshot is the game-agnostic view of a session emitted on every state change.
// Game packages expose richer typed state through their own State() methods.
type Snapshot struct {
	GameID    string
	Status    Status
	Score     int  // Points, clicks, moves, attempts or rounds won depending on the game
	Remaining int  // Lives, seconds or attempts left; 0 when the game has no budget
	Accepting bool // Whether input commands are currently accepted
}

// SessionResult is emitted once when a session reaches Ended.
type SessionResult struct {
	GameID     string
	FinalScore int
	Won        *bool // nil when the game has no win/lose notion or was ended by force

	Recorded  bool // Whether the result was offered to the record keeper
	NewRecord bool // Whether it strictly improved the stored record
	Persisted bool // Whether the new record reached the store
	Best      int  // Best known record after reconciliation
	HasBest   bool // False when no record exists for the game
}

// Bool returns a pointer to b, for SessionResult.Won.
func Bool(b bool) *bool {
	return &b
}
