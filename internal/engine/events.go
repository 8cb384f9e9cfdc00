package engine

import (
	"sync"

	"github.com/vovakirdan/casual-arcade/internal/core"
)

// Event is emitted by a session to the presentation layer.
type Event interface {
	event()
}

// StateChangedEvent carries the session snapshot after a mutation.
type StateChangedEvent struct {
	Snapshot core.Snapshot
}

func (StateChangedEvent) event() {}

// SessionEndedEvent is emitted exactly once per session when it reaches Ended.
type SessionEndedEvent struct {
	Result core.SessionResult
}

func (SessionEndedEvent) event() {}

// HintKind classifies a hint message for styling.
type HintKind int

const (
	HintInfo HintKind = iota
	HintSuccess
	HintLow     // Guess was below the secret
	HintHigh    // Guess was above the secret
	HintWarning // Accepted but suspicious input, e.g. a repeated guess
	HintError   // Rejected input
)

func (k HintKind) String() string {
	switch k {
	case HintSuccess:
		return "success"
	case HintLow:
		return "low"
	case HintHigh:
		return "high"
	case HintWarning:
		return "warning"
	case HintError:
		return "error"
	default:
		return "info"
	}
}

// HintEvent is a short message for the player.
type HintEvent struct {
	GameID  string
	Message string
	Kind    HintKind
}

func (HintEvent) event() {}

// HistoryAppendedEvent is emitted when a game appends to its history log.
// Entry holds the game's own entry type.
type HistoryAppendedEvent struct {
	GameID string
	Entry  any
}

func (HistoryAppendedEvent) event() {}

// Sink receives session events. Emit is called from the goroutine driving
// the session.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder keeps every event in order.
type Recorder struct {
	Events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Hints returns the recorded hints in order.
func (r *Recorder) Hints() []HintEvent {
	var out []HintEvent
	for _, ev := range r.Events {
		if h, ok := ev.(HintEvent); ok {
			out = append(out, h)
		}
	}
	return out
}

// LastHint returns the most recent hint.
func (r *Recorder) LastHint() (HintEvent, bool) {
	hints := r.Hints()
	if len(hints) == 0 {
		return HintEvent{}, false
	}
	return hints[len(hints)-1], true
}

// HintBeforeEnd returns the last hint recorded before the first
// SessionEndedEvent. It reports false when no session ended or no hint
// came first.
func (r *Recorder) HintBeforeEnd() (HintEvent, bool) {
	var last HintEvent
	var seen bool
	for _, ev := range r.Events {
		switch e := ev.(type) {
		case HintEvent:
			last, seen = e, true
		case SessionEndedEvent:
			return last, seen
		}
	}
	return HintEvent{}, false
}

// Ended returns every SessionEndedEvent result in order.
func (r *Recorder) Ended() []core.SessionResult {
	var out []core.SessionResult
	for _, ev := range r.Events {
		if e, ok := ev.(SessionEndedEvent); ok {
			out = append(out, e.Result)
		}
	}
	return out
}

// History returns every appended history entry in order.
func (r *Recorder) History() []any {
	var out []any
	for _, ev := range r.Events {
		if h, ok := ev.(HistoryAppendedEvent); ok {
			out = append(out, h.Entry)
		}
	}
	return out
}

// Queue buffers events until the presentation layer drains them.
// It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends ev.
func (q *Queue) Emit(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain returns and clears buffered events.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

var (
	_ Sink = (*Recorder)(nil)
	_ Sink = (*Queue)(nil)
)
