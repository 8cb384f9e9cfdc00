// Package engine provides the pieces every game session shares: the
// Idle/Active/Paused/Ended status machine, owner-tagged deferred callbacks,
// event emission and record reconciliation at the end of a session.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/sched"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

// Env holds the collaborators of a session. Zero fields are filled with
// in-memory defaults by Base.Init.
type Env struct {
	Sched   *sched.Scheduler
	Sink    Sink
	Records *record.Keeper
	Rand    *rng.Rand
	Logger  *log.Logger
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Sched == nil {
		e.Sched = sched.New()
	}
	if e.Sink == nil {
		e.Sink = Discard
	}
	if e.Records == nil {
		e.Records = record.NewKeeper(storage.NewMemoryStore(), e.Logger)
	}
	if e.Rand == nil {
		e.Rand = rng.New(0)
	}
	return e
}

// Base is embedded by every game session.
type Base struct {
	gameID string
	env    Env
	status core.Status
	owner  sched.Owner
	result core.SessionResult
}

// Init binds the session to its game id and collaborators. The session
// starts Idle.
func (b *Base) Init(gameID string, env Env) {
	b.gameID = gameID
	b.env = env.withDefaults()
	b.status = core.StatusIdle
}

// ID returns the game id.
func (b *Base) ID() string { return b.gameID }

// Status returns the session status.
func (b *Base) Status() core.Status { return b.status }

// Active reports whether the session accepts input and ticks.
func (b *Base) Active() bool { return b.status == core.StatusActive }

// Ended reports whether the session reached its terminal state.
func (b *Base) Ended() bool { return b.status == core.StatusEnded }

// Rand returns the session's random source.
func (b *Base) Rand() *rng.Rand { return b.env.Rand }

// Logger returns the session's logger.
func (b *Base) Logger() *log.Logger { return b.env.Logger }

// Records returns the record keeper.
func (b *Base) Records() *record.Keeper { return b.env.Records }

// Result returns the terminal result once the session has ended.
func (b *Base) Result() (core.SessionResult, bool) {
	return b.result, b.status == core.StatusEnded
}

// Begin starts a new session from any status. Callbacks scheduled by the
// superseded session are cancelled.
func (b *Base) Begin() {
	if b.owner != 0 {
		if n := b.env.Sched.Cancel(b.owner); n > 0 {
			b.env.Logger.Debug("cancelled stale callbacks", "game", b.gameID, "count", n)
		}
	}
	b.owner = b.env.Sched.NewOwner()
	b.result = core.SessionResult{}
	b.status = core.StatusActive
}

// After runs fn once d has elapsed, unless the session has been restarted
// in the meantime.
func (b *Base) After(d time.Duration, fn func()) {
	owner := b.owner
	b.env.Sched.After(owner, d, func() {
		if owner != b.owner {
			b.env.Logger.Debug("dropped stale callback", "game", b.gameID)
			return
		}
		fn()
	})
}

// Pending returns the number of callbacks scheduled by the current session.
func (b *Base) Pending() int {
	return b.env.Sched.Pending(b.owner)
}

// SetPaused moves between Active and Paused. It returns false unless the
// session is Active or Paused; only Begin leaves Idle.
func (b *Base) SetPaused(paused bool) bool {
	if b.status != core.StatusActive && b.status != core.StatusPaused {
		return false
	}
	to := core.StatusActive
	if paused {
		to = core.StatusPaused
	}
	if b.status == to || !core.CanTransition(b.status, to) {
		return false
	}
	b.status = to
	return true
}

// Finish ends the session with score. When rec is set the score is offered
// to the record keeper. Finish is a no-op once the session has ended.
func (b *Base) Finish(score int, won *bool, rec bool) core.SessionResult {
	if !core.CanTransition(b.status, core.StatusEnded) {
		return b.result
	}
	b.status = core.StatusEnded
	b.env.Sched.Cancel(b.owner)

	res := core.SessionResult{
		GameID:     b.gameID,
		FinalScore: score,
		Won:        won,
	}
	if rec {
		out := b.env.Records.Reconcile(b.gameID, score)
		res.Recorded = true
		res.NewRecord = out.NewRecord
		res.Persisted = out.Persisted
		res.Best, res.HasBest = out.Best, out.HasBest
	} else {
		res.Best, res.HasBest = b.env.Records.Best(b.gameID)
	}
	b.result = res

	b.env.Logger.Debug("session ended", "game", b.gameID, "score", score, "new_record", res.NewRecord)
	b.env.Sink.Emit(SessionEndedEvent{Result: res})
	return res
}

// Abort forces the session to end without a verdict or record.
func (b *Base) Abort(score int) core.SessionResult {
	return b.Finish(score, nil, false)
}

// EmitState publishes snap.
func (b *Base) EmitState(snap core.Snapshot) {
	b.env.Sink.Emit(StateChangedEvent{Snapshot: snap})
}

// Hint publishes a message for the player.
func (b *Base) Hint(msg string, kind HintKind) {
	b.env.Sink.Emit(HintEvent{GameID: b.gameID, Message: msg, Kind: kind})
}

// AppendHistory publishes a new history entry.
func (b *Base) AppendHistory(entry any) {
	b.env.Sink.Emit(HistoryAppendedEvent{GameID: b.gameID, Entry: entry})
}

// Snap builds the game-agnostic snapshot for the current status.
func (b *Base) Snap(score, remaining int, accepting bool) core.Snapshot {
	return core.Snapshot{
		GameID:    b.gameID,
		Status:    b.status,
		Score:     score,
		Remaining: remaining,
		Accepting: accepting && b.status == core.StatusActive,
	}
}
