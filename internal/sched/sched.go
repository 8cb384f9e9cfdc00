// Package sched implements the cooperative, single-threaded scheduler that
// drives deferred game transitions (reveal delays, collision flashes).
//
// Time is virtual: it only moves when the driver calls Advance, so the same
// sequence of Advance calls always fires the same callbacks in the same order.
// Every callback belongs to an Owner; cancelling an owner drops all of its
// pending callbacks, which is how a restarted session discards the timers of
// the session it replaced.
package sched

import (
	"container/heap"
	"time"
)

// Owner identifies the session a callback belongs to.
type Owner uint64

// TimerID identifies a single scheduled callback.
type TimerID uint64

type timer struct {
	id    TimerID
	owner Owner
	due   time.Duration
	fn    func()
	index int
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].id < q[j].id
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is a virtual-clock event queue. It is not safe for concurrent use;
// one scheduler serves one presentation context.
type Scheduler struct {
	now       time.Duration
	nextID    TimerID
	nextOwner Owner
	queue     timerQueue
}

// New creates an empty scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// NewOwner allocates a fresh owner token.
func (s *Scheduler) NewOwner() Owner {
	s.nextOwner++
	return s.nextOwner
}

// After schedules fn to run once d has elapsed on the virtual clock.
// Negative delays are treated as zero; a zero delay still waits for the next Advance.
func (s *Scheduler) After(owner Owner, d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	heap.Push(&s.queue, &timer{
		id:    s.nextID,
		owner: owner,
		due:   s.now + d,
		fn:    fn,
	})
	return s.nextID
}

// Cancel drops every pending callback of owner and returns how many were dropped.
func (s *Scheduler) Cancel(owner Owner) int {
	kept := s.queue[:0]
	dropped := 0
	for _, t := range s.queue {
		if t.owner == owner {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = kept
	for i, t := range s.queue {
		t.index = i
	}
	heap.Init(&s.queue)
	return dropped
}

// Pending returns the number of callbacks still waiting for owner.
func (s *Scheduler) Pending(owner Owner) int {
	n := 0
	for _, t := range s.queue {
		if t.owner == owner {
			n++
		}
	}
	return n
}

// Len returns the total number of pending callbacks.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Advance moves the virtual clock forward by d, running every callback that
// becomes due in (due, scheduling) order. Callbacks scheduled while advancing
// run in the same call if they fall due within the window.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		s.now = t.due
		t.fn()
		fired++
	}
	s.now = target
	return fired
}
