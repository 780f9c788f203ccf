package session

import (
	"container/heap"
	"time"
)

// Scheduler is the deferred-event queue of a session.
//
// Every event is tagged with the generation that was current when it was
// queued. Invalidate bumps the generation, which turns every queued event
// into a no-op even if it is already due. Time is the session clock
// reported by the tick driver, not the wall clock.
type Scheduler struct {
	gen   uint64
	seq   uint64
	now   time.Duration
	queue eventQueue
}

type deferred struct {
	due time.Duration
	gen uint64
	seq uint64
	fn  func()
}

// NewScheduler creates an empty scheduler at generation 1.
func NewScheduler() *Scheduler {
	return &Scheduler{gen: 1}
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Invalidate starts a new generation and returns it.
func (s *Scheduler) Invalidate() uint64 {
	s.gen++
	return s.gen
}

// Now returns the time of the last RunDue call.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After queues fn to run once the session clock reaches now+d.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.seq++
	heap.Push(&s.queue, deferred{due: s.now + max(d, 0), gen: s.gen, seq: s.seq, fn: fn})
}

// RunDue advances the clock to now and runs every event that is due, in
// due-time order. Stale events are discarded. Returns the number of
// callbacks that ran.
func (s *Scheduler) RunDue(now time.Duration) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].due <= s.now {
		ev := heap.Pop(&s.queue).(deferred)
		if ev.gen != s.gen {
			continue
		}
		ev.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued events, stale ones included.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Clear drops every queued event and rewinds the clock.
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
	s.now = 0
}

type eventQueue []deferred

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(deferred)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = deferred{}
	*q = old[:n-1]
	return ev
}
