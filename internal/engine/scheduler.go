package engine

import (
	"sort"
	"time"
)

// Timer is a handle to a deferred task.
type Timer interface {
	// Stop cancels the task. It returns false if the task already ran or was
	// already stopped.
	Stop() bool
}

// Scheduler runs a task once after a delay. Implementations must invoke f on
// the same goroutine that drives the engine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualScheduler is a Scheduler driven by an explicit virtual clock.
// Tasks run only from Advance or Flush. It is used by tests and by headless
// replays where no real waiting is wanted.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func (t *manualTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules f to run once the virtual clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTask{at: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks that have neither run nor been stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every task that becomes due
// in time order. Tasks scheduled by running tasks are honored if they fall
// within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.done = true
		next.f()
	}
	s.now = target
	s.compact()
}

// Flush runs tasks until none remain, advancing the clock as needed.
func (s *ManualScheduler) Flush() {
	for {
		next := s.nextDue(-1)
		if next == nil {
			return
		}
		s.Advance(next.at - s.now)
	}
}

// nextDue returns the earliest live task due at or before limit.
// A negative limit means no bound.
func (s *ManualScheduler) nextDue(limit time.Duration) *manualTask {
	var live []*manualTask
	for _, t := range s.tasks {
		if !t.done && (limit < 0 || t.at <= limit) {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

// compact drops finished tasks.
func (s *ManualScheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	s.tasks = live
}
