package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultQueueCapacity is the number of commands that may wait in the queue.
	DefaultQueueCapacity = 100
	// DefaultDebounce is the pause after a board-changing move before the next
	// queued command is applied.
	DefaultDebounce = 300 * time.Millisecond
)

// Completion is invoked exactly once with whether the move changed the board.
type Completion func(changed bool)

// Mover applies a single move. Controller implements it.
type Mover interface {
	PerformMove(dir Direction) bool
}

// QueueState is the observable scheduler state of a Queue.
type QueueState int

const (
	// Idle means no deferred drain is pending; a submission drains at once.
	Idle QueueState = iota
	// DrainScheduled means a debounce continuation is pending.
	DrainScheduled
)

// String returns a human-readable name for the state.
func (s QueueState) String() string {
	switch s {
	case Idle:
		return "idle"
	case DrainScheduled:
		return "drain-scheduled"
	default:
		return "unknown"
	}
}

type moveCommand struct {
	direction  Direction
	completion Completion
}

// Queue serializes move requests in FIFO order. After a move that changes the
// board, draining pauses for the debounce interval; moves that change nothing
// are followed immediately by the next command.
type Queue struct {
	mover     Mover
	scheduler Scheduler
	debounce  time.Duration
	capacity  int
	logger    *log.Logger

	commands   []moveCommand
	pending    Timer
	draining   bool
	generation uint64
}

// NewQueue creates an idle queue. A capacity below 1 selects
// DefaultQueueCapacity and a negative debounce is treated as zero.
func NewQueue(mover Mover, scheduler Scheduler, debounce time.Duration, capacity int, opts ...Option) *Queue {
	o := buildOptions(opts)
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		mover:     mover,
		scheduler: scheduler,
		debounce:  max(debounce, 0),
		capacity:  capacity,
		logger:    o.logger,
	}
}

// Submit enqueues a move. When capacity commands are already waiting the
// move is dropped and completion is never invoked. If the queue is idle the
// command is processed before Submit returns.
func (q *Queue) Submit(dir Direction, completion Completion) {
	if len(q.commands) >= q.capacity {
		q.debug("move dropped, queue full", "direction", dir, "waiting", len(q.commands))
		return
	}

	q.commands = append(q.commands, moveCommand{direction: dir, completion: completion})
	if q.pending == nil && !q.draining {
		q.drain()
	}
}

// drain processes commands until one changes the board or the queue is empty.
func (q *Queue) drain() {
	q.pending = nil
	q.draining = true
	defer func() { q.draining = false }()

	gen := q.generation
	for len(q.commands) > 0 {
		cmd := q.commands[0]
		q.commands[0] = moveCommand{}
		q.commands = q.commands[1:]

		changed := q.mover.PerformMove(cmd.direction)
		if cmd.completion != nil {
			cmd.completion(changed)
		}
		if gen != q.generation {
			// Reset ran inside the completion; only commands submitted after it remain.
			gen = q.generation
			continue
		}
		if changed {
			q.pending = q.scheduler.AfterFunc(q.debounce, func() {
				if gen == q.generation {
					q.drain()
				}
			})
			q.debug("debounce armed", "delay", q.debounce, "waiting", len(q.commands))
			return
		}
	}
}

// Len returns the number of commands waiting to be processed.
func (q *Queue) Len() int {
	return len(q.commands)
}

// Capacity returns the maximum number of waiting commands.
func (q *Queue) Capacity() int {
	return q.capacity
}

// State reports whether a debounce continuation is pending.
func (q *Queue) State() QueueState {
	if q.pending != nil {
		return DrainScheduled
	}
	return Idle
}

// Reset cancels any pending continuation and discards waiting commands
// without invoking their completions.
func (q *Queue) Reset() {
	q.generation++
	if q.pending != nil {
		q.pending.Stop()
		q.pending = nil
		q.debug("debounce cancelled")
	}
	clear(q.commands)
	q.commands = q.commands[:0]
}

func (q *Queue) debug(msg string, keyvals ...any) {
	if q.logger != nil {
		q.logger.Debug(msg, keyvals...)
	}
}
