package engine

import "time"

// Config holds the construction-time settings of an Engine.
type Config struct {
	Dimension     int
	WinThreshold  int
	Debounce      time.Duration
	QueueCapacity int
}

// DefaultConfig returns the classic 4x4 board with a 2048 win and the
// standard queue settings.
func DefaultConfig() Config {
	return Config{
		Dimension:     DefaultDimension,
		WinThreshold:  DefaultWinThreshold,
		Debounce:      DefaultDebounce,
		QueueCapacity: DefaultQueueCapacity,
	}
}

// Engine is the entry point used by front-ends: moves go in through
// SubmitMove, board changes come out through the Observer.
type Engine struct {
	controller *Controller
	queue      *Queue
}

// New wires a Controller and a Queue together.
func New(cfg Config, observer Observer, scheduler Scheduler, opts ...Option) *Engine {
	controller := NewController(cfg.Dimension, cfg.WinThreshold, observer, opts...)
	return &Engine{
		controller: controller,
		queue:      NewQueue(controller, scheduler, cfg.Debounce, cfg.QueueCapacity, opts...),
	}
}

// SubmitMove queues a move; see Queue.Submit.
func (e *Engine) SubmitMove(dir Direction, completion Completion) {
	e.queue.Submit(dir, completion)
}

// Reset cancels queued moves, empties the board and zeroes the score.
func (e *Engine) Reset() {
	e.queue.Reset()
	e.controller.Reset()
}

// CancelPending drops queued moves and any pending continuation while keeping
// the board.
func (e *Engine) CancelPending() {
	e.queue.Reset()
}

// Controller exposes the board owner for queries and tile insertion.
func (e *Engine) Controller() *Controller {
	return e.controller
}

// Queue exposes the move queue for inspection.
func (e *Engine) Queue() *Queue {
	return e.queue
}
