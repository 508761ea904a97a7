package engine

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Controller, Queue or Engine.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *log.Logger
}

// WithRand sets the random source used to pick insertion cells.
// Seeded sources make insertions reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger enables debug diagnostics (dropped commands, debounce arming).
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
