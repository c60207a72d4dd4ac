package engine

import (
	"io"
	"log"
	"math/rand"

	"github.com/lixenwraith/zone-royale/status"
)

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the system clock, tests pass a ManualClock
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger routes engine logs to l
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand fixes the spawn position source
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed is WithRand over a source seeded with seed
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithStatus shares a metrics registry with other components
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) { e.status = r }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
