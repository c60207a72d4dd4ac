package engine

import (
	"sync"
	"time"
)

// Clock creates the tickers that drive the periodic match tasks
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks until stopped; Stop is idempotent
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is backed by the runtime timers
type SystemClock struct{}

// Now returns the wall time with monotonic reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// NewTicker wraps time.NewTicker
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a controllable time source for tests
// Ticks are only delivered from Advance, one at a time, in deadline order
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTicker registers a ticker whose first tick is due one period from now
func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("engine: non-positive ticker period")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{
		clock:  m,
		period: d,
		next:   m.now.Add(d),
		c:      make(chan time.Time),
		done:   make(chan struct{}),
	}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance moves time forward by d, firing every due tick in order
// Each tick is handed over synchronously; a ticker stopped mid-advance receives nothing further
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		at := t.next
		m.now = at
		t.next = t.next.Add(t.period)
		m.mu.Unlock()

		select {
		case t.c <- at:
		case <-t.done:
		}
	}
}

// nextDue returns the earliest ticker due at or before target, registration order on ties
// Caller holds mu
func (m *ManualClock) nextDue(target time.Time) *manualTicker {
	var due *manualTicker
	for _, t := range m.tickers {
		if t.next.After(target) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	return due
}

// Pending returns the number of live tickers
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

func (m *ManualClock) remove(t *manualTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, x := range m.tickers {
		if x == t {
			m.tickers = append(m.tickers[:i], m.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *ManualClock
	period   time.Duration
	next     time.Time // guarded by clock.mu
	c        chan time.Time
	done     chan struct{}
	stopOnce sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.stopOnce.Do(func() {
		t.clock.remove(t)
		close(t.done)
	})
}
