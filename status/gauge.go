package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 readable without locks; zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores val
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is a short string readable without locks; zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// MaxLabelLen bounds stored labels so HUD lines stay on one row
const MaxLabelLen = 16

// Store sets the label, truncating to MaxLabelLen
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

// Load returns the current label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
