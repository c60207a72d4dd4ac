// Package status holds named atomic metrics shared by the engine and the HUD
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names written by the engine
const (
	TicksAI       = "engine.ticks.ai"
	TicksZone     = "engine.ticks.zone"
	TicksClock    = "engine.ticks.clock"
	TicksDamage   = "engine.ticks.damage"
	Matches       = "engine.matches"
	State         = "engine.state"
	Shots         = "combat.shots"
	Hits          = "combat.hits"
	Kills         = "combat.kills"
	ZoneRadius    = "zone.radius"
	StoreFailures = "store.failures"
)

// Registry groups counters, gauges and labels
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
	Labels   *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
		Labels:   NewMetricMap[Label](),
	}
}

// Counter is shorthand for Counters.Get
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge is shorthand for Gauges.Get
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// Label is shorthand for Labels.Get
func (r *Registry) Label(name string) *Label {
	return r.Labels.Get(name)
}

// Len returns the number of metrics across all kinds
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len() + r.Labels.Len()
}

// Line renders every metric as "name=value" pairs, labels first
func (r *Registry) Line() string {
	var parts []string
	r.Labels.Range(func(name string, l *Label) {
		parts = append(parts, name+"="+l.Load())
	})
	r.Counters.Range(func(name string, c *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", name, c.Load()))
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", name, g.Get()))
	})
	return strings.Join(parts, " ")
}
