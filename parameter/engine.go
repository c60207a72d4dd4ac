package parameter

import "time"

// Simulation clocks
const (
	// AITickInterval drives AI movement followed by the termination check
	AITickInterval = 100 * time.Millisecond

	// ZoneTickInterval drives zone shrink
	ZoneTickInterval = 1 * time.Second

	// ClockTickInterval drives the elapsed-seconds counter
	ClockTickInterval = 1 * time.Second

	// ZoneDamageTickInterval drives damage-over-time for the human player outside the zone
	ZoneDamageTickInterval = 1 * time.Second

	// FrameUpdateInterval is the external frame loop rate (~60 FPS) that drives movement and tracers
	FrameUpdateInterval = 16 * time.Millisecond
)

// Engine plumbing
const (
	// CommandQueueSize is the capacity of the engine command channel
	CommandQueueSize = 64

	// EventQueueSize is the capacity of the notification channel, overflow is dropped
	EventQueueSize = 128

	// PersistTimeout bounds a single store call made on match end
	PersistTimeout = 3 * time.Second
)

// Headless runs
const (
	// HeadlessLimit caps simulated time for a headless match
	HeadlessLimit = time.Hour

	// HeadlessShotEvery is the number of AI ticks between autopilot shots
	HeadlessShotEvery = 10
)
