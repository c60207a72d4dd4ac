package parameter

import "time"

// Terminal driver
const (
	// KeyHoldWindow keeps a direction held after its last key repeat; terminals report no key release
	KeyHoldWindow = 150 * time.Millisecond

	// ToastDuration is how long a notification stays on the bottom row
	ToastDuration = 2 * time.Second

	// InputQueueSize buffers polled terminal events
	InputQueueSize = 256

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal
	MinScreenWidth  = 40
	MinScreenHeight = 10
)

// TracerTailFrames is how many frames of bullet travel the HUD draws behind a tracer
const TracerTailFrames = 4.0
