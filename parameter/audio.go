package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5
	AudioBufferWindow = 100 * time.Millisecond
	AudioMaxVoices    = 8
)

// Cue durations
const (
	GunshotDuration   = 90 * time.Millisecond
	HitDuration       = 70 * time.Millisecond
	KillNoteDuration  = 90 * time.Millisecond
	ZoneBuzzDuration  = 160 * time.Millisecond
	ZoneSweepDuration = 400 * time.Millisecond
	FanfareNote       = 120 * time.Millisecond
	CueAttack         = 5 * time.Millisecond
	CueRelease        = 40 * time.Millisecond
)
