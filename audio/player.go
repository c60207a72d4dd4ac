// Package audio synthesizes combat cues and plays them through the system speaker
package audio

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
)

// Player mixes cues into a single stream
// Without Start the mixer is only advanced by whoever streams it, which tests do directly
type Player struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	logger *log.Logger

	mu    sync.Mutex
	live  bool
	muted atomic.Bool
	cache [cueCount][][2]float64 // rendered cues
}

// NewPlayer prepares a silent player; cues render lazily
func NewPlayer(cfg config.Audio, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and begins playback
// Failure leaves the player silent; callers may ignore the error
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferWindow)); err != nil {
		p.logger.Printf("[AUDIO] speaker init failed, running silent: %v", err)
		return err
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Close stops playback; the player stays usable as a silent sink
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.live = false
}

// SetMuted toggles playback of new cues
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether new cues are dropped
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Notify plays the cue for ev, if any
func (p *Player) Notify(ev engine.Event, human entity.PlayerID) {
	if c, ok := CueFor(ev, human); ok {
		p.Play(c)
	}
}

// Play queues c on the mixer; dropped when muted or too many voices overlap
func (p *Player) Play(c Cue) {
	if p.muted.Load() || c < 0 || c >= cueCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.render(c)
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		return
	}
	p.mixer.Add(newVolume(&sampleStreamer{samples: buf}, p.volume))
}

// render synthesizes c once and caches the samples; caller holds mu
func (p *Player) render(c Cue) [][2]float64 {
	if buf := p.cache[c]; buf != nil {
		return buf
	}
	s := Build(c, p.rate)
	var buf [][2]float64
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		buf = append(buf, chunk[:n]...)
		if !ok {
			break
		}
	}
	p.cache[c] = buf
	return buf
}

// Active returns the number of cues still playing
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Stream pulls mixed samples directly; only meaningful when not started
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

// sampleStreamer replays a rendered buffer
type sampleStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sampleStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(out, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }
