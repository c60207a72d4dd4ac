package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
)

// Cue is a short combat sound
type Cue int

const (
	CueGunshot Cue = iota
	CueDryFire
	CueHit
	CueKill
	CueZoneDamage
	CueMatchStart
	CueVictory
	CueDefeat
	cueCount
)

var cueNames = [cueCount]string{"gunshot", "dry_fire", "hit", "kill", "zone_damage", "match_start", "victory", "defeat"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps an engine notification to a cue; human decides victory or defeat
// Zone shrink and persistence events are silent
func CueFor(ev engine.Event, human entity.PlayerID) (Cue, bool) {
	switch ev.Kind {
	case engine.EventMatchStarted:
		return CueMatchStart, true
	case engine.EventShotFired:
		return CueGunshot, true
	case engine.EventShotIneffective:
		return CueDryFire, true
	case engine.EventHit:
		return CueHit, true
	case engine.EventKill:
		return CueKill, true
	case engine.EventZoneDamage:
		return CueZoneDamage, true
	case engine.EventMatchEnded:
		if ev.PlayerID != 0 && ev.PlayerID == human {
			return CueVictory, true
		}
		return CueDefeat, true
	default:
		return 0, false
	}
}

// Build synthesizes cue at rate; the result is finite
func Build(c Cue, rate beep.SampleRate) beep.Streamer {
	a, r := parameter.CueAttack, parameter.CueRelease
	switch c {
	case CueGunshot:
		d := parameter.GunshotDuration
		crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, a/5, d-a, rate)
		thump := NewEnvelope(NewOscillator(90, d, WaveSine, rate), d, a, r, rate)
		return beep.Take(rate.N(d), beep.Mix(newVolume(crack, 0.6), newVolume(thump, 0.4)))
	case CueDryFire:
		d := parameter.HitDuration / 3
		return newVolume(NewEnvelope(NewOscillator(2400, d, WaveSquare, rate), d, 0, d/2, rate), 0.2)
	case CueHit:
		d := parameter.HitDuration
		return newVolume(NewEnvelope(NewOscillator(660, d, WaveSquare, rate), d, a, r, rate), 0.35)
	case CueKill:
		d := parameter.KillNoteDuration
		n1 := NewEnvelope(NewOscillator(523.25, d, WaveSquare, rate), d, a, r, rate)
		n2 := NewEnvelope(NewOscillator(783.99, d, WaveSquare, rate), d, a, r, rate)
		return newVolume(beep.Seq(n1, n2), 0.35)
	case CueZoneDamage:
		d := parameter.ZoneBuzzDuration
		return newVolume(NewEnvelope(NewOscillator(110, d, WaveSaw, rate), d, a, r, rate), 0.3)
	case CueMatchStart:
		return fanfare(rate, 392, 523.25, 659.25)
	case CueVictory:
		return fanfare(rate, 523.25, 659.25, 783.99, 1046.5)
	case CueDefeat:
		return fanfare(rate, 392, 349.23, 293.66)
	default:
		return nil
	}
}

// fanfare plays sine notes in sequence
func fanfare(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	d := parameter.FanfareNote
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			// Frequency above Nyquist for this rate, fall back to the local oscillator
			tone = NewOscillator(f, d, WaveSine, rate)
		}
		notes = append(notes, NewEnvelope(beep.Take(rate.N(d), tone), d, parameter.CueAttack, parameter.CueRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3)
}
