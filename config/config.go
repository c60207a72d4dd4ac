// Package config assembles runtime settings from parameter defaults, an optional TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/vmath"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of simulation settings
type Config struct {
	Arena  Arena  `toml:"arena"`
	Zone   Zone   `toml:"zone"`
	Combat Combat `toml:"combat"`
	AI     AI     `toml:"ai"`
	Timing Timing `toml:"timing"`
	Store  Store  `toml:"store"`
	Audio  Audio  `toml:"audio"`
}

// Arena describes the map and player placement
type Arena struct {
	Map          vmath.Rect `toml:"map"`
	PlayerMargin float64    `toml:"player_margin"`
	SpawnMargin  float64    `toml:"spawn_margin"`
	PlayerSpeed  float64    `toml:"player_speed"`
	MaxPlayers   int        `toml:"max_players"`
}

// Zone holds the shrink schedule and damage policy
type Zone struct {
	Radius          float64 `toml:"radius"`
	ShrinkRate      float64 `toml:"shrink_rate"`
	MinRadius       float64 `toml:"min_radius"`
	DamagePerSecond int     `toml:"damage_per_second"`
	StepThreshold   float64 `toml:"step_threshold"`
	StepIncrement   int     `toml:"step_increment"`
}

// Combat holds hit detection settings
type Combat struct {
	HitRadius   float64 `toml:"hit_radius"`
	BulletSpeed float64 `toml:"bullet_speed"`
	TieBreak    string  `toml:"tie_break"`
}

// AI holds movement settings for non-human players
type AI struct {
	Speed      float64 `toml:"speed"`
	HoldRadius float64 `toml:"hold_radius"`
}

// Timing holds the periods of the independent simulation clocks
type Timing struct {
	AITick         Duration `toml:"ai_tick"`
	ZoneTick       Duration `toml:"zone_tick"`
	ClockTick      Duration `toml:"clock_tick"`
	ZoneDamageTick Duration `toml:"zone_damage_tick"`
	Frame          Duration `toml:"frame"`
}

// Store holds collaborator call limits
type Store struct {
	PersistTimeout Duration `toml:"persist_timeout"`
}

// Audio controls combat cues
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Duration decodes TOML strings such as "100ms" into time.Duration
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the reference settings
func Default() Config {
	return Config{
		Arena: Arena{
			Map:          vmath.Rect{Width: parameter.MapWidth, Height: parameter.MapHeight},
			PlayerMargin: parameter.PlayerSize,
			SpawnMargin:  parameter.SpawnMargin,
			PlayerSpeed:  parameter.PlayerSpeed,
			MaxPlayers:   parameter.MaxPlayers,
		},
		Zone: Zone{
			Radius:          parameter.ZoneRadius,
			ShrinkRate:      parameter.ZoneShrinkRate,
			MinRadius:       parameter.ZoneMinRadius,
			DamagePerSecond: parameter.ZoneDamagePerSecond,
			StepThreshold:   parameter.ZoneStepThreshold,
			StepIncrement:   parameter.ZoneStepIncrement,
		},
		Combat: Combat{
			HitRadius:   parameter.HitRadius,
			BulletSpeed: parameter.BulletSpeed,
			TieBreak:    parameter.TieBreakRoster,
		},
		AI: AI{
			Speed:      parameter.AISpeed,
			HoldRadius: parameter.AIHoldRadius,
		},
		Timing: Timing{
			AITick:         Duration{parameter.AITickInterval},
			ZoneTick:       Duration{parameter.ZoneTickInterval},
			ClockTick:      Duration{parameter.ClockTickInterval},
			ZoneDamageTick: Duration{parameter.ZoneDamageTickInterval},
			Frame:          Duration{parameter.FrameUpdateInterval},
		},
		Store: Store{
			PersistTimeout: Duration{parameter.PersistTimeout},
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
	}
}

// Validate reports the first setting that would break the simulation
func (c Config) Validate() error {
	a := c.Arena
	if a.Map.Width <= 0 || a.Map.Height <= 0 {
		return fmt.Errorf("%w: map size %vx%v", ErrInvalidConfig, a.Map.Width, a.Map.Height)
	}
	minSide := min(a.Map.Width, a.Map.Height)
	if a.PlayerMargin < 0 || 2*a.PlayerMargin >= minSide {
		return fmt.Errorf("%w: player margin %v", ErrInvalidConfig, a.PlayerMargin)
	}
	if a.SpawnMargin < a.PlayerMargin || 2*a.SpawnMargin >= minSide {
		return fmt.Errorf("%w: spawn margin %v", ErrInvalidConfig, a.SpawnMargin)
	}
	if a.PlayerSpeed <= 0 {
		return fmt.Errorf("%w: player speed %v", ErrInvalidConfig, a.PlayerSpeed)
	}
	if a.MaxPlayers < 2 {
		return fmt.Errorf("%w: max players %d", ErrInvalidConfig, a.MaxPlayers)
	}

	z := c.Zone
	if z.Radius <= 0 || z.MinRadius <= 0 || z.MinRadius > z.Radius {
		return fmt.Errorf("%w: zone radius %v floor %v", ErrInvalidConfig, z.Radius, z.MinRadius)
	}
	if z.ShrinkRate < 0 {
		return fmt.Errorf("%w: shrink rate %v", ErrInvalidConfig, z.ShrinkRate)
	}
	if z.DamagePerSecond < 0 || z.StepIncrement < 0 {
		return fmt.Errorf("%w: zone damage %d step %d", ErrInvalidConfig, z.DamagePerSecond, z.StepIncrement)
	}

	if c.Combat.HitRadius <= 0 || c.Combat.BulletSpeed <= 0 {
		return fmt.Errorf("%w: hit radius %v bullet speed %v", ErrInvalidConfig, c.Combat.HitRadius, c.Combat.BulletSpeed)
	}
	switch c.Combat.TieBreak {
	case parameter.TieBreakRoster, parameter.TieBreakNearest:
	default:
		return fmt.Errorf("%w: tie break %q", ErrInvalidConfig, c.Combat.TieBreak)
	}

	if c.AI.Speed < 0 || c.AI.HoldRadius < 0 {
		return fmt.Errorf("%w: ai speed %v hold %v", ErrInvalidConfig, c.AI.Speed, c.AI.HoldRadius)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 || c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio volume %v sample rate %d", ErrInvalidConfig, c.Audio.MasterVolume, c.Audio.SampleRate)
	}

	t := c.Timing
	for name, d := range map[string]Duration{
		"ai_tick":          t.AITick,
		"zone_tick":        t.ZoneTick,
		"clock_tick":       t.ClockTick,
		"zone_damage_tick": t.ZoneDamageTick,
		"frame":            t.Frame,
		"persist_timeout":  c.Store.PersistTimeout,
	} {
		if d.Duration <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, d.Duration)
		}
	}
	return nil
}
