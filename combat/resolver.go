// Package combat resolves hit-scan shots and advances tracer bullets
package combat

import (
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/vmath"
)

// OutcomeKind classifies a shot result
type OutcomeKind uint8

const (
	OutcomeMiss OutcomeKind = iota
	OutcomeHit
	OutcomeKill
	OutcomeIneffective
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeKill:
		return "kill"
	case OutcomeIneffective:
		return "ineffective"
	default:
		return "unknown"
	}
}

// IneffectiveReason explains why a shot did nothing
type IneffectiveReason uint8

const (
	ReasonNone IneffectiveReason = iota
	ReasonShooterDead
	ReasonNoAmmo
)

func (r IneffectiveReason) String() string {
	switch r {
	case ReasonShooterDead:
		return "shooter dead"
	case ReasonNoAmmo:
		return "no ammo"
	default:
		return ""
	}
}

// Outcome is the result of one shot
type Outcome struct {
	Kind     OutcomeKind
	TargetID entity.PlayerID
	Damage   int // nominal weapon damage on hit or kill
	Reason   IneffectiveReason
}

// Effective reports whether the shot consumed ammo
func (o Outcome) Effective() bool {
	return o.Kind != OutcomeIneffective
}

// Resolver applies the hit-scan rule for a single shot
type Resolver struct {
	hitRadius float64
	nearest   bool
}

// NewResolver builds a resolver from combat settings
func NewResolver(cfg config.Combat) *Resolver {
	return &Resolver{
		hitRadius: cfg.HitRadius,
		nearest:   cfg.TieBreak == parameter.TieBreakNearest,
	}
}

// ResolveShot scans the other alive players for one strictly within the hit radius of target
// Mutates target health/alive, shooter kills and shooter ammo
func (r *Resolver) ResolveShot(shooter *entity.Player, target vmath.Vec2, roster []*entity.Player) Outcome {
	if !shooter.Alive {
		return Outcome{Kind: OutcomeIneffective, Reason: ReasonShooterDead}
	}
	if shooter.Ammo <= 0 {
		return Outcome{Kind: OutcomeIneffective, Reason: ReasonNoAmmo}
	}

	victim := r.pick(shooter, target, roster)
	shooter.ConsumeAmmo()

	if victim == nil {
		return Outcome{Kind: OutcomeMiss}
	}

	damage := shooter.Weapon.Damage
	if _, killed := victim.ApplyDamage(damage); killed {
		shooter.Kills++
		return Outcome{Kind: OutcomeKill, TargetID: victim.ID, Damage: damage}
	}
	return Outcome{Kind: OutcomeHit, TargetID: victim.ID, Damage: damage}
}

// pick returns the candidate chosen by the tie-break policy, nil on miss
func (r *Resolver) pick(shooter *entity.Player, target vmath.Vec2, roster []*entity.Player) *entity.Player {
	var best *entity.Player
	bestDist := 0.0
	for _, p := range roster {
		if p.ID == shooter.ID || !p.Alive {
			continue
		}
		d := vmath.Distance(p.Position, target)
		if d >= r.hitRadius {
			continue
		}
		if !r.nearest {
			return p
		}
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
