package combat

import (
	"testing"

	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/vmath"
)

func newShooter(damage, ammo int) *entity.Player {
	return &entity.Player{
		ID:       1,
		Name:     "shooter",
		Health:   100,
		Alive:    true,
		Ammo:     ammo,
		Weapon:   entity.Weapon{Type: entity.WeaponRifle, Damage: damage, Capacity: 30},
		Human:    true,
		Position: vmath.Vec2{X: 0, Y: 0},
	}
}

func newTarget(id entity.PlayerID, health int, pos vmath.Vec2) *entity.Player {
	return &entity.Player{ID: id, Health: health, Alive: health > 0, Position: pos}
}

func defaultResolver() *Resolver {
	return NewResolver(config.Default().Combat)
}

// Scenario B
func TestResolveShotKillsLowHealthTarget(t *testing.T) {
	shooter := newShooter(50, 10)
	target := newTarget(2, 30, vmath.Vec2{X: 100, Y: 100})
	roster := []*entity.Player{shooter, target}

	out := defaultResolver().ResolveShot(shooter, vmath.Vec2{X: 100, Y: 100}, roster)

	if out.Kind != OutcomeKill || out.TargetID != 2 || out.Damage != 50 {
		t.Fatalf("outcome = %+v, want kill of 2 for 50", out)
	}
	if target.Health != 0 || target.Alive {
		t.Errorf("target = health %d alive %v, want 0 false", target.Health, target.Alive)
	}
	if shooter.Kills != 1 {
		t.Errorf("shooter kills = %d, want 1", shooter.Kills)
	}
	if shooter.Ammo != 9 {
		t.Errorf("shooter ammo = %d, want 9", shooter.Ammo)
	}
}

func TestResolveShotHitWithoutKill(t *testing.T) {
	shooter := newShooter(25, 5)
	target := newTarget(2, 100, vmath.Vec2{X: 50, Y: 50})

	out := defaultResolver().ResolveShot(shooter, vmath.Vec2{X: 60, Y: 50}, []*entity.Player{shooter, target})

	if out.Kind != OutcomeHit || out.TargetID != 2 {
		t.Fatalf("outcome = %+v, want hit on 2", out)
	}
	if target.Health != 75 || !target.Alive {
		t.Errorf("target = health %d alive %v, want 75 true", target.Health, target.Alive)
	}
	if shooter.Kills != 0 {
		t.Errorf("kills = %d, want 0", shooter.Kills)
	}
}

func TestResolveShotMissStillConsumesAmmo(t *testing.T) {
	shooter := newShooter(25, 2)
	target := newTarget(2, 100, vmath.Vec2{X: 500, Y: 500})

	out := defaultResolver().ResolveShot(shooter, vmath.Vec2{X: 10, Y: 10}, []*entity.Player{shooter, target})

	if out.Kind != OutcomeMiss {
		t.Fatalf("outcome = %+v, want miss", out)
	}
	if shooter.Ammo != 1 {
		t.Errorf("ammo = %d, want 1", shooter.Ammo)
	}
	if target.Health != 100 {
		t.Errorf("target health = %d, want untouched 100", target.Health)
	}
}

func TestResolveShotHitRadiusIsStrict(t *testing.T) {
	shooter := newShooter(25, 5)
	target := newTarget(2, 100, vmath.Vec2{X: 130, Y: 100})

	out := defaultResolver().ResolveShot(shooter, vmath.Vec2{X: 100, Y: 100}, []*entity.Player{shooter, target})
	if out.Kind != OutcomeMiss {
		t.Errorf("target at exactly hit radius: outcome = %v, want miss", out.Kind)
	}
}

// Scenario E
func TestResolveShotWithoutAmmoIsIneffective(t *testing.T) {
	shooter := newShooter(25, 0)
	target := newTarget(2, 100, vmath.Vec2{X: 10, Y: 10})
	roster := []*entity.Player{shooter, target}

	out := defaultResolver().ResolveShot(shooter, target.Position, roster)

	if out.Kind != OutcomeIneffective || out.Reason != ReasonNoAmmo {
		t.Fatalf("outcome = %+v, want ineffective/no ammo", out)
	}
	if out.Effective() {
		t.Error("Effective() = true for ineffective shot")
	}
	for _, p := range roster {
		if p.Health != 100 {
			t.Errorf("player %d health = %d, want 100", p.ID, p.Health)
		}
	}
	if shooter.Ammo != 0 {
		t.Errorf("ammo = %d, want 0", shooter.Ammo)
	}
}

func TestResolveShotDeadShooterIsIneffective(t *testing.T) {
	shooter := newShooter(25, 5)
	shooter.Health, shooter.Alive = 0, false
	target := newTarget(2, 100, vmath.Vec2{X: 10, Y: 10})

	out := defaultResolver().ResolveShot(shooter, target.Position, []*entity.Player{shooter, target})
	if out.Kind != OutcomeIneffective || out.Reason != ReasonShooterDead {
		t.Fatalf("outcome = %+v, want ineffective/shooter dead", out)
	}
	if shooter.Ammo != 5 {
		t.Errorf("ammo = %d, want 5 unchanged", shooter.Ammo)
	}
}

func TestResolveShotIgnoresSelfAndDead(t *testing.T) {
	shooter := newShooter(25, 5)
	shooter.Position = vmath.Vec2{X: 100, Y: 100}
	corpse := newTarget(2, 0, vmath.Vec2{X: 100, Y: 100})

	out := defaultResolver().ResolveShot(shooter, vmath.Vec2{X: 100, Y: 100}, []*entity.Player{shooter, corpse})
	if out.Kind != OutcomeMiss {
		t.Errorf("outcome = %v, want miss when only self and dead are in range", out.Kind)
	}
	if shooter.Health != 100 {
		t.Errorf("shooter health = %d, shooter must not hit itself", shooter.Health)
	}
}

func TestResolveShotAmmoNeverNegative(t *testing.T) {
	shooter := newShooter(25, 3)
	r := defaultResolver()
	for i := 0; i < 10; i++ {
		r.ResolveShot(shooter, vmath.Vec2{X: 1, Y: 1}, []*entity.Player{shooter})
		if shooter.Ammo < 0 {
			t.Fatalf("ammo went negative after %d shots", i+1)
		}
	}
	if shooter.Ammo != 0 {
		t.Errorf("ammo = %d, want 0", shooter.Ammo)
	}
}

func TestTieBreakPolicies(t *testing.T) {
	far := newTarget(2, 100, vmath.Vec2{X: 120, Y: 100})  // 20 from target, first in roster
	near := newTarget(3, 100, vmath.Vec2{X: 102, Y: 100}) // 2 from target

	tests := []struct {
		policy string
		want   entity.PlayerID
	}{
		{parameter.TieBreakRoster, 2},
		{parameter.TieBreakNearest, 3},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			cfg := config.Default().Combat
			cfg.TieBreak = tt.policy
			shooter := newShooter(10, 5)
			a, b := *far, *near
			roster := []*entity.Player{shooter, &a, &b}

			out := NewResolver(cfg).ResolveShot(shooter, vmath.Vec2{X: 100, Y: 100}, roster)
			if out.TargetID != tt.want {
				t.Errorf("policy %s hit %d, want %d", tt.policy, out.TargetID, tt.want)
			}
		})
	}
}

func TestAdvanceBulletsDropsLeavingBounds(t *testing.T) {
	bounds := vmath.Rect{Width: 100, Height: 100}
	bullets := []entity.Bullet{
		{OwnerID: 1, Position: vmath.Vec2{X: 50, Y: 50}, Velocity: vmath.Vec2{X: 8, Y: 0}, Damage: 25},
		{OwnerID: 1, Position: vmath.Vec2{X: 95, Y: 50}, Velocity: vmath.Vec2{X: 8, Y: 0}, Damage: 25},
	}

	bullets = AdvanceBullets(bullets, bounds)
	if len(bullets) != 1 {
		t.Fatalf("len = %d, want 1 after one bullet exits", len(bullets))
	}
	if bullets[0].Position != (vmath.Vec2{X: 58, Y: 50}) {
		t.Errorf("position = %v, want {58 50}", bullets[0].Position)
	}
}
