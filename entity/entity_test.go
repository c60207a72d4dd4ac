package entity

import (
	"errors"
	"testing"

	"github.com/lixenwraith/zone-royale/vmath"
)

func rifle(t *testing.T) Weapon {
	t.Helper()
	w, err := NewWeapon(Weapon{Type: WeaponRifle, Damage: 25, Capacity: 30})
	if err != nil {
		t.Fatalf("NewWeapon: %v", err)
	}
	return w
}

func TestApplyDamageClampsAndDerivesAlive(t *testing.T) {
	for h := 0; h <= 100; h += 5 {
		for _, d := range []int{1, 5, 30, 50, 99, 100, 250} {
			p := &Player{Health: h, Alive: h > 0}
			_, killed := p.ApplyDamage(d)

			want := h
			if h > 0 {
				want = max(0, h-d)
			}
			if p.Health != want {
				t.Fatalf("h=%d d=%d: health = %d, want %d", h, d, p.Health, want)
			}
			if p.Alive != (p.Health > 0) {
				t.Fatalf("h=%d d=%d: alive = %v with health %d", h, d, p.Alive, p.Health)
			}
			if killed != (h > 0 && p.Health == 0) {
				t.Fatalf("h=%d d=%d: killed = %v", h, d, killed)
			}
		}
	}
}

func TestApplyDamageOnDeadPlayerIsNoop(t *testing.T) {
	p := &Player{Health: 0, Alive: false}
	dealt, killed := p.ApplyDamage(10)
	if dealt != 0 || killed {
		t.Errorf("ApplyDamage on dead = (%d, %v), want (0, false)", dealt, killed)
	}
}

func TestApplyDamageReportsDealt(t *testing.T) {
	p := &Player{Health: 30, Alive: true}
	dealt, killed := p.ApplyDamage(50)
	if dealt != 30 || !killed {
		t.Errorf("ApplyDamage(50) on 30hp = (%d, %v), want (30, true)", dealt, killed)
	}
}

func TestNewPlayerValidation(t *testing.T) {
	w := rifle(t)
	tests := []struct {
		name    string
		in      Player
		wantErr bool
	}{
		{"valid", Player{ID: 1, Health: 100, Ammo: 30, Weapon: w}, false},
		{"dead but valid", Player{ID: 1, Health: 0}, false},
		{"negative health", Player{ID: 1, Health: -1}, true},
		{"health above max", Player{ID: 1, Health: 101}, true},
		{"ammo without weapon", Player{ID: 1, Health: 100, Ammo: 5}, true},
		{"no weapon no ammo", Player{ID: 1, Health: 100}, false},
		{"ammo above capacity", Player{ID: 1, Health: 100, Ammo: 31, Weapon: w}, true},
		{"negative ammo", Player{ID: 1, Health: 100, Ammo: -1, Weapon: w}, true},
		{"armor out of range", Player{ID: 1, Health: 100, Armor: 150}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayer(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEntity) {
					t.Errorf("NewPlayer() error = %v, want ErrInvalidEntity", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlayer() error = %v", err)
			}
			if p.Alive != (p.Health > 0) {
				t.Errorf("Alive = %v for health %d", p.Alive, p.Health)
			}
		})
	}
}

func TestNewZoneValidation(t *testing.T) {
	if _, err := NewZone(vmath.Vec2{}, 0, 2, 5); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("radius 0: error = %v, want ErrInvalidEntity", err)
	}
	if _, err := NewZone(vmath.Vec2{}, 100, -1, 5); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("negative shrink: error = %v, want ErrInvalidEntity", err)
	}
	z, err := NewZone(vmath.Vec2{X: 400, Y: 300}, 350, 0, 5)
	if err != nil {
		t.Fatalf("valid zone: %v", err)
	}
	if z.Stepped {
		t.Error("new zone should not be stepped")
	}
}

func TestNewWeaponValidation(t *testing.T) {
	if _, err := NewWeapon(Weapon{Type: WeaponPistol, Damage: 0, Capacity: 12}); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("zero damage: error = %v", err)
	}
	if _, err := NewWeapon(Weapon{Type: WeaponPistol, Damage: 10, Capacity: 0}); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("zero capacity: error = %v", err)
	}
	if _, err := NewWeapon(Weapon{Type: WeaponNone, Damage: 10, Capacity: 1}); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("unset type: error = %v", err)
	}
	w, err := NewWeapon(Weapon{Type: WeaponSniper, Damage: 80, Capacity: 5})
	if err != nil {
		t.Fatalf("valid weapon: %v", err)
	}
	if w.Name != "sniper" {
		t.Errorf("Name = %q, want default sniper", w.Name)
	}
}

func TestParseWeaponType(t *testing.T) {
	for _, wt := range []WeaponType{WeaponPistol, WeaponRifle, WeaponSniper, WeaponShotgun} {
		got, err := ParseWeaponType(wt.String())
		if err != nil || got != wt {
			t.Errorf("ParseWeaponType(%q) = (%v, %v), want %v", wt.String(), got, err, wt)
		}
	}
	if got, err := ParseWeaponType(" Rifle "); err != nil || got != WeaponRifle {
		t.Errorf("ParseWeaponType(\" Rifle \") = (%v, %v)", got, err)
	}
	if _, err := ParseWeaponType("bow"); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("ParseWeaponType(bow) error = %v", err)
	}
}

func TestLifecycleRoundTrip(t *testing.T) {
	for l := LifecycleMenu; l <= LifecycleEnded; l++ {
		got, ok := ParseLifecycle(l.String())
		if !ok || got != l {
			t.Errorf("ParseLifecycle(%q) = (%v, %v)", l.String(), got, ok)
		}
	}
	if _, ok := ParseLifecycle("paused"); ok {
		t.Error("ParseLifecycle(paused) should fail")
	}
}

func TestMatchLookups(t *testing.T) {
	m := &Match{Players: []*Player{
		{ID: 1, Health: 100, Alive: true},
		{ID: 2, Health: 0, Alive: false, Human: false},
		{ID: 3, Health: 50, Alive: true, Human: true},
	}}
	if p, ok := m.Player(2); !ok || p.ID != 2 {
		t.Errorf("Player(2) = (%v, %v)", p, ok)
	}
	if _, ok := m.Player(9); ok {
		t.Error("Player(9) should not exist")
	}
	if h, ok := m.Human(); !ok || h.ID != 3 {
		t.Errorf("Human() = (%v, %v), want id 3", h, ok)
	}
	if n := m.AliveCount(); n != 2 {
		t.Errorf("AliveCount() = %d, want 2", n)
	}
	alive := m.Alive()
	if len(alive) != 2 || alive[0].ID != 1 || alive[1].ID != 3 {
		t.Errorf("Alive() order = %v, want ids 1,3", alive)
	}
}

func TestBulletCarriesDamageAndMoves(t *testing.T) {
	b, ok := NewBullet(1, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0}, 8, 25)
	if !ok {
		t.Fatal("NewBullet returned false for distinct points")
	}
	b.Step()
	if b.Position != (vmath.Vec2{X: 8, Y: 0}) {
		t.Errorf("Position after step = %v, want {8 0}", b.Position)
	}
	if b.Damage != 25 {
		t.Errorf("Damage = %d, want 25", b.Damage)
	}
	if _, ok := NewBullet(1, vmath.Vec2{X: 5, Y: 5}, vmath.Vec2{X: 5, Y: 5}, 8, 25); ok {
		t.Error("NewBullet should refuse a zero-length shot")
	}
}

func TestConsumeAmmoFloors(t *testing.T) {
	p := &Player{Ammo: 1}
	p.ConsumeAmmo()
	p.ConsumeAmmo()
	if p.Ammo != 0 {
		t.Errorf("Ammo = %d, want 0", p.Ammo)
	}
}
