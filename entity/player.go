package entity

import (
	"fmt"

	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/vmath"
)

// PlayerID is unique within a match
type PlayerID int

// Player is a roster member; Alive always equals Health > 0
type Player struct {
	ID       PlayerID
	Name     string
	Position vmath.Vec2
	Health   int
	Armor    int // informational, does not reduce damage
	Kills    int
	Alive    bool
	Ammo     int
	Weapon   Weapon
	Human    bool
}

// NewPlayer validates p and derives Alive from Health
func NewPlayer(p Player) (*Player, error) {
	if p.Health < 0 || p.Health > parameter.PlayerMaxHealth {
		return nil, fmt.Errorf("%w: player %d health %d", ErrInvalidEntity, p.ID, p.Health)
	}
	if p.Armor < 0 || p.Armor > parameter.PlayerMaxArmor {
		return nil, fmt.Errorf("%w: player %d armor %d", ErrInvalidEntity, p.ID, p.Armor)
	}
	if p.Kills < 0 {
		return nil, fmt.Errorf("%w: player %d kills %d", ErrInvalidEntity, p.ID, p.Kills)
	}
	if p.Ammo < 0 {
		return nil, fmt.Errorf("%w: player %d ammo %d", ErrInvalidEntity, p.ID, p.Ammo)
	}
	if !p.Weapon.IsSet() && p.Ammo > 0 {
		return nil, fmt.Errorf("%w: player %d has ammo %d but no weapon", ErrInvalidEntity, p.ID, p.Ammo)
	}
	if p.Weapon.IsSet() && p.Ammo > p.Weapon.Capacity {
		return nil, fmt.Errorf("%w: player %d ammo %d exceeds %s capacity %d",
			ErrInvalidEntity, p.ID, p.Ammo, p.Weapon.Type, p.Weapon.Capacity)
	}
	p.Alive = p.Health > 0
	return &p, nil
}

// ApplyDamage lowers health floored at zero and recomputes Alive in the same write
// Returns the health actually removed and whether this call killed the player
func (p *Player) ApplyDamage(damage int) (dealt int, killed bool) {
	if !p.Alive || damage <= 0 {
		return 0, false
	}
	before := p.Health
	p.Health = max(0, p.Health-damage)
	p.Alive = p.Health > 0
	return before - p.Health, !p.Alive
}

// ConsumeAmmo removes one round, floored at zero
func (p *Player) ConsumeAmmo() {
	if p.Ammo > 0 {
		p.Ammo--
	}
}

// ResetForMatch restores match-start values and places the player at spawn
func (p *Player) ResetForMatch(spawn vmath.Vec2) {
	p.Health = parameter.PlayerMaxHealth
	p.Armor = 0
	p.Kills = 0
	p.Alive = true
	p.Position = spawn
}
