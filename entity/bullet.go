package entity

import "github.com/lixenwraith/zone-royale/vmath"

// Bullet is an in-flight tracer; Damage is copied from the owner's weapon at fire time
type Bullet struct {
	OwnerID  PlayerID
	Position vmath.Vec2
	Velocity vmath.Vec2
	Damage   int
}

// NewBullet aims a bullet from origin toward target at speed
// Returns false when target coincides with origin
func NewBullet(owner PlayerID, origin, target vmath.Vec2, speed float64, damage int) (Bullet, bool) {
	dir, dist := vmath.Direction(origin, target)
	if dist == 0 {
		return Bullet{}, false
	}
	return Bullet{
		OwnerID:  owner,
		Position: origin,
		Velocity: dir.Scale(speed),
		Damage:   damage,
	}, true
}

// Step advances the bullet by one frame
func (b *Bullet) Step() {
	b.Position = b.Position.Add(b.Velocity)
}
