package entity

import (
	"fmt"

	"github.com/lixenwraith/zone-royale/vmath"
)

// Zone is the shrinking circular safe area
type Zone struct {
	Center          vmath.Vec2
	Radius          float64
	ShrinkRate      float64
	DamagePerSecond int
	Stepped         bool // damage step already applied
}

// NewZone validates the zone geometry
func NewZone(center vmath.Vec2, radius, shrinkRate float64, damagePerSecond int) (Zone, error) {
	if radius <= 0 {
		return Zone{}, fmt.Errorf("%w: zone radius %v", ErrInvalidEntity, radius)
	}
	if shrinkRate < 0 {
		return Zone{}, fmt.Errorf("%w: zone shrink rate %v", ErrInvalidEntity, shrinkRate)
	}
	if damagePerSecond < 0 {
		return Zone{}, fmt.Errorf("%w: zone damage %d", ErrInvalidEntity, damagePerSecond)
	}
	return Zone{
		Center:          center,
		Radius:          radius,
		ShrinkRate:      shrinkRate,
		DamagePerSecond: damagePerSecond,
	}, nil
}
