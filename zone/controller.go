// Package zone shrinks the safe area and decides who stands outside it
package zone

import (
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/vmath"
)

// Controller owns the shrink schedule; the zone value itself belongs to the match
type Controller struct {
	cfg config.Zone
}

// NewController returns a controller for the given schedule
func NewController(cfg config.Zone) *Controller {
	return &Controller{cfg: cfg}
}

// Spawn builds the match-start zone at center
func (c *Controller) Spawn(center vmath.Vec2) (entity.Zone, error) {
	return entity.NewZone(center, c.cfg.Radius, c.cfg.ShrinkRate, c.cfg.DamagePerSecond)
}

// Advance applies one shrink step clamped to the floor
// shrunk is false once the floor is reached; the damage step fires at most once per zone
func (c *Controller) Advance(z entity.Zone) (entity.Zone, bool) {
	next := max(c.cfg.MinRadius, z.Radius-z.ShrinkRate)
	// Never grow, even if the floor sits above the current radius
	next = min(next, z.Radius)
	shrunk := next < z.Radius
	z.Radius = next

	if !z.Stepped && z.Radius <= c.cfg.StepThreshold {
		z.DamagePerSecond += c.cfg.StepIncrement
		z.Stepped = true
	}
	return z, shrunk
}

// IsOutside reports whether p lies strictly beyond the zone edge
func IsOutside(p vmath.Vec2, z entity.Zone) bool {
	return vmath.Distance(p, z.Center) > z.Radius
}
