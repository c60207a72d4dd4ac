// Package ai steers non-human players toward the zone center
package ai

import (
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/vmath"
)

// Intent is one AI decision; AI never fires
type Intent struct {
	Hold  bool
	Delta vmath.Vec2
}

// Controller produces per-tick movement for AI players
type Controller struct {
	speed      float64
	holdRadius float64
}

// NewController returns a controller for the given AI settings
func NewController(cfg config.AI) *Controller {
	return &Controller{speed: cfg.Speed, holdRadius: cfg.HoldRadius}
}

// Step moves toward center at fixed speed, holding once within the hold radius
// Never overshoots the center
func (c *Controller) Step(p *entity.Player, center vmath.Vec2) Intent {
	dir, dist := vmath.Direction(p.Position, center)
	if dist <= c.holdRadius {
		return Intent{Hold: true}
	}
	return Intent{Delta: dir.Scale(min(c.speed, dist))}
}

// Apply moves p by the intent and clamps it to the playable area
func Apply(p *entity.Player, in Intent, area vmath.Rect, margin float64) {
	if in.Hold {
		return
	}
	p.Position = vmath.ClampToRect(p.Position.Add(in.Delta), area, margin)
}
