package terminal

import (
	"math"

	"github.com/lixenwraith/zone-royale/vmath"
)

// Viewport maps world coordinates onto a block of terminal cells
type Viewport struct {
	World      vmath.Rect
	X, Y       int // top-left cell
	Cols, Rows int
}

// NewViewport reserves the top row for status and the bottom row for messages
func NewViewport(world vmath.Rect, width, height int) Viewport {
	return Viewport{
		World: world,
		X:     0,
		Y:     1,
		Cols:  max(1, width),
		Rows:  max(1, height-2),
	}
}

// CellSize returns the world extent of one cell
func (v Viewport) CellSize() (float64, float64) {
	return v.World.Width / float64(v.Cols), v.World.Height / float64(v.Rows)
}

// ToCell returns the screen cell holding p
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	sx, sy := v.CellSize()
	cx := int(math.Floor(p.X / sx))
	cy := int(math.Floor(p.Y / sy))
	if cx < 0 || cx >= v.Cols || cy < 0 || cy >= v.Rows {
		return 0, 0, false
	}
	return v.X + cx, v.Y + cy, true
}

// ToWorld returns the world point at the center of screen cell (x, y)
func (v Viewport) ToWorld(x, y int) (vmath.Vec2, bool) {
	cx, cy := x-v.X, y-v.Y
	if cx < 0 || cx >= v.Cols || cy < 0 || cy >= v.Rows {
		return vmath.Vec2{}, false
	}
	sx, sy := v.CellSize()
	return vmath.Vec2{X: (float64(cx) + 0.5) * sx, Y: (float64(cy) + 0.5) * sy}, true
}
