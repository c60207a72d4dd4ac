package combat

import (
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/vmath"
)

// AdvanceBullets steps every bullet one frame and drops those that left bounds
// Reuses the backing array of bullets
func AdvanceBullets(bullets []entity.Bullet, bounds vmath.Rect) []entity.Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Step()
		if bounds.Contains(b.Position) {
			kept = append(kept, b)
		}
	}
	return kept
}
