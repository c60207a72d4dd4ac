package parameter

// Combat
const (
	// HitRadius is the strict distance under which a target point hits a player
	HitRadius = 30.0

	// BulletSpeed is tracer travel per frame
	BulletSpeed = 8.0

	// TieBreakRoster picks the first qualifying player in roster order
	TieBreakRoster = "roster"

	// TieBreakNearest picks the qualifying player closest to the target point
	TieBreakNearest = "nearest"
)
