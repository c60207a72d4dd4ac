package parameter

// Zone
const (
	// ZoneRadius is the map-spanning radius a match starts with
	ZoneRadius = 350.0

	// ZoneShrinkRate is the radius removed per zone tick
	ZoneShrinkRate = 2.0

	// ZoneMinRadius is the floor the radius never drops below
	ZoneMinRadius = 50.0

	// ZoneDamagePerSecond is the base damage dealt per zone-damage tick
	ZoneDamagePerSecond = 5

	// ZoneStepThreshold is the radius at or below which damage steps up once
	ZoneStepThreshold = 100.0

	// ZoneStepIncrement is added to damage-per-second when the threshold is crossed
	ZoneStepIncrement = 2
)

// AI
const (
	// AISpeed is the distance an AI player covers per AI tick
	AISpeed = 2.0

	// AIHoldRadius is the distance from the zone center inside which AI holds position
	AIHoldRadius = 5.0
)
