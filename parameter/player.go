package parameter

// Player defaults
const (
	// PlayerMaxHealth is the health every player starts a match with
	PlayerMaxHealth = 100

	// PlayerMaxArmor bounds the informational armor value
	PlayerMaxArmor = 100

	// PlayerSpeed is the distance covered per movement frame
	PlayerSpeed = 3.0

	// PlayerSize is the clamp margin keeping players off the map edge
	PlayerSize = 12.0
)

// Arena
const (
	// MapWidth and MapHeight define the world rectangle anchored at the origin
	MapWidth  = 800.0
	MapHeight = 600.0

	// SpawnMargin keeps spawn points off the wall: x in [100,700), y in [100,500)
	SpawnMargin = 100.0

	// MaxPlayers caps the roster taken into a match
	MaxPlayers = 5
)
