package engine

import "github.com/lixenwraith/zone-royale/entity"

// EventKind identifies a notification published by the engine
type EventKind uint8

const (
	// EventMatchStarted: match entered Active; MatchID set
	EventMatchStarted EventKind = iota
	// EventShotFired: an effective shot left PlayerID's weapon
	EventShotFired
	// EventHit: TargetID lost Amount health to PlayerID
	EventHit
	// EventKill: PlayerID killed TargetID with Amount damage
	EventKill
	// EventZoneDamage: PlayerID lost Amount health outside the zone
	EventZoneDamage
	// EventZoneShrunk: zone radius decreased, Amount is the new phase
	EventZoneShrunk
	// EventMatchEnded: match entered Ended; PlayerID is the winner or 0
	EventMatchEnded
	// EventPersistenceFailed: final state could not be stored; Err set
	EventPersistenceFailed
	// EventShotIneffective: PlayerID pulled the trigger without effect
	EventShotIneffective
)

var eventNames = [...]string{
	EventMatchStarted:      "match_started",
	EventShotFired:         "shot_fired",
	EventHit:               "hit",
	EventKill:              "kill",
	EventZoneDamage:        "zone_damage",
	EventZoneShrunk:        "zone_shrunk",
	EventMatchEnded:        "match_ended",
	EventPersistenceFailed: "persistence_failed",
	EventShotIneffective:   "shot_ineffective",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a fire-and-forget notification; slow consumers lose events
type Event struct {
	Kind     EventKind
	MatchID  int
	PlayerID entity.PlayerID
	TargetID entity.PlayerID
	Amount   int
	Err      error
}
