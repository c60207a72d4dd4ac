// Package store defines the persistence collaborators the engine talks to
// and an in-memory implementation seeded from embedded fixtures
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/zone-royale/vmath"
)

// ErrNotFound is returned for unknown record ids
var ErrNotFound = errors.New("record not found")

// Match states as persisted
const (
	StateLobby  = "lobby"
	StateActive = "active"
	StateEnded  = "ended"
)

// GameMode is the only mode the engine runs
const GameMode = "Battle Royale"

// MatchStore persists match records
type MatchStore interface {
	Create(ctx context.Context, draft MatchDraft) (MatchRecord, error)
	Update(ctx context.Context, id int, patch MatchPatch) (MatchRecord, error)
	Get(ctx context.Context, id int) (MatchRecord, error)
	Active(ctx context.Context) ([]MatchRecord, error)
	History(ctx context.Context) ([]MatchRecord, error)
}

// PlayerStore lists the roster in store order
type PlayerStore interface {
	ListPlayers(ctx context.Context) ([]PlayerRecord, error)
}

// WeaponStore lists weapon definitions
type WeaponStore interface {
	ListWeapons(ctx context.Context) ([]WeaponRecord, error)
}

// ZoneRecord is the persisted zone configuration at match creation
type ZoneRecord struct {
	Center          vmath.Vec2 `json:"center"`
	Radius          float64    `json:"radius"`
	DamagePerSecond int        `json:"damage_per_second"`
}

// MatchDraft carries the fields a new match is created with
type MatchDraft struct {
	Name       string     `json:"name"`
	RunKey     string     `json:"run_key"`
	MaxPlayers int        `json:"max_players"`
	GameMode   string     `json:"game_mode"`
	Zone       ZoneRecord `json:"zone"`
	MapSize    vmath.Rect `json:"map_size"`
}

// NewMatchDraft names the match after a fresh run key
func NewMatchDraft(mapSize vmath.Rect, zone ZoneRecord, maxPlayers int) MatchDraft {
	key := uuid.NewString()
	return MatchDraft{
		Name:       fmt.Sprintf("Match %s", key[:8]),
		RunKey:     key,
		MaxPlayers: maxPlayers,
		GameMode:   GameMode,
		Zone:       zone,
		MapSize:    mapSize,
	}
}

// MatchRecord is a persisted match
type MatchRecord struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	RunKey      string     `json:"run_key"`
	State       string     `json:"state"`
	MaxPlayers  int        `json:"max_players"`
	GameMode    string     `json:"game_mode"`
	Zone        ZoneRecord `json:"zone"`
	MapSize     vmath.Rect `json:"map_size"`
	TimeElapsed int        `json:"time_elapsed"`
	WinnerID    *int       `json:"winner_id,omitempty"`
}

// MatchPatch lists fields to overwrite; nil fields are left unchanged
type MatchPatch struct {
	State       *string `json:"state,omitempty"`
	TimeElapsed *int    `json:"time_elapsed,omitempty"`
	WinnerID    *int    `json:"winner_id,omitempty"`
}

// PlayerRecord is a persisted roster entry
type PlayerRecord struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	IsPlayer bool       `json:"is_player"`
	Health   int        `json:"health"`
	Armor    int        `json:"armor"`
	Kills    int        `json:"kills"`
	Ammo     int        `json:"ammo"`
	WeaponID int        `json:"weapon_id"`
	Position vmath.Vec2 `json:"position"`
}

// WeaponRecord is a persisted weapon definition
type WeaponRecord struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Damage     int     `json:"damage"`
	Capacity   int     `json:"ammo_capacity"`
	FireRate   float64 `json:"fire_rate"`
	Range      float64 `json:"range"`
	Accuracy   float64 `json:"accuracy"`
	ReloadTime float64 `json:"reload_time"`
}
