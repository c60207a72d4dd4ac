package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/store"
)

// buildRoster converts store records into validated players in store order
// With no record flagged human the first player becomes human
func buildRoster(players []store.PlayerRecord, weapons []store.WeaponRecord, maxPlayers int) ([]*entity.Player, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: empty roster", entity.ErrInvalidEntity)
	}
	if len(players) > maxPlayers {
		return nil, fmt.Errorf("%w: roster of %d exceeds %d players", entity.ErrInvalidEntity, len(players), maxPlayers)
	}

	armory := make(map[int]entity.Weapon, len(weapons))
	for _, rec := range weapons {
		w, err := weaponFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("weapon %d: %w", rec.ID, err)
		}
		armory[rec.ID] = w
	}

	roster := make([]*entity.Player, 0, len(players))
	seen := make(map[entity.PlayerID]bool, len(players))
	humans := 0
	for _, rec := range players {
		id := entity.PlayerID(rec.ID)
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate player id %d", entity.ErrInvalidEntity, rec.ID)
		}
		seen[id] = true

		var w entity.Weapon
		if rec.WeaponID != 0 {
			var ok bool
			if w, ok = armory[rec.WeaponID]; !ok {
				return nil, fmt.Errorf("%w: player %d references weapon %d", entity.ErrInvalidEntity, rec.ID, rec.WeaponID)
			}
		}

		p, err := entity.NewPlayer(entity.Player{
			ID:       id,
			Name:     rec.Name,
			Position: rec.Position,
			Health:   rec.Health,
			Armor:    rec.Armor,
			Kills:    rec.Kills,
			Ammo:     rec.Ammo,
			Weapon:   w,
			Human:    rec.IsPlayer,
		})
		if err != nil {
			return nil, err
		}
		if p.Human {
			humans++
		}
		roster = append(roster, p)
	}

	switch humans {
	case 0:
		roster[0].Human = true
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d human players", entity.ErrInvalidEntity, humans)
	}
	return roster, nil
}

func weaponFromRecord(rec store.WeaponRecord) (entity.Weapon, error) {
	typ, err := entity.ParseWeaponType(rec.Type)
	if err != nil {
		return entity.Weapon{}, err
	}
	return entity.NewWeapon(entity.Weapon{
		Type:       typ,
		Name:       rec.Name,
		Damage:     rec.Damage,
		Capacity:   rec.Capacity,
		FireRate:   rec.FireRate,
		Range:      rec.Range,
		Accuracy:   rec.Accuracy,
		ReloadTime: time.Duration(rec.ReloadTime * float64(time.Second)),
	})
}

// cloneRoster returns independent copies for a new match
func cloneRoster(base []*entity.Player) []*entity.Player {
	out := make([]*entity.Player, len(base))
	for i, p := range base {
		c := *p
		out[i] = &c
	}
	return out
}
