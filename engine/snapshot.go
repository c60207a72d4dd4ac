package engine

import (
	"slices"

	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/vmath"
)

// Snapshot is an immutable copy of the engine state for rendering
// Consumers must treat every field as read-only
type Snapshot struct {
	State      State
	MatchID    int
	MatchName  string
	Map        vmath.Rect
	Players    []entity.Player // roster order; menu roster outside a match
	Zone       entity.Zone
	Bullets    []entity.Bullet
	Elapsed    int
	Phase      int
	Kills      int // human kills
	AliveCount int
	HumanID    entity.PlayerID
	Winner     *entity.PlayerID
	Summary    *Summary
}

// Human returns the human player's copy
func (s *Snapshot) Human() (entity.Player, bool) {
	for _, p := range s.Players {
		if p.ID == s.HumanID {
			return p, true
		}
	}
	return entity.Player{}, false
}

// snapshot deep-copies the simulation state
func (s *simulation) snapshot() *Snapshot {
	snap := &Snapshot{
		State: s.state,
		Map:   s.cfg.Arena.Map,
	}

	m := s.match
	if m == nil {
		snap.Players = make([]entity.Player, len(s.base))
		for i, p := range s.base {
			snap.Players[i] = *p
			if p.Human {
				snap.HumanID = p.ID
			}
		}
		return snap
	}

	snap.MatchID = m.ID
	snap.MatchName = m.Name
	snap.Zone = m.Zone
	snap.Elapsed = m.Elapsed
	snap.Phase = m.Phase
	snap.Players = make([]entity.Player, len(m.Players))
	for i, p := range m.Players {
		snap.Players[i] = *p
		if p.Alive {
			snap.AliveCount++
		}
		if p.Human {
			snap.HumanID = p.ID
			snap.Kills = p.Kills
		}
	}
	snap.Bullets = slices.Clone(s.bullets)
	if m.Winner != nil {
		w := *m.Winner
		snap.Winner = &w
	}
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
	}
	return snap
}
