package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/zone-royale/entity"
)

// Summary is the end-of-match scoreboard for the human player
type Summary struct {
	MatchID        int
	Winner         *entity.PlayerID
	WinnerName     string
	Victory        bool
	Placement      int
	Elapsed        int
	Kills          int
	KillsPerMinute int
	DamageDealt    int
}

// summarize builds the scoreboard from an ended match
// placement is the human's finishing rank, 0 when still alive
func summarize(m *entity.Match, placement int) *Summary {
	s := &Summary{
		MatchID: m.ID,
		Elapsed: m.Elapsed,
	}
	if m.Winner != nil {
		w := *m.Winner
		s.Winner = &w
		if p, ok := m.Player(w); ok {
			s.WinnerName = p.Name
		}
	}
	if h, ok := m.Human(); ok {
		s.Kills = h.Kills
		s.DamageDealt = h.Kills * h.Weapon.Damage
		s.Victory = m.Winner != nil && *m.Winner == h.ID
	}
	if m.Elapsed > 0 {
		s.KillsPerMinute = s.Kills * 60 / m.Elapsed
	}
	switch {
	case s.Victory:
		s.Placement = 1
	case placement > 0:
		s.Placement = placement
	default:
		s.Placement = 2
	}
	return s
}

// Text renders the summary for sharing
func (s *Summary) Text() string {
	var b strings.Builder
	if s.Victory {
		b.WriteString("VICTORY")
	} else {
		b.WriteString("DEFEATED")
	}
	fmt.Fprintf(&b, " | match #%d | place #%d", s.MatchID, s.Placement)
	fmt.Fprintf(&b, " | survived %s", FormatElapsed(s.Elapsed))
	fmt.Fprintf(&b, " | kills %d (%d/min) | damage %d", s.Kills, s.KillsPerMinute, s.DamageDealt)
	if s.WinnerName != "" {
		fmt.Fprintf(&b, " | winner %s", s.WinnerName)
	}
	return b.String()
}

// FormatElapsed renders seconds as m:ss
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
