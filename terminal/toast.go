package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
)

// Severity selects toast colors
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityGood
	SeverityWarn
	SeverityError
)

var severityStyle = [...]tcell.Style{
	SeverityInfo:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.NewRGBColor(40, 40, 50)),
	SeverityGood:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 255, 220)).Background(tcell.NewRGBColor(30, 60, 30)),
	SeverityWarn:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 240, 200)).Background(tcell.NewRGBColor(60, 50, 20)),
	SeverityError: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 220, 220)).Background(tcell.NewRGBColor(60, 25, 25)),
}

// Toast is a transient bottom-row message
type Toast struct {
	Text     string
	Severity Severity
	Until    time.Time
}

// Visible reports whether the toast should still be drawn at now
func (t Toast) Visible(now time.Time) bool {
	return t.Text != "" && now.Before(t.Until)
}

// ToastFor describes ev for the human player; names are resolved from snap
// Gunfire and hits are left to audio
func ToastFor(ev engine.Event, snap *engine.Snapshot, now time.Time, d time.Duration) (Toast, bool) {
	t := Toast{Until: now.Add(d)}
	var human entity.PlayerID
	if snap != nil {
		human = snap.HumanID
	}

	switch ev.Kind {
	case engine.EventMatchStarted:
		t.Text = fmt.Sprintf("Match #%d started, reach the zone", ev.MatchID)
	case engine.EventKill:
		switch {
		case ev.PlayerID == human:
			t.Text, t.Severity = "You eliminated "+nameOf(snap, ev.TargetID), SeverityGood
		case ev.TargetID == human:
			t.Text, t.Severity = "Eliminated by "+nameOf(snap, ev.PlayerID), SeverityError
		default:
			t.Text = nameOf(snap, ev.PlayerID) + " eliminated " + nameOf(snap, ev.TargetID)
		}
	case engine.EventZoneDamage:
		if ev.PlayerID != human {
			return Toast{}, false
		}
		t.Text, t.Severity = fmt.Sprintf("Outside the zone, -%d HP", ev.Amount), SeverityWarn
	case engine.EventZoneShrunk:
		t.Text, t.Severity = fmt.Sprintf("Zone shrinking, phase %d", ev.Amount), SeverityWarn
	case engine.EventShotIneffective:
		if ev.PlayerID != human {
			return Toast{}, false
		}
		t.Text, t.Severity = "Out of ammo", SeverityWarn
	case engine.EventMatchEnded:
		if ev.PlayerID == 0 {
			t.Text = "Match over, no survivor"
		} else {
			t.Text = "Match over, winner " + nameOf(snap, ev.PlayerID)
		}
	case engine.EventPersistenceFailed:
		t.Text, t.Severity = "Match result not saved", SeverityError
	default:
		return Toast{}, false
	}
	return t, true
}

func nameOf(snap *engine.Snapshot, id entity.PlayerID) string {
	if snap != nil {
		for _, p := range snap.Players {
			if p.ID == id {
				return p.Name
			}
		}
	}
	return fmt.Sprintf("player %d", id)
}
