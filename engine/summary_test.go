package engine

import (
	"strings"
	"testing"

	"github.com/lixenwraith/zone-royale/entity"
)

func TestSummarize(t *testing.T) {
	winner := entity.PlayerID(1)
	m := &entity.Match{
		ID:      9,
		Elapsed: 120,
		Winner:  &winner,
		Players: []*entity.Player{
			{ID: 1, Name: "You", Human: true, Alive: true, Health: 40, Kills: 4, Weapon: entity.Weapon{Type: entity.WeaponRifle, Damage: 35}},
			{ID: 2, Name: "Viper"},
		},
	}

	s := summarize(m, 0)
	if !s.Victory || s.Placement != 1 || s.WinnerName != "You" {
		t.Errorf("summary = %+v", s)
	}
	if s.KillsPerMinute != 2 || s.DamageDealt != 140 {
		t.Errorf("kpm %d damage %d, want 2 140", s.KillsPerMinute, s.DamageDealt)
	}

	text := s.Text()
	for _, want := range []string{"VICTORY", "match #9", "survived 2:00", "kills 4 (2/min)", "damage 140", "winner You"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() = %q, missing %q", text, want)
		}
	}
}

func TestSummarizeDefeat(t *testing.T) {
	m := &entity.Match{
		ID: 3,
		Players: []*entity.Player{
			{ID: 1, Human: true},
			{ID: 2, Alive: true, Health: 10},
			{ID: 3, Alive: true, Health: 10},
		},
	}
	s := summarize(m, 3)
	if s.Victory || s.Winner != nil || s.Placement != 3 || s.KillsPerMinute != 0 {
		t.Errorf("summary = %+v", s)
	}
	if !strings.HasPrefix(s.Text(), "DEFEATED") {
		t.Errorf("Text() = %q", s.Text())
	}
}

func TestFormatElapsed(t *testing.T) {
	for in, want := range map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 600: "10:00"} {
		if got := FormatElapsed(in); got != want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestLifecycleEdges(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateMenu, StateActive, true},
		{StateActive, StateEnded, true},
		{StateActive, StateMenu, true},
		{StateEnded, StateMenu, true},
		{StateMenu, StateEnded, false},
		{StateEnded, StateActive, false},
		{StateActive, StateActive, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
