package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/store"
)

// recorder is a Notifier that can be muted
type recorder struct {
	events []engine.Event
	muted  bool
}

func (r *recorder) Notify(ev engine.Event, _ entity.PlayerID) { r.events = append(r.events, ev) }
func (r *recorder) ToggleMute() bool                          { r.muted = !r.muted; return r.muted }
func (r *recorder) Muted() bool                               { return r.muted }

type appHarness struct {
	app    *App
	engine *engine.Engine
	screen tcell.SimulationScreen
	rec    *recorder
	copied []string
	now    time.Time
	ctx    context.Context
}

func newAppHarness(t *testing.T) *appHarness {
	t.Helper()
	mem, err := store.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	eng, err := engine.New(config.Default(), mem, mem, mem,
		engine.WithClock(engine.NewManualClock(time.Unix(0, 0))),
		engine.WithSeed(7),
	)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go eng.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-eng.Done()
	})

	h := &appHarness{engine: eng, screen: newScreen(t, 80, 24), rec: &recorder{}, now: time.Unix(1000, 0), ctx: ctx}
	h.app = NewApp(h.screen, eng,
		WithNotifier(h.rec),
		WithClipboard(func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		}),
	)
	h.app.now = func() time.Time { return h.now }

	if _, err := eng.Sync(ctx); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	return h
}

func (h *appHarness) press(t *testing.T, ev tcell.Event) {
	t.Helper()
	if !h.app.handle(h.ctx, ev) {
		t.Fatalf("handle(%T) quit", ev)
	}
}

func (h *appHarness) state() engine.State {
	return h.engine.Snapshot().State
}

func TestAppStartMoveAbort(t *testing.T) {
	h := newAppHarness(t)

	h.press(t, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.state() != engine.StateActive {
		t.Fatalf("state = %s, want active", h.state())
	}

	before, _ := h.engine.Snapshot().Human()
	h.press(t, key('d'))
	h.app.tick(h.ctx)
	after, _ := h.engine.Snapshot().Human()
	if after.Position.X != before.Position.X+3 || after.Position.Y != before.Position.Y {
		t.Errorf("human moved %v -> %v, want +3 on x", before.Position, after.Position)
	}

	if !strings.Contains(rowText(h.screen, 0), "ALIVE 5") {
		t.Errorf("status row %q, want ALIVE 5", rowText(h.screen, 0))
	}

	h.press(t, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if h.state() != engine.StateMenu {
		t.Errorf("state = %s after escape, want menu", h.state())
	}
}

func TestAppShootToVictoryAndCopy(t *testing.T) {
	h := newAppHarness(t)
	h.press(t, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	view := NewViewport(h.engine.Snapshot().Map, 80, 24)
	for i := 0; i < 30 && h.state() == engine.StateActive; i++ {
		snap := h.engine.Snapshot()
		var target entity.Player
		for _, p := range snap.Players {
			if p.Alive && !p.Human {
				target = p
				break
			}
		}
		x, y, ok := view.ToCell(target.Position)
		if !ok {
			t.Fatalf("player %d off screen", target.ID)
		}
		h.press(t, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		h.press(t, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	}

	snap := h.engine.Snapshot()
	if snap.State != engine.StateEnded || snap.Summary == nil || !snap.Summary.Victory {
		t.Fatalf("state %s summary %+v, want victory", snap.State, snap.Summary)
	}

	h.press(t, key('y'))
	if len(h.copied) != 1 || !strings.HasPrefix(h.copied[0], "VICTORY") {
		t.Fatalf("copied %q, want victory summary", h.copied)
	}
	if h.app.toast.Text != "Summary copied" {
		t.Errorf("toast = %q", h.app.toast.Text)
	}

	// Enter on the game-over screen starts a fresh match
	h.press(t, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.state() != engine.StateActive {
		t.Errorf("state = %s, want active rematch", h.state())
	}
}

func TestAppNotifyAndMute(t *testing.T) {
	h := newAppHarness(t)

	h.app.notify(engine.Event{Kind: engine.EventKill, PlayerID: 1, TargetID: 2})
	if len(h.rec.events) != 1 {
		t.Fatalf("notifier got %d events, want 1", len(h.rec.events))
	}
	if h.app.toast.Text != "You eliminated Viper" {
		t.Errorf("toast = %q", h.app.toast.Text)
	}

	h.press(t, key('m'))
	if !h.rec.muted || h.app.toast.Text != "Sound off" {
		t.Errorf("muted %v toast %q", h.rec.muted, h.app.toast.Text)
	}

	// A visible error is not replaced by an info toast
	h.app.show(Toast{Text: "start failed", Severity: SeverityError})
	h.app.show(Toast{Text: "Sound on"})
	if h.app.toast.Text != "start failed" {
		t.Errorf("toast = %q, want the error kept", h.app.toast.Text)
	}
	h.now = h.now.Add(3 * time.Second)
	h.app.show(Toast{Text: "Sound on"})
	if h.app.toast.Text != "Sound on" {
		t.Errorf("toast = %q after expiry", h.app.toast.Text)
	}

	if h.app.handle(h.ctx, key('q')) {
		t.Error("q should quit")
	}
}

func TestAppRunQuitsOnKey(t *testing.T) {
	h := newAppHarness(t)

	done := make(chan error, 1)
	go func() { done <- h.app.Run(h.ctx) }()

	h.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
