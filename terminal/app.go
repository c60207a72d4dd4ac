package terminal

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/core"
	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
)

// Notifier receives every engine event, e.g. an audio player
type Notifier interface {
	Notify(ev engine.Event, human entity.PlayerID)
}

// muter is implemented by notifiers that can be silenced
type muter interface {
	ToggleMute() bool
	Muted() bool
}

// App runs the terminal frame loop against an engine
type App struct {
	screen tcell.Screen
	engine *engine.Engine
	input  *Input
	hud    *HUD

	notifier Notifier
	logger   *log.Logger
	copyText func(string) error
	now      func() time.Time
	frame    time.Duration

	toast Toast
	debug bool
}

// AppOption configures an App
type AppOption func(*App)

// WithNotifier forwards engine events to n
func WithNotifier(n Notifier) AppOption {
	return func(a *App) { a.notifier = n }
}

// WithAppLogger sets the logger; the default discards
func WithAppLogger(l *log.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) AppOption {
	return func(a *App) { a.copyText = fn }
}

// WithFrame sets the redraw period
func WithFrame(d time.Duration) AppOption {
	return func(a *App) { a.frame = d }
}

// WithDebug shows the metrics line from the start
func WithDebug(on bool) AppOption {
	return func(a *App) { a.debug = on }
}

// NewApp binds an initialized screen to eng
func NewApp(screen tcell.Screen, eng *engine.Engine, opts ...AppOption) *App {
	a := &App{
		screen:   screen,
		engine:   eng,
		input:    NewInput(parameter.KeyHoldWindow),
		hud:      NewHUD(),
		logger:   log.New(io.Discard, "", 0),
		copyText: clipboard.WriteAll,
		now:      time.Now,
		frame:    parameter.FrameUpdateInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run polls input and redraws until quit, ctx cancellation or engine shutdown
// The screen stays initialized; the caller finalizes it, which also ends the poller
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, parameter.InputQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.draw(a.engine.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-a.engine.Done():
			return engine.ErrStopped

		case ev := <-events:
			if !a.handle(ctx, ev) {
				return nil
			}

		case ev := <-a.engine.Events():
			a.notify(ev)

		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

// handle applies one terminal event; false means quit
func (a *App) handle(ctx context.Context, ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return true
	}

	snap := a.engine.Snapshot()
	w, h := a.screen.Size()
	view := NewViewport(snap.Map, w, h)

	cmd := a.input.Handle(ev, view, a.now())
	switch cmd.Action {
	case ActionQuit:
		return false

	case ActionStart:
		if snap.State == engine.StateEnded {
			if err := a.engine.ReturnToMenu(ctx); err != nil {
				a.fail("reset", err)
				return true
			}
		}
		if snap.State != engine.StateActive {
			a.input.Reset()
			if err := a.engine.Start(ctx); err != nil {
				a.fail("start", err)
			}
		}

	case ActionBack:
		if snap.State != engine.StateMenu {
			if err := a.engine.ReturnToMenu(ctx); err != nil {
				a.fail("menu", err)
			}
		}

	case ActionShoot:
		if snap.State == engine.StateActive {
			if _, err := a.engine.Shoot(ctx, snap.HumanID, cmd.Target); err != nil && !ignorable(err) {
				a.fail("shoot", err)
			}
		}

	case ActionCopy:
		a.copySummary(snap)

	case ActionMute:
		if m, ok := a.notifier.(muter); ok {
			text := "Sound on"
			if m.ToggleMute() {
				text = "Sound off"
			}
			a.show(Toast{Text: text})
		}

	case ActionDebug:
		a.debug = !a.debug
	}
	return true
}

// tick applies held movement, advances tracers and redraws
func (a *App) tick(ctx context.Context) {
	snap := a.engine.Snapshot()
	if snap.State == engine.StateActive {
		if dir := a.input.Direction(a.now()); !dir.IsZero() {
			if err := a.engine.Move(ctx, snap.HumanID, dir); err != nil && !ignorable(err) {
				a.fail("move", err)
			}
		}
		if next, err := a.engine.Frame(ctx); err == nil {
			snap = next
		}
	}
	a.draw(snap)
}

func (a *App) notify(ev engine.Event) {
	snap := a.engine.Snapshot()
	if a.notifier != nil {
		a.notifier.Notify(ev, snap.HumanID)
	}
	if t, ok := ToastFor(ev, snap, a.now(), parameter.ToastDuration); ok {
		a.show(t)
	}
	if ev.Kind == engine.EventPersistenceFailed {
		a.logger.Printf("[TERM] match %d not saved: %v", ev.MatchID, ev.Err)
	}
}

// show replaces the current toast unless a more severe one is still up
func (a *App) show(t Toast) {
	now := a.now()
	if t.Until.IsZero() {
		t.Until = now.Add(parameter.ToastDuration)
	}
	if a.toast.Visible(now) && a.toast.Severity > t.Severity {
		return
	}
	a.toast = t
}

func (a *App) copySummary(snap *engine.Snapshot) {
	if snap.Summary == nil {
		return
	}
	if err := a.copyText(snap.Summary.Text()); err != nil {
		a.logger.Printf("[TERM] clipboard: %v", err)
		a.show(Toast{Text: "Clipboard unavailable", Severity: SeverityError})
		return
	}
	a.show(Toast{Text: "Summary copied", Severity: SeverityGood})
}

func (a *App) draw(snap *engine.Snapshot) {
	now := a.now()
	a.hud.Debug = ""
	if a.debug {
		a.hud.Debug = a.engine.Status().Line()
	}
	if m, ok := a.notifier.(muter); ok {
		a.hud.Muted = m.Muted()
	}
	toast := a.toast
	if !toast.Visible(now) {
		toast = Toast{}
	}
	a.hud.Draw(a.screen, snap, toast)
	a.screen.Show()
}

func (a *App) fail(op string, err error) {
	a.logger.Printf("[TERM] %s: %v", op, err)
	a.show(Toast{Text: op + " failed", Severity: SeverityError})
}

// ignorable errors come from intents racing a state change
func ignorable(err error) bool {
	return errors.Is(err, engine.ErrNotActive) || errors.Is(err, engine.ErrUnknownPlayer) || errors.Is(err, context.Canceled)
}
