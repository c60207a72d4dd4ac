package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/vmath"
)

// Action is a discrete command decoded from a key or mouse event
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionBack // abort a running match or leave the game-over screen
	ActionShoot
	ActionCopy
	ActionMute
	ActionDebug
	ActionQuit
)

// Command is one decoded input
type Command struct {
	Action Action
	Target vmath.Vec2 // world coordinates, ActionShoot only
}

type heading uint8

const (
	headUp heading = iota
	headDown
	headLeft
	headRight
	headingCount
)

var headingVec = [headingCount]vmath.Vec2{
	headUp:    {Y: -1},
	headDown:  {Y: 1},
	headLeft:  {X: -1},
	headRight: {X: 1},
}

var opposite = [headingCount]heading{
	headUp:    headDown,
	headDown:  headUp,
	headLeft:  headRight,
	headRight: headLeft,
}

// Input turns terminal events into engine intents
// Terminals report presses only, so a direction stays held for a window after its last repeat
type Input struct {
	hold    time.Duration
	pressed [headingCount]time.Time
	buttons tcell.ButtonMask
}

// NewInput returns a decoder holding directions for hold after each press
func NewInput(hold time.Duration) *Input {
	return &Input{hold: hold}
}

// Handle decodes ev at now; movement keys only update the held set
func (in *Input) Handle(ev tcell.Event, view Viewport, now time.Time) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev, now)
	case *tcell.EventMouse:
		return in.mouse(ev, view)
	}
	return Command{}
}

func (in *Input) key(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		in.press(headUp, now)
	case tcell.KeyDown:
		in.press(headDown, now)
	case tcell.KeyLeft:
		in.press(headLeft, now)
	case tcell.KeyRight:
		in.press(headRight, now)
	case tcell.KeyEnter:
		return Command{Action: ActionStart}
	case tcell.KeyEscape:
		return Command{Action: ActionBack}
	case tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			in.press(headUp, now)
		case 's':
			in.press(headDown, now)
		case 'a':
			in.press(headLeft, now)
		case 'd':
			in.press(headRight, now)
		case 'y':
			return Command{Action: ActionCopy}
		case 'm':
			return Command{Action: ActionMute}
		case 'g':
			return Command{Action: ActionDebug}
		case 'q':
			return Command{Action: ActionQuit}
		}
	}
	return Command{}
}

// press holds h and drops its opposite so reversals take effect at once
func (in *Input) press(h heading, now time.Time) {
	in.pressed[h] = now
	in.pressed[opposite[h]] = time.Time{}
}

// mouse fires on the button 1 press edge only; holding the button does not autofire
func (in *Input) mouse(ev *tcell.EventMouse, view Viewport) Command {
	btn := ev.Buttons()
	edge := btn&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = btn
	if !edge {
		return Command{}
	}
	target, ok := view.ToWorld(ev.Position())
	if !ok {
		return Command{}
	}
	return Command{Action: ActionShoot, Target: target}
}

// Direction returns the unit vector of every direction still held at now
func (in *Input) Direction(now time.Time) vmath.Vec2 {
	var d vmath.Vec2
	for h, at := range in.pressed {
		if !at.IsZero() && now.Sub(at) < in.hold {
			d = d.Add(headingVec[h])
		}
	}
	unit, _ := vmath.Normalize(d)
	return unit
}

// Reset releases every held direction
func (in *Input) Reset() {
	in.pressed = [headingCount]time.Time{}
	in.buttons = 0
}
