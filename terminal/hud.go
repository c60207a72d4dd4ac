package terminal

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/vmath"
)

// Glyphs
const (
	GlyphHuman  = '@'
	GlyphDead   = 'x'
	GlyphBullet = '•'
	GlyphTrail  = '∙'
	GlyphRing   = '·'
)

const barSeparator = " │ "

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))
	styleDim     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 120))
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(30, 30, 45))
	styleHuman   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAI      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 200, 230))
	styleCorpse  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 150, 110))
	styleRing    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleOutside = tcell.StyleDefault.Background(tcell.NewRGBColor(45, 12, 12))
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(20, 20, 35))
)

// HUD draws snapshots; it keeps no match state of its own
type HUD struct {
	Debug string // optional metrics line, replaces the help row
	Muted bool
}

// NewHUD returns a HUD with no debug line
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders snap onto s; the caller calls Show
func (h *HUD) Draw(s tcell.Screen, snap *engine.Snapshot, toast Toast) {
	s.Clear()
	w, ht := s.Size()
	if w < parameter.MinScreenWidth || ht < parameter.MinScreenHeight {
		drawText(s, 0, 0, styleText, "terminal too small")
		return
	}
	if snap == nil {
		drawCentered(s, ht/2, styleDim, "loading")
		return
	}

	switch snap.State {
	case engine.StateMenu:
		h.drawMenu(s, snap)
	default:
		view := NewViewport(snap.Map, w, ht)
		drawArena(s, view, snap)
		h.drawStatus(s, snap)
		if snap.State == engine.StateEnded {
			drawGameOver(s, snap.Summary)
		}
	}
	h.drawBottom(s, snap, toast)
}

func (h *HUD) drawMenu(s tcell.Screen, snap *engine.Snapshot) {
	_, ht := s.Size()
	y := ht / 4
	drawCentered(s, y, styleTitle, "Z O N E   R O Y A L E")
	drawCentered(s, y+1, styleDim, "last player standing wins")

	y += 3
	if len(snap.Players) == 0 {
		drawCentered(s, y, styleText, "no roster loaded")
		return
	}
	for i, p := range snap.Players {
		if y+i >= ht-2 {
			break
		}
		style := styleAI
		if p.Human {
			style = styleHuman
		}
		line := fmt.Sprintf("%c %-8s %-8s ammo %2d", glyphFor(p), p.Name, p.Weapon.Name, p.Ammo)
		drawCentered(s, y+i, style, line)
	}
}

// drawArena tints cells outside the zone, traces its edge, then draws tracers and players
func drawArena(s tcell.Screen, view Viewport, snap *engine.Snapshot) {
	sx, sy := view.CellSize()
	edge := math.Max(sx, sy) / 2
	z := snap.Zone

	if z.Radius > 0 {
		for row := 0; row < view.Rows; row++ {
			for col := 0; col < view.Cols; col++ {
				x, y := view.X+col, view.Y+row
				p, _ := view.ToWorld(x, y)
				d := vmath.Distance(p, z.Center)
				switch {
				case math.Abs(d-z.Radius) <= edge:
					s.SetContent(x, y, GlyphRing, nil, styleRing)
				case d > z.Radius:
					s.SetContent(x, y, ' ', nil, styleOutside)
				}
			}
		}
	}

	for _, b := range snap.Bullets {
		drawTracer(s, view, b)
	}

	// Corpses first so the living stay on top of a shared cell
	for pass := 0; pass < 2; pass++ {
		for _, p := range snap.Players {
			if p.Alive != (pass == 1) {
				continue
			}
			if x, y, ok := view.ToCell(p.Position); ok {
				s.SetContent(x, y, glyphFor(p), nil, playerStyle(p))
			}
		}
	}
}

// drawTracer draws the bullet head and a tail along the path it covered in recent frames
func drawTracer(s tcell.Screen, view Viewport, b entity.Bullet) {
	hx, hy, ok := view.ToCell(b.Position)
	if !ok {
		return
	}
	tail := b.Position.Sub(b.Velocity.Scale(parameter.TracerTailFrames))
	if tx, ty, ok := view.ToCell(vmath.ClampToRect(tail, view.World, 0)); ok {
		vmath.TraverseCells(tx, ty, hx, hy, func(x, y int) bool {
			if x != hx || y != hy {
				s.SetContent(x, y, GlyphTrail, nil, styleTrail)
			}
			return true
		})
	}
	s.SetContent(hx, hy, GlyphBullet, nil, styleBullet)
}

func glyphFor(p entity.Player) rune {
	switch {
	case !p.Alive:
		return GlyphDead
	case p.Human:
		return GlyphHuman
	}
	if r, _ := utf8.DecodeRuneInString(p.Name); r != utf8.RuneError {
		return unicode.ToUpper(r)
	}
	return '?'
}

func playerStyle(p entity.Player) tcell.Style {
	switch {
	case !p.Alive:
		return styleCorpse
	case p.Human:
		return styleHuman
	default:
		return styleAI
	}
}

// StatusLine returns the top bar text for snap
func StatusLine(snap *engine.Snapshot, muted bool) string {
	sections := make([]string, 0, 8)
	if p, ok := snap.Human(); ok {
		sections = append(sections,
			fmt.Sprintf("HP %d", p.Health),
			fmt.Sprintf("AMMO %d/%d", p.Ammo, p.Weapon.Capacity),
		)
	}
	sections = append(sections,
		"TIME "+engine.FormatElapsed(snap.Elapsed),
		fmt.Sprintf("PHASE %d", snap.Phase),
		fmt.Sprintf("KILLS %d", snap.Kills),
		fmt.Sprintf("ALIVE %d", snap.AliveCount),
		fmt.Sprintf("ZONE %.0f (%d/s)", snap.Zone.Radius, snap.Zone.DamagePerSecond),
	)
	if muted {
		sections = append(sections, "MUTED")
	}
	return strings.Join(sections, barSeparator)
}

func (h *HUD) drawStatus(s tcell.Screen, snap *engine.Snapshot) {
	w, _ := s.Size()
	fill(s, 0, w, styleBar)
	drawText(s, 1, 0, styleBar, StatusLine(snap, h.Muted))
}

// drawBottom shows a live toast, else the debug line, else key help
func (h *HUD) drawBottom(s tcell.Screen, snap *engine.Snapshot, toast Toast) {
	w, ht := s.Size()
	y := ht - 1
	switch {
	case toast.Text != "":
		style := severityStyle[toast.Severity]
		fill(s, y, w, style)
		drawText(s, 1, y, style, toast.Text)
	case h.Debug != "":
		drawText(s, 0, y, styleDim, h.Debug)
	default:
		drawText(s, 0, y, styleDim, helpFor(snap.State))
	}
}

func helpFor(state engine.State) string {
	switch state {
	case engine.StateMenu:
		return "[enter] start  [m] mute  [q] quit"
	case engine.StateActive:
		return "[wasd] move  [click] shoot  [esc] abort  [m] mute"
	default:
		return "[enter] again  [esc] menu  [y] copy summary  [q] quit"
	}
}

func drawGameOver(s tcell.Screen, sum *engine.Summary) {
	if sum == nil {
		return
	}
	title := "ELIMINATED"
	if sum.Victory {
		title = "VICTORY"
	}
	winner := sum.WinnerName
	if winner == "" {
		winner = "none"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("placement   #%d", sum.Placement),
		fmt.Sprintf("survived    %s", engine.FormatElapsed(sum.Elapsed)),
		fmt.Sprintf("kills       %d (%d/min)", sum.Kills, sum.KillsPerMinute),
		fmt.Sprintf("damage      %d", sum.DamageDealt),
		fmt.Sprintf("winner      %s", winner),
	}

	w, ht := s.Size()
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	top := max(1, (ht-len(lines))/2-1)
	left := max(0, (w-width)/2)
	for row := 0; row < len(lines)+2; row++ {
		for col := 0; col < width; col++ {
			s.SetContent(left+col, top+row, ' ', nil, stylePanel)
		}
	}
	for i, l := range lines {
		style := stylePanel
		if i == 0 {
			style = stylePanel.Bold(true)
		}
		drawText(s, left+2, top+1+i, style, l)
	}
}

func fill(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y) and returns the column after it
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	x := max(0, (w-len([]rune(text)))/2)
	drawText(s, x, y, style, text)
}
