package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/status"
)

// TerminalRenderer paints a session onto a tcell screen
// It only reads the session; drawing order has no effect on simulation
type TerminalRenderer struct {
	screen  tcell.Screen
	rules   engine.Rules
	vp      Viewport
	pad     *input.TouchPad  // nil hides touch buttons
	metrics *status.Registry // nil hides the status line
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, rules engine.Rules, pad *input.TouchPad, metrics *status.Registry) *TerminalRenderer {
	cols, rows := screen.Size()
	return &TerminalRenderer{
		screen:  screen,
		rules:   rules,
		vp:      NewViewport(cols, rows, rules.SurfaceWidth, rules.SurfaceHeight),
		pad:     pad,
		metrics: metrics,
	}
}

// Resize refits the playfield to a new screen size
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.vp = NewViewport(cols, rows, r.rules.SurfaceWidth, r.rules.SurfaceHeight)
}

// Viewport returns the current cell mapping, used to translate mouse positions
func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// RenderFrame paints the entire frame
func (r *TerminalRenderer) RenderFrame(s *engine.Session) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', base)

	if r.pad != nil {
		r.drawButtons(base)
	}

	for _, side := range engine.Sides {
		r.drawProjectiles(s.Actor(side), base)
	}
	for _, side := range engine.Sides {
		a := s.Actor(side)
		r.fillRect(a.Bounds(), base.Background(ActorColor(side)))
	}

	r.drawHUD(s, base)
	r.drawFooter(base)

	switch s.Phase {
	case engine.PhasePaused:
		r.drawBanner(base, constants.TextPaused, constants.TextResume, constants.TextRestart)
	case engine.PhaseGameOver:
		r.drawBanner(base, s.Winner.String()+constants.TextWinsSuffix, constants.TextRestart)
	}

	r.screen.Show()
}

// drawProjectiles draws each trail one projectile-speed behind, then the projectile over it
func (r *TerminalRenderer) drawProjectiles(a *engine.Actor, base tcell.Style) {
	trail := base.Foreground(TrailColor(a.Side))
	body := base.Background(ActorColor(a.Side))

	for _, p := range a.Projectiles {
		tx := p.X - r.rules.ProjectileSpeed
		if p.Direction < 0 {
			tx = p.X + r.rules.ProjectileSpeed
		}
		r.fillRectRune(engine.Rect{X: tx, Y: p.Y, W: 2 * p.Size, H: p.Size}, '░', trail)
		r.fillRect(engine.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}, body)
	}
}

// drawHUD draws both health bars on the top row with the match timer between them
func (r *TerminalRenderer) drawHUD(s *engine.Session, base tcell.Style) {
	barCols := int(constants.HealthBarWidth * r.vp.ScaleX)
	if barCols < 10 {
		barCols = 10
	}

	leftX, _ := r.vp.Cell(constants.HealthBarX, 0)
	rightX, _ := r.vp.Cell(r.rules.SurfaceWidth-constants.HealthBarX-constants.HealthBarWidth, 0)
	if rightX+barCols > r.vp.Cols {
		rightX = r.vp.Cols - barCols
	}

	r.drawHealthBar(leftX, s.Left().Health, barCols, base)
	r.drawHealthBar(rightX, s.Right().Health, barCols, base)

	elapsed := s.Elapsed().Truncate(time.Second)
	timer := fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	r.drawTextCentered(0, timer, base.Foreground(RgbDimText))
}

// drawHealthBar fills barCols cells proportionally to health
func (r *TerminalRenderer) drawHealthBar(x, health, barCols int, base tcell.Style) {
	filled := 0
	if health > 0 {
		filled = health * barCols / r.rules.MaxHealth
	}
	if filled > barCols {
		filled = barCols
	}

	for i := 0; i < barCols; i++ {
		style := base.Foreground(RgbHealthEmpty)
		if i < filled {
			style = base.Foreground(RgbHealth)
		}
		r.screen.SetContent(x+i, 0, '█', nil, style)
	}
}

// drawFooter draws the controls guide, or the metrics line when enabled
func (r *TerminalRenderer) drawFooter(base tcell.Style) {
	guideRow := r.vp.Rows - 2
	lastRow := r.vp.Rows - 1
	guide := base.Foreground(RgbDimText)

	r.drawText(1, guideRow, constants.TextPlayer1Guide, guide)
	r.drawText(r.vp.Cols-1-len([]rune(constants.TextPlayer2Guide)), guideRow, constants.TextPlayer2Guide, guide)

	if r.metrics != nil {
		r.drawText(1, lastRow, r.metrics.Line(), guide)
		return
	}
	r.drawTextCentered(lastRow, constants.TextLifecycle, guide)
}

// drawButtons draws the touch buttons, highlighted while pressed
func (r *TerminalRenderer) drawButtons(base tcell.Style) {
	for _, b := range r.pad.Buttons() {
		style := base.Background(RgbButton)
		if r.pad.Held(b.Action) {
			style = base.Background(RgbButtonActive).Foreground(tcell.ColorBlack)
		}
		r.fillRect(b.Bounds, style)

		x0, y0, x1, y1 := r.vp.CellRect(b.Bounds)
		label := []rune(b.Label)
		lx := x0 + (x1-x0-len(label))/2
		r.drawText(lx, (y0+y1-1)/2, b.Label, style)
	}
}

// drawBanner darkens the playfield center and prints lines there, the first one bold
func (r *TerminalRenderer) drawBanner(base tcell.Style, lines ...string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4

	centerY := r.vp.Top + r.vp.FieldRows/2
	y0 := centerY - len(lines)/2 - 1
	x0 := (r.vp.Cols - width) / 2
	box := base.Background(RgbOverlay)

	for y := y0; y < y0+len(lines)+2; y++ {
		for x := x0; x < x0+width; x++ {
			if r.vp.InField(x, y) {
				r.screen.SetContent(x, y, ' ', nil, box)
			}
		}
	}

	for i, l := range lines {
		style := box
		if i == 0 {
			style = box.Bold(true)
		}
		r.drawTextCentered(y0+1+i, l, style)
	}
}

// fillRect paints a playfield rectangle with the style background
func (r *TerminalRenderer) fillRect(rect engine.Rect, style tcell.Style) {
	r.fillRectRune(rect, ' ', style)
}

// fillRectRune paints a playfield rectangle with ch, clipped to the playfield
func (r *TerminalRenderer) fillRectRune(rect engine.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.vp.CellRect(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.vp.InField(x, y) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

// drawText writes s from (x, y), clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.vp.Rows {
		return
	}
	for i, ch := range []rune(s) {
		if x+i >= 0 && x+i < r.vp.Cols {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// drawTextCentered writes s centered on row y
func (r *TerminalRenderer) drawTextCentered(y int, s string, style tcell.Style) {
	r.drawText((r.vp.Cols-len([]rune(s)))/2, y, s, style)
}
