package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
)

// Palette
var (
	colorBackground   = color.NRGBA{20, 20, 28, 255}
	colorPlayer1      = color.NRGBA{0, 0, 255, 255}
	colorPlayer2      = color.NRGBA{255, 0, 0, 255}
	colorTrail1       = color.NRGBA{0, 0, 255, 90}
	colorTrail2       = color.NRGBA{255, 0, 0, 90}
	colorHealth       = color.NRGBA{0, 200, 0, 255}
	colorHealthEmpty  = color.NRGBA{50, 50, 50, 255}
	colorOverlay      = color.NRGBA{0, 0, 0, 170}
	colorButton       = color.NRGBA{200, 200, 220, 60}
	colorButtonActive = color.NRGBA{200, 200, 220, 160}
)

// debugGlyph is the cell size of the ebitenutil debug font
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

func actorColor(side engine.Side) color.Color {
	if side == engine.SideLeft {
		return colorPlayer1
	}
	return colorPlayer2
}

func trailColor(side engine.Side) color.Color {
	if side == engine.SideLeft {
		return colorTrail1
	}
	return colorTrail2
}

// Draw paints the session; it never mutates it
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctrl.Session()
	screen.Fill(colorBackground)

	for _, side := range engine.Sides {
		a := s.Actor(side)
		for _, p := range a.Projectiles {
			tx := p.X - s.Rules.ProjectileSpeed
			if p.Direction < 0 {
				tx = p.X + s.Rules.ProjectileSpeed
			}
			fillRect(screen, engine.Rect{X: tx, Y: p.Y, W: 2 * p.Size, H: p.Size}, trailColor(side))
			fillRect(screen, engine.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}, actorColor(side))
		}
	}
	for _, side := range engine.Sides {
		fillRect(screen, s.Actor(side).Bounds(), actorColor(side))
	}

	g.drawHUD(screen, s)
	if pad := g.pad(); pad != nil {
		for _, b := range pad.Buttons() {
			c := colorButton
			if pad.Held(b.Action) {
				c = colorButtonActive
			}
			fillRect(screen, b.Bounds, c)
			printCentered(screen, asciiLabel(b.Label), b.Bounds.X+b.Bounds.W/2, b.Bounds.Y+b.Bounds.H/2-debugGlyphH/2)
		}
	}

	switch s.Phase {
	case engine.PhasePaused:
		drawBanner(screen, s.Rules, constants.TextPaused, constants.TextResume, constants.TextRestart)
	case engine.PhaseGameOver:
		drawBanner(screen, s.Rules, s.Winner.String()+constants.TextWinsSuffix, constants.TextRestart)
	}
}

// drawHUD draws health bars, match timer, controls guide and the optional status line
func (g *Game) drawHUD(screen *ebiten.Image, s *engine.Session) {
	r := s.Rules
	drawHealthBar(screen, constants.HealthBarX, s.Left().Health, r.MaxHealth)
	drawHealthBar(screen, r.SurfaceWidth-constants.HealthBarX-constants.HealthBarWidth, s.Right().Health, r.MaxHealth)

	elapsed := s.Elapsed().Truncate(time.Second)
	timer := fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	printCentered(screen, timer, r.SurfaceWidth/2, constants.HealthBarY)

	guideY := int(r.SurfaceHeight) - 2*debugGlyphH
	ebitenutil.DebugPrintAt(screen, constants.TextPlayer1Guide, 10, guideY)
	ebitenutil.DebugPrintAt(screen, constants.TextPlayer2ASCII, int(r.SurfaceWidth)-10-len(constants.TextPlayer2ASCII)*debugGlyphW, guideY)

	if g.metrics != nil {
		ebitenutil.DebugPrintAt(screen, g.metrics.Line(), 10, guideY+debugGlyphH)
		return
	}
	printCentered(screen, constants.TextLifecycle, r.SurfaceWidth/2, float64(guideY+debugGlyphH))
}

// drawHealthBar draws a full-width background and the remaining health over it
func drawHealthBar(screen *ebiten.Image, x float64, health, maxHealth int) {
	fillRect(screen, engine.Rect{X: x, Y: constants.HealthBarY, W: constants.HealthBarWidth, H: constants.HealthBarHeight}, colorHealthEmpty)
	if health <= 0 {
		return
	}
	w := constants.HealthBarWidth * float64(health) / float64(maxHealth)
	fillRect(screen, engine.Rect{X: x, Y: constants.HealthBarY, W: w, H: constants.HealthBarHeight}, colorHealth)
}

// drawBanner dims the playfield and prints lines centered on it
func drawBanner(screen *ebiten.Image, r engine.Rules, lines ...string) {
	fillRect(screen, engine.Rect{W: r.SurfaceWidth, H: r.SurfaceHeight}, colorOverlay)
	top := r.SurfaceHeight/2 - float64(len(lines)*debugGlyphH)/2
	for i, l := range lines {
		printCentered(screen, l, r.SurfaceWidth/2, top+float64(i*debugGlyphH))
	}
}

// asciiLabel swaps button glyphs the debug font cannot draw
func asciiLabel(label string) string {
	switch label {
	case "▲":
		return "UP"
	case "▼":
		return "DN"
	case "●":
		return "FIRE"
	}
	return label
}

func fillRect(screen *ebiten.Image, rect engine.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// printCentered prints s horizontally centered on cx with its top at y
func printCentered(screen *ebiten.Image, s string, cx, y float64) {
	x := int(cx) - len([]rune(s))*debugGlyphW/2
	ebitenutil.DebugPrintAt(screen, s, x, int(y))
}
