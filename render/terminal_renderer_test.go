package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/status"
)

func newTestRenderer(t *testing.T, pad *input.TouchPad, metrics *status.Registry) (tcell.SimulationScreen, *TerminalRenderer, *engine.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected screen init to succeed, got %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	rules := engine.DefaultRules()
	session := engine.NewSession(rules, engine.NewMockTimeProvider(time.Unix(0, 0)))
	return screen, NewTerminalRenderer(screen, rules, pad, metrics), session
}

// screenText returns the runes of every row joined by newlines
func screenText(screen tcell.SimulationScreen) string {
	cols, rows := screen.Size()
	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func background(screen tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

// TestRenderActors tests that both actors are painted in their colors at their start cells
func TestRenderActors(t *testing.T) {
	screen, r, s := newTestRenderer(t, nil, nil)
	r.RenderFrame(s)

	// 80x24: 0.1 cells per unit horizontally, rows 1..21 hold 400 units
	if bg := background(screen, 6, 12); bg != RgbPlayer1 {
		t.Errorf("Expected Player 1 color at (6,12), got %v", bg)
	}
	x, y := r.Viewport().Cell(s.Right().X+1, s.Right().Y+1)
	if bg := background(screen, x, y); bg != RgbPlayer2 {
		t.Errorf("Expected Player 2 color at (%d,%d), got %v", x, y, bg)
	}
	if bg := background(screen, 40, 5); bg != RgbBackground {
		t.Errorf("Expected background at (40,5), got %v", bg)
	}
}

// TestRenderProjectile tests that a projectile is drawn in its owner's color
func TestRenderProjectile(t *testing.T) {
	screen, r, s := newTestRenderer(t, nil, nil)
	s.Left().Projectiles = append(s.Left().Projectiles, engine.Projectile{X: 400, Y: 100, Size: 8, Direction: 1})
	r.RenderFrame(s)

	x, y := r.Viewport().Cell(401, 101)
	if bg := background(screen, x, y); bg != RgbPlayer1 {
		t.Errorf("Expected projectile at (%d,%d), got %v", x, y, bg)
	}

	// Trail extends behind the projectile
	tx, ty := r.Viewport().Cell(400-s.Rules.ProjectileSpeed, 101)
	ch, _, _, _ := screen.GetContent(tx, ty)
	if ch != '░' {
		t.Errorf("Expected trail rune at (%d,%d), got %q", tx, ty, ch)
	}
}

// TestRenderHealthBars tests that health bars shrink with damage
func TestRenderHealthBars(t *testing.T) {
	screen, r, s := newTestRenderer(t, nil, nil)
	r.RenderFrame(s)

	countFilled := func() int {
		n := 0
		for x := 0; x < 40; x++ {
			ch, _, style, _ := screen.GetContent(x, 0)
			fg, _, _ := style.Decompose()
			if ch == '█' && fg == RgbHealth {
				n++
			}
		}
		return n
	}

	full := countFilled()
	if full == 0 {
		t.Fatal("Expected a filled left health bar")
	}

	s.Left().Health = 50
	r.RenderFrame(s)
	if half := countFilled(); half != full/2 {
		t.Errorf("Expected %d filled cells at half health, got %d", full/2, half)
	}

	s.Left().Health = -10
	r.RenderFrame(s)
	if empty := countFilled(); empty != 0 {
		t.Errorf("Expected empty bar below zero health, got %d cells", empty)
	}
}

// TestRenderBanners tests the pause and game over overlays
func TestRenderBanners(t *testing.T) {
	screen, r, s := newTestRenderer(t, nil, nil)

	r.RenderFrame(s)
	text := screenText(screen)
	if strings.Contains(text, constants.TextPaused) {
		t.Error("Expected no pause banner while running")
	}
	if !strings.Contains(text, constants.TextPlayer1Guide) {
		t.Error("Expected controls guide in footer")
	}

	s.TogglePause()
	r.RenderFrame(s)
	text = screenText(screen)
	for _, want := range []string{constants.TextPaused, constants.TextResume, constants.TextRestart} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q while paused", want)
		}
	}

	s.TogglePause()
	s.Left().Health = 10
	s.Right().Projectiles = append(s.Right().Projectiles, engine.Projectile{
		X: s.Left().X + s.Left().Width + s.Rules.ProjectileSpeed, Y: s.Left().Y + 1, Size: 8, Direction: -1,
	})
	engine.Step(s, engine.Intents{})
	r.RenderFrame(s)
	text = screenText(screen)
	if !strings.Contains(text, "Player 2 Wins!") {
		t.Errorf("Expected win banner, got:\n%s", text)
	}
	if strings.Contains(text, constants.TextPaused) {
		t.Error("Expected no pause banner on game over")
	}
}

// TestRenderTouchButtons tests that touch buttons are drawn and highlighted while held
func TestRenderTouchButtons(t *testing.T) {
	pad := input.NewTouchPad(constants.SurfaceWidth, constants.SurfaceHeight)
	screen, r, s := newTestRenderer(t, pad, nil)

	var fire input.Button
	for _, b := range pad.Buttons() {
		if b.Action == input.ActionP1Shoot {
			fire = b
		}
	}

	x0, y0, _, _ := r.Viewport().CellRect(fire.Bounds)
	r.RenderFrame(s)
	if bg := background(screen, x0, y0); bg != RgbButton {
		t.Errorf("Expected idle button color, got %v", bg)
	}

	pad.Press(0, fire.Bounds.X+1, fire.Bounds.Y+1)
	r.RenderFrame(s)
	if bg := background(screen, x0, y0); bg != RgbButtonActive {
		t.Errorf("Expected active button color, got %v", bg)
	}
}

// TestRenderStatusLine tests that the metrics line replaces the lifecycle hint
func TestRenderStatusLine(t *testing.T) {
	metrics := status.NewRegistry()
	metrics.Ints.Get(status.KeyFrames).Store(42)
	screen, r, s := newTestRenderer(t, nil, metrics)

	r.RenderFrame(s)
	text := screenText(screen)
	if !strings.Contains(text, "frames=42") {
		t.Error("Expected metrics line in footer")
	}
	if strings.Contains(text, constants.TextLifecycle) {
		t.Error("Expected lifecycle hint replaced by metrics line")
	}
}

// TestRenderResize tests that the viewport follows the screen size
func TestRenderResize(t *testing.T) {
	screen, r, s := newTestRenderer(t, nil, nil)
	screen.SetSize(160, 44)
	r.Resize(160, 44)
	r.RenderFrame(s)

	vp := r.Viewport()
	if vp.Cols != 160 || vp.FieldRows != 41 {
		t.Errorf("Expected 160 cols and 41 field rows, got %d and %d", vp.Cols, vp.FieldRows)
	}
	x, y := vp.Cell(s.Left().X+1, s.Left().Y+1)
	if bg := background(screen, x, y); bg != RgbPlayer1 {
		t.Errorf("Expected Player 1 at (%d,%d) after resize, got %v", x, y, bg)
	}
}
