package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/render"
)

func newTestRunner(t *testing.T) (*TerminalRunner, *Controller) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected screen init to succeed, got %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	c, _, _ := newTestController()
	renderer := render.NewTerminalRenderer(screen, c.Session().Rules, c.Input().TouchPad(), nil)
	return NewTerminalRunner(screen, c, renderer, time.Millisecond), c
}

// buttonCell returns the screen cell at the center of a touch button
func buttonCell(t *testing.T, r *TerminalRunner, action input.Action) (int, int) {
	t.Helper()
	for _, b := range r.ctrl.Input().TouchPad().Buttons() {
		if b.Action == action {
			return r.renderer.Viewport().Cell(b.Bounds.X+b.Bounds.W/2, b.Bounds.Y+b.Bounds.H/2)
		}
	}
	t.Fatalf("No button for %s", action)
	return 0, 0
}

// TestRunnerKeys tests key events driving gameplay and quit
func TestRunnerKeys(t *testing.T) {
	r, c := newTestRunner(t)

	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift)) {
		t.Fatal("Expected shoot key not to quit")
	}
	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatal("Expected unbound key to be ignored")
	}
	r.Frame()

	if n := len(c.Session().Left().Projectiles); n != 1 {
		t.Errorf("Expected 1 projectile, got %d", n)
	}

	if r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected esc to request exit")
	}
}

// TestRunnerMouseFire tests a mouse click on a fire button shooting once
func TestRunnerMouseFire(t *testing.T) {
	r, c := newTestRunner(t)
	x, y := buttonCell(t, r, input.ActionP2Shoot)

	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	// Drag events with the button still down do not fire again
	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	r.Frame()

	if n := len(c.Session().Right().Projectiles); n != 1 {
		t.Errorf("Expected 1 Player 2 projectile, got %d", n)
	}
}

// TestRunnerMouseMovement tests a held movement button moving the actor until release
func TestRunnerMouseMovement(t *testing.T) {
	r, c := newTestRunner(t)
	x, y := buttonCell(t, r, input.ActionP1Up)
	startY := c.Session().Left().Y

	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	r.Frame()
	r.Frame()
	moved := c.Session().Left().Y
	if moved != startY-2*c.Session().Rules.ActorSpeed {
		t.Errorf("Expected Y %v after two frames, got %v", startY-2*c.Session().Rules.ActorSpeed, moved)
	}

	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	r.Frame()
	if got := c.Session().Left().Y; got != moved {
		t.Errorf("Expected actor to stop at %v after release, got %v", moved, got)
	}
}

// TestRunnerMouseLifecycle tests the on-screen pause button
func TestRunnerMouseLifecycle(t *testing.T) {
	r, c := newTestRunner(t)
	x, y := buttonCell(t, r, input.ActionPause)

	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if c.Session().Phase != engine.PhasePaused {
		t.Errorf("Expected paused, got %s", c.Session().Phase)
	}
}

// TestRunnerResize tests that resize events refit the viewport
func TestRunnerResize(t *testing.T) {
	r, _ := newTestRunner(t)
	r.HandleEvent(tcell.NewEventResize(120, 40))

	if vp := r.renderer.Viewport(); vp.Cols != 120 || vp.Rows != 40 {
		t.Errorf("Expected 120x40 viewport, got %dx%d", vp.Cols, vp.Rows)
	}
}

// TestRunnerContextCancel tests that Run returns when its context is cancelled
func TestRunnerContextCancel(t *testing.T) {
	r, c := newTestRunner(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if c.Session().Frame == 0 {
		t.Error("Expected frames to advance while running")
	}
}
