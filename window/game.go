// Package window runs a match in an ebiten window with real key-up and touch input
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/bulletsinair/game"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/status"
)

// mousePointer is the touch pointer id of the left mouse button; finger ids are offset past it
const mousePointer = 0

// Game implements ebiten.Game over a match controller
type Game struct {
	ctrl     *game.Controller
	metrics  *status.Registry // nil hides the status line
	bindings []binding

	touchIDs []ebiten.TouchID
}

// NewGame creates a window frontend; the aggregator's hold tracker should never expire
func NewGame(ctrl *game.Controller, metrics *status.Registry) *Game {
	return &Game{
		ctrl:     ctrl,
		metrics:  metrics,
		bindings: resolveKeys(ctrl.Input().Keys().Names()),
	}
}

// Update feeds this tick's input into the controller and advances one frame
func (g *Game) Update() error {
	if g.handleKeys() || g.handleTouches() || g.handleMouse() {
		return ebiten.Termination
	}
	g.ctrl.Tick()
	return nil
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := g.ctrl.Session().Rules
	return int(r.SurfaceWidth), int(r.SurfaceHeight)
}

// handleKeys returns true when quit was requested
func (g *Game) handleKeys() bool {
	agg := g.ctrl.Input()
	now := g.ctrl.Now()

	for _, b := range g.bindings {
		action, _ := agg.Keys().Lookup(b.name)

		switch {
		case inpututil.IsKeyJustReleased(b.key):
			agg.KeyUp(b.name)
		case inpututil.IsKeyJustPressed(b.key) && b.pressed():
			if g.ctrl.Apply(agg.KeyDown(b.name, now)) {
				return true
			}
		case action.IsMovement() && b.pressed():
			// Keys held through a pause resume moving without a new press
			agg.KeyDown(b.name, now)
		}
	}
	return false
}

// handleTouches returns true when quit was requested
func (g *Game) handleTouches() bool {
	agg := g.ctrl.Input()

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		agg.TouchUp(touchPointer(id))
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if g.ctrl.Apply(agg.TouchDown(touchPointer(id), float64(x), float64(y), g.ctrl.Now())) {
			return true
		}
	}
	return false
}

// handleMouse drives the touch pad with the left button, returns true when quit was requested
func (g *Game) handleMouse() bool {
	agg := g.ctrl.Input()

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		agg.TouchUp(mousePointer)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return g.ctrl.Apply(agg.TouchDown(mousePointer, float64(x), float64(y), g.ctrl.Now()))
	}
	return false
}

// touchPointer maps an ebiten touch id to a touch pad pointer id
func touchPointer(id ebiten.TouchID) int {
	return int(id) + 1
}

// pad returns the touch pad, nil when touch buttons are disabled
func (g *Game) pad() *input.TouchPad {
	return g.ctrl.Input().TouchPad()
}
