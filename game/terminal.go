package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/render"
)

// mousePointer is the touch pointer id the terminal mouse drives
const mousePointer = 0

// TerminalRunner runs a match on a tcell screen
type TerminalRunner struct {
	screen   tcell.Screen
	ctrl     *Controller
	renderer *render.TerminalRenderer
	interval time.Duration

	mouseDown bool
}

// NewTerminalRunner creates a runner ticking every interval
func NewTerminalRunner(screen tcell.Screen, ctrl *Controller, renderer *render.TerminalRenderer, interval time.Duration) *TerminalRunner {
	return &TerminalRunner{
		screen:   screen,
		ctrl:     ctrl,
		renderer: renderer,
		interval: interval,
	}
}

// HandleEvent applies one terminal event, returns false when the game should exit
func (r *TerminalRunner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := input.KeyName(ev)
		if name == "" {
			return true
		}
		cmd := r.ctrl.Input().KeyDown(name, r.ctrl.Now())
		return !r.ctrl.Apply(cmd)

	case *tcell.EventMouse:
		return r.handleMouse(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.renderer.Resize(cols, rows)
		r.screen.Sync()
	}
	return true
}

// handleMouse treats the primary mouse button as a single finger on the touch pad
func (r *TerminalRunner) handleMouse(ev *tcell.EventMouse) bool {
	agg := r.ctrl.Input()
	if agg.TouchPad() == nil {
		return true
	}

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !r.mouseDown:
		r.mouseDown = true
		cx, cy := ev.Position()
		x, y, ok := r.renderer.Viewport().Point(cx, cy)
		if !ok {
			return true
		}
		return !r.ctrl.Apply(agg.TouchDown(mousePointer, x, y, r.ctrl.Now()))

	case !pressed && r.mouseDown:
		r.mouseDown = false
		agg.TouchUp(mousePointer)
	}
	return true
}

// Frame advances the match one tick and paints it
func (r *TerminalRunner) Frame() {
	r.ctrl.Tick()
	r.renderer.RenderFrame(r.ctrl.Session())
}

// Run polls terminal events and ticks frames until quit or ctx is done
// Returns nil on quit and ctx.Err() on cancellation
func (r *TerminalRunner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.renderer.RenderFrame(r.ctrl.Session())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}
