package input

import (
	"time"

	"github.com/lixenwraith/bulletsinair/engine"
)

// Aggregator merges keyboard and touch state into one engine.Intent per actor per frame
// Gameplay input is accepted only while active; lifecycle actions always pass through
type Aggregator struct {
	keys  *KeyTable
	holds *HoldTracker
	pad   *TouchPad

	active       bool
	pendingShots [2]bool // Edge-triggered shots since the last Sample
}

// NewAggregator creates an active aggregator; pad may be nil when touch buttons are disabled
func NewAggregator(keys *KeyTable, holds *HoldTracker, pad *TouchPad) *Aggregator {
	return &Aggregator{
		keys:   keys,
		holds:  holds,
		pad:    pad,
		active: true,
	}
}

// Keys returns the key table in use
func (a *Aggregator) Keys() *KeyTable {
	return a.keys
}

// TouchPad returns the touch pad, nil when disabled
func (a *Aggregator) TouchPad() *TouchPad {
	return a.pad
}

// SetActive gates gameplay input; deactivating drops shots not yet sampled
func (a *Aggregator) SetActive(active bool) {
	a.active = active
	if !active {
		a.pendingShots = [2]bool{}
	}
}

// Active reports whether gameplay input is accepted
func (a *Aggregator) Active() bool {
	return a.active
}

// KeyDown handles a key press or auto-repeat by key name
func (a *Aggregator) KeyDown(name string, now time.Time) Command {
	action, ok := a.keys.Lookup(name)
	if !ok {
		return CommandNone
	}
	return a.Press(action, now)
}

// KeyUp handles an explicit key release by key name
func (a *Aggregator) KeyUp(name string) {
	if action, ok := a.keys.Lookup(name); ok {
		a.holds.Release(action)
	}
}

// Press applies one action activation from any source
func (a *Aggregator) Press(action Action, now time.Time) Command {
	if cmd := commandFor(action); cmd != CommandNone {
		return cmd
	}
	if !a.active {
		return CommandNone
	}

	switch {
	case action.IsMovement():
		// Without key-up events the reverse direction is the only release signal
		if a.holds.Expires() {
			a.holds.Release(action.opposite())
		}
		a.holds.Press(action, now)
	case action.IsShoot():
		if side, ok := action.Side(); ok {
			a.pendingShots[side] = true
		}
	}
	return CommandNone
}

// TouchDown presses pointer id at a playfield point
func (a *Aggregator) TouchDown(id int, x, y float64, now time.Time) Command {
	if a.pad == nil {
		return CommandNone
	}
	action := a.pad.Press(id, x, y)
	if action == ActionNone || action.IsMovement() {
		// Touch movement is level-triggered through the pad itself
		return CommandNone
	}
	return a.Press(action, now)
}

// TouchUp lifts pointer id
func (a *Aggregator) TouchUp(id int) {
	if a.pad != nil {
		a.pad.Release(id)
	}
}

// Sample returns this frame's intents and consumes pending shots
func (a *Aggregator) Sample(now time.Time) engine.Intents {
	var in engine.Intents
	if !a.active {
		return in
	}

	for _, side := range engine.Sides {
		up, down := movementFor(side)
		in[side] = engine.Intent{
			Up:    a.held(up, now),
			Down:  a.held(down, now),
			Shoot: a.pendingShots[side],
		}
	}
	a.pendingShots = [2]bool{}
	return in
}

func (a *Aggregator) held(action Action, now time.Time) bool {
	if a.holds.Held(action, now) {
		return true
	}
	return a.pad != nil && a.pad.Held(action)
}

// Reset clears holds, pointers and pending shots
func (a *Aggregator) Reset() {
	a.holds.Reset()
	if a.pad != nil {
		a.pad.Reset()
	}
	a.pendingShots = [2]bool{}
}
