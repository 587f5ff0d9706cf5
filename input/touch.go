package input

import (
	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
)

// Button is one on-screen touch target in playfield units
type Button struct {
	Action Action
	Bounds engine.Rect
	Label  string
}

// TouchPad tracks pointers (fingers or mouse buttons) pressing on-screen buttons
type TouchPad struct {
	buttons  []Button
	pointers map[int]Action // Pointer id -> pressed button action
}

// NewTouchPad creates a pad with the stock layout for the given playfield size
// Player 1 buttons sit bottom-left, Player 2 buttons mirror them bottom-right, lifecycle buttons top-center
func NewTouchPad(width, height float64) *TouchPad {
	return &TouchPad{
		buttons:  DefaultLayout(width, height),
		pointers: make(map[int]Action),
	}
}

// DefaultLayout computes the stock button rectangles
func DefaultLayout(width, height float64) []Button {
	const (
		w   = constants.TouchButtonWidth
		h   = constants.TouchButtonHeight
		gap = constants.TouchButtonGap
		m   = constants.TouchButtonMargin
	)

	upY := height - 2*h - 2*gap
	downY := height - h - gap
	fireY := height - 1.5*h - 1.5*gap

	leftX := m
	rightX := width - m - w

	return []Button{
		{ActionP1Up, engine.Rect{X: leftX, Y: upY, W: w, H: h}, "▲"},
		{ActionP1Down, engine.Rect{X: leftX, Y: downY, W: w, H: h}, "▼"},
		{ActionP1Shoot, engine.Rect{X: leftX + w + gap, Y: fireY, W: w, H: h}, "●"},
		{ActionP2Up, engine.Rect{X: rightX, Y: upY, W: w, H: h}, "▲"},
		{ActionP2Down, engine.Rect{X: rightX, Y: downY, W: w, H: h}, "▼"},
		{ActionP2Shoot, engine.Rect{X: rightX - w - gap, Y: fireY, W: w, H: h}, "●"},
		{ActionPause, engine.Rect{X: width/2 - w - gap/2, Y: gap, W: w, H: h}, "II"},
		{ActionRestart, engine.Rect{X: width/2 + gap/2, Y: gap, W: w, H: h}, "R"},
	}
}

// Buttons returns the layout for rendering
func (tp *TouchPad) Buttons() []Button {
	return tp.buttons
}

// ButtonAt returns the button under a playfield point
func (tp *TouchPad) ButtonAt(x, y float64) (Button, bool) {
	for _, b := range tp.buttons {
		if b.Bounds.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Press records pointer id going down at (x, y) and returns the action hit, if any
func (tp *TouchPad) Press(id int, x, y float64) Action {
	b, ok := tp.ButtonAt(x, y)
	if !ok {
		delete(tp.pointers, id)
		return ActionNone
	}
	tp.pointers[id] = b.Action
	return b.Action
}

// Release lifts pointer id
func (tp *TouchPad) Release(id int) {
	delete(tp.pointers, id)
}

// Held reports whether any pointer is pressing the button of action a
func (tp *TouchPad) Held(a Action) bool {
	for _, pa := range tp.pointers {
		if pa == a {
			return true
		}
	}
	return false
}

// Reset lifts every pointer
func (tp *TouchPad) Reset() {
	clear(tp.pointers)
}
