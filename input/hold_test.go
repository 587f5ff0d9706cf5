package input

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestHoldTrackerInitialWindow keeps a single press held until the initial timeout
func TestHoldTrackerInitialWindow(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(ActionP1Up, t0)

	if !h.Held(ActionP1Up, t0.Add(400*time.Millisecond)) {
		t.Error("Expected held inside initial window")
	}
	if h.Held(ActionP1Up, t0.Add(500*time.Millisecond)) {
		t.Error("Expected released at initial timeout")
	}
	if h.Held(ActionP1Up, t0.Add(10*time.Millisecond)) {
		t.Error("Expected expired hold dropped")
	}
}

// TestHoldTrackerRepeatWindow switches to the shorter window once auto-repeat starts
func TestHoldTrackerRepeatWindow(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(ActionP1Up, t0)
	h.Press(ActionP1Up, t0.Add(450*time.Millisecond))

	if !h.Held(ActionP1Up, t0.Add(540*time.Millisecond)) {
		t.Error("Expected held inside repeat window")
	}
	if h.Held(ActionP1Up, t0.Add(550*time.Millisecond)) {
		t.Error("Expected released at repeat timeout")
	}
}

// TestHoldTrackerNoExpiry holds until an explicit release when timeouts are zero
func TestHoldTrackerNoExpiry(t *testing.T) {
	h := NewHoldTracker(0, 0)
	if h.Expires() {
		t.Fatal("Expected zero timeouts to disable expiry")
	}

	h.Press(ActionP2Down, t0)
	if !h.Held(ActionP2Down, t0.Add(time.Hour)) {
		t.Error("Expected held without expiry")
	}

	h.Release(ActionP2Down)
	if h.Held(ActionP2Down, t0) {
		t.Error("Expected released")
	}
}

// TestHoldTrackerReset drops every hold
func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	h.Press(ActionP1Up, t0)
	h.Press(ActionP2Up, t0)

	h.Reset()

	if h.Held(ActionP1Up, t0) || h.Held(ActionP2Up, t0) {
		t.Error("Expected all holds cleared")
	}
}
