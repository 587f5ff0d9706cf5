package input

import "time"

// HoldTracker emulates key-up for input sources that only report key-down
// A key press starts a hold that lasts initialTimeout; every auto-repeat extends it by repeatTimeout
// A zero timeout disables expiry, for sources that report releases explicitly
type HoldTracker struct {
	initialTimeout time.Duration
	repeatTimeout  time.Duration
	holds          map[Action]hold
}

type hold struct {
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with the given expiry windows
func NewHoldTracker(initialTimeout, repeatTimeout time.Duration) *HoldTracker {
	return &HoldTracker{
		initialTimeout: initialTimeout,
		repeatTimeout:  repeatTimeout,
		holds:          make(map[Action]hold),
	}
}

// Expires reports whether holds end on their own, i.e. the source has no key-up events
func (h *HoldTracker) Expires() bool {
	return h.initialTimeout > 0 || h.repeatTimeout > 0
}

// Press starts or extends a hold
func (h *HoldTracker) Press(a Action, now time.Time) {
	if cur, ok := h.holds[a]; ok {
		h.holds[a] = hold{last: now, repeated: cur.repeated || now.After(cur.last)}
		return
	}
	h.holds[a] = hold{last: now}
}

// Release ends a hold immediately
func (h *HoldTracker) Release(a Action) {
	delete(h.holds, a)
}

// Held reports whether a is still held at now, dropping expired holds
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	cur, ok := h.holds[a]
	if !ok {
		return false
	}

	timeout := h.initialTimeout
	if cur.repeated {
		timeout = h.repeatTimeout
	}
	if timeout > 0 && now.Sub(cur.last) >= timeout {
		delete(h.holds, a)
		return false
	}
	return true
}

// Reset releases every hold
func (h *HoldTracker) Reset() {
	clear(h.holds)
}
