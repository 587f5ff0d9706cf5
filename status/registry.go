// Package status holds lock-free match metrics written by the game loop and read by the HUD
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyFrames    = "frames"
	KeyShotsP1   = "shots.p1"
	KeyShotsP2   = "shots.p2"
	KeyHitsP1    = "hits.p1" // Hits landed by Player 1
	KeyHitsP2    = "hits.p2" // Hits landed by Player 2
	KeyMatches   = "matches"
	KeyFPS       = "fps"
	KeyMatchID   = "match"
	KeyLastEvent = "last"
)

// Registry groups metrics by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line formats every metric as "key=value" pairs, ints then floats then strings
func (r *Registry) Line() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Ints.Range(func(key string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		sep()
		fmt.Fprintf(&b, "%s=%.1f", key, v.Get())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		sep()
		fmt.Fprintf(&b, "%s=%s", key, v.Load())
	})
	return b.String()
}
