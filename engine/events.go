package engine

// EventType discriminates simulation events emitted by Step
type EventType uint8

const (
	EventShotFired EventType = iota // Side fired a projectile
	EventHit                        // Side was hit
	EventGameOver                   // Side won the match
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventShotFired:
		return "shot_fired"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports something that happened during one Step
// Side meaning depends on Type: shooter, target, winner
type Event struct {
	Type   EventType
	Side   Side
	X, Y   float64
	Health int // Target health after a hit, winner health on game over
}
