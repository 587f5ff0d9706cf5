package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateIntervalMs is FrameUpdateInterval in milliseconds, used as the config default
	FrameUpdateIntervalMs = 16
)

// Playfield Constants (playfield units, the logical canvas the simulation runs in)
const (
	// SurfaceWidth is the playfield width
	SurfaceWidth = 800.0

	// SurfaceHeight is the playfield height
	SurfaceHeight = 400.0
)
