package constants

import "time"

// Input Timing Constants
const (
	// HoldInitialTimeout keeps a terminal key held until the keyboard's auto-repeat starts
	HoldInitialTimeout = 550 * time.Millisecond

	// HoldRepeatTimeout keeps a terminal key held between auto-repeat events
	HoldRepeatTimeout = 120 * time.Millisecond
)

// HUD Constants (playfield units)
const (
	// HealthBarX is the x of the left health bar; the right bar mirrors it
	HealthBarX = 10.0

	// HealthBarWidth is the full-health bar width
	HealthBarWidth = 200.0

	// HealthBarY is the top of both health bars
	HealthBarY = 10.0

	// HealthBarHeight is the height of both health bars
	HealthBarHeight = 20.0
)

// Touch Button Constants (playfield units)
const (
	// TouchButtonWidth is the width of every on-screen button
	TouchButtonWidth = 60.0

	// TouchButtonHeight is the height of every on-screen button
	TouchButtonHeight = 40.0

	// TouchButtonGap separates adjacent buttons
	TouchButtonGap = 10.0

	// TouchButtonMargin is the distance from the outer edge of the playfield to the button cluster
	TouchButtonMargin = 100.0
)

// HUD text
const (
	TextPlayer1Guide = "Player 1: W/S to move, D to shoot"
	TextPlayer2Guide = "Player 2: ↑/↓ to move, ← to shoot"
	TextPlayer2ASCII = "Player 2: Up/Down to move, Left to shoot"
	TextLifecycle    = "P: Pause/Resume | R: Restart"
	TextPaused       = "GAME PAUSED"
	TextResume       = "Press P to resume"
	TextRestart      = "Press R to restart"
	TextWinsSuffix   = " Wins!"
)
