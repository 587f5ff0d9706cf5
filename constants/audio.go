package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ShotSoundDuration is the length of the shot blip
	ShotSoundDuration = 60 * time.Millisecond

	// HitSoundDuration is the length of the hit thud
	HitSoundDuration = 140 * time.Millisecond

	// FanfareNoteDuration is the length of each game-over fanfare note
	FanfareNoteDuration = 120 * time.Millisecond

	// DefaultVolume is the master volume as log2 gain (0 = unity)
	DefaultVolume = -1.0
)

// Shot pitch per side, Player 1 higher than Player 2
const (
	ShotFrequencyLeft  = 880.0
	ShotFrequencyRight = 660.0
	HitFrequency       = 110.0
)
