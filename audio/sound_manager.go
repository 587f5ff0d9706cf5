// Package audio synthesizes and plays the match sound effects
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bulletsinair/constants"
	"github.com/lixenwraith/bulletsinair/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// stereo placement per side
const sidePan = 0.4

// SoundManager owns the speaker and a mixer that every effect is added to
// Methods are safe to call before Initialize or after its failure; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSoundManager creates a manager with the master volume as log2 gain
func NewSoundManager(volume float64, muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
			Silent:   muted,
		},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores output without stopping playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.master.Silent
}

// PlayShot plays the fire blip, panned toward the shooter
func (sm *SoundManager) PlayShot(side engine.Side) {
	freq := constants.ShotFrequencyLeft
	if side == engine.SideRight {
		freq = constants.ShotFrequencyRight
	}
	sm.play(pan(side, ShotSound(freq, constants.ShotSoundDuration, sampleRate)))
}

// PlayHit plays the impact thud, panned toward the actor that was hit
func (sm *SoundManager) PlayHit(target engine.Side) {
	sm.play(pan(target, HitSound(constants.HitFrequency, constants.HitSoundDuration, sampleRate)))
}

// PlayGameOver plays the fanfare, centered
func (sm *SoundManager) PlayGameOver(engine.Side) {
	sm.play(FanfareSound(constants.FanfareNoteDuration, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func pan(side engine.Side, s beep.Streamer) beep.Streamer {
	p := -sidePan
	if side == engine.SideRight {
		p = sidePan
	}
	return &effects.Pan{Streamer: s, Pan: p}
}
