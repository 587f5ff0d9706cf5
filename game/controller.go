// Package game drives a match: it feeds sampled input into the simulation and
// fans the resulting events out to sound, metrics and logs
package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bulletsinair/engine"
	"github.com/lixenwraith/bulletsinair/input"
	"github.com/lixenwraith/bulletsinair/status"
)

// Sounds plays match sound effects
type Sounds interface {
	PlayShot(shooter engine.Side)
	PlayHit(target engine.Side)
	PlayGameOver(winner engine.Side)
}

type silentSounds struct{}

func (silentSounds) PlayShot(engine.Side)     {}
func (silentSounds) PlayHit(engine.Side)      {}
func (silentSounds) PlayGameOver(engine.Side) {}

// fpsSmoothing is the weight of the newest frame in the fps moving average
const fpsSmoothing = 0.1

// Controller owns the session and everything the loop touches each frame
// All methods must be called from the loop goroutine
type Controller struct {
	session  *engine.Session
	input    *input.Aggregator
	sounds   Sounds
	metrics  *status.Registry
	logger   *zap.Logger
	provider engine.TimeProvider

	lastTick time.Time
	fps      float64
}

// NewController wires a session to its input and outputs
// sounds and logger may be nil
func NewController(session *engine.Session, agg *input.Aggregator, sounds Sounds, metrics *status.Registry, logger *zap.Logger, provider engine.TimeProvider) *Controller {
	if sounds == nil {
		sounds = silentSounds{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		session:  session,
		input:    agg,
		sounds:   sounds,
		metrics:  metrics,
		logger:   logger,
		provider: provider,
	}
	c.metrics.Ints.Get(status.KeyMatches).Add(1)
	c.metrics.Strings.Get(status.KeyMatchID).Store(session.MatchID.String())
	c.logger.Info("match started", zap.Stringer("match", session.MatchID))
	return c
}

// Session returns the match state for rendering
func (c *Controller) Session() *engine.Session {
	return c.session
}

// Input returns the aggregator that frontends feed events into
func (c *Controller) Input() *input.Aggregator {
	return c.input
}

// Now returns the controller's current real time
func (c *Controller) Now() time.Time {
	return c.provider.Now()
}

// Apply executes a lifecycle command, returns true when the game should quit
func (c *Controller) Apply(cmd input.Command) bool {
	switch cmd {
	case input.CommandQuit:
		c.logger.Info("quit requested", zap.Stringer("match", c.session.MatchID))
		return true

	case input.CommandTogglePause:
		if c.session.TogglePause() {
			c.logger.Debug("pause toggled", zap.Stringer("phase", c.session.Phase))
		}

	case input.CommandRestart:
		prev := c.session.MatchID
		c.session.Restart()
		c.input.Reset()
		c.metrics.Ints.Get(status.KeyMatches).Add(1)
		c.metrics.Strings.Get(status.KeyMatchID).Store(c.session.MatchID.String())
		c.logger.Info("match restarted",
			zap.Stringer("previous", prev),
			zap.Stringer("match", c.session.MatchID))
	}

	c.input.SetActive(c.session.IsRunning())
	return false
}

// Tick samples input, advances the simulation one frame and dispatches its events
func (c *Controller) Tick() engine.StepResult {
	now := c.provider.Now()
	c.updateFPS(now)

	result := engine.Step(c.session, c.input.Sample(now))
	c.input.SetActive(c.session.IsRunning())

	if result.Advanced {
		c.metrics.Ints.Get(status.KeyFrames).Add(1)
	}
	for _, ev := range result.Events {
		c.dispatch(ev)
	}
	return result
}

// dispatch routes one simulation event
func (c *Controller) dispatch(ev engine.Event) {
	switch ev.Type {
	case engine.EventShotFired:
		key := status.KeyShotsP1
		if ev.Side == engine.SideRight {
			key = status.KeyShotsP2
		}
		c.metrics.Ints.Get(key).Add(1)
		c.sounds.PlayShot(ev.Side)

	case engine.EventHit:
		// Hits are credited to the shooter
		key := status.KeyHitsP1
		if ev.Side == engine.SideLeft {
			key = status.KeyHitsP2
		}
		c.metrics.Ints.Get(key).Add(1)
		c.sounds.PlayHit(ev.Side)
		c.logger.Debug("hit",
			zap.Stringer("target", ev.Side),
			zap.Int("health", ev.Health),
			zap.Int64("frame", c.session.Frame))

	case engine.EventGameOver:
		c.sounds.PlayGameOver(ev.Side)
		c.logger.Info("match over",
			zap.Stringer("match", c.session.MatchID),
			zap.Stringer("winner", ev.Side),
			zap.Int64("frames", c.session.Frame),
			zap.Duration("elapsed", c.session.Elapsed()))
	}

	c.metrics.Strings.Get(status.KeyLastEvent).Store(ev.Type.String())
}

// updateFPS folds the real interval since the previous tick into the moving average
func (c *Controller) updateFPS(now time.Time) {
	if !c.lastTick.IsZero() {
		if dt := now.Sub(c.lastTick); dt > 0 {
			inst := float64(time.Second) / float64(dt)
			if c.fps == 0 {
				c.fps = inst
			} else {
				c.fps += fpsSmoothing * (inst - c.fps)
			}
			c.metrics.Floats.Get(status.KeyFPS).Set(c.fps)
		}
	}
	c.lastTick = now
}
