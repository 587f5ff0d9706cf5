package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and exponential release to a fixed-length stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	gain     float64
}

// NewEnvelope wraps s with attack shaping and a decay to silence over duration
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
		gain:     gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		} else {
			progress := float64(e.position-e.attack) / float64(e.total-e.attack)
			vol *= math.Exp(-4 * progress)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// ShotSound is a short square blip
func ShotSound(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, WaveSquare, rate), duration, 2*time.Millisecond, 0.15, rate)
}

// HitSound layers a low sine thud with a noise burst
func HitSound(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	thud := NewEnvelope(NewOscillator(freq, duration, WaveSine, rate), duration, 3*time.Millisecond, 0.4, rate)
	crack := NewEnvelope(NewOscillator(0, duration/3, WaveNoise, rate), duration/3, time.Millisecond, 0.2, rate)
	return beep.Mix(thud, crack)
}

// FanfareSound plays a rising major arpeggio, the last note held three times as long
func FanfareSound(noteDuration time.Duration, rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			// Note above Nyquist for this rate
			continue
		}
		d := noteDuration
		if i == len(notes)-1 {
			d *= 3
		}
		parts = append(parts, NewEnvelope(beep.Take(rate.N(d), tone), d, 5*time.Millisecond, 0.3, rate))
	}
	return beep.Seq(parts...)
}
