package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/stardrift/vmath"
)

// Click timing
const (
	clickDuration = 18 * time.Millisecond
	clickAttack   = 1 * time.Millisecond
	clickRelease  = 14 * time.Millisecond
	chimeDuration = 90 * time.Millisecond
	chimeRelease  = 70 * time.Millisecond
	edgeDuration  = 40 * time.Millisecond
	edgeRelease   = 30 * time.Millisecond
)

const (
	noiseSeed        = 0x5eed
	toggleFrequency  = 1800.0
	tierFrequency    = 1200.0
	chimeFundamental = 1318.51 // E6
	chimeOvertone    = 2637.02
)

// noise generates a bounded burst of white noise
type noise struct {
	rng      *vmath.FastRand
	position int
	duration int
}

func newNoise(duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{rng: vmath.NewFastRand(noiseSeed), duration: rate.N(duration)}
}

func (o *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := o.rng.Signed()
		samples[i][0] = v
		samples[i][1] = v
		o.position++
	}
	return len(samples), true
}

func (o *noise) Err() error { return nil }

// envelope applies linear attack/release shaping and ends the stream at duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, duration, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return newEnvelope(sine, duration, clickAttack, release, rate), nil
}

// NewClick builds the finite streamer for kind at the given sample rate and volume
func NewClick(kind ClickKind, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)

	switch kind {
	case ClickToggle:
		s, err = tone(toggleFrequency, clickDuration, clickRelease, rate)
	case ClickTier:
		s, err = tone(tierFrequency, clickDuration, clickRelease, rate)
	case ClickCalibrated:
		var fund, over beep.Streamer
		if fund, err = tone(chimeFundamental, chimeDuration, chimeRelease, rate); err != nil {
			break
		}
		if over, err = tone(chimeOvertone, chimeDuration, chimeRelease/2, rate); err != nil {
			break
		}
		s = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	case ClickEdge:
		s = newEnvelope(newNoise(edgeDuration, rate), edgeDuration, clickAttack, edgeRelease, rate)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownClick, kind)
	}
	if err != nil {
		return nil, err
	}

	return newVolume(s, vmath.Clamp(volume, 0, 1)), nil
}
