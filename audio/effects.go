package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/neon-highway/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed sample count
// freqEnd != freq produces a linear sweep across the duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freqEnd
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
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
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.freqEnd-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping and truncates the stream at its duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining < len(samples) {
		samples = samples[:max(remaining, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay applies exp(-t*rate) to a stream
type decay struct {
	streamer beep.Streamer
	rate     float64
	position int
	sr       beep.SampleRate
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-float64(d.position) / float64(d.sr) * d.rate)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sine returns a sine partial limited to duration, or nil if freq is not representable at rate
func sine(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(rate.N(duration), tone)
}

// Cue sound generators

// CreateStartSound generates a two-note rising chime for a new session
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.StartCueNote1Freq, parameter.StartCueNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.StartCueNote1Duration, parameter.StartCueAttack, parameter.StartCueRelease/2, rate)

	n2 := NewOscillator(parameter.StartCueNote2Freq, parameter.StartCueNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.StartCueNote2Duration, parameter.StartCueAttack, parameter.StartCueRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}

// CreateShieldSound generates a bell for shield pickup
func CreateShieldSound(rate beep.SampleRate) beep.Streamer {
	fund := sine(rate, parameter.ShieldCueFreq, parameter.ShieldCueDuration)
	over := sine(rate, parameter.ShieldCueFreq*2, parameter.ShieldCueDuration)
	if fund == nil || over == nil {
		return nil
	}
	fundShaped := NewEnvelope(fund, parameter.ShieldCueDuration, parameter.ShieldCueAttack, parameter.ShieldCueFundamentalDecay, rate)
	overShaped := NewEnvelope(over, parameter.ShieldCueDuration, parameter.ShieldCueAttack, parameter.ShieldCueOvertoneDecay, rate)

	return beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
}

// CreateShieldBreakSound generates a falling sweep for an absorbed hit
func CreateShieldBreakSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(parameter.ShieldBreakStartFreq, parameter.ShieldBreakEndFreq, parameter.ShieldBreakDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, parameter.ShieldBreakDuration, parameter.ShieldBreakAttack, parameter.ShieldBreakRelease, rate)
	return newVolume(shaped, 0.6)
}

// CreateCrashSound generates a decaying noise burst over a low rumble
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.CrashCueDuration, WaveNoise, rate)
	rumble := sine(rate, parameter.CrashCueRumbleFreq, parameter.CrashCueDuration)
	if rumble == nil {
		return nil
	}
	mixed := beep.Mix(
		newVolume(noise, parameter.CrashCueNoiseMix),
		newVolume(rumble, 1-parameter.CrashCueNoiseMix),
	)
	return &decay{streamer: mixed, rate: parameter.CrashCueDecayRate, sr: rate}
}

// CreateSkidSound generates a short noise hiss for oversteer onset
func CreateSkidSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SkidCueDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.SkidCueDuration, parameter.SkidCueAttack, parameter.SkidCueRelease, rate)
	return newVolume(shaped, parameter.SkidCueVolume)
}

// GetCueSound returns the streamer for c scaled by the master volume, nil for unknown cues
func GetCueSound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStart:
		s = CreateStartSound(rate)
	case CueShield:
		s = CreateShieldSound(rate)
	case CueShieldBreak:
		s = CreateShieldBreakSound(rate)
	case CueCrash:
		s = CreateCrashSound(rate)
	case CueSkid:
		s = CreateSkidSound(rate)
	}
	if s == nil {
		return nil
	}
	return newVolume(s, volume)
}
