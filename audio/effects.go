package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/paper-arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end frequency over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// grain chops a stream into bursts at rate Hz, the crackle of paper
type grain struct {
	streamer beep.Streamer
	period   int
	position int
}

func newGrain(s beep.Streamer, hz float64, rate beep.SampleRate) beep.Streamer {
	return &grain{streamer: s, period: max(int(float64(rate)/hz), 2)}
}

func (g *grain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		// Burst in the first third of each period
		if g.position%g.period > g.period/3 {
			samples[i][0] *= 0.15
			samples[i][1] *= 0.15
		}
		g.position++
	}
	return n, ok
}

func (g *grain) Err() error { return g.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateThrowSound generates a falling whistle for a throw
func CreateThrowSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.ThrowStartFreq, parameter.ThrowEndFreq, parameter.ThrowSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.ThrowSoundDuration, parameter.ThrowSoundAttack, parameter.ThrowSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundThrow] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateCrumpleSound generates a grainy noise burst for a pickup
func CreateCrumpleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.CrumpleSoundDuration, WaveNoise, rate)
	grainy := newGrain(noise, parameter.CrumpleGrainRate, rate)
	shaped := NewEnvelope(grainy, parameter.CrumpleSoundDuration, parameter.CrumpleSoundAttack, parameter.CrumpleSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundCrumple] * cfg.MasterVolume * 0.6
	return newVolume(shaped, vol)
}

// CreateDeathSound generates a long downward saw glide over a sine body
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewSweep(parameter.DeathStartFreq, parameter.DeathEndFreq, parameter.DeathSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	body := NewSweep(parameter.DeathStartFreq/2, parameter.DeathEndFreq/2, parameter.DeathSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.4),
		newVolume(bodyShaped, 0.6),
	)

	vol := cfg.EffectVolumes[SoundDeath] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns the effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundThrow:
		return CreateThrowSound(cfg)
	case SoundCrumple:
		return CreateCrumpleSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	default:
		return nil
	}
}
