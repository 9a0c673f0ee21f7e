package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/paper-arena/parameter"
)

// SoundManager plays effects and the background loop through the speaker
// Until Initialize succeeds every call is a silent no-op, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	logger      *slog.Logger
	mixer       *beep.Mixer
	background  *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "rate", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.background != nil {
		sm.background.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.background = nil
	sm.initialized = false
}

// SetMuted silences new effects and pauses the background loop
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized && sm.background != nil {
		speaker.Lock()
		sm.background.Paused = muted
		speaker.Unlock()
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted returns the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Throw plays the fire cue
func (sm *SoundManager) Throw() { sm.play(SoundThrow) }

// Crumple plays the pickup cue
func (sm *SoundManager) Crumple() { sm.play(SoundCrumple) }

// Death plays the game-over cue
func (sm *SoundManager) Death() { sm.play(SoundDeath) }

// StartBackground starts or resumes the music loop
func (sm *SoundManager) StartBackground() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.background != nil {
		sm.background.Paused = sm.muted
		return
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	loop := newVolume(NewBeatGenerator(rate), parameter.BackgroundVolume*sm.cfg.MasterVolume)
	sm.background = &beep.Ctrl{Streamer: loop, Paused: sm.muted}
	sm.mixer.Add(sm.background)
}

// StopBackground pauses the music loop
func (sm *SoundManager) StopBackground() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.background == nil {
		return
	}
	speaker.Lock()
	sm.background.Paused = true
	speaker.Unlock()
}

// BeatGenerator generates an endless kick and bass loop
type BeatGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

// NewBeatGenerator creates a background beat generator
func NewBeatGenerator(sr beep.SampleRate) *BeatGenerator {
	return &BeatGenerator{
		sr:      sr,
		samples: sr.N(parameter.BackgroundBeat),
		kick:    sr.N(parameter.BackgroundKick),
	}
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		// Kick on the downbeat
		kick := 0.0
		if beatPos < g.kick {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kick)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		bass := 0.15 * math.Sin(2*math.Pi*parameter.BackgroundBass*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error {
	return nil
}

// BeatPeriod returns the loop period
func (g *BeatGenerator) BeatPeriod() time.Duration {
	return g.sr.D(g.samples)
}
