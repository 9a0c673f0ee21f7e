package animation

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/input"
)

// Clips are the asset handles the machine waits on before entering Idle
type Clips struct {
	Idle *asset.Handle[asset.Clip]
	Walk *asset.Handle[asset.Clip]
	Run  *asset.Handle[asset.Clip]
}

func (c Clips) ready() bool {
	return asset.AllReady(c.Idle, c.Walk, c.Run)
}

// Machine is the player's locomotion state machine
// One active state, and the previous one only for blending
type Machine struct {
	current     State
	previous    State
	transitions map[State][]Transition
	mixer       *Mixer
	clips       Clips
	crossfade   time.Duration
	logger      *slog.Logger

	// OnEnter fires after a state change; used for metrics and debug HUD
	OnEnter func(from, to State)
}

// NewMachine creates a machine in StateNone waiting on clips
func NewMachine(clips Clips, crossfade time.Duration, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		transitions: DefaultTransitions(),
		mixer:       NewMixer(),
		clips:       clips,
		crossfade:   crossfade,
		logger:      logger,
	}
}

// State returns the active state
func (m *Machine) State() State {
	return m.current
}

// Previous returns the state left by the last transition
func (m *Machine) Previous() State {
	return m.previous
}

// Mixer exposes the blend state
func (m *Machine) Mixer() *Mixer {
	return m.mixer
}

// SetState enters s; re-entering the active state is a no-op
// Returns true when a transition happened
func (m *Machine) SetState(s State) bool {
	if s == m.current || s == StateNone || s >= stateCount {
		return false
	}

	from := m.current
	m.previous = from
	m.current = s

	if from == StateNone {
		m.mixer.Play(s)
	} else {
		m.mixer.CrossFade(from, s, m.crossfade)
	}

	m.logger.Debug("animation transition", "from", from.String(), "to", s.String())
	if m.OnEnter != nil {
		m.OnEnter(from, s)
	}
	return true
}

// Reset returns to StateNone with a fresh mixer
// The next Update enters Idle again without a blend
func (m *Machine) Reset() {
	m.current = StateNone
	m.previous = StateNone
	m.mixer = NewMixer()
}

// Update evaluates the transition table and advances the mixer
// Before all clips load the machine stays in StateNone and does nothing
func (m *Machine) Update(dt time.Duration, in input.Snapshot) {
	if m.current == StateNone {
		if !m.clips.ready() {
			return
		}
		m.bindClips()
		m.SetState(StateIdle)
	}

	for _, tr := range m.transitions[m.current] {
		if tr.Guard(in) {
			m.SetState(tr.To)
			break
		}
	}

	m.mixer.Update(dt)
}

func (m *Machine) bindClips() {
	for s, h := range map[State]*asset.Handle[asset.Clip]{
		StateIdle: m.clips.Idle,
		StateWalk: m.clips.Walk,
		StateRun:  m.clips.Run,
	} {
		clip, _ := h.Get()
		m.mixer.SetClip(s, clip.Duration)
	}
}
