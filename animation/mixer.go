package animation

import (
	"time"
)

// Action is the playback of one clip inside the mixer
type Action struct {
	Duration time.Duration // clip length, 0 for a static pose
	Time     time.Duration // playhead, wraps at Duration
	Weight   float64
}

// Phase returns the normalized playhead in [0,1)
func (a *Action) Phase() float64 {
	if a.Duration <= 0 {
		return 0
	}
	return float64(a.Time) / float64(a.Duration)
}

func (a *Action) advance(dt time.Duration) {
	if a.Duration <= 0 {
		return
	}
	a.Time = (a.Time + dt) % a.Duration
}

// Mixer blends clip actions with a single active crossfade
type Mixer struct {
	actions  [stateCount]*Action
	fadeFrom State
	fadeTo   State
	fadeDur  time.Duration
	fadeLeft time.Duration

	// crossfades counts started blends
	crossfades int
}

// NewMixer creates an empty mixer
func NewMixer() *Mixer {
	return &Mixer{}
}

// SetClip registers the clip length for a state
func (m *Mixer) SetClip(s State, d time.Duration) {
	if s >= stateCount {
		return
	}
	m.actions[s] = &Action{Duration: d}
}

// Action returns the playback for a state, nil when no clip is registered
func (m *Mixer) Action(s State) *Action {
	if s >= stateCount {
		return nil
	}
	return m.actions[s]
}

// Play starts s at full weight with no blend
func (m *Mixer) Play(s State) {
	for i, a := range m.actions {
		if a == nil {
			continue
		}
		if State(i) == s {
			a.Time = 0
			a.Weight = 1
		} else {
			a.Weight = 0
		}
	}
	m.fadeLeft = 0
	m.fadeTo = s
}

// CrossFade blends from one state to another over d
// Between gaits the target playhead is rescaled to keep foot phase continuous
func (m *Mixer) CrossFade(from, to State, d time.Duration) {
	src, dst := m.Action(from), m.Action(to)
	if dst == nil {
		return
	}

	if src != nil && gait(from, to) {
		dst.Time = time.Duration(src.Phase() * float64(dst.Duration))
	} else {
		dst.Time = 0
	}

	// A blend in flight is cut short; the new one starts from the source at full weight
	for i, a := range m.actions {
		if a != nil && State(i) != from {
			a.Weight = 0
		}
	}
	if src != nil {
		src.Weight = 1
	}

	m.fadeFrom = from
	m.fadeTo = to
	m.fadeDur = d
	m.fadeLeft = d
	m.crossfades++
	if d <= 0 {
		m.finishFade()
	}
}

// Update advances playheads and the active crossfade
func (m *Mixer) Update(dt time.Duration) {
	for _, a := range m.actions {
		if a != nil && a.Weight > 0 {
			a.advance(dt)
		}
	}

	if m.fadeLeft <= 0 {
		return
	}
	m.fadeLeft -= dt
	if m.fadeLeft <= 0 {
		m.finishFade()
		return
	}

	t := 1 - float64(m.fadeLeft)/float64(m.fadeDur)
	if dst := m.Action(m.fadeTo); dst != nil {
		dst.Weight = t
	}
	if src := m.Action(m.fadeFrom); src != nil {
		src.Weight = 1 - t
	}
}

func (m *Mixer) finishFade() {
	m.fadeLeft = 0
	if src := m.Action(m.fadeFrom); src != nil && m.fadeFrom != m.fadeTo {
		src.Weight = 0
	}
	if dst := m.Action(m.fadeTo); dst != nil {
		dst.Weight = 1
	}
}

// Fading reports whether a crossfade is in progress
func (m *Mixer) Fading() bool {
	return m.fadeLeft > 0
}

// Weight returns the blend weight of a state
func (m *Mixer) Weight(s State) float64 {
	if a := m.Action(s); a != nil {
		return a.Weight
	}
	return 0
}

// Crossfades returns how many blends have started
func (m *Mixer) Crossfades() int {
	return m.crossfades
}
