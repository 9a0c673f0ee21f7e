package animation

import "github.com/lixenwraith/paper-arena/input"

// State is a locomotion animation state
type State uint8

const (
	// StateNone holds until every clip has loaded
	StateNone State = iota
	StateIdle
	StateWalk
	StateRun
	stateCount
)

var stateNames = [stateCount]string{
	StateNone: "none",
	StateIdle: "idle",
	StateWalk: "walk",
	StateRun:  "run",
}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return "unknown"
}

// Guard decides whether a transition fires for the current input
type Guard func(input.Snapshot) bool

// Transition is one edge of the table, evaluated in declaration order
type Transition struct {
	To    State
	Guard Guard
}

func moving(s input.Snapshot) bool    { return s.Moving() }
func stopped(s input.Snapshot) bool   { return !s.Moving() }
func sprinting(s input.Snapshot) bool { return s.Moving() && s.Sprint }
func jogging(s input.Snapshot) bool   { return s.Moving() && !s.Sprint }

// DefaultTransitions is the locomotion table
// Idle reaches Run through Walk so the crossfade always blends adjacent gaits
func DefaultTransitions() map[State][]Transition {
	return map[State][]Transition{
		StateIdle: {
			{To: StateWalk, Guard: moving},
		},
		StateWalk: {
			{To: StateIdle, Guard: stopped},
			{To: StateRun, Guard: sprinting},
		},
		StateRun: {
			{To: StateIdle, Guard: stopped},
			{To: StateWalk, Guard: jogging},
		},
	}
}

// gait reports whether both states are cyclic locomotion clips sharing foot phase
func gait(a, b State) bool {
	return (a == StateWalk && b == StateRun) || (a == StateRun && b == StateWalk)
}
