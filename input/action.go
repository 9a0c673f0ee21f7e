package input

// Action is a logical gameplay input, independent of the device that produced it
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionSprint
	ActionFire
	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:  "forward",
	ActionBackward: "backward",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionSprint:   "sprint",
	ActionFire:     "fire",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Command is a front-end request that does not feed the simulation
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandRestart
	CommandMute
)

// Snapshot is the read-only view the simulation consumes each tick
type Snapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
	Fire     bool
}

// Moving reports whether a translational key is active
func (s Snapshot) Moving() bool {
	return s.Forward || s.Backward
}
