package input

import (
	"sync"
	"time"
)

// DefaultHold keeps a terminal key active between auto-repeat events
// Terminals report presses only; repeats arrive every ~30ms after an initial delay
const DefaultHold = 300 * time.Millisecond

// State maps each action to its active flag
// Press/Release come from the input goroutine, Snapshot from the frame loop
type State struct {
	mu   sync.Mutex
	hold time.Duration

	held      [actionCount]bool      // explicit press without release
	expiresAt [actionCount]time.Time // latched press for sources without key-up
}

// NewState creates a state; hold > 0 enables the press latch
func NewState(hold time.Duration) *State {
	return &State{hold: hold}
}

// Press activates an action
// With a latch the action stays active until now+hold unless pressed again
func (s *State) Press(a Action, now time.Time) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hold > 0 {
		s.expiresAt[a] = now.Add(s.hold)
		return
	}
	s.held[a] = true
}

// Release deactivates an action regardless of latch
func (s *State) Release(a Action) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.held[a] = false
	s.expiresAt[a] = time.Time{}
}

// ReleaseAll clears every action, used on pause and restart
func (s *State) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.held = [actionCount]bool{}
	s.expiresAt = [actionCount]time.Time{}
}

// Active reports whether a single action is on at now
func (s *State) Active(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked(a, now)
}

func (s *State) activeLocked(a Action, now time.Time) bool {
	return s.held[a] || now.Before(s.expiresAt[a])
}

// Snapshot captures all flags at now
func (s *State) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Forward:  s.activeLocked(ActionForward, now),
		Backward: s.activeLocked(ActionBackward, now),
		Left:     s.activeLocked(ActionLeft, now),
		Right:    s.activeLocked(ActionRight, now),
		Sprint:   s.activeLocked(ActionSprint, now),
		Fire:     s.activeLocked(ActionFire, now),
	}
}
