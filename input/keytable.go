package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does: gameplay actions, a front-end command, or both
type KeyEntry struct {
	Actions []Action
	Command Command
}

// KeyTable maps terminal keys to entries
type KeyTable struct {
	// Special keys (arrows, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings; case is significant
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
// Uppercase W/S carry sprint since terminals do not report a held Shift
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {Actions: []Action{ActionForward}},
			tcell.KeyDown:   {Actions: []Action{ActionBackward}},
			tcell.KeyLeft:   {Actions: []Action{ActionLeft}},
			tcell.KeyRight:  {Actions: []Action{ActionRight}},
			tcell.KeyEnter:  {Actions: []Action{ActionFire}},
			tcell.KeyEscape: {Command: CommandQuit},
			tcell.KeyCtrlC:  {Command: CommandQuit},
		},
		Runes: map[rune]KeyEntry{
			'w': {Actions: []Action{ActionForward}},
			's': {Actions: []Action{ActionBackward}},
			'a': {Actions: []Action{ActionLeft}},
			'd': {Actions: []Action{ActionRight}},
			'W': {Actions: []Action{ActionForward, ActionSprint}},
			'S': {Actions: []Action{ActionBackward, ActionSprint}},
			'A': {Actions: []Action{ActionLeft}},
			'D': {Actions: []Action{ActionRight}},
			' ': {Actions: []Action{ActionFire}},
			'q': {Command: CommandQuit},
			'p': {Command: CommandPause},
			'r': {Command: CommandRestart},
			'm': {Command: CommandMute},
		},
	}
}

// Lookup resolves a key event's parts to an entry
func (t *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[key]
	return e, ok
}

// Apply feeds a key event into the state at game time now and returns its front-end command
// Keys that imply one movement direction release the opposite one so reversing is immediate
func (t *KeyTable) Apply(s *State, ev *tcell.EventKey, now time.Time) Command {
	e, ok := t.Lookup(ev.Key(), ev.Rune())
	if !ok {
		return CommandNone
	}
	for _, a := range e.Actions {
		switch a {
		case ActionForward:
			s.Release(ActionBackward)
		case ActionBackward:
			s.Release(ActionForward)
		case ActionLeft:
			s.Release(ActionRight)
		case ActionRight:
			s.Release(ActionLeft)
		}
		s.Press(a, now)
	}
	return e.Command
}
