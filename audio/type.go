package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundThrow   SoundType = iota // Projectile fired
	SoundCrumple                  // Pickup collected
	SoundDeath                    // Player caught
	soundTypeCount
)

// String returns the effect name used in logs and config
func (s SoundType) String() string {
	switch s {
	case SoundThrow:
		return "throw"
	case SoundCrumple:
		return "crumple"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
