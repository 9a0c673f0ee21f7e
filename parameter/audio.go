package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.8
)

// Throw Sound (paper ball leaving the hand)
const (
	ThrowSoundDuration = 120 * time.Millisecond
	ThrowSoundAttack   = 5 * time.Millisecond
	ThrowSoundRelease  = 90 * time.Millisecond
	ThrowStartFreq     = 900.0 // Hz
	ThrowEndFreq       = 300.0 // Hz
)

// Crumple Sound (ammo pickup)
const (
	CrumpleSoundDuration = 250 * time.Millisecond
	CrumpleSoundAttack   = 10 * time.Millisecond
	CrumpleSoundRelease  = 150 * time.Millisecond
	CrumpleGrainRate     = 40.0 // Hz - bursts per second
)

// Death Sound
const (
	DeathSoundDuration = 900 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 600 * time.Millisecond
	DeathStartFreq     = 440.0 // Hz
	DeathEndFreq       = 55.0  // Hz
)

// Background Loop
const (
	BackgroundBeat   = 600 * time.Millisecond // 100 BPM
	BackgroundKick   = 100 * time.Millisecond
	BackgroundBass   = 110.0 // Hz
	BackgroundVolume = 0.35
)
