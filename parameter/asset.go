package parameter

import "time"

// Asset paths resolved through the asset collaborator
const (
	PlayerModelPath = "models/character.gltf"
	EnemyModelPath  = "enemy/enemy-running.gltf"

	IdleClipPath = "animations/idle.gltf"
	WalkClipPath = "animations/jogging.gltf"
	RunClipPath  = "animations/run.gltf"
)

// Clip lengths of the bundled animations
const (
	IdleClipDuration = 2000 * time.Millisecond
	WalkClipDuration = 1000 * time.Millisecond
	RunClipDuration  = 700 * time.Millisecond
)

// Unscaled model bounds (origin at the feet)
const (
	PlayerModelHalfWidth  = 3.0
	PlayerModelHalfHeight = 9.0
	EnemyModelHalfWidth   = 0.35
	EnemyModelHalfHeight  = 0.9
)
