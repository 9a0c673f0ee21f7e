package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/paper-arena/input"
)

//go:generate go tool mockgen -destination=./mocks/display_mock.go -package=mocks . Display
//go:generate go tool mockgen -destination=./mocks/persistence_mock.go -package=mocks . Persistence
//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . Sound

// Display presents score, ammo and the game-over overlay
type Display interface {
	UpdateScore(score int)
	UpdateAmmo(ammo int)
	ShowGameOverOverlay(finalScore, bestScore int)
}

// Persistence stores scores; the token is opaque to the session
// An empty token means the player is not signed in and only the local record is consulted
type Persistence interface {
	SubmitScore(ctx context.Context, token string, score int) error
	FetchUserScore(ctx context.Context, token string) (int, error)
	FetchLocalHighScore(ctx context.Context) (int, error)
	StoreLocalHighScore(ctx context.Context, score int) error
}

// Sound plays gameplay cues; implementations must not block the frame loop
type Sound interface {
	Throw()
	Crumple()
	Death()
	StartBackground()
	StopBackground()
}

// InputSource yields the held actions at now
// *input.State satisfies it
type InputSource interface {
	Snapshot(now time.Time) input.Snapshot
}

// pausable is implemented by clocks that can freeze game time
type pausable interface {
	Pause()
	Resume()
}

type nopDisplay struct{}

func (nopDisplay) UpdateScore(int)              {}
func (nopDisplay) UpdateAmmo(int)               {}
func (nopDisplay) ShowGameOverOverlay(int, int) {}

type nopSound struct{}

func (nopSound) Throw()           {}
func (nopSound) Crumple()         {}
func (nopSound) Death()           {}
func (nopSound) StartBackground() {}
func (nopSound) StopBackground()  {}

// nopPersistence remembers nothing; every final score is its own best
type nopPersistence struct{}

func (nopPersistence) SubmitScore(context.Context, string, int) error      { return nil }
func (nopPersistence) FetchUserScore(context.Context, string) (int, error) { return 0, nil }
func (nopPersistence) FetchLocalHighScore(context.Context) (int, error)    { return 0, nil }
func (nopPersistence) StoreLocalHighScore(context.Context, int) error      { return nil }

type noInput struct{}

func (noInput) Snapshot(time.Time) input.Snapshot { return input.Snapshot{} }
