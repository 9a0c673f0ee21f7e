package persistence

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNotAuthenticated is returned for an empty or unknown token
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrOffline is returned when no leaderboard is reachable
	ErrOffline = errors.New("leaderboard offline")
)

// Remote is the signed-in leaderboard
type Remote interface {
	Submit(ctx context.Context, token string, score int) error
	Fetch(ctx context.Context, token string) (int, error)
}

// Offline is a Remote that is never reachable
type Offline struct{}

func (Offline) Submit(context.Context, string, int) error {
	return ErrOffline
}

func (Offline) Fetch(context.Context, string) (int, error) {
	return 0, ErrOffline
}

const leaderboardDoc = "leaderboard"

// FileRemote is a leaderboard kept in a YAML file
// Submit only ever raises a player's stored high score
type FileRemote struct {
	files *FileStore
	now   func() time.Time
}

// NewFileRemote creates a leaderboard stored under files
func NewFileRemote(files *FileStore) *FileRemote {
	return &FileRemote{files: files, now: time.Now}
}

func (r *FileRemote) load() (LeaderboardDTO, error) {
	var dto LeaderboardDTO
	if _, err := r.files.Load(leaderboardDoc, &dto); err != nil {
		return dto, err
	}
	if dto.Entries == nil {
		dto.Entries = make(map[string]EntryDTO)
	}
	return dto, nil
}

// Submit records score for token, keeping the higher of the stored and submitted scores
func (r *FileRemote) Submit(ctx context.Context, token string, score int) error {
	if token == "" {
		return ErrNotAuthenticated
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dto, err := r.load()
	if err != nil {
		return errors.Wrap(err, "load leaderboard")
	}
	e := dto.Entries[token]
	e.Submissions++
	if score > e.HighScore {
		e.HighScore = score
		e.UpdatedAt = r.now()
	}
	dto.Entries[token] = e
	return errors.Wrap(r.files.Save(leaderboardDoc, dto), "save leaderboard")
}

// Fetch returns the stored high score for token
// A token that never submitted is unknown to the leaderboard
func (r *FileRemote) Fetch(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrNotAuthenticated
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dto, err := r.load()
	if err != nil {
		return 0, errors.Wrap(err, "load leaderboard")
	}
	e, ok := dto.Entries[token]
	if !ok {
		return 0, errors.Wrapf(ErrNotAuthenticated, "token %q", token)
	}
	return e.HighScore, nil
}
