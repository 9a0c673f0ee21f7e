package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

const highScoreDoc = "highscore"

// Store combines the local high-score file with a remote leaderboard
// It satisfies the session's persistence contract
type Store struct {
	local  *FileStore
	remote Remote
	logger *slog.Logger
}

// NewStore creates a store; a nil remote behaves as Offline
func NewStore(local *FileStore, remote Remote, logger *slog.Logger) *Store {
	if remote == nil {
		remote = Offline{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{local: local, remote: remote, logger: logger}
}

// SubmitScore forwards to the remote leaderboard
func (s *Store) SubmitScore(ctx context.Context, token string, score int) error {
	if err := s.remote.Submit(ctx, token, score); err != nil {
		return errors.Wrap(err, "submit")
	}
	s.logger.Info("score submitted", "score", score)
	return nil
}

// FetchUserScore reads the player's best from the remote leaderboard
func (s *Store) FetchUserScore(ctx context.Context, token string) (int, error) {
	v, err := s.remote.Fetch(ctx, token)
	return v, errors.Wrap(err, "fetch")
}

// FetchLocalHighScore returns the local best, 0 when none was recorded
func (s *Store) FetchLocalHighScore(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var dto HighScoreDTO
	if _, err := s.local.Load(highScoreDoc, &dto); err != nil {
		return 0, err
	}
	return dto.Score, nil
}

// StoreLocalHighScore overwrites the local best
func (s *Store) StoreLocalHighScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if score < 0 {
		return errors.Errorf("negative high score %d", score)
	}
	if err := s.local.Save(highScoreDoc, HighScoreDTO{Score: score, UpdatedAt: time.Now()}); err != nil {
		return err
	}
	s.logger.Info("local high score stored", "score", score)
	return nil
}
