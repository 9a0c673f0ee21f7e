package persistence

import "time"

// HighScoreDTO is the local best-score record
type HighScoreDTO struct {
	Score     int       `yaml:"score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// LeaderboardDTO is the file layout of the file-backed remote
// Entries are keyed by the opaque session token
type LeaderboardDTO struct {
	Entries map[string]EntryDTO `yaml:"entries"`
}

// EntryDTO is one player's leaderboard record
type EntryDTO struct {
	HighScore   int       `yaml:"high_score"`
	Submissions int       `yaml:"submissions"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}
