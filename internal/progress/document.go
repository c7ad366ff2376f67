// Package progress is the scoring and stats engine: it records quiz
// attempts, applies the negative-marking penalty, maintains aggregate
// statistics and a bounded history, and unlocks achievements.
package progress

import "time"

// CurrentVersion is the schema version written into every document.
const CurrentVersion = "1.0.0"

// HistoryLimit is the retention cap on stored results. Aggregates that
// scan history (average score, perfect-score counts, day spans) only see
// this window.
const HistoryLimit = 100

// WinThreshold is the percentage at or above which a result counts as a
// win for streak purposes.
const WinThreshold = 70

// QuizResult is one completed quiz attempt. Immutable once recorded.
type QuizResult struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	RawScore       int    `json:"rawScore"` // correct answers before penalty
	Score          int    `json:"score"`    // penalized score
	TotalQuestions int    `json:"totalQuestions"`
	Percentage     int    `json:"percentage"`
	Timestamp      int64  `json:"timestamp"` // epoch millis
	TimeSpent      int    `json:"timeSpent"` // seconds
}

// Time returns the result's creation time.
func (r QuizResult) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// UserStats is the running aggregate over all recorded attempts.
type UserStats struct {
	TotalScore       int      `json:"totalScore"`
	GamesPlayed      int      `json:"gamesPlayed"`
	AverageScore     int      `json:"averageScore"`
	BestScore        int      `json:"bestScore"`
	TotalTimeSpent   int      `json:"totalTimeSpent"`
	StreakCurrent    int      `json:"streakCurrent"`
	StreakBest       int      `json:"streakBest"`
	CategoriesPlayed []string `json:"categoriesPlayed"`
	Achievements     []string `json:"achievements"`
}

// UserSettings holds user preferences. Independent of stats: a stats
// reset leaves settings alone and vice versa.
type UserSettings struct {
	Theme            string `json:"theme"`
	SoundEnabled     bool   `json:"soundEnabled"`
	TimerDuration    int    `json:"timerDuration"` // seconds per question
	ShuffleQuestions bool   `json:"shuffleQuestions"`
	FontSize         string `json:"fontSize"`
}

// SettingsPatch is a partial settings update. Nil fields are left
// unchanged.
type SettingsPatch struct {
	Theme            *string
	SoundEnabled     *bool
	TimerDuration    *int
	ShuffleQuestions *bool
	FontSize         *string
}

// Document is the full persisted unit: one JSON blob per installation.
type Document struct {
	Version     string       `json:"version"`
	Settings    UserSettings `json:"settings"`
	Stats       UserStats    `json:"stats"`
	History     []QuizResult `json:"history"` // newest-first, capped at HistoryLimit
	LastUpdated int64        `json:"lastUpdated"`
}

// DefaultSettings returns the settings for a fresh installation.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:            "system",
		SoundEnabled:     true,
		TimerDuration:    30,
		ShuffleQuestions: true,
		FontSize:         "medium",
	}
}

// DefaultStats returns zeroed stats.
func DefaultStats() UserStats {
	return UserStats{
		CategoriesPlayed: []string{},
		Achievements:     []string{},
	}
}

// NewDocument returns a fresh document with default settings and stats.
func NewDocument(now time.Time) *Document {
	return &Document{
		Version:     CurrentVersion,
		Settings:    DefaultSettings(),
		Stats:       DefaultStats(),
		History:     []QuizResult{},
		LastUpdated: now.UnixMilli(),
	}
}

// copyStats returns a defensive copy of stats, including its slices.
func copyStats(s UserStats) UserStats {
	out := s
	out.CategoriesPlayed = append([]string{}, s.CategoriesPlayed...)
	out.Achievements = append([]string{}, s.Achievements...)
	return out
}

// copyHistory returns a defensive copy of at most limit results
// (all of them when limit <= 0).
func copyHistory(history []QuizResult, limit int) []QuizResult {
	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]QuizResult{}, history[:n]...)
}
