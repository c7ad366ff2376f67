package progress

import (
	"slices"
	"time"
)

// Achievement ids. Display metadata lives in the catalog package; the
// unlock predicates live here because they read engine state.
const (
	AchFirstStrike   = "first-strike"
	AchBrainSpark    = "brain-spark"
	AchSpeedDemon    = "speed-demon"
	AchHotStreak     = "hot-streak"
	AchExplorer      = "explorer"
	AchQuizVeteran   = "quiz-veteran"
	AchPerfectionist = "perfectionist"
	AchNightOwl      = "night-owl"
	AchGrandmaster   = "grandmaster"
	AchMarathoner    = "marathoner"
)

// marathonerDays is the day span checked by the marathoner achievement.
const marathonerDays = 7

// unlockAchievements evaluates every predicate against the updated
// stats/history and appends newly satisfied ids. Achievements are
// append-only: an id already present is never re-added or removed.
func unlockAchievements(doc *Document, latest QuizResult, now time.Time) {
	stats := &doc.Stats

	unlock := func(id string, satisfied bool) {
		if satisfied && !slices.Contains(stats.Achievements, id) {
			stats.Achievements = append(stats.Achievements, id)
		}
	}

	unlock(AchFirstStrike, stats.GamesPlayed == 1)
	unlock(AchBrainSpark, latest.Percentage == 100)
	unlock(AchSpeedDemon, latest.TimeSpent < 60)
	unlock(AchHotStreak, stats.StreakCurrent >= 3)
	unlock(AchExplorer, len(stats.CategoriesPlayed) >= 5)
	unlock(AchQuizVeteran, stats.GamesPlayed >= 25)

	perfect := 0
	for _, r := range doc.History {
		if r.Percentage == 100 {
			perfect++
		}
	}
	unlock(AchPerfectionist, perfect >= 3)

	hour := latest.Time().Hour()
	unlock(AchNightOwl, hour >= 0 && hour < 3)

	unlock(AchGrandmaster, stats.TotalScore >= 500)
	unlock(AchMarathoner, playedDistinctRecentDays(doc.History, marathonerDays, now))
}

// playedDistinctRecentDays reports whether history contains results on
// at least targetDays distinct calendar dates, each less than targetDays
// days old. This is deliberately not a strict consecutive-day check:
// any targetDays distinct dates inside the window qualify.
func playedDistinctRecentDays(history []QuizResult, targetDays int, now time.Time) bool {
	if len(history) < targetDays {
		return false
	}

	dates := make(map[string]struct{})
	for _, r := range history {
		daysDiff := int(now.Sub(r.Time()).Hours() / 24)
		if daysDiff < targetDays {
			dates[r.Time().Format("2006-01-02")] = struct{}{}
		}
	}

	return len(dates) >= targetDays
}
