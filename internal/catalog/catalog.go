// Package catalog is the static registry of achievement display
// metadata and progress-bar values. It owns no persisted state: all
// progress values are derived from the stats the engine already keeps.
package catalog

import (
	"slices"

	"jigasha/internal/progress"
)

// Achievement describes one badge as shown on the achievements screen.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// all lists every achievement in display order.
var all = []Achievement{
	{progress.AchFirstStrike, "First Strike", "Complete your very first quiz", "🎯"},
	{progress.AchBrainSpark, "Brain Spark", "Score 100% in any quiz", "🧠"},
	{progress.AchSpeedDemon, "Speed Demon", "Finish a quiz in under 60 seconds", "⚡"},
	{progress.AchHotStreak, "Hot Streak", "Win 3 quizzes in a row", "🔥"},
	{progress.AchExplorer, "Explorer", "Play quizzes from 5 different categories", "🗺️"},
	{progress.AchQuizVeteran, "Quiz Veteran", "Attempt 25 quizzes in total", "🎖️"},
	{progress.AchPerfectionist, "Perfectionist", "Achieve a perfect score 3 times", "💯"},
	{progress.AchNightOwl, "Night Owl", "Play a quiz between midnight and 3 AM", "🦉"},
	{progress.AchGrandmaster, "Grandmaster", "Reach 500 total points", "👑"},
	{progress.AchMarathoner, "Marathoner", "Play quizzes 7 days in a row", "🏃"},
}

// All returns every achievement in display order.
func All() []Achievement {
	return slices.Clone(all)
}

// Lookup returns the achievement with the given id, or ok=false for an
// unknown id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range all {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Progress returns the current and max progress-bar values for an
// achievement, derived from stats. Threshold achievements report real
// partial progress; event achievements are all-or-nothing.
func Progress(id string, stats progress.UserStats) (current, maxValue int) {
	unlocked := slices.Contains(stats.Achievements, id)

	switch id {
	case progress.AchFirstStrike:
		return min(stats.GamesPlayed, 1), 1
	case progress.AchHotStreak:
		return min(stats.StreakCurrent, 3), 3
	case progress.AchExplorer:
		return min(len(stats.CategoriesPlayed), 5), 5
	case progress.AchQuizVeteran:
		return min(stats.GamesPlayed, 25), 25
	case progress.AchPerfectionist:
		if unlocked {
			return 3, 3
		}
		return 0, 3
	case progress.AchGrandmaster:
		return min(stats.TotalScore, 500), 500
	case progress.AchMarathoner:
		if unlocked {
			return 7, 7
		}
		return 0, 7
	default:
		// brain-spark, speed-demon, night-owl, and anything unknown.
		if unlocked {
			return 1, 1
		}
		return 0, 1
	}
}
