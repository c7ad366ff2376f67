package progress

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestNightOwlUnlocksInEarlyHours(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.now = func() time.Time {
		return time.Date(2026, 3, 14, 2, 30, 0, 0, time.Local)
	}
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})

	if !slices.Contains(tr.Achievements(), AchNightOwl) {
		t.Error("night-owl should unlock for a result at 02:30")
	}
}

func TestNightOwlNotUnlockedAtThree(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.now = func() time.Time {
		return time.Date(2026, 3, 14, 3, 0, 0, 0, time.Local)
	}
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})

	if slices.Contains(tr.Achievements(), AchNightOwl) {
		t.Error("night-owl window is [0,3); 03:00 should not qualify")
	}
}

func TestPerfectionistCountsRetainedPerfectScores(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	if slices.Contains(tr.Achievements(), AchPerfectionist) {
		t.Fatal("perfectionist unlocked with only 2 perfect scores")
	}

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	if !slices.Contains(tr.Achievements(), AchPerfectionist) {
		t.Error("perfectionist should unlock at 3 perfect scores")
	}
}

func TestQuizVeteranAtTwentyFiveGames(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for range 24 {
		tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})
	}
	if slices.Contains(tr.Achievements(), AchQuizVeteran) {
		t.Fatal("quiz-veteran unlocked before 25 games")
	}

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})
	if !slices.Contains(tr.Achievements(), AchQuizVeteran) {
		t.Error("quiz-veteran should unlock at 25 games")
	}
}

func TestPlayedDistinctRecentDays(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	resultAt := func(ts time.Time) QuizResult {
		return QuizResult{Timestamp: ts.UnixMilli(), Percentage: 50}
	}

	t.Run("seven distinct days in window", func(t *testing.T) {
		var history []QuizResult
		for i := range 7 {
			history = append(history, resultAt(now.Add(-time.Duration(i)*24*time.Hour)))
		}
		if !playedDistinctRecentDays(history, 7, now) {
			t.Error("7 distinct days inside the window should qualify")
		}
	})

	t.Run("fewer entries than target fails fast", func(t *testing.T) {
		var history []QuizResult
		for i := range 6 {
			history = append(history, resultAt(now.Add(-time.Duration(i)*24*time.Hour)))
		}
		if playedDistinctRecentDays(history, 7, now) {
			t.Error("6 entries can never span 7 days")
		}
	})

	t.Run("same day repeats do not add up", func(t *testing.T) {
		var history []QuizResult
		for range 10 {
			history = append(history, resultAt(now.Add(-2*time.Hour)))
		}
		if playedDistinctRecentDays(history, 7, now) {
			t.Error("10 results on one day are still one distinct day")
		}
	})

	t.Run("old results outside window excluded", func(t *testing.T) {
		var history []QuizResult
		// 4 recent days plus 3 distinct days older than the window.
		for i := range 4 {
			history = append(history, resultAt(now.Add(-time.Duration(i)*24*time.Hour)))
		}
		for i := 10; i < 13; i++ {
			history = append(history, resultAt(now.Add(-time.Duration(i)*24*time.Hour)))
		}
		if playedDistinctRecentDays(history, 7, now) {
			t.Error("days outside the window should not count")
		}
	})

	t.Run("non-adjacent days within window still qualify", func(t *testing.T) {
		// The check is distinct-days-in-window, not a strict
		// consecutive run: two sessions per day across the window
		// with a mix of hours still reach 7 distinct dates.
		var history []QuizResult
		for i := range 7 {
			day := now.Add(-time.Duration(i) * 24 * time.Hour)
			history = append(history, resultAt(day), resultAt(day.Add(-3*time.Hour)))
		}
		if !playedDistinctRecentDays(history, 7, now) {
			t.Error("expected 7 distinct dates to qualify")
		}
	})
}
