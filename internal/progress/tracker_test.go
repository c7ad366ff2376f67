package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"
)

// memRepo implements store.DocumentRepo in memory for engine tests.
type memRepo struct {
	doc     []byte
	hasDoc  bool
	values  map[string]string
	saveErr error
	saves   int
}

func newMemRepo() *memRepo {
	return &memRepo{values: map[string]string{}}
}

func (m *memRepo) LoadDocument(_ context.Context) ([]byte, bool, error) {
	return m.doc, m.hasDoc, nil
}

func (m *memRepo) SaveDocument(_ context.Context, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = append([]byte(nil), data...)
	m.hasDoc = true
	m.saves++
	return nil
}

func (m *memRepo) GetValue(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memRepo) DeleteValues(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func newTestTracker(t *testing.T) (*Tracker, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	tr := NewTracker(context.Background(), repo)
	tr.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)
	}
	return tr, repo
}

func TestFirstResultUnlocksStarterAchievements(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{
		Category:       "science",
		Difficulty:     "easy",
		Correct:        10,
		TotalQuestions: 10,
		TimeSpent:      45,
	})

	stats := tr.Stats()
	if stats.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", stats.GamesPlayed)
	}
	if stats.BestScore != 100 {
		t.Errorf("BestScore = %d, want 100", stats.BestScore)
	}
	if stats.TotalScore != 10 {
		t.Errorf("TotalScore = %d, want 10", stats.TotalScore)
	}
	for _, id := range []string{AchFirstStrike, AchBrainSpark, AchSpeedDemon} {
		if !slices.Contains(stats.Achievements, id) {
			t.Errorf("expected achievement %q to be unlocked, got %v", id, stats.Achievements)
		}
	}
}

func TestPenaltyAppliedOnRecord(t *testing.T) {
	tr, _ := newTestTracker(t)

	result := tr.AddResult(context.Background(), Attempt{
		Category:       "history",
		Difficulty:     "medium",
		Correct:        7,
		TotalQuestions: 10,
		TimeSpent:      120,
	})

	if result.RawScore != 7 {
		t.Errorf("RawScore = %d, want 7", result.RawScore)
	}
	if result.Score != 6 { // 3 wrong -> penalty 1
		t.Errorf("Score = %d, want 6", result.Score)
	}
	if result.Percentage != 60 {
		t.Errorf("Percentage = %d, want 60", result.Percentage)
	}
}

func TestZeroQuestionsGuarded(t *testing.T) {
	tr, _ := newTestTracker(t)

	result := tr.AddResult(context.Background(), Attempt{Category: "misc"})

	if result.Percentage != 0 {
		t.Errorf("Percentage = %d, want 0", result.Percentage)
	}
}

func TestStreakResetAndBest(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	win := Attempt{Category: "science", Correct: 10, TotalQuestions: 10, TimeSpent: 90}
	loss := Attempt{Category: "science", Correct: 3, TotalQuestions: 10, TimeSpent: 90}

	tr.AddResult(ctx, win)
	tr.AddResult(ctx, win)
	tr.AddResult(ctx, win)
	if got := tr.Stats().StreakCurrent; got != 3 {
		t.Fatalf("StreakCurrent = %d, want 3", got)
	}

	tr.AddResult(ctx, loss)
	stats := tr.Stats()
	if stats.StreakCurrent != 0 {
		t.Errorf("StreakCurrent after loss = %d, want 0", stats.StreakCurrent)
	}
	if stats.StreakBest != 3 {
		t.Errorf("StreakBest = %d, want 3", stats.StreakBest)
	}
	if !slices.Contains(stats.Achievements, AchHotStreak) {
		t.Error("hot-streak should stay unlocked after the streak breaks")
	}
}

func TestHistoryCapAndAverageRecompute(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// 5 poor results that will fall out of the window, then 100 perfect.
	for range 5 {
		tr.AddResult(ctx, Attempt{Category: "a", Correct: 0, TotalQuestions: 10})
	}
	var last QuizResult
	for range 100 {
		last = tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	}

	history := tr.History(0)
	if len(history) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), HistoryLimit)
	}
	if history[0].ID != last.ID {
		t.Error("history[0] should be the most recently recorded result")
	}

	// All 5 zero-percentage results have been truncated away, so the
	// average reflects only the retained window.
	stats := tr.Stats()
	if stats.AverageScore != 100 {
		t.Errorf("AverageScore = %d, want 100 (window-scoped)", stats.AverageScore)
	}
	if stats.GamesPlayed != 105 {
		t.Errorf("GamesPlayed = %d, want 105", stats.GamesPlayed)
	}
}

func TestGrandmasterUnlocksOnExactThreshold(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Each attempt adds 10 points; grandmaster needs 500.
	for i := 1; i <= 49; i++ {
		tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
		if slices.Contains(tr.Stats().Achievements, AchGrandmaster) {
			t.Fatalf("grandmaster unlocked early at totalScore=%d", tr.Stats().TotalScore)
		}
	}

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	stats := tr.Stats()
	if stats.TotalScore != 500 {
		t.Fatalf("TotalScore = %d, want 500", stats.TotalScore)
	}
	if !slices.Contains(stats.Achievements, AchGrandmaster) {
		t.Error("grandmaster should unlock when totalScore reaches 500")
	}
}

func TestAchievementsMonotonic(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	attempts := []Attempt{
		{Category: "a", Correct: 10, TotalQuestions: 10, TimeSpent: 30},
		{Category: "b", Correct: 2, TotalQuestions: 10, TimeSpent: 300},
		{Category: "c", Correct: 9, TotalQuestions: 10, TimeSpent: 90},
		{Category: "d", Correct: 0, TotalQuestions: 10, TimeSpent: 10},
		{Category: "e", Correct: 10, TotalQuestions: 10, TimeSpent: 55},
	}

	var prev []string
	for i, a := range attempts {
		tr.AddResult(ctx, a)
		cur := tr.Achievements()
		if len(cur) < len(prev) {
			t.Fatalf("achievement count shrank at attempt %d: %v -> %v", i, prev, cur)
		}
		for _, id := range prev {
			if !slices.Contains(cur, id) {
				t.Fatalf("achievement %q revoked at attempt %d", id, i)
			}
		}
		prev = cur
	}
}

func TestExplorerAfterFiveCategories(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for _, c := range []string{"a", "b", "c", "d"} {
		tr.AddResult(ctx, Attempt{Category: c, Correct: 5, TotalQuestions: 10})
	}
	if slices.Contains(tr.Achievements(), AchExplorer) {
		t.Fatal("explorer unlocked with only 4 categories")
	}

	// Repeats don't count as new categories.
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})
	if slices.Contains(tr.Achievements(), AchExplorer) {
		t.Fatal("explorer unlocked from a repeated category")
	}

	tr.AddResult(ctx, Attempt{Category: "e", Correct: 5, TotalQuestions: 10})
	if !slices.Contains(tr.Achievements(), AchExplorer) {
		t.Error("explorer should unlock at 5 distinct categories")
	}
}

func TestResetSemantics(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	theme := "dark"
	tr.UpdateSettings(ctx, SettingsPatch{Theme: &theme})
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})

	tr.ResetStats(ctx)
	if got := tr.Stats().GamesPlayed; got != 0 {
		t.Errorf("GamesPlayed after ResetStats = %d, want 0", got)
	}
	if got := len(tr.History(0)); got != 0 {
		t.Errorf("history length after ResetStats = %d, want 0", got)
	}
	if got := tr.Settings().Theme; got != "dark" {
		t.Errorf("Theme after ResetStats = %q, want %q", got, "dark")
	}

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	tr.ResetSettings(ctx)
	if got := tr.Settings(); got != DefaultSettings() {
		t.Errorf("settings after ResetSettings = %+v, want defaults", got)
	}
	if got := tr.Stats().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed after ResetSettings = %d, want 1", got)
	}

	tr.ClearAll(ctx)
	if got := tr.Stats().GamesPlayed; got != 0 {
		t.Errorf("GamesPlayed after ClearAll = %d, want 0", got)
	}
	if got := len(tr.History(0)); got != 0 {
		t.Errorf("history after ClearAll = %d entries, want 0", got)
	}
}

func TestClearHistoryKeepsStats(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	tr.ClearHistory(ctx)

	if got := len(tr.History(0)); got != 0 {
		t.Errorf("history length = %d, want 0", got)
	}
	if got := tr.Stats().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed = %d, want 1", got)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{Category: "science", Difficulty: "hard", Correct: 8, TotalQuestions: 10, TimeSpent: 150})
	tr.AddResult(ctx, Attempt{Category: "history", Difficulty: "easy", Correct: 3, TotalQuestions: 10, TimeSpent: 80})

	before, err := json.Marshal(tr.doc)
	if err != nil {
		t.Fatal(err)
	}

	exported := tr.Export()
	if !tr.Import(ctx, exported) {
		t.Fatal("import of exported document failed")
	}

	after, err := json.Marshal(tr.doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("document changed over export/import round trip:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestImportInvalidLeavesStateUnchanged(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})
	before := tr.Export()

	payloads := []string{
		"not json",
		`{}`,
		`{"version": 1, "settings": {}, "stats": {}, "history": [], "lastUpdated": 0}`,
		`{"version": "1.0.0", "settings": {}, "stats": {}, "history": {}, "lastUpdated": 0}`,
		`{"version": "1.0.0", "settings": {}, "stats": {}, "history": []}`,
	}
	for _, p := range payloads {
		if tr.Import(ctx, p) {
			t.Errorf("Import(%q) = true, want false", p)
		}
	}

	if got := tr.Export(); got != before {
		t.Error("state changed after rejected imports")
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	tr, repo := newTestTracker(t)
	ctx := context.Background()

	repo.saveErr = errors.New("disk full")
	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})

	// In-memory state stays correct for the session even though the
	// durable write failed.
	if got := tr.Stats().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed = %d, want 1", got)
	}
	if _, ok := tr.LastResult(); !ok {
		t.Error("expected a last result despite persist failure")
	}
}

func TestLoadCorruptDataFallsBackToDefaults(t *testing.T) {
	repo := newMemRepo()
	repo.doc = []byte("{{{ definitely not a document")
	repo.hasDoc = true

	tr := NewTracker(context.Background(), repo)

	if got := tr.Stats().GamesPlayed; got != 0 {
		t.Errorf("GamesPlayed = %d, want 0", got)
	}
	if got := tr.Settings(); got != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}
}

func TestLoadPersistedDocument(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(context.Background(), repo)
	tr.AddResult(context.Background(), Attempt{Category: "science", Correct: 9, TotalQuestions: 10})

	// A second tracker over the same repo sees the persisted state.
	tr2 := NewTracker(context.Background(), repo)
	if got := tr2.Stats().GamesPlayed; got != 1 {
		t.Errorf("GamesPlayed after reload = %d, want 1", got)
	}
	if last, ok := tr2.LastResult(); !ok || last.Category != "science" {
		t.Errorf("LastResult after reload = (%+v, %v)", last, ok)
	}
}

func TestReadsReturnDefensiveCopies(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.AddResult(ctx, Attempt{Category: "a", Correct: 10, TotalQuestions: 10})

	stats := tr.Stats()
	stats.Achievements[0] = "tampered"
	stats.CategoriesPlayed[0] = "tampered"
	if slices.Contains(tr.Stats().Achievements, "tampered") {
		t.Error("mutating returned achievements leaked into engine state")
	}
	if slices.Contains(tr.Stats().CategoriesPlayed, "tampered") {
		t.Error("mutating returned categories leaked into engine state")
	}

	history := tr.History(0)
	history[0].Category = "tampered"
	if got := tr.History(0)[0].Category; got != "a" {
		t.Errorf("history entry mutated externally: %q", got)
	}
}

func TestHistoryLimitArgument(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for range 10 {
		tr.AddResult(ctx, Attempt{Category: "a", Correct: 5, TotalQuestions: 10})
	}

	if got := len(tr.History(3)); got != 3 {
		t.Errorf("History(3) length = %d, want 3", got)
	}
	if got := len(tr.History(0)); got != 10 {
		t.Errorf("History(0) length = %d, want 10", got)
	}
	if got := len(tr.History(50)); got != 10 {
		t.Errorf("History(50) length = %d, want 10", got)
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	timer := 60
	sound := false
	tr.UpdateSettings(ctx, SettingsPatch{TimerDuration: &timer, SoundEnabled: &sound})

	s := tr.Settings()
	if s.TimerDuration != 60 {
		t.Errorf("TimerDuration = %d, want 60", s.TimerDuration)
	}
	if s.SoundEnabled {
		t.Error("SoundEnabled should be false")
	}
	// Untouched fields keep their defaults.
	if s.Theme != "system" || s.FontSize != "medium" || !s.ShuffleQuestions {
		t.Errorf("unpatched fields changed: %+v", s)
	}
}

func TestResultIDsUnique(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := range 50 {
		r := tr.AddResult(ctx, Attempt{Category: fmt.Sprint(i), Correct: 5, TotalQuestions: 10})
		if seen[r.ID] {
			t.Fatalf("duplicate result id %q", r.ID)
		}
		seen[r.ID] = true
	}
}
