package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"jigasha/internal/store"
)

// Attempt is the raw outcome of one interactive quiz session, as
// reported by the presentation layer.
type Attempt struct {
	Category       string
	Difficulty     string
	Correct        int // correct answers before penalty
	TotalQuestions int
	TimeSpent      int // seconds
}

// Tracker is the single authoritative mutation point for quiz outcomes
// and derived aggregates. The host application constructs exactly one
// Tracker at startup and injects it into the screens; the in-memory
// document is the source of truth between persists.
//
// Every read returns a defensive copy. A failed persist is logged and
// swallowed: the in-memory state stays correct for the session but may
// not survive a restart.
type Tracker struct {
	repo store.DocumentRepo
	doc  *Document

	// now is a test seam for time-sensitive achievement predicates.
	now func() time.Time
}

// NewTracker loads the persisted document (falling back to defaults on
// missing or corrupt data) and runs legacy migration if older flat keys
// are present. It never fails: load problems are reported on stderr and
// replaced with a fresh default document.
func NewTracker(ctx context.Context, repo store.DocumentRepo) *Tracker {
	t := &Tracker{repo: repo, now: time.Now}
	t.doc = t.load(ctx)

	if migrateLegacy(ctx, repo, t.doc) {
		t.persist(ctx)
	}

	return t
}

func (t *Tracker) load(ctx context.Context) *Document {
	data, ok, err := t.repo.LoadDocument(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load progress data: %v\n", err)
		return NewDocument(t.now())
	}
	if !ok {
		return NewDocument(t.now())
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid progress data, using defaults: %v\n", err)
		return NewDocument(t.now())
	}
	return doc
}

// persist writes the document through to the store. Failures do not
// roll back the in-memory mutation.
func (t *Tracker) persist(ctx context.Context) {
	t.doc.LastUpdated = t.now().UnixMilli()

	data, err := json.Marshal(t.doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to serialize progress data: %v\n", err)
		return
	}
	if err := t.repo.SaveDocument(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save progress data: %v\n", err)
	}
}

// AddResult records a completed attempt: applies the penalty rule,
// prepends the result to history, recomputes aggregates, evaluates
// achievements, and persists.
func (t *Tracker) AddResult(ctx context.Context, a Attempt) QuizResult {
	now := t.now()

	score := PenalizedScore(a.Correct, a.TotalQuestions)
	result := QuizResult{
		ID:             newResultID(now.UnixMilli()),
		Category:       a.Category,
		Difficulty:     a.Difficulty,
		RawScore:       a.Correct,
		Score:          score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     Percentage(score, a.TotalQuestions),
		Timestamp:      now.UnixMilli(),
		TimeSpent:      a.TimeSpent,
	}

	t.doc.History = append([]QuizResult{result}, t.doc.History...)
	if len(t.doc.History) > HistoryLimit {
		t.doc.History = t.doc.History[:HistoryLimit]
	}

	t.updateStats(result)
	unlockAchievements(t.doc, result, now)
	t.persist(ctx)

	return result
}

// updateStats folds one result into the aggregates. The average is
// recomputed over the retained history window rather than kept as a
// true all-time running mean: entries falling off the cap silently
// shift it.
func (t *Tracker) updateStats(result QuizResult) {
	stats := &t.doc.Stats

	stats.TotalScore += result.Score
	stats.GamesPlayed++

	totalPercentage := 0
	for _, r := range t.doc.History {
		totalPercentage += r.Percentage
	}
	stats.AverageScore = int(math.Round(float64(totalPercentage) / float64(len(t.doc.History))))

	stats.BestScore = max(stats.BestScore, result.Percentage)
	stats.TotalTimeSpent += result.TimeSpent

	if !slices.Contains(stats.CategoriesPlayed, result.Category) {
		stats.CategoriesPlayed = append(stats.CategoriesPlayed, result.Category)
	}

	if result.Percentage >= WinThreshold {
		stats.StreakCurrent++
		stats.StreakBest = max(stats.StreakBest, stats.StreakCurrent)
	} else {
		stats.StreakCurrent = 0
	}
}

// Stats returns a copy of the current aggregates.
func (t *Tracker) Stats() UserStats {
	return copyStats(t.doc.Stats)
}

// Settings returns a copy of the current settings.
func (t *Tracker) Settings() UserSettings {
	return t.doc.Settings
}

// UpdateSettings applies the non-nil fields of patch and persists.
func (t *Tracker) UpdateSettings(ctx context.Context, patch SettingsPatch) {
	s := &t.doc.Settings
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.SoundEnabled != nil {
		s.SoundEnabled = *patch.SoundEnabled
	}
	if patch.TimerDuration != nil {
		s.TimerDuration = *patch.TimerDuration
	}
	if patch.ShuffleQuestions != nil {
		s.ShuffleQuestions = *patch.ShuffleQuestions
	}
	if patch.FontSize != nil {
		s.FontSize = *patch.FontSize
	}
	t.persist(ctx)
}

// History returns up to limit results, newest first. limit <= 0 returns
// the whole retained window.
func (t *Tracker) History(limit int) []QuizResult {
	return copyHistory(t.doc.History, limit)
}

// LastResult returns the most recent result, or ok=false if none exist.
func (t *Tracker) LastResult() (QuizResult, bool) {
	if len(t.doc.History) == 0 {
		return QuizResult{}, false
	}
	return t.doc.History[0], true
}

// Achievements returns the unlocked achievement ids in unlock order.
func (t *Tracker) Achievements() []string {
	return append([]string{}, t.doc.Stats.Achievements...)
}

// Export serializes the full document for backup.
func (t *Tracker) Export() string {
	data, err := json.MarshalIndent(t.doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to serialize progress data: %v\n", err)
		return ""
	}
	return string(data)
}

// Import validates and installs a previously exported document. On any
// validation failure it returns false and leaves the current state
// untouched.
func (t *Tracker) Import(ctx context.Context, data string) bool {
	doc, err := DecodeDocument([]byte(data))
	if err != nil {
		return false
	}
	t.doc = doc
	t.persist(ctx)
	return true
}

// ClearAll resets the entire document to defaults.
func (t *Tracker) ClearAll(ctx context.Context) {
	t.doc = NewDocument(t.now())
	t.persist(ctx)
}

// ClearHistory drops all retained results but leaves stats and settings
// untouched.
func (t *Tracker) ClearHistory(ctx context.Context) {
	t.doc.History = []QuizResult{}
	t.persist(ctx)
}

// ResetStats zeroes stats and history but keeps settings. This is the
// only operation besides ClearAll that shrinks the achievements set.
func (t *Tracker) ResetStats(ctx context.Context) {
	t.doc.Stats = DefaultStats()
	t.doc.History = []QuizResult{}
	t.persist(ctx)
}

// ResetSettings restores default settings but keeps stats and history.
func (t *Tracker) ResetSettings(ctx context.Context) {
	t.doc.Settings = DefaultSettings()
	t.persist(ctx)
}
