package progress

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"jigasha/internal/store"
)

// Flat keys written by the pre-document schema generation.
const (
	legacyTotalScore       = "quiz-total-score"
	legacyGamesPlayed      = "quiz-games-played"
	legacySoundEnabled     = "quiz-sound-enabled"
	legacyTimerDuration    = "quiz-timer-duration"
	legacyShuffleQuestions = "quiz-shuffle-questions"
	legacyFontSize         = "quiz-font-size"
)

// legacyKeys is every key the old schema used, including ones whose
// values are not carried forward. All are deleted after migration.
var legacyKeys = []string{
	legacyTotalScore,
	legacyGamesPlayed,
	"quiz-last-score",
	"quiz-last-total",
	"quiz-last-category",
	"quiz-last-difficulty",
	legacySoundEnabled,
	legacyTimerDuration,
	legacyShuffleQuestions,
	legacyFontSize,
}

// migrateLegacy imports flat legacy fields into doc and deletes them.
// Returns true if anything was imported, in which case the caller must
// persist the document. Idempotent: once the legacy keys are gone,
// subsequent calls are no-ops.
func migrateLegacy(ctx context.Context, repo store.DocumentRepo, doc *Document) bool {
	totalScore, hasTotal := getLegacy(ctx, repo, legacyTotalScore)
	gamesPlayed, hasGames := getLegacy(ctx, repo, legacyGamesPlayed)
	if !hasTotal && !hasGames {
		return false
	}

	doc.Stats.TotalScore = parseLegacyInt(totalScore)
	doc.Stats.GamesPlayed = parseLegacyInt(gamesPlayed)
	if doc.Stats.GamesPlayed > 0 {
		// The old schema scored each game out of 10 and stored no
		// per-game percentages, so the average is reconstructed from
		// the totals.
		doc.Stats.AverageScore = int(math.Round(
			float64(doc.Stats.TotalScore) / float64(doc.Stats.GamesPlayed*10) * 100))
	} else {
		doc.Stats.AverageScore = 0
	}

	if v, ok := getLegacy(ctx, repo, legacySoundEnabled); ok {
		doc.Settings.SoundEnabled = v != "false"
	}
	if v, ok := getLegacy(ctx, repo, legacyTimerDuration); ok {
		doc.Settings.TimerDuration = parseLegacyInt(v)
	}
	if v, ok := getLegacy(ctx, repo, legacyShuffleQuestions); ok {
		doc.Settings.ShuffleQuestions = v != "false"
	}
	if v, ok := getLegacy(ctx, repo, legacyFontSize); ok {
		doc.Settings.FontSize = v
	}

	if err := repo.DeleteValues(ctx, legacyKeys...); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to remove legacy keys: %v\n", err)
	}

	return true
}

func getLegacy(ctx context.Context, repo store.DocumentRepo, key string) (string, bool) {
	v, ok, err := repo.GetValue(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read legacy key %s: %v\n", key, err)
		return "", false
	}
	return v, ok
}

// parseLegacyInt parses an old stored number, treating anything
// unparseable as zero rather than failing the migration.
func parseLegacyInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
