package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jigasha/internal/app"
	"jigasha/internal/progress"
	"jigasha/internal/store"
	"jigasha/internal/trivia"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := progress.NewTracker(ctx, st.DocumentRepo())

	return app.Run(app.Options{
		Tracker: tracker,
		Trivia:  trivia.NewClient(),
	})
}

// withTracker opens the store, constructs a tracker, and hands it to fn.
// Used by the non-interactive subcommands.
func withTracker(cmd *cobra.Command, fn func(*progress.Tracker) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return fn(progress.NewTracker(cmd.Context(), st.DocumentRepo()))
}
