package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jigasha/internal/progress"
)

var (
	resetStats    bool
	resetSettings bool
	resetAll      bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetStats && !resetSettings && !resetAll {
			return fmt.Errorf("nothing to do: pass --stats, --settings, or --all")
		}
		return withTracker(cmd, func(tr *progress.Tracker) error {
			ctx := cmd.Context()
			switch {
			case resetAll:
				tr.ClearAll(ctx)
				fmt.Println("All data reset.")
			case resetStats && resetSettings:
				tr.ResetStats(ctx)
				tr.ResetSettings(ctx)
				fmt.Println("Stats, history, and settings reset.")
			case resetStats:
				tr.ResetStats(ctx)
				fmt.Println("Stats and history reset. Settings kept.")
			case resetSettings:
				tr.ResetSettings(ctx)
				fmt.Println("Settings restored to defaults. Stats kept.")
			}
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetStats, "stats", false, "Reset statistics and history, keep settings")
	resetCmd.Flags().BoolVar(&resetSettings, "settings", false, "Restore default settings, keep stats")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Reset everything")
}
