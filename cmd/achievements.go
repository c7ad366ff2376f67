package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"jigasha/internal/catalog"
	"jigasha/internal/progress"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(tr *progress.Tracker) error {
			unlocked := tr.Achievements()
			stats := tr.Stats()
			for _, a := range catalog.All() {
				mark := " "
				if slices.Contains(unlocked, a.ID) {
					mark = "x"
				}
				cur, max := catalog.Progress(a.ID, stats)
				fmt.Printf("[%s] %s %-16s %d/%d  %s\n", mark, a.Icon, a.Name, cur, max, a.Description)
			}
			fmt.Printf("\n%d of %d unlocked\n", len(unlocked), len(catalog.All()))
			return nil
		})
	},
}
