package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jigasha/internal/progress"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(tr *progress.Tracker) error {
			results := tr.History(historyLimit)
			if len(results) == 0 {
				fmt.Println("No games recorded yet.")
				return nil
			}
			for _, r := range results {
				fmt.Printf("%s  %-24s %-8s %3d%%  (%d/%d, %ds)\n",
					r.Time().Format("2006-01-02 15:04"),
					r.Category, r.Difficulty, r.Percentage,
					r.RawScore, r.TotalQuestions, r.TimeSpent)
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of results to show (0 for all)")
}
