package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"jigasha/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(tr *progress.Tracker) error {
			s := tr.Stats()
			fmt.Printf("Games played:    %d\n", s.GamesPlayed)
			fmt.Printf("Total score:     %d\n", s.TotalScore)
			fmt.Printf("Average score:   %d%%\n", s.AverageScore)
			fmt.Printf("Best score:      %d%%\n", s.BestScore)
			fmt.Printf("Current streak:  %d\n", s.StreakCurrent)
			fmt.Printf("Best streak:     %d\n", s.StreakBest)
			fmt.Printf("Time spent:      %s\n", (time.Duration(s.TotalTimeSpent) * time.Second).String())
			if len(s.CategoriesPlayed) > 0 {
				fmt.Printf("Categories:      %s\n", strings.Join(s.CategoriesPlayed, ", "))
			}
			return nil
		})
	},
}
