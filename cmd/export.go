package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jigasha/internal/progress"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(tr *progress.Tracker) error {
			data := tr.Export()
			if exportOut == "" {
				fmt.Println(data)
				return nil
			}
			if err := os.WriteFile(exportOut, []byte(data+"\n"), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Println("Exported to", exportOut)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file instead of stdout")
}
