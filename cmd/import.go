package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jigasha/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import data from a JSON export, replacing the current state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read import data: %w", err)
		}

		return withTracker(cmd, func(tr *progress.Tracker) error {
			if !tr.Import(cmd.Context(), string(data)) {
				return fmt.Errorf("import rejected: not a valid export")
			}
			fmt.Println("Import complete.")
			return nil
		})
	},
}
