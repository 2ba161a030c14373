package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a workload snapshot from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportWorkload(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d clients, %d users, %d projects, %d subtasks\n",
				result.ClientCount, result.UserCount, result.ProjectCount, result.SubtaskCount)
			return nil
		},
	}
}
