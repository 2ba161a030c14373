package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var userRef string
	var tui bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the per-user assignment board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.BoardRequest{UserFilter: userRef}
			if tui {
				if !app.Interactive {
					return fmt.Errorf("--tui requires a terminal")
				}
				model := newBoardModel(app, req)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			resp, err := app.Board.GetBoard(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userRef, "user", "", "Only this user's row (ID, name, or name prefix)")
	cmd.Flags().BoolVar(&tui, "tui", false, "Open the scrollable board view")

	return cmd
}
