package cli

import (
	"github.com/crewlane/crewlane/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients  service.ClientService
	Projects service.ProjectService
	Subtasks service.SubtaskService
	Users    service.UserService
	Board    service.BoardService
	Capacity service.CapacityService
	Import   service.ImportService

	// Interactive is true when stdin/stdout are attached to a terminal;
	// it gates huh forms and the board TUI.
	Interactive bool
}

// NewRootCmd creates the top-level "crewlane" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewlane",
		Short: "Client project scheduling and team capacity planner",
	}

	root.AddCommand(
		newClientCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newUserCmd(app),
		newBoardCmd(app),
		newCapacityCmd(app),
		newImportCmd(app),
	)

	return root
}
