package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app),
		newProjectUnarchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, shortID, clientRef, assigneeRef, start, end, status string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if !app.Interactive {
					return fmt.Errorf("--interactive requires a terminal")
				}
				form, err := projectAddForm(ctx, app, &name, &shortID, &clientRef, &assigneeRef, &start, &end)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			clientID, err := resolveClientID(ctx, app, clientRef)
			if err != nil {
				return err
			}

			p := &domain.Project{
				ShortID:  strings.ToUpper(shortID),
				ClientID: clientID,
				Name:     name,
				Status:   domain.AssignmentStatus(status),
			}

			if assigneeRef != "" {
				userID, err := resolveUserID(ctx, app, assigneeRef)
				if err != nil {
					return err
				}
				p.AssigneeID = &userID
			}
			if p.StartDate, err = parseDateFlag("start", start); err != nil {
				return err
			}
			if p.EndDate, err = parseDateFlag("end", end); err != nil {
				return err
			}

			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. ACME01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&clientRef, "client", "", "Client (name, UUID, or prefix)")
	cmd.Flags().StringVar(&assigneeRef, "assignee", "", "Assigned user (name, UUID, or prefix)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&status, "status", "queued", "Status (queued|in_progress|paused|done|canceled)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in fields through a form")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool
	var clientRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var projects []*domain.Project
			var err error
			if clientRef != "" {
				clientID, rErr := resolveClientID(ctx, app, clientRef)
				if rErr != nil {
					return rErr
				}
				projects, err = app.Projects.ListByClient(ctx, clientID)
			} else {
				projects, err = app.Projects.List(ctx, all)
			}
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			clientNames, userNames, err := lookupNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects, clientNames, userNames))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	cmd.Flags().StringVar(&clientRef, "client", "", "Only projects of this client")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details and subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			subtasks, err := app.Subtasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			clientNames, userNames, err := lookupNames(ctx, app)
			if err != nil {
				return err
			}

			data := formatter.ProjectInspectData{
				Project:    p,
				ClientName: clientNames[p.ClientID],
				Subtasks:   subtasks,
				UserNames:  userNames,
			}
			if p.AssigneeID != nil {
				data.AssigneeName = userNames[*p.AssigneeID]
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(data))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, shortID, assigneeRef, start, end, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("id") {
				p.ShortID = strings.ToUpper(shortID)
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("assignee") {
				if assigneeRef == "" {
					p.AssigneeID = nil
				} else {
					userID, err := resolveUserID(ctx, app, assigneeRef)
					if err != nil {
						return err
					}
					p.AssigneeID = &userID
				}
			}
			if cmd.Flags().Changed("start") {
				if p.StartDate, err = parseDateFlag("start", start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if p.EndDate, err = parseDateFlag("end", end); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidAssignmentStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				p.Status = domain.AssignmentStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&assigneeRef, "assignee", "", "Assigned user (empty to unassign)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&status, "status", "", "Status (queued|in_progress|paused|done|canceled)")

	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Archived project %s\n", projectID)
			return nil
		},
	}
}

func newProjectUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Unarchive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Unarchive(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Unarchived project %s\n", projectID)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove without archiving first")

	return cmd
}

// parseDateFlag parses an optional YYYY-MM-DD flag value; empty means unset.
func parseDateFlag(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", flag, value)
	}
	return &t, nil
}

// lookupNames builds ID-to-name maps for clients and users, shared by the
// list and inspect views.
func lookupNames(ctx context.Context, app *App) (map[string]string, map[string]string, error) {
	clients, err := app.Clients.List(ctx, true)
	if err != nil {
		return nil, nil, err
	}
	users, err := app.Users.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	return clientNames, userNames, nil
}
