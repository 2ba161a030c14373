package cli

import (
	"context"
	"fmt"

	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage subtasks within a project",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var projectRef, name, assigneeRef, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subtask to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, projectRef)
			if err != nil {
				return err
			}

			st := &domain.Subtask{
				ProjectID: projectID,
				Name:      name,
			}
			if assigneeRef != "" {
				userID, err := resolveUserID(ctx, app, assigneeRef)
				if err != nil {
					return err
				}
				st.AssigneeID = &userID
			}
			if st.StartDate, err = parseDateFlag("start", start); err != nil {
				return err
			}
			if st.EndDate, err = parseDateFlag("end", end); err != nil {
				return err
			}

			if err := app.Subtasks.Create(ctx, st); err != nil {
				return err
			}
			fmt.Printf("Added subtask %s\n", st.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Parent project (short ID, UUID, or prefix)")
	cmd.Flags().StringVar(&name, "name", "", "Subtask name")
	cmd.Flags().StringVar(&assigneeRef, "assignee", "", "Assigned user (name, UUID, or prefix)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's subtasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, projectRef)
			if err != nil {
				return err
			}
			subtasks, err := app.Subtasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(subtasks) == 0 {
				fmt.Println("No subtasks found.")
				return nil
			}

			_, userNames, err := lookupNames(ctx, app)
			if err != nil {
				return err
			}

			headers := []string{"ID", "NAME", "STATUS", "SPAN", "ASSIGNEE"}
			rows := make([][]string, 0, len(subtasks))
			for _, st := range subtasks {
				assignee := formatter.Dim("--")
				if st.AssigneeID != nil {
					if n, ok := userNames[*st.AssigneeID]; ok {
						assignee = n
					}
				}
				rows = append(rows, []string{
					formatter.TruncID(st.ID),
					formatter.Bold(st.Name),
					formatter.StatusPill(st.Status),
					formatter.SpanString(st.StartDate, st.EndDate),
					assignee,
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Parent project (short ID, UUID, or prefix)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, assigneeRef, start, end, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, err := app.Subtasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				st.Name = name
			}
			if cmd.Flags().Changed("assignee") {
				if assigneeRef == "" {
					st.AssigneeID = nil
				} else {
					userID, err := resolveUserID(ctx, app, assigneeRef)
					if err != nil {
						return err
					}
					st.AssigneeID = &userID
				}
			}
			if cmd.Flags().Changed("start") {
				if st.StartDate, err = parseDateFlag("start", start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if st.EndDate, err = parseDateFlag("end", end); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("status") {
				if !domain.ValidAssignmentStatuses[status] {
					return fmt.Errorf("invalid status %q", status)
				}
				st.Status = domain.AssignmentStatus(status)
			}

			if err := app.Subtasks.Update(ctx, st); err != nil {
				return err
			}
			fmt.Printf("Updated subtask %s\n", st.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subtask name")
	cmd.Flags().StringVar(&assigneeRef, "assignee", "", "Assigned user (empty to unassign)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&status, "status", "", "Status (queued|in_progress|paused|done|canceled)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a subtask as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Subtasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked subtask %s as done\n", args[0])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Subtasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed subtask %s\n", args[0])
			return nil
		},
	}
}
