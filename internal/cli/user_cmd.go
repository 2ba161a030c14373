package cli

import (
	"context"
	"fmt"

	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage team members",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserUpdateCmd(app),
		newUserDeactivateCmd(app),
		newUserRemoveCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.User{Name: name, Email: email}
			if err := app.Users.Create(context.Background(), u); err != nil {
				return err
			}
			fmt.Printf("Added user %s\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "User name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatUserList(users))
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active users")

	return cmd
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var name, email string
	var active bool

	cmd := &cobra.Command{
		Use:   "update USER",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := app.Users.GetByID(ctx, userID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				u.Name = name
			}
			if cmd.Flags().Changed("email") {
				u.Email = email
			}
			if cmd.Flags().Changed("active") {
				u.Active = active
			}

			if err := app.Users.Update(ctx, u); err != nil {
				return err
			}
			fmt.Printf("Updated user %s\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "User name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newUserDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate USER",
		Short: "Deactivate a team member (kept for history, off the capacity view)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Deactivate(ctx, userID); err != nil {
				return err
			}
			fmt.Printf("Deactivated user %s\n", userID)
			return nil
		},
	}
}

func newUserRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove USER",
		Short: "Remove a team member (assignments become unassigned)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Delete(ctx, userID); err != nil {
				return err
			}
			fmt.Printf("Removed user %s\n", userID)
			return nil
		},
	}
}
