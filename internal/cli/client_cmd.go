package cli

import (
	"context"
	"fmt"

	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientUpdateCmd(app),
		newClientArchiveCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, company, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				Name:         name,
				Company:      company,
				ContactEmail: email,
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clients, err := app.Clients.List(ctx, all)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			counts := make(map[string]int, len(clients))
			for _, c := range clients {
				projects, err := app.Projects.ListByClient(ctx, c.ID)
				if err != nil {
					return err
				}
				counts[c.ID] = len(projects)
			}

			fmt.Printf("%s\n", formatter.FormatClientList(clients, counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived clients")

	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, company, email string

	cmd := &cobra.Command{
		Use:   "update CLIENT",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("company") {
				c.Company = company
			}
			if cmd.Flags().Changed("email") {
				c.ContactEmail = email
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Updated client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")

	return cmd
}

func newClientArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive CLIENT",
		Short: "Archive a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Archive(ctx, clientID); err != nil {
				return err
			}
			fmt.Printf("Archived client %s\n", clientID)
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CLIENT",
		Short: "Remove a client (refused while projects reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, clientID); err != nil {
				return fmt.Errorf("removing client: %w", err)
			}
			fmt.Printf("Removed client %s\n", clientID)
			return nil
		},
	}
}
