package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/crewlane/crewlane/internal/cli/formatter"
)

// crewlaneHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func crewlaneHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dateInput returns a huh.Input for an optional date field with
// YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// projectAddForm builds the interactive form behind "project add -i".
// Client and assignee are picked from the existing records.
func projectAddForm(ctx context.Context, app *App, name, shortID, clientRef, assigneeRef, start, end *string) (*huh.Form, error) {
	clients, err := app.Clients.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no clients yet; create one first with 'client add'")
	}
	users, err := app.Users.List(ctx, true)
	if err != nil {
		return nil, err
	}

	clientOptions := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		clientOptions = append(clientOptions, huh.NewOption(c.Name, c.ID))
	}
	userOptions := []huh.Option[string]{huh.NewOption("(unassigned)", "")}
	for _, u := range users {
		userOptions = append(userOptions, huh.NewOption(u.Name, u.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Short ID").
				Placeholder("ACME01").
				Value(shortID).
				Validate(validateRequired("short ID")),
			huh.NewSelect[string]().
				Title("Client").
				Options(clientOptions...).
				Value(clientRef),
			huh.NewSelect[string]().
				Title("Assignee").
				Options(userOptions...).
				Value(assigneeRef),
			dateInput("Start Date (blank for none)", start),
			dateInput("End Date (blank for none)", end),
		),
	).WithTheme(crewlaneHuhTheme()).WithShowHelp(false), nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}
