package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID resolves a project reference given on the command line.
// Lookup order: exact short ID (case-insensitive), exact UUID, UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveUserID resolves a team member reference: exact UUID, exact name
// (case-insensitive), then unique name prefix.
func resolveUserID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("user is required")
	}

	users, err := app.Users.List(ctx, false)
	if err != nil {
		return "", err
	}

	for _, u := range users {
		if u.ID == input {
			return u.ID, nil
		}
	}

	for _, u := range users {
		if strings.EqualFold(u.Name, input) {
			return u.ID, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, u := range users {
		if strings.HasPrefix(strings.ToLower(u.Name), lower) || strings.HasPrefix(u.ID, input) {
			matches = append(matches, u.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("user not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("user %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveClientID resolves a client reference: exact UUID, exact name
// (case-insensitive), then unique name or UUID prefix.
func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("client is required")
	}

	clients, err := app.Clients.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	for _, c := range clients {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, c := range clients {
		if strings.HasPrefix(strings.ToLower(c.Name), lower) || strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client %q is ambiguous (%d matches)", input, len(matches))
	}
}
