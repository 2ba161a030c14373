package formatter

import (
	"github.com/crewlane/crewlane/internal/domain"
)

// FormatClientList renders clients as a table with their project counts.
func FormatClientList(clients []*domain.Client, projectCounts map[string]int) string {
	headers := []string{"ID", "NAME", "COMPANY", "CONTACT", "PROJECTS"}
	rows := make([][]string, 0, len(clients))

	for _, c := range clients {
		name := Bold(c.Name)
		if c.ArchivedAt != nil {
			name = Bold(c.Name) + " " + Dim("(archived)")
		}
		company := Dim("--")
		if c.Company != "" {
			company = StyleFg.Render(c.Company)
		}
		contact := Dim("--")
		if c.ContactEmail != "" {
			contact = StyleFg.Render(c.ContactEmail)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			name,
			company,
			contact,
			Pluralize(projectCounts[c.ID], "project"),
		})
	}

	return RenderTable(headers, rows)
}

// FormatUserList renders team members as a table.
func FormatUserList(users []*domain.User) string {
	headers := []string{"ID", "NAME", "EMAIL", "STATUS"}
	rows := make([][]string, 0, len(users))

	for _, u := range users {
		email := Dim("--")
		if u.Email != "" {
			email = StyleFg.Render(u.Email)
		}
		rows = append(rows, []string{
			TruncID(u.ID),
			Bold(u.Name),
			email,
			ActiveBadge(u.Active),
		})
	}

	return RenderTable(headers, rows)
}
