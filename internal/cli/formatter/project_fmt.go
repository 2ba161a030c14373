package formatter

import (
	"fmt"
	"strings"

	"github.com/crewlane/crewlane/internal/domain"
)

// FormatProjectList renders projects as a table. Client and assignee names
// are passed in by ID so the formatter stays free of repository lookups.
func FormatProjectList(projects []*domain.Project, clientNames, userNames map[string]string) string {
	headers := []string{"ID", "NAME", "CLIENT", "ASSIGNEE", "STATUS", "SPAN"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		assignee := Dim("--")
		if p.AssigneeID != nil {
			if name, ok := userNames[*p.AssigneeID]; ok {
				assignee = StyleFg.Render(name)
			}
		}
		client := Dim("--")
		if name, ok := clientNames[p.ClientID]; ok {
			client = StyleFg.Render(name)
		}
		name := p.Name
		if p.ArchivedAt != nil {
			name = name + " " + Dim("(archived)")
		}
		rows = append(rows, []string{
			StylePurple.Render(p.DisplayID()),
			Bold(name),
			client,
			assignee,
			StatusPill(p.Status),
			SpanString(p.StartDate, p.EndDate),
		})
	}

	return RenderTable(headers, rows)
}

// ProjectInspectData bundles everything the inspect view shows.
type ProjectInspectData struct {
	Project      *domain.Project
	ClientName   string
	AssigneeName string
	Subtasks     []*domain.Subtask
	UserNames    map[string]string
}

// FormatProjectInspect renders a single project with its subtasks.
func FormatProjectInspect(data ProjectInspectData) string {
	p := data.Project
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Name), StylePurple.Render("["+p.DisplayID()+"]")))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Client:"), data.ClientName))
	if data.AssigneeName != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Assignee:"), data.AssigneeName))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Span:"), SpanString(p.StartDate, p.EndDate)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("UUID:"), TruncID(p.ID)))

	if len(data.Subtasks) > 0 {
		b.WriteString("\n" + Header("Subtasks") + "\n")
		for _, s := range data.Subtasks {
			assignee := Dim("unassigned")
			if s.AssigneeID != nil {
				if name, ok := data.UserNames[*s.AssigneeID]; ok {
					assignee = StyleFg.Render(name)
				}
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s  %s  %s\n",
				Dim("•"), Bold(s.Name), StatusPill(s.Status),
				SpanString(s.StartDate, s.EndDate), assignee))
		}
	}

	return RenderBox("Project", b.String())
}
