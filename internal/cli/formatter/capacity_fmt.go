package formatter

import (
	"fmt"
	"strings"

	"github.com/crewlane/crewlane/internal/contract"
)

const loadBarWidth = 10

// FormatCapacity renders the weekly team capacity dashboard.
func FormatCapacity(resp *contract.CapacityResponse) string {
	var b strings.Builder

	week := "this week"
	if resp.WeekOffset > 0 {
		week = fmt.Sprintf("+%s", Pluralize(resp.WeekOffset, "week"))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold("Week "+resp.Label), Dim(week)))

	if len(resp.Users) == 0 {
		b.WriteString(Dim("No active users.") + "\n")
		return RenderBox("Team Capacity", b.String())
	}

	headers := []string{"NAME", "BOOKED", "LOAD"}
	rows := make([][]string, 0, len(resp.Users))
	for _, u := range resp.Users {
		rows = append(rows, []string{
			Bold(u.Name),
			fmt.Sprintf("%dd", u.OccupiedDays),
			RenderLoad(u.Percent, loadBarWidth),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	team := fmt.Sprintf("Team: %d/%d days booked ", resp.OccupiedDays, resp.AvailableDays)
	b.WriteString(team + LoadColor(resp.Percent).Render(fmt.Sprintf("(%d%%)", resp.Percent)) + "\n")

	return RenderBox("Team Capacity", b.String())
}
