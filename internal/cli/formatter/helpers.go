package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// SpanString renders an inclusive date span, with "--" standing in for
// missing endpoints.
func SpanString(start, end *time.Time) string {
	s, e := "--", "--"
	if start != nil {
		s = start.Format(dateLayout)
	}
	if end != nil {
		e = end.Format(dateLayout)
	}
	if start == nil && end == nil {
		return Dim("unscheduled")
	}
	return fmt.Sprintf("%s → %s", s, e)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// ActiveBadge marks inactive users in listings.
func ActiveBadge(active bool) string {
	if active {
		return StyleGreen.Render("active")
	}
	return StyleDim.Render("inactive")
}

// Pluralize appends "s" when n is not 1. Good enough for day/lane/user.
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
