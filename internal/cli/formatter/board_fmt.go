package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/crewlane/crewlane/internal/contract"
)

// FormatBoard renders the assignment board as an ASCII gantt: a shared day
// axis on top, then per user one row block with a line per lane. Bars carry
// a letter marker that the legend below each block resolves to the
// assignment name and span.
func FormatBoard(resp *contract.BoardResponse) string {
	if len(resp.Window) == 0 {
		return Dim("Nothing to show.")
	}

	gutter := boardGutterWidth(resp)
	var b strings.Builder

	b.WriteString(Header("Assignment Board"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Bold(windowLabel(resp.Window)),
		Dim(Pluralize(len(resp.Window), "day"))))

	b.WriteString(renderDayAxis(resp.Window, resp.GeneratedAt, gutter))

	if len(resp.Rows) == 0 {
		b.WriteString("\n" + Dim("No users on the board.") + "\n")
		return b.String()
	}

	for _, row := range resp.Rows {
		b.WriteString("\n")
		b.WriteString(renderUserBlock(row, resp.Window, gutter))
	}

	if resp.ConflictedUsers > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("%s with cross-project overlaps",
			Pluralize(resp.ConflictedUsers, "user"))) + "\n")
	}
	return b.String()
}

func windowLabel(window []time.Time) string {
	first, last := window[0], window[len(window)-1]
	return fmt.Sprintf("%s - %s", first.Format("Jan 02"), last.Format("Jan 02"))
}

func boardGutterWidth(resp *contract.BoardResponse) int {
	w := 8
	for _, row := range resp.Rows {
		if n := len(row.UserName) + 2; n > w {
			w = n
		}
	}
	if w > 20 {
		w = 20
	}
	return w
}

// renderDayAxis draws three rows: month names at month boundaries, the
// day-of-month tens digits, and the ones digits. Today is marked with a
// caret below the axis.
func renderDayAxis(window []time.Time, now time.Time, gutter int) string {
	months := make([]rune, len(window))
	tens := make([]rune, len(window))
	ones := make([]rune, len(window))
	today := make([]rune, len(window))
	for i := range window {
		months[i], tens[i], ones[i], today[i] = ' ', ' ', ' ', ' '
	}

	for i, d := range window {
		if i == 0 || d.Day() == 1 {
			for j, r := range d.Format("Jan") {
				if i+j < len(window) {
					months[i+j] = r
				}
			}
		}
		tens[i] = rune('0' + d.Day()/10)
		ones[i] = rune('0' + d.Day()%10)
	}

	y, m, d := now.Date()
	for i, day := range window {
		if yy, mm, dd := day.Date(); yy == y && mm == m && dd == d {
			today[i] = '^'
		}
	}

	pad := strings.Repeat(" ", gutter)
	var b strings.Builder
	b.WriteString(pad + Dim(string(months)) + "\n")
	b.WriteString(pad + Dim(string(tens)) + "\n")
	b.WriteString(pad + Dim(string(ones)) + "\n")
	if strings.TrimSpace(string(today)) != "" {
		b.WriteString(pad + StyleYellow.Render(string(today)) + "\n")
	}
	return b.String()
}

func renderUserBlock(row contract.UserBoardRow, window []time.Time, gutter int) string {
	var b strings.Builder

	name := row.UserName
	if len(name) > gutter-2 {
		name = name[:gutter-2]
	}
	b.WriteString(Bold(name))
	if !row.Active {
		b.WriteString(" " + Dim("(inactive)"))
	}
	if row.HasConflict {
		b.WriteString(" " + StyleRed.Render(fmt.Sprintf("⚠ %s", Pluralize(countConflictDays(row), "conflict day"))))
	}
	b.WriteString("\n")

	if len(row.Placements) == 0 {
		b.WriteString(strings.Repeat(" ", gutter) + Dim("no scheduled assignments") + "\n")
		return b.String()
	}

	markers := make([]rune, len(row.Placements))
	for i := range row.Placements {
		markers[i] = markerFor(i)
	}

	for lane := 0; lane < row.LaneCount; lane++ {
		b.WriteString(strings.Repeat(" ", gutter))
		b.WriteString(renderLane(row, lane, markers, window))
		b.WriteString("\n")
	}

	if row.HasConflict {
		b.WriteString(strings.Repeat(" ", gutter))
		b.WriteString(renderConflictLine(row, window))
		b.WriteString("\n")
	}

	for i, p := range row.Placements {
		kind := StyleBlue.Render("project")
		if p.IsSubtask {
			kind = StylePurple.Render("subtask")
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s  %s\n",
			Dim(fmt.Sprintf("[%c]", markers[i])),
			Bold(p.Name),
			kind,
			fmt.Sprintf("%s → %s", p.Start.Format(dateLayout), p.End.Format(dateLayout)),
			StatusPill(p.Status)))
	}
	return b.String()
}

// renderLane draws one lane: a marker letter on the first day of each bar,
// block characters for the rest of the span, dim dots elsewhere.
func renderLane(row contract.UserBoardRow, lane int, markers []rune, window []time.Time) string {
	cells := make([]rune, len(window))
	owners := make([]int, len(window))
	for i := range cells {
		cells[i], owners[i] = '·', -1
	}

	first := window[0]
	for pi, p := range row.Placements {
		if p.Lane != lane {
			continue
		}
		lo := dayIndex(first, p.Start)
		hi := dayIndex(first, p.End)
		for i := lo; i <= hi && i < len(cells); i++ {
			if i < 0 {
				continue
			}
			cells[i], owners[i] = '█', pi
			if i == lo {
				cells[i] = markers[pi]
			}
		}
	}

	// Render contiguous runs so each bar gets one style application.
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && owners[j] == owners[i] {
			j++
		}
		seg := string(cells[i:j])
		if owners[i] < 0 {
			b.WriteString(Dim(seg))
		} else if row.Placements[owners[i]].IsSubtask {
			b.WriteString(StylePurple.Render(seg))
		} else {
			b.WriteString(StyleBlue.Render(seg))
		}
		i = j
	}
	return b.String()
}

func renderConflictLine(row contract.UserBoardRow, window []time.Time) string {
	cells := make([]rune, len(window))
	for i, d := range window {
		if row.ConflictDays[d] {
			cells[i] = '!'
		} else {
			cells[i] = ' '
		}
	}
	return StyleRed.Render(string(cells))
}

func countConflictDays(row contract.UserBoardRow) int {
	n := 0
	for _, flagged := range row.ConflictDays {
		if flagged {
			n++
		}
	}
	return n
}

func dayIndex(first, day time.Time) int {
	return int(day.Sub(first).Hours() / 24)
}

func markerFor(i int) rune {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return rune(letters[i%len(letters)])
}
