package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func span(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}

func TestFlattenAssignments_RootMapping(t *testing.T) {
	p := &Project{ID: "p1", Name: "Relaunch", Status: StatusInProgress}
	subs := map[string][]*Subtask{
		"p1": {
			{ID: "s1", ProjectID: "p1", Name: "Design", Status: StatusQueued},
			{ID: "s2", ProjectID: "p1", Name: "Build", Status: StatusQueued},
		},
	}

	all := FlattenAssignments([]*Project{p}, subs)
	require.Len(t, all, 3)

	assert.Equal(t, "p1", all[0].RootID, "a project is its own root")
	assert.False(t, all[0].IsSubtask())
	assert.Equal(t, "p1", all[1].RootID, "a subtask's root is its parent project")
	assert.True(t, all[1].IsSubtask())
	assert.True(t, all[2].IsSubtask())
}

func TestActiveAssignments_DropsTerminalAndUndated(t *testing.T) {
	s, e := span(day(2024, 3, 4), day(2024, 3, 8))
	all := []Assignment{
		{ID: "a", RootID: "a", Status: StatusInProgress, Start: s, End: e},
		{ID: "b", RootID: "b", Status: StatusPaused, Start: s, End: e},
		{ID: "c", RootID: "c", Status: StatusDone, Start: s, End: e},
		{ID: "d", RootID: "d", Status: StatusCanceled, Start: s, End: e},
		{ID: "e", RootID: "e", Status: StatusQueued, Start: s},
	}

	active := ActiveAssignments(all)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
}

func TestAssignmentsForUser_DropsTerminalProjects(t *testing.T) {
	dana := "dana"
	s, e := span(day(2024, 1, 1), day(2024, 1, 10))
	all := []Assignment{
		{ID: "live", RootID: "live", AssigneeID: &dana, Status: StatusInProgress, Start: s, End: e},
		{ID: "shipped", RootID: "shipped", AssigneeID: &dana, Status: StatusDone, Start: s, End: e},
		{ID: "dropped", RootID: "dropped", AssigneeID: &dana, Status: StatusCanceled, Start: s, End: e},
	}

	mine := AssignmentsForUser(all, dana)
	require.Len(t, mine, 1, "finished projects are not ongoing commitments")
	assert.Equal(t, "live", mine[0].ID)
}

func TestAssignmentsForUser_DropsTerminalSubtasks(t *testing.T) {
	dana := "dana"
	s, e := span(day(2024, 1, 1), day(2024, 1, 10))
	all := []Assignment{
		{ID: "s1", RootID: "p1", AssigneeID: &dana, Status: StatusQueued, Start: s, End: e},
		{ID: "s2", RootID: "p1", AssigneeID: &dana, Status: StatusDone, Start: s, End: e},
	}

	mine := AssignmentsForUser(all, dana)
	require.Len(t, mine, 1)
	assert.Equal(t, "s1", mine[0].ID)
}

func TestAssignmentsForUser_AssigneeRules(t *testing.T) {
	dana := "dana"
	erik := "erik"
	all := []Assignment{
		{ID: "mine", RootID: "mine", AssigneeID: &dana, Status: StatusQueued},
		{ID: "theirs", RootID: "theirs", AssigneeID: &erik, Status: StatusQueued},
		{ID: "nobody", RootID: "nobody", AssigneeID: nil, Status: StatusQueued},
	}

	mine := AssignmentsForUser(all, dana)
	require.Len(t, mine, 1, "unassigned entries belong to no one's board")
	assert.Equal(t, "mine", mine[0].ID)
}

func TestAssignmentsForUser_KeepsUndatedEntries(t *testing.T) {
	dana := "dana"
	all := []Assignment{
		{ID: "someday", RootID: "someday", AssigneeID: &dana, Status: StatusQueued},
	}

	mine := AssignmentsForUser(all, dana)
	require.Len(t, mine, 1, "missing dates exclude from layout, not from the workload list")
	assert.False(t, mine[0].HasDates())
}

func TestCovers_InclusiveBounds(t *testing.T) {
	s, e := span(day(2024, 3, 4), day(2024, 3, 8))
	a := Assignment{ID: "a", RootID: "a", Start: s, End: e}

	assert.True(t, a.Covers(day(2024, 3, 4)))
	assert.True(t, a.Covers(day(2024, 3, 8)))
	assert.False(t, a.Covers(day(2024, 3, 3)))
	assert.False(t, a.Covers(day(2024, 3, 9)))
}

func TestCovers_TruncatesTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 17, 0, 0, 0, time.UTC)
	a := Assignment{ID: "a", RootID: "a", Start: &start, End: &end}

	assert.True(t, a.Covers(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)),
		"midnight still falls inside a span starting mid-morning")
	assert.True(t, a.Covers(time.Date(2024, 3, 8, 23, 59, 0, 0, time.UTC)))
	assert.False(t, a.Covers(day(2024, 3, 9)))
}

func TestCovers_MissingDates(t *testing.T) {
	s := day(2024, 3, 4)
	a := Assignment{ID: "a", RootID: "a", Start: &s}
	assert.False(t, a.Covers(day(2024, 3, 4)))
}
