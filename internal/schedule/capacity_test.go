package schedule

import (
	"testing"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeUser(id, name string) *domain.User {
	return &domain.User{ID: id, Name: name, Active: true}
}

func userAsgn(id, rootID, userID string, status domain.AssignmentStatus, start, end *time.Time) domain.Assignment {
	return domain.Assignment{
		ID:         id,
		RootID:     rootID,
		AssigneeID: &userID,
		Status:     status,
		Start:      start,
		End:        end,
	}
}

func TestWeekAnchor_WeekdayReturnsCurrentMonday(t *testing.T) {
	// Wednesday 2024-01-10 anchors to Monday 2024-01-08.
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), WeekAnchor(now))

	// Monday anchors to itself.
	monday := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), WeekAnchor(monday))

	// Friday still anchors back to the same week's Monday.
	friday := time.Date(2024, 1, 12, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), WeekAnchor(friday))
}

func TestWeekAnchor_WeekendRollsForward(t *testing.T) {
	// Saturday 2024-01-13 rolls to Monday 2024-01-15.
	sat := time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), WeekAnchor(sat))

	// Sunday 2024-01-14 rolls to Monday 2024-01-15.
	sun := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), WeekAnchor(sun))
}

func TestWeekWindow_OffsetShiftsWholeWeeks(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) // Wednesday

	start0, end0 := WeekWindow(now, 0)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), start0)
	assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), end0)

	start2, end2 := WeekWindow(now, 2)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), start2)
	assert.Equal(t, time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC), end2)
}

func TestComputeCapacity_FullyBookedSingleUser(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) // week: Jan 8 - Jan 12
	users := []*domain.User{activeUser("u1", "Dana")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1)
	assert.Equal(t, 5, res.Users[0].OccupiedDays)
	assert.Equal(t, 100, res.Users[0].Percent)
	assert.Equal(t, 100, res.Percent)
	assert.Equal(t, 5, res.OccupiedDays)
	assert.Equal(t, 5, res.AvailableDays)
	assert.Equal(t, "Jan 08 - Jan 12", res.Label)
}

func TestComputeCapacity_TeamPercentAveragesAcrossActiveUsers(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana"), activeUser("u2", "Priya")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 2)
	assert.Equal(t, 50, res.Percent, "one booked, one idle: round(5/10*100)")
	assert.Equal(t, 10, res.AvailableDays)
}

func TestComputeCapacity_StackedCommitmentsExceedHundredPercent(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
		userAsgn("p2", "p2", "u1", domain.StatusQueued, datePtr(2024, 1, 8), datePtr(2024, 1, 10)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1)
	assert.Equal(t, 8, res.Users[0].OccupiedDays)
	assert.Equal(t, 160, res.Users[0].Percent)
}

func TestComputeCapacity_PartialOverlapCountsClampedDays(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana")}
	// Span starts midweek Wednesday and runs far past Friday.
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, datePtr(2024, 1, 10), datePtr(2024, 2, 20)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1)
	assert.Equal(t, 3, res.Users[0].OccupiedDays, "Wed, Thu, Fri")
	assert.Equal(t, 60, res.Users[0].Percent)
}

func TestComputeCapacity_TerminalStatusesExcluded(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusDone, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
		userAsgn("p2", "p2", "u1", domain.StatusCanceled, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1)
	assert.Equal(t, 0, res.Users[0].OccupiedDays)
	assert.Equal(t, 0, res.Percent)
}

func TestComputeCapacity_InactiveUsersExcluded(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	inactive := &domain.User{ID: "u2", Name: "Former", Active: false}
	users := []*domain.User{activeUser("u1", "Dana"), inactive}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u2", domain.StatusInProgress, datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1, "inactive users carry no capacity row")
	assert.Equal(t, "u1", res.Users[0].UserID)
	assert.Equal(t, 0, res.Percent)
}

func TestComputeCapacity_ZeroActiveUsers(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	res := ComputeCapacity(nil, nil, 0, now)

	assert.Equal(t, 0, res.Percent)
	assert.Empty(t, res.Users)
	assert.Equal(t, 0, res.AvailableDays)
}

func TestComputeCapacity_DatelessAssignmentsContributeNothing(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, nil, datePtr(2024, 1, 12)),
		userAsgn("p2", "p2", "u1", domain.StatusInProgress, datePtr(2024, 1, 8), nil),
	}

	res := ComputeCapacity(users, assignments, 0, now)

	require.Len(t, res.Users, 1)
	assert.Equal(t, 0, res.Users[0].OccupiedDays)
}

func TestComputeCapacity_IdempotentForFixedInput(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{activeUser("u1", "Dana"), activeUser("u2", "Priya")}
	assignments := []domain.Assignment{
		userAsgn("p1", "p1", "u1", domain.StatusInProgress, datePtr(2024, 1, 1), datePtr(2024, 1, 31)),
		userAsgn("s1", "p1", "u2", domain.StatusQueued, datePtr(2024, 1, 9), datePtr(2024, 1, 11)),
	}

	first := ComputeCapacity(users, assignments, 1, now)
	second := ComputeCapacity(users, assignments, 1, now)

	assert.Equal(t, first, second)
}
