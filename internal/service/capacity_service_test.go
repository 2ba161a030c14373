package service

import (
	"testing"
	"time"

	"github.com/crewlane/crewlane/internal/contract"
	"github.com/crewlane/crewlane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday; the anchor Monday is March 4.
var capacityNow = time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)

func TestCapacity_SingleUserPartialWeek(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	u := f.seedUser(t, ctx, "Dana")
	f.seedProject(t, ctx, c.ID, "Three Days",
		testutil.WithProjectAssignee(u.ID),
		testutil.WithProjectSpan(date(2024, 3, 4), date(2024, 3, 6)))
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{Now: timePtr(capacityNow)})
	require.NoError(t, err)

	assert.Equal(t, date(2024, 3, 4), resp.WeekStart)
	assert.Equal(t, date(2024, 3, 8), resp.WeekEnd)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, 3, resp.Users[0].OccupiedDays)
	assert.Equal(t, 60, resp.Users[0].Percent)
	assert.Equal(t, 60, resp.Percent)
}

func TestCapacity_TeamAveragesAcrossActiveUsers(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	busy := f.seedUser(t, ctx, "Busy")
	f.seedUser(t, ctx, "Free")
	f.seedProject(t, ctx, c.ID, "Full Week",
		testutil.WithProjectAssignee(busy.ID),
		testutil.WithProjectSpan(date(2024, 3, 4), date(2024, 3, 8)))
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{Now: timePtr(capacityNow)})
	require.NoError(t, err)

	require.Len(t, resp.Users, 2)
	assert.Equal(t, 5, resp.OccupiedDays)
	assert.Equal(t, 10, resp.AvailableDays)
	assert.Equal(t, 50, resp.Percent)
}

func TestCapacity_InactiveUsersExcluded(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	gone := f.seedUser(t, ctx, "Gone", testutil.WithInactive())
	f.seedProject(t, ctx, c.ID, "Orphaned",
		testutil.WithProjectAssignee(gone.ID),
		testutil.WithProjectSpan(date(2024, 3, 4), date(2024, 3, 8)))
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{Now: timePtr(capacityNow)})
	require.NoError(t, err)

	assert.Empty(t, resp.Users)
	assert.Zero(t, resp.AvailableDays)
	assert.Zero(t, resp.Percent, "no active users means zero, not a division error")
}

func TestCapacity_StackedCommitmentsExceedHundredPercent(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	u := f.seedUser(t, ctx, "Overbooked")
	f.seedProject(t, ctx, c.ID, "One",
		testutil.WithProjectAssignee(u.ID),
		testutil.WithProjectSpan(date(2024, 3, 4), date(2024, 3, 8)))
	f.seedProject(t, ctx, c.ID, "Two",
		testutil.WithProjectAssignee(u.ID),
		testutil.WithProjectSpan(date(2024, 3, 6), date(2024, 3, 8)))
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{Now: timePtr(capacityNow)})
	require.NoError(t, err)

	require.Len(t, resp.Users, 1)
	assert.Equal(t, 8, resp.Users[0].OccupiedDays)
	assert.Equal(t, 160, resp.Users[0].Percent)
}

func TestCapacity_WeekOffsetShiftsWindow(t *testing.T) {
	f, ctx := newFixture(t)
	f.seedUser(t, ctx, "Dana")
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{WeekOffset: 2, Now: timePtr(capacityNow)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.WeekOffset)
	assert.Equal(t, date(2024, 3, 18), resp.WeekStart)
	assert.Equal(t, date(2024, 3, 22), resp.WeekEnd)
}

func TestCapacity_OffsetClampedToHorizon(t *testing.T) {
	f, ctx := newFixture(t)
	svc := NewCapacityService(f.projects, f.subtasks, f.users)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{WeekOffset: 9, Now: timePtr(capacityNow)})
	require.NoError(t, err)
	assert.Equal(t, contract.MaxWeekOffset, resp.WeekOffset)
	assert.Equal(t, date(2024, 4, 1), resp.WeekStart)

	resp, err = svc.GetCapacity(ctx, contract.CapacityRequest{WeekOffset: -3, Now: timePtr(capacityNow)})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.WeekOffset)
	assert.Equal(t, date(2024, 3, 4), resp.WeekStart)
}

func TestCapacity_WeekendAnchorRollsForward(t *testing.T) {
	f, ctx := newFixture(t)
	svc := NewCapacityService(f.projects, f.subtasks, f.users)
	saturday := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	resp, err := svc.GetCapacity(ctx, contract.CapacityRequest{Now: timePtr(saturday)})
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 11), resp.WeekStart, "weekend rolls to the upcoming Monday")
}
