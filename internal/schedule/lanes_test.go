package schedule

import (
	"testing"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateLanes_SingleAssignment(t *testing.T) {
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
	})

	require.Len(t, placements, 1)
	assert.Equal(t, 0, placements[0].Lane)
	assert.Equal(t, 1, laneCount)
}

func TestAllocateLanes_OverlapForcesNewLane(t *testing.T) {
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
		asgn("p2", "p2", datePtr(2024, 1, 5), datePtr(2024, 1, 15)),
	})

	require.Len(t, placements, 2)
	assert.Equal(t, "p1", placements[0].Assignment.ID)
	assert.Equal(t, 0, placements[0].Lane)
	assert.Equal(t, "p2", placements[1].Assignment.ID)
	assert.Equal(t, 1, placements[1].Lane)
	assert.Equal(t, 2, laneCount)
}

func TestAllocateLanes_TouchingSpansDoNotShareALane(t *testing.T) {
	// End date is inclusive: a span ending Jan 10 still occupies Jan 10,
	// so a span starting Jan 10 overlaps it.
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
		asgn("p2", "p2", datePtr(2024, 1, 10), datePtr(2024, 1, 20)),
	})

	require.Len(t, placements, 2)
	assert.Equal(t, 2, laneCount)
}

func TestAllocateLanes_GapAllowsLaneReuse(t *testing.T) {
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
		asgn("p2", "p2", datePtr(2024, 1, 11), datePtr(2024, 1, 20)),
	})

	require.Len(t, placements, 2)
	assert.Equal(t, 0, placements[0].Lane)
	assert.Equal(t, 0, placements[1].Lane, "start strictly after previous end reuses the lane")
	assert.Equal(t, 1, laneCount)
}

func TestAllocateLanes_SameStartKeepsInputOrder(t *testing.T) {
	placements, _ := AllocateLanes([]domain.Assignment{
		asgn("first", "first", datePtr(2024, 3, 1), datePtr(2024, 3, 5)),
		asgn("second", "second", datePtr(2024, 3, 1), datePtr(2024, 3, 8)),
		asgn("third", "third", datePtr(2024, 3, 1), datePtr(2024, 3, 3)),
	})

	require.Len(t, placements, 3)
	assert.Equal(t, "first", placements[0].Assignment.ID)
	assert.Equal(t, "second", placements[1].Assignment.ID)
	assert.Equal(t, "third", placements[2].Assignment.ID)
}

func TestAllocateLanes_DatelessEntriesExcluded(t *testing.T) {
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
		asgn("p2", "p2", nil, datePtr(2024, 1, 15)),
		asgn("p3", "p3", datePtr(2024, 1, 2), nil),
	})

	require.Len(t, placements, 1)
	assert.Equal(t, "p1", placements[0].Assignment.ID)
	assert.Equal(t, 1, laneCount)
}

func TestAllocateLanes_FirstFitPrefersEarliestLane(t *testing.T) {
	// Three staggered spans: the third fits back into lane 0 after p1 ends.
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 5)),
		asgn("p2", "p2", datePtr(2024, 1, 3), datePtr(2024, 1, 20)),
		asgn("p3", "p3", datePtr(2024, 1, 8), datePtr(2024, 1, 12)),
	})

	require.Len(t, placements, 3)
	assert.Equal(t, 0, placements[0].Lane)
	assert.Equal(t, 1, placements[1].Lane)
	assert.Equal(t, 0, placements[2].Lane, "lane 0 is free again after Jan 5")
	assert.Equal(t, 2, laneCount)
}

func TestAllocateLanes_SameRootSubtasksStillSeparateLanes(t *testing.T) {
	// Lane packing is purely geometric; sharing a root project does not
	// allow two overlapping spans to stack in one lane.
	placements, laneCount := AllocateLanes([]domain.Assignment{
		asgn("s1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 5)),
		asgn("s2", "p1", datePtr(2024, 1, 3), datePtr(2024, 1, 7)),
	})

	require.Len(t, placements, 2)
	assert.NotEqual(t, placements[0].Lane, placements[1].Lane)
	assert.Equal(t, 2, laneCount)
}

func TestAllocateLanes_IdempotentForFixedInput(t *testing.T) {
	input := []domain.Assignment{
		asgn("p1", "p1", datePtr(2024, 1, 1), datePtr(2024, 1, 10)),
		asgn("p2", "p2", datePtr(2024, 1, 5), datePtr(2024, 1, 15)),
		asgn("p3", "p3", datePtr(2024, 1, 12), datePtr(2024, 1, 18)),
	}

	first, firstCount := AllocateLanes(input)
	second, secondCount := AllocateLanes(input)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCount, secondCount)
}

// overlaps reports inclusive date-range overlap between two placements.
func overlaps(a, b Placement) bool {
	return !a.Assignment.End.Before(*b.Assignment.Start) &&
		!b.Assignment.End.Before(*a.Assignment.Start)
}

func TestAllocateLanes_NoOverlappingPairSharesALane(t *testing.T) {
	placements, _ := AllocateLanes([]domain.Assignment{
		asgn("a", "a", datePtr(2024, 1, 1), datePtr(2024, 1, 8)),
		asgn("b", "b", datePtr(2024, 1, 4), datePtr(2024, 1, 12)),
		asgn("c", "c", datePtr(2024, 1, 9), datePtr(2024, 1, 16)),
		asgn("d", "d", datePtr(2024, 1, 13), datePtr(2024, 1, 20)),
		asgn("e", "e", datePtr(2024, 1, 2), datePtr(2024, 1, 19)),
	})

	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if placements[i].Lane == placements[j].Lane {
				assert.False(t, overlaps(placements[i], placements[j]),
					"%s and %s share lane %d but overlap",
					placements[i].Assignment.ID, placements[j].Assignment.ID, placements[i].Lane)
			}
		}
	}
}
