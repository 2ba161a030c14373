package schedule

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAllocateLanes_Invariants property-tests the lane packing invariants
// over randomized assignment sets: no overlapping pair shares a lane, every
// eligible entry is placed exactly once, and the lane count is at least the
// maximum number of assignments simultaneously active on any single day.
func TestAllocateLanes_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12) + 1
		input := make([]domain.Assignment, 0, n)
		for i := 0; i < n; i++ {
			start := base.AddDate(0, 0, rng.Intn(40))
			end := start.AddDate(0, 0, rng.Intn(15))
			input = append(input, asgn(fmt.Sprintf("a-%d", i), fmt.Sprintf("r-%d", i%4), &start, &end))
		}

		placements, laneCount := AllocateLanes(input)

		// Invariant 1: every input entry placed exactly once.
		assert.Len(t, placements, n, "trial %d: all dated entries must be placed", trial)

		// Invariant 2: no overlapping pair shares a lane.
		for i := 0; i < len(placements); i++ {
			for j := i + 1; j < len(placements); j++ {
				if placements[i].Lane == placements[j].Lane {
					assert.False(t, overlaps(placements[i], placements[j]),
						"trial %d: %s and %s overlap in lane %d",
						trial, placements[i].Assignment.ID, placements[j].Assignment.ID, placements[i].Lane)
				}
			}
		}

		// Invariant 3: lane indices are dense in [0, laneCount).
		seen := make(map[int]bool)
		for _, p := range placements {
			assert.GreaterOrEqual(t, p.Lane, 0, "trial %d: lane must be non-negative", trial)
			assert.Less(t, p.Lane, laneCount, "trial %d: lane must be below lane count", trial)
			seen[p.Lane] = true
		}
		assert.Len(t, seen, laneCount, "trial %d: every lane must hold at least one entry", trial)

		// Invariant 4: lane count >= max concurrent assignments on any day.
		maxConcurrent := 0
		for d := base; d.Before(base.AddDate(0, 0, 60)); d = d.AddDate(0, 0, 1) {
			concurrent := 0
			for _, a := range input {
				if a.Covers(d) {
					concurrent++
				}
			}
			if concurrent > maxConcurrent {
				maxConcurrent = concurrent
			}
		}
		assert.GreaterOrEqual(t, laneCount, maxConcurrent,
			"trial %d: lane count (%d) below max concurrency (%d)", trial, laneCount, maxConcurrent)
	}
}
