package schedule

import (
	"sort"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

// Placement is an assignment tagged with the display lane it was packed into.
type Placement struct {
	Assignment domain.Assignment
	Lane       int
}

// AllocateLanes packs one user's assignments into horizontal display lanes so
// that no two assignments sharing a lane overlap in date range.
//
// Greedy first-fit interval coloring: assignments are sorted by start date
// (stable, so same-day starts keep input order) and each one is placed in the
// first existing lane whose most recently placed interval ends strictly
// before the new start. Touching spans (end == next start) share a day and
// therefore never share a lane. The lane count equals the maximum number of
// assignments simultaneously active on any single day.
//
// Entries with a missing start or end date are excluded from layout entirely.
func AllocateLanes(assignments []domain.Assignment) ([]Placement, int) {
	eligible := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.HasDates() {
			eligible = append(eligible, a)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return Day(*eligible[i].Start).Before(Day(*eligible[j].Start))
	})

	var laneEnds []time.Time
	placements := make([]Placement, 0, len(eligible))

	for _, a := range eligible {
		start, end := Day(*a.Start), Day(*a.End)

		lane := -1
		for i, laneEnd := range laneEnds {
			if laneEnd.Before(start) {
				lane = i
				break
			}
		}
		if lane < 0 {
			laneEnds = append(laneEnds, end)
			lane = len(laneEnds) - 1
		} else {
			laneEnds[lane] = end
		}

		placements = append(placements, Placement{Assignment: a, Lane: lane})
	}

	return placements, len(laneEnds)
}
