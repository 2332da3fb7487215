// Package timeline arranges a plan's schedules for display. Storage order is
// insertion order; sorting only happens here.
package timeline

import (
	"slices"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

// Entry is a schedule with its display range, e.g. "09:00 - 11:00".
type Entry struct {
	domain.Schedule
	TimeRange string `json:"timeRange"`
}

type Timeline struct {
	// Status is the plan date relative to now: past, current or future.
	Status   string  `json:"status"`
	Upcoming []Entry `json:"upcoming"`
	Past     []Entry `json:"past"`
}

// Build splits the plan's schedules into those still running or ahead of now
// and those already over, each ordered by start time. A schedule is over once
// the plan date at its end time lies before now, read in now's location.
func Build(plan *domain.HolidayPlan, now time.Time) Timeline {
	tl := Timeline{
		Status:   utils.DateStatus(plan.Date, now),
		Upcoming: []Entry{},
		Past:     []Entry{},
	}

	day, dateErr := utils.ParseDate(plan.Date, now.Location())
	for _, s := range plan.Schedules {
		e := Entry{Schedule: s, TimeRange: utils.FormatTimeRange(s.StartTime, s.EndTime)}
		if dateErr == nil && isOver(day, s, now) {
			tl.Past = append(tl.Past, e)
		} else {
			tl.Upcoming = append(tl.Upcoming, e)
		}
	}

	byStart := func(a, b Entry) int {
		return utils.CompareTimeStrings(a.StartTime, b.StartTime)
	}
	slices.SortStableFunc(tl.Upcoming, byStart)
	slices.SortStableFunc(tl.Past, byStart)

	return tl
}

func isOver(day time.Time, s domain.Schedule, now time.Time) bool {
	end, err := utils.ParseClock(s.EndTime)
	if err != nil {
		return false
	}
	endsAt := time.Date(day.Year(), day.Month(), day.Day(), end/60, end%60, 0, 0, day.Location())
	return endsAt.Before(now)
}
