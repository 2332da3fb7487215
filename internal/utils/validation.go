package utils

import (
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

func ValidateHolidayPlanDate(plan *domain.HolidayPlan) error {
	if _, err := ParseDate(plan.Date, time.UTC); err != nil {
		return err
	}
	return nil
}

// ValidateScheduleTime checks what the repository leaves to its callers: both
// times parse and the schedule ends after it starts.
func ValidateScheduleTime(schedule *domain.Schedule) error {
	start, err := ParseClock(schedule.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(schedule.EndTime)
	if err != nil {
		return err
	}

	if start >= end {
		return errors.New("end time must be later than start time")
	}
	return nil
}
