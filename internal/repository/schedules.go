package repository

import (
	"slices"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

func (r *Repository) GetScheduleByID(planID, scheduleID string) *domain.Schedule {
	plan := r.GetHolidayPlanByID(planID)
	if plan == nil {
		return nil
	}

	i := indexOfSchedule(plan.Schedules, scheduleID)
	if i == -1 {
		return nil
	}
	schedule := plan.Schedules[i]
	return &schedule
}

// CreateSchedule appends schedule to the plan's list. Ordering and time range
// checks belong to the caller.
func (r *Repository) CreateSchedule(planID string, schedule *domain.Schedule) Outcome {
	s := *schedule

	return r.mutate("CreateSchedule", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		i := indexOfPlan(plans, planID)
		if i == -1 {
			return plans, false
		}
		plans[i].Schedules = append(plans[i].Schedules, s)
		return plans, true
	})
}

func (r *Repository) UpdateSchedule(planID string, schedule *domain.Schedule) Outcome {
	s := *schedule

	return r.mutate("UpdateSchedule", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		i := indexOfPlan(plans, planID)
		if i == -1 {
			return plans, false
		}
		j := indexOfSchedule(plans[i].Schedules, s.ID)
		if j == -1 {
			return plans, false
		}
		plans[i].Schedules[j] = s
		return plans, true
	})
}

func (r *Repository) DeleteSchedule(planID, scheduleID string) Outcome {
	return r.mutate("DeleteSchedule", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		i := indexOfPlan(plans, planID)
		if i == -1 {
			return plans, false
		}
		n := len(plans[i].Schedules)
		plans[i].Schedules = slices.DeleteFunc(plans[i].Schedules, func(s domain.Schedule) bool {
			return s.ID == scheduleID
		})
		return plans, len(plans[i].Schedules) != n
	})
}
