package repository

import (
	"slices"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

// GetAllHolidayPlans returns the plans in insertion order. The result is never
// nil, and an unreadable medium yields an empty slice.
func (r *Repository) GetAllHolidayPlans() []domain.HolidayPlan {
	return r.read("GetAllHolidayPlans")
}

// GetHolidayPlanByID returns nil when the plan does not exist or cannot be read.
func (r *Repository) GetHolidayPlanByID(id string) *domain.HolidayPlan {
	plans := r.read("GetHolidayPlanByID")

	i := indexOfPlan(plans, id)
	if i == -1 {
		return nil
	}
	plan := plans[i]
	return &plan
}

// CreateHolidayPlan appends plan as given. The id is not checked for
// uniqueness.
func (r *Repository) CreateHolidayPlan(plan *domain.HolidayPlan) Outcome {
	p := *plan
	if p.Schedules == nil {
		p.Schedules = []domain.Schedule{}
	} else {
		p.Schedules = slices.Clone(p.Schedules)
	}

	return r.mutate("CreateHolidayPlan", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		return append(plans, p), true
	})
}

// UpdateHolidayPlan replaces the stored plan with the same id, schedules
// included.
func (r *Repository) UpdateHolidayPlan(plan *domain.HolidayPlan) Outcome {
	p := *plan
	if p.Schedules == nil {
		p.Schedules = []domain.Schedule{}
	} else {
		p.Schedules = slices.Clone(p.Schedules)
	}

	return r.mutate("UpdateHolidayPlan", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		i := indexOfPlan(plans, p.ID)
		if i == -1 {
			return plans, false
		}
		plans[i] = p
		return plans, true
	})
}

// DeleteHolidayPlan removes the plan and with it all of its schedules.
func (r *Repository) DeleteHolidayPlan(id string) Outcome {
	return r.mutate("DeleteHolidayPlan", func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool) {
		n := len(plans)
		plans = slices.DeleteFunc(plans, func(p domain.HolidayPlan) bool {
			return p.ID == id
		})
		return plans, len(plans) != n
	})
}
