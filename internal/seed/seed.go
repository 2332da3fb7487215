package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

// DemoPlan is the Golden Week example shown on a fresh install.
func DemoPlan(now time.Time) *domain.HolidayPlan {
	date := time.Date(now.Year(), time.May, 3, 0, 0, 0, 0, now.Location())
	if utils.IsPastDate(utils.TodayString(date), now) {
		date = date.AddDate(1, 0, 0)
	}

	return &domain.HolidayPlan{
		ID:    utils.GenerateID(),
		Title: "GW",
		Date:  utils.TodayString(date),
		Schedules: []domain.Schedule{
			{ID: utils.GenerateID(), Title: "Hike", StartTime: "09:00", EndTime: "11:00", Memo: "", Color: "#10b981"},
			{ID: utils.GenerateID(), Title: "Lunch", StartTime: "12:00", EndTime: "13:00", Memo: "soba near the trailhead"},
			{ID: utils.GenerateID(), Title: "Onsen", StartTime: "15:00", EndTime: "17:00", Memo: "", Color: "#3b82f6"},
		},
	}
}

// SeedDemoData adds the demo plan through the same operations the API uses:
// an empty plan first, then its schedules one by one.
func SeedDemoData(r *repository.Repository, now time.Time) error {
	plan := DemoPlan(now)
	schedules := plan.Schedules
	plan.Schedules = []domain.Schedule{}

	if outcome := r.CreateHolidayPlan(plan); outcome != repository.OutcomeApplied {
		return fmt.Errorf("create demo plan: %s", outcome)
	}
	for i := range schedules {
		if outcome := r.CreateSchedule(plan.ID, &schedules[i]); outcome != repository.OutcomeApplied {
			return fmt.Errorf("create demo schedule %q: %s", schedules[i].Title, outcome)
		}
	}

	slog.Info("demo plan inserted", "id", plan.ID, "date", plan.Date)
	return nil
}

// SeedRandomPlans inserts n random plans and returns how many were stored.
func SeedRandomPlans(r *repository.Repository, n int, now time.Time) int {
	cnt := 0
	for i := 0; i < n; i++ {
		plan := utils.GenerateRandomHolidayPlan(now)
		if outcome := r.CreateHolidayPlan(plan); outcome != repository.OutcomeApplied {
			slog.Error("failed to insert holiday plan", "outcome", outcome.String())
			continue
		}
		cnt++
	}
	return cnt
}

// ClearAll deletes every plan one at a time and returns how many were removed.
func ClearAll(r *repository.Repository) int {
	cnt := 0
	for _, plan := range r.GetAllHolidayPlans() {
		if r.DeleteHolidayPlan(plan.ID) == repository.OutcomeApplied {
			cnt++
		}
	}
	return cnt
}
