package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateRandomSchedules_NoOverlap(t *testing.T) {
	for i := 0; i < 50; i++ {
		schedules := GenerateRandomSchedules(6)

		prevEnd := 0
		for _, s := range schedules {
			require.NoError(t, ValidateScheduleTime(&s))
			start, _ := ParseClock(s.StartTime)
			end, _ := ParseClock(s.EndTime)
			assert.GreaterOrEqual(t, start, prevEnd)
			assert.LessOrEqual(t, end, 22*60)
			prevEnd = end
		}
	}
}

func TestGenerateRandomHolidayPlan(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	plan := GenerateRandomHolidayPlan(now)

	assert.NotEmpty(t, plan.ID)
	assert.NotEmpty(t, plan.Title)
	assert.NoError(t, ValidateHolidayPlanDate(plan))
	assert.NotNil(t, plan.Schedules)

	d, err := ParseDate(plan.Date, time.UTC)
	require.NoError(t, err)
	assert.WithinDuration(t, now, d, 91*24*time.Hour)
}
