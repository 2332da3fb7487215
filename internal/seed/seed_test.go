package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/storage"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

func TestDemoPlan_Date(t *testing.T) {
	assert.Equal(t, "2024-05-03", DemoPlan(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)).Date)
	assert.Equal(t, "2024-05-03", DemoPlan(time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC)).Date)
	assert.Equal(t, "2025-05-03", DemoPlan(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Date)
}

func TestDemoPlan_SchedulesAreValid(t *testing.T) {
	for _, s := range DemoPlan(time.Now()).Schedules {
		assert.NoError(t, utils.ValidateScheduleTime(&s))
	}
}

func TestSeedDemoData(t *testing.T) {
	repo := repository.NewRepository(&config.Config{}, storage.NewMemory(0), nil)

	require.NoError(t, SeedDemoData(repo, time.Now()))

	plans := repo.GetAllHolidayPlans()
	require.Len(t, plans, 1)
	assert.Equal(t, "GW", plans[0].Title)
	assert.Len(t, plans[0].Schedules, 3)
}

func TestSeedDemoData_Unavailable(t *testing.T) {
	repo := repository.NewRepository(&config.Config{}, storage.Unavailable{}, nil)

	assert.Error(t, SeedDemoData(repo, time.Now()))
}

func TestSeedRandomPlansThenClear(t *testing.T) {
	repo := repository.NewRepository(&config.Config{}, storage.NewMemory(0), nil)

	assert.Equal(t, 7, SeedRandomPlans(repo, 7, time.Now()))
	assert.Len(t, repo.GetAllHolidayPlans(), 7)

	assert.Equal(t, 7, ClearAll(repo))
	assert.Empty(t, repo.GetAllHolidayPlans())
}
