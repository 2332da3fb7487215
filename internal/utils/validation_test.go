package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

func TestValidateScheduleTime(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   bool
	}{
		{"valid", "09:00", "11:00", false},
		{"one minute", "23:58", "23:59", false},
		{"equal", "10:00", "10:00", true},
		{"reversed", "12:00", "11:00", true},
		{"bad start", "9am", "11:00", true},
		{"bad end", "09:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheduleTime(&domain.Schedule{StartTime: tt.startTime, EndTime: tt.endTime})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHolidayPlanDate(t *testing.T) {
	assert.NoError(t, ValidateHolidayPlanDate(&domain.HolidayPlan{Date: "2024-05-03"}))
	assert.Error(t, ValidateHolidayPlanDate(&domain.HolidayPlan{Date: "2024-13-01"}))
	assert.Error(t, ValidateHolidayPlanDate(&domain.HolidayPlan{Date: "05/03/2024"}))
	assert.Error(t, ValidateHolidayPlanDate(&domain.HolidayPlan{}))
}
