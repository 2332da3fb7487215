package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

func GenerateID() string {
	return uuid.NewString()
}

var holidayTitles = []string{
	"Golden Week", "Summer break", "Obon", "New Year", "Silver Week",
	"Long weekend", "Marine Day", "Culture Day", "Sports Day", "Winter break",
}

var activities = []string{
	"Hiking", "Museum", "Brunch", "Onsen", "Cinema", "Shopping",
	"Cycling", "Picnic", "Karaoke", "Aquarium", "Cafe hopping", "Reading",
}

var colors = []string{"", "#ef4444", "#f59e0b", "#10b981", "#3b82f6", "#8b5cf6"}

// GenerateRandomSchedules returns up to n schedules in time order that never
// overlap, all between 07:00 and 22:00.
func GenerateRandomSchedules(n int) []domain.Schedule {
	schedules := []domain.Schedule{}
	cursor := 7 * 60

	for i := 0; i < n; i++ {
		start := cursor + rand.Intn(4)*30
		end := start + (rand.Intn(4)+1)*30
		if end > 22*60 {
			break
		}
		cursor = end

		schedules = append(schedules, domain.Schedule{
			ID:        GenerateID(),
			Title:     activities[rand.Intn(len(activities))],
			StartTime: fmt.Sprintf("%02d:%02d", start/60, start%60),
			EndTime:   fmt.Sprintf("%02d:%02d", end/60, end%60),
			Memo:      "",
			Color:     colors[rand.Intn(len(colors))],
		})
	}
	return schedules
}

// GenerateRandomHolidayPlan builds a plan dated within 90 days of now with a
// few schedules.
func GenerateRandomHolidayPlan(now time.Time) *domain.HolidayPlan {
	date := now.AddDate(0, 0, rand.Intn(181)-90)

	return &domain.HolidayPlan{
		ID:        GenerateID(),
		Title:     holidayTitles[rand.Intn(len(holidayTitles))],
		Date:      TodayString(date),
		Schedules: GenerateRandomSchedules(rand.Intn(5)),
	}
}
