package domain

// Schedule is a timed activity inside a holiday plan. StartTime and EndTime
// are "HH:MM" in 24-hour form.
type Schedule struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // usually empty, the plan date applies
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Memo      string `json:"memo"`
	Color     string `json:"color,omitempty"`
}

// HolidayPlan owns its schedules structurally; removing the plan removes them.
type HolidayPlan struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Schedules []Schedule `json:"schedules"`
}
