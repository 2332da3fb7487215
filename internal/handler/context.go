package handler

type ContextKey string

var (
	HolidayPlanCtx ContextKey = "holidayPlan"
	ScheduleCtx    ContextKey = "schedule"
)
