package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseClock turns "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil || len(s) != len(ClockLayout) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CompareTimeStrings orders two "HH:MM" values. Unparseable values sort first.
func CompareTimeStrings(a, b string) int {
	am, aErr := ParseClock(a)
	bm, bErr := ParseClock(b)
	switch {
	case aErr != nil && bErr != nil:
		return 0
	case aErr != nil:
		return -1
	case bErr != nil:
		return 1
	}
	return am - bm
}

func FormatTimeRange(startTime, endTime string) string {
	return fmt.Sprintf("%s - %s", startTime, endTime)
}

// GenerateTimeSlots lists the start of every interval-minute slot of a day,
// e.g. "00:00", "00:30", ... for 30.
func GenerateTimeSlots(interval int) ([]string, error) {
	if interval <= 0 || interval > 24*60 {
		return nil, fmt.Errorf("interval must be between 1 and 1440 minutes")
	}

	slots := make([]string, 0, (24*60+interval-1)/interval)
	for m := 0; m < 24*60; m += interval {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

func TodayString(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate reads "YYYY-MM-DD" as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// compareDay compares the calendar day of dateStr with now's day in now's
// location.
func compareDay(dateStr string, now time.Time) (int, error) {
	d, err := ParseDate(dateStr, now.Location())
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Compare(today), nil
}

func IsPastDate(dateStr string, now time.Time) bool {
	c, err := compareDay(dateStr, now)
	return err == nil && c < 0
}

func IsCurrentDate(dateStr string, now time.Time) bool {
	c, err := compareDay(dateStr, now)
	return err == nil && c == 0
}

func IsFutureDate(dateStr string, now time.Time) bool {
	c, err := compareDay(dateStr, now)
	return err == nil && c > 0
}

const (
	DateStatusPast    = "past"
	DateStatusCurrent = "current"
	DateStatusFuture  = "future"
)

// DateStatus classifies dateStr against now's day. Unparseable dates give "".
func DateStatus(dateStr string, now time.Time) string {
	switch {
	case IsPastDate(dateStr, now):
		return DateStatusPast
	case IsCurrentDate(dateStr, now):
		return DateStatusCurrent
	case IsFutureDate(dateStr, now):
		return DateStatusFuture
	default:
		return ""
	}
}
