package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9:30", "24:00", "12:60", "noon", "12:00:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestCompareTimeStrings(t *testing.T) {
	assert.Negative(t, CompareTimeStrings("09:00", "11:00"))
	assert.Positive(t, CompareTimeStrings("13:05", "13:00"))
	assert.Zero(t, CompareTimeStrings("07:15", "07:15"))
	assert.Negative(t, CompareTimeStrings("bad", "00:00"))
	assert.Zero(t, CompareTimeStrings("bad", "worse"))
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "13:00 - 15:00", FormatTimeRange("13:00", "15:00"))
}

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := GenerateTimeSlots(30)
	require.NoError(t, err)
	require.Len(t, slots, 48)
	assert.Equal(t, "00:00", slots[0])
	assert.Equal(t, "00:30", slots[1])
	assert.Equal(t, "23:30", slots[47])

	slots, err = GenerateTimeSlots(10)
	require.NoError(t, err)
	assert.Len(t, slots, 144)

	slots, err = GenerateTimeSlots(45)
	require.NoError(t, err)
	require.Len(t, slots, 32)
	assert.Equal(t, []string{"00:00", "00:45", "01:30", "02:15"}, slots[:4])
	assert.Equal(t, "23:15", slots[31])

	slots, err = GenerateTimeSlots(90)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, []string{"00:00", "01:30", "03:00"}, slots[:3])
	assert.Equal(t, "22:30", slots[15])

	slots, err = GenerateTimeSlots(1440)
	require.NoError(t, err)
	assert.Equal(t, []string{"00:00"}, slots)

	_, err = GenerateTimeSlots(0)
	assert.Error(t, err)
	_, err = GenerateTimeSlots(1441)
	assert.Error(t, err)
}

func TestDateChecks(t *testing.T) {
	now := time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate("2024-05-02", now))
	assert.False(t, IsPastDate("2024-05-03", now))
	assert.True(t, IsCurrentDate("2024-05-03", now))
	assert.False(t, IsCurrentDate("2024-05-04", now))
	assert.True(t, IsFutureDate("2024-05-04", now))
	assert.False(t, IsFutureDate("2024-05-03", now))

	for _, check := range []func(string, time.Time) bool{IsPastDate, IsCurrentDate, IsFutureDate} {
		assert.False(t, check("not-a-date", now))
	}
}

func TestDateStatus(t *testing.T) {
	now := time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, DateStatusPast, DateStatus("2024-05-02", now))
	assert.Equal(t, DateStatusCurrent, DateStatus("2024-05-03", now))
	assert.Equal(t, DateStatusFuture, DateStatus("2024-05-04", now))
	assert.Empty(t, DateStatus("not-a-date", now))
}

func TestDateChecks_UseLocationOfNow(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-05-02 20:00 UTC is already 2024-05-03 in Tokyo
	now := time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC).In(tokyo)

	assert.True(t, IsCurrentDate("2024-05-03", now))
	assert.Equal(t, "2024-05-03", TodayString(now))
}
