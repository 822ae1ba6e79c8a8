package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

func window(day time.Weekday, start, end string) models.Schedule {
	return models.Schedule{BarberID: "b1", DayOfWeek: day, StartTime: start, EndTime: end}
}

func at(hour, min int) time.Time {
	// 2026-03-02 is a Monday.
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestFitsSchedule(t *testing.T) {
	windows := []models.Schedule{window(time.Monday, "09:00", "18:00")}

	assert.True(t, FitsSchedule(windows, at(9, 0), at(9, 45)))
	assert.True(t, FitsSchedule(windows, at(17, 15), at(18, 0)))
	assert.False(t, FitsSchedule(windows, at(17, 30), at(18, 15)))
	assert.False(t, FitsSchedule(windows, at(8, 30), at(9, 15)))
}

func TestFitsScheduleAnyWindow(t *testing.T) {
	windows := []models.Schedule{
		window(time.Monday, "09:00", "12:00"),
		window(time.Monday, "14:00", "18:00"),
	}

	assert.True(t, FitsSchedule(windows, at(14, 0), at(14, 30)))
	// Straddles the gap between windows.
	assert.False(t, FitsSchedule(windows, at(11, 45), at(12, 30)))
}

func TestFitsScheduleNoWindows(t *testing.T) {
	assert.False(t, FitsSchedule(nil, at(10, 0), at(10, 30)))
}

func TestFitsSchedulePastMidnight(t *testing.T) {
	windows := []models.Schedule{window(time.Monday, "00:00", "23:59")}

	start := at(23, 30)
	end := start.Add(45 * time.Minute)
	assert.False(t, FitsSchedule(windows, start, end))
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Back-to-back slots share a boundary and do not overlap.
	assert.False(t, Overlaps(at(9, 0), at(9, 45), at(9, 45), at(10, 30)))
	assert.True(t, Overlaps(at(9, 0), at(9, 45), at(9, 20), at(10, 5)))
	assert.True(t, Overlaps(at(9, 20), at(10, 5), at(9, 0), at(9, 45)))
}
