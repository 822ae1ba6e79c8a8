package booking

import (
	"time"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

// FitsSchedule reports whether the [start, end) slot falls entirely inside
// at least one of the barber's windows for that day. Comparison is on local
// time of day; a slot running past midnight fits no window.
func FitsSchedule(windows []models.Schedule, start, end time.Time) bool {
	startMin := start.Hour()*60 + start.Minute()
	endMin := startMin + int(end.Sub(start).Minutes())

	for _, w := range windows {
		ws, okS := parseClock(w.StartTime)
		we, okE := parseClock(w.EndTime)
		if !okS || !okE {
			continue
		}
		if startMin >= ws && endMin <= we {
			return true
		}
	}
	return false
}

// Overlaps applies the strict half-open interval test used by the conflict
// check: [aStart, aEnd) intersects [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func parseClock(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
