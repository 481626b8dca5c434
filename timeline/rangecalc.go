package timeline

import (
	"time"

	"github.com/triplinehq/tripline/plan"
)

// Range is the visible display window, snapped outward to clean day
// boundaries: Start at local midnight, End at 23:59:59.999 of its day.
type Range struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	TotalHours float64   `json:"total_hours"`
}

// ComputeRange finds the minimum covering display range: seeded from the
// trip's declared window when present, extended so no item is ever clipped,
// and falling back to today when there is nothing at all to show.
func ComputeRange(window *plan.Window, items []Item) Range {
	var start, end time.Time

	if window != nil {
		// Window dates are calendar-day values; read them the same way
		// normalization does.
		start = startOfCalendarDay(window.Start)
		end = startOfCalendarDay(window.End)
	}

	for _, item := range items {
		if start.IsZero() || item.Start.Before(start) {
			start = item.Start
		}
		if end.IsZero() || item.End.After(end) {
			end = item.End
		}
	}

	if start.IsZero() {
		now := time.Now()
		start, end = now, now
	}

	start = startOfDay(start)
	end = endOfDay(end)

	return Range{
		Start:      start,
		End:        end,
		TotalHours: end.Sub(start).Hours(),
	}
}

// startOfDay snaps an instant down to its local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// endOfDay snaps an instant up to 23:59:59.999 of its local calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// startOfCalendarDay is startOfDay for calendar-day-only values, which are
// read via their UTC date components.
func startOfCalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
