package timeline

import "time"

// Projection scale. Tunable display constants, shared with hour labels and
// the HTML view.
const (
	// PixelsPerHour is the vertical scale of the timed grid.
	PixelsPerHour = 24.0
	// MinItemHeightPx keeps very short or zero-duration items visible and
	// clickable.
	MinItemHeightPx = 24.0
	// AllDayLaneHeightPx is the fixed height of one stacked all-day banner.
	AllDayLaneHeightPx = 28.0
)

// PixelTop projects an instant to a vertical offset from the range start.
// May be negative when t precedes rangeStart; clipping for display is the
// caller's job.
func PixelTop(t, rangeStart time.Time) float64 {
	return t.Sub(rangeStart).Hours() * PixelsPerHour
}

// PixelHeight projects a duration to a pixel height, floored at
// MinItemHeightPx.
func PixelHeight(start, end time.Time) float64 {
	h := end.Sub(start).Hours() * PixelsPerHour
	if h < MinItemHeightPx {
		return MinItemHeightPx
	}
	return h
}

// ClipToDay bounds an item's interval to one calendar day's window, so a
// multi-day item shows only its within-day portion on each day it touches.
func ClipToDay(item Item, dayStart time.Time) (start, end time.Time) {
	dayEnd := dayStart.Add(24 * time.Hour)
	start, end = item.Start, item.End
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	return start, end
}

// DayPixelTop is PixelTop for an item within one day's column, measured
// from that day's midnight.
func DayPixelTop(item Item, dayStart time.Time) float64 {
	start, _ := ClipToDay(item, dayStart)
	return PixelTop(start, dayStart)
}

// DayPixelHeight is the height of an item's within-day portion, still
// subject to the minimum-height floor.
func DayPixelHeight(item Item, dayStart time.Time) float64 {
	start, end := ClipToDay(item, dayStart)
	return PixelHeight(start, end)
}

// AllDayLaneOffset is the vertical offset of the i-th stacked all-day
// banner. All-day items are never column-packed; they stack by index.
func AllDayLaneOffset(index int) float64 {
	return float64(index) * AllDayLaneHeightPx
}
