package timeline

import (
	"fmt"
	"time"
)

// DayMarkers returns one marker per calendar day fully or partially inside
// the range, each at local midnight.
func DayMarkers(r Range) []time.Time {
	markers := make([]time.Time, 0, int(r.TotalHours/24)+1)
	for m := startOfDay(r.Start); !m.After(r.End); m = nextDay(m) {
		markers = append(markers, m)
	}
	return markers
}

func nextDay(midnight time.Time) time.Time {
	y, m, d := midnight.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.Local)
}

// HourLabel is one gridline label within a single day's column.
type HourLabel struct {
	Hour     int     `json:"hour"`
	OffsetPx float64 `json:"offset_px"`
	Text     string  `json:"text"`
}

// HourLabels returns the 23 fixed labels for hours 1-23 of a day, formatted
// "1a".."11a", "12p", "1p".."11p". Hour 0 is omitted since it coincides
// with the day marker.
func HourLabels() []HourLabel {
	labels := make([]HourLabel, 0, 23)
	for hour := 1; hour <= 23; hour++ {
		var text string
		switch {
		case hour < 12:
			text = fmt.Sprintf("%da", hour)
		case hour == 12:
			text = "12p"
		default:
			text = fmt.Sprintf("%dp", hour-12)
		}
		labels = append(labels, HourLabel{
			Hour:     hour,
			OffsetPx: float64(hour) * PixelsPerHour,
			Text:     text,
		})
	}
	return labels
}
