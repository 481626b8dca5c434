package timeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/triplinehq/tripline/plan"
)

// Fallback hours for entries whose time-of-day string is present but
// unparseable. Reservations land at noon, activities at midnight.
const (
	fallbackReservationHour = 12
	fallbackActivityHour    = 0
)

// Normalize converts raw trip entries into timeline items. Entries without
// the minimum date information to place them (an idea with no committed
// date) are dropped; everything else degrades into something displayable.
func Normalize(entries plan.Entries) []Item {
	items := make([]Item, 0, entries.Len())

	for i := range entries.Flights {
		items = append(items, normalizeFlight(&entries.Flights[i]))
	}
	for i := range entries.Lodgings {
		items = append(items, normalizeLodging(&entries.Lodgings[i]))
	}
	for i := range entries.CarRentals {
		items = append(items, normalizeCarRental(&entries.CarRentals[i]))
	}
	for i := range entries.Restaurants {
		if item, ok := normalizeRestaurant(&entries.Restaurants[i]); ok {
			items = append(items, item)
		}
	}
	for i := range entries.Activities {
		if item, ok := normalizeActivity(&entries.Activities[i]); ok {
			items = append(items, item)
		}
	}

	return items
}

func normalizeFlight(f *plan.Flight) Item {
	name := strings.TrimSpace(f.Airline + " " + f.FlightNumber)
	item := Item{
		ID:       f.ID,
		Category: CategoryFlight,
		Name:     name,
		Start:    f.Departure,
		End:      f.Arrival,
		Entry:    f,
	}
	return coerceTimed(item)
}

func normalizeLodging(l *plan.Lodging) Item {
	item := Item{
		ID:       l.ID,
		Category: CategoryLodging,
		Name:     l.Name,
		Start:    l.CheckIn,
		End:      l.CheckOut,
		AllDay:   true,
		Entry:    l,
	}
	return coerceAllDay(item)
}

func normalizeCarRental(c *plan.CarRental) Item {
	item := Item{
		ID:       c.ID,
		Category: CategoryCarRental,
		Name:     c.Agency,
		Start:    c.Pickup,
		End:      c.Dropoff,
		AllDay:   true,
		Entry:    c,
	}
	return coerceAllDay(item)
}

func normalizeRestaurant(r *plan.Restaurant) (Item, bool) {
	if r.Date == nil {
		return Item{}, false
	}

	item := Item{
		ID:       r.ID,
		Category: CategoryRestaurant,
		Name:     r.Name,
		Entry:    r,
	}

	if strings.TrimSpace(r.TimeOfDay) == "" {
		// No committed time at all: render as a banner on that day.
		item.AllDay = true
		item.Start = atClock(*r.Date, 0, 0)
		item.End = item.Start.Add(24 * time.Hour)
		return item, true
	}

	hour, minute, ok := parseClock(r.TimeOfDay)
	if !ok {
		hour, minute = fallbackReservationHour, 0
	}
	item.Start = atClock(*r.Date, hour, minute)
	item.End = item.Start.Add(time.Hour)
	item.Point = true
	return item, true
}

func normalizeActivity(a *plan.Activity) (Item, bool) {
	if a.Date == nil {
		return Item{}, false
	}

	item := Item{
		ID:       a.ID,
		Category: CategoryActivity,
		Name:     a.Name,
		Entry:    a,
	}

	startRaw := strings.TrimSpace(a.StartTime)
	endRaw := strings.TrimSpace(a.EndTime)
	if startRaw == "" && endRaw == "" {
		item.AllDay = true
		item.Start = atClock(*a.Date, 0, 0)
		item.End = item.Start.Add(24 * time.Hour)
		return item, true
	}

	hour, minute, ok := parseClock(startRaw)
	if !ok {
		hour, minute = fallbackActivityHour, 0
	}
	item.Start = atClock(*a.Date, hour, minute)

	if endHour, endMinute, ok := parseClock(endRaw); ok {
		end := atClock(*a.Date, endHour, endMinute)
		if end.After(item.Start) {
			item.End = end
			return item, true
		}
	}

	// No usable end time, or one that doesn't follow the start: synthetic
	// one-hour point event.
	item.End = item.Start.Add(time.Hour)
	item.Point = true
	return item, true
}

// coerceTimed fixes inverted or degenerate ranges on clock-time items by
// collapsing them into a synthetic one-hour point event.
func coerceTimed(item Item) Item {
	if !item.End.After(item.Start) {
		item.End = item.Start.Add(time.Hour)
		item.Point = true
	}
	return item
}

// coerceAllDay clamps an inverted all-day range; a banner never runs
// backwards.
func coerceAllDay(item Item) Item {
	if item.End.Before(item.Start) {
		item.End = item.Start
	}
	return item
}

// atClock combines a calendar-day-only value with a local time of day. The
// date is read via its UTC calendar components so a date stored as a UTC
// midnight doesn't shift back a day in timezones behind UTC.
func atClock(day time.Time, hour, minute int) time.Time {
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, time.Local)
}

// parseClock parses a free-text time-of-day string. Accepted forms,
// case-insensitive: "7", "7pm", "19:30", "7:00 PM". Hour 12 AM maps to 0
// and 12 PM stays 12. Anything outside 0-23 hours or 0-59 minutes is
// unparseable.
func parseClock(raw string) (hour, minute int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, 0, false
	}

	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(s, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	hourPart, minutePart, hasMinute := strings.Cut(s, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, false
	}
	if hasMinute {
		// Atoi rejects trailing garbage like "7:3x" or "7:30:00".
		minute, err = strconv.Atoi(minutePart)
		if err != nil {
			return 0, 0, false
		}
	}

	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
