package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplinehq/tripline/plan"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"7:00 PM", 19, 0, true},
		{"19:30", 19, 30, true},
		{"7pm", 19, 0, true},
		{"12:00 AM", 0, 0, true},
		{"12pm", 12, 0, true},
		{"12am", 0, 0, true},
		{"7", 7, 0, true},
		{"7 AM", 7, 0, true},
		{"11:59pm", 23, 59, true},
		{"0:05", 0, 5, true},
		{"bad-time", 0, 0, false},
		{"", 0, 0, false},
		{"25:00", 0, 0, false},
		{"13pm", 0, 0, false},
		{"7:60", 0, 0, false},
		{"7:", 0, 0, false},
		{"7:30:00", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			hour, minute, ok := parseClock(tc.input)
			require.Equal(t, tc.ok, ok, "unexpected parse result for %q", tc.input)
			if tc.ok {
				assert.Equal(t, tc.hour, hour, "wrong hour for %q", tc.input)
				assert.Equal(t, tc.minute, minute, "wrong minute for %q", tc.input)
			}
		})
	}
}

func TestNormalizeDropsUndatedEntries(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	entries := plan.Entries{
		Restaurants: []plan.Restaurant{
			{ID: "r-idea", Name: "Someday Sushi"},
			{ID: "r-booked", Name: "Booked Bistro", Date: &date, TimeOfDay: "7pm"},
		},
		Activities: []plan.Activity{
			{ID: "a-idea", Name: "Maybe Museum"},
		},
	}

	items := Normalize(entries)
	require.Len(t, items, 1, "only the dated reservation should survive")
	require.Equal(t, "r-booked", items[0].ID)
	for _, item := range items {
		assert.NotEqual(t, "r-idea", item.ID, "undated reservation must be dropped")
		assert.NotEqual(t, "a-idea", item.ID, "undated activity must be dropped")
	}
}

func TestNormalizeRestaurant(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	t.Run("parsed time becomes a point event", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeRestaurant(&plan.Restaurant{ID: "r1", Date: &date, TimeOfDay: "7:00 PM"})
		require.True(t, ok)
		assert.True(t, item.Point, "reservation should be a point event")
		assert.False(t, item.AllDay)
		assert.Equal(t, 19, item.Start.Hour())
		assert.Equal(t, time.Hour, item.Duration(), "point events get a synthetic hour")
	})

	t.Run("unparseable time falls back to noon", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeRestaurant(&plan.Restaurant{ID: "r2", Date: &date, TimeOfDay: "bad-time"})
		require.True(t, ok)
		assert.True(t, item.Point)
		assert.Equal(t, 12, item.Start.Hour(), "noon fallback for reservations")
		assert.Equal(t, 0, item.Start.Minute())
	})

	t.Run("missing time becomes all-day", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeRestaurant(&plan.Restaurant{ID: "r3", Date: &date})
		require.True(t, ok)
		assert.True(t, item.AllDay)
		assert.False(t, item.Point)
	})

	t.Run("date read by UTC calendar day", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeRestaurant(&plan.Restaurant{ID: "r4", Date: &date, TimeOfDay: "7pm"})
		require.True(t, ok)
		assert.Equal(t, 3, item.Start.Day(), "displayed day must not shift in zones behind UTC")
		assert.Equal(t, time.March, item.Start.Month())
	})
}

func TestNormalizeActivity(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	t.Run("start and later end keep real duration", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeActivity(&plan.Activity{ID: "a1", Date: &date, StartTime: "9am", EndTime: "11:30"})
		require.True(t, ok)
		assert.False(t, item.Point)
		assert.Equal(t, 9, item.Start.Hour())
		assert.Equal(t, 11, item.End.Hour())
		assert.Equal(t, 30, item.End.Minute())
	})

	t.Run("end not after start collapses to point event", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeActivity(&plan.Activity{ID: "a2", Date: &date, StartTime: "2pm", EndTime: "1pm"})
		require.True(t, ok)
		assert.True(t, item.Point, "inverted range degrades to a point event")
		assert.Equal(t, time.Hour, item.Duration())
	})

	t.Run("missing start falls back to midnight", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeActivity(&plan.Activity{ID: "a3", Date: &date, StartTime: "??", EndTime: "10am"})
		require.True(t, ok)
		assert.Equal(t, 0, item.Start.Hour(), "midnight fallback for activity starts")
		assert.Equal(t, 10, item.End.Hour())
	})

	t.Run("no times at all becomes all-day", func(t *testing.T) {
		t.Parallel()
		item, ok := normalizeActivity(&plan.Activity{ID: "a4", Date: &date})
		require.True(t, ok)
		assert.True(t, item.AllDay)
	})
}

func TestNormalizeTwoInstantCategories(t *testing.T) {
	t.Parallel()

	depart := time.Date(2026, time.March, 2, 8, 15, 0, 0, time.Local)
	arrive := depart.Add(3 * time.Hour)

	t.Run("flight keeps clock-time semantics", func(t *testing.T) {
		t.Parallel()
		item := normalizeFlight(&plan.Flight{ID: "f1", Airline: "UA", FlightNumber: "123", Departure: depart, Arrival: arrive})
		assert.False(t, item.AllDay)
		assert.False(t, item.Point)
		assert.Equal(t, "UA 123", item.Name)
		assert.Equal(t, depart, item.Start)
		assert.Equal(t, arrive, item.End)
	})

	t.Run("inverted flight degrades to point event", func(t *testing.T) {
		t.Parallel()
		item := normalizeFlight(&plan.Flight{ID: "f2", Departure: arrive, Arrival: depart})
		assert.True(t, item.Point)
		assert.Equal(t, time.Hour, item.Duration())
	})

	t.Run("lodging and rental are all-day banners", func(t *testing.T) {
		t.Parallel()
		lodging := normalizeLodging(&plan.Lodging{ID: "l1", Name: "Inn", CheckIn: depart, CheckOut: arrive.AddDate(0, 0, 2)})
		rental := normalizeCarRental(&plan.CarRental{ID: "c1", Agency: "Hurtz", Pickup: depart, Dropoff: arrive})
		assert.True(t, lodging.AllDay)
		assert.True(t, rental.AllDay)
	})
}
