package view

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplinehq/tripline/cost"
	"github.com/triplinehq/tripline/internal/testhelpers"
	"github.com/triplinehq/tripline/plan"
)

func TestTrip(t *testing.T) {
	t.Parallel()

	log, testDir := testhelpers.Setup(t)

	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	trip := &plan.Trip{
		ID:      "pnw-loop",
		Name:    "Pacific Northwest Loop",
		Members: []string{"ana", "ben"},
		Window: &plan.Window{
			Start: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	entries := plan.Entries{
		Flights: []plan.Flight{{
			ID: "f1", Airline: "UA", FlightNumber: "512",
			Departure: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local),
			Arrival:   time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local),
			Cost:      420, PaidBy: "ana",
		}},
		Lodgings: []plan.Lodging{{
			ID: "l1", Name: "Granville Island Hotel",
			CheckIn:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local),
			CheckOut: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local),
			Cost:     880, PaidBy: "ben",
		}},
		Restaurants: []plan.Restaurant{{ID: "r1", Name: "Miku", Date: &date, TimeOfDay: "7pm"}},
	}

	outputFile, err := Trip(log, trip, entries,
		WithOutputDir(testDir),
		WithTemplatesDir("templates"),
	)
	require.NoError(t, err, "error rendering trip")
	require.FileExists(t, outputFile)

	html, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Pacific Northwest Loop")
	assert.Contains(t, string(html), "Miku")
	assert.Contains(t, string(html), "cost_breakdown", "costed entries should embed a chart")
}

func TestTripNoCosts(t *testing.T) {
	t.Parallel()

	log, testDir := testhelpers.Setup(t)

	trip := &plan.Trip{ID: "empty", Name: "Empty Trip"}
	outputFile, err := Trip(log, trip, plan.Entries{},
		WithOutputDir(testDir),
		WithTemplatesDir("templates"),
	)
	require.NoError(t, err, "an empty trip still renders (today fallback)")

	html, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "cost_breakdown", "no chart without costed entries")
}

func TestCostChartNilOnZeroTotal(t *testing.T) {
	t.Parallel()

	chart, err := costChart(&cost.Breakdown{})
	require.NoError(t, err)
	assert.Nil(t, chart)
}
