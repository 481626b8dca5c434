package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplinehq/tripline/plan"
)

func TestComputeRangeSnapsTripWindow(t *testing.T) {
	t.Parallel()

	window := &plan.Window{
		Start: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	}

	r := ComputeRange(window, nil)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, 23, r.End.Hour())
	assert.Equal(t, 59, r.End.Minute())
	assert.Greater(t, r.TotalHours, 167.0, "7 calendar days")
	assert.LessOrEqual(t, r.TotalHours, 168.0)
}

func TestComputeRangeExtendsToCoverItems(t *testing.T) {
	t.Parallel()

	window := &plan.Window{
		Start: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
	items := []Item{
		// An early arrival and a late departure outside the declared window.
		timedItem("early", -40, -38),
		timedItem("late", 72, 74),
	}

	r := ComputeRange(window, items)
	for _, item := range items {
		assert.False(t, item.Start.Before(r.Start), "range must never clip item %s", item.ID)
		assert.False(t, item.End.After(r.End), "range must never clip item %s", item.ID)
	}
	assert.Equal(t, 0, r.Start.Hour(), "start snapped to midnight")
}

func TestComputeRangeFallsBackToToday(t *testing.T) {
	t.Parallel()

	r := ComputeRange(nil, nil)
	now := time.Now()
	assert.Equal(t, now.Day(), r.Start.Day())
	assert.Equal(t, 0, r.Start.Hour())
	assert.Greater(t, r.TotalHours, 23.0)
	assert.LessOrEqual(t, r.TotalHours, 24.0)
}

func TestComputeRangeTotalHoursFractionalBoundary(t *testing.T) {
	t.Parallel()

	r := ComputeRange(nil, []Item{timedItem("a", 9, 10)})
	// Midnight through 23:59:59.999: just under a full day.
	require.InDelta(t, 24.0, r.TotalHours, 0.001)
	assert.Less(t, r.TotalHours, 24.0)
}
