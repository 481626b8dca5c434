// package timeline lays out a trip's heterogeneous entries on a day-by-day
// visual timeline: normalization into a uniform item model, covering-range
// computation, interval-packing column assignment, time-to-pixel projection,
// and day/hour marker generation. Every function is a pure transformation;
// the package holds no state and never returns an error — malformed temporal
// input degrades into a displayable item or is dropped.
package timeline

import (
	"time"

	"github.com/triplinehq/tripline/plan"
)

// Category tags an item with the kind of entry it came from. It only drives
// display labeling and coloring; layout is category-agnostic once entries
// are normalized.
type Category string

const (
	CategoryFlight     Category = "flight"
	CategoryLodging    Category = "lodging"
	CategoryCarRental  Category = "car_rental"
	CategoryRestaurant Category = "restaurant"
	CategoryActivity   Category = "activity"
)

// Item is the unit the layout engine operates on, derived fresh from an
// entry record on every computation.
type Item struct {
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`

	// AllDay items have no clock-time component and render in a separate
	// stacked lane, never packed into columns.
	AllDay bool `json:"all_day"`
	// Point items have a start instant but no real duration; End is a
	// synthetic hour added purely for visual sizing.
	Point bool `json:"point"`

	// Entry is an opaque back-reference to the source record. The engine
	// never mutates it.
	Entry any `json:"-"`
}

// Duration is the item's layout duration. For point items this is the
// synthetic hour, not a real event length.
func (it Item) Duration() time.Duration {
	return it.End.Sub(it.Start)
}

// Placement is one item's column assignment within its overlap group.
type Placement struct {
	Column       int `json:"column"`
	TotalColumns int `json:"total_columns"`
}

// Layout maps item ID to placement. Items are never mutated; callers join
// by ID.
type Layout map[string]Placement

// Day is one calendar day of the visible range with its own independent
// column packing.
type Day struct {
	Start  time.Time `json:"start"`
	Layout Layout    `json:"layout"`
}

// Timeline is the full layout payload handed to a renderer.
type Timeline struct {
	Items      []Item      `json:"items"`
	Range      Range       `json:"range"`
	Layout     Layout      `json:"layout"`
	Days       []Day       `json:"days"`
	HourLabels []HourLabel `json:"hour_labels"`
}

// Build runs the whole pipeline for one trip: normalize, compute the
// covering range, assign columns globally and per day, and generate markers.
func Build(window *plan.Window, entries plan.Entries) *Timeline {
	items := Normalize(entries)
	r := ComputeRange(window, items)

	days := make([]Day, 0, int(r.TotalHours/24)+1)
	for _, dayStart := range DayMarkers(r) {
		days = append(days, Day{
			Start:  dayStart,
			Layout: AssignColumnsForDay(items, dayStart),
		})
	}

	return &Timeline{
		Items:      items,
		Range:      r,
		Layout:     AssignColumns(items),
		Days:       days,
		HourLabels: HourLabels(),
	}
}
