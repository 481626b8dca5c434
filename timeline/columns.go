package timeline

import (
	"sort"
	"time"
)

// interval is a packing candidate: an item's ID plus its (possibly
// day-clipped) bounds.
type interval struct {
	id         string
	start, end time.Time
}

// overlaps is the open-interval test used everywhere in this package:
// touching endpoints do not overlap.
func (a interval) overlaps(b interval) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}

// AssignColumns packs all timed (non-all-day) items across the whole
// visible range, for a continuous scrolling timeline. The result maps item
// ID to its column and the column count of its own overlap group.
func AssignColumns(items []Item) Layout {
	candidates := make([]interval, 0, len(items))
	for _, item := range items {
		if item.AllDay {
			continue
		}
		candidates = append(candidates, interval{id: item.ID, start: item.Start, end: item.End})
	}
	return packColumns(candidates)
}

// AssignColumnsForDay packs independently within one calendar day's
// [dayStart, dayStart+24h) window. An item belongs to the day only under
// strict inequality on both boundaries, so an item ending exactly at
// midnight does not bleed into the next day. Intervals are clipped to the
// day before overlap testing.
func AssignColumnsForDay(items []Item, dayStart time.Time) Layout {
	dayEnd := dayStart.Add(24 * time.Hour)

	candidates := make([]interval, 0, len(items))
	for _, item := range items {
		if item.AllDay {
			continue
		}
		if !item.Start.Before(dayEnd) || !item.End.After(dayStart) {
			continue
		}
		iv := interval{id: item.ID, start: item.Start, end: item.End}
		if iv.start.Before(dayStart) {
			iv.start = dayStart
		}
		if iv.end.After(dayEnd) {
			iv.end = dayEnd
		}
		candidates = append(candidates, iv)
	}
	return packColumns(candidates)
}

// packColumns is the greedy interval-coloring sweep shared by both
// variants. Deterministic: candidates are sorted by start time, ties broken
// by longer duration first so wider items claim lower column indices.
func packColumns(candidates []interval) Layout {
	layout := make(Layout, len(candidates))
	if len(candidates) == 0 {
		return layout
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.start.Equal(b.start) {
			return a.end.Sub(a.start) > b.end.Sub(b.start)
		}
		return a.start.Before(b.start)
	})

	// columnEnds[c] is the end time of the most recent occupant of column
	// c. A column is free once its occupant has ended; touching endpoints
	// do not count as overlapping.
	var (
		columnEnds []time.Time
		columns    = make([]int, len(candidates))
	)
	for i, iv := range candidates {
		placed := -1
		for c, colEnd := range columnEnds {
			if !colEnd.After(iv.start) {
				placed = c
				break
			}
		}
		if placed == -1 {
			placed = len(columnEnds)
			columnEnds = append(columnEnds, iv.end)
		} else {
			columnEnds[placed] = iv.end
		}
		columns[i] = placed
	}

	// TotalColumns is local to each item's overlap group: a later,
	// unrelated item sitting in a high column must not widen earlier
	// items. O(n^2), fine at single-trip scale.
	for i, iv := range candidates {
		maxColumn := columns[i]
		for j, other := range candidates {
			if i == j || !iv.overlaps(other) {
				continue
			}
			if columns[j] > maxColumn {
				maxColumn = columns[j]
			}
		}
		layout[iv.id] = Placement{
			Column:       columns[i],
			TotalColumns: maxColumn + 1,
		}
	}

	return layout
}
