// Package flagagg buckets flag events into resolved time windows and ranks
// category counts. Pure functions over in-memory slices; callers fetch
package flagagg

import (
	"sort"
	"time"

	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/core/normalize"
)

// Event is one stored flag occurrence. At is a UTC instant
type Event struct {
	At       time.Time
	Category string
}

// CategoryCount pairs a canonical category with its tally
type CategoryCount struct {
	Category string
	Count    int
}

// WindowCounts holds sparse per-category tallies for one window
type WindowCounts struct {
	Window flagcal.Window
	Counts map[string]int
}

// CountByWindow tallies events into every window that contains them.
// Month windows are disjoint so an event lands at most once there, but
// overlapping windows are legal and each gets the event. Events with an
// empty category after normalization are not countable and are skipped.
// Zero-count categories never appear in a window's map
func CountByWindow(events []Event, windows []flagcal.Window) []WindowCounts {
	out := make([]WindowCounts, len(windows))
	for i, w := range windows {
		out[i] = WindowCounts{Window: w, Counts: map[string]int{}}
	}
	for _, ev := range events {
		cat := normalize.Category(ev.Category)
		if cat == "" {
			continue
		}
		for i := range out {
			if out[i].Window.Contains(ev.At) {
				out[i].Counts[cat]++
			}
		}
	}
	return out
}

// RankTotals sums counts across windows and returns categories ordered by
// total descending, ties broken lexicographically ascending so equal totals
// still produce a stable ranking
func RankTotals(wc []WindowCounts) []CategoryCount {
	totals := map[string]int{}
	for _, w := range wc {
		for cat, n := range w.Counts {
			totals[cat] += n
		}
	}
	return Rank(totals)
}

// Rank orders a category tally map by count descending then category
// ascending, dropping zero entries
func Rank(totals map[string]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(totals))
	for cat, n := range totals {
		if n == 0 {
			continue
		}
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// DayEntry is one event rendered for a single-day listing
type DayEntry struct {
	// Time is the local wall clock as HH:MM
	Time string
	// Category is the canonical label, nil when the event had none
	Category *string
	// At is the event instant in the local zone
	At time.Time
}

// DayEntries renders events ascending by timestamp in the calendar's local
// zone. The sort is stable so same-instant events keep their input order
func DayEntries(cal *flagcal.Calendar, events []Event) []DayEntry {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At.Before(sorted[j].At) })

	out := make([]DayEntry, 0, len(sorted))
	for _, ev := range sorted {
		local := cal.Local(ev.At)
		e := DayEntry{Time: local.Format("15:04"), At: local}
		if cat := normalize.Category(ev.Category); cat != "" {
			e.Category = &cat
		}
		out = append(out, e)
	}
	return out
}
