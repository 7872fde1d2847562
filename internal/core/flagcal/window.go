package flagcal

import (
	"strconv"
	"time"
)

// Window is a half-open interval [Start, End) in UTC with a display label
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// LastMonths returns the n complete calendar months before ref's local
// month, most recent first. Each window spans the whole month in local time,
// expressed as UTC instants.
//
// Month arithmetic works on the year/month index only; subtracting months
// with AddDate would normalize day-of-month across short months (Mar 31 minus
// one month lands in early March)
func (c *Calendar) LastMonths(ref time.Time, n int) []Window {
	if n < 1 {
		return nil
	}
	local := ref.In(c.loc)
	y, m := local.Year(), int(local.Month())

	out := make([]Window, 0, n)
	for k := 1; k <= n; k++ {
		ym := y*12 + (m - 1) - k // zero-based month index
		wy, wm := ym/12, time.Month(ym%12+1)
		start := time.Date(wy, wm, 1, 0, 0, 0, 0, c.loc)
		end := time.Date(wy, wm+1, 1, 0, 0, 0, 0, c.loc) // month 13 normalizes to January
		out = append(out, Window{
			Start: start.UTC(),
			End:   end.UTC(),
			Label: wm.String() + " " + strconv.Itoa(wy),
		})
	}
	return out
}

// Day resolves a YYYY-MM-DD local date into its [midnight, next midnight)
// window in UTC. Empty input yields the zero window and ok=false
func (c *Calendar) Day(s string) (Window, bool, error) {
	if s == "" {
		return Window{}, false, nil
	}
	d, err := c.ParseDate(s)
	if err != nil {
		return Window{}, false, err
	}
	start := d
	end := time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, c.loc)
	return Window{Start: start.UTC(), End: end.UTC(), Label: s}, true, nil
}

// QueryFloor returns the earliest start among windows; events before it are
// out of scope for the whole request
func QueryFloor(windows []Window) time.Time {
	var floor time.Time
	for i, w := range windows {
		if i == 0 || w.Start.Before(floor) {
			floor = w.Start
		}
	}
	return floor
}
