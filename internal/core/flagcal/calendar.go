// Package flagcal resolves calendar-month and calendar-day windows for a
// fixed deployment timezone while event timestamps stay in UTC
package flagcal

import (
	"time"

	perr "flagwatch/internal/platform/errors"
)

// DateLayout is the wire form for calendar dates
const DateLayout = "2006-01-02"

// ErrInvalidDate reports a date string that does not parse as YYYY-MM-DD
var ErrInvalidDate = perr.New(perr.ErrorCodeValidation, "invalid date format, expected YYYY-MM-DD")

// Calendar converts between storage instants and local calendar time.
// The zero value is not usable; construct with New or NewAt
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// New builds a Calendar for the named IANA zone using the system clock
func New(zone string) (*Calendar, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "unknown timezone %q", zone)
	}
	return &Calendar{loc: loc, now: time.Now}, nil
}

// NewAt builds a Calendar with a fixed clock, for deterministic tests
func NewAt(loc *time.Location, now func() time.Time) *Calendar {
	return &Calendar{loc: loc, now: now}
}

// Location returns the local zone
func (c *Calendar) Location() *time.Location { return c.loc }

// Now returns the current instant from the injected clock
func (c *Calendar) Now() time.Time { return c.now() }

// Today returns the current local calendar date at local midnight
func (c *Calendar) Today() time.Time {
	n := c.now().In(c.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.loc)
}

// Local converts a storage instant into the local zone
func (c *Calendar) Local(t time.Time) time.Time { return t.In(c.loc) }

// ParseDate parses a YYYY-MM-DD string as a local calendar date.
// Empty input is not an error here; callers treat it as "no date"
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
