// Package service contains flag aggregation workflows
package service

import (
	"context"
	"strconv"
	"time"

	"flagwatch/internal/core/flagagg"
	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/modkit/repokit"
	"flagwatch/internal/services/api/flags/domain"
	"flagwatch/internal/services/api/flags/repo"
)

// DistributionMonths is how many complete months the distribution covers
const DistributionMonths = 3

// DefaultLatestLimit caps /flags/latest when the client sends none
const (
	DefaultLatestLimit = 20
	MaxLatestLimit     = 100
)

// Service defines the flags service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the flags service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cal    *flagcal.Calendar
}

// New constructs a flags service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cal *flagcal.Calendar) *Svc {
	if db == nil {
		panic("flags.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("flags.Service requires a non nil Repo binder")
	}
	if cal == nil {
		panic("flags.Service requires a non nil Calendar")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cal: cal}
}

// Distribution tallies flag types over the last complete calendar months,
// most recent month first under the month1 key
func (s *Svc) Distribution(ctx context.Context) (domain.MonthDistribution, error) {
	windows := s.cal.LastMonths(s.cal.Now(), DistributionMonths)
	floor := flagcal.QueryFloor(windows)

	events, err := s.Repo.EventsSince(ctx, floor)
	if err != nil {
		return nil, err
	}

	counted := flagagg.CountByWindow(events, windows)
	out := make(domain.MonthDistribution, len(counted))
	for i, wc := range counted {
		out["month"+strconv.Itoa(i+1)] = domain.MonthBucket{
			Name: wc.Window.Label,
			Data: toCategoryCounts(flagagg.Rank(wc.Counts)),
		}
	}
	return out, nil
}

// DistributionAll ranks flag type totals across all stored reports
func (s *Svc) DistributionAll(ctx context.Context) ([]domain.CategoryCount, error) {
	events, err := s.Repo.EventsSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	totals := map[string]int{}
	counted := flagagg.CountByWindow(events, []flagcal.Window{allTime()})
	for _, wc := range counted {
		for cat, n := range wc.Counts {
			totals[cat] += n
		}
	}
	return toCategoryCounts(flagagg.Rank(totals)), nil
}

// Day lists reports logged on one local calendar day, earliest first.
// A missing date is not an error, there is simply nothing to list
func (s *Svc) Day(ctx context.Context, date string) ([]domain.DayEntry, error) {
	w, ok, err := s.cal.Day(date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.DayEntry{}, nil
	}

	events, err := s.Repo.EventsBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	entries := flagagg.DayEntries(s.cal, events)
	out := make([]domain.DayEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.DayEntry{
			Time:     e.Time,
			FlagType: e.Category,
			DateTime: e.At.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Latest returns recent reports, newest first
func (s *Svc) Latest(ctx context.Context, limit int) ([]domain.LatestRow, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}
	rows, err := s.Repo.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LatestRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.LatestRow{
			ID:        r.ID,
			FlagDate:  r.FlagDate.Format(flagcal.DateLayout),
			FlagTime:  r.FlagTime,
			FlagType:  r.FlagType,
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

func toCategoryCounts(in []flagagg.CategoryCount) []domain.CategoryCount {
	out := make([]domain.CategoryCount, 0, len(in))
	for _, c := range in {
		out = append(out, domain.CategoryCount{FlagType: c.Category, Count: c.Count})
	}
	return out
}

// allTime is a window wide enough to contain any stored instant
func allTime() flagcal.Window {
	return flagcal.Window{
		Start: time.Time{},
		End:   time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC),
		Label: "all",
	}
}
