package service

import (
	"context"
	"testing"
	"time"

	"flagwatch/internal/core/flagagg"
	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/services/api/flags/repo"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeTx{}) }

type fakeRepo struct {
	events []flagagg.Event
	latest []repo.LatestRow

	sinceArg    time.Time
	betweenArgs [2]time.Time
	latestLimit int
}

func (f *fakeRepo) EventsSince(_ context.Context, since time.Time) ([]flagagg.Event, error) {
	f.sinceArg = since
	return f.events, nil
}

func (f *fakeRepo) EventsBetween(_ context.Context, start, end time.Time) ([]flagagg.Event, error) {
	f.betweenArgs = [2]time.Time{start, end}
	var out []flagagg.Event
	for _, ev := range f.events {
		if !ev.At.Before(start) && ev.At.Before(end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeRepo) Latest(_ context.Context, limit int) ([]repo.LatestRow, error) {
	f.latestLimit = limit
	return f.latest, nil
}

func binderFor(r repo.Repo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
}

func testCal(t *testing.T) *flagcal.Calendar {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	fixed := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)
	return flagcal.NewAt(loc, func() time.Time { return fixed })
}

func localUTC(t *testing.T, y int, m time.Month, d, hh int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return time.Date(y, m, d, hh, 0, 0, 0, loc).UTC()
}

func TestDistribution_MonthKeysMostRecentFirst(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{events: []flagagg.Event{
		{At: localUTC(t, 2026, time.May, 3, 10), Category: "red"},
		{At: localUTC(t, 2026, time.May, 4, 10), Category: "red"},
		{At: localUTC(t, 2026, time.April, 10, 10), Category: "yellow"},
		{At: localUTC(t, 2026, time.March, 2, 10), Category: "green"},
	}}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	out, err := s.Distribution(context.Background())
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if len(out) != DistributionMonths {
		t.Fatalf("got %d buckets, want %d", len(out), DistributionMonths)
	}
	if out["month1"].Name != "May 2026" {
		t.Fatalf("month1 = %q, want May 2026", out["month1"].Name)
	}
	if out["month3"].Name != "March 2026" {
		t.Fatalf("month3 = %q, want March 2026", out["month3"].Name)
	}
	if len(out["month1"].Data) != 1 || out["month1"].Data[0].Count != 2 {
		t.Fatalf("month1 data = %+v, want red=2", out["month1"].Data)
	}

	// the query floor must be the oldest window start, not the zero time
	wantFloor := localUTC(t, 2026, time.March, 1, 0)
	if !fr.sinceArg.Equal(wantFloor) {
		t.Fatalf("floor = %v, want %v", fr.sinceArg, wantFloor)
	}
}

func TestDistributionAll_RanksTotals(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{events: []flagagg.Event{
		{At: localUTC(t, 2020, time.January, 1, 0), Category: "yellow"},
		{At: localUTC(t, 2026, time.May, 3, 10), Category: "red"},
		{At: localUTC(t, 2026, time.May, 4, 10), Category: "red"},
	}}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	out, err := s.DistributionAll(context.Background())
	if err != nil {
		t.Fatalf("DistributionAll: %v", err)
	}
	if !fr.sinceArg.IsZero() {
		t.Fatalf("all-time query should have no floor, got %v", fr.sinceArg)
	}
	if len(out) != 2 || out[0].FlagType != "red" || out[0].Count != 2 {
		t.Fatalf("out = %+v", out)
	}
}

func TestDay_MissingAndMalformedDate(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{events: []flagagg.Event{
		{At: localUTC(t, 2026, time.June, 3, 14), Category: "red"},
	}}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	// no date, no listing, no error
	out, err := s.Day(context.Background(), "")
	if err != nil {
		t.Fatalf("Day(\"\"): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Day(\"\") = %+v, want empty", out)
	}

	_, err = s.Day(context.Background(), "garbage")
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
}

func TestDay_WindowAndRendering(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{events: []flagagg.Event{
		{At: localUTC(t, 2026, time.June, 3, 14), Category: "red"},
		{At: localUTC(t, 2026, time.June, 3, 9), Category: "yellow"},
		{At: localUTC(t, 2026, time.June, 4, 9), Category: "green"}, // next day
	}}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	out, err := s.Day(context.Background(), "2026-06-03")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].Time != "09:00" || out[1].Time != "14:00" {
		t.Fatalf("times = %q, %q", out[0].Time, out[1].Time)
	}

	wantStart := localUTC(t, 2026, time.June, 3, 0)
	wantEnd := localUTC(t, 2026, time.June, 4, 0)
	if !fr.betweenArgs[0].Equal(wantStart) || !fr.betweenArgs[1].Equal(wantEnd) {
		t.Fatalf("queried [%v, %v), want [%v, %v)", fr.betweenArgs[0], fr.betweenArgs[1], wantStart, wantEnd)
	}
}

func TestLatest_LimitClamping(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	cases := []struct{ in, want int }{
		{0, DefaultLatestLimit},
		{-5, DefaultLatestLimit},
		{7, 7},
		{1000, MaxLatestLimit},
	}
	for _, tc := range cases {
		if _, err := s.Latest(context.Background(), tc.in); err != nil {
			t.Fatalf("Latest(%d): %v", tc.in, err)
		}
		if fr.latestLimit != tc.want {
			t.Fatalf("Latest(%d) queried limit %d, want %d", tc.in, fr.latestLimit, tc.want)
		}
	}
}

func TestLatest_Rendering(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, time.June, 3, 19, 5, 0, 0, time.UTC)
	fr := &fakeRepo{latest: []repo.LatestRow{{
		ID:        "abc",
		FlagDate:  time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
		FlagTime:  "14:05",
		FlagType:  "red",
		CreatedAt: created,
	}}}
	s := New(fakeTx{}, binderFor(fr), testCal(t))

	out, err := s.Latest(context.Background(), 1)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	row := out[0]
	if row.FlagDate != "2026-06-03" {
		t.Fatalf("flag date = %q", row.FlagDate)
	}
	if row.CreatedAt != "2026-06-03T19:05:00Z" {
		t.Fatalf("created at = %q", row.CreatedAt)
	}
}
