package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/platform/store"
	"flagwatch/internal/services/api/reports/domain"
	"flagwatch/internal/services/api/reports/repo"

	"github.com/rs/zerolog"
)

// fakeTx satisfies repokit.TxRunner without a database
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeTx{}) }

// fakeRepo records the inserted report
type fakeRepo struct {
	inserted *repo.Report
	err      error
}

func (f *fakeRepo) Insert(_ context.Context, rep repo.Report) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = &rep
	return nil
}

// fakeMirror records clickhouse writes and can fail on demand
type fakeMirror struct {
	calls int
	table string
	err   error
}

func (f *fakeMirror) Insert(_ context.Context, table string, _ []string, _ ...any) error {
	f.calls++
	f.table = table
	return f.err
}

func (f *fakeMirror) Close() error { return nil }

func binderFor(r repo.Repo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
}

func testCal(t *testing.T) *flagcal.Calendar {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	// fixed local noon June 3 2026
	fixed := time.Date(2026, time.June, 3, 12, 0, 0, 0, loc)
	return flagcal.NewAt(loc, func() time.Time { return fixed })
}

func newSvc(t *testing.T, r repo.Repo, mirror *fakeMirror) *Svc {
	t.Helper()
	var m store.Clickhouse
	if mirror != nil {
		m = mirror
	}
	return New(fakeTx{}, binderFor(r), testCal(t), m, zerolog.New(io.Discard))
}

func TestSubmit_OK(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	fm := &fakeMirror{}
	s := newSvc(t, fr, fm)

	res, err := s.Submit(context.Background(), domain.SubmitInput{
		Date:        "2026-06-03", // today is fine
		Time:        "14:05",
		FlagType:    "  Double RED ",
		Description: "posted at the county pier",
		Email:       "visitor@example.com",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.ID == "" || res.Status != repo.StatusPending {
		t.Fatalf("result = %+v", res)
	}
	if fr.inserted == nil {
		t.Fatalf("nothing inserted")
	}
	if fr.inserted.FlagType != "double red" {
		t.Fatalf("flag type stored as %q, want canonical double red", fr.inserted.FlagType)
	}
	if fm.calls != 1 || fm.table != MirrorTable {
		t.Fatalf("mirror calls=%d table=%q", fm.calls, fm.table)
	}
}

func TestSubmit_FutureDate(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeRepo{}, nil)
	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Date:        "2026-06-04", // tomorrow
		FlagType:    "red",
		Description: "x",
	})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
}

func TestSubmit_InvalidDate(t *testing.T) {
	t.Parallel()

	s := newSvc(t, &fakeRepo{}, nil)
	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Date:        "06/03/2026",
		FlagType:    "red",
		Description: "x",
	})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "date" {
		t.Fatalf("err = %v, want validation error on date", err)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	s := newSvc(t, fr, nil)

	cases := []struct {
		name  string
		in    domain.SubmitInput
		field string
	}{
		{
			name:  "blank time",
			in:    domain.SubmitInput{Date: "2026-06-01", Time: "   ", FlagType: "red", Description: "x"},
			field: "time",
		},
		{
			name:  "blank flag type",
			in:    domain.SubmitInput{Date: "2026-06-01", Time: "14:05", FlagType: "   ", Description: "x"},
			field: "flag_type",
		},
		{
			name:  "blank description",
			in:    domain.SubmitInput{Date: "2026-06-01", Time: "14:05", FlagType: "red", Description: "  "},
			field: "description",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Submit(context.Background(), tc.in)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v, want validation", perr.CodeOf(err))
			}
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("expected platform error, got %T", err)
			}
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
			if fr.inserted != nil {
				t.Fatalf("rejected submission was persisted: %+v", fr.inserted)
			}
		})
	}
}

func TestSubmit_MirrorFailureIsSoft(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{}
	fm := &fakeMirror{err: errors.New("ch down")}
	s := newSvc(t, fr, fm)

	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Date:        "2026-06-01",
		Time:        "14:05",
		FlagType:    "red",
		Description: "x",
	})
	if err != nil {
		t.Fatalf("mirror failure must not fail the submission: %v", err)
	}
	if fr.inserted == nil {
		t.Fatalf("pg insert skipped")
	}
}

func TestSubmit_InsertFailurePropagates(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{err: perr.DBf("boom")}
	fm := &fakeMirror{}
	s := newSvc(t, fr, fm)

	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Date:        "2026-06-01",
		Time:        "14:05",
		FlagType:    "red",
		Description: "x",
	})
	if perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("code = %v, want db", perr.CodeOf(err))
	}
	if fm.calls != 0 {
		t.Fatalf("mirror must not fire when the insert failed")
	}
}
