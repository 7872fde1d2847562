package service

import (
	"context"
	"testing"
	"time"

	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/services/api/tables/domain"
	"flagwatch/internal/services/api/tables/repo"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeTx{}) }

type fakeRepo struct {
	tables []string
	total  int
	page   repo.RawPage

	limitArg, offsetArg int
}

func (f *fakeRepo) ListTables(context.Context) ([]string, error) { return f.tables, nil }
func (f *fakeRepo) Count(context.Context, string) (int, error)   { return f.total, nil }

func (f *fakeRepo) Page(_ context.Context, _ string, limit, offset int) (repo.RawPage, error) {
	f.limitArg, f.offsetArg = limit, offset
	return f.page, nil
}

func binderFor(r repo.Repo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
}

func TestPage_UnknownTableIs404(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{tables: []string{"flag_reports"}}
	s := New(fakeTx{}, binderFor(fr))

	_, _, err := s.Page(context.Background(), "users", domain.PageQuery{})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestPage_LimitClamping(t *testing.T) {
	t.Parallel()

	fr := &fakeRepo{tables: []string{"flag_reports"}}
	s := New(fakeTx{}, binderFor(fr))

	cases := []struct{ in, want int }{
		{0, DefaultLimit},
		{9999, MaxLimit},
		{25, 25},
	}
	for _, tc := range cases {
		if _, _, err := s.Page(context.Background(), "flag_reports", domain.PageQuery{Limit: tc.in}); err != nil {
			t.Fatalf("Page(limit=%d): %v", tc.in, err)
		}
		if fr.limitArg != tc.want {
			t.Fatalf("Page(limit=%d) queried %d, want %d", tc.in, fr.limitArg, tc.want)
		}
	}
}

func TestPage_WireValues(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.June, 3, 19, 5, 0, 0, time.UTC)
	fr := &fakeRepo{
		tables: []string{"flag_reports"},
		total:  1,
		page: repo.RawPage{
			Columns: []string{"id", "payload", "created_at", "n"},
			Rows: [][]any{
				{"abc", []byte{0xde, 0xad}, at, int64(7)},
			},
		},
	}
	s := New(fakeTx{}, binderFor(fr))

	res, total, err := s.Page(context.Background(), "flag_reports", domain.PageQuery{})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d", total)
	}
	row := res.Rows[0]
	if row["payload"] != "dead" {
		t.Fatalf("bytes rendered as %v, want hex string dead", row["payload"])
	}
	if row["created_at"] != "2026-06-03T19:05:00Z" {
		t.Fatalf("timestamp rendered as %v", row["created_at"])
	}
	if row["n"] != int64(7) {
		t.Fatalf("plain value changed: %v", row["n"])
	}
}
