package store

import (
	"context"
	"errors"
	"testing"
)

// fakePG satisfies TxRunner and Pinger for guard tests
type fakePG struct {
	pingErr  error
	closed   bool
	closeErr error
}

func (f *fakePG) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (f *fakePG) Query(context.Context, string, ...any) (Rows, error)      { return nil, nil }
func (f *fakePG) QueryRow(context.Context, string, ...any) Row             { return nil }
func (f *fakePG) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return fn(f)
}
func (f *fakePG) Ping(context.Context) error { return f.pingErr }
func (f *fakePG) Close() error               { f.closed = true; return f.closeErr }

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Insert(context.Context, string, []string, ...any) error { return nil }
func (f *fakeCH) Ping(context.Context) error                             { return f.pingErr }
func (f *fakeCH) Close() error                                           { f.closed = true; return nil }

func TestGuard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// nil store fails
	var nilStore *Store
	if err := nilStore.Guard(ctx); err == nil {
		t.Fatalf("nil store must fail guard")
	}

	// empty store passes, there is nothing to check
	if err := (&Store{}).Guard(ctx); err != nil {
		t.Fatalf("empty store guard: %v", err)
	}

	// healthy backends pass
	s := &Store{PG: &fakePG{}, CH: &fakeCH{}}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("healthy guard: %v", err)
	}

	// each failing backend surfaces in the joined error
	s = &Store{PG: &fakePG{pingErr: errors.New("pg down")}, CH: &fakeCH{pingErr: errors.New("ch down")}}
	err := s.Guard(ctx)
	if err == nil {
		t.Fatalf("guard should fail when backends fail")
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	pg := &fakePG{}
	ch := &fakeCH{}
	s := &Store{PG: pg, CH: ch}

	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !pg.closed || !ch.closed {
		t.Fatalf("close skipped a backend: pg=%v ch=%v", pg.closed, ch.closed)
	}

	// close errors are joined, not swallowed
	pg = &fakePG{closeErr: errors.New("pg close")}
	s = &Store{PG: pg}
	if err := s.Close(context.Background()); err == nil {
		t.Fatalf("close error swallowed")
	}
}
