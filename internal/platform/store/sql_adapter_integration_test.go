//go:build integration_pg
// +build integration_pg

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"flagwatch/internal/platform/logger"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func newTestStoreLogger() logger.Logger {
	// quiet, deterministic logs
	return zerolog.New(io.Discard)
}

const createReports = `
CREATE TEMP TABLE flag_reports (
	id          TEXT PRIMARY KEY,
	flag_date   DATE NOT NULL,
	flag_time   TEXT,
	flag_type   TEXT NOT NULL,
	description TEXT NOT NULL,
	email       TEXT,
	status      TEXT NOT NULL DEFAULT 'pending',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

func TestSQLAdapter_Integration_ExecQueryColumnsClose(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	// Build store + config and use openPG from openers.go
	s := &Store{Log: newTestStoreLogger()}
	cfg := Config{
		PG: PGConfig{
			URL:         dsn,
			MaxConns:    2,
			SlowQueryMs: 0,
			LogSQL:      true, // hit tracer wiring path
		},
	}
	txr, err := openPG(ctx, cfg, s)
	if err != nil {
		t.Fatalf("openPG failed: %v", err)
	}
	a, ok := txr.(*pgAdapter)
	if !ok {
		t.Fatalf("openPG did not return *pgAdapter, got %T", txr)
	}
	t.Cleanup(func() { _ = a.Close() })

	if _, err := a.Exec(ctx, createReports); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	if _, err := a.Exec(ctx, `
		INSERT INTO flag_reports (id, flag_date, flag_type, description)
		VALUES ('a', '2026-06-03', 'red',    'pier'),
		       ('b', '2026-06-03', 'yellow', 'east end')
	`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// QueryRow flow
	var flagType string
	if err := a.QueryRow(ctx, `SELECT flag_type FROM flag_reports WHERE id=$1`, "a").Scan(&flagType); err != nil {
		t.Fatalf("queryrow scan: %v", err)
	}
	if flagType != "red" {
		t.Fatalf("unexpected flag type: %q", flagType)
	}

	// Query + Columns()
	rs, err := a.Query(ctx, `SELECT id, flag_type FROM flag_reports ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rs.Close()

	cols := rs.Columns()
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "flag_type" {
		t.Fatalf("columns mismatch: %#v", cols)
	}

	var ids, types []string
	for rs.Next() {
		var id, ft string
		if err := rs.Scan(&id, &ft); err != nil {
			t.Fatalf("rows scan: %v", err)
		}
		ids = append(ids, id)
		types = append(types, ft)
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if len(ids) != 2 || types[0] != "red" || types[1] != "yellow" {
		t.Fatalf("rows mismatch ids=%v types=%v", ids, types)
	}

	// Close is safe, and calling twice should be fine through PG.Close behavior
	if err := a.Close(); err != nil {
		t.Fatalf("adapter close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("adapter close second: %v", err)
	}
}

func TestSQLAdapter_Integration_TxCommitAndRollback(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := &Store{Log: newTestStoreLogger()}
	cfg := Config{PG: PGConfig{URL: dsn, MaxConns: 2}}
	txr, err := openPG(ctx, cfg, s)
	if err != nil {
		t.Fatalf("openPG failed: %v", err)
	}
	a := txr.(*pgAdapter)
	t.Cleanup(func() { _ = a.Close() })

	if _, err := a.Exec(ctx, createReports); err != nil {
		t.Fatalf("create temp table: %v", err)
	}

	// Commit path
	if err := a.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO flag_reports (id, flag_date, flag_type, description)
			VALUES ('c', '2026-06-04', 'purple', 'jellyfish')
		`)
		return err
	}); err != nil {
		t.Fatalf("tx commit: %v", err)
	}

	// Rollback path: the insert inside must not survive
	sentinel := errors.New("abort")
	err = a.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `
			INSERT INTO flag_reports (id, flag_date, flag_type, description)
			VALUES ('d', '2026-06-05', 'green', 'calm')
		`); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("tx rollback error = %v, want sentinel", err)
	}

	var n int
	if err := a.QueryRow(ctx, `SELECT count(*) FROM flag_reports`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("row count after rollback = %d, want 1", n)
	}
}
