// Package repo provides postgres access for flags
package repo

import (
	"context"
	"time"

	"flagwatch/internal/core/flagagg"
	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
)

// Repo is the minimal persistence surface for flags
type Repo interface {
	EventsSince(ctx context.Context, since time.Time) ([]flagagg.Event, error)
	EventsBetween(ctx context.Context, start, end time.Time) ([]flagagg.Event, error)
	Latest(ctx context.Context, limit int) ([]LatestRow, error)
}

// LatestRow is one recent report as stored
type LatestRow struct {
	ID        string
	FlagDate  time.Time
	FlagTime  string
	FlagType  string
	CreatedAt time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) EventsSince(ctx context.Context, since time.Time) ([]flagagg.Event, error) {
	const sql = `
select created_at, flag_type
from flag_reports
where $1::timestamptz is null or created_at >= $1
order by created_at asc
`
	var arg any
	if !since.IsZero() {
		arg = since
	}
	return r.scanEvents(ctx, sql, arg)
}

func (r *queries) EventsBetween(ctx context.Context, start, end time.Time) ([]flagagg.Event, error) {
	const sql = `
select created_at, flag_type
from flag_reports
where created_at >= $1 and created_at < $2
order by created_at asc
`
	return r.scanEvents(ctx, sql, start, end)
}

func (r *queries) scanEvents(ctx context.Context, sql string, args ...any) ([]flagagg.Event, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "query flag events")
	}
	defer rows.Close()
	var out []flagagg.Event
	for rows.Next() {
		var ev flagagg.Event
		if err := rows.Scan(&ev.At, &ev.Category); err != nil {
			return nil, perr.FromPostgres(err, "scan flag event")
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate flag events")
	}
	return out, nil
}

func (r *queries) Latest(ctx context.Context, limit int) ([]LatestRow, error) {
	const sql = `
select id, flag_date, coalesce(flag_time, ''), flag_type, created_at
from flag_reports
order by created_at desc, id desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "query latest reports")
	}
	defer rows.Close()
	var out []LatestRow
	for rows.Next() {
		var rr LatestRow
		if err := rows.Scan(&rr.ID, &rr.FlagDate, &rr.FlagTime, &rr.FlagType, &rr.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan latest report")
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate latest reports")
	}
	return out, nil
}
