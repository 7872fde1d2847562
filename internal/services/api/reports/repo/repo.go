// Package repo provides postgres persistence for report submissions
package repo

import (
	"context"
	"time"

	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	str "flagwatch/internal/platform/strings"
)

// StatusPending is the initial review state for every new report
const StatusPending = "pending"

// Report is a stored flag report row
type Report struct {
	ID          string
	FlagDate    time.Time
	FlagTime    string
	FlagType    string
	Description string
	Email       string
	Status      string
	CreatedAt   time.Time
}

// Repo is the minimal persistence surface for reports
type Repo interface {
	Insert(ctx context.Context, rep Report) error
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

func (r *queries) Insert(ctx context.Context, rep Report) error {
	const sql = `
insert into flag_reports (id, flag_date, flag_time, flag_type, description, email, status, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.q.Exec(ctx, sql,
		rep.ID,
		rep.FlagDate,
		str.SQLNull(rep.FlagTime),
		rep.FlagType,
		rep.Description,
		str.SQLNull(rep.Email),
		rep.Status,
		rep.CreatedAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert flag report")
	}
	return nil
}
