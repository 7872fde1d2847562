// Package repo provides postgres access for raw table browsing
package repo

import (
	"context"
	"regexp"
	"strconv"

	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
)

// identRE is the only shape of table name we will ever interpolate.
// identifiers cannot be bind parameters, so the name is checked against
// this pattern and against the catalog before it reaches a query
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RawPage is one page of rows straight from the driver
type RawPage struct {
	Columns []string
	Rows    [][]any
}

// Repo is the minimal persistence surface for table browsing
type Repo interface {
	ListTables(ctx context.Context) ([]string, error)
	Count(ctx context.Context, table string) (int, error)
	Page(ctx context.Context, table string, limit, offset int) (RawPage, error)
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

func (r *queries) ListTables(ctx context.Context) ([]string, error) {
	const sql = `
select table_name
from information_schema.tables
where table_schema = 'public' and table_type = 'BASE TABLE'
order by table_name asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list tables")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, perr.FromPostgres(err, "scan table name")
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate tables")
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context, table string) (int, error) {
	ident, err := safeIdent(table)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.q.QueryRow(ctx, `select count(*) from `+ident).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count rows")
	}
	return n, nil
}

func (r *queries) Page(ctx context.Context, table string, limit, offset int) (RawPage, error) {
	ident, err := safeIdent(table)
	if err != nil {
		return RawPage{}, err
	}
	// newest first: the first column is the key on every browsable table
	sql := `select * from ` + ident + ` order by 1 desc limit ` +
		strconv.Itoa(limit) + ` offset ` + strconv.Itoa(offset)

	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return RawPage{}, perr.FromPostgres(err, "page rows")
	}
	defer rows.Close()

	out := RawPage{Columns: rows.Columns()}
	ncols := len(out.Columns)
	for rows.Next() {
		vals := make([]any, ncols)
		dests := make([]any, ncols)
		for i := range vals {
			dests[i] = &vals[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return RawPage{}, perr.FromPostgres(err, "scan row")
		}
		out.Rows = append(out.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return RawPage{}, perr.FromPostgres(err, "iterate rows")
	}
	return out, nil
}

// safeIdent validates and quotes a table name for interpolation
func safeIdent(table string) (string, error) {
	if !identRE.MatchString(table) {
		return "", perr.WithField(perr.Validationf("invalid table name"), "table")
	}
	return `"` + table + `"`, nil
}
