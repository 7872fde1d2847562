// Package service contains raw table browsing workflows
package service

import (
	"context"
	"encoding/hex"
	"time"

	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/services/api/tables/domain"
	"flagwatch/internal/services/api/tables/repo"
)

// DefaultLimit and MaxLimit bound one page of raw rows
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Service defines the tables service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the tables service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a tables service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("tables.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("tables.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns the queryable public base table names
func (s *Svc) List(ctx context.Context) ([]string, error) {
	return s.Repo.ListTables(ctx)
}

// Page fetches one page of rows from table and returns it with the total
// row count. Unknown tables are a 404, not an empty page
func (s *Svc) Page(ctx context.Context, table string, q domain.PageQuery) (domain.PageResult, int, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	known, err := s.Repo.ListTables(ctx)
	if err != nil {
		return domain.PageResult{}, 0, err
	}
	if !contains(known, table) {
		return domain.PageResult{}, 0, perr.NotFoundf("table %q not found", table)
	}

	total, err := s.Repo.Count(ctx, table)
	if err != nil {
		return domain.PageResult{}, 0, err
	}

	raw, err := s.Repo.Page(ctx, table, limit, offset)
	if err != nil {
		return domain.PageResult{}, 0, err
	}

	out := domain.PageResult{Columns: raw.Columns, Rows: make([]map[string]any, 0, len(raw.Rows))}
	for _, row := range raw.Rows {
		m := make(map[string]any, len(raw.Columns))
		for i, col := range raw.Columns {
			m[col] = wireValue(row[i])
		}
		out.Rows = append(out.Rows, m)
	}
	return out, total, nil
}

// wireValue converts driver values into JSON friendly forms: raw bytes
// become hex strings and timestamps become RFC3339
func wireValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return hex.EncodeToString(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
