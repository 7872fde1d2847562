package module

import (
	"context"

	"flagwatch/internal/services/api/tables/domain"
	tablessvc "flagwatch/internal/services/api/tables/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTablesPort struct{ svc tablessvc.Service }

// List returns the queryable public base table names
func (a adaptTablesPort) List(ctx context.Context) ([]string, error) {
	return a.svc.List(ctx)
}

// Page fetches one page of rows from a table with its total count
func (a adaptTablesPort) Page(ctx context.Context, table string, q domain.PageQuery) (domain.PageResult, int, error) {
	return a.svc.Page(ctx, table, q)
}
