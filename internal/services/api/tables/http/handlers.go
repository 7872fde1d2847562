// Package http provides http transport for raw table browsing
package http

import (
	stdhttp "net/http"
	"strconv"

	"flagwatch/internal/modkit/httpkit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/services/api/tables/domain"
	svc "flagwatch/internal/services/api/tables/service"
)

// Register mounts table endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{table}", h.page)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /tables Tables tablesList
// @Summary List queryable table names
// @Tags Tables
// @Produce json
// @Success 200 {array} string "ok"
// @Router /tables [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /tables/{table} Tables tablesPage
// @Summary Page through raw rows of one table
// @Tags Tables
// @Produce json
// @Param table path string true "table name"
// @Param limit query int false "page size, default 100, cap 500"
// @Param offset query int false "rows to skip"
// @Success 200 {object} domain.PageResult "ok"
// @Router /tables/{table} [get]
func (h *handlers) page(r *stdhttp.Request) (any, error) {
	q := domain.PageQuery{}
	var err error
	if q.Limit, err = intQuery(r, "limit"); err != nil {
		return nil, err
	}
	if q.Offset, err = intQuery(r, "offset"); err != nil {
		return nil, err
	}

	table := httpkit.Param(r, "table")
	res, total, err := h.svc.Page(r.Context(), table, q)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = svc.DefaultLimit
	}
	if limit > svc.MaxLimit {
		limit = svc.MaxLimit
	}
	page := httpkit.Page{TotalRows: total, Limit: limit, Offset: q.Offset}
	if next := q.Offset + len(res.Rows); next < total {
		page.NextOffset = &next
	}
	return httpkit.List(res, page), nil
}

func intQuery(r *stdhttp.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.Validationf("%s must be a non-negative integer", name), name)
	}
	return n, nil
}
