// Package http provides http transport for flags
package http

import (
	stdhttp "net/http"
	"strconv"

	"flagwatch/internal/modkit/httpkit"
	perr "flagwatch/internal/platform/errors"
	svc "flagwatch/internal/services/api/flags/service"
)

// Register mounts flag endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// last three complete months bucketed by flag type
	httpkit.Get(r, "/distribution", h.distribution)

	// all-time totals ranked by count
	httpkit.Get(r, "/distribution/all", h.distributionAll)

	// single local day listing
	httpkit.Get(r, "/day", h.day)

	// recent reports newest first
	httpkit.Get(r, "/latest", h.latest)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /flags/distribution Flags flagsDistribution
// @Summary Flag type counts for the last three calendar months
// @Tags Flags
// @Produce json
// @Success 200 {object} domain.MonthDistribution "ok"
// @Router /flags/distribution [get]
func (h *handlers) distribution(r *stdhttp.Request) (any, error) {
	return h.svc.Distribution(r.Context())
}

// swagger:route GET /flags/distribution/all Flags flagsDistributionAll
// @Summary All-time flag type totals ranked by count
// @Tags Flags
// @Produce json
// @Success 200 {array} domain.CategoryCount "ok"
// @Router /flags/distribution/all [get]
func (h *handlers) distributionAll(r *stdhttp.Request) (any, error) {
	return h.svc.DistributionAll(r.Context())
}

// swagger:route GET /flags/day Flags flagsDay
// @Summary Reports logged on a single local day
// @Tags Flags
// @Produce json
// @Param date query string false "local day in YYYY-MM-DD, omit for an empty listing"
// @Success 200 {array} domain.DayEntry "ok"
// @Router /flags/day [get]
func (h *handlers) day(r *stdhttp.Request) (any, error) {
	return h.svc.Day(r.Context(), r.URL.Query().Get("date"))
}

// swagger:route GET /flags/latest Flags flagsLatest
// @Summary Most recent reports, newest first
// @Tags Flags
// @Produce json
// @Param limit query int false "max rows, default 20, cap 100"
// @Success 200 {array} domain.LatestRow "ok"
// @Router /flags/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.Validationf("limit must be an integer"), "limit")
		}
		limit = n
	}
	return h.svc.Latest(r.Context(), limit)
}
