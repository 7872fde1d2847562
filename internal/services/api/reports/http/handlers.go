// Package http provides http transport for report submission
package http

import (
	stdhttp "net/http"

	"flagwatch/internal/modkit/httpkit"
	"flagwatch/internal/services/api/reports/domain"
	svc "flagwatch/internal/services/api/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reports Reports reportsSubmit
// @Summary Submit a flag sighting report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Report"
// @Success 201 {object} domain.SubmitResult "created"
// @Router /reports [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	res, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(res), nil
}
