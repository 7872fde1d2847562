package module

import (
	"context"

	"flagwatch/internal/services/api/reports/domain"
	reportssvc "flagwatch/internal/services/api/reports/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReportsPort struct{ svc reportssvc.Service }

// Submit validates and stores one flag sighting report
func (a adaptReportsPort) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResult, error) {
	return a.svc.Submit(ctx, in)
}
