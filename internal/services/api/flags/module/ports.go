package module

import (
	"context"

	"flagwatch/internal/services/api/flags/domain"
	flagssvc "flagwatch/internal/services/api/flags/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptFlagsPort struct{ svc flagssvc.Service }

// Distribution returns flag type counts over the last complete months
func (a adaptFlagsPort) Distribution(ctx context.Context) (domain.MonthDistribution, error) {
	return a.svc.Distribution(ctx)
}

// DistributionAll returns all-time flag type totals ranked by count
func (a adaptFlagsPort) DistributionAll(ctx context.Context) ([]domain.CategoryCount, error) {
	return a.svc.DistributionAll(ctx)
}

// Day returns the reports logged on one local calendar day
func (a adaptFlagsPort) Day(ctx context.Context, date string) ([]domain.DayEntry, error) {
	return a.svc.Day(ctx, date)
}

// Latest returns recent reports newest first
func (a adaptFlagsPort) Latest(ctx context.Context, limit int) ([]domain.LatestRow, error) {
	return a.svc.Latest(ctx, limit)
}
