package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Distribution(ctx context.Context) (MonthDistribution, error)
	DistributionAll(ctx context.Context) ([]CategoryCount, error)
	Day(ctx context.Context, date string) ([]DayEntry, error)
	Latest(ctx context.Context, limit int) ([]LatestRow, error)
}
