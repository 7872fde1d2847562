package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context) ([]string, error)
	Page(ctx context.Context, table string, q PageQuery) (PageResult, int, error)
}
