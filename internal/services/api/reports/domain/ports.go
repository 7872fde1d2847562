package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (SubmitResult, error)
}
