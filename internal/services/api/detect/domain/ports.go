package domain

import "context"

// ServicePort defines the service contract for detect
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectResponse, error)
}
