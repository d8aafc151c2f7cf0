package domain

import "context"

// ServicePort defines the service contract for stats
type ServicePort interface {
	TopLanguages(ctx context.Context, limit int) ([]LanguageStat, error)
}
