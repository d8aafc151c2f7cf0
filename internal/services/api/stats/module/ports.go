package module

import (
	"context"

	statsdom "lingualog/internal/services/api/stats/domain"
	statssvc "lingualog/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStatsPort adapts the stats service to the domain port interface
type adaptStatsPort struct{ svc statssvc.Service }

// TopLanguages implements the domain ServicePort interface
func (a adaptStatsPort) TopLanguages(ctx context.Context, limit int) ([]statsdom.LanguageStat, error) {
	return a.svc.TopLanguages(ctx, limit)
}
