package module

import (
	historydom "lingualog/internal/services/api/history/domain"
)

// Ports are the cross module dependencies detect consumes
// Writer may be nil, detect then serves classifications without persistence
type Ports struct {
	Writer historydom.WriterPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
