package module

import (
	historydom "lingualog/internal/services/api/history/domain"
)

// Ports exposes the history service surfaces other modules may depend on
// the detect module injects Writer to persist classifications
type Ports struct {
	Writer historydom.WriterPort
	Reader historydom.ReaderPort
	Purger historydom.PurgePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
