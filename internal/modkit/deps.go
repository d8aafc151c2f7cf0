package modkit

import (
	"lingualog/internal/modkit/repokit"
	"lingualog/internal/platform/config"
	"lingualog/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
