// Package api provides the HTTP API for the application
package api

import (
	"lingualog/internal/platform/config"
	"lingualog/internal/platform/logger"
	phttp "lingualog/internal/platform/net/http"
	"lingualog/internal/platform/store"

	"lingualog/internal/modkit"
	"lingualog/internal/modkit/httpkit"
	"lingualog/internal/modkit/module"
	"lingualog/internal/modkit/swaggerkit"

	detectmod "lingualog/internal/services/api/detect/module"
	historymod "lingualog/internal/services/api/history/module"
	metamod "lingualog/internal/services/api/meta/module"
	statsmod "lingualog/internal/services/api/stats/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the history module first and extract its writer port
	history := historymod.New(deps)
	writer := module.MustPortsOf[historymod.Ports](history).Writer

	// Inject that writer into the detect module so classifications persist
	detect := detectmod.New(
		deps,
		modkit.WithPorts(detectmod.Ports{
			Writer: writer,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		statsmod.New(deps),
		history,
		detect,
	}

	// flat /api namespace with a common middleware stack
	httpkit.MountAPI(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
