// Package module wires detect into the API using modkit
package module

import (
	"net/http"

	"lingualog/internal/core/langdetect"
	modkit "lingualog/internal/modkit"
	"lingualog/internal/modkit/httpkit"
	str "lingualog/internal/platform/strings"
	detecthttp "lingualog/internal/services/api/detect/http"
	detectsvc "lingualog/internal/services/api/detect/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc detectsvc.Service
}

// New constructs a detect module with the provided dependencies and options
// the history writer port is injected through modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detect"), modkit.WithPrefix("/detect")}, opts...)...)

	var ports Ports
	if p, ok := b.Ports.(Ports); ok {
		ports = p
	}

	topN := deps.Cfg.MayInt("DETECT_TOP_N", detectsvc.DefaultTopN)
	svc := detectsvc.New(langdetect.New(), ports.Writer, topN)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		detecthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
