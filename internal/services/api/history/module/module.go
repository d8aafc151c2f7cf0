// Package module wires history into the API using modkit
package module

import (
	"net/http"

	modkit "lingualog/internal/modkit"
	"lingualog/internal/modkit/httpkit"
	str "lingualog/internal/platform/strings"
	historyhttp "lingualog/internal/services/api/history/http"
	historyrepo "lingualog/internal/services/api/history/repo"
	historysvc "lingualog/internal/services/api/history/service"
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

	svc historysvc.Service
}

// New constructs a history module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history"), modkit.WithPrefix("/history")}, opts...)...)

	repo := historyrepo.NewPG()
	svc := historysvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Writer: svc, Reader: svc, Purger: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		historyhttp.Register(r, m.svc)
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
