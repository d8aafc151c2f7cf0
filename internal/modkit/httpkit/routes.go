package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts a subrouter under /api, applies any per-scope middleware,
// then invokes mount to register routes on that scoped router
//
// example:
//
//	httpkit.MountAPI(r, httpkit.CommonStack(), func(api httpkit.Router) {
//	  detect.MountRoutes(api)
//	})
func MountAPI(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api", mw, mount)
}

// MountUnder mounts a subrouter at prefix and applies per-scope middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix = "/" + strings.Trim(prefix, "/")
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
