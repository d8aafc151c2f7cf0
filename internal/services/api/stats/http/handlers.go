// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"lingualog/internal/modkit/httpkit"
	svc "lingualog/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.top)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats Stats statsTop
// @Summary Top language counters by detection count
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.LanguageStat "ok"
// @Router /stats [get]
func (h *handlers) top(r *stdhttp.Request) (any, error) {
	return h.svc.TopLanguages(r.Context(), svc.DefaultLimit)
}
