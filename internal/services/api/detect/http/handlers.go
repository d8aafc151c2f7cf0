// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"lingualog/internal/modkit/httpkit"
	pnet "lingualog/internal/platform/net"
	"lingualog/internal/services/api/detect/domain"
	svc "lingualog/internal/services/api/detect/service"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /detect Detect detectText
// @Summary Classify the language of free-form text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text to classify"
// @Success 200 {object} domain.DetectResponse "ok"
// @Failure 400 {object} phttp.ErrorEnvelope "too short or undetectable"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	in.UserIP = pnet.ClientIP(r)
	in.UserAgent = pnet.UserAgent(r)
	return h.svc.Detect(r.Context(), in)
}
