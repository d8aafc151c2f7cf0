// Package http provides http transport for history
package http

import (
	stdhttp "net/http"
	"strconv"

	"lingualog/internal/modkit/httpkit"
	"lingualog/internal/services/api/history/domain"
	svc "lingualog/internal/services/api/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.detail)
	httpkit.Delete(r, "/", h.clear)
}

type handlers struct{ svc svc.Service }

// MessageResponse is the payload for destructive acknowledgements
// swagger:model
type MessageResponse struct {
	Message string `json:"message" example:"History cleared successfully"`
}

// swagger:route GET /history History historyList
// @Summary Paginated history listing with optional search
// @Tags History
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search query string false "Case-insensitive match on preview or language"
// @Success 200 {object} domain.HistoryPage "ok"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.ListInput{Search: q.Get("search")}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		in.Page = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil {
		in.PerPage = v
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /history/{id} History historyDetail
// @Summary Full record with ranked confidence breakdown
// @Tags History
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.HistoryDetail "ok"
// @Failure 404 {object} phttp.ErrorEnvelope "unknown id"
// @Router /history/{id} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	return h.svc.Detail(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route DELETE /history History historyClear
// @Summary Clear all stored records and counters
// @Tags History
// @Produce json
// @Success 200 {object} MessageResponse "ok"
// @Router /history [delete]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	if err := h.svc.Purge(r.Context()); err != nil {
		return nil, err
	}
	return MessageResponse{Message: "History cleared successfully"}, nil
}
