// internal/web/router.go
//
// Route table.  Middleware order matters: security headers wrap everything,
// request-info enrichment runs before the handlers that log it.
//
//------------------------------------------------------------------------------

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Chrisserknee/cerneydesigns/internal/middleware"
	"github.com/Chrisserknee/cerneydesigns/internal/requestinfo"
)

// Routes assembles the service router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Security)
	r.Use(requestinfo.Enrich)

	r.Post("/api/design-request", h.handleSubmit)
	r.Get("/api/admin/requests", h.handleAdminList)
	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
