package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/field-sync/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	metrics.Register()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withGZip)
		r.With(h.withPayloadHash).Post("/api/forms/{formType}", h.submitForm)
		r.Get("/api/applications", h.listApplications)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
