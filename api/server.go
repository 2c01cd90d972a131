/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the funnel frontend

ROUTE GROUPS:
  /api/estimate   Estimation pipeline
  /api/admin/*    Configuration administration

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public; admin
  identity is taken from the X-Admin-User header for audit purposes only.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-User"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/estimate", h.Estimate)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/narrative-codes", h.GetNarrativeCodes)
			r.Put("/narrative-codes", h.PutNarrativeCodes)

			r.Get("/calculator-settings", h.GetCalculatorSettings)
			r.Post("/calculator-settings", h.PostCalculatorSettings)
			r.Put("/calculator-settings", h.PutCalculatorSettings)

			r.Post("/creditor-rates/import", h.ImportCreditorRates)

			r.Get("/audit", h.ListAudit)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
