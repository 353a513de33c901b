/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend
  5. noCache:    Agreement pages must never be cached

ROUTE GROUPS:
  /health                   Platform health check, do not remove
  /api/agreements           Cached agreement list
  /api/agreements/{id}      Agreement view model (GET), actions (POST)
  /api/scenarios/*          Demo scenarios

SECURITY NOTE:
  The caller's encrypted auth token is passed through to the backend
  via the x-encrypted-auth header; this service performs no
  authentication of its own.

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
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "x-encrypted-auth", "x-base-url"},
		AllowCredentials: true,
	}))

	// Health-check route. Used by platform to check if service is running.
	r.Get("/health", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/agreements", func(r chi.Router) {
			r.Use(noCacheHeaders)
			r.Get("/", h.ListAgreements)
			r.Get("/{agreementId}", h.GetAgreement)
			r.Post("/{agreementId}", h.PostAgreementAction)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetStore)
		})
	})

	return r
}

// noCacheHeaders stops intermediaries and browsers caching agreement
// pages; a cached offered page could keep masking an agreement that
// has since been accepted.
func noCacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		w.Header().Set("Surrogate-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
