// Package api serves named-format pack and unpack operations over HTTP.
//
// Formats come from a schema.Registry loaded at startup; the layout of
// every format is therefore fixed before the first request arrives.
// Payload bytes travel base64-encoded inside JSON envelopes.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/brokkr/pkg/schema"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(registry *schema.Registry, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(registry, config, metrics)

	r := Router(server)

	addr := fmt.Sprintf(":%d", config.Port)
	fmt.Printf("Starting brokkr codec server on %s\n", addr)
	fmt.Printf("Metrics available at: http://localhost:%d/metrics\n", config.Port)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}

// Router assembles the chi router for a server. Split out from
// StartServer so tests can drive the full middleware stack in process.
func Router(server *Server) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(server.config.APIKey))

		m := server.metrics

		// Health check
		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Format operations
		r.Get("/formats", m.InstrumentHandler("GET", "/api/v1/formats", server.handleListFormats))
		r.Get("/formats/{name}", m.InstrumentHandler("GET", "/api/v1/formats/{name}", server.handleGetFormat))
		r.Post("/formats/{name}/pack", m.InstrumentHandler("POST", "/api/v1/formats/{name}/pack", server.handlePack))
		r.Post("/formats/{name}/unpack", m.InstrumentHandler("POST", "/api/v1/formats/{name}/unpack", server.handleUnpack))
	})

	return r
}
