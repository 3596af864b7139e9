// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/mentor/internal/config"
	"github.com/tomtom215/mentor/internal/middleware"
)

// Router assembles the Chi route tree from a Handler and the security
// middleware configuration.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. The middleware configuration is derived
// from the security section of the application config.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health endpoints get a permissive rate limit so monitoring can
	// poll frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Core API endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.Metrics)
		r.Use(middleware.Compression)

		r.Post("/recommend", router.handler.Recommend)
		r.Get("/algorithms", router.handler.Algorithms)
		r.Get("/algorithms/{name}", router.handler.AlgorithmByName)
		r.Get("/reports/usage", router.handler.ReportUsage)
		r.Get("/reports/detailed", router.handler.ReportDetailed)
	})

	// Browser-facing HTML report
	r.With(router.chiMiddleware.RateLimit(), middleware.Compression).
		Get("/reports/usage.html", router.handler.ReportUsageHTML)

	// Prometheus metrics endpoint
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
