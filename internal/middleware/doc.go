// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking,
Prometheus metrics instrumentation, and gzip compression. All middleware
uses the standard Chi signature func(http.Handler) http.Handler so it can
be registered directly with chi.Router.Use().

Key Components:

  - RequestID: UUID-based request tracking wired into the logging context
  - Metrics: HTTP request/response instrumentation for Prometheus
  - Compression: Gzip compression for clients that accept it

Middleware Stack:

The router applies middleware in this order:

	r.Use(middleware.RequestID)  // Layer 1: Request tracking
	r.Use(middleware.Metrics)    // Layer 2: Metrics
	r.Use(middleware.Compression) // Layer 3: Gzip
	// Layer 4: CORS / rate limiting (api package)
	// Layer 5: Business logic
*/
package middleware
