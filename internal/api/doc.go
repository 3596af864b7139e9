// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

/*
Package api provides the HTTP surface of the advisory service using the
Chi router.

Endpoints:

	POST /api/v1/recommend          - recommend algorithms for a prompt
	GET  /api/v1/algorithms         - list the full knowledge base
	GET  /api/v1/algorithms/{name}  - look up one algorithm by name
	GET  /api/v1/reports/usage      - aggregated usage report (JSON)
	GET  /api/v1/reports/detailed   - usage report with recent records
	GET  /api/v1/health/live        - liveness probe
	GET  /api/v1/health/ready       - readiness probe (store reachable)
	GET  /reports/usage.html        - usage report rendered as HTML
	GET  /metrics                   - Prometheus metrics

All JSON endpoints respond with the models.APIResponse envelope. CORS
and rate limiting come from the go-chi/cors and go-chi/httprate
packages; request tracking, metrics, and compression come from the
middleware package.
*/
package api
