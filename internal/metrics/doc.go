// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package metrics exposes Prometheus instrumentation for the advisory
// pipeline, the unique-request store, and the HTTP API. All collectors
// are registered with the default registry via promauto and served on
// /metrics.
package metrics
