// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package models

import "time"

// APIResponse is the uniform envelope for all JSON endpoints.
//
// Every response carries a status ("success" or "error"), the payload in
// Data, and response metadata. Error is populated only on failures.
//
// Example success:
//
//	{
//	  "status": "success",
//	  "data": { ... },
//	  "metadata": { "timestamp": "2026-08-26T12:00:00Z", "query_time_ms": 2 }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS reports how long the server spent producing the payload;
// for recommendations this is the full extract-match-rank pipeline, for
// reports it is the store aggregation time.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - STORAGE_ERROR: usage store failure
//   - NOT_FOUND: resource does not exist
//   - METHOD_NOT_ALLOWED: unsupported HTTP method
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
