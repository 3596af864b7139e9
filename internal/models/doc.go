// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

/*
Package models defines the request and response types shared across the
HTTP API surface.

The package holds the uniform response envelope (APIResponse), its
metadata and error sub-structures, and the request DTOs that handlers
bind and validate. Domain types such as recommendation candidates and
usage records live in the advisor and store packages; models only wraps
them for transport.
*/
package models
