// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package models

import "github.com/tomtom215/mentor/internal/advisor"

// RecommendRequest is the body of POST /api/v1/recommend.
//
// Prompt length is additionally bounded by the configured maximum; the
// validate tag only covers the structural minimum.
type RecommendRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3"`
}

// RecommendResponse is the Data payload for a recommendation.
//
// NewRequest reports whether this prompt was recorded as a unique
// request. It is false for repeats of a previously seen prompt and
// false when nothing was persisted (empty result or storage trouble).
type RecommendResponse struct {
	Candidates []advisor.Candidate `json:"candidates"`
	Category   advisor.Category    `json:"category"`
	Signals    []advisor.Signal    `json:"signals,omitempty"`
	NewRequest bool                `json:"new_request"`

	// Note carries guidance when no algorithm matched the prompt.
	Note string `json:"note,omitempty"`
}

// ReportQuery binds the query parameters of the detailed report
// endpoint. Limit bounds are enforced against the configured maximum
// by the handler.
type ReportQuery struct {
	Limit int `validate:"gte=1"`
}
