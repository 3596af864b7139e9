// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mentor/internal/advisor"
	"github.com/tomtom215/mentor/internal/logging"
	"github.com/tomtom215/mentor/internal/metrics"
	"github.com/tomtom215/mentor/internal/models"
)

// maxBodyOverhead covers JSON framing around the prompt field when
// bounding the request body size.
const maxBodyOverhead = 1024

// Recommend handles POST /api/v1/recommend. It extracts signals from
// the prompt, matches and ranks algorithms, records the prompt if it
// has not been seen before, and returns the ranked candidates.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.cfg.API.MaxPromptLength+maxBodyOverhead))

	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if len(req.Prompt) > h.cfg.API.MaxPromptLength {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Prompt exceeds maximum length", nil)
		return
	}

	start := time.Now()
	result := h.engine.Recommend(req.Prompt)
	elapsed := time.Since(start)

	topName := ""
	if top := result.Top(); top != nil {
		topName = top.Algorithm
	}
	metrics.RecordRecommendation(topName, elapsed)

	// Storage trouble never fails the recommendation; the recorder
	// logs and counts it internally.
	isNew, _ := h.recorder.RecordIfNew(r.Context(), req.Prompt, result)

	candidates := result.Candidates
	if candidates == nil {
		candidates = []advisor.Candidate{}
	}

	note := ""
	if len(candidates) == 0 {
		note = "No task or data signals were recognized. Describe the goal " +
			"(classify, forecast, cluster, detect outliers) and the data you have."
	}

	logger := logging.Ctx(r.Context())
	logger.Debug().
		Str("category", result.Category.String()).
		Int("candidates", len(candidates)).
		Bool("new_request", isNew).
		Msg("Recommendation served")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendResponse{
			Candidates: candidates,
			Category:   result.Category,
			Signals:    result.Signals,
			NewRequest: isNew,
			Note:       note,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: elapsed.Milliseconds(),
		},
	})
}

// Algorithms handles GET /api/v1/algorithms. It returns the full
// knowledge base sorted by algorithm name.
func (h *Handler) Algorithms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"algorithms": advisor.KnowledgeBase(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// AlgorithmByName handles GET /api/v1/algorithms/{name}. The name must
// match a knowledge base entry exactly, URL-escaped.
func (h *Handler) AlgorithmByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	info, ok := advisor.LookupAlgorithm(name)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown algorithm", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   info,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
