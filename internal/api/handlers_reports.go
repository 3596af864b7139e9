// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mentor/internal/logging"
	"github.com/tomtom215/mentor/internal/models"
)

// ReportUsage handles GET /api/v1/reports/usage. It returns aggregate
// counts of unique requests by category and by top algorithm.
func (h *Handler) ReportUsage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	usage, err := h.reports.Usage(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to build usage report", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   usage,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ReportDetailed handles GET /api/v1/reports/detailed. The limit query
// parameter bounds the number of recent records, clamped to the
// configured maximum.
func (h *Handler) ReportDetailed(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", h.cfg.API.DefaultReportLimit)
	if limit < 1 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Limit must be at least 1", nil)
		return
	}
	if limit > h.cfg.API.MaxReportLimit {
		limit = h.cfg.API.MaxReportLimit
	}

	start := time.Now()

	detailed, err := h.reports.Detailed(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to build detailed report", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   detailed,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ReportUsageHTML handles GET /reports/usage.html. It renders the usage
// report as a standalone HTML page for browsers.
func (h *Handler) ReportUsageHTML(w http.ResponseWriter, r *http.Request) {
	page, err := h.html.RenderUsage(r.Context(), h.reports)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Failed to render usage report")
		http.Error(w, "failed to render usage report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Failed to write usage report")
	}
}
