// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/mentor/internal/advisor"
	"github.com/tomtom215/mentor/internal/config"
	"github.com/tomtom215/mentor/internal/models"
	"github.com/tomtom215/mentor/internal/report"
	"github.com/tomtom215/mentor/internal/store"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	engine   *advisor.Engine
	recorder *store.Recorder
	reports  *report.Builder
	html     *report.HTMLRenderer
	usage    store.UsageReader
	cfg      *config.Config

	startTime time.Time
}

// NewHandler creates a Handler wired to the advisory engine, the
// unique-request recorder, and the report builder.
func NewHandler(engine *advisor.Engine, recorder *store.Recorder, usage store.UsageReader, cfg *config.Config) *Handler {
	builder := report.NewBuilder(usage)
	return &Handler{
		engine:    engine,
		recorder:  recorder,
		reports:   builder,
		html:      report.NewHTMLRenderer(),
		usage:     usage,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only when the usage store answers queries; a broken
// store means reports would fail even though recommendations still
// work.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	storeReady := true
	if _, err := h.usage.Stats(ctx); err != nil {
		storeReady = false
	}

	statusCode := http.StatusOK
	status := "ready"
	if !storeReady {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":      status,
			"store_ready": storeReady,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
