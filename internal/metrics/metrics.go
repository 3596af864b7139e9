// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests served",
		},
	)

	EmptyRecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_empty_total",
			Help: "Total number of requests where no signal was recognized",
		},
	)

	AlgorithmTopSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "algorithm_top_selections_total",
			Help: "Times each algorithm ranked first in a recommendation",
		},
		[]string{"algorithm"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of the advisory pipeline per request",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	// Unique Request Store Metrics
	UniqueRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unique_requests_total",
			Help: "Unique prompts stored, by classified category",
		},
		[]string{"category"},
	)

	StoreConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_conflicts_total",
			Help: "Inserts skipped because the prompt was already stored",
		},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Storage operation failures",
		},
		[]string{"backend", "operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordRecommendation tracks one served recommendation and its top
// selection. An empty topAlgorithm counts the request as unrecognized.
func RecordRecommendation(topAlgorithm string, duration time.Duration) {
	RecommendationsTotal.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if topAlgorithm == "" {
		EmptyRecommendationsTotal.Inc()
		return
	}
	AlgorithmTopSelections.WithLabelValues(topAlgorithm).Inc()
}

// RecordUniqueRequest tracks a newly stored unique prompt.
func RecordUniqueRequest(category string) {
	UniqueRequestsTotal.WithLabelValues(category).Inc()
}

// RecordStoreError tracks a storage failure by backend and operation.
func RecordStoreError(backend, operation string) {
	StoreErrorsTotal.WithLabelValues(backend, operation).Inc()
}

// RecordAPIRequest tracks one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
