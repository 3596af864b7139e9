// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal)
	RecordRecommendation("K-Means", 2*time.Millisecond)
	after := testutil.ToFloat64(RecommendationsTotal)

	if after != before+1 {
		t.Errorf("recommendations_total = %v, want %v", after, before+1)
	}
	if got := testutil.ToFloat64(AlgorithmTopSelections.WithLabelValues("K-Means")); got < 1 {
		t.Errorf("algorithm_top_selections_total{K-Means} = %v, want >= 1", got)
	}
}

func TestRecordRecommendation_EmptyResult(t *testing.T) {
	before := testutil.ToFloat64(EmptyRecommendationsTotal)
	RecordRecommendation("", time.Millisecond)
	after := testutil.ToFloat64(EmptyRecommendationsTotal)

	if after != before+1 {
		t.Errorf("recommendations_empty_total = %v, want %v", after, before+1)
	}
}

func TestRecordUniqueRequest(t *testing.T) {
	before := testutil.ToFloat64(UniqueRequestsTotal.WithLabelValues("clustering"))
	RecordUniqueRequest("clustering")
	after := testutil.ToFloat64(UniqueRequestsTotal.WithLabelValues("clustering"))

	if after != before+1 {
		t.Errorf("unique_requests_total{clustering} = %v, want %v", after, before+1)
	}
}

func TestRecordStoreError(t *testing.T) {
	before := testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("badger", "insert"))
	RecordStoreError("badger", "insert")
	after := testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("badger", "insert"))

	if after != before+1 {
		t.Errorf("store_errors_total{badger,insert} = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("api_active_requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}
