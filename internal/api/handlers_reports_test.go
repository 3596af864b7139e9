// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package api

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mentor/internal/models"
	"github.com/tomtom215/mentor/internal/report"
)

func TestReportUsageAggregates(t *testing.T) {
	srv, _ := newTestServer(t)

	prompts := []string{
		`{"prompt": "classify churn with labels"}`,
		`{"prompt": "cluster customer segments"}`,
		`{"prompt": "forecast sales with seasonality"}`,
	}
	for _, p := range prompts {
		postRecommend(t, srv, p)
	}

	resp, err := http.Get(srv.URL + "/api/v1/reports/usage")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	raw, _ := json.Marshal(envelope.Data)
	var usage report.UsageReport
	if err := json.Unmarshal(raw, &usage); err != nil {
		t.Fatalf("failed to decode usage report: %v", err)
	}

	if usage.TotalRequests != 3 {
		t.Errorf("expected 3 unique requests, got %d", usage.TotalRequests)
	}
	if len(usage.ByCategory) != 3 {
		t.Errorf("expected 3 categories, got %d", len(usage.ByCategory))
	}
}

func TestReportDetailedLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	postRecommend(t, srv, `{"prompt": "detect outliers in sensor data"}`)
	postRecommend(t, srv, `{"prompt": "recommend products to users"}`)

	resp, err := http.Get(srv.URL + "/api/v1/reports/detailed?limit=1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	raw, _ := json.Marshal(envelope.Data)
	var detailed report.DetailedReport
	if err := json.Unmarshal(raw, &detailed); err != nil {
		t.Fatalf("failed to decode detailed report: %v", err)
	}

	if detailed.TotalRequests != 2 {
		t.Errorf("expected 2 total requests, got %d", detailed.TotalRequests)
	}
	if len(detailed.Records) != 1 {
		t.Errorf("expected 1 record with limit=1, got %d", len(detailed.Records))
	}
}

func TestReportDetailedRejectsInvalidLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/reports/detailed?limit=0")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestReportDetailedClampsOversizedLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	postRecommend(t, srv, `{"prompt": "classify churn with labels"}`)

	// Far above MaxReportLimit; should clamp rather than error
	resp, err := http.Get(srv.URL + "/api/v1/reports/detailed?limit=100000")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestReportUsageHTML(t *testing.T) {
	srv, _ := newTestServer(t)

	postRecommend(t, srv, `{"prompt": "forecast sales with seasonality"}`)

	resp, err := http.Get(srv.URL + "/reports/usage.html")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "time_series") {
		t.Error("expected time_series category in HTML report")
	}
}
