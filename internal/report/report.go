// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package report builds usage reports over the unique-request store:
// JSON aggregates for the API and a rendered HTML summary page.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/mentor/internal/store"
)

// UsageReport is the JSON usage summary served by the API.
type UsageReport struct {
	GeneratedAt   time.Time              `json:"generated_at"`
	TotalRequests int64                  `json:"total_requests"`
	ByCategory    []store.CategoryCount  `json:"by_category"`
	ByAlgorithm   []store.AlgorithmCount `json:"by_algorithm"`
	OldestAt      *time.Time             `json:"oldest_at,omitempty"`
	NewestAt      *time.Time             `json:"newest_at,omitempty"`
}

// DetailedReport extends the usage summary with recent records.
type DetailedReport struct {
	UsageReport
	Records []*store.Record `json:"records"`
}

// Builder assembles reports from a usage reader.
type Builder struct {
	reader store.UsageReader
	now    func() time.Time
}

// NewBuilder creates a report builder over the given reader.
func NewBuilder(reader store.UsageReader) *Builder {
	return &Builder{reader: reader, now: time.Now}
}

// Usage builds the aggregate usage report.
func (b *Builder) Usage(ctx context.Context) (*UsageReport, error) {
	stats, err := b.reader.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("usage stats: %w", err)
	}
	return b.fromStats(stats), nil
}

// Detailed builds the usage report plus up to limit recent records.
func (b *Builder) Detailed(ctx context.Context, limit int) (*DetailedReport, error) {
	stats, err := b.reader.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("usage stats: %w", err)
	}
	records, err := b.reader.Records(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("usage records: %w", err)
	}
	if records == nil {
		records = []*store.Record{}
	}
	return &DetailedReport{UsageReport: *b.fromStats(stats), Records: records}, nil
}

func (b *Builder) fromStats(stats *store.UsageStats) *UsageReport {
	r := &UsageReport{
		GeneratedAt:   b.now().UTC(),
		TotalRequests: stats.TotalRequests,
		ByCategory:    stats.ByCategory,
		ByAlgorithm:   stats.ByAlgorithm,
	}
	if r.ByCategory == nil {
		r.ByCategory = []store.CategoryCount{}
	}
	if r.ByAlgorithm == nil {
		r.ByAlgorithm = []store.AlgorithmCount{}
	}
	if !stats.OldestAt.IsZero() {
		oldest := stats.OldestAt
		r.OldestAt = &oldest
	}
	if !stats.NewestAt.IsZero() {
		newest := stats.NewestAt
		r.NewestAt = &newest
	}
	return r
}
