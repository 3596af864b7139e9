// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package store persists unique advisory requests for usage
// analytics. A request is unique by its normalized prompt; repeats of
// the same prompt are recorded at most once regardless of concurrency
// or process restarts (for the durable backends).
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/tomtom215/mentor/internal/advisor"
)

// ErrConflict is returned by Insert when a record with the same key
// already exists. Callers treat it as a lost race, not a failure.
var ErrConflict = errors.New("record already exists")

// Selection is one ranked algorithm within a stored record.
type Selection struct {
	Algorithm string  `json:"algorithm"`
	Score     float64 `json:"score"`
}

// Record is one unique advisory request.
type Record struct {
	// ID is a server-assigned UUID, unique per record.
	ID string `json:"id"`

	// Key is the dedup key: hex SHA-256 of the normalized prompt.
	Key string `json:"key"`

	// Prompt is the normalized prompt text.
	Prompt string `json:"prompt"`

	// Category is the classified usage category of the result.
	Category advisor.Category `json:"category"`

	// TopAlgorithm is the highest-ranked candidate's name.
	TopAlgorithm string `json:"top_algorithm"`

	// Selections holds the full ranked candidate list, name and
	// score only.
	Selections []Selection `json:"selections"`

	// Signals lists the extracted signals for the prompt.
	Signals []advisor.Signal `json:"signals,omitempty"`

	// CreatedAt is the server-side insertion time, UTC.
	CreatedAt time.Time `json:"created_at"`
}

// DedupKey derives the storage key for a prompt: hex SHA-256 over the
// normalized form. Hashing keeps keys fixed-length for the KV backend
// and avoids logging raw prompt text.
func DedupKey(prompt string) string {
	sum := sha256.Sum256([]byte(advisor.Normalize(prompt)))
	return hex.EncodeToString(sum[:])
}

// UniqueStore is the dedup capability: existence check and
// first-writer-wins insert. Implementations must guarantee that
// concurrent Inserts for the same key admit exactly one winner; the
// losers receive ErrConflict.
type UniqueStore interface {
	// Exists reports whether a record with the key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Insert persists the record if its key is absent, returning
	// ErrConflict when another record with the same key was stored
	// first.
	Insert(ctx context.Context, rec *Record) error
}

// CategoryCount is one row of the per-category usage aggregate.
type CategoryCount struct {
	Category advisor.Category `json:"category"`
	Count    int64            `json:"count"`
}

// AlgorithmCount is one row of the per-algorithm usage aggregate.
type AlgorithmCount struct {
	Algorithm string `json:"algorithm"`
	Count     int64  `json:"count"`
}

// UsageStats aggregates stored records for reporting.
type UsageStats struct {
	TotalRequests int64            `json:"total_requests"`
	ByCategory    []CategoryCount  `json:"by_category"`
	ByAlgorithm   []AlgorithmCount `json:"by_algorithm"`
	OldestAt      time.Time        `json:"oldest_at,omitempty"`
	NewestAt      time.Time        `json:"newest_at,omitempty"`
}

// UsageReader exposes read-side aggregation over stored records.
type UsageReader interface {
	// Stats aggregates all stored records.
	Stats(ctx context.Context) (*UsageStats, error)

	// Records returns stored records, newest first, capped at limit.
	// A non-positive limit returns all records.
	Records(ctx context.Context, limit int) ([]*Record, error)
}

// Store is the full storage surface: dedup writes, usage reads, and
// lifecycle.
type Store interface {
	UniqueStore
	UsageReader
	io.Closer
}
