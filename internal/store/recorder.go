// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/mentor/internal/advisor"
	"github.com/tomtom215/mentor/internal/metrics"
)

// Recorder persists unique requests on a best-effort basis. Storage
// failures are logged and counted but never surfaced to the caller:
// a recommendation must not fail because analytics storage is down.
type Recorder struct {
	store   Store
	backend Backend
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[struct{}]
	now     func() time.Time
}

// NewRecorder wraps a store with best-effort recording semantics.
// The circuit breaker stops hammering a failing backend; while open,
// recording is skipped entirely.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecorder(s Store, backend Backend, logger zerolog.Logger) *Recorder {
	componentLogger := logger.With().Str("component", "recorder").Logger()

	settings := gobreaker.Settings{
		Name:    "unique-request-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Store circuit breaker state changed")
		},
	}

	return &Recorder{
		store:   s,
		backend: backend,
		logger:  componentLogger,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		now:     time.Now,
	}
}

// RecordIfNew stores the prompt's result if this normalized prompt
// has not been seen before. Empty results are never persisted. The
// returned bool reports whether a new record was written; the error
// is always nil today but kept in the signature so callers handle a
// future strict mode.
func (r *Recorder) RecordIfNew(ctx context.Context, prompt string, result *advisor.Result) (bool, error) {
	if result == nil || result.Empty() {
		return false, nil
	}

	key := DedupKey(prompt)

	inserted := false
	_, err := r.breaker.Execute(func() (struct{}, error) {
		exists, err := r.store.Exists(ctx, key)
		if err != nil {
			metrics.RecordStoreError(string(r.backend), "exists")
			return struct{}{}, err
		}
		if exists {
			return struct{}{}, nil
		}

		rec := r.buildRecord(key, prompt, result)
		if err := r.store.Insert(ctx, rec); err != nil {
			if errors.Is(err, ErrConflict) {
				// Lost the race to a concurrent request with the
				// same prompt; the record exists, which is all the
				// invariant asks for.
				metrics.StoreConflictsTotal.Inc()
				return struct{}{}, nil
			}
			metrics.RecordStoreError(string(r.backend), "insert")
			return struct{}{}, err
		}

		inserted = true
		return struct{}{}, nil
	})

	if err != nil {
		r.logger.Error().
			Err(err).
			Str("key", key).
			Msg("Failed to record unique request")
		return false, nil
	}

	if inserted {
		metrics.RecordUniqueRequest(string(result.Category))
		r.logger.Debug().
			Str("key", key).
			Str("category", result.Category.String()).
			Msg("Unique request recorded")
	}
	return inserted, nil
}

func (r *Recorder) buildRecord(key, prompt string, result *advisor.Result) *Record {
	selections := make([]Selection, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		selections = append(selections, Selection{Algorithm: c.Algorithm, Score: c.Score})
	}

	return &Record{
		ID:           uuid.NewString(),
		Key:          key,
		Prompt:       advisor.Normalize(prompt),
		Category:     result.Category,
		TopAlgorithm: result.Top().Algorithm,
		Selections:   selections,
		Signals:      result.Signals,
		CreatedAt:    r.now().UTC(),
	}
}
