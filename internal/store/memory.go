// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store for development and tests. Not
// persistent across restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Exists reports whether a record with the key is present.
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok, nil
}

// Insert stores the record unless the key is already taken. The check
// and the write happen under one lock, so concurrent inserts for the
// same key admit exactly one winner.
func (s *MemoryStore) Insert(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Key]; ok {
		return ErrConflict
	}

	cp := *rec
	s.records[rec.Key] = &cp
	s.order = append(s.order, rec.Key)
	return nil
}

// Stats aggregates all stored records.
func (s *MemoryStore) Stats(ctx context.Context) (*UsageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &UsageStats{TotalRequests: int64(len(s.records))}

	byCategory := make(map[string]int64)
	byAlgorithm := make(map[string]int64)
	for _, rec := range s.records {
		byCategory[string(rec.Category)]++
		if rec.TopAlgorithm != "" {
			byAlgorithm[rec.TopAlgorithm]++
		}
		if stats.OldestAt.IsZero() || rec.CreatedAt.Before(stats.OldestAt) {
			stats.OldestAt = rec.CreatedAt
		}
		if rec.CreatedAt.After(stats.NewestAt) {
			stats.NewestAt = rec.CreatedAt
		}
	}

	stats.ByCategory = sortedCategoryCounts(byCategory)
	stats.ByAlgorithm = sortedAlgorithmCounts(byAlgorithm)
	return stats, nil
}

// Records returns stored records, newest first.
func (s *MemoryStore) Records(ctx context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if rec, ok := s.records[s.order[i]]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the stored record count, for tests.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
