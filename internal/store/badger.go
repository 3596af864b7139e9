// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefix for BadgerDB storage.
const recordKeyPrefix = "request:"

// BadgerStore is a BadgerDB-backed Store, durable across restarts.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a BadgerDB at path and returns a store over it.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreFromDB wraps an existing BadgerDB connection. Used by
// tests that open in-memory databases.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Exists reports whether a record with the key is present.
func (s *BadgerStore) Exists(ctx context.Context, key string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(recordKeyPrefix + key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return true, nil
}

// Insert persists the record if its key is absent. The check and the
// write share one read-write transaction, so Badger's serializable
// snapshot isolation guarantees at most one winner when concurrent
// inserts race on the same key; the losers see ErrConflict.
func (s *BadgerStore) Insert(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := []byte(recordKeyPrefix + rec.Key)
	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check record: %w", err)
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrConflict) {
		// A racing transaction wrote the key between our read and
		// commit; the record is stored, just not by us.
		return ErrConflict
	}
	return err
}

// Stats aggregates all stored records with one prefix scan.
func (s *BadgerStore) Stats(ctx context.Context) (*UsageStats, error) {
	stats := &UsageStats{}
	byCategory := make(map[string]int64)
	byAlgorithm := make(map[string]int64)

	err := s.scan(func(rec *Record) {
		stats.TotalRequests++
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
	})
	if err != nil {
		return nil, err
	}

	stats.ByCategory = sortedCategoryCounts(byCategory)
	stats.ByAlgorithm = sortedAlgorithmCounts(byAlgorithm)
	return stats, nil
}

// Records returns stored records, newest first.
func (s *BadgerStore) Records(ctx context.Context, limit int) ([]*Record, error) {
	var records []*Record
	err := s.scan(func(rec *Record) {
		records = append(records, rec)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// scan iterates every stored record under the request prefix.
func (s *BadgerStore) scan(visit func(*Record)) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec Record
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("unmarshal record: %w", err)
				}
				visit(&rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
