// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/mentor/internal/advisor"
)

func testRecord(key string) *Record {
	return &Record{
		ID:           "00000000-0000-0000-0000-000000000001",
		Key:          key,
		Prompt:       "cluster customers",
		Category:     advisor.CategoryClustering,
		TopAlgorithm: "K-Means",
		Selections:   []Selection{{Algorithm: "K-Means", Score: 1.5}},
		Signals:      []advisor.Signal{advisor.SignalTaskClustering},
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemoryStore_InsertAndExists(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	exists, err := s.Exists(ctx, "k1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("key must not exist before insert")
	}

	if err := s.Insert(ctx, testRecord("k1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	exists, err = s.Exists(ctx, "k1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("key must exist after insert")
	}
}

func TestMemoryStore_InsertConflict(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Insert(ctx, testRecord("k1")); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if err := s.Insert(ctx, testRecord("k1")); !errors.Is(err, ErrConflict) {
		t.Errorf("second Insert = %v, want ErrConflict", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemoryStore_ConcurrentInsertSingleWinner(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	var winners atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Insert(ctx, testRecord("contended"))
			switch {
			case err == nil:
				winners.Add(1)
			case errors.Is(err, ErrConflict):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if winners.Load() != 1 {
		t.Errorf("winners = %d, want exactly 1", winners.Load())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemoryStore_Stats(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	recA := testRecord("a")
	recB := testRecord("b")
	recB.Category = advisor.CategoryClassification
	recB.TopAlgorithm = "Logistic Regression"
	recC := testRecord("c")

	for _, rec := range []*Record{recA, recB, recC} {
		if err := s.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", stats.TotalRequests)
	}
	if len(stats.ByCategory) != 2 {
		t.Fatalf("ByCategory rows = %d, want 2", len(stats.ByCategory))
	}
	// Counts sort descending, clustering (2) before classification (1).
	if stats.ByCategory[0].Category != advisor.CategoryClustering || stats.ByCategory[0].Count != 2 {
		t.Errorf("top category row = %+v, want clustering/2", stats.ByCategory[0])
	}
	if len(stats.ByAlgorithm) != 2 {
		t.Errorf("ByAlgorithm rows = %d, want 2", len(stats.ByAlgorithm))
	}
}

func TestMemoryStore_Records(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, key := range []string{"a", "b", "c"} {
		rec := testRecord(key)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := s.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	records, err := s.Records(ctx, 2)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].Key != "c" || records[1].Key != "b" {
		t.Errorf("order = %s,%s, want c,b (newest first)", records[0].Key, records[1].Key)
	}

	all, err := s.Records(ctx, 0)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unlimited len = %d, want 3", len(all))
	}
}

func TestDedupKey(t *testing.T) {
	t.Parallel()

	// Normalization-equal prompts share a key.
	a := DedupKey("Cluster customers")
	b := DedupKey("  cluster   CUSTOMERS ")
	if a != b {
		t.Errorf("keys differ for normalization-equal prompts: %s vs %s", a, b)
	}

	if DedupKey("cluster customers") == DedupKey("classify customers") {
		t.Error("distinct prompts must not share a key")
	}

	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}
