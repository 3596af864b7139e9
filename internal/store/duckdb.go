// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mentor/internal/advisor"
)

// DuckDBStore is a DuckDB-backed Store. It is the analytics-grade
// backend: aggregation happens in SQL instead of scanning records in
// process.
type DuckDBStore struct {
	conn *sql.DB
}

const duckdbSchema = `
CREATE TABLE IF NOT EXISTS unique_requests (
	key            VARCHAR PRIMARY KEY,
	id             VARCHAR NOT NULL,
	prompt         VARCHAR NOT NULL,
	category       VARCHAR NOT NULL,
	top_algorithm  VARCHAR NOT NULL,
	selections     VARCHAR NOT NULL,
	signals        VARCHAR NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
`

// NewDuckDBStore opens a DuckDB database at path and initializes the
// schema. An empty path opens an in-memory database.
func NewDuckDBStore(path string) (*DuckDBStore, error) {
	if path != "" {
		dbDir := filepath.Dir(path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dbDir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if _, err := conn.Exec(duckdbSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DuckDBStore{conn: conn}, nil
}

// Exists reports whether a record with the key is present.
func (s *DuckDBStore) Exists(ctx context.Context, key string) (bool, error) {
	var count int
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM unique_requests WHERE key = ?`, key).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return count > 0, nil
}

// Insert persists the record if its key is absent. The primary key on
// key plus ON CONFLICT DO NOTHING makes the insert first-writer-wins
// inside the database engine; a zero rows-affected result means the
// key was already taken.
func (s *DuckDBStore) Insert(ctx context.Context, rec *Record) error {
	selections, err := json.Marshal(rec.Selections)
	if err != nil {
		return fmt.Errorf("marshal selections: %w", err)
	}
	signals, err := json.Marshal(rec.Signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	result, err := s.conn.ExecContext(ctx, `
		INSERT INTO unique_requests (key, id, prompt, category, top_algorithm, selections, signals, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO NOTHING`,
		rec.Key, rec.ID, rec.Prompt, string(rec.Category), rec.TopAlgorithm,
		string(selections), string(signals), rec.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

// Stats aggregates stored records in SQL.
func (s *DuckDBStore) Stats(ctx context.Context) (*UsageStats, error) {
	stats := &UsageStats{}

	var oldest, newest sql.NullTime
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(created_at), MAX(created_at) FROM unique_requests`).
		Scan(&stats.TotalRequests, &oldest, &newest)
	if err != nil {
		return nil, fmt.Errorf("aggregate totals: %w", err)
	}
	if oldest.Valid {
		stats.OldestAt = oldest.Time
	}
	if newest.Valid {
		stats.NewestAt = newest.Time
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT category, COUNT(*) AS n
		FROM unique_requests
		GROUP BY category
		ORDER BY n DESC, category ASC`)
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row CategoryCount
		var category string
		if err := rows.Scan(&category, &row.Count); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		row.Category = advisor.Category(category)
		stats.ByCategory = append(stats.ByCategory, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category rows: %w", err)
	}

	algRows, err := s.conn.QueryContext(ctx, `
		SELECT top_algorithm, COUNT(*) AS n
		FROM unique_requests
		WHERE top_algorithm <> ''
		GROUP BY top_algorithm
		ORDER BY n DESC, top_algorithm ASC`)
	if err != nil {
		return nil, fmt.Errorf("aggregate algorithms: %w", err)
	}
	defer algRows.Close()

	for algRows.Next() {
		var row AlgorithmCount
		if err := algRows.Scan(&row.Algorithm, &row.Count); err != nil {
			return nil, fmt.Errorf("scan algorithm row: %w", err)
		}
		stats.ByAlgorithm = append(stats.ByAlgorithm, row)
	}
	if err := algRows.Err(); err != nil {
		return nil, fmt.Errorf("algorithm rows: %w", err)
	}

	return stats, nil
}

// Records returns stored records, newest first.
func (s *DuckDBStore) Records(ctx context.Context, limit int) ([]*Record, error) {
	query := `
		SELECT key, id, prompt, category, top_algorithm, selections, signals, created_at
		FROM unique_requests
		ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		var category, selections, signals string
		var createdAt time.Time
		if err := rows.Scan(&rec.Key, &rec.ID, &rec.Prompt, &category,
			&rec.TopAlgorithm, &selections, &signals, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Category = advisor.Category(category)
		rec.CreatedAt = createdAt
		if err := json.Unmarshal([]byte(selections), &rec.Selections); err != nil {
			return nil, fmt.Errorf("unmarshal selections: %w", err)
		}
		if err := json.Unmarshal([]byte(signals), &rec.Signals); err != nil {
			return nil, fmt.Errorf("unmarshal signals: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record rows: %w", err)
	}
	return records, nil
}

// Close closes the database connection.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}
