// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import "fmt"

// Backend selects the storage implementation.
type Backend string

const (
	// BackendMemory uses in-memory storage (default, not persistent).
	BackendMemory Backend = "memory"

	// BackendBadger uses BadgerDB for durable KV storage.
	BackendBadger Backend = "badger"

	// BackendDuckDB uses DuckDB for durable SQL storage and
	// in-database aggregation.
	BackendDuckDB Backend = "duckdb"
)

// Config selects and locates the storage backend.
type Config struct {
	// Backend is one of memory, badger, or duckdb.
	Backend Backend `koanf:"backend" validate:"omitempty,oneof=memory badger duckdb"`

	// Path locates the on-disk database for the durable backends.
	// Ignored by the memory backend.
	Path string `koanf:"path"`
}

// Validate checks backend selection and path requirements.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendMemory:
		return nil
	case BackendBadger:
		if c.Path == "" {
			return fmt.Errorf("badger backend requires a path")
		}
		return nil
	case BackendDuckDB:
		// DuckDB accepts an empty path as in-memory, useful for tests.
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", c.Backend)
	}
}

// Open creates the configured Store. An empty backend selects memory.
func Open(cfg *Config) (Store, error) {
	if cfg == nil {
		cfg = &Config{Backend: BackendMemory}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendBadger:
		return NewBadgerStore(cfg.Path)
	case BackendDuckDB:
		return NewDuckDBStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
