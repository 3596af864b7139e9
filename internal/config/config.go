// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package config loads and validates application configuration using
// koanf v2 with layered sources: struct defaults, an optional YAML
// file, and environment variables.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, and environment variables, in that precedence
// order (env highest).
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Advisor  AdvisorConfig  `koanf:"advisor"`
	Store    StoreConfig    `koanf:"store"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout time.Duration `koanf:"timeout"`

	// Environment toggles production checks; "development" or
	// "production".
	Environment string `koanf:"environment" validate:"oneof=development production"`
}

// AdvisorConfig holds advisory engine settings.
type AdvisorConfig struct {
	// MaxResults caps ranked candidates per request; 0 disables the
	// cap.
	MaxResults int `koanf:"max_results" validate:"gte=0"`
}

// StoreConfig holds unique-request storage settings.
type StoreConfig struct {
	// Backend is one of memory, badger, or duckdb.
	Backend string `koanf:"backend" validate:"oneof=memory badger duckdb"`

	// Path locates the on-disk database for durable backends.
	Path string `koanf:"path"`
}

// APIConfig holds response shaping settings.
type APIConfig struct {
	// DefaultReportLimit is the record count for detailed reports
	// when the request does not specify one.
	DefaultReportLimit int `koanf:"default_report_limit" validate:"gte=1"`

	// MaxReportLimit bounds the requestable record count.
	MaxReportLimit int `koanf:"max_report_limit" validate:"gte=1"`

	// MaxPromptLength bounds accepted prompt size in bytes.
	MaxPromptLength int `koanf:"max_prompt_length" validate:"gte=1"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks cross-field constraints the struct tags cannot
// express. Tag-level validation runs through the validator singleton
// in Load.
func (c *Config) Validate() error {
	if c.API.MaxReportLimit < c.API.DefaultReportLimit {
		return fmt.Errorf("api.max_report_limit (%d) must be >= api.default_report_limit (%d)",
			c.API.MaxReportLimit, c.API.DefaultReportLimit)
	}
	if c.Store.Backend == "badger" && c.Store.Path == "" {
		return fmt.Errorf("store.path is required for the badger backend")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive when rate limiting is enabled")
	}
	return nil
}
