// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8600 {
		t.Errorf("Server.Port = %d, want 8600", cfg.Server.Port)
	}
	if cfg.Advisor.MaxResults != 6 {
		t.Errorf("Advisor.MaxResults = %d, want 6", cfg.Advisor.MaxResults)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging defaults = %+v", cfg.Logging)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %s, want 30s", cfg.Server.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ADVISOR_MAX_RESULTS", "3")
	t.Setenv("STORE_BACKEND", "duckdb")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Advisor.MaxResults != 3 {
		t.Errorf("Advisor.MaxResults = %d, want 3", cfg.Advisor.MaxResults)
	}
	if cfg.Store.Backend != "duckdb" {
		t.Errorf("Store.Backend = %q, want duckdb", cfg.Store.Backend)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 7777\nstore:\n  backend: badger\n  path: /tmp/mentor-test\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 from file", cfg.Server.Port)
	}
	if cfg.Store.Backend != "badger" || cfg.Store.Path != "/tmp/mentor-test" {
		t.Errorf("Store = %+v, want badger backend from file", cfg.Store)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7777\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want env override 9100", cfg.Server.Port)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad backend", "STORE_BACKEND", "redis"},
		{"bad log level", "LOGGING_LEVEL", "verbose"},
		{"badger without path", "STORE_BACKEND", "badger"},
		{"negative max results", "ADVISOR_MAX_RESULTS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s succeeded, want error", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	t.Setenv("SECURITY_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("CORSOrigins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
	if cfg.Security.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins[1] = %q, want trimmed origin", cfg.Security.CORSOrigins[1])
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"ADVISOR_MAX_RESULTS", "advisor.max_results"},
		{"STORE_BACKEND", "store.backend"},
		{"SECURITY_RATE_LIMIT_REQS", "security.rate_limit_reqs"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
