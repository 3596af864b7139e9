// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package main is the entry point for the Mentor server application.
//
// Mentor is a self-hosted advisory service that recommends classical
// machine learning algorithms for free-text problem descriptions and
// tracks which kinds of problems its users ask about.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from config file and environment (Koanf v2)
//  2. Logging: structured zerolog output per the logging config
//  3. Advisory engine: signal vocabulary, rule table, knowledge base
//  4. Usage store: memory, BadgerDB, or DuckDB backend
//  5. HTTP server: REST API, HTML report, Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (SERVER_PORT, STORE_BACKEND, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the usage store
//
// # Example Usage
//
// In-memory store (development):
//
//	./mentor
//
// Durable DuckDB store:
//
//	export STORE_BACKEND=duckdb
//	export STORE_PATH=/var/lib/mentor/usage.db
//	./mentor
//
// BadgerDB store:
//
//	export STORE_BACKEND=badger
//	export STORE_PATH=/var/lib/mentor/badger
//	./mentor
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/mentor/internal/advisor"
	"github.com/tomtom215/mentor/internal/api"
	"github.com/tomtom215/mentor/internal/config"
	"github.com/tomtom215/mentor/internal/logging"
	"github.com/tomtom215/mentor/internal/store"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("store_backend", cfg.Store.Backend).
		Msg("Starting Mentor")

	engine, err := advisor.NewEngine(&advisor.Config{MaxResults: cfg.Advisor.MaxResults}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize advisory engine")
	}

	backend := store.Backend(cfg.Store.Backend)
	usageStore, err := store.Open(&store.Config{
		Backend: backend,
		Path:    cfg.Store.Path,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open usage store")
	}
	defer func() {
		if err := usageStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing usage store")
		}
	}()
	logging.Info().Str("backend", cfg.Store.Backend).Msg("Usage store opened")

	recorder := store.NewRecorder(usageStore, backend, logging.Logger())
	handler := api.NewHandler(engine, recorder, usageStore, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Serve in the background so the main goroutine can wait on signals
	serveErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serveErr <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("HTTP server stopped")
	}
}
