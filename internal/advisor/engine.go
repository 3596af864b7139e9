// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages.
// Persistence and metrics live behind the service layer so the engine
// stays a pure function of its inputs.

// Engine runs the full advisory pipeline: signal extraction, rule
// matching, ranking, and category classification. All state is
// immutable after construction, so it is safe for concurrent use.
type Engine struct {
	config    *Config
	logger    zerolog.Logger
	extractor *Extractor
	matcher   *Matcher
}

// NewEngine builds the engine, validating the rule table and config
// up front. A rule-table error here means the binary ships a broken
// table and must not start.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	matcher, err := NewMatcher(ruleTable, cfg.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("rule table validation: %w", err)
	}

	extractor := NewExtractor()

	componentLogger := logger.With().Str("component", "advisor").Logger()
	componentLogger.Info().
		Int("rules", len(ruleTable)).
		Int("vocabulary_terms", extractor.VocabularySize()).
		Int("algorithms", len(knowledgeBase)).
		Int("max_results", cfg.MaxResults).
		Msg("Advisory engine initialized")

	return &Engine{
		config:    cfg,
		logger:    componentLogger,
		extractor: extractor,
		matcher:   matcher,
	}, nil
}

// Recommend runs the pipeline over a raw prompt. A prompt with no
// recognizable signals returns an empty result rather than an error;
// the caller decides whether that is a 200 with guidance or skipped
// persistence.
func (e *Engine) Recommend(prompt string) *Result {
	signals := e.extractor.Extract(prompt)
	if signals.Empty() {
		e.logger.Debug().Msg("No signals extracted from prompt")
		return &Result{Signals: nil, Category: CategoryOther}
	}

	contributions := e.matcher.Match(signals)
	candidates := e.matcher.Rank(contributions)
	category := ClassifyResult(candidates)

	e.logger.Debug().
		Strs("signals", signalNames(signals)).
		Int("contributions", len(contributions)).
		Int("candidates", len(candidates)).
		Str("category", category.String()).
		Msg("Recommendation computed")

	return &Result{
		Candidates: candidates,
		Category:   category,
		Signals:    signals.Signals(),
	}
}

// MaxResults reports the configured candidate cap.
func (e *Engine) MaxResults() int {
	return e.config.MaxResults
}

func signalNames(set SignalSet) []string {
	signals := set.Signals()
	names := make([]string, len(signals))
	for i, s := range signals {
		names[i] = string(s)
	}
	return names
}
