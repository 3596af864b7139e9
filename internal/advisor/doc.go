// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

// Package advisor implements the algorithm advisory pipeline: it turns
// a free-text problem description into a ranked list of AI/ML
// algorithm recommendations with a usage category.
//
// # Pipeline
//
// A prompt flows through four stages:
//
//   - Extraction: the normalized prompt is scanned with an
//     Aho-Corasick automaton over the signal vocabulary, producing a
//     SignalSet of task, modality, and constraint signals.
//   - Matching: the ordered rule table emits one weighted
//     contribution per rule whose signal is present. Weights may be
//     negative to penalize poor fits.
//   - Ranking: contributions are merged per algorithm, candidates
//     with non-positive totals are dropped, and the rest are sorted
//     by score with ties broken by first-contribution rule order.
//   - Classification: the top candidate's knowledge-base entry
//     decides the result's category.
//
// # Design Principles
//
//   - Deterministic: the same prompt always yields the same ranked
//     output, byte for byte.
//   - Immutable: vocabulary, rule table, and knowledge base are fixed
//     at construction, so the engine needs no locks.
//   - Self-contained: persistence and metrics live behind the service
//     layer; the engine is a pure function of its inputs.
//
// An empty result is a valid outcome for prompts with no recognizable
// signals, never an error.
package advisor
