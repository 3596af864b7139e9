// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import (
	"sort"
	"strings"
)

// Signal is a normalized boolean fact extracted from prompt text.
// Task signals describe the modeling objective, modality signals the
// data type, and constraint signals the operational requirements.
type Signal string

const (
	// Task signals. A prompt may imply more than one task.
	SignalTaskClassification Signal = "task_classification"
	SignalTaskRegression     Signal = "task_regression"
	SignalTaskClustering     Signal = "task_clustering"
	SignalTaskTimeSeries     Signal = "task_time_series"
	SignalTaskDimReduction   Signal = "task_dim_reduction"
	SignalTaskAnomaly        Signal = "task_anomaly"
	SignalTaskRecommender    Signal = "task_recommender"
	SignalTaskReinforcement  Signal = "task_reinforcement"
	SignalTaskCausal         Signal = "task_causal"

	// Modality signals.
	SignalModalityText  Signal = "modality_text"
	SignalModalityImage Signal = "modality_image"

	// Constraint signals.
	SignalDataSmall        Signal = "data_small"
	SignalDataLarge        Signal = "data_large"
	SignalImbalanced       Signal = "imbalanced"
	SignalInterpretability Signal = "interpretability"
	SignalLowLatency       Signal = "low_latency"
	SignalNonlinear        Signal = "nonlinear"
	SignalHighDim          Signal = "high_dim"
)

// TaskSignals lists all task-type signals in a fixed order.
var TaskSignals = []Signal{
	SignalTaskClassification,
	SignalTaskRegression,
	SignalTaskClustering,
	SignalTaskTimeSeries,
	SignalTaskDimReduction,
	SignalTaskAnomaly,
	SignalTaskRecommender,
	SignalTaskReinforcement,
	SignalTaskCausal,
}

// SignalSet is the set of signals extracted from one prompt.
// It is derived once per prompt and treated as immutable afterwards.
type SignalSet map[Signal]bool

// NewSignalSet returns an empty signal set.
func NewSignalSet() SignalSet {
	return make(SignalSet)
}

// Has reports whether the signal is present.
func (s SignalSet) Has(sig Signal) bool {
	return s[sig]
}

// Set marks the signal as present.
func (s SignalSet) Set(sig Signal) {
	s[sig] = true
}

// Empty reports whether no signal is set.
func (s SignalSet) Empty() bool {
	return len(s) == 0
}

// Signals returns the present signals in lexical order, for logging
// and deterministic test output.
func (s SignalSet) Signals() []Signal {
	out := make([]Signal, 0, len(s))
	for sig, ok := range s {
		if ok {
			out = append(out, sig)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Category is a coarse problem-type label used for request
// classification and usage reporting.
type Category string

const (
	CategoryClassification Category = "classification"
	CategoryRegression     Category = "regression"
	CategoryClustering     Category = "clustering"
	CategoryTimeSeries     Category = "time_series"
	CategoryNLP            Category = "nlp"
	CategoryVision         Category = "vision"
	CategoryAnomaly        Category = "anomaly_detection"
	CategoryRecommender    Category = "recommender"
	CategoryReinforcement  Category = "reinforcement_learning"
	CategoryCausal         Category = "causal_inference"
	CategoryDimReduction   Category = "dimensionality_reduction"
	CategoryOther          Category = "other"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryClassification,
	CategoryRegression,
	CategoryClustering,
	CategoryTimeSeries,
	CategoryNLP,
	CategoryVision,
	CategoryAnomaly,
	CategoryRecommender,
	CategoryReinforcement,
	CategoryCausal,
	CategoryDimReduction,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// Contribution is a single rule's nomination of an algorithm, before
// merging and ranking. RuleIndex preserves rule-table order for the
// stable tie-break.
type Contribution struct {
	RuleIndex int
	Algorithm string
	Score     float64
	Reason    string
	Category  Category
}

// Candidate is a scored algorithm recommendation after merging
// contributions from all firing rules.
type Candidate struct {
	// Algorithm is the recommended algorithm family name.
	Algorithm string `json:"algorithm"`

	// Score is the summed score across all rules that nominated
	// the algorithm. Always positive in a Result.
	Score float64 `json:"score"`

	// Rationale concatenates the explanation fragments of the
	// contributing rules in rule-table order.
	Rationale string `json:"rationale"`

	// WhenToUse summarizes the situations the algorithm suits.
	WhenToUse string `json:"when_to_use"`

	// Pros and Cons come from the static knowledge base.
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`

	// TypicalSteps outlines how to apply the algorithm.
	TypicalSteps []string `json:"typical_steps"`

	// Resources links further reading.
	Resources []string `json:"resources"`
}

// Result is a ranked recommendation outcome for one prompt.
// An empty result (no rule matched) is a valid outcome, not an error.
type Result struct {
	// Candidates is ordered by descending score; ties keep the
	// order of first contribution in the rule table. Algorithm
	// names are unique within one result.
	Candidates []Candidate `json:"candidates"`

	// Category is derived from the top-ranked candidate, or
	// CategoryOther when the result is empty.
	Category Category `json:"category"`

	// Signals records the extracted signal set for telemetry.
	Signals []Signal `json:"signals,omitempty"`
}

// Empty reports whether no algorithm was recommended.
func (r *Result) Empty() bool {
	return len(r.Candidates) == 0
}

// Top returns the highest-ranked candidate, or nil for an empty result.
func (r *Result) Top() *Candidate {
	if len(r.Candidates) == 0 {
		return nil
	}
	return &r.Candidates[0]
}

// Normalize returns the canonical form of a prompt: lowercased with
// surrounding whitespace trimmed and internal whitespace collapsed to
// single spaces. The normalized form is used both for keyword matching
// and as the dedup key for unique-request storage.
func Normalize(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}
