// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import "testing"

func TestClassifyAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm string
		want      Category
	}{
		{AlgoLogisticRegression, CategoryClassification},
		{AlgoGradientBoosting, CategoryClassification},
		{AlgoLinearRegression, CategoryRegression},
		{AlgoKMeans, CategoryClustering},
		{AlgoARIMAProphet, CategoryTimeSeries},
		{AlgoBERT, CategoryNLP},
		{AlgoCNNVision, CategoryVision},
		{AlgoAnomalyDetection, CategoryAnomaly},
		{AlgoMatrixFactorization, CategoryRecommender},
		{AlgoReinforcementLearning, CategoryReinforcement},
		{AlgoCausalInference, CategoryCausal},
		{AlgoPCA, CategoryDimReduction},
		{"Some Unknown Algorithm", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyAlgorithm(tt.algorithm); got != tt.want {
				t.Errorf("ClassifyAlgorithm(%q) = %q, want %q", tt.algorithm, got, tt.want)
			}
		})
	}
}

func TestClassifyAlgorithm_TotalOverKnowledgeBase(t *testing.T) {
	t.Parallel()

	// Every knowledge-base entry must classify into a valid category,
	// never fall through to a zero value.
	for name := range knowledgeBase {
		if got := ClassifyAlgorithm(name); !got.Valid() {
			t.Errorf("ClassifyAlgorithm(%q) = %q, not a valid category", name, got)
		}
	}
}

func TestClassifyResult(t *testing.T) {
	t.Parallel()

	if got := ClassifyResult(nil); got != CategoryOther {
		t.Errorf("ClassifyResult(nil) = %q, want %q", got, CategoryOther)
	}

	candidates := []Candidate{
		{Algorithm: AlgoARIMAProphet, Score: 1.5},
		{Algorithm: AlgoLogisticRegression, Score: 1.0},
	}
	if got := ClassifyResult(candidates); got != CategoryTimeSeries {
		t.Errorf("ClassifyResult = %q, want %q (top candidate decides)", got, CategoryTimeSeries)
	}
}

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("category %q from Categories must be valid", c)
		}
	}
	if Category("bogus").Valid() {
		t.Error("unknown category must not be valid")
	}
	if len(Categories) != 12 {
		t.Errorf("expected 12 fixed categories, got %d", len(Categories))
	}
}
