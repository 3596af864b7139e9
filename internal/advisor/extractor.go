// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

// vocabulary maps each signal to the normalized phrases that assert
// it. Matching is substring-based over the normalized prompt, so a
// phrase like "cluster" also fires on "clustering".
var vocabulary = map[Signal][]string{
	SignalModalityText:  {"text", "nlp", "document", "review", "tweet", "transcript", "chat"},
	SignalModalityImage: {"image", "vision", "photo", "camera", "ocr", "object detection"},

	SignalTaskTimeSeries:     {"time series", "timeseries", "temporal", "forecast", "sequence", "monthly", "daily", "seasonality"},
	SignalTaskClassification: {"classify", "classification", "label", "spam", "churn", "fraud", "predict category", "sentiment"},
	SignalTaskRegression:     {"regress", "regression", "predict price", "predict demand", "continuous", "numeric"},
	SignalTaskClustering:     {"cluster", "clustering", "group", "segment", "unsupervised"},
	SignalTaskDimReduction:   {"dimensionality", "pca", "embed", "visualize high-dimensional"},
	SignalTaskAnomaly:        {"anomaly", "outlier", "rare", "novelty", "intrusion"},
	SignalTaskRecommender:    {"recommend", "recommender", "recommendation", "user-item", "collaborative"},
	SignalTaskReinforcement:  {"reinforcement", "policy", "agent", "reward", "bandit", "environment"},
	SignalTaskCausal:         {"causal", "treatment", "intervention", "counterfactual", "uplift"},

	SignalDataSmall:        {"few samples", "small dataset", "small labeled", "few labeled", "limited data", "under 1k", "hundreds of"},
	SignalDataLarge:        {"millions", "very large", "big data", "huge dataset"},
	SignalImbalanced:       {"imbalanced", "rare positive", "skewed", "class weights"},
	SignalInterpretability: {"interpret", "explain", "transparent", "coefficients", "explainable"},
	SignalLowLatency:       {"real-time", "real time", "low latency", "on-device", "edge"},
	SignalNonlinear:        {"nonlinear", "non-linear", "complex interactions"},
	SignalHighDim:          {"thousands of features", "high-dimensional", "sparse"},
}

// Extractor turns a free-text problem description into the set of
// task, modality, and constraint signals the rule table consumes.
type Extractor struct {
	automaton *keywordAutomaton
}

// NewExtractor builds an extractor over the built-in vocabulary.
func NewExtractor() *Extractor {
	return &Extractor{automaton: newKeywordAutomaton(vocabulary)}
}

// Extract normalizes the prompt and scans it for vocabulary terms.
// A prompt with no recognizable terms yields an empty set.
func (e *Extractor) Extract(prompt string) SignalSet {
	normalized := Normalize(prompt)
	if normalized == "" {
		return NewSignalSet()
	}
	return e.automaton.Scan(normalized)
}

// VocabularySize reports the number of phrases the extractor matches
// against, mostly for startup logging.
func (e *Extractor) VocabularySize() int {
	return e.automaton.TermCount()
}
