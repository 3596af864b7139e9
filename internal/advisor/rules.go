// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import "fmt"

// Rule contributes a weighted vote for one algorithm when its signal
// is present. Weights may be negative to penalize algorithms that fit
// poorly under a constraint.
//
// Rule order is load-bearing twice over: candidates that tie on total
// score are ranked by the order of their first contributing rule, and
// a candidate's rationale concatenates reasons in rule order.
type Rule struct {
	Signal    Signal
	Algorithm string
	Weight    float64
	Reason    string
}

// ruleTable is the full scoring table, grouped by signal. Task
// signals route to algorithm families; constraint signals shape the
// scores within them.
var ruleTable = []Rule{
	// Modalities
	{SignalModalityText, AlgoNaiveBayes, 1.5, "Text baseline with bag-of-words"},
	{SignalModalityText, AlgoLogisticRegression, 1.0, "Strong linear baseline for text"},
	{SignalModalityText, AlgoBERT, 2.0, "Transformers excel for text tasks"},

	{SignalModalityImage, AlgoCNNVision, 2.0, "CNNs for image classification"},
	{SignalModalityImage, AlgoObjectDetection, 0.2, "Possible need for localization/detection"},

	{SignalTaskTimeSeries, AlgoARIMAProphet, 1.5, "Time series with trend/seasonality"},
	{SignalTaskTimeSeries, AlgoLSTMTemporalCNN, 1.5, "Sequence models for complex dynamics"},

	// Task intent
	{SignalTaskClassification, AlgoLogisticRegression, 1.5, "Classification baseline"},
	{SignalTaskClassification, AlgoRandomForestClf, 1.5, "Nonlinear tabular classifier"},
	{SignalTaskClassification, AlgoSVM, 1.0, "Margin-based classifier"},
	{SignalTaskClassification, AlgoGradientBoosting, 1.5, "Strong tabular performance"},

	{SignalTaskRegression, AlgoLinearRegression, 1.5, "Regression baseline"},
	{SignalTaskRegression, AlgoRandomForestReg, 1.5, "Nonlinear tabular regression"},
	{SignalTaskRegression, AlgoGradientBoosting, 1.5, "Strong tabular regression"},

	{SignalTaskClustering, AlgoKMeans, 1.5, "Fast partitioning clustering"},
	{SignalTaskClustering, AlgoDBSCAN, 1.0, "Density-based clustering and outliers"},

	{SignalTaskDimReduction, AlgoPCA, 1.5, "Linear dimensionality reduction"},
	{SignalTaskDimReduction, AlgoTSNEUMAP, 1.0, "Nonlinear embeddings for visualization"},

	{SignalTaskAnomaly, AlgoAnomalyDetection, 2.0, "Unsupervised anomaly detection"},

	{SignalTaskRecommender, AlgoMatrixFactorization, 2.0, "User-item recommendations"},

	{SignalTaskReinforcement, AlgoReinforcementLearning, 2.0, "Sequential decision-making"},

	{SignalTaskCausal, AlgoCausalInference, 2.0, "Estimate causal effects"},

	// Constraint shaping
	{SignalDataSmall, AlgoLogisticRegression, 0.7, "Small-data friendly"},
	{SignalDataSmall, AlgoLinearRegression, 0.7, "Small-data friendly"},
	{SignalDataSmall, AlgoSVM, 0.4, "Works on medium-small datasets"},
	{SignalDataSmall, AlgoNaiveBayes, 0.6, "Very data-efficient for text"},

	{SignalDataLarge, AlgoGradientBoosting, 0.6, "Scales well with optimizations"},
	{SignalDataLarge, AlgoRandomForestClf, 0.4, "Parallelizable ensembles"},
	{SignalDataLarge, AlgoRandomForestReg, 0.4, "Parallelizable ensembles"},

	{SignalImbalanced, AlgoGradientBoosting, 0.5, "Built-in class weighting options"},
	{SignalImbalanced, AlgoRandomForestClf, 0.5, "Supports class weighting"},
	{SignalImbalanced, AlgoLogisticRegression, 0.3, "Class weights and calibration"},

	{SignalInterpretability, AlgoLinearRegression, 0.8, "Interpretable coefficients"},
	{SignalInterpretability, AlgoLogisticRegression, 0.8, "Interpretable odds ratios"},

	{SignalLowLatency, AlgoLogisticRegression, 0.5, "Very fast inference"},
	{SignalLowLatency, AlgoLinearRegression, 0.5, "Very fast inference"},
	{SignalLowLatency, AlgoKNN, -0.6, "Slow inference due to neighbor search"},
	{SignalLowLatency, AlgoBERT, -0.5, "Transformers can be heavy"},

	{SignalNonlinear, AlgoRandomForestClf, 0.5, "Captures nonlinearities"},
	{SignalNonlinear, AlgoRandomForestReg, 0.5, "Captures nonlinearities"},
	{SignalNonlinear, AlgoGradientBoosting, 0.6, "Captures complex interactions"},

	{SignalHighDim, AlgoLinearRegression, 0.3, "With regularization and feature selection"},
	{SignalHighDim, AlgoLogisticRegression, 0.3, "With regularization"},
	{SignalHighDim, AlgoPCA, 0.8, "Reduce dimensionality"},
	{SignalHighDim, AlgoSVM, 0.3, "Effective in high dimensions"},
}

// validateRules checks the table's referential integrity: every rule
// must name a known algorithm and carry a nonzero weight and reason.
// Called once at engine construction; a failure is a programming
// error, not a runtime condition.
func validateRules(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("rule table is empty")
	}
	for i, r := range rules {
		if _, ok := knowledgeBase[r.Algorithm]; !ok {
			return fmt.Errorf("rule %d references unknown algorithm %q", i, r.Algorithm)
		}
		if r.Signal == "" {
			return fmt.Errorf("rule %d for %q has no signal", i, r.Algorithm)
		}
		if r.Weight == 0 {
			return fmt.Errorf("rule %d for %q has zero weight", i, r.Algorithm)
		}
		if r.Reason == "" {
			return fmt.Errorf("rule %d for %q has no reason", i, r.Algorithm)
		}
	}
	return nil
}
