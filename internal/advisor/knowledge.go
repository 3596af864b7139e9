// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import "sort"

// AlgorithmInfo is the static knowledge-base entry for one algorithm
// family: what it is for, its trade-offs, and how to get started.
type AlgorithmInfo struct {
	Name         string   `json:"name"`
	Task         string   `json:"task"`
	Category     Category `json:"category"`
	WhenToUse    string   `json:"when_to_use"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	TypicalSteps []string `json:"typical_steps"`
	Resources    []string `json:"resources"`
}

// Algorithm names referenced by the rule table. Kept as constants so a
// typo in a rule fails table validation at startup instead of
// producing an unknown candidate at request time.
const (
	AlgoLinearRegression     = "Linear Regression"
	AlgoRandomForestReg      = "Random Forest (Regression)"
	AlgoLogisticRegression   = "Logistic Regression"
	AlgoRandomForestClf      = "Random Forest (Classification)"
	AlgoGradientBoosting     = "Gradient Boosting (XGBoost/LightGBM/CatBoost)"
	AlgoSVM                  = "SVM (Classification)"
	AlgoKNN                  = "KNN"
	AlgoNaiveBayes           = "Naive Bayes"
	AlgoKMeans               = "K-Means"
	AlgoDBSCAN               = "DBSCAN"
	AlgoPCA                  = "PCA"
	AlgoTSNEUMAP             = "t-SNE/UMAP"
	AlgoARIMAProphet         = "ARIMA/Prophet"
	AlgoLSTMTemporalCNN      = "LSTM/Temporal CNN"
	AlgoBERT                 = "BERT/RoBERTa (Text)"
	AlgoCNNVision            = "CNN (Vision)"
	AlgoObjectDetection      = "Object Detection (Faster R-CNN/YOLO)"
	AlgoAnomalyDetection     = "Anomaly Detection (Isolation Forest/One-Class SVM)"
	AlgoMatrixFactorization  = "Matrix Factorization/Two-Tower (Recsys)"
	AlgoReinforcementLearning = "Reinforcement Learning (DQN/PPO)"
	AlgoCausalInference      = "Causal Inference (ATE/DoWhy)"
)

// knowledgeBase holds the static per-algorithm metadata. Loaded once
// at process start and read-only thereafter.
var knowledgeBase = map[string]AlgorithmInfo{
	AlgoLinearRegression: {
		Name:      AlgoLinearRegression,
		Task:      "regression",
		Category:  CategoryRegression,
		WhenToUse: "Predict continuous numeric targets; baseline for tabular data.",
		Pros:      []string{"Fast and simple", "Interpretable coefficients", "Works well with few features"},
		Cons:      []string{"Assumes linearity", "Sensitive to outliers and multicollinearity"},
		TypicalSteps: []string{
			"Split data into train/validation",
			"Scale features (optional); add polynomial/interaction terms if needed",
			"Fit model and check residuals",
			"Evaluate with RMSE/MAE and baseline",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/linear_model.html"},
	},
	AlgoRandomForestReg: {
		Name:      AlgoRandomForestReg,
		Task:      "regression",
		Category:  CategoryRegression,
		WhenToUse: "Nonlinear tabular regression; robust baseline with limited tuning.",
		Pros:      []string{"Handles nonlinearities", "Insensitive to scaling", "Good with defaults"},
		Cons:      []string{"Less interpretable", "Larger models"},
		TypicalSteps: []string{
			"Train with default hyperparameters",
			"Tune n_estimators, max_depth",
			"Evaluate with cross-validation",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/ensemble.html#forests-of-randomized-trees"},
	},
	AlgoLogisticRegression: {
		Name:      AlgoLogisticRegression,
		Task:      "classification",
		Category:  CategoryClassification,
		WhenToUse: "Binary/one-vs-rest classification; strong, interpretable baseline.",
		Pros:      []string{"Fast", "Probabilistic outputs", "Interpretable"},
		Cons:      []string{"Linear decision boundary", "Feature engineering often needed"},
		TypicalSteps: []string{
			"Standardize features",
			"Handle class imbalance (class_weight or resampling)",
			"Tune regularization (C)",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/linear_model.html#logistic-regression"},
	},
	AlgoRandomForestClf: {
		Name:      AlgoRandomForestClf,
		Task:      "classification",
		Category:  CategoryClassification,
		WhenToUse: "Nonlinear tabular classification; strong default baseline.",
		Pros:      []string{"Handles mixed features", "Robust", "Works out-of-the-box"},
		Cons:      []string{"Less interpretable", "May be heavy for low-latency"},
		TypicalSteps: []string{
			"Train defaults",
			"Tune depth/trees",
			"Check feature importance cautiously",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/ensemble.html#forest"},
	},
	AlgoGradientBoosting: {
		Name:      AlgoGradientBoosting,
		Task:      "classification_regression",
		Category:  CategoryClassification,
		WhenToUse: "Top performance on many tabular problems with careful tuning.",
		Pros:      []string{"State-of-the-art on tabular", "Handles nonlinearity", "Feature importance"},
		Cons:      []string{"Tuning sensitive", "May overfit without regularization"},
		TypicalSteps: []string{
			"Start with small learning rate",
			"Tune n_estimators, depth, subsampling",
			"Use early stopping",
		},
		Resources: []string{
			"https://xgboost.readthedocs.io/",
			"https://lightgbm.readthedocs.io/",
			"https://catboost.ai/",
		},
	},
	AlgoSVM: {
		Name:      AlgoSVM,
		Task:      "classification",
		Category:  CategoryClassification,
		WhenToUse: "Medium-scale datasets with clear margin; kernels capture nonlinearity.",
		Pros:      []string{"Effective in high dimensions", "Robust to outliers with margins"},
		Cons:      []string{"Scaling needed", "Slow on very large datasets"},
		TypicalSteps: []string{
			"Scale features",
			"Try linear then RBF kernel",
			"Tune C and gamma",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/svm.html"},
	},
	AlgoKNN: {
		Name:      AlgoKNN,
		Task:      "classification_regression",
		Category:  CategoryClassification,
		WhenToUse: "Simple nonparametric baseline for small, low-dimensional datasets.",
		Pros:      []string{"Simple", "No training time"},
		Cons:      []string{"Slow at inference", "Sensitive to scaling and dimension"},
		TypicalSteps: []string{
			"Scale features",
			"Tune k via CV",
			"Use KDTree/BallTree if needed",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/neighbors.html"},
	},
	AlgoNaiveBayes: {
		Name:      AlgoNaiveBayes,
		Task:      "classification",
		Category:  CategoryClassification,
		WhenToUse: "Text classification baseline with bag-of-words/TF-IDF.",
		Pros:      []string{"Very fast", "Surprisingly strong on text"},
		Cons:      []string{"Strong independence assumption", "Less expressive"},
		TypicalSteps: []string{
			"Vectorize text",
			"Train MultinomialNB",
			"Compare to logistic regression",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/naive_bayes.html"},
	},
	AlgoKMeans: {
		Name:      AlgoKMeans,
		Task:      "clustering",
		Category:  CategoryClustering,
		WhenToUse: "Partition numeric data into k clusters; spherical clusters, similar sizes.",
		Pros:      []string{"Fast", "Scales well"},
		Cons:      []string{"Requires k", "Sensitive to scale and outliers"},
		TypicalSteps: []string{
			"Scale features",
			"Use k-means++",
			"Pick k via elbow/silhouette",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/clustering.html#k-means"},
	},
	AlgoDBSCAN: {
		Name:      AlgoDBSCAN,
		Task:      "clustering",
		Category:  CategoryClustering,
		WhenToUse: "Find arbitrarily-shaped clusters; good for outlier detection.",
		Pros:      []string{"No k needed", "Finds noise"},
		Cons:      []string{"Sensitive to eps/min_samples", "Struggles with varying densities"},
		TypicalSteps: []string{
			"Scale features",
			"Tune eps via k-distance plot",
			"Validate with silhouette",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/clustering.html#dbscan"},
	},
	AlgoPCA: {
		Name:      AlgoPCA,
		Task:      "dimensionality_reduction",
		Category:  CategoryDimReduction,
		WhenToUse: "Reduce dimensionality while preserving variance; preprocessing or visualization.",
		Pros:      []string{"Fast", "Deterministic"},
		Cons:      []string{"Linear only", "Components hard to interpret"},
		TypicalSteps: []string{
			"Standardize features",
			"Pick components via explained variance",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/decomposition.html#pca"},
	},
	AlgoTSNEUMAP: {
		Name:      AlgoTSNEUMAP,
		Task:      "dimensionality_reduction",
		Category:  CategoryDimReduction,
		WhenToUse: "Nonlinear embeddings for visualization; not for downstream metrics.",
		Pros:      []string{"Great visual clusters"},
		Cons:      []string{"Stochastic", "Not ideal for downstream modeling"},
		TypicalSteps: []string{
			"Standardize features",
			"Try perplexity (t-SNE) / n_neighbors (UMAP)",
		},
		Resources: []string{
			"https://umap-learn.readthedocs.io/en/latest/",
			"https://lvdmaaten.github.io/tsne/",
		},
	},
	AlgoARIMAProphet: {
		Name:      AlgoARIMAProphet,
		Task:      "time_series",
		Category:  CategoryTimeSeries,
		WhenToUse: "Univariate time-series forecasting with trend/seasonality.",
		Pros:      []string{"Interpretable", "Captures seasonality"},
		Cons:      []string{"Less flexible for complex exogenous signals"},
		TypicalSteps: []string{
			"Make series stationary or let Prophet model trend/seasonality",
			"Cross-validate",
		},
		Resources: []string{
			"https://otexts.com/fpp3/",
			"https://facebook.github.io/prophet/",
		},
	},
	AlgoLSTMTemporalCNN: {
		Name:      AlgoLSTMTemporalCNN,
		Task:      "time_series",
		Category:  CategoryTimeSeries,
		WhenToUse: "Multivariate or long-horizon forecasting with complex dependencies.",
		Pros:      []string{"Captures long dependencies"},
		Cons:      []string{"Needs more data", "Harder to tune"},
		TypicalSteps: []string{
			"Create sliding windows",
			"Normalize",
			"Tune architecture and horizon",
		},
		Resources: []string{"https://pytorch.org/tutorials/beginner/forecasting_tutorial.html"},
	},
	AlgoBERT: {
		Name:      AlgoBERT,
		Task:      "nlp",
		Category:  CategoryNLP,
		WhenToUse: "Text classification/NER/Q&A with pretrained transformers.",
		Pros:      []string{"Strong accuracy", "Transfer learning"},
		Cons:      []string{"Compute-heavy", "Latency considerations"},
		TypicalSteps: []string{
			"Start with smaller distil models",
			"Fine-tune with early stopping",
		},
		Resources: []string{"https://huggingface.co/docs/transformers/index"},
	},
	AlgoCNNVision: {
		Name:      AlgoCNNVision,
		Task:      "vision",
		Category:  CategoryVision,
		WhenToUse: "Image classification; start with pretrained backbones.",
		Pros:      []string{"Excellent accuracy with transfer learning"},
		Cons:      []string{"Compute-heavy", "Requires augmentation"},
		TypicalSteps: []string{
			"Resize & normalize",
			"Transfer learn",
			"Augment and regularize",
		},
		Resources: []string{"https://pytorch.org/tutorials/beginner/transfer_learning_tutorial.html"},
	},
	AlgoObjectDetection: {
		Name:      AlgoObjectDetection,
		Task:      "vision",
		Category:  CategoryVision,
		WhenToUse: "Detect and localize objects with bounding boxes.",
		Pros:      []string{"Strong performance"},
		Cons:      []string{"Complex training", "Latency varies"},
		TypicalSteps: []string{
			"Choose architecture per latency",
			"Label boxes",
			"Tune anchors/augment",
		},
		Resources: []string{"https://docs.ultralytics.com/"},
	},
	AlgoAnomalyDetection: {
		Name:      AlgoAnomalyDetection,
		Task:      "anomaly",
		Category:  CategoryAnomaly,
		WhenToUse: "Find rare events with little labeled data.",
		Pros:      []string{"Unsupervised/semi-supervised"},
		Cons:      []string{"Thresholding sensitive"},
		TypicalSteps: []string{
			"Scale features",
			"Tune contamination/nu",
			"Validate on known anomalies",
		},
		Resources: []string{"https://scikit-learn.org/stable/modules/outlier_detection.html"},
	},
	AlgoMatrixFactorization: {
		Name:      AlgoMatrixFactorization,
		Task:      "recsys",
		Category:  CategoryRecommender,
		WhenToUse: "Personalized recommendations from user-item interactions.",
		Pros:      []string{"Captures user/item embeddings"},
		Cons:      []string{"Cold-start issues"},
		TypicalSteps: []string{
			"Build interaction matrix",
			"Train MF or towers",
			"Handle cold-start",
		},
		Resources: []string{"https://developers.google.com/machine-learning/recommendation"},
	},
	AlgoReinforcementLearning: {
		Name:      AlgoReinforcementLearning,
		Task:      "rl",
		Category:  CategoryReinforcement,
		WhenToUse: "Sequential decision-making with delayed rewards.",
		Pros:      []string{"Optimizes long-term return"},
		Cons:      []string{"Sample-inefficient", "Reward shaping needed"},
		TypicalSteps: []string{
			"Define MDP",
			"Start with simple baselines",
			"Evaluate stability",
		},
		Resources: []string{"https://spinningup.openai.com/en/latest/"},
	},
	AlgoCausalInference: {
		Name:      AlgoCausalInference,
		Task:      "causal",
		Category:  CategoryCausal,
		WhenToUse: "Estimate causal effects from observational data.",
		Pros:      []string{"Actionable insights"},
		Cons:      []string{"Requires assumptions", "Sensitive to confounding"},
		TypicalSteps: []string{
			"Define treatment/outcome",
			"Choose identification strategy",
			"Validate assumptions",
		},
		Resources: []string{"https://www.bradyneal.com/intro-to-causal-inference"},
	},
}

// KnowledgeBase returns the static algorithm metadata in stable
// name order, for the /algorithms listing.
func KnowledgeBase() []AlgorithmInfo {
	out := make([]AlgorithmInfo, 0, len(knowledgeBase))
	for _, info := range knowledgeBase {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupAlgorithm returns the knowledge-base entry for an algorithm
// name, if present.
func LookupAlgorithm(name string) (AlgorithmInfo, bool) {
	info, ok := knowledgeBase[name]
	return info, ok
}
