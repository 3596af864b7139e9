// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

// ClassifyAlgorithm maps an algorithm name to its usage category.
// Total over all inputs: names outside the knowledge base fall back
// to CategoryOther rather than erroring, so classification can never
// fail a recommendation.
func ClassifyAlgorithm(name string) Category {
	if info, ok := knowledgeBase[name]; ok && info.Category.Valid() {
		return info.Category
	}
	return CategoryOther
}

// ClassifyResult derives the category for a ranked result from its
// top candidate. An empty result classifies as CategoryOther; callers
// are expected not to persist empty results in the first place.
func ClassifyResult(candidates []Candidate) Category {
	if len(candidates) == 0 {
		return CategoryOther
	}
	return ClassifyAlgorithm(candidates[0].Algorithm)
}
