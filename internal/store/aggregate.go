// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package store

import (
	"sort"

	"github.com/tomtom215/mentor/internal/advisor"
)

// sortedCategoryCounts orders count rows by count descending, then
// category name for a stable report layout.
func sortedCategoryCounts(counts map[string]int64) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, CategoryCount{Category: advisor.Category(category), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// sortedAlgorithmCounts orders count rows by count descending, then
// algorithm name.
func sortedAlgorithmCounts(counts map[string]int64) []AlgorithmCount {
	out := make([]AlgorithmCount, 0, len(counts))
	for algorithm, n := range counts {
		out = append(out, AlgorithmCount{Algorithm: algorithm, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Algorithm < out[j].Algorithm
	})
	return out
}
