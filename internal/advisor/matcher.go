// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

import (
	"math"
	"sort"
	"strings"
)

// Matcher evaluates the rule table against an extracted signal set
// and ranks the resulting candidates.
type Matcher struct {
	rules      []Rule
	maxResults int
}

// NewMatcher validates the rule table and returns a matcher.
// maxResults caps the ranked output; zero disables the cap.
func NewMatcher(rules []Rule, maxResults int) (*Matcher, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	return &Matcher{rules: rules, maxResults: maxResults}, nil
}

// Match walks the rule table in declaration order and emits one
// contribution per rule whose signal is present. The output preserves
// table order, which Rank relies on for tie-breaking and rationale
// assembly.
func (m *Matcher) Match(signals SignalSet) []Contribution {
	var contributions []Contribution
	for i, r := range m.rules {
		if !signals.Has(r.Signal) {
			continue
		}
		contributions = append(contributions, Contribution{
			RuleIndex: i,
			Algorithm: r.Algorithm,
			Score:     r.Weight,
			Reason:    r.Reason,
		})
	}
	return contributions
}

// merged accumulates all contributions for one algorithm.
type merged struct {
	algorithm  string
	score      float64
	reasons    []string
	firstIndex int
}

// Rank merges contributions per algorithm, drops candidates whose
// total score is not positive, and returns the rest ordered by score
// descending. Ties break deterministically on the rule index of each
// candidate's first contribution, so two runs over the same prompt
// always produce the same ordering.
func (m *Matcher) Rank(contributions []Contribution) []Candidate {
	if len(contributions) == 0 {
		return nil
	}

	byAlgorithm := make(map[string]*merged)
	order := make([]*merged, 0, len(contributions))

	for _, c := range contributions {
		entry, ok := byAlgorithm[c.Algorithm]
		if !ok {
			entry = &merged{algorithm: c.Algorithm, firstIndex: c.RuleIndex}
			byAlgorithm[c.Algorithm] = entry
			order = append(order, entry)
		}
		entry.score += c.Score
		entry.reasons = append(entry.reasons, c.Reason)
	}

	kept := order[:0]
	for _, entry := range order {
		if entry.score > 0 {
			kept = append(kept, entry)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].firstIndex < kept[j].firstIndex
	})

	if m.maxResults > 0 && len(kept) > m.maxResults {
		kept = kept[:m.maxResults]
	}

	candidates := make([]Candidate, 0, len(kept))
	for _, entry := range kept {
		info := knowledgeBase[entry.algorithm]
		candidates = append(candidates, Candidate{
			Algorithm:    entry.algorithm,
			Score:        roundScore(entry.score),
			Rationale:    strings.Join(entry.reasons, "; "),
			WhenToUse:    info.WhenToUse,
			Pros:         info.Pros,
			Cons:         info.Cons,
			TypicalSteps: info.TypicalSteps,
			Resources:    info.Resources,
		})
	}
	return candidates
}

// roundScore rounds to two decimals so summed float weights present
// cleanly in responses and reports.
func roundScore(s float64) float64 {
	return math.Round(s*100) / 100
}
