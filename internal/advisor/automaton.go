// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package advisor

// keywordAutomaton is an Aho-Corasick automaton over the signal
// vocabulary. It finds every vocabulary term that occurs as a
// substring of a normalized prompt in a single pass, in O(n + z)
// time for a prompt of length n with z matches.
//
// The automaton is built once at construction and is read-only
// afterwards, so it is safe for concurrent use without locking.
type keywordAutomaton struct {
	root  *trieNode
	terms []term
}

// term associates a vocabulary phrase with the signal it asserts.
type term struct {
	phrase string
	signal Signal
}

type trieNode struct {
	children map[rune]*trieNode
	failure  *trieNode
	output   []int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// newKeywordAutomaton builds the automaton from a vocabulary mapping
// each signal to the phrases that assert it. Phrases are expected to
// already be in normalized form (lowercase, single spaces).
func newKeywordAutomaton(vocabulary map[Signal][]string) *keywordAutomaton {
	ka := &keywordAutomaton{root: newTrieNode()}

	for signal, phrases := range vocabulary {
		for _, phrase := range phrases {
			if phrase == "" {
				continue
			}
			ka.terms = append(ka.terms, term{phrase: phrase, signal: signal})
		}
	}

	for i, t := range ka.terms {
		ka.insert(i, t.phrase)
	}
	ka.buildFailureLinks()

	return ka
}

func (ka *keywordAutomaton) insert(index int, phrase string) {
	node := ka.root
	for _, ch := range phrase {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}
	node.output = append(node.output, index)
}

// buildFailureLinks wires the failure transitions with a BFS so that
// a failed match resumes at the longest proper suffix that is still a
// prefix of some term.
func (ka *keywordAutomaton) buildFailureLinks() {
	queue := make([]*trieNode, 0, len(ka.root.children))
	for _, child := range ka.root.children {
		child.failure = ka.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = ka.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// Scan runs the automaton over normalized text and returns the set of
// signals asserted by any matching term.
func (ka *keywordAutomaton) Scan(text string) SignalSet {
	found := NewSignalSet()
	node := ka.root

	for _, ch := range text {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = ka.root
			continue
		}
		node = node.children[ch]

		for _, idx := range node.output {
			found.Set(ka.terms[idx].signal)
		}
	}

	return found
}

// TermCount reports how many vocabulary phrases the automaton holds.
func (ka *keywordAutomaton) TermCount() int {
	return len(ka.terms)
}
