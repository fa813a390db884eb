// Package text implements reference-based text metrics: BLEU, ROUGE, edit
// distance and exact match.
//
// Tokenization is fixed: strings are split on Unicode whitespace, with no case
// folding, punctuation stripping or stemming.
package text

import "strings"

// Tokenize splits s on whitespace.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// ngramKey joins tokens with a separator that whitespace tokenization never produces.
func ngramKey(tokens []string) string {
	return strings.Join(tokens, "\x00")
}

// countNgrams maps every n-gram of tokens to its number of occurrences.
func countNgrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	counts := make(map[string]int, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		counts[ngramKey(tokens[i:i+n])]++
	}
	return counts
}

// clippedOverlap sums min(candidate count, reference count) over the candidate n-grams.
func clippedOverlap(candidate, reference map[string]int) int {
	overlap := 0
	for gram, c := range candidate {
		overlap += min(c, reference[gram])
	}
	return overlap
}
