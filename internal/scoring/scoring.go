// Package scoring rates article importance and classifies topic buckets
// using curated keyword weights.
package scoring

import (
	"math"
	"strings"
)

// importanceIndex is ImportanceWeights re-keyed lowercase for substring and
// tag lookups.
var importanceIndex = func() map[string]int {
	idx := make(map[string]int, len(ImportanceWeights))
	for keyword, weight := range ImportanceWeights {
		idx[strings.ToLower(keyword)] = weight
	}
	return idx
}()

// ImportanceIndex exposes the lowercase keyword index for tag generation,
// which works on lowercased tokens.
func ImportanceIndex() map[string]int {
	return importanceIndex
}

// RateImportance accumulates the weights of every curated keyword present in
// the content (case-insensitive substring match) or in the generated tag
// list, adds fixed bonuses for urgency and military-conflict phrasing, and
// normalizes to a 1-5 rating. The raw/20 divisor and the clamp bounds are
// load-bearing: min-importance filters depend on this exact scale.
func RateImportance(content string, tags []string) int {
	lower := strings.ToLower(content)
	score := 0

	for keyword, weight := range importanceIndex {
		if strings.Contains(lower, keyword) {
			score += weight
		}
	}

	for _, tag := range tags {
		if weight, ok := importanceIndex[strings.ToLower(tag)]; ok {
			score += weight
		}
	}

	if containsAny(lower, urgencyTerms) {
		score += 5
	}
	if containsAny(lower, conflictPhrases) {
		score += 5
	}

	normalized := int(math.Round(float64(score) / 20))
	if normalized < 1 {
		normalized = 1
	}
	if normalized > 5 {
		normalized = 5
	}
	return normalized
}

// Categorize counts how many of each topic bucket's keywords appear in the
// content. Buckets without a single hit are omitted, so the result never
// contains zero-valued entries.
func Categorize(content string) map[string]int {
	lower := strings.ToLower(content)
	categories := make(map[string]int)

	for _, topic := range Topics {
		count := 0
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > 0 {
			categories[topic] = count
		}
	}
	return categories
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
