// Package sentiment scores article tone toward key regional actors using the
// VADER lexicon.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/tidemark/ipnews/internal/textproc"
)

// OverallKey is the fallback map key used when no tracked actor is mentioned.
const OverallKey = "Overall"

type actor struct {
	Name  string
	Terms []string
}

// trackedActors are the regional actors whose per-entity tone is reported.
var trackedActors = []actor{
	{"US", []string{"US", "United States", "America", "Washington", "Biden", "Americans"}},
	{"China", []string{"China", "Chinese", "Beijing", "CCP", "Xi Jinping", "PRC"}},
	{"Australia", []string{"Australia", "Australian", "Canberra", "Albanese"}},
	{"Japan", []string{"Japan", "Japanese", "Tokyo", "Kishida"}},
	{"India", []string{"India", "Indian", "New Delhi", "Modi"}},
	{"ASEAN", []string{"ASEAN", "Southeast Asia", "Southeast Asian"}},
	{"Pacific Islands", []string{"Pacific Islands", "Pacific Island Countries", "PIF", "Forum"}},
}

// The analyzer is stateless after construction and safe to share.
var analyzer = govader.NewSentimentIntensityAnalyzer()

// Analyze returns a polarity score in [-1,1] per tracked actor mentioned in
// the text, averaged over the sentences referencing that actor. Text that
// mentions no tracked actor yields a single whole-text "Overall" score, so
// the result is never empty.
func Analyze(text string) map[string]float64 {
	results := make(map[string]float64)
	if text == "" || text == textproc.NoContent {
		results[OverallKey] = 0
		return results
	}

	sentences := textproc.SplitSentences(text)
	if len(sentences) == 0 {
		sentences = []string{text}
	}

	for _, a := range trackedActors {
		var sum float64
		var n int
		for _, sentence := range sentences {
			if !mentionsActor(sentence, a.Terms) {
				continue
			}
			sum += analyzer.PolarityScores(sentence).Compound
			n++
		}
		if n > 0 {
			results[a.Name] = round2(sum / float64(n))
		}
	}

	if len(results) == 0 {
		results[OverallKey] = round2(analyzer.PolarityScores(text).Compound)
	}
	return results
}

func mentionsActor(sentence string, terms []string) bool {
	lower := strings.ToLower(sentence)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
