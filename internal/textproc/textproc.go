// Package textproc turns raw feed bodies into clean text, tags and summaries.
package textproc

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// NoContent is returned for empty or unusable input so downstream stages
// have a cheap no-op path instead of an error.
const NoContent = "No content available."

// CleanHTML flattens HTML into whitespace-collapsed plain text. Entities are
// decoded by the HTML parser. Plain-text input passes through unchanged
// apart from whitespace normalization.
func CleanHTML(content string) string {
	if strings.TrimSpace(content) == "" {
		return NoContent
	}

	text := content
	if strings.ContainsRune(content, '<') {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
		if err == nil {
			// Separate block elements so adjacent tags don't glue words together.
			doc.Find("br, p, div, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
				s.AppendHtml(" ")
			})
			text = doc.Text()
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return NoContent
	}
	return text
}

// SplitSentences splits text on sentence-final punctuation followed by space.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				s := strings.TrimSpace(b.String())
				if s != "" {
					sentences = append(sentences, s)
				}
				b.Reset()
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Summarize returns the first maxSentences sentences verbatim; shorter texts
// are returned whole.
func Summarize(text string, maxSentences int) string {
	if text == "" || text == NoContent {
		return text
	}

	clean := text
	if strings.ContainsRune(text, '<') {
		clean = CleanHTML(text)
	}

	sentences := SplitSentences(clean)
	if len(sentences) <= maxSentences {
		return clean
	}
	return strings.Join(sentences[:maxSentences], " ")
}

const minTagWordLength = 4

// Tags extracts up to maxTags keywords ranked by frequency. Tokens that
// appear in the curated importance list are unioned in ahead of pure
// frequency so domain-relevant tags win the truncation.
func Tags(text string, maxTags int, important map[string]int) []string {
	if text == "" || text == NoContent {
		return nil
	}

	clean := text
	if strings.ContainsRune(text, '<') {
		clean = CleanHTML(text)
	}

	counts := make(map[string]int)
	var order []string // first-seen order keeps ranking deterministic
	for _, tok := range tokenize(clean) {
		if len([]rune(tok)) < minTagWordLength || stopWords[tok] {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	var tags []string
	seen := make(map[string]bool)
	add := func(tok string) {
		if !seen[tok] && len(tags) < maxTags {
			seen[tok] = true
			tags = append(tags, tok)
		}
	}

	for _, tok := range order {
		if _, ok := important[tok]; ok {
			add(tok)
		}
	}
	for _, tok := range ranked {
		add(tok)
	}
	return tags
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if word == "" {
			continue
		}
		alpha := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if alpha {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

var stopWords = func() map[string]bool {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could", "did",
		"do", "does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "i", "if", "in", "into", "is", "it", "its", "just",
		"more", "most", "my", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "out", "over", "own", "same",
		"she", "should", "so", "some", "such", "than", "that", "the", "their",
		"them", "then", "there", "these", "they", "this", "those", "through",
		"to", "too", "under", "until", "up", "very", "was", "we", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why",
		"will", "with", "would", "you", "your", "said", "says", "new", "one",
		"two", "first", "last", "year", "years", "would", "him",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
