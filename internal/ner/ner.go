// Package ner implements rule-based entity and relationship extraction for
// Indo-Pacific news text.
package ner

import (
	"regexp"
	"strings"

	"github.com/tidemark/ipnews/internal/textproc"
)

// Kind is the closed set of entity kinds the extractor recognizes.
type Kind int

const (
	Country Kind = iota
	Organization
	Person
	Group
)

func (k Kind) String() string {
	switch k {
	case Country:
		return "Country"
	case Organization:
		return "Organization"
	case Person:
		return "Person"
	case Group:
		return "Group"
	}
	return "Unknown"
}

// RelationType classifies how two co-mentioned entities relate.
type RelationType string

const (
	RelCooperation RelationType = "cooperation"
	RelConflict    RelationType = "conflict"
	RelEconomic    RelationType = "economic"
	RelDiplomatic  RelationType = "diplomatic"
	RelMilitary    RelationType = "military"
	RelMentioned   RelationType = "mentioned"
)

// Relationship links two entities co-mentioned in one sentence.
type Relationship struct {
	Source   string
	Target   string
	Type     RelationType
	Sentence string
}

// Countries and territories in the Indo-Pacific region.
var countries = []string{
	"China", "United States", "USA", "US", "Japan", "Australia", "India",
	"Indonesia", "Philippines", "Malaysia", "Vietnam", "Thailand", "Myanmar",
	"Cambodia", "Laos", "Singapore", "South Korea", "North Korea", "Taiwan",
	"New Zealand", "Fiji", "Papua New Guinea", "Solomon Islands", "Vanuatu",
	"Samoa", "Tonga", "New Caledonia", "Wallis and Futuna", "Pacific Islands",
}

var organizations = []string{
	"ASEAN", "United Nations", "UN", "European Union", "EU", "NATO",
	"Pentagon", "State Department", "White House", "Ministry of Defense",
	"Ministry of Foreign Affairs", "WHO", "World Bank", "IMF", "WTO",
}

// Nationality and political groups.
var groups = []string{
	"Chinese", "American", "Japanese", "Australian", "Indian", "Indonesian",
	"Filipino", "Malaysian", "Vietnamese", "Thai", "Burmese", "Cambodian",
	"Laotian", "Singaporean", "Korean", "Taiwanese", "Pacific Islander",
}

// Person names are only recognized next to a title.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`President\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`Prime Minister\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`Foreign Minister\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`Secretary\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`General\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`Admiral\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
}

var relationKeywords = map[RelationType][]string{
	RelCooperation: {"cooperation", "agreement", "partnership", "alliance", "deal", "treaty", "pact"},
	RelConflict:    {"conflict", "tension", "dispute", "war", "confrontation", "clash"},
	RelEconomic:    {"trade", "investment", "economic", "financial", "commerce"},
	RelDiplomatic:  {"diplomatic", "diplomacy", "talks", "negotiation", "meeting"},
	RelMilitary:    {"military", "defense", "security", "naval", "army", "forces"},
}

// relationPriority fixes the tie-break when one sentence matches several
// relation categories: the most specific wins.
var relationPriority = []RelationType{
	RelMilitary, RelConflict, RelCooperation, RelEconomic, RelDiplomatic,
}

// Extract returns distinct entity mentions grouped by kind. Matching is
// case-insensitive membership against the curated lists; only non-empty
// kinds appear in the result.
func Extract(text string) map[Kind][]string {
	if text == "" || text == textproc.NoContent {
		return map[Kind][]string{}
	}

	lower := strings.ToLower(text)
	entities := make(map[Kind][]string)

	appendMatches := func(kind Kind, names []string) {
		for _, name := range names {
			if strings.Contains(lower, strings.ToLower(name)) {
				entities[kind] = append(entities[kind], name)
			}
		}
	}

	appendMatches(Country, countries)
	appendMatches(Organization, organizations)
	appendMatches(Group, groups)

	seen := make(map[string]bool)
	for _, pattern := range personPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if !seen[name] {
				seen[name] = true
				entities[Person] = append(entities[Person], name)
			}
		}
	}

	return entities
}

// Relationships pairs entities co-mentioned in a sentence and classifies the
// relation by keyword. Pairs are deduplicated ignoring direction; the first
// non-"mentioned" classification for a pair wins.
func Relationships(text string, entities map[Kind][]string) []Relationship {
	// Fixed kind order keeps pair direction and emission order stable across
	// runs; map iteration would not.
	var all []string
	for _, kind := range []Kind{Country, Organization, Person, Group} {
		all = append(all, entities[kind]...)
	}
	if len(all) < 2 {
		return nil
	}

	type slot struct {
		rel Relationship
	}
	found := make(map[string]*slot)
	var order []string

	for _, sentence := range textproc.SplitSentences(text) {
		var present []string
		for _, entity := range all {
			if strings.Contains(sentence, entity) {
				present = append(present, entity)
			}
		}
		if len(present) < 2 {
			continue
		}

		relType := classifySentence(sentence)

		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				key := pairKey(present[i], present[j])
				existing, ok := found[key]
				if !ok {
					found[key] = &slot{rel: Relationship{
						Source:   present[i],
						Target:   present[j],
						Type:     relType,
						Sentence: sentence,
					}}
					order = append(order, key)
					continue
				}
				// Upgrade an unspecific pair the first time a typed
				// sentence is seen; never downgrade or replace a type.
				if existing.rel.Type == RelMentioned && relType != RelMentioned {
					existing.rel.Type = relType
					existing.rel.Sentence = sentence
				}
			}
		}
	}

	rels := make([]Relationship, 0, len(order))
	for _, key := range order {
		rels = append(rels, found[key].rel)
	}
	return rels
}

func classifySentence(sentence string) RelationType {
	lower := strings.ToLower(sentence)
	for _, relType := range relationPriority {
		for _, keyword := range relationKeywords[relType] {
			if strings.Contains(lower, keyword) {
				return relType
			}
		}
	}
	return RelMentioned
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// Importance scores each entity 0-10 from raw mention frequency plus one
// point per relationship it participates in, rescaled so the busiest entity
// maps to 10.
func Importance(text string, entities map[Kind][]string, rels []Relationship) map[string]float64 {
	lower := strings.ToLower(text)
	raw := make(map[string]float64)

	for _, names := range entities {
		for _, name := range names {
			raw[name] = float64(strings.Count(lower, strings.ToLower(name)))
		}
	}
	for _, rel := range rels {
		raw[rel.Source]++
		raw[rel.Target]++
	}

	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return raw
	}

	scores := make(map[string]float64, len(raw))
	for name, v := range raw {
		scores[name] = v * 10 / max
	}
	return scores
}
