package article

import (
	"sort"
	"strings"
	"time"
)

// sentimentThreshold is how far from neutral an actor's polarity must be
// before a directional sentiment filter counts it.
const sentimentThreshold = 0.1

// Filter applies the criteria conjunctively and returns the surviving
// articles in their original relative order. Placeholder articles always
// survive: a dead source must stay visible rather than silently vanish.
func Filter(articles []Article, c Criteria, now time.Time) []Article {
	sourceSet := make(map[string]bool, len(c.Sources))
	for _, s := range c.Sources {
		sourceSet[s] = true
	}

	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Placeholder {
			if len(sourceSet) == 0 || sourceSet[a.Source] {
				out = append(out, a)
			}
			continue
		}
		if !matches(a, c, sourceSet, now) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a Article, c Criteria, sourceSet map[string]bool, now time.Time) bool {
	if len(sourceSet) > 0 && !sourceSet[a.Source] {
		return false
	}

	if c.Topic != "" && c.Topic != "All" {
		if _, ok := a.Categories[c.Topic]; !ok {
			return false
		}
	}

	if c.Country != "" && c.Country != "All" {
		if !strings.Contains(strings.ToLower(a.Content), strings.ToLower(c.Country)) {
			return false
		}
	}

	if a.Importance < c.MinImportance {
		return false
	}

	if !matchesSentiment(a.Sentiment, c.Sentiment) {
		return false
	}

	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(a.Content), term) &&
			!strings.Contains(strings.ToLower(a.Title), term) {
			return false
		}
	}

	return matchesWindow(a.Date, c.Window, now)
}

func matchesSentiment(scores map[string]float64, f SentimentFilter) bool {
	switch f {
	case "", SentimentAll:
		return true
	case PositiveTowardsUS:
		return scores["US"] > sentimentThreshold
	case NegativeTowardsUS:
		return scores["US"] < -sentimentThreshold
	case PositiveTowardsCN:
		return scores["China"] > sentimentThreshold
	case NegativeTowardsCN:
		return scores["China"] < -sentimentThreshold
	}
	return true
}

func matchesWindow(date time.Time, w TimeWindow, now time.Time) bool {
	if w == "" || w == WindowAll {
		return true
	}

	days := int(now.Sub(date).Hours() / 24)
	switch w {
	case WindowToday:
		return days <= 1
	case WindowPastWeek:
		return days <= 7
	case WindowPastMonth:
		return days <= 30
	case WindowPast3Month:
		return days <= 90
	}
	return true
}

// Sort orders articles in place by the criteria's sort key. Ties keep their
// original relative order.
func Sort(articles []Article, c Criteria) {
	switch c.SortBy {
	case SortByImportance:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Importance > articles[j].Importance
		})
	case SortByRelevance:
		sort.SliceStable(articles, func(i, j int) bool {
			return relevance(articles[i], c.Topic) > relevance(articles[j], c.Topic)
		})
	default: // SortByDate
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Date.After(articles[j].Date)
		})
	}
}

// relevance is the category-hit count for the active topic, or the total hit
// count across all topics when no topic filter is set.
func relevance(a Article, topic string) int {
	if topic != "" && topic != "All" {
		return a.Categories[topic]
	}
	total := 0
	for _, count := range a.Categories {
		total += count
	}
	return total
}
