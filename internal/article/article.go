// Package article defines the durable content unit produced by the pipeline
// and the pure filter/sort engine applied before results reach a consumer.
package article

import "time"

// Article is the normalized, scored, classified unit of content.
type Article struct {
	Title      string             `json:"title"`
	Link       string             `json:"link"`
	Date       time.Time          `json:"date"`
	Summary    string             `json:"summary"`
	Content    string             `json:"content"` // full cleaned text; country and keyword filters match against it
	Tags       []string           `json:"tags"`
	Importance int                `json:"importance"` // 1-5
	Sentiment  map[string]float64 `json:"sentiment"`  // entity -> polarity in [-1,1], never empty
	Source     string             `json:"source"`
	ImageURL   string             `json:"image_url,omitempty"`
	Categories map[string]int     `json:"categories"` // topic -> mention count, no zero entries

	// Placeholder marks the synthetic article emitted for an unreachable
	// source. Placeholders survive filtering so a dead feed stays visible.
	Placeholder bool `json:"placeholder,omitempty"`
}

// SortKey selects the result ordering.
type SortKey string

const (
	SortByDate       SortKey = "Date"
	SortByImportance SortKey = "Importance"
	SortByRelevance  SortKey = "Relevance"
)

// TimeWindow restricts results to a period relative to now.
type TimeWindow string

const (
	WindowAll        TimeWindow = "All Time"
	WindowToday      TimeWindow = "Today"
	WindowPastWeek   TimeWindow = "Past Week"
	WindowPastMonth  TimeWindow = "Past Month"
	WindowPast3Month TimeWindow = "Past 3 Months"
)

// SentimentFilter selects articles by tone toward a tracked actor.
type SentimentFilter string

const (
	SentimentAll      SentimentFilter = "All"
	PositiveTowardsUS SentimentFilter = "Positive towards US"
	NegativeTowardsUS SentimentFilter = "Negative towards US"
	PositiveTowardsCN SentimentFilter = "Positive towards China"
	NegativeTowardsCN SentimentFilter = "Negative towards China"
)

// Criteria is the immutable filter set passed by value into the engine.
type Criteria struct {
	Sources       []string
	Topic         string // empty or "All" matches every topic
	Country       string // empty or "All" matches every country
	MinImportance int
	Sentiment     SentimentFilter
	SearchTerm    string
	Window        TimeWindow
	SortBy        SortKey
}
