package article

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixtures() []Article {
	return []Article{
		{
			Title:      "Naval drills expand",
			Date:       now.Add(-2 * time.Hour),
			Content:    "Japan and Australia expanded joint naval drills in the Pacific.",
			Importance: 4,
			Sentiment:  map[string]float64{"US": 0.4, "China": -0.3},
			Source:     "USNI News",
			Categories: map[string]int{"Military": 3},
		},
		{
			Title:      "Trade pact signed",
			Date:       now.Add(-3 * 24 * time.Hour),
			Content:    "Indonesia signed a regional trade pact boosting exports.",
			Importance: 2,
			Sentiment:  map[string]float64{"Overall": 0.2},
			Source:     "East Asia Forum",
			Categories: map[string]int{"Business": 2, "Political": 1},
		},
		{
			Title:      "Protests continue",
			Date:       now.Add(-40 * 24 * time.Hour),
			Content:    "Protests over election results continued in the capital.",
			Importance: 3,
			Sentiment:  map[string]float64{"China": 0.5},
			Source:     "RNZ Pacific",
			Categories: map[string]int{"Political": 2},
		},
	}
}

func titles(articles []Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func TestFilterNoCriteria(t *testing.T) {
	got := Filter(fixtures(), Criteria{}, now)
	if len(got) != 3 {
		t.Errorf("empty criteria kept %d articles, want all 3", len(got))
	}
}

func TestFilterMinImportance(t *testing.T) {
	got := Filter(fixtures(), Criteria{MinImportance: 3}, now)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 articles at importance >= 3", titles(got))
	}
	got = Filter(fixtures(), Criteria{MinImportance: 5}, now)
	if len(got) != 0 {
		t.Errorf("got %v, want none above the fixtures' max importance", titles(got))
	}
}

func TestFilterTopic(t *testing.T) {
	got := Filter(fixtures(), Criteria{Topic: "Political"}, now)
	if len(got) != 2 {
		t.Fatalf("got %v, want the 2 Political articles", titles(got))
	}
	for _, a := range got {
		if _, ok := a.Categories["Political"]; !ok {
			t.Errorf("article %q lacks the requested topic", a.Title)
		}
	}

	if got := Filter(fixtures(), Criteria{Topic: "All"}, now); len(got) != 3 {
		t.Errorf("Topic All kept %d, want 3", len(got))
	}
}

func TestFilterCountrySubstring(t *testing.T) {
	got := Filter(fixtures(), Criteria{Country: "indonesia"}, now)
	if len(got) != 1 || got[0].Title != "Trade pact signed" {
		t.Errorf("got %v, want only the Indonesia article", titles(got))
	}
}

func TestFilterSearchTermMatchesTitleOrContent(t *testing.T) {
	byTitle := Filter(fixtures(), Criteria{SearchTerm: "drills expand"}, now)
	if len(byTitle) != 1 {
		t.Errorf("title search got %v, want 1", titles(byTitle))
	}
	byContent := Filter(fixtures(), Criteria{SearchTerm: "exports"}, now)
	if len(byContent) != 1 || byContent[0].Title != "Trade pact signed" {
		t.Errorf("content search got %v, want the trade article", titles(byContent))
	}
}

func TestFilterSentiment(t *testing.T) {
	cases := []struct {
		filter SentimentFilter
		want   []string
	}{
		{PositiveTowardsUS, []string{"Naval drills expand"}},
		{NegativeTowardsCN, []string{"Naval drills expand"}},
		{PositiveTowardsCN, []string{"Protests continue"}},
		{NegativeTowardsUS, nil},
		{SentimentAll, []string{"Naval drills expand", "Trade pact signed", "Protests continue"}},
	}

	for _, tc := range cases {
		got := titles(Filter(fixtures(), Criteria{Sentiment: tc.filter}, now))
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.filter, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.filter, got, tc.want)
				break
			}
		}
	}
}

func TestFilterTimeWindows(t *testing.T) {
	cases := []struct {
		window TimeWindow
		want   int
	}{
		{WindowToday, 1},
		{WindowPastWeek, 2},
		{WindowPastMonth, 2},
		{WindowPast3Month, 3},
		{WindowAll, 3},
		{"", 3},
	}
	for _, tc := range cases {
		got := Filter(fixtures(), Criteria{Window: tc.window}, now)
		if len(got) != tc.want {
			t.Errorf("window %q kept %d articles, want %d", tc.window, len(got), tc.want)
		}
	}
}

func TestFilterSourceSet(t *testing.T) {
	got := Filter(fixtures(), Criteria{Sources: []string{"RNZ Pacific"}}, now)
	if len(got) != 1 || got[0].Source != "RNZ Pacific" {
		t.Errorf("got %v, want only RNZ Pacific", titles(got))
	}
}

func TestFilterPlaceholderSurvivesEverything(t *testing.T) {
	placeholder := Article{
		Title:       "Unable to fetch content from Solomon Star News",
		Date:        now.Add(-200 * 24 * time.Hour),
		Importance:  1,
		Sentiment:   map[string]float64{"Overall": 0},
		Source:      "Solomon Star News",
		Placeholder: true,
	}
	articles := append(fixtures(), placeholder)

	got := Filter(articles, Criteria{
		Topic:         "Military",
		MinImportance: 5,
		SearchTerm:    "no such phrase",
		Window:        WindowToday,
	}, now)

	found := false
	for _, a := range got {
		if a.Placeholder {
			found = true
		}
	}
	if !found {
		t.Errorf("placeholder dropped by filters: %v", titles(got))
	}
}

func TestFilterPlaceholderRespectsSourceSelection(t *testing.T) {
	placeholder := Article{Title: "Unable to fetch content from X", Source: "X", Placeholder: true}
	got := Filter([]Article{placeholder}, Criteria{Sources: []string{"Y"}}, now)
	if len(got) != 0 {
		t.Errorf("placeholder for unselected source survived: %v", titles(got))
	}
}

func TestSortByDateDefault(t *testing.T) {
	articles := fixtures()
	Sort(articles, Criteria{})
	for i := 1; i < len(articles); i++ {
		if articles[i].Date.After(articles[i-1].Date) {
			t.Errorf("dates not descending at %d: %v", i, titles(articles))
		}
	}
}

func TestSortByImportance(t *testing.T) {
	articles := fixtures()
	Sort(articles, Criteria{SortBy: SortByImportance})
	for i := 1; i < len(articles); i++ {
		if articles[i].Importance > articles[i-1].Importance {
			t.Errorf("importance not descending at %d: %v", i, titles(articles))
		}
	}
}

func TestSortByRelevanceWithTopic(t *testing.T) {
	articles := fixtures()
	Sort(articles, Criteria{SortBy: SortByRelevance, Topic: "Political"})
	if articles[0].Title != "Protests continue" {
		t.Errorf("got %v, want the strongest Political article first", titles(articles))
	}
}

func TestSortByRelevanceWithoutTopicUsesTotal(t *testing.T) {
	articles := fixtures()
	Sort(articles, Criteria{SortBy: SortByRelevance})
	if articles[0].Title != "Naval drills expand" && articles[0].Title != "Trade pact signed" {
		t.Errorf("got %v, want highest total category hits first", titles(articles))
	}
}

func TestSortStableOnTies(t *testing.T) {
	a := Article{Title: "first", Importance: 3}
	b := Article{Title: "second", Importance: 3}
	articles := []Article{a, b}
	Sort(articles, Criteria{SortBy: SortByImportance})
	if articles[0].Title != "first" || articles[1].Title != "second" {
		t.Errorf("tied articles reordered: %v", titles(articles))
	}
}
