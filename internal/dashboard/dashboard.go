// Package dashboard wires fetching, classification, caching and filtering
// into the single entry point consumed by a presentation layer.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tidemark/ipnews/internal/article"
	"github.com/tidemark/ipnews/internal/cache"
	"github.com/tidemark/ipnews/internal/config"
	"github.com/tidemark/ipnews/internal/feed"
	"github.com/tidemark/ipnews/internal/metrics"
	"github.com/tidemark/ipnews/internal/ner"
	"github.com/tidemark/ipnews/internal/scoring"
	"github.com/tidemark/ipnews/internal/sentiment"
	"github.com/tidemark/ipnews/internal/textproc"
)

// EntryFetcher abstracts the network layer so tests can count invocations.
type EntryFetcher interface {
	FetchAll(ctx context.Context, sources []feed.Source) map[string][]feed.RawEntry
}

// Dashboard runs the aggregation pipeline and memoizes whole result sets.
type Dashboard struct {
	cfg     *config.Config
	fetcher EntryFetcher
	cache   cache.Cache
}

func New(cfg *config.Config, fetcher EntryFetcher, c cache.Cache) *Dashboard {
	return &Dashboard{cfg: cfg, fetcher: fetcher, cache: c}
}

// FetchArticles fetches the given sources, classifies every entry and
// returns the filtered, sorted article list. Results are cached per
// (source set, criteria) for the configured TTL; within that window the
// network layer is not touched again. It never returns an error: bad
// sources degrade to placeholders and bad entries are skipped and logged.
func (d *Dashboard) FetchArticles(ctx context.Context, sources []feed.Source, criteria article.Criteria) []article.Article {
	if len(sources) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	key := cache.Key(names, criteria)

	if cached, ok := d.cache.Get(key); ok {
		metrics.Global.IncrementCacheHits()
		slog.Debug("serving cached articles", "count", len(cached))
		return cached
	}
	metrics.Global.IncrementCacheMisses()

	feeds := d.fetcher.FetchAll(ctx, sources)
	articles := d.classifyAll(feeds)

	now := time.Now()
	result := article.Filter(articles, criteria, now)
	article.Sort(result, criteria)

	if len(result) > d.cfg.MaxTotalArticles {
		slog.Info("capping result set", "total", len(result), "cap", d.cfg.MaxTotalArticles)
		result = result[:d.cfg.MaxTotalArticles]
	}

	metrics.Global.AddArticlesProduced(len(result))
	d.cache.Set(key, result, d.cfg.CacheTTL)
	return result
}

// ClearCache drops all memoized results; the next call re-fetches.
func (d *Dashboard) ClearCache() {
	d.cache.Clear()
}

// classifyAll runs the per-entry classification stages concurrently. Entries
// are independent, so a panic classifying one is logged and skipped without
// touching the rest of the batch.
func (d *Dashboard) classifyAll(feeds map[string][]feed.RawEntry) []article.Article {
	type job struct {
		source string
		entry  feed.RawEntry
	}

	var jobs []job
	for source, entries := range feeds {
		for _, entry := range entries {
			jobs = append(jobs, job{source: source, entry: entry})
		}
	}

	articles := make([]article.Article, len(jobs))
	ok := make([]bool, len(jobs))

	workers := d.cfg.FetchWorkers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			defer func() {
				if r := recover(); r != nil {
					slog.Warn("skipping entry after processing failure",
						"source", j.source, "title", j.entry.Title, "error", r)
					metrics.Global.IncrementEntriesSkipped()
				}
			}()

			articles[i] = d.classifyEntry(j.source, j.entry)
			ok[i] = true
			metrics.Global.IncrementEntriesProcessed()
		}(i, j)
	}
	wg.Wait()

	out := make([]article.Article, 0, len(jobs))
	for i := range jobs {
		if ok[i] {
			out = append(out, articles[i])
		}
	}
	return out
}

func (d *Dashboard) classifyEntry(source string, entry feed.RawEntry) article.Article {
	date := time.Now()
	if entry.Published != nil {
		date = *entry.Published
	}

	image := ""
	if len(entry.Images) > 0 {
		image = entry.Images[0]
	}

	if feed.IsPlaceholder(entry) {
		// The unavailability marker carries no real content; give it the
		// minimum classification and let it through.
		return article.Article{
			Title:       entry.Title,
			Link:        entry.Link,
			Date:        date,
			Summary:     entry.Summary,
			Content:     entry.Summary,
			Importance:  1,
			Sentiment:   map[string]float64{sentiment.OverallKey: 0},
			Source:      source,
			Categories:  map[string]int{},
			Placeholder: true,
		}
	}

	content := textproc.CleanHTML(entry.Summary)
	tags := textproc.Tags(content, d.cfg.MaxTags, scoring.ImportanceIndex())

	return article.Article{
		Title:      entry.Title,
		Link:       entry.Link,
		Date:       date,
		Summary:    textproc.Summarize(content, d.cfg.SummarySentences),
		Content:    content,
		Tags:       tags,
		Importance: scoring.RateImportance(content, tags),
		Sentiment:  sentiment.Analyze(content),
		Source:     source,
		ImageURL:   image,
		Categories: scoring.Categorize(content),
	}
}

// Analysis is the transient entity/relationship view of one article,
// recomputed on demand for consumers that render relationship networks.
type Analysis struct {
	Entities      map[ner.Kind][]string
	Relationships []ner.Relationship
	Importance    map[string]float64
}

// AnalyzeContent extracts entities, relationships and entity importance from
// already-cleaned article content.
func AnalyzeContent(content string) Analysis {
	entities := ner.Extract(content)
	rels := ner.Relationships(content, entities)
	return Analysis{
		Entities:      entities,
		Relationships: rels,
		Importance:    ner.Importance(content, entities, rels),
	}
}
