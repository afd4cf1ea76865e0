// Package app holds the run loop of the ipnews command: load config, fetch
// and classify every source, and print the resulting digest.
package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tidemark/ipnews/internal/article"
	"github.com/tidemark/ipnews/internal/cache"
	"github.com/tidemark/ipnews/internal/config"
	"github.com/tidemark/ipnews/internal/dashboard"
	"github.com/tidemark/ipnews/internal/feed"
	"github.com/tidemark/ipnews/internal/logger"
	"github.com/tidemark/ipnews/internal/metrics"
)

// Run executes one aggregation pass and prints the digest to stdout.
func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init()
	cfg := config.Load()

	sources, err := feed.LoadSources(cfg.SourcesPath)
	if err != nil {
		logger.Error("cannot load sources", "path", cfg.SourcesPath, "error", err)
		metrics.Global.SetError(err.Error())
		os.Exit(1)
	}
	logger.Info("sources loaded", "count", len(sources), "path", cfg.SourcesPath)

	store := openCache(cfg)
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	fetcher := feed.NewFetcher(feed.FetcherOptions{
		RequestTimeout:      cfg.RequestTimeout,
		MaxRetries:          cfg.MaxRetries,
		RetryDelay:          cfg.RetryDelay,
		Workers:             cfg.FetchWorkers,
		MaxEntriesPerSource: cfg.MaxEntriesPerSource,
	})

	dash := dashboard.New(cfg, fetcher, store)
	criteria := criteriaFromEnv()

	articles := dash.FetchArticles(context.Background(), sources, criteria)
	logger.Info("aggregation finished", "articles", len(articles))

	printDigest(articles, criteria)
}

func openCache(cfg *config.Config) cache.Cache {
	if cfg.CachePath == "" {
		return cache.NewMemory()
	}

	bolt, err := cache.OpenBolt(cfg.CachePath)
	if err != nil {
		logger.Warn("persistent cache unavailable, using memory", "path", cfg.CachePath, "error", err)
		return cache.NewMemory()
	}
	logger.Info("persistent cache opened", "path", cfg.CachePath)
	return bolt
}

// criteriaFromEnv assembles filter criteria the same way the rest of the
// configuration is read. Unset variables mean no filtering.
func criteriaFromEnv() article.Criteria {
	c := article.Criteria{
		Topic:      os.Getenv("FILTER_TOPIC"),
		Country:    os.Getenv("FILTER_COUNTRY"),
		Sentiment:  article.SentimentFilter(os.Getenv("FILTER_SENTIMENT")),
		SearchTerm: os.Getenv("FILTER_SEARCH"),
		Window:     article.TimeWindow(os.Getenv("FILTER_TIME_WINDOW")),
		SortBy:     article.SortKey(os.Getenv("SORT_BY")),
	}
	if v := os.Getenv("FILTER_MIN_IMPORTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinImportance = n
		}
	}
	return c
}

func printDigest(articles []article.Article, criteria article.Criteria) {
	if len(articles) == 0 {
		fmt.Println("No articles matched the current filters.")
		return
	}

	header := "Indo-Pacific News Digest"
	if criteria.Topic != "" {
		header += " — " + criteria.Topic
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("=", len(header)))

	for _, a := range articles {
		fmt.Printf("\n[%s] %s\n", strings.Repeat("*", a.Importance), a.Title)
		fmt.Printf("    %s | %s\n", a.Source, a.Date.Format("2006-01-02 15:04"))
		if a.Placeholder {
			fmt.Printf("    %s\n", a.Summary)
			continue
		}
		if len(a.Tags) > 0 {
			fmt.Printf("    Tags: %s\n", strings.Join(a.Tags, ", "))
		}
		if len(a.Categories) > 0 {
			fmt.Printf("    Topics: %s\n", formatCategories(a.Categories))
		}
		if len(a.Sentiment) > 0 {
			fmt.Printf("    Sentiment: %s\n", formatSentiment(a.Sentiment))
		}
		if a.Summary != "" {
			fmt.Printf("    %s\n", a.Summary)
		}
		if a.Link != "" {
			fmt.Printf("    %s\n", a.Link)
		}
	}
}

func formatCategories(categories map[string]int) string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%d)", name, categories[name]))
	}
	return strings.Join(parts, ", ")
}

func formatSentiment(scores map[string]float64) string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %+.2f", name, scores[name]))
	}
	return strings.Join(parts, ", ")
}
