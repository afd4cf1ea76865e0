package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/tidemark/ipnews/internal/metrics"
	"github.com/tidemark/ipnews/internal/retry"
)

// userAgents is rotated between retry attempts; some feed hosts block a
// client identity after repeated requests.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0",
	"curl/8.7.1",
}

// Fetcher retrieves sources concurrently with per-attempt timeouts and a
// bounded worker pool. A source that stays unreachable yields exactly one
// placeholder entry; callers never see a fetch error.
type Fetcher struct {
	client       *resty.Client
	retryPolicy  retry.Policy
	timeout      time.Duration
	workers      int
	maxPerSource int
}

type FetcherOptions struct {
	RequestTimeout      time.Duration
	MaxRetries          int
	RetryDelay          time.Duration
	Workers             int
	MaxEntriesPerSource int
}

func NewFetcher(opts FetcherOptions) *Fetcher {
	if opts.Workers <= 0 {
		opts.Workers = 6
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.MaxEntriesPerSource <= 0 {
		opts.MaxEntriesPerSource = 10
	}

	return &Fetcher{
		client: resty.New().SetTimeout(opts.RequestTimeout),
		retryPolicy: retry.Policy{
			MaxAttempts: opts.MaxRetries,
			Delay:       opts.RetryDelay,
		},
		timeout:      opts.RequestTimeout,
		workers:      opts.Workers,
		maxPerSource: opts.MaxEntriesPerSource,
	}
}

// FetchAll retrieves every source in parallel and returns source name ->
// entries. Failures are isolated per source: the slow or dead ones never
// block the rest, they just come back as placeholders.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) map[string][]RawEntry {
	results := make(map[string][]RawEntry, len(sources))
	if len(sources) == 0 {
		return results
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, f.workers)
	)

	for _, src := range sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entries := f.fetchSource(ctx, s)

			mu.Lock()
			results[s.Name] = entries
			mu.Unlock()
		}(src)
	}

	wg.Wait()
	return results
}

func (f *Fetcher) fetchSource(ctx context.Context, src Source) []RawEntry {
	var entries []RawEntry

	err := retry.Do(ctx, f.retryPolicy, func(attempt int) error {
		parsed, err := f.fetchOnce(ctx, src, attempt)
		if err != nil {
			return err
		}
		entries = parsed
		return nil
	})
	if err != nil {
		slog.Warn("feed unavailable, emitting placeholder",
			"source", src.Name, "url", src.URL, "error", err)
		metrics.Global.IncrementFeedFailures()
		metrics.Global.IncrementPlaceholdersEmitted()
		return []RawEntry{Placeholder(src, time.Now())}
	}

	metrics.Global.IncrementFeedsFetched()
	slog.Debug("feed fetched", "source", src.Name, "entries", len(entries))
	return entries
}

func (f *Fetcher) fetchOnce(ctx context.Context, src Source, attempt int) ([]RawEntry, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.R().
		SetContext(attemptCtx).
		SetHeader("User-Agent", userAgents[attempt%len(userAgents)]).
		Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src.URL, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("fetching %s: status %d", src.URL, resp.StatusCode())
	}

	// Parser state is not safe to share across goroutines; one per attempt.
	parsed, err := gofeed.NewParser().ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", src.URL, err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("feed %s has no entries", src.URL)
	}

	limit := len(parsed.Items)
	if limit > f.maxPerSource {
		limit = f.maxPerSource
	}
	entries := make([]RawEntry, 0, limit)
	for _, item := range parsed.Items[:limit] {
		entries = append(entries, entryFromItem(item))
	}
	return entries, nil
}
