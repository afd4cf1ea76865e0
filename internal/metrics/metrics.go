package metrics

import (
	"sync"
	"time"
)

// Metrics tracks pipeline counters for the monitoring endpoints.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched        int64
	FeedFailures        int64
	PlaceholdersEmitted int64
	EntriesProcessed    int64
	EntriesSkipped      int64
	ArticlesProduced    int64
	CacheHits           int64
	CacheMisses         int64

	// Timings
	LastProcessingTime    time.Duration
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedFailures++
}

func (m *Metrics) IncrementPlaceholdersEmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlaceholdersEmitted++
}

func (m *Metrics) IncrementEntriesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesProcessed++
}

func (m *Metrics) IncrementEntriesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesSkipped++
}

func (m *Metrics) AddArticlesProduced(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesProduced += int64(n)
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":              m.FeedsFetched,
		"feed_failures":              m.FeedFailures,
		"placeholders_emitted":       m.PlaceholdersEmitted,
		"entries_processed":          m.EntriesProcessed,
		"entries_skipped":            m.EntriesSkipped,
		"articles_produced":          m.ArticlesProduced,
		"cache_hits":                 m.CacheHits,
		"cache_misses":               m.CacheMisses,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
