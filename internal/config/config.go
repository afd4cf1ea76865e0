// Package config loads pipeline tunables from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Feed settings
	SourcesPath         string
	RequestTimeout      time.Duration
	MaxRetries          int
	RetryDelay          time.Duration
	FetchWorkers        int
	MaxEntriesPerSource int

	// Classification settings
	MaxTags          int
	SummarySentences int
	MaxTotalArticles int

	// Cache settings
	CacheTTL  time.Duration
	CachePath string // when set, articles are cached on disk instead of memory

	// App settings
	Debug bool
}

func Load() *Config {
	cfg := &Config{
		SourcesPath:         "configs/sources.yaml",
		RequestTimeout:      10 * time.Second,
		MaxRetries:          3,
		RetryDelay:          1 * time.Second,
		FetchWorkers:        6,
		MaxEntriesPerSource: 10,
		MaxTags:             5,
		SummarySentences:    3,
		MaxTotalArticles:    50,
		CacheTTL:            2 * time.Hour,
	}

	cfg.SourcesPath = getEnvOrDefault("SOURCES_CONFIG_PATH", cfg.SourcesPath)
	cfg.CachePath = os.Getenv("CACHE_DB_PATH")

	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("MAX_RETRIES", 0); v > 0 {
		cfg.MaxRetries = v
	}
	if v := getEnvIntOrDefault("RETRY_DELAY_SECONDS", 0); v > 0 {
		cfg.RetryDelay = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("FETCH_WORKERS", 0); v > 0 {
		cfg.FetchWorkers = v
	}
	if v := getEnvIntOrDefault("MAX_ENTRIES_PER_SOURCE", 0); v > 0 {
		cfg.MaxEntriesPerSource = v
	}
	if v := getEnvIntOrDefault("MAX_TAGS", 0); v > 0 {
		cfg.MaxTags = v
	}
	if v := getEnvIntOrDefault("SUMMARY_SENTENCES", 0); v > 0 {
		cfg.SummarySentences = v
	}
	if v := getEnvIntOrDefault("MAX_TOTAL_ARTICLES", 0); v > 0 {
		cfg.MaxTotalArticles = v
	}
	if v := getEnvIntOrDefault("CACHE_TTL_SECONDS", 0); v > 0 {
		cfg.CacheTTL = time.Duration(v) * time.Second
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
