// Package feed fetches RSS/Atom sources concurrently and normalizes their
// items into RawEntry values for the classification pipeline.
package feed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

// Source identifies one configured feed endpoint.
type Source struct {
	URL      string `yaml:"url"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the source registry from a YAML file.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sources config: %w", err)
	}
	defer f.Close()

	var cfg sourcesFile
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing sources config: %w", err)
	}
	return cfg.Sources, nil
}

// RawEntry is a single fetched feed item before normalization. It lives only
// until the classifier consumes it.
type RawEntry struct {
	Title     string
	Link      string
	Summary   string // raw HTML or plain text, cleaned downstream
	Published *time.Time
	Images    []string // candidate image URLs, best first
}

// PlaceholderTitlePrefix marks the synthetic entry emitted when a source is
// unreachable; the pipeline gives such entries a minimal pass-through.
const PlaceholderTitlePrefix = "Unable to fetch content from "

// Placeholder builds the single synthetic entry substituted for a dead source.
func Placeholder(src Source, now time.Time) RawEntry {
	return RawEntry{
		Title:     PlaceholderTitlePrefix + src.Name,
		Link:      src.URL,
		Summary:   fmt.Sprintf("The feed at %s could not be reached. The source may be temporarily unavailable.", src.URL),
		Published: &now,
	}
}

// IsPlaceholder reports whether an entry is the unavailability marker.
func IsPlaceholder(e RawEntry) bool {
	return strings.HasPrefix(e.Title, PlaceholderTitlePrefix)
}

// entryFromItem converts one gofeed item, hunting for a usable image in the
// item image, enclosures and embedded markup, in that order.
func entryFromItem(item *gofeed.Item) RawEntry {
	title := item.Title
	if title == "" {
		title = "No Title"
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	published := item.PublishedParsed
	if published == nil {
		published = item.UpdatedParsed
	}

	return RawEntry{
		Title:     title,
		Link:      item.Link,
		Summary:   summary,
		Published: published,
		Images:    candidateImages(item),
	}
}

func candidateImages(item *gofeed.Item) []string {
	var images []string

	if item.Image != nil && item.Image.URL != "" {
		images = append(images, item.Image.URL)
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			images = append(images, enc.URL)
		}
	}
	if len(images) == 0 {
		if src := firstEmbeddedImage(item.Content); src != "" {
			images = append(images, src)
		} else if src := firstEmbeddedImage(item.Description); src != "" {
			images = append(images, src)
		}
	}
	return images
}

func firstEmbeddedImage(html string) string {
	if !strings.Contains(html, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}
