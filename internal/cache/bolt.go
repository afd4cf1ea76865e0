package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/tidemark/ipnews/internal/article"
)

var articlesBucket = []byte("articles")

type boltEntry struct {
	ExpiresAt time.Time         `json:"expires_at"`
	Articles  []article.Article `json:"articles"`
}

// Bolt persists cache entries across restarts in a bbolt file. It satisfies
// the same Cache interface as Memory, so callers never know the difference.
type Bolt struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache db %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(articlesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) ([]article.Article, bool) {
	var entry boltEntry
	found := false

	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(articlesBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		// Lazy eviction; a failed delete only means one more miss later.
		if err := b.delete(key); err != nil {
			slog.Warn("cache eviction failed", "key", key, "error", err)
		}
		return nil, false
	}
	return entry.Articles, true
}

func (b *Bolt) Set(key string, value []article.Article, ttl time.Duration) {
	raw, err := json.Marshal(boltEntry{
		ExpiresAt: time.Now().Add(ttl),
		Articles:  value,
	})
	if err != nil {
		slog.Warn("cache encode failed", "key", key, "error", err)
		return
	}

	err = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(articlesBucket).Put([]byte(key), raw)
	})
	if err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

func (b *Bolt) Clear() {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(articlesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(articlesBucket)
		return err
	})
	if err != nil {
		slog.Warn("cache clear failed", "error", err)
	}
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) delete(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(articlesBucket).Delete([]byte(key))
	})
}
