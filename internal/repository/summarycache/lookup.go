// Package summarycache caches encyclopedia summaries in a key-value store.
package summarycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askbot/internal/db"
	"github.com/kailas-cloud/askbot/internal/domain"
)

const cacheKeyPrefix = "askbot:summary:"

// Lookup is the decorated summary source.
type Lookup interface {
	Summary(ctx context.Context, title string) (string, error)
}

// store is the consumer interface for the summary cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// entry is the cached value. Missing articles are cached too so repeated misses stay local.
type entry struct {
	Summary string `json:"summary"`
	Found   bool   `json:"found"`
}

// CachedLookup caches summaries and not-found answers. Lookup errors are never cached.
type CachedLookup struct {
	inner      Lookup
	store      store
	ttl        time.Duration
	namespace  string
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// namespace separates caches of different encyclopedia editions (e.g. the language code).
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Lookup,
	s store,
	ttl time.Duration,
	namespace string,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedLookup {
	return &CachedLookup{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		namespace:  namespace,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Summary returns a cached summary or calls the inner lookup.
func (c *CachedLookup) Summary(ctx context.Context, title string) (string, error) {
	key := c.cacheKey(title)

	if e, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		if !e.Found {
			return "", domain.ErrArticleNotFound
		}
		return e.Summary, nil
	}

	c.incCache("miss")

	summary, err := c.inner.Summary(ctx, title)
	switch {
	case err == nil:
		c.putToCache(ctx, key, entry{Summary: summary, Found: true})
		return summary, nil
	case errors.Is(err, domain.ErrArticleNotFound):
		c.putToCache(ctx, key, entry{})
		return "", err
	default:
		return "", fmt.Errorf("lookup summary: %w", err)
	}
}

func (c *CachedLookup) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey is case-insensitive: titles differing only in case share an entry.
func (c *CachedLookup) cacheKey(title string) string {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(title))))
	return cacheKeyPrefix + c.namespace + ":" + hex.EncodeToString(h[:])
}

func (c *CachedLookup) getFromCache(ctx context.Context, key string) (entry, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached summary", zap.String("key", key), zap.Error(err))
		}
		return entry{}, false
	}
	if len(data) == 0 {
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("Failed to parse cached summary", zap.String("key", key), zap.Error(err))
		// Evict so the entry does not outlive a failing lookup, which is never cached.
		if err := c.store.Del(ctx, key); err != nil {
			c.logger.Warn("Failed to evict cached summary", zap.String("key", key), zap.Error(err))
		}
		return entry{}, false
	}
	return e, true
}

func (c *CachedLookup) putToCache(ctx context.Context, key string, e entry) {
	data, err := json.Marshal(e)
	if err != nil {
		c.logger.Warn("Failed to encode summary", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache summary", zap.String("key", key), zap.Error(err))
	}
}
