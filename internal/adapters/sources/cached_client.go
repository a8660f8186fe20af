package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/platform/cache"
)

// cachedPayload is the raw source response kept alongside its fetch time so
// freshness is decided here, not by cache expiry.
type cachedPayload struct {
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// CachedClient wraps a source client with a response cache. A fetch within
// ttl of the previous one is answered from the cache without touching the
// upstream; when the upstream fails, the last cached response is served
// regardless of age so one flaky provider does not blank out its rates.
// Entries are stored without cache-side expiry for that reason.
type CachedClient struct {
	inner  services.RateSourceClient
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewCachedClient wraps inner with a response cache honoring ttl.
func NewCachedClient(inner services.RateSourceClient, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("source", inner.Name()),
		now:    time.Now,
	}
}

func (c *CachedClient) Name() string { return c.inner.Name() }
func (c *CachedClient) Kind() string { return c.inner.Kind() }

func (c *CachedClient) cacheKey() string {
	return "source_response:" + c.inner.Name()
}

// FetchRates returns cached rates while they are fresh, refetches otherwise,
// and falls back to the stale cache entry if the refetch fails. force skips
// the freshness check but never the stale fallback.
func (c *CachedClient) FetchRates(ctx context.Context, force bool) (map[string]float64, error) {
	cached, cacheErr := cache.GetTyped[cachedPayload](ctx, c.cache, c.cacheKey())
	haveCached := cacheErr == nil && len(cached.Rates) > 0

	if haveCached && !force && c.now().Sub(cached.FetchedAt) < c.ttl {
		c.logger.DebugContext(ctx, "serving source response from cache", "age", c.now().Sub(cached.FetchedAt).String())
		return cached.Rates, nil
	}

	rates, err := c.inner.FetchRates(ctx, force)
	if err != nil {
		if haveCached {
			c.logger.WarnContext(ctx, "source fetch failed, serving stale cached response",
				"error", err, "fetched_at", cached.FetchedAt)
			return cached.Rates, nil
		}
		return nil, err
	}

	payload := cachedPayload{Rates: rates, FetchedAt: c.now()}
	if err := cache.SetTyped(ctx, c.cache, c.cacheKey(), payload, 0); err != nil {
		c.logger.WarnContext(ctx, "failed to cache source response", "error", err)
	}
	return rates, nil
}
