package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/dates"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/metrics"
)

// DefaultTTL is how long a cached forecast day counts as fresh.
const DefaultTTL = 3 * time.Hour

// Cache serves day forecasts for a coordinate, fetching from the upstream
// provider only for dates that are missing or older than the TTL.
//
// Keys round the coordinate to two decimal places (~1 km) so nearby
// requests share entries. There is no locking around the fetch: two
// concurrent misses for the same key both fetch and both write, an
// idempotent race the store tolerates.
type Cache struct {
	provider Provider
	store    store
	ttl      time.Duration
	now      func() time.Time
}

// NewCache builds a Cache over the given provider and store.
// A non-positive ttl falls back to DefaultTTL.
func NewCache(provider Provider, s store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{provider: provider, store: s, ttl: ttl, now: time.Now}
}

// Forecast returns the forecasts for the requested dates at coord, keyed by
// day key. Dates with no fresh cache entry trigger a single upstream fetch
// covering all of them; every returned day is cached. If the fetch fails,
// stale cache entries cover what they can and the rest are absent — a date
// missing from the result means "unknown", never an error.
func (c *Cache) Forecast(ctx context.Context, coord domain.LatLng, days []time.Time) (map[string]Forecast, error) {
	out := make(map[string]Forecast, len(days))

	var missing []string
	for _, d := range days {
		key := dates.DayKey(d)
		e, err := c.store.Get(ctx, c.cacheKey(coord, key))
		if err == nil && c.fresh(e) {
			metrics.WeatherCacheHits.Inc()
			out[key] = e.Forecast
			continue
		}
		metrics.WeatherCacheMisses.Inc()
		missing = append(missing, key)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := c.provider.FetchForecast(ctx, coord)
	if err != nil {
		// Upstream down: serve whatever stale entries exist for the
		// still-missing dates instead of failing the whole request.
		slog.WarnContext(ctx, "weather fetch failed, serving stale cache", "error", err)
		for _, key := range missing {
			if e, serr := c.store.Get(ctx, c.cacheKey(coord, key)); serr == nil {
				metrics.WeatherStaleServed.Inc()
				out[key] = e.Forecast
			}
		}
		return out, nil
	}

	// Cache every returned day, not just the requested ones; the next
	// request for a nearby date becomes a hit.
	now := c.now()
	for key, f := range fetched {
		if err := c.store.Set(ctx, c.cacheKey(coord, key), entry{Forecast: f, FetchedAt: now}); err != nil {
			slog.WarnContext(ctx, "weather cache write failed", "key", key, "error", err)
		}
	}

	for _, key := range missing {
		if f, ok := fetched[key]; ok {
			out[key] = f
		}
		// Dates beyond the forecast horizon stay absent.
	}
	return out, nil
}

func (c *Cache) fresh(e entry) bool {
	return c.now().Sub(e.FetchedAt) < c.ttl
}

// cacheKey rounds the coordinate to two decimals so nearby lookups share
// cache entries.
func (c *Cache) cacheKey(coord domain.LatLng, dayKey string) string {
	return fmt.Sprintf("wx:%.2f:%.2f:%s", coord.Lat, coord.Lng, dayKey)
}
