package carteira

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultQuoteTTL is how long a cached quote is trusted for valuation.
const DefaultQuoteTTL = 60 * time.Second

// QuoteCache is a time-bounded cache of last-known quotes per symbol. It
// batches cache misses into a single provider call and coalesces concurrent
// overlapping requests so one symbol set is never fetched twice in parallel.
//
// The clock is injected so expiry is deterministic under test.
type QuoteCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry

	group singleflight.Group
}

type cacheEntry struct {
	quote      Quote
	insertedAt time.Time
}

// NewQuoteCache creates a cache with the given TTL. A zero ttl means
// DefaultQuoteTTL. A nil clock means time.Now.
func NewQuoteCache(ttl time.Duration, clock func() time.Time) *QuoteCache {
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &QuoteCache{
		ttl:     ttl,
		now:     clock,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached quote for symbol, or false if the symbol is unknown
// or its entry has aged past the TTL. An expired entry stays in place until
// a fresher one overwrites it: it is still worth serving when a re-fetch
// fails.
func (c *QuoteCache) Get(symbol string) (Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[symbol]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		return Quote{}, false
	}
	return e.quote, true
}

// Put stores a quote unless a fresher one is already cached. The guard keeps
// a stale fetch that completes after being superseded from overwriting newer
// data.
func (c *QuoteCache) Put(symbol string, q Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[symbol]; ok && e.quote.AsOf.After(q.AsOf) {
		return
	}
	c.entries[symbol] = cacheEntry{quote: q, insertedAt: c.now()}
}

// getAny returns the cached quote for symbol regardless of age.
func (c *QuoteCache) getAny(symbol string) (Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[symbol]
	return e.quote, ok
}

// GetOrFetchMany returns a quote per requested symbol, serving fresh entries
// from the cache and batching the rest into one provider call. It never
// returns an error: on a failed or throttled fetch it degrades to whatever
// the cache still holds, expired entries included, and only symbols never
// cached at all are omitted. The most recently completed fetch wins per
// symbol.
func (c *QuoteCache) GetOrFetchMany(ctx context.Context, symbols []string, provider QuoteProvider) map[string]Quote {
	result := make(map[string]Quote, len(symbols))
	var missing []string
	for _, s := range symbols {
		if _, dup := result[s]; dup {
			continue
		}
		if q, ok := c.Get(s); ok {
			result[s] = q
		} else {
			missing = append(missing, s)
		}
	}
	if len(missing) == 0 || provider == nil {
		return result
	}

	// Coalesce by the sorted symbol set: overlapping concurrent calls for
	// the same set share one network call.
	sort.Strings(missing)
	key := strings.Join(missing, ",")
	fetched, err, _ := c.group.Do(key, func() (any, error) {
		return provider.FetchQuotes(ctx, missing)
	})
	if err != nil {
		// Degrade gracefully: rate limits and network failures are soft,
		// and an expired entry beats no entry for the symbols this fetch
		// was meant to replace.
		log.Printf("quote fetch failed for %d symbol(s), serving cache only: %v", len(missing), err)
		for _, s := range missing {
			if q, ok := c.getAny(s); ok {
				result[s] = q
			}
		}
		return result
	}

	for _, q := range fetched.([]Quote) {
		c.Put(q.Symbol, q)
		// Serve what the cache retained, so a superseded stale fetch does
		// not leak into the result either.
		if cached, ok := c.Get(q.Symbol); ok {
			result[q.Symbol] = cached
		}
	}
	return result
}
