package carteira

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is an adjustable clock for deterministic TTL tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// providerFunc adapts a function to the QuoteProvider interface.
type providerFunc func(ctx context.Context, symbols []string) ([]Quote, error)

func (f providerFunc) FetchQuotes(ctx context.Context, symbols []string) ([]Quote, error) {
	return f(ctx, symbols)
}

func TestQuoteCache_TTLBoundary(t *testing.T) {
	clock := newFakeClock()
	cache := NewQuoteCache(60*time.Second, clock.Now)

	cache.Put("PETR4", Quote{Symbol: "PETR4", Price: newDecimal(30), AsOf: clock.Now()})

	clock.Advance(59 * time.Second)
	if _, ok := cache.Get("PETR4"); !ok {
		t.Error("entry aged 59s must still be served (TTL 60s)")
	}

	clock.Advance(2 * time.Second) // 61s total
	if _, ok := cache.Get("PETR4"); ok {
		t.Error("entry aged 61s must be absent (TTL 60s)")
	}
}

func TestQuoteCache_GetUnknownSymbol(t *testing.T) {
	cache := NewQuoteCache(0, nil)
	if _, ok := cache.Get("NADA3"); ok {
		t.Error("unknown symbol must be absent")
	}
}

func TestQuoteCache_GetOrFetchMany_Partitions(t *testing.T) {
	clock := newFakeClock()
	cache := NewQuoteCache(60*time.Second, clock.Now)
	cache.Put("PETR4", Quote{Symbol: "PETR4", Price: newDecimal(30), AsOf: clock.Now()})

	var fetched []string
	provider := providerFunc(func(_ context.Context, symbols []string) ([]Quote, error) {
		fetched = append(fetched, symbols...)
		quotes := make([]Quote, len(symbols))
		for i, s := range symbols {
			quotes[i] = Quote{Symbol: s, Price: newDecimal(10), AsOf: clock.Now()}
		}
		return quotes, nil
	})

	result := cache.GetOrFetchMany(context.Background(), []string{"PETR4", "VALE3", "HGLG11"}, provider)

	if len(fetched) != 2 {
		t.Fatalf("provider fetched %v, want only the two misses", fetched)
	}
	for _, s := range []string{"PETR4", "VALE3", "HGLG11"} {
		if _, ok := result[s]; !ok {
			t.Errorf("result missing %s", s)
		}
	}
	if !result["PETR4"].Price.Equal(newDecimal(30)) {
		t.Error("fresh cached entry must be served without refetching")
	}
}

func TestQuoteCache_FetchFailureServesCacheOnly(t *testing.T) {
	clock := newFakeClock()
	cache := NewQuoteCache(60*time.Second, clock.Now)
	cache.Put("PETR4", Quote{Symbol: "PETR4", Price: newDecimal(30), AsOf: clock.Now()})

	provider := providerFunc(func(context.Context, []string) ([]Quote, error) {
		return nil, &RateLimitError{Provider: "test"}
	})

	result := cache.GetOrFetchMany(context.Background(), []string{"PETR4", "VALE3"}, provider)

	if len(result) != 1 {
		t.Fatalf("result = %v, want only the cached PETR4", result)
	}
	if _, ok := result["VALE3"]; ok {
		t.Error("failed symbol must be omitted, not faked")
	}
}

func TestQuoteCache_FetchFailureServesExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	cache := NewQuoteCache(60*time.Second, clock.Now)
	cache.Put("PETR4", Quote{Symbol: "PETR4", Price: newDecimal(30), AsOf: clock.Now()})

	// The entry ages past the TTL, so the cache tries a re-fetch...
	clock.Advance(61 * time.Second)

	provider := providerFunc(func(context.Context, []string) ([]Quote, error) {
		return nil, &RateLimitError{Provider: "test"}
	})
	result := cache.GetOrFetchMany(context.Background(), []string{"PETR4", "VALE3"}, provider)

	// ...and when that fails, the expired entry is still the best answer.
	got, ok := result["PETR4"]
	if !ok {
		t.Fatal("expired PETR4 must still be served when the re-fetch fails")
	}
	if !got.Price.Equal(newDecimal(30)) {
		t.Errorf("price = %v, want the last known 30", got.Price)
	}
	if _, ok := result["VALE3"]; ok {
		t.Error("never-cached symbol must stay omitted, not faked")
	}
}

func TestQuoteCache_FetchErrorNeverPropagates(t *testing.T) {
	cache := NewQuoteCache(0, nil)
	provider := providerFunc(func(context.Context, []string) ([]Quote, error) {
		return nil, errors.New("network down")
	})
	// Must not panic and must return an empty, usable map.
	result := cache.GetOrFetchMany(context.Background(), []string{"VALE3"}, provider)
	if len(result) != 0 {
		t.Errorf("result = %v, want empty", result)
	}
}

func TestQuoteCache_CoalescesConcurrentFetches(t *testing.T) {
	cache := NewQuoteCache(60*time.Second, nil)

	var calls atomic.Int32
	release := make(chan struct{})
	provider := providerFunc(func(_ context.Context, symbols []string) ([]Quote, error) {
		calls.Add(1)
		<-release
		quotes := make([]Quote, len(symbols))
		for i, s := range symbols {
			quotes[i] = Quote{Symbol: s, Price: newDecimal(10), AsOf: time.Now()}
		}
		return quotes, nil
	})

	const workers = 8
	var wg, ready sync.WaitGroup
	for range workers {
		wg.Add(1)
		ready.Add(1)
		go func() {
			defer wg.Done()
			ready.Done()
			cache.GetOrFetchMany(context.Background(), []string{"VALE3", "PETR4"}, provider)
		}()
	}

	// Give the goroutines a moment to pile onto the same singleflight key.
	ready.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("provider called %d times for identical concurrent requests, want 1", got)
	}
}

func TestQuoteCache_StaleResultDoesNotOverwriteFresher(t *testing.T) {
	clock := newFakeClock()
	cache := NewQuoteCache(60*time.Second, clock.Now)

	fresh := Quote{Symbol: "PETR4", Price: newDecimal(31), AsOf: clock.Now()}
	cache.Put("PETR4", fresh)

	// A fetch that started earlier finally lands with an older snapshot.
	stale := Quote{Symbol: "PETR4", Price: newDecimal(29), AsOf: clock.Now().Add(-5 * time.Minute)}
	cache.Put("PETR4", stale)

	got, ok := cache.Get("PETR4")
	if !ok {
		t.Fatal("expected a cached quote")
	}
	if !got.Price.Equal(newDecimal(31)) {
		t.Errorf("price = %v, stale result overwrote fresher data", got.Price)
	}
}
