package advisor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/couchcryptid/iono-band-advisor/internal/observability"
)

// Cached wraps a ConditionsProvider with a bounded in-memory LRU cache whose
// entries expire after a TTL, so bursts of identical conditions requests
// reuse one upstream fetch instead of hammering DIAS.
type Cached struct {
	inner   ConditionsProvider
	ttl     time.Duration
	metrics *observability.Metrics
	cache   *lruCache
}

// NewCached creates the cache decorator.
func NewCached(inner ConditionsProvider, maxEntries int, ttl time.Duration, metrics *observability.Metrics) *Cached {
	return &Cached{
		inner:   inner,
		ttl:     ttl,
		metrics: metrics,
		cache:   newLRUCache(maxEntries),
	}
}

// Conditions returns a cached advisory when a fresh one exists for the
// station and lookback, delegating to the inner provider otherwise. Errors
// are never cached, so a failed fetch can be retried by the next request.
func (c *Cached) Conditions(ctx context.Context, station, lookback string) (domain.Advisory, error) {
	// Station matching is case-insensitive downstream; lookback is not
	// ("10m" and "10M" produce different windows).
	key := strings.ToUpper(station) + "|" + lookback

	if adv, ok := c.cache.get(key, c.ttl); ok {
		c.metrics.ConditionsCache.WithLabelValues("hit").Inc()
		return adv, nil
	}
	c.metrics.ConditionsCache.WithLabelValues("miss").Inc()

	adv, err := c.inner.Conditions(ctx, station, lookback)
	if err != nil {
		return adv, err
	}
	c.cache.put(key, adv)
	return adv, nil
}

// lruCache is a thread-safe LRU cache of advisories with per-entry ages.
// Freshness is judged against the domain clock, so tests can expire entries
// by advancing a fake clock.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key      string
	value    domain.Advisory
	storedAt time.Time
	prev     *entry
	next     *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string, ttl time.Duration) (domain.Advisory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Advisory{}, false
	}
	if domain.Now().Sub(e.storedAt) >= ttl {
		delete(c.entries, e.key)
		c.remove(e)
		return domain.Advisory{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Advisory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.storedAt = domain.Now()
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, storedAt: domain.Now()}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
