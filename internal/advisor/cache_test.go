package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
	"github.com/couchcryptid/iono-band-advisor/internal/observability"
)

// --- counting provider ---

type countingProvider struct {
	calls int
	adv   domain.Advisory
	err   error
}

func (p *countingProvider) Conditions(_ context.Context, station, _ string) (domain.Advisory, error) {
	p.calls++
	if p.err != nil {
		return domain.Advisory{}, p.err
	}
	adv := p.adv
	adv.Station = station
	return adv, nil
}

func testMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

// --- Cached tests ---

func TestCached_RepeatLookupHits(t *testing.T) {
	inner := &countingProvider{adv: domain.Advisory{Location: "Athens, Greece"}}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	first, err := cached.Conditions(context.Background(), "AT138", "10m")
	require.NoError(t, err)

	second, err := cached.Conditions(context.Background(), "AT138", "10m")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second lookup should be served from cache")
}

func TestCached_DistinctKeysMiss(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	_, _ = cached.Conditions(context.Background(), "EB040", "10m")
	_, _ = cached.Conditions(context.Background(), "AT138", "1h")

	assert.Equal(t, 3, inner.calls)
}

func TestCached_StationKeyIgnoresCase(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	_, _ = cached.Conditions(context.Background(), "at138", "10m")

	assert.Equal(t, 1, inner.calls)
}

func TestCached_LookbackKeyIsCaseSensitive(t *testing.T) {
	// "10m" and "10M" compute different windows and must not share an entry.
	inner := &countingProvider{}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	_, _ = cached.Conditions(context.Background(), "AT138", "10M")

	assert.Equal(t, 2, inner.calls)
}

func TestCached_EntriesExpire(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(now)
	domain.SetClock(fc)
	defer domain.SetClock(nil)

	inner := &countingProvider{}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	fc.Advance(30 * time.Second)
	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	assert.Equal(t, 1, inner.calls, "entry should still be fresh")

	fc.Advance(time.Minute)
	_, _ = cached.Conditions(context.Background(), "AT138", "10m")
	assert.Equal(t, 2, inner.calls, "expired entry should refetch")
}

func TestCached_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("upstream down")}
	cached := NewCached(inner, 10, time.Minute, testMetrics())

	_, err := cached.Conditions(context.Background(), "AT138", "10m")
	require.Error(t, err)

	_, err = cached.Conditions(context.Background(), "AT138", "10m")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls, "failures must reach the provider every time")
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", domain.Advisory{Station: "AT138"})
	c.put("b", domain.Advisory{Station: "EB040"})

	adv, ok := c.get("a", time.Minute)
	assert.True(t, ok)
	assert.Equal(t, "AT138", adv.Station)

	_, ok = c.get("missing", time.Minute)
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.Advisory{Station: "AT138"})
	c.put("b", domain.Advisory{Station: "EB040"})
	c.put("c", domain.Advisory{Station: "SO148"}) // evicts "a"

	_, ok := c.get("a", time.Minute)
	assert.False(t, ok, "a should have been evicted")

	_, ok = c.get("b", time.Minute)
	assert.True(t, ok)
	_, ok = c.get("c", time.Minute)
	assert.True(t, ok)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.Advisory{Station: "AT138"})
	c.put("b", domain.Advisory{Station: "EB040"})

	c.get("a", time.Minute)

	c.put("c", domain.Advisory{Station: "SO148"}) // evicts "b", not the promoted "a"

	_, ok := c.get("a", time.Minute)
	assert.True(t, ok)
	_, ok = c.get("b", time.Minute)
	assert.False(t, ok)
}
