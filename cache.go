package cache

import (
	"time"

	"github.com/krisalay/batch-cache/expiration"
	"github.com/krisalay/batch-cache/types"
)

/*
Cache is the main cache implementation.

It keeps previously fetched values in memory so that callers can avoid
repeating IO that is expensive or can fail, typically register reads from
daisy-chained hardware over a shared serial bus.

This struct is the orchestrator that connects:
- the in-memory store
- expiration
- batched fetching
- metrics

CONCURRENCY:
------------
Cache is single-threaded on purpose. Every operation, including a
user-supplied fetch callback, runs to completion before returning. There are
no internal locks and no background goroutines. Callers that share a Cache
across goroutines must add their own synchronization around it.

EXPIRATION:
-----------
Expiration is lazy. An expired entry stays in the map until it is overwritten
by a later insert or removed explicitly; reads simply treat it as absent.
*/
type Cache[K comparable, V any] struct {

	// store holds the actual key -> entry data.
	store map[K]types.CacheEntry[V]

	// expiration decides when an entry is too old to serve.
	// nil means entries never expire.
	expiration expiration.Strategy

	// metrics is how we keep track of what the cache is doing.
	// Hits, misses, expirations and fetch round-trips.
	metrics types.Metrics
}

/*
New creates an empty Cache where the last inserted value is kept forever,
until it is overwritten or removed.
*/
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		store:   make(map[K]types.CacheEntry[V]),
		metrics: types.NoopMetrics{},
	}
}

/*
WithExpiryDuration creates an empty Cache with an expiry duration.
Each inserted value is served while its age is below d and treated as absent
once its age reaches d.
*/
func WithExpiryDuration[K comparable, V any](d time.Duration) *Cache[K, V] {
	c := New[K, V]()
	c.expiration = &expiration.ExpireAfterWrite{TTL: d}
	return c
}

/*
WithMetrics installs a Metrics implementation and returns the same cache, so
it can be chained onto the constructor.

Passing nil restores the default no-op implementation. This keeps the rest of
the code free of nil checks.
*/
func (c *Cache[K, V]) WithMetrics(m types.Metrics) *Cache[K, V] {
	if m == nil {
		m = types.NoopMetrics{}
	}
	c.metrics = m
	return c
}

// isLive reports whether an entry may still be served at now.
func (c *Cache[K, V]) isLive(ent types.CacheEntry[V], now time.Time) bool {
	return c.expiration == nil || !c.expiration.IsExpired(ent.InsertedAt, now)
}

/*
Insert stores a key-value pair in the cache.

The entry's timestamp is always set to the current time, so the value is
live from this point even if the key held an expired entry before.

If the cache had this key, the previous value (expired or not) is returned
together with true.
*/
func (c *Cache[K, V]) Insert(key K, value V) (V, bool) {
	prev, existed := c.store[key]
	c.store[key] = types.CacheEntry[V]{Value: value, InsertedAt: time.Now()}
	return prev.Value, existed
}

/*
Get retrieves the value for key if it is present and not expired.

Get never mutates the cache. In particular it does NOT purge an expired
entry; the entry stays in the map and simply stops being visible.
*/
func (c *Cache[K, V]) Get(key K) (V, bool) {
	ent, ok := c.store[key]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}

	if !c.isLive(ent, time.Now()) {
		c.metrics.Expire()
		var zero V
		return zero, false
	}

	c.metrics.Hit()
	return ent.Value, true
}

/*
Update applies f to the stored value in place, if the key is live.

It reports whether f ran. The entry's timestamp is NOT refreshed: updating a
value does not make it younger, only Insert does.

This is the closest Go equivalent of handing out a mutable reference into
the cache.
*/
func (c *Cache[K, V]) Update(key K, f func(*V)) bool {
	ent, ok := c.store[key]
	if !ok || !c.isLive(ent, time.Now()) {
		return false
	}

	f(&ent.Value)
	c.store[key] = ent
	return true
}

/*
Remove deletes a key from the cache immediately and returns its value.

The value is returned even if it has already expired, because the caller
asked for physical removal, not a read.

This operation is idempotent: removing a non-existing key is safe.
*/
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	ent, ok := c.store[key]
	if !ok {
		var zero V
		return zero, false
	}

	delete(c.store, key)
	return ent.Value, true
}

/*
Len returns the number of entries physically present in the map.

Because expiration is lazy, this count includes entries that are already
expired but have not been overwritten or removed yet.
*/
func (c *Cache[K, V]) Len() int {
	return len(c.store)
}

/*
Entries begins a batched read for the given keys.

The requested order is kept, duplicates included. Nothing is fetched and
nothing is mutated until one of the Or* methods on the returned request is
called.
*/
func (c *Cache[K, V]) Entries(keys []K) *EntriesRequest[K, V] {
	return &EntriesRequest[K, V]{cache: c, keys: keys}
}

/*
Entry gives a view on a single key, for the common "use the cached value or
get a fresh one" pattern without building a one-element batch.
*/
func (c *Cache[K, V]) Entry(key K) *Entry[K, V] {
	return &Entry[K, V]{cache: c, key: key}
}
