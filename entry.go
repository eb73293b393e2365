package cache

/*
Entry is a view on a single key in the cache, created by Cache.Entry.

It covers the "give me the cached value or get a fresh one" pattern for one
key, without building a one-element batch. The resolution rules are the same
as for reads: a present, non-expired value is served from memory, anything
else is produced by the caller and inserted.
*/
type Entry[K comparable, V any] struct {
	cache *Cache[K, V]
	key   K
}

// Key returns the key this view points at.
func (e *Entry[K, V]) Key() K {
	return e.key
}

/*
OrInsert returns the live value for the key, inserting def first if the key
is missing or expired.
*/
func (e *Entry[K, V]) OrInsert(def V) V {
	if v, ok := e.cache.Get(e.key); ok {
		return v
	}
	e.cache.Insert(e.key, def)
	return def
}

/*
OrInsertWith returns the live value for the key, calling f to produce one if
the key is missing or expired.

f receives the key, which keeps IO callbacks simple: the same function can
serve any key without capturing it.

f is not called when the key is live.
*/
func (e *Entry[K, V]) OrInsertWith(f func(K) V) V {
	if v, ok := e.cache.Get(e.key); ok {
		return v
	}
	v := f(e.key)
	e.cache.Insert(e.key, v)
	return v
}

/*
OrTryInsertWith returns the live value for the key, calling f to produce one
if the key is missing or expired.

If f fails, its error is returned unchanged and the cache is not touched.
f is not called when the key is live.
*/
func (e *Entry[K, V]) OrTryInsertWith(f func(K) (V, error)) (V, error) {
	if v, ok := e.cache.Get(e.key); ok {
		return v, nil
	}

	v, err := f(e.key)
	if err != nil {
		var zero V
		return zero, err
	}

	e.cache.Insert(e.key, v)
	return v, nil
}
