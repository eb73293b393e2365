package cache

import (
	"fmt"

	"github.com/krisalay/batch-cache/types"
)

/*
EntriesRequest is a batched read in progress, created by Cache.Entries.

It reconciles a partially-cached, partially-missing key set with a single
fetch call:

 1. Walk the requested keys in order
 2. Keys that are live in memory are answered from memory
 3. The rest form the "missing set": first-occurrence order, one entry per
    distinct key even if the caller requested it several times
 4. If the missing set is non-empty, the fetch callback runs exactly once
    with that set
 5. Fresh values are inserted and the result is assembled back in the
    original requested order, duplicates included

Duplicated missing keys collapse to ONE slot in the fetch call. Asking the
bus twice for the same register in the same round-trip would be exactly the
redundant IO this cache exists to avoid; the duplicate positions in the
result are filled by lookup instead.
*/
type EntriesRequest[K comparable, V any] struct {
	cache *Cache[K, V]
	keys  []K
}

/*
reconcile is the step shared by every Or* method below.

It resolves the request against memory, calls fetch at most once for the
missing set, inserts what came back and assembles the final value slice.

On fetch error nothing is inserted: either the whole missing set becomes
live, or the cache is left exactly as it was.
*/
func (r *EntriesRequest[K, V]) reconcile(fetch func(missing []K) ([]V, error)) ([]V, error) {
	values := make(map[K]V, len(r.keys))
	pending := make(map[K]struct{})
	var missing []K

	for _, k := range r.keys {
		if _, ok := values[k]; ok {
			continue
		}
		if _, ok := pending[k]; ok {
			continue
		}
		if v, ok := r.cache.Get(k); ok {
			values[k] = v
		} else {
			pending[k] = struct{}{}
			missing = append(missing, k)
		}
	}

	if len(missing) > 0 {
		r.cache.metrics.Fetch()

		fetched, err := fetch(missing)
		if err != nil {
			return nil, err
		}
		if len(fetched) != len(missing) {
			return nil, fmt.Errorf("%w: got %d values for %d keys", ErrBatchSize, len(fetched), len(missing))
		}

		for i, k := range missing {
			r.cache.Insert(k, fetched[i])
			values[k] = fetched[i]
		}
	}

	// Assemble in the requested order. Every key is in values by now:
	// it was either live during the scan or just fetched.
	out := make([]V, len(r.keys))
	for i, k := range r.keys {
		out[i] = values[k]
	}
	return out, nil
}

/*
OrInsert ensures every requested key holds a value by inserting def for the
keys that are missing or expired, and returns one value per requested key in
the requested order.

No fetch is involved; this is the batched counterpart of a plain default.
*/
func (r *EntriesRequest[K, V]) OrInsert(def V) []V {
	out := make([]V, len(r.keys))
	for i, k := range r.keys {
		if v, ok := r.cache.Get(k); ok {
			out[i] = v
		} else {
			r.cache.Insert(k, def)
			out[i] = def
		}
	}
	return out
}

/*
OrInsertWith resolves the request with a fetch function that cannot fail.

fetch is called exactly once with the missing set, or not at all when every
requested key is live. It must return exactly one value per missing key, in
the same order. Because this variant has no error path to report a broken
fetch through, a wrong value count panics; use OrTryInsertWith when the
fetch is allowed to misbehave.

The returned slice has one value per requested key, in the requested order.
*/
func (r *EntriesRequest[K, V]) OrInsertWith(fetch func(missing []K) []V) []V {
	out, err := r.reconcile(func(missing []K) ([]V, error) {
		return fetch(missing), nil
	})
	if err != nil {
		// Only ErrBatchSize can reach this point.
		panic(err)
	}
	return out
}

/*
OrTryInsertWith resolves the request with a fetch function that may fail.

fetch is called exactly once with the missing set, or not at all when every
requested key is live. Its error is returned unchanged and in that case the
cache is not touched: no value is inserted and previously live entries are
left alone.

A successful fetch must return exactly one value per missing key, in the
same order. Any other count is reported as ErrBatchSize, again without
touching the cache.

On success the returned slice has one value per requested key, in the
requested order, mixing previously cached and freshly fetched values.
*/
func (r *EntriesRequest[K, V]) OrTryInsertWith(fetch func(missing []K) ([]V, error)) ([]V, error) {
	return r.reconcile(fetch)
}

/*
OrFetch resolves the request against a BatchFetcher implementation.

It behaves exactly like OrTryInsertWith; it only spares callers that already
have a fetcher object from wrapping it in a closure.
*/
func (r *EntriesRequest[K, V]) OrFetch(f types.BatchFetcher[K, V]) ([]V, error) {
	return r.reconcile(f.FetchBatch)
}
