package types

/*
BatchFetcher is the contract between the cache and the data source.

It is called when a batched read finds keys that are not in memory (or whose
values are too old to serve). The cache asks the fetcher for ALL of those
keys in one call, which is the whole point of this library:

 1. Caller asks the cache for a set of keys
 2. Cache checks memory and finds some keys missing or expired
 3. Cache calls FetchBatch once with exactly those keys
 4. Fetcher does one round-trip (serial bus, network, DB, ...)
 5. Cache stores the fresh values and answers the caller

The typical implementation talks to hardware, where one message on a shared
bus can read a register from many devices at once.
*/
type BatchFetcher[K comparable, V any] interface {

	/*
		FetchBatch returns one fresh value per requested key, in the same
		order as keys. Returning a different number of values is a contract
		violation and the cache will refuse the whole result.

		An error means the entire round-trip failed. The cache stores
		nothing in that case and hands the error back to the caller
		unchanged. Retries, timeouts and cancellation are the fetcher's
		own business.
	*/
	FetchBatch(keys []K) ([]V, error)
}

// FetcherFunc adapts a plain function to the BatchFetcher interface,
// so callers can pass a closure instead of defining a type.
type FetcherFunc[K comparable, V any] func(keys []K) ([]V, error)

// FetchBatch calls f.
func (f FetcherFunc[K, V]) FetchBatch(keys []K) ([]V, error) {
	return f(keys)
}
