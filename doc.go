// Package cache implements a single-process, in-memory key-value cache for
// values that are expensive or unreliable to fetch fresh, such as hardware
// register reads over a shared bus.
//
// Goals for this package:
//   - Serve previously fetched values while they are young enough to trust
//     (optional fixed expiry, lazily enforced on reads)
//   - When a set of keys is requested, fetch ONLY the missing or expired
//     subset, in one batched callback per request
//   - Keep failures clean: a failed fetch changes nothing in the cache and
//     reaches the caller unchanged
//   - Stay single-threaded and synchronous; callers that share a cache
//     across goroutines bring their own locking
package cache
