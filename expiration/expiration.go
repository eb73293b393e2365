// This file defines how cache entries expire over time.

package expiration

import "time"

/*
Strategy is the interface that all expiration rules must follow. Instead of
hard-coding expiration logic into the cache, we define a strategy so
expiration behavior can be swapped easily.

A strategy only answers a question. It never mutates anything, because the
cache promises that reads have no side effects.
*/
type Strategy interface {

	// IsExpired reports whether a value inserted at insertedAt is too old
	// to serve at now.
	IsExpired(insertedAt, now time.Time) bool
}
