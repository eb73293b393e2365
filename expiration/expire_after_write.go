package expiration

import "time"

/*
ExpireAfterWrite implements the classic fixed-TTL behavior. A value is valid
for TTL after it is written, no matter how often it is read in between.

This matches how sensor readings age: a motor position read 5ms ago is still
useful, the same reading from 5 minutes ago is not, and reading it from the
cache more often does not make it any fresher.
*/
type ExpireAfterWrite struct {

	// TTL defines how long the entry remains valid AFTER it is written.
	// A value is served while its age is strictly below TTL.
	TTL time.Duration
}

// IsExpired checks whether the value is expired at this moment.
// The boundary is inclusive: a value whose age equals TTL is already stale.
func (e *ExpireAfterWrite) IsExpired(insertedAt, now time.Time) bool {
	return now.Sub(insertedAt) >= e.TTL
}
