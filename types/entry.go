package types

import "time"

/*
CacheEntry is one cached value together with the moment it was stored.

InsertedAt is taken from time.Now() at insertion, which in Go carries a
monotonic clock reading. Age comparisons therefore keep working even if the
wall clock jumps (NTP adjustments, suspend/resume, manual changes).
*/
type CacheEntry[V any] struct {
	Value      V
	InsertedAt time.Time
}
