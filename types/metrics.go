package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call
these methods whenever something happens.

The cache itself keeps no counters and does no logging. If nobody installs a
Metrics implementation, every event goes to NoopMetrics and disappears.
*/
type Metrics interface {

	// Hit is called when a read is answered from memory.
	Hit()

	// Miss is called when a key is not in memory at all.
	Miss()

	// Expire is called when a key is found in memory but its value is too
	// old to serve. The read behaves like a miss.
	Expire()

	// Fetch is called once per batched fetch round-trip, no matter how
	// many keys that round-trip covers.
	Fetch()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Why do we need this?
--------------------
We don't want to force every user of the cache to implement metrics.

If someone does not care about metrics, we still want the cache to work
without:
- nil pointer checks everywhere
- if metrics != nil conditions

So we provide a default implementation that simply ignores all metric events.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}
func (NoopMetrics) Fetch()  {}
