package main

import (
	"errors"
	"fmt"
	"time"

	cache "github.com/krisalay/batch-cache"
)

// ================= FAKE MOTOR BUS =================
//
// Simulates a daisy chain of motors on a shared serial bus. One message on
// the bus can read the same register from several motors at once, so one
// round-trip serves any number of ids.

type MotorBus struct {
	roundTrips int
	broken     bool
}

func (b *MotorBus) FetchBatch(ids []uint8) ([]float64, error) {
	if b.broken {
		return nil, errors.New("bus: no response from chain")
	}

	b.roundTrips++
	fmt.Println("BUS    → read positions for ids:", ids)

	// Pretend the wire is slow.
	time.Sleep(2 * time.Millisecond)

	positions := make([]float64, len(ids))
	for i, id := range ids {
		positions[i] = float64(id) * 10.0
	}
	return positions, nil
}

// ================= METRICS =================

type Metrics struct {
	hits    int
	misses  int
	expires int
	fetches int
}

func (m *Metrics) Hit()    { m.hits++ }
func (m *Metrics) Miss()   { m.misses++ }
func (m *Metrics) Expire() { m.expires++ }
func (m *Metrics) Fetch()  { m.fetches++ }

func (m *Metrics) String() string {
	return fmt.Sprintf("hits=%d misses=%d expires=%d fetches=%d",
		m.hits, m.misses, m.expires, m.fetches)
}

// ================= DEMO =================

func main() {
	bus := &MotorBus{}
	metrics := &Metrics{}

	// Positions are trusted for 10ms, then re-read from the bus.
	positions := cache.WithExpiryDuration[uint8, float64](10 * time.Millisecond).
		WithMetrics(metrics)

	fmt.Println("\n========= BATCHED READS =========")

	// Motor 10 was already read through some earlier code path.
	positions.Insert(10, 0.0)

	// First batched read: 10 comes from memory, 11 and 12 from the bus.
	pos, err := positions.Entries([]uint8{10, 11, 12}).OrFetch(bus)
	fmt.Println("CALLER ← positions:", pos, "err:", err)

	// Same request again, right away: everything is live, the bus stays idle.
	pos, err = positions.Entries([]uint8{10, 11, 12}).OrFetch(bus)
	fmt.Println("CALLER ← positions:", pos, "err:", err)

	fmt.Println("\n========= EXPIRY =========")

	// Let everything go stale, then read again: one full round-trip.
	time.Sleep(15 * time.Millisecond)

	if _, ok := positions.Get(10); !ok {
		fmt.Println("CACHE  → id 10 expired, as expected")
	}

	pos, err = positions.Entries([]uint8{10, 11, 12}).OrFetch(bus)
	fmt.Println("CALLER ← positions:", pos, "err:", err)

	fmt.Println("\n========= BUS FAILURE =========")

	// Break the bus and let the values expire. The error reaches the
	// caller untouched and nothing half-written lands in the cache.
	bus.broken = true
	time.Sleep(15 * time.Millisecond)

	_, err = positions.Entries([]uint8{10, 11}).OrFetch(bus)
	fmt.Println("CALLER ← err:", err)

	if _, ok := positions.Get(11); !ok {
		fmt.Println("CACHE  → id 11 absent after failed fetch, as expected")
	}

	fmt.Println("\n========= SUMMARY =========")
	fmt.Println("bus round-trips:", bus.roundTrips)
	fmt.Println("cache metrics  :", metrics)
}
