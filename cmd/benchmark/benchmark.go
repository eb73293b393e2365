package main

import (
	"fmt"
	"time"

	cache "github.com/krisalay/batch-cache"
)

// ================= SIMULATED BUS =================

// busLatency is the fixed cost of one round-trip on the wire, independent of
// how many ids the message carries. This is what makes batching pay off.
const busLatency = 500 * time.Microsecond

type SimulatedBus struct {
	roundTrips int
}

func (b *SimulatedBus) FetchBatch(ids []uint8) ([]float64, error) {
	b.roundTrips++
	time.Sleep(busLatency)

	out := make([]float64, len(ids))
	for i, id := range ids {
		out[i] = float64(id)
	}
	return out, nil
}

// ================= BENCHMARK =================

func main() {
	const (
		motors = 20
		cycles = 200
		expiry = 5 * time.Millisecond
	)

	ids := make([]uint8, motors)
	for i := range ids {
		ids[i] = uint8(i)
	}

	fmt.Println("\n================ BATCHED FETCH BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Motors      :", motors)
	fmt.Println("Cycles      :", cycles)
	fmt.Println("Expiry      :", expiry)
	fmt.Println("Bus latency :", busLatency)
	fmt.Println("---------------------------------")

	// ---------------- Per-key reads ----------------
	// Every stale motor costs its own round-trip.
	{
		bus := &SimulatedBus{}
		c := cache.WithExpiryDuration[uint8, float64](expiry)

		start := time.Now()
		for cycle := 0; cycle < cycles; cycle++ {
			for _, id := range ids {
				_, _ = c.Entry(id).OrTryInsertWith(func(id uint8) (float64, error) {
					vals, err := bus.FetchBatch([]uint8{id})
					if err != nil {
						return 0, err
					}
					return vals[0], nil
				})
			}
		}
		elapsed := time.Since(start)

		fmt.Println("\nPER-KEY READS")
		fmt.Println("Round-trips :", bus.roundTrips)
		fmt.Println("Elapsed     :", elapsed)
	}

	// ---------------- Batched reads ----------------
	// All stale motors share one round-trip per cycle.
	{
		bus := &SimulatedBus{}
		c := cache.WithExpiryDuration[uint8, float64](expiry)

		start := time.Now()
		for cycle := 0; cycle < cycles; cycle++ {
			if _, err := c.Entries(ids).OrFetch(bus); err != nil {
				panic(err)
			}
		}
		elapsed := time.Since(start)

		fmt.Println("\nBATCHED READS")
		fmt.Println("Round-trips :", bus.roundTrips)
		fmt.Println("Elapsed     :", elapsed)
	}
}
