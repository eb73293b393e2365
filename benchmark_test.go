package cache_test

import (
	"fmt"
	"testing"

	cache "github.com/krisalay/batch-cache"
)

//
// ================= SINGLE KEY BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key-42")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("miss-%d", i)
		c.Get(key)
	}
}

func BenchmarkCacheInsert(b *testing.B) {
	c := cache.New[string, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(fmt.Sprintf("key-%d", i), i)
	}
}

//
// ================= BATCHED BENCH =================
//

func BenchmarkEntriesAllHit(b *testing.B) {
	c := newBenchmarkCache()
	keys := []string{"key-1", "key-2", "key-3", "key-4", "key-5"}
	fetch := func(missing []string) ([]int, error) {
		return make([]int, len(missing)), nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Entries(keys).OrTryInsertWith(fetch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEntriesAllMissing(b *testing.B) {
	c := cache.New[int, int]()
	keys := make([]int, 32)
	fetch := func(missing []int) ([]int, error) {
		return make([]int, len(missing)), nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Shift the key range every round so nothing is ever cached.
		for j := range keys {
			keys[j] = i*len(keys) + j
		}
		if _, err := c.Entries(keys).OrTryInsertWith(fetch); err != nil {
			b.Fatal(err)
		}
	}
}
