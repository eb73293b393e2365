package cache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/krisalay/batch-cache"
)

//
// ================= TEST METRICS =================
//

type TestMetrics struct {
	hits    int
	misses  int
	expires int
	fetches int
}

func (m *TestMetrics) Hit()    { m.hits++ }
func (m *TestMetrics) Miss()   { m.misses++ }
func (m *TestMetrics) Expire() { m.expires++ }
func (m *TestMetrics) Fetch()  { m.fetches++ }

//
// ================= BASIC OPERATIONS =================
//

func TestInsertAndGet(t *testing.T) {
	c := cache.New[string, float64]()

	c.Insert("position", 0.23)

	v, ok := c.Get("position")
	require.True(t, ok)
	assert.Equal(t, 0.23, v)
}

func TestGetMissingKey(t *testing.T) {
	c := cache.New[string, int]()

	v, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestInsertReturnsPreviousValue(t *testing.T) {
	c := cache.New[int, string]()

	_, existed := c.Insert(10, "a")
	assert.False(t, existed)

	prev, existed := c.Insert(10, "b")
	require.True(t, existed)
	assert.Equal(t, "a", prev)

	v, ok := c.Get(10)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestRemove(t *testing.T) {
	c := cache.New[string, int]()

	c.Insert("k", 42)

	v, ok := c.Remove("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = c.Get("k")
	assert.False(t, ok)

	// Removing again is safe and reports absence.
	_, ok = c.Remove("k")
	assert.False(t, ok)
}

func TestRemoveReturnsExpiredValue(t *testing.T) {
	c := cache.WithExpiryDuration[string, int](10 * time.Millisecond)

	c.Insert("k", 7)
	time.Sleep(20 * time.Millisecond)

	// The read path hides the value, but removal still hands it back.
	_, ok := c.Get("k")
	require.False(t, ok)

	v, ok := c.Remove("k")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestUpdate(t *testing.T) {
	c := cache.New[string, float64]()

	c.Insert("target_position", 90.0)

	ok := c.Update("target_position", func(v *float64) { *v += 10.0 })
	require.True(t, ok)

	v, ok := c.Get("target_position")
	require.True(t, ok)
	assert.Equal(t, 100.0, v)

	assert.False(t, c.Update("absent", func(v *float64) { *v = 1 }))
}

func TestUpdateDoesNotRefreshTimestamp(t *testing.T) {
	c := cache.WithExpiryDuration[string, int](100 * time.Millisecond)

	c.Insert("k", 1)
	time.Sleep(60 * time.Millisecond)

	require.True(t, c.Update("k", func(v *int) { *v++ }))

	// Age is counted from the insert, not from the update.
	time.Sleep(60 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

//
// ================= EXPIRY =================
//

func TestExpiry(t *testing.T) {
	c := cache.WithExpiryDuration[string, float64](50 * time.Millisecond)

	c.Insert("present_temperature", 27.0)

	v, ok := c.Get("present_temperature")
	require.True(t, ok)
	assert.Equal(t, 27.0, v)

	time.Sleep(80 * time.Millisecond)

	_, ok = c.Get("present_temperature")
	assert.False(t, ok)
}

func TestNoExpiryConfigured(t *testing.T) {
	c := cache.New[string, int]()

	c.Insert("k", 1)
	time.Sleep(30 * time.Millisecond)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestExpiredEntryStaysInMap(t *testing.T) {
	c := cache.WithExpiryDuration[string, int](10 * time.Millisecond)

	c.Insert("k", 1)
	time.Sleep(20 * time.Millisecond)

	// Invalidation is lazy: the read misses but nothing is purged.
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestInsertRevivesExpiredKey(t *testing.T) {
	c := cache.WithExpiryDuration[string, int](10 * time.Millisecond)

	c.Insert("k", 1)
	time.Sleep(20 * time.Millisecond)

	c.Insert("k", 2)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

//
// ================= METRICS =================
//

func TestMetricsAreRecorded(t *testing.T) {
	m := &TestMetrics{}
	c := cache.WithExpiryDuration[string, int](10 * time.Millisecond).WithMetrics(m)

	c.Insert("k", 1)

	c.Get("k")     // hit
	c.Get("other") // miss
	time.Sleep(20 * time.Millisecond)
	c.Get("k") // expire

	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.expires)
	assert.Equal(t, 0, m.fetches)
}

//
// ================= BENCH SUPPORT =================
//

func newBenchmarkCache() *cache.Cache[string, int] {
	c := cache.WithExpiryDuration[string, int](time.Minute)
	for i := 0; i < 1000; i++ {
		c.Insert(fmt.Sprintf("key-%d", i), i)
	}
	return c
}
