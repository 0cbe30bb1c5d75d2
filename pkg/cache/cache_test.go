package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](2, 0)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2, 0)
	c.Set("a", 1)
	c.Set("b", 2)

	// touch a so b becomes the eviction candidate
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	require.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestCache_TTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New[string, string](4, time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	now = now.Add(59 * time.Second)
	_, ok := c.Get("k")
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("k")
	require.False(t, ok, "entry should expire after ttl")
	require.Equal(t, 0, c.Len(), "expired entry should be dropped on access")
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string, int](4, 0)
	calls := 0
	fn := func() int {
		calls++

		return 7
	}

	require.Equal(t, 7, c.GetOrSet("k", fn))
	require.Equal(t, 7, c.GetOrSet("k", fn))
	require.Equal(t, 1, calls)
}

func TestCache_DeleteAndPurge(t *testing.T) {
	c := New[int, int](4, 0)
	for i := range 4 {
		c.Set(i, i)
	}

	c.Delete(1)
	_, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, 3, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
	c.Set(9, 9)
	require.Equal(t, 1, c.Len())
}

func TestCache_MinimumSize(t *testing.T) {
	c := New[string, int](0, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	require.Equal(t, 1, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](64, time.Hour)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				k := strconv.Itoa((i * j) % 100)
				c.Set(k, j)
				_, _ = c.Get(k)
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 64)
}
