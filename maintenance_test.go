package hotcache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweepRemovesExpiredEntries(t *testing.T) {
	cache := New[string](WithSweepInterval(20 * time.Millisecond))
	defer cache.Close()

	require.NoError(t, cache.Set("key1", "value1", 20*time.Millisecond))
	require.NoError(t, cache.Set("key2", "value2", 20*time.Millisecond))
	require.NoError(t, cache.Set("key3", "value3", time.Minute))

	time.Sleep(100 * time.Millisecond)

	// The sweep purged the expired entries without any reads
	require.Equal(t, 1, cache.Len())
	require.Equal(t, int64(2), cache.GetStats().Expired)
}

func TestOptimizeRunsCleanup(t *testing.T) {
	cache := New[string](WithSweepInterval(0), WithMaxSize(100))
	defer cache.Close()

	require.NoError(t, cache.Set("key1", "value1", 20*time.Millisecond))
	require.NoError(t, cache.Set("key2", "value2", time.Minute))
	time.Sleep(50 * time.Millisecond)

	cache.Optimize()

	require.Equal(t, 1, cache.Len())
	require.Equal(t, int64(1), cache.GetStats().Expired)
}

func TestOptimizeAggressiveCleanup(t *testing.T) {
	const maxSize = 10
	cache := New[int](WithSweepInterval(0), WithMaxSize(maxSize))
	defer cache.Close()

	for i := 0; i < maxSize; i++ {
		require.NoError(t, cache.Set(fmt.Sprintf("key%d", i), i, time.Hour))
	}

	// Make all but two entries hot; key0 and key1 stay at one access
	for i := 2; i < maxSize; i++ {
		for j := 0; j < 3; j++ {
			_, ok := cache.Get(fmt.Sprintf("key%d", i))
			require.True(t, ok)
		}
	}

	cache.Optimize()

	// Occupancy was above the high-water mark, so the bottom 20% by
	// survival score were culled: the two cold entries.
	require.Equal(t, maxSize-2, cache.Len())
	require.False(t, cache.Has("key0"))
	require.False(t, cache.Has("key1"))
	require.Equal(t, int64(2), cache.GetStats().Evictions)
}

func TestOptimizeBelowHighWaterMark(t *testing.T) {
	cache := New[int](WithSweepInterval(0), WithMaxSize(10))
	defer cache.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, cache.Set(fmt.Sprintf("key%d", i), i, time.Hour))
	}

	cache.Optimize()

	require.Equal(t, 5, cache.Len())
	require.Equal(t, int64(0), cache.GetStats().Evictions)
}

func TestWarmUp(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	warmer := StaticWarmer(map[string]string{
		"svc:auth":    "unknown",
		"svc:billing": "unknown",
	})
	require.NoError(t, cache.WarmUp(context.Background(), warmer, time.Minute))

	require.Equal(t, 2, cache.Len())
	value, ok := cache.Get("svc:auth")
	require.True(t, ok)
	require.Equal(t, "unknown", value)
}

func TestWarmUpSourceFailurePropagates(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	sourceErr := fmt.Errorf("telemetry unavailable")
	warmer := WarmerFunc[string](func(context.Context) (map[string]string, error) {
		return nil, sourceErr
	})

	err := cache.WarmUp(context.Background(), warmer, time.Minute)
	require.Error(t, err)
	require.ErrorIs(t, err, sourceErr)
	require.Equal(t, 0, cache.Len())
}

func TestWarmUpAfterClose(t *testing.T) {
	cache := New[string](WithSweepInterval(0))

	require.NoError(t, cache.Close())

	warmer := StaticWarmer(map[string]string{"a": "1"})
	err := cache.WarmUp(context.Background(), warmer, time.Minute)
	require.Error(t, err)
}

func TestCloseStopsSweep(t *testing.T) {
	cache := New[string](WithSweepInterval(10 * time.Millisecond))

	require.NoError(t, cache.Set("key1", "value1", time.Minute))
	require.NoError(t, cache.Close())

	// Sweep goroutine has exited; the store is cleared and stats zeroed
	require.Equal(t, 0, cache.Len())
	stats := cache.GetStats()
	require.Equal(t, int64(0), stats.Hits)

	// No panic from a second close or late operations
	require.NoError(t, cache.Close())
	cache.Optimize()
}
