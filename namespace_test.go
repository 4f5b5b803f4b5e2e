package hotcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNamespacePrefixing(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	entity := NewNamespace(cache, "entity", time.Minute)
	health := NewNamespace(cache, "service-health", time.Minute)

	require.NoError(t, entity.Set("42", "alice"))
	require.NoError(t, health.Set("auth", "ok"))

	// Namespaces are isolated views over the shared engine
	value, ok := entity.Get("42")
	require.True(t, ok)
	require.Equal(t, "alice", value)

	_, ok = health.Get("42")
	require.False(t, ok)

	// Keys land in the engine fully prefixed
	require.True(t, cache.Has("entity:42"))
	require.Equal(t, "entity:42", entity.Key("42"))
}

func TestNamespaceDefaultTTL(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	behavior := NewNamespace(cache, "user-behavior", 30*time.Millisecond)
	require.NoError(t, behavior.Set("clicks", "7"))

	_, ok := behavior.Get("clicks")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = behavior.Get("clicks")
	require.False(t, ok)
}

func TestNamespaceDeleteAll(t *testing.T) {
	cache := New[int](WithSweepInterval(0))
	defer cache.Close()

	entity := NewNamespace(cache, "entity", time.Minute)
	other := NewNamespace(cache, "other", time.Minute)

	require.NoError(t, entity.Set("1", 1))
	require.NoError(t, entity.Set("2", 2))
	require.NoError(t, other.Set("1", 3))

	removed, err := entity.DeleteAll()
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	require.False(t, entity.Has("1"))
	require.True(t, other.Has("1"))
}

func TestNamespaceGetOrSet(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	entity := NewNamespace(cache, "entity", time.Minute)

	calls := 0
	fetcher := func(context.Context) (string, error) {
		calls++
		return "fetched", nil
	}

	value, err := entity.GetOrSet(context.Background(), "7", fetcher)
	require.NoError(t, err)
	require.Equal(t, "fetched", value)

	_, err = entity.GetOrSet(context.Background(), "7", fetcher)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestNamespaceWarmUp(t *testing.T) {
	cache := New[string](WithSweepInterval(0))
	defer cache.Close()

	health := NewNamespace(cache, "service-health", time.Minute)
	warmer := StaticWarmer(map[string]string{
		"auth":    "unknown",
		"billing": "unknown",
	})

	require.NoError(t, health.WarmUp(context.Background(), warmer))

	value, ok := health.Get("auth")
	require.True(t, ok)
	require.Equal(t, "unknown", value)
	require.True(t, cache.Has("service-health:billing"))
}
