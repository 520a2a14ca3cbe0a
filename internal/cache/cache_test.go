package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSetAndGet(t *testing.T) {
	c := New(4, time.Minute)

	c.Set("feed:a", "payload")

	value, found := c.Get("feed:a")
	require.True(t, found)
	assert.Equal(t, "payload", value)
}

func TestGetMissing(t *testing.T) {
	c := New(4, time.Minute)

	_, found := c.Get("nope")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(4, 10*time.Millisecond)

	c.Set("feed:a", "payload")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("feed:a")
	assert.False(t, found, "expired entry should be treated as absent")
	assert.Equal(t, 0, c.Len(), "expired entry should be dropped on access")
}

func TestLRUEviction(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	_, found := c.Get("a") // refresh a
	require.True(t, found)

	c.Set("c", 3) // evicts b

	_, found = c.Get("b")
	assert.False(t, found, "least recently used entry should be evicted")
	_, found = c.Get("a")
	assert.True(t, found)
	_, found = c.Get("c")
	assert.True(t, found)
}

func TestSetUpdatesExisting(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", 1)
	c.Set("a", 2)

	value, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, c.Len())
}

func TestCleanExpired(t *testing.T) {
	c := New(4, 10*time.Millisecond)

	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	c.Set("c", 3)

	removed := c.CleanExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
}

func TestClear(t *testing.T) {
	c := New(4, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, found := c.Get("a")
	assert.False(t, found)
}

func TestStartCleanupStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New(4, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	c.StartCleanup(ctx, 5*time.Millisecond)
	c.Set("a", 1)

	assert.Eventually(t, func() bool {
		return c.Len() == 0
	}, time.Second, 5*time.Millisecond, "cleanup loop should remove expired entries")

	cancel()
}
