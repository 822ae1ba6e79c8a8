package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRU_GetAfterPut(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Put("barbers", []string{"Ana", "Luis"})

	got, ok := c.Get("barbers")
	assert.True(t, ok)
	assert.Equal(t, []string{"Ana", "Luis"}, got)
}

func TestLRU_MissAfterTTL(t *testing.T) {
	c := NewLRU(2, time.Minute)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put("services", "v1")

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := c.Get("services")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = c.Get("services")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Put("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_PutOverwritesAndRefreshes(t *testing.T) {
	c := NewLRU(2, time.Minute)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put("k", "old")

	c.now = func() time.Time { return base.Add(50 * time.Second) }
	c.Put("k", "new")

	// 70s after the first put, 20s after the second: still fresh.
	c.now = func() time.Time { return base.Add(70 * time.Second) }
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestLRU_Clear(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
