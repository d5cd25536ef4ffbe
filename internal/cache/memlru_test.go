package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	data []byte
	size int64
}

func (b *blob) Size() int64 { return b.size }

func newBlob(n int64) *blob {
	return &blob{data: make([]byte, n), size: n}
}

func TestMemLRU_NegativeCapacityRejected(t *testing.T) {
	_, err := NewMemLRU[*blob](-1)
	require.ErrorIs(t, err, ErrConfigInvalid)
}

func TestMemLRU_BasicEviction(t *testing.T) {
	lru, err := NewMemLRU[*blob](1 * 1024 * 1024)
	require.NoError(t, err)

	lru.Add("A", newBlob(600*1024))
	lru.Add("B", newBlob(400*1024))
	lru.Add("C", newBlob(300*1024))

	assert.False(t, lru.Contains("A"), "A should have been evicted")
	assert.True(t, lru.Contains("B"))
	assert.True(t, lru.Contains("C"))
	assert.Equal(t, int64(700*1024), lru.CurrentBytes())
}

func TestMemLRU_PromotionOnGet(t *testing.T) {
	lru, err := NewMemLRU[*blob](1000)
	require.NoError(t, err)

	lru.Add("A", newBlob(400))
	lru.Add("B", newBlob(400))
	_, ok := lru.Get("A")
	require.True(t, ok)

	lru.Add("C", newBlob(400))

	assert.True(t, lru.Contains("A"), "A was recently used, should survive")
	assert.False(t, lru.Contains("B"), "B should be the eviction victim")
	assert.True(t, lru.Contains("C"))
}

func TestMemLRU_Recycle(t *testing.T) {
	lru, err := NewMemLRU[*blob](1000)
	require.NoError(t, err)

	lru.Add("X", newBlob(500))

	_, ok := lru.PopOldestIfMatches(500)
	assert.False(t, ok, "500+500 == capacity, should not exceed it")

	lru.Add("Y", newBlob(500))

	popped, ok := lru.PopOldestIfMatches(500)
	require.True(t, ok)
	assert.Equal(t, int64(500), popped.Size())
	assert.False(t, lru.Contains("X"))
	assert.True(t, lru.Contains("Y"))
	assert.Equal(t, int64(500), lru.CurrentBytes())
}

func TestMemLRU_AddExistingKeyKeepsOriginal(t *testing.T) {
	lru, err := NewMemLRU[*blob](0)
	require.NoError(t, err)

	original := newBlob(10)
	lru.Add("K", original)
	lru.Add("K", newBlob(999))

	got, ok := lru.Get("K")
	require.True(t, ok)
	assert.Same(t, original, got)
	assert.Equal(t, int64(10), lru.CurrentBytes())
}

func TestMemLRU_DiscardingOldestHookFires(t *testing.T) {
	lru, err := NewMemLRU[*blob](500)
	require.NoError(t, err)

	var evictedKey string
	lru.SetDiscardingOldest(func(key string, item *blob) {
		evictedKey = key
	})

	lru.Add("A", newBlob(500))
	lru.Add("B", newBlob(500))

	assert.Equal(t, "A", evictedKey)
}

func TestMemLRU_RemoveAndClear(t *testing.T) {
	lru, err := NewMemLRU[*blob](0)
	require.NoError(t, err)

	lru.Add("A", newBlob(10))
	assert.True(t, lru.Remove("A"))
	assert.False(t, lru.Remove("A"))

	lru.Add("B", newBlob(20))
	lru.Add("C", newBlob(30))
	lru.Clear()
	assert.Equal(t, 0, lru.Len())
	assert.Equal(t, int64(0), lru.CurrentBytes())
}

func TestMemLRU_UnboundedNeverEvicts(t *testing.T) {
	lru, err := NewMemLRU[*blob](0)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		lru.Add(string(rune('a'+i%26))+string(rune(i)), newBlob(1024))
	}
	assert.Equal(t, 100, lru.Len())
}
