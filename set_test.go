package chainmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T, opts ...Option) *HashSet[string] {
	hs, err := NewSet[string](opts...)
	require.NoError(t, err)

	return hs
}

func TestNewSet(t *testing.T) {
	hs := newSet(t, WithInitialCapacity(4096))

	require.Len(t, hs.t.buckets, 4096)
	require.Equal(t, 4096, hs.Stats().Capacity)

	_, err := NewSet[string](WithLoadFactor(-1))
	require.ErrorIs(t, err, ErrInvalidLoadFactor)
}

func TestHashSet_Add(t *testing.T) {
	hs := newSet(t)

	require.True(t, hs.Add("1"))
	require.False(t, hs.Add("1"))
	require.Equal(t, 1, hs.Len())
	require.True(t, hs.Has("1"))
}

func TestHashSet_Add_Fill(t *testing.T) {
	hs := newSet(t)

	for i := 0; i < 100; i++ {
		require.True(t, hs.Add(strconv.Itoa(i)))
	}

	require.Equal(t, 100, hs.Len())
	require.Equal(t, 256, hs.Stats().Capacity)

	for i := 0; i < 100; i++ {
		require.True(t, hs.Has(strconv.Itoa(i)))
	}
	require.False(t, hs.Has("100"))
}

func TestHashSet_Remove_Collisions(t *testing.T) {
	hs := newSet(t, WithHashFunc(collisionHash))

	require.True(t, hs.Add("A"))
	require.True(t, hs.Add("B"))
	require.True(t, hs.Add("C"))

	// Delete the "bridge" element
	require.True(t, hs.Remove("B"))
	require.False(t, hs.Remove("B"))

	require.True(t, hs.Has("C"), "chain broken: could not find 'C' after removing 'B'")
	require.Equal(t, []string{"A", "C"}, hs.Keys())
}

func TestHashSet_Clear(t *testing.T) {
	hs := newSet(t)
	for i := 0; i < 50; i++ {
		hs.Add(strconv.Itoa(i))
	}

	hs.Clear()

	assert.Zero(t, hs.Len())
	assert.Empty(t, hs.Keys())
	assert.Equal(t, DefaultInitialCapacity, hs.Stats().Capacity)
}
