package keyregistry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func key(b byte) Key {
	var k Key
	k[0] = b
	return k
}

func TestCounterFinalizeSortsByCountThenBytes(t *testing.T) {
	c := NewCounter()
	a, b, d := key(1), key(2), key(3)
	c.Count(a)
	c.Count(a)
	c.Count(b)
	c.Count(b)
	c.Count(d)

	store, index := c.Finalize(nil)
	require.Equal(t, 3, store.Len())

	// a and b tie at count 2; a < b lexicographically so a comes first.
	k0, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, a, k0)
	k1, ok := store.Get(2)
	require.True(t, ok)
	require.Equal(t, b, k1)
	k2, ok := store.Get(3)
	require.True(t, ok)
	require.Equal(t, d, k2)

	id, ok := index.Lookup(a)
	require.True(t, ok)
	require.Equal(t, uint32(1), id)
}

func TestFinalizePrependsMissingBuiltins(t *testing.T) {
	c := NewCounter()
	observed := key(9)
	c.Count(observed)

	builtin := key(200)
	store, _ := c.Finalize([]Key{builtin})
	require.Equal(t, 2, store.Len())
	first, _ := store.Get(1)
	require.Equal(t, builtin, first)
}

func TestLookupUncheckedPanicsOnMiss(t *testing.T) {
	c := NewCounter()
	c.Count(key(1))
	_, index := c.Finalize(nil)
	require.Panics(t, func() {
		index.LookupUnchecked(key(99))
	})
}

func TestLoadRejectsNonMultipleOf32(t *testing.T) {
	_, _, err := Load(make([]byte, 33))
	require.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	c := NewCounter()
	c.Count(key(5))
	c.Count(key(6))
	store, _ := c.Finalize(nil)

	loadedStore, loadedIndex, err := Load(store.Bytes())
	require.NoError(t, err)
	require.Equal(t, store.Len(), loadedStore.Len())
	k, ok := loadedStore.Get(1)
	require.True(t, ok)
	id, ok := loadedIndex.Lookup(k)
	require.True(t, ok)
	require.Equal(t, uint32(1), id)
}
