package blockhashregistry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hash(b byte) Hash {
	var h Hash
	h[0] = b
	return h
}

func TestLookupCurrentAndPrevTail(t *testing.T) {
	current := []Hash{hash(1), hash(2), hash(3)}
	prevTail := []Hash{hash(10), hash(11)} // oldest..newest: 10 is -2, 11 is -1
	r, err := New(current, prevTail)
	require.NoError(t, err)

	id, ok := r.Lookup(hash(1))
	require.True(t, ok)
	require.Equal(t, int32(0), id)

	id, ok = r.Lookup(hash(11))
	require.True(t, ok)
	require.Equal(t, int32(-1), id)

	id, ok = r.Lookup(hash(10))
	require.True(t, ok)
	require.Equal(t, int32(-2), id)

	_, ok = r.Lookup(hash(99))
	require.False(t, ok)
}

func TestCurrentEpochWinsOnCollision(t *testing.T) {
	collide := hash(5)
	r, err := New([]Hash{collide}, []Hash{collide})
	require.NoError(t, err)
	id, ok := r.Lookup(collide)
	require.True(t, ok)
	require.Equal(t, int32(0), id)
}

func TestRejectsOversizedPrevTail(t *testing.T) {
	tail := make([]Hash, PrevTailLen+1)
	_, err := New(nil, tail)
	require.Error(t, err)
}

func TestPreviousIDForPos(t *testing.T) {
	require.Equal(t, 0, PreviousIDForPos(0))
	require.Equal(t, 0, PreviousIDForPos(1))
	require.Equal(t, 4, PreviousIDForPos(5))
}

func TestGetRoundTrip(t *testing.T) {
	current := []Hash{hash(1), hash(2)}
	prevTail := []Hash{hash(10)}
	r, err := New(current, prevTail)
	require.NoError(t, err)

	h, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, hash(2), h)

	h, ok = r.Get(-1)
	require.True(t, ok)
	require.Equal(t, hash(10), h)

	_, ok = r.Get(-2)
	require.False(t, ok)
}
