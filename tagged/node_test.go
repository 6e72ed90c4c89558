package tagged

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func encodeArray(t *testing.T, elems ...any) []byte {
	t.Helper()
	raw := make([]any, len(elems))
	copy(raw, elems)
	b, err := cbor.Marshal(raw)
	require.NoError(t, err)
	return b
}

func TestPeekKind(t *testing.T) {
	raw := encodeArray(t, uint64(KindBlock), 42)
	kind, err := PeekKind(raw)
	require.NoError(t, err)
	require.Equal(t, KindBlock, kind)
}

func TestPeekKindUnknown(t *testing.T) {
	raw := encodeArray(t, uint64(99))
	_, err := PeekKind(raw)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecodeDataFrameNoContinuation(t *testing.T) {
	raw := encodeArray(t, uint64(KindDataFrame), nil, nil, nil, []byte("payload"), nil)
	df, err := DecodeDataFrame(raw)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), df.Data)
	require.Nil(t, df.Next)
}

func TestDecodeDataFrameWrongKind(t *testing.T) {
	raw := encodeArray(t, uint64(KindBlock), 1)
	_, err := DecodeDataFrame(raw)
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestDecodeBlockMetaPresence(t *testing.T) {
	meta := []any{99, int64(123456), uint64(42)}
	raw := encodeArray(t, uint64(KindBlock), 100, []any{}, []any{}, meta, nil)

	b, err := DecodeBlock(raw)
	require.NoError(t, err)
	require.Equal(t, 100, b.Slot)
	require.Equal(t, 99, b.Meta.ParentSlot)
	require.True(t, b.Meta.HasBlockTime)
	require.EqualValues(t, 123456, b.Meta.BlockTime)
	require.True(t, b.Meta.HasBlockHeight)
	require.EqualValues(t, 42, b.Meta.BlockHeight)
}

func TestDecodeBlockMetaAbsent(t *testing.T) {
	meta := []any{99, nil, nil}
	raw := encodeArray(t, uint64(KindBlock), 100, []any{}, []any{}, meta, nil)

	b, err := DecodeBlock(raw)
	require.NoError(t, err)
	require.False(t, b.Meta.HasBlockTime)
	require.False(t, b.Meta.HasBlockHeight)
}

func TestDecodeEntry(t *testing.T) {
	hash := make([]byte, 32)
	hash[0] = 0xAB
	raw := encodeArray(t, uint64(KindEntry), 5, hash, []any{})
	entry, err := DecodeEntry(raw)
	require.NoError(t, err)
	require.Equal(t, 5, entry.NumHashes)
	require.Equal(t, byte(0xAB), entry.Hash[0])
	require.Equal(t, 0, entry.Transactions.Len())
}
