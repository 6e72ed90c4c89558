package blockgroup

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
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

func appendSection(t *testing.T, buf *bytes.Buffer, digest [32]byte, payload []byte) {
	t.Helper()
	sum, err := mh.Encode(digest[:], mh.SHA2_256)
	require.NoError(t, err)
	c := cid.NewCidV1(cid.DagCBOR, sum)
	section := append(append([]byte{}, c.Bytes()...), payload...)
	var sizeBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(sizeBuf[:], uint64(len(section)))
	buf.Write(sizeBuf[:n])
	buf.Write(section)
}

func TestNextGroupSingleEmptyBlock(t *testing.T) {
	var buf bytes.Buffer
	blockPayload := encodeArray(t, uint64(0 /*KindTransaction placeholder unused*/))
	_ = blockPayload

	// Build a block with zero entries.
	block := encodeArray(t, uint64(2), 100, []any{}, []any{}, []any{1, 2}, nil)
	var digest [32]byte
	digest[0] = 0x01
	appendSection(t, &buf, digest, block)

	r := NewReader(&buf)
	g, err := r.NextGroup()
	require.NoError(t, err)
	require.Equal(t, block, g.BlockPayload())

	txIter, err := g.Transactions()
	require.NoError(t, err)
	_, _, ok, err := txIter.Next()
	require.NoError(t, err)
	require.False(t, ok)

	_, err = r.NextGroup()
	require.Error(t, err)
}
