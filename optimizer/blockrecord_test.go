package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augustin-cheron/blockzilla/compactcodec"
)

func TestEncodeDecodeBlockHeaderRoundTrip(t *testing.T) {
	cases := []BlockHeader{
		{Slot: 100, ParentSlot: 99, BlockhashID: 3, PreviousBlockhashID: 2},
		{
			Slot: 200, ParentSlot: 199, BlockhashID: 7, PreviousBlockhashID: 6,
			HasBlockTime: true, BlockTime: 1_700_000_000,
		},
		{
			Slot: 300, ParentSlot: 299, BlockhashID: -1, PreviousBlockhashID: -1,
			HasBlockTime: true, BlockTime: 42,
			HasBlockHeight: true, BlockHeight: 123456,
		},
	}

	for _, h := range cases {
		w := compactcodec.NewWriter()
		EncodeBlockHeader(w, h)

		r := compactcodec.NewReader(w.Bytes())
		got, err := DecodeBlockHeader(r)
		require.NoError(t, err)
		require.True(t, r.AtEOF())
		require.Equal(t, h, got)
	}
}

func TestDecodeBlockRecordRejectsMissingTxCount(t *testing.T) {
	w := compactcodec.NewWriter()
	EncodeBlockHeader(w, BlockHeader{Slot: 1, ParentSlot: 0})
	// No tx count varint follows: DecodeBlockRecord must fail reading it
	// rather than default to zero transactions.
	_, err := DecodeBlockRecord(w.Bytes())
	require.Error(t, err)
}
