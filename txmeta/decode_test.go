package txmeta

import (
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	serde_agave "github.com/augustin-cheron/blockzilla/parse_legacy_transaction_status_meta"
)

func mustBincode(t *testing.T, raw serde_agave.TransactionStatusMeta) []byte {
	t.Helper()
	b, err := raw.BincodeSerialize()
	require.NoError(t, err)
	return b
}

func TestDecodeLegacyPlain(t *testing.T) {
	raw := serde_agave.TransactionStatusMeta{
		Status:       &serde_agave.Result__Ok{},
		Fee:          5000,
		PreBalances:  []uint64{100, 200},
		PostBalances: []uint64{95, 205},
	}
	body := mustBincode(t, raw)

	dec, err := NewDecoder(157)
	require.NoError(t, err)
	defer dec.Close()

	m, err := dec.Decode(1, body)
	require.NoError(t, err)
	require.Equal(t, uint64(5000), m.Fee)
	require.Equal(t, []uint64{100, 200}, m.PreBalances)
	require.Nil(t, m.ErrBytes)
}

func TestDecodeLegacyZstdEnvelope(t *testing.T) {
	raw := serde_agave.TransactionStatusMeta{
		Status:      &serde_agave.Result__Ok{},
		Fee:         10,
		PreBalances: []uint64{1},
	}
	body := mustBincode(t, raw)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(body, nil)
	require.NoError(t, enc.Close())
	require.True(t, len(compressed) >= 4)

	dec, err := NewDecoder(157)
	require.NoError(t, err)
	defer dec.Close()

	m, err := dec.Decode(1, compressed)
	require.NoError(t, err)
	require.Equal(t, uint64(10), m.Fee)
}

func TestDecodeDispatchByEpoch(t *testing.T) {
	dec, err := NewDecoder(10)
	require.NoError(t, err)
	defer dec.Close()

	// slot in epoch 5 (< cutoff 10) must go through the legacy path.
	raw := serde_agave.TransactionStatusMeta{
		Status: &serde_agave.Result__Ok{},
		Fee:    42,
	}
	body := mustBincode(t, raw)
	m, err := dec.Decode(5*SlotsPerEpoch, body)
	require.NoError(t, err)
	require.Equal(t, uint64(42), m.Fee)
}
