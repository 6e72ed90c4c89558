package metacompact

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"github.com/augustin-cheron/blockzilla/compactcodec"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

type fakeKeys struct {
	byText map[string]uint32
	byID   map[uint32][32]byte
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{byText: map[string]uint32{}, byID: map[uint32][32]byte{}}
}

func (k *fakeKeys) add(id uint32, key [32]byte) {
	k.byText[base58.Encode(key[:])] = id
	k.byID[id] = key
}

func (k *fakeKeys) LookupBase58(text string) (uint32, bool) {
	id, ok := k.byText[text]
	return id, ok
}

func (k *fakeKeys) Get(id uint32) ([32]byte, bool) {
	key, ok := k.byID[id]
	return key, ok
}

func (k *fakeKeys) LookupUnchecked(key [32]byte) uint32 {
	id, ok := k.byText[base58.Encode(key[:])]
	if !ok {
		panic("missing key")
	}
	return id
}

func keyFor(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	keys := newFakeKeys()
	keys.add(1, keyFor(1))
	keys.add(2, keyFor(2))
	mint := keyFor(3)
	keys.add(3, mint)

	cu := uint64(1500)
	meta := &txmeta.Meta{
		Fee:                  5000,
		PreBalances:          []uint64{100, 200},
		PostBalances:         []uint64{90, 210},
		HasInnerInstructions: true,
		InnerInstructions: []txmeta.InnerInstructionSet{
			{Index: 0, Instructions: []txmeta.InnerInstructionEntry{
				{Instruction: txmeta.Instruction{ProgramIDIndex: 1, Accounts: []byte{0, 1}, Data: []byte{9}}},
			}},
		},
		HasLogMessages: true,
		LogMessages: []string{
			"Program " + base58.Encode(keyFor(1)[:]) + " invoke [1]",
			"Program " + base58.Encode(keyFor(1)[:]) + " success",
		},
		PreTokenBalances: []txmeta.TokenBalance{
			{AccountIndex: 0, Mint: base58.Encode(mint[:]), Owner: "", ProgramID: "", Amount: "42", Decimals: 6},
		},
		Rewards: []txmeta.Reward{
			{Pubkey: base58.Encode(keyFor(2)[:]), Lamports: 10, PostBalance: 20, RewardType: -1},
		},
		ComputeUnitsConsumed: &cu,
	}

	w := compactcodec.NewWriter()
	require.NoError(t, Encode(w, meta, keys, keys, keys))

	r := compactcodec.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.True(t, r.AtEOF())

	require.Equal(t, uint64(5000), got.Fee)
	require.Equal(t, []uint64{100, 200}, got.PreBalances)
	require.Equal(t, []uint64{90, 210}, got.PostBalances)
	require.True(t, got.HasInnerInstructions)
	require.Len(t, got.InnerInstructions, 1)
	require.EqualValues(t, 1, got.InnerInstructions[0].Instructions[0].ProgramIDIndex)

	require.True(t, got.HasLogMessages)
	require.NotNil(t, got.LogStream)
	require.Len(t, got.LogStream.Events, 2)

	require.Len(t, got.PreTokenBalances, 1)
	require.EqualValues(t, 3, got.PreTokenBalances[0].MintID)
	require.EqualValues(t, 0, got.PreTokenBalances[0].OwnerID)
	require.Equal(t, uint64(42), got.PreTokenBalances[0].Amount)

	require.Len(t, got.Rewards, 1)
	require.EqualValues(t, 2, got.Rewards[0].PubkeyID)
	require.EqualValues(t, -1, got.Rewards[0].RewardType)

	require.NotNil(t, got.ComputeUnitsConsumed)
	require.Equal(t, uint64(1500), *got.ComputeUnitsConsumed)
}

// TestEncodeTokenBalanceMalformedPubkeyIsNonFatal mirrors the counting
// pass's countBase58: a token-balance pubkey that fails to base58-decode
// must not abort Encode, it's simply omitted (registry id 0).
func TestEncodeTokenBalanceMalformedPubkeyIsNonFatal(t *testing.T) {
	keys := newFakeKeys()
	keys.add(1, keyFor(1))

	meta := &txmeta.Meta{
		PreTokenBalances: []txmeta.TokenBalance{
			{AccountIndex: 0, Mint: "not-valid-base58-!!!", Owner: "", ProgramID: "", Amount: "42", Decimals: 6},
		},
	}

	w := compactcodec.NewWriter()
	require.NoError(t, Encode(w, meta, keys, keys, keys))

	r := compactcodec.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.True(t, r.AtEOF())

	require.Len(t, got.PreTokenBalances, 1)
	require.EqualValues(t, 0, got.PreTokenBalances[0].MintID)
}
