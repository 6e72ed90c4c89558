package txcompact

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/augustin-cheron/blockzilla/compactcodec"
)

type fakeKeys struct {
	ids map[[32]byte]uint32
}

func (k *fakeKeys) LookupUnchecked(key [32]byte) uint32 {
	id, ok := k.ids[key]
	if !ok {
		panic("missing key")
	}
	return id
}

type fakeHashes struct {
	ids map[[32]byte]int32
}

func (h *fakeHashes) Lookup(hash [32]byte) (int32, bool) {
	id, ok := h.ids[hash]
	return id, ok
}

func keyFor(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func sigFor(b byte) [64]byte {
	var s [64]byte
	s[0] = b
	return s
}

func TestEncodeDecodeLegacyTransaction(t *testing.T) {
	k1, k2, k3 := keyFor(1), keyFor(2), keyFor(3)
	hash := keyFor(9)

	keys := &fakeKeys{ids: map[[32]byte]uint32{k1: 10, k2: 11, k3: 12}}
	hashes := &fakeHashes{ids: map[[32]byte]int32{hash: 5}}

	tx := &solana.Transaction{
		Signatures: []solana.Signature{solana.Signature(sigFor(0xAA))},
	}
	tx.Message.Header = solana.MessageHeader{NumRequiredSignatures: 1, NumReadonlySignedAccounts: 0, NumReadonlyUnsignedAccounts: 1}
	tx.Message.AccountKeys = []solana.PublicKey{solana.PublicKey(k1), solana.PublicKey(k2), solana.PublicKey(k3)}
	tx.Message.RecentBlockhash = solana.Hash(hash)
	tx.Message.Instructions = []solana.CompiledInstruction{
		{ProgramIDIndex: 2, Accounts: []uint16{0, 1}, Data: []byte{1, 2, 3}},
	}

	w := compactcodec.NewWriter()
	Encode(w, tx, keys, hashes)

	r := compactcodec.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.True(t, r.AtEOF())

	require.Equal(t, MessageLegacy, got.Kind)
	require.Equal(t, []uint32{10, 11, 12}, got.AccountKeyIDs)
	require.Equal(t, BlockhashRefID, got.BlockhashRef)
	require.EqualValues(t, 5, got.BlockhashID)
	require.Len(t, got.Instructions, 1)
	require.Equal(t, uint8(2), got.Instructions[0].ProgramIDIndex)
	require.Equal(t, []uint8{0, 1}, got.Instructions[0].Accounts)
	require.Equal(t, []byte{1, 2, 3}, got.Instructions[0].Data)
}

// TestDecodeV0TransactionWithNonce exercises the V0 + durable-nonce branch
// of Decode directly against hand-built bytes (mirroring what Encode would
// emit for a versioned message), rather than through solana.Transaction:
// whether a zero-value-constructed Message reports IsVersioned() true
// depends on a decoder-internal flag this package has no business poking at.
func TestDecodeV0TransactionWithNonce(t *testing.T) {
	nonce := keyFor(0xEE)

	w := compactcodec.NewWriter()
	w.Varint(0) // no signatures
	w.U8(uint8(MessageV0))
	w.U8(1) // numRequiredSignatures
	w.U8(0)
	w.U8(0)
	w.Varint(2) // account key count
	w.U32(1)
	w.U32(2)
	w.U8(uint8(BlockhashRefNonce))
	w.Fixed(nonce[:])
	w.Varint(0) // instruction count
	w.Varint(1) // address table lookup count
	w.U32(3)
	w.Varint(1)
	w.U8(0)
	w.Varint(2)
	w.U8(1)
	w.U8(2)

	r := compactcodec.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.True(t, r.AtEOF())

	require.Equal(t, MessageV0, got.Kind)
	require.Equal(t, BlockhashRefNonce, got.BlockhashRef)
	require.Equal(t, nonce, got.Nonce)
	require.Len(t, got.AddressTableLookups, 1)
	require.EqualValues(t, 3, got.AddressTableLookups[0].AccountKeyID)
	require.Equal(t, []uint8{0}, got.AddressTableLookups[0].WritableIndexes)
	require.Equal(t, []uint8{1, 2}, got.AddressTableLookups[0].ReadonlyIndexes)
}
