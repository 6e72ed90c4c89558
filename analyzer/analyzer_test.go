package analyzer

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"github.com/augustin-cheron/blockzilla/compactcodec"
	"github.com/augustin-cheron/blockzilla/frame"
	"github.com/augustin-cheron/blockzilla/logstream"
	"github.com/augustin-cheron/blockzilla/metacompact"
	"github.com/augustin-cheron/blockzilla/optimizer"
	"github.com/augustin-cheron/blockzilla/txcompact"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

// fakeKeys satisfies every registry-shaped interface this fixture needs:
// txcompact.KeyRegistry, txcompact.HashRegistry, metacompact's key/hash/store
// trio, and logstream.KeyIndex/KeyStore — the same pattern txcompact_test.go
// and metacompact_test.go use for their own fixtures.
type fakeKeys struct {
	byKey  map[[32]byte]uint32
	byID   map[uint32][32]byte
	hashes map[[32]byte]int32
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{byKey: map[[32]byte]uint32{}, byID: map[uint32][32]byte{}, hashes: map[[32]byte]int32{}}
}

func (k *fakeKeys) add(id uint32, key [32]byte) {
	k.byKey[key] = id
	k.byID[id] = key
}

func (k *fakeKeys) LookupUnchecked(key [32]byte) uint32 {
	id, ok := k.byKey[key]
	if !ok {
		panic("missing key")
	}
	return id
}

func (k *fakeKeys) LookupBase58(text string) (uint32, bool) {
	decoded, err := base58.Decode(text)
	if err != nil || len(decoded) != 32 {
		return 0, false
	}
	var key [32]byte
	copy(key[:], decoded)
	id, ok := k.byKey[key]
	return id, ok
}

func (k *fakeKeys) Get(id uint32) ([32]byte, bool) {
	key, ok := k.byID[id]
	return key, ok
}

func (k *fakeKeys) Lookup(hash [32]byte) (int32, bool) {
	id, ok := k.hashes[hash]
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

// buildFixture produces a single-block, single-transaction compact.bin
// stream (one frame), returning the raw bytes plus the keys fixture so
// tests can also build a logstream.KeyStore out of it.
func buildFixture(t *testing.T) ([]byte, *fakeKeys) {
	t.Helper()

	keys := newFakeKeys()
	k1, k2 := keyFor(1), keyFor(2)
	keys.add(1, k1)
	keys.add(2, k2)
	blockhash := keyFor(9)
	keys.hashes[blockhash] = 0

	tx := &solana.Transaction{
		Signatures: []solana.Signature{solana.Signature(sigFor(0xAA))},
	}
	tx.Message.Header = solana.MessageHeader{NumRequiredSignatures: 1, NumReadonlyUnsignedAccounts: 1}
	tx.Message.AccountKeys = []solana.PublicKey{solana.PublicKey(k1), solana.PublicKey(k2)}
	tx.Message.RecentBlockhash = solana.Hash(blockhash)
	tx.Message.Instructions = []solana.CompiledInstruction{
		{ProgramIDIndex: 1, Accounts: []uint16{0}, Data: []byte{1, 2, 3}},
	}

	w := compactcodec.NewWriter()
	optimizer.EncodeBlockHeader(w, optimizer.BlockHeader{Slot: 10, ParentSlot: 9, BlockhashID: 0, PreviousBlockhashID: 0})
	w.Varint(1) // one transaction

	txcompact.Encode(w, tx, keys, keys)

	meta := &txmeta.Meta{
		Fee:          5000,
		PreBalances:  []uint64{100, 200},
		PostBalances: []uint64{90, 210},
		HasLogMessages: true,
		LogMessages: []string{
			"Program " + base58.Encode(k1[:]) + " invoke [1]",
			"Program log: hello",
			"Program " + base58.Encode(k1[:]) + " success",
		},
	}
	w.Bool(true)
	require.NoError(t, metacompact.Encode(w, meta, keys, keys, keys))

	var buf bytes.Buffer
	fw := frame.NewWriter(&buf)
	require.NoError(t, fw.Write(w.Bytes()))

	return buf.Bytes(), keys
}

func TestAnalyzeTalliesBlockAndLogKinds(t *testing.T) {
	raw, _ := buildFixture(t)

	rep, err := Analyze(bytes.NewReader(raw), 0)
	require.NoError(t, err)

	require.EqualValues(t, 1, rep.Blocks)
	require.EqualValues(t, 1, rep.Transactions)
	require.EqualValues(t, 1, rep.TransactionsWithMeta)
	require.Greater(t, rep.HeaderBytes, uint64(0))
	require.Greater(t, rep.Tx.AccountKeys, uint64(0))
	require.Greater(t, rep.Meta.EventsTotal, uint64(0))

	// Three log lines classify into Invoke, ProgramLogNoID, Success.
	require.Contains(t, rep.ByLogKind, logstream.KindInvoke)
	require.Contains(t, rep.ByLogKind, logstream.KindSuccess)
}

func TestAnalyzeRespectsBlockLimit(t *testing.T) {
	raw, _ := buildFixture(t)
	// Two copies of the same single-block frame stream.
	both := append(append([]byte{}, raw...), raw...)

	rep, err := Analyze(bytes.NewReader(both), 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, rep.Blocks)
}

func TestDumpLogStringsRendersLines(t *testing.T) {
	raw, keys := buildFixture(t)

	var out bytes.Buffer
	err := DumpLogStrings(bytes.NewReader(raw), &out, keys, 0, 0, false)
	require.NoError(t, err)

	lines := out.String()
	require.Contains(t, lines, "invoke")
	require.Contains(t, lines, "hello")
	require.Contains(t, lines, "success")
}

func TestDumpLogStringsRespectsMaxLines(t *testing.T) {
	raw, keys := buildFixture(t)

	var out bytes.Buffer
	err := DumpLogStrings(bytes.NewReader(raw), &out, keys, 0, 1, false)
	require.NoError(t, err)

	require.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestCollectDataTokensEmptyWhenNoDataEvents(t *testing.T) {
	raw, _ := buildFixture(t)

	tokens, err := CollectDataTokens(bytes.NewReader(raw), 0, 0)
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestCollectDataTokensCollectsProgramData(t *testing.T) {
	keys := newFakeKeys()
	k1 := keyFor(1)
	keys.add(1, k1)
	blockhash := keyFor(9)
	keys.hashes[blockhash] = 0

	tx := &solana.Transaction{Signatures: []solana.Signature{solana.Signature(sigFor(0xAA))}}
	tx.Message.Header = solana.MessageHeader{NumRequiredSignatures: 1}
	tx.Message.AccountKeys = []solana.PublicKey{solana.PublicKey(k1)}
	tx.Message.RecentBlockhash = solana.Hash(blockhash)

	w := compactcodec.NewWriter()
	optimizer.EncodeBlockHeader(w, optimizer.BlockHeader{Slot: 1, ParentSlot: 0})
	w.Varint(1)
	txcompact.Encode(w, tx, keys, keys)

	meta := &txmeta.Meta{
		HasLogMessages: true,
		LogMessages: []string{
			"Program data: aGVsbG8= d29ybGQ=",
		},
	}
	w.Bool(true)
	require.NoError(t, metacompact.Encode(w, meta, keys, keys, keys))

	var buf bytes.Buffer
	fw := frame.NewWriter(&buf)
	require.NoError(t, fw.Write(w.Bytes()))

	tokens, err := CollectDataTokens(bytes.NewReader(buf.Bytes()), 0, 0)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, [][]byte{[]byte("hello"), []byte("world")}, tokens[0])
}
