package logstream

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

type testKeys struct {
	byText map[string]uint32
	byID   map[uint32][32]byte
}

func newTestKeys() *testKeys {
	return &testKeys{byText: map[string]uint32{}, byID: map[uint32][32]byte{}}
}

func (k *testKeys) LookupBase58(text string) (uint32, bool) {
	id, ok := k.byText[text]
	return id, ok
}

func (k *testKeys) Get(id uint32) ([32]byte, bool) {
	key, ok := k.byID[id]
	return key, ok
}

func (k *testKeys) add(id uint32, key [32]byte) {
	k.byText[base58.Encode(key[:])] = id
	k.byID[id] = key
}

func testKey(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func roundTrip(t *testing.T, line string, keys *testKeys) LogEvent {
	t.Helper()
	st := NewStringTable()
	dt := NewDataTable()
	ev := Classify(line, keys, st, dt)
	got := Render(ev, keys, st, dt)
	require.Equal(t, line, got)
	return ev
}

func TestClassifyInvokeSuccess(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xAA))
	pk := base58.Encode(testKey(0xAA)[:])

	ev := roundTrip(t, "Program "+pk+" invoke [1]", keys)
	require.Equal(t, KindInvoke, ev.Kind)
	require.EqualValues(t, 1, ev.Depth)

	roundTrip(t, "Program "+pk+" success", keys)
}

func TestClassifyConsumed(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xBB))
	pk := base58.Encode(testKey(0xBB)[:])

	ev := roundTrip(t, "Program "+pk+" consumed 1000 of 200000 compute units", keys)
	require.Equal(t, KindConsumed, ev.Kind)
	require.EqualValues(t, 1000, ev.Used)
	require.EqualValues(t, 200000, ev.Limit)
}

func TestClassifyCustomProgramError(t *testing.T) {
	keys := newTestKeys()
	ev := roundTrip(t, "custom program error: 0x1", keys)
	require.Equal(t, KindCustomProgramError, ev.Kind)
	require.EqualValues(t, 1, ev.Code)
}

func TestClassifyFailure(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xCC))
	pk := base58.Encode(testKey(0xCC)[:])

	roundTrip(t, "Program "+pk+" failed: invalid account data for instruction", keys)
	roundTrip(t, "Program "+pk+" failed: invalid program argument", keys)
	roundTrip(t, "Program "+pk+" failed: something went wrong", keys)
}

func TestClassifyProgramLogWithTokenDispatch(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xDD))
	pk := base58.Encode(testKey(0xDD)[:])

	ev := roundTrip(t, "Program "+pk+" log: Instruction: Transfer", keys)
	require.Equal(t, KindProgramLogWithID, ev.Kind)
}

func TestClassifyProgramLogNoIDFallback(t *testing.T) {
	keys := newTestKeys()
	ev := roundTrip(t, "Program log: some unrecognized payload text", keys)
	require.Equal(t, KindProgramLogNoID, ev.Kind)
	require.Equal(t, ProgramLogUnknown, ev.ProgramLog.Kind)
}

func TestClassifyPlainFallback(t *testing.T) {
	keys := newTestKeys()
	ev := roundTrip(t, "some totally unstructured line", keys)
	require.Equal(t, KindPlain, ev.Kind)
}

func TestClassifyProgramData(t *testing.T) {
	keys := newTestKeys()
	ev := roundTrip(t, "Program data: aGVsbG8= d29ybGQ=", keys)
	require.Equal(t, KindData, ev.Kind)
}

func TestClassifyProgramReturn(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xEE))
	pk := base58.Encode(testKey(0xEE)[:])

	ev := roundTrip(t, "Program return: "+pk+" aGVsbG8=", keys)
	require.Equal(t, KindReturn, ev.Kind)
}

// TestClassifyProgramDataEmpty and TestClassifyProgramReturnEmpty cover
// spec's boundary behavior: a data line with zero base64 tokens is a valid
// empty data-array entry, not an unparsed line.
func TestClassifyProgramDataEmpty(t *testing.T) {
	keys := newTestKeys()
	st := NewStringTable()
	dt := NewDataTable()

	ev := Classify("Program data: ", keys, st, dt)
	require.Equal(t, KindData, ev.Kind)
	require.Empty(t, dt.ResolveTokens(ev.Data))

	got := Render(ev, keys, st, dt)
	require.Equal(t, "Program data: ", got)
}

func TestClassifyProgramReturnEmpty(t *testing.T) {
	keys := newTestKeys()
	keys.add(1, testKey(0xFF))
	pk := base58.Encode(testKey(0xFF)[:])
	st := NewStringTable()
	dt := NewDataTable()

	ev := Classify("Program return: "+pk+" ", keys, st, dt)
	require.Equal(t, KindReturn, ev.Kind)
	require.Empty(t, dt.ResolveTokens(ev.Data))

	got := Render(ev, keys, st, dt)
	require.Equal(t, "Program return: "+pk+" ", got)
}

func TestClassifyInstructionAnchor(t *testing.T) {
	keys := newTestKeys()
	ev := roundTrip(t, "Program log: Instruction: MyCustomIx", keys)
	require.Equal(t, KindProgramLogNoID, ev.Kind)
	require.Equal(t, ProgramLogAnchorInstruction, ev.ProgramLog.Kind)
}
