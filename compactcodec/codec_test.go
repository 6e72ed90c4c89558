package compactcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(7)
	w.Bool(true)
	w.U32(0xDEADBEEF)
	w.U64(1<<40 + 3)
	w.Varint(300)
	w.LenPrefixedBytes([]byte("hello"))
	w.Fixed([]byte{1, 2, 3, 4})

	r := NewReader(w.Bytes())
	u8, err := r.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(7), u8)

	b, err := r.Bool()
	require.NoError(t, err)
	require.True(t, b)

	u32, err := r.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.U64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<40+3), u64)

	vi, err := r.Varint()
	require.NoError(t, err)
	require.Equal(t, uint64(300), vi)

	lp, err := r.LenPrefixedBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), lp)

	fixed, err := r.Fixed(4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, fixed)

	require.True(t, r.AtEOF())
}

func TestOptionTagAllowEOF(t *testing.T) {
	r := NewReader(nil)
	present, eof, err := r.OptionTagAllowEOF()
	require.NoError(t, err)
	require.True(t, eof)
	require.False(t, present)

	w := NewWriter()
	w.Bool(true)
	r2 := NewReader(w.Bytes())
	present, eof, err = r2.OptionTagAllowEOF()
	require.NoError(t, err)
	require.False(t, eof)
	require.True(t, present)
}

func TestReaderErrorsOnShortInput(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.U32()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}
