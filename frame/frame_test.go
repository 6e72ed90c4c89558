package frame

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	records := [][]byte{
		[]byte("hello"),
		{},
		bytes.Repeat([]byte{0xAB}, 4096),
	}
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}

	r := NewReader(&buf)
	for _, want := range records {
		got, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderShortFrame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write([]byte("0123456789")))

	truncated := buf.Bytes()[:len(buf.Bytes())-3]
	r := NewReader(bytes.NewReader(truncated))
	_, err := r.Next()
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestReaderRejectsOversizedFrame(t *testing.T) {
	var lenBuf [4]byte
	lenBuf[0], lenBuf[1], lenBuf[2], lenBuf[3] = 0xFF, 0xFF, 0xFF, 0x7F
	r := NewReader(bytes.NewReader(lenBuf[:]))
	_, err := r.Next()
	require.Error(t, err)
}
