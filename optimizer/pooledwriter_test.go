package optimizer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPooledWriterFlushesPastThreshold(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "out.bin"))
	require.NoError(t, err)
	defer f.Close()

	pw := newPooledWriter(f)
	defer pw.release()

	small := []byte("hello")
	n, err := pw.Write(small)
	require.NoError(t, err)
	require.Equal(t, len(small), n)

	// Below flushThreshold: nothing has reached the file yet.
	fi, err := f.Stat()
	require.NoError(t, err)
	require.Zero(t, fi.Size())

	big := bytes.Repeat([]byte{0xAB}, flushThreshold)
	_, err = pw.Write(big)
	require.NoError(t, err)

	fi, err = f.Stat()
	require.NoError(t, err)
	require.EqualValues(t, len(small)+len(big), fi.Size())
}

func TestPooledWriterFlushIsIdempotentOnEmptyBuffer(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "out.bin"))
	require.NoError(t, err)
	defer f.Close()

	pw := newPooledWriter(f)
	defer pw.release()

	require.NoError(t, pw.flush())
	require.NoError(t, pw.flush())

	fi, err := f.Stat()
	require.NoError(t, err)
	require.Zero(t, fi.Size())
}
