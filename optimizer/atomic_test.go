package optimizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhaseDone(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.bin")
	require.False(t, phaseDone(missing))

	empty := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.False(t, phaseDone(empty))

	nonEmpty := filepath.Join(dir, "nonempty.bin")
	require.NoError(t, os.WriteFile(nonEmpty, []byte{1, 2, 3}, 0o644))
	require.True(t, phaseDone(nonEmpty))
}

func TestWriteFileAtomicLeavesNoTempOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	require.NoError(t, writeFileAtomic(path, []byte("hello")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomicOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	require.NoError(t, writeFileAtomic(path, []byte("second, longer")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("second, longer"), got)
}
