package optimizer

import (
	"fmt"
	"os"
)

// phaseDone reports whether path already holds a completed phase's output,
// per spec §5's resume discipline: a phase is considered done iff its
// output file exists and is non-empty.
func phaseDone(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Size() > 0
}

// writeFileAtomic writes data to path via a sibling .tmp file, fsyncs it,
// then renames it into place — so a crash mid-write never leaves a
// truncated file at path for phaseDone to mistake as complete.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("optimizer: creating %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("optimizer: writing %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("optimizer: fsyncing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("optimizer: closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("optimizer: renaming %s to %s: %w", tmp, path, err)
	}
	return nil
}
