package optimizer

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/schollz/progressbar/v3"

	"github.com/augustin-cheron/blockzilla/blockgroup"
	"github.com/augustin-cheron/blockzilla/readahead"
)

// archive is an open epoch-<N>.car.zst file: a decompressing block-group
// reader plus the handles it must close when done.
type archive struct {
	file   *os.File
	zdec   *zstd.Decoder
	cache  *readahead.CachingReader
	Reader *blockgroup.Reader
}

// zstdReadCloser adapts *zstd.Decoder (whose Close takes no error) to
// io.ReadCloser so it can be wrapped by readahead.CachingReader.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// openArchive opens the zstd-compressed CAR file at path and wraps it in a
// blockgroup.Reader, reporting read progress on a bar (pass false for
// showProgress to skip bar rendering, e.g. under --progress-every 0). The
// decompressed stream is wrapped in a readahead.CachingReader: the CAR
// format's section framing requires peeking a size before reading the
// section body, so a plain zstd.Decoder's small internal buffer turns every
// block group into several short reads.
func openArchive(path string, showProgress bool) (*archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("optimizer: opening archive %s: %w", path, err)
	}

	var src io.Reader = file
	if showProgress {
		if fi, err := file.Stat(); err == nil {
			bar := progressbar.DefaultBytes(fi.Size(), "reading "+path)
			src = progressbar.NewReader(file, bar)
		}
	}

	zdec, err := zstd.NewReader(src)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("optimizer: creating zstd reader for %s: %w", path, err)
	}

	cache, err := readahead.NewCachingReaderFromReader(zstdReadCloser{zdec}, readahead.DefaultChunkSize)
	if err != nil {
		zdec.Close()
		file.Close()
		return nil, fmt.Errorf("optimizer: wrapping %s in a readahead cache: %w", path, err)
	}

	return &archive{
		file:   file,
		zdec:   zdec,
		cache:  cache,
		Reader: blockgroup.NewReader(cache),
	}, nil
}

func (a *archive) Close() error {
	a.cache.Close()
	return a.file.Close()
}
