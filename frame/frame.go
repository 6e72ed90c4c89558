// Package frame implements the compact-archive frame codec: a sequence of
// (u32 little-endian length || payload) records over a byte stream.
package frame

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrShortFrame is returned when a frame's length prefix promises more bytes
// than the underlying stream actually delivers before EOF.
var ErrShortFrame = errors.New("frame: short read inside frame body")

// MaxFrameLen bounds a single frame's payload to guard against a corrupt
// length prefix turning into a multi-gigabyte allocation.
const MaxFrameLen = 1 << 30 // 1 GiB

// Reader reads length-prefixed frames from an underlying stream, reusing one
// backing buffer across calls.
type Reader struct {
	r   *bufio.Reader
	buf []byte
}

// NewReader wraps r for frame-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<20)}
}

// Next reads the next frame's raw bytes. The returned slice is only valid
// until the next call to Next. io.EOF is returned (with a nil slice) only
// when the stream ends cleanly between frames.
func (fr *Reader) Next() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(fr.r, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("frame: reading length prefix: %w", err)
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	if n > MaxFrameLen {
		return nil, fmt.Errorf("frame: length %d exceeds max frame size %d", n, MaxFrameLen)
	}
	if cap(fr.buf) < int(n) {
		fr.buf = make([]byte, n)
	}
	fr.buf = fr.buf[:n]
	if _, err := io.ReadFull(fr.r, fr.buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: wanted %d bytes: %v", ErrShortFrame, n, err)
		}
		return nil, fmt.Errorf("frame: reading payload: %w", err)
	}
	return fr.buf, nil
}

// Writer appends length-prefixed frames to an underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for frame-at-a-time writing.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits one frame containing payload.
func (fw *Writer) Write(payload []byte) error {
	if len(payload) > MaxFrameLen {
		return fmt.Errorf("frame: payload of %d bytes exceeds max frame size %d", len(payload), MaxFrameLen)
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := fw.w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("frame: writing length prefix: %w", err)
	}
	if _, err := fw.w.Write(payload); err != nil {
		return fmt.Errorf("frame: writing payload: %w", err)
	}
	return nil
}
