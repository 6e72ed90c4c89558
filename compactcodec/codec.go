// Package compactcodec provides the shared binary primitives used by the
// compact block/transaction/metadata encoding: little-endian fixed-width
// scalars, leb128-style varints for sequence lengths, tag-byte enum
// discriminants, and 0|1-prefixed options.
package compactcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is wrapped around io.EOF/io.ErrUnexpectedEOF encountered
// while reading a non-optional field.
var ErrUnexpectedEOF = errors.New("compactcodec: unexpected end of record")

// Writer appends fields to an in-memory buffer in declaration order.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// U8 appends a single byte.
func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

// Bool appends a 0|1 byte.
func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
	} else {
		w.U8(0)
	}
}

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// U64 appends a little-endian uint64.
func (w *Writer) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I32 appends a little-endian int32.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// Varint appends an unsigned LEB128 varint.
func (w *Writer) Varint(v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	w.buf = append(w.buf, b[:n]...)
}

// Raw appends bytes without any length prefix.
func (w *Writer) Raw(p []byte) { w.buf = append(w.buf, p...) }

// Fixed appends p verbatim, with no length prefix; used for fixed-width
// fields such as 32-byte keys and 64-byte signatures.
func (w *Writer) Fixed(p []byte) { w.buf = append(w.buf, p...) }

// LenPrefixedBytes appends a varint length followed by the raw bytes.
func (w *Writer) LenPrefixedBytes(p []byte) {
	w.Varint(uint64(len(p)))
	w.buf = append(w.buf, p...)
}

// Reader consumes fields from a byte slice in declaration order.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential field reads.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// AtEOF reports whether every byte has been consumed.
func (r *Reader) AtEOF() bool { return r.pos >= len(r.buf) }

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	if r.pos >= len(r.buf) {
		return 0, fmt.Errorf("%w: reading u8", ErrUnexpectedEOF)
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// Bool reads a 0|1 byte.
func (r *Reader) Bool() (bool, error) {
	v, err := r.U8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("%w: reading u32", ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, fmt.Errorf("%w: reading u64", ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// Varint reads an unsigned LEB128 varint.
func (r *Reader) Varint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: reading varint", ErrUnexpectedEOF)
	}
	r.pos += n
	return v, nil
}

// Fixed reads exactly n raw bytes.
func (r *Reader) Fixed(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("%w: reading %d fixed bytes", ErrUnexpectedEOF, n)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// LenPrefixedBytes reads a varint length followed by that many raw bytes.
func (r *Reader) LenPrefixedBytes() ([]byte, error) {
	n, err := r.Varint()
	if err != nil {
		return nil, err
	}
	return r.Fixed(int(n))
}

// OptionTagAllowEOF reads a discriminant byte for a trailing optional
// field, treating a clean end-of-buffer as the semantic "None" rather than
// an error (the legacy metadata encoding's optional-trailing-field
// convention, spec.md §9).
func (r *Reader) OptionTagAllowEOF() (present bool, eof bool, err error) {
	if r.pos >= len(r.buf) {
		return false, true, nil
	}
	v := r.buf[r.pos]
	r.pos++
	return v != 0, false, nil
}
