// Package blockgroup streams sections from a decompressed archive byte
// stream and reassembles them into groups of nodes culminating in a
// block-root node: one group per slot.
package blockgroup

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
)

// ErrUnexpectedEndOfGroup is returned when the stream ends in the middle of
// accumulating a group (after at least one section of that group was read).
var ErrUnexpectedEndOfGroup = errors.New("blockgroup: unexpected end of stream mid-group")

// cidPrefixLen is the fixed byte length of a CIDv1/dag-cbor/sha2-256 prefix:
// version(1) + codec(1) + hash-fn(1) + digest-len(1) = 4, plus 32-byte digest.
const cidPrefixLen = 4 + 32

// readSection reads one `(uvarint size)(size bytes)` section from r. The
// returned digest and payload slices are borrowed from buf and are only
// valid until the next call to readSection with the same buf.
func readSection(r *bufio.Reader, buf *[]byte) (digest [32]byte, payload []byte, err error) {
	if _, err := r.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return digest, nil, io.EOF
		}
		return digest, nil, fmt.Errorf("blockgroup: peeking next section: %w", err)
	}
	size, err := binary.ReadUvarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return digest, nil, io.ErrUnexpectedEOF
		}
		return digest, nil, fmt.Errorf("blockgroup: reading section size varint: %w", err)
	}
	if size < cidPrefixLen {
		return digest, nil, fmt.Errorf("blockgroup: section size %d shorter than cid prefix", size)
	}
	if cap(*buf) < int(size) {
		*buf = make([]byte, size)
	}
	section := (*buf)[:size]
	if _, err := io.ReadFull(r, section); err != nil {
		return digest, nil, fmt.Errorf("blockgroup: reading section body: %w", err)
	}
	cidLen, parsed, err := cid.CidFromBytes(section)
	if err != nil {
		return digest, nil, fmt.Errorf("blockgroup: parsing content id: %w", err)
	}
	hash := parsed.Hash()
	digestBytes := hash.Digest()
	if len(digestBytes) < 2 {
		return digest, nil, fmt.Errorf("blockgroup: digest shorter than 2 bytes")
	}
	if len(digestBytes) != 32 {
		return digest, nil, fmt.Errorf("blockgroup: digest length %d, want 32", len(digestBytes))
	}
	copy(digest[:], digestBytes)
	return digest, section[cidLen:], nil
}
