package blockgroup

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/augustin-cheron/blockzilla/tagged"
)

// Group is a flat digest-to-payload table for all sections read between two
// block-root deliveries, plus the block-root payload itself.
type Group struct {
	blockPayload []byte
	byDigest     map[[32]byte][]byte
}

// BlockPayload returns the bytes of the block-root node.
func (g *Group) BlockPayload() []byte { return g.blockPayload }

// DecodeByDigest looks up a child payload (entry or transaction) by its
// 32-byte digest and decodes it as a generic tagged node.
func (g *Group) DecodeByDigest(digest [32]byte) ([]byte, error) {
	payload, ok := g.byDigest[digest]
	if !ok {
		return nil, fmt.Errorf("blockgroup: no section found for digest %x", digest)
	}
	return payload, nil
}

// Reader streams sections from a decompressed archive and reassembles
// groups, exposing a transaction iterator per group via TxIter.
type Reader struct {
	br  *bufio.Reader
	buf []byte
}

// NewReader wraps r (already decompressed) for group-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 1<<20)}
}

// NextGroup accumulates sections until a block-root node is seen, returning
// the completed Group. io.EOF (with a nil Group) is returned only when the
// stream ends cleanly between groups.
func (r *Reader) NextGroup() (*Group, error) {
	g := &Group{byDigest: make(map[[32]byte][]byte)}
	sawAny := false
	for {
		digest, payload, err := readSection(r.br, &r.buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sawAny {
					return nil, fmt.Errorf("%w", ErrUnexpectedEndOfGroup)
				}
				return nil, io.EOF
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: %v", ErrUnexpectedEndOfGroup, err)
			}
			return nil, err
		}
		sawAny = true
		owned := make([]byte, len(payload))
		copy(owned, payload)
		g.byDigest[digest] = owned

		kind, err := tagged.PeekKind(owned)
		if err != nil {
			return nil, fmt.Errorf("blockgroup: peeking node kind: %w", err)
		}
		if kind == tagged.KindBlock {
			g.blockPayload = owned
			return g, nil
		}
	}
}

// Transactions returns a stateful iterator over the group's block, walking
// entries in order and, within each entry, transactions in order.
func (g *Group) Transactions() (*TxIter, error) {
	block, err := tagged.DecodeBlock(g.blockPayload)
	if err != nil {
		return nil, fmt.Errorf("blockgroup: decoding block root: %w", err)
	}
	return &TxIter{group: g, block: block, entryPos: 0}, nil
}
