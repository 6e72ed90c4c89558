// Package tagged decodes the CBOR-style self-describing tagged-array node
// encoding used inside the archive: each node is an array whose first
// element is a small unsigned kind tag, followed by kind-specific fields.
package tagged

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
)

// Kind identifies one of the eight recognized node shapes.
type Kind uint64

const (
	KindTransaction Kind = iota
	KindEntry
	KindBlock
	KindSubset
	KindEpoch
	KindRewards
	KindDataFrame
)

func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "Transaction"
	case KindEntry:
		return "Entry"
	case KindBlock:
		return "Block"
	case KindSubset:
		return "Subset"
	case KindEpoch:
		return "Epoch"
	case KindRewards:
		return "Rewards"
	case KindDataFrame:
		return "DataFrame"
	default:
		return fmt.Sprintf("Kind(%d)", uint64(k))
	}
}

// CidRef is a borrowed content-id reference: the raw prefixed bytes of a
// CIDv1/dag-cbor/sha2-256 identifier, without the multihash interior parsed.
type CidRef struct {
	raw []byte
}

// Bytes returns the full 36-byte prefix+digest encoding.
func (c CidRef) Bytes() []byte { return c.raw }

// Digest returns the trailing 32-byte hash digest.
func (c CidRef) Digest() [32]byte {
	var out [32]byte
	if len(c.raw) >= 32 {
		copy(out[:], c.raw[len(c.raw)-32:])
	}
	return out
}

func (c CidRef) String() string {
	id, err := cid.Cast(c.raw)
	if err != nil {
		return fmt.Sprintf("<invalid cid: %x>", c.raw)
	}
	return id.String()
}

func cidRefFromRaw(raw cbor.RawMessage) (CidRef, error) {
	var link cid.Cid
	if err := cbor.Unmarshal(raw, &link); err != nil {
		return CidRef{}, fmt.Errorf("tagged: decoding cid link: %w", err)
	}
	b := link.Bytes()
	if len(b) < 2+32 {
		return CidRef{}, fmt.Errorf("tagged: %w: digest shorter than 2 bytes", ErrMalformedCid)
	}
	return CidRef{raw: b}, nil
}

// LinkList is a span view over an array of CID links: it remembers the raw
// element slices without eagerly decoding every one.
type LinkList struct {
	elems []cbor.RawMessage
}

// Len returns the number of links.
func (l LinkList) Len() int { return len(l.elems) }

// At decodes and returns the i-th link.
func (l LinkList) At(i int) (CidRef, error) {
	if i < 0 || i >= len(l.elems) {
		return CidRef{}, fmt.Errorf("tagged: link index %d out of range [0,%d)", i, len(l.elems))
	}
	return cidRefFromRaw(l.elems[i])
}

// Iter returns a stateful iterator over the list, yielding one CidRef per call.
func (l LinkList) Iter() *LinkIter {
	return &LinkIter{list: l}
}

// LinkIter is a stateful cursor over a LinkList.
type LinkIter struct {
	list LinkList
	pos  int
}

// Next returns the next link, or ok=false when the list is exhausted.
func (it *LinkIter) Next() (ref CidRef, ok bool, err error) {
	if it.pos >= it.list.Len() {
		return CidRef{}, false, nil
	}
	ref, err = it.list.At(it.pos)
	it.pos++
	return ref, err == nil, err
}
