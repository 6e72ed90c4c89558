package tagged

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const indefiniteArrayMajor = 0x9f

// PeekKind decodes only the array header and first element of an encoded
// node, returning its kind tag without decoding the remaining fields.
func PeekKind(raw []byte) (Kind, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("tagged: empty node bytes")
	}
	if raw[0] == indefiniteArrayMajor {
		return 0, ErrIndefiniteArray
	}
	var elems []cbor.RawMessage
	if err := cbor.Unmarshal(raw, &elems); err != nil {
		return 0, fmt.Errorf("tagged: decoding node array header: %w", err)
	}
	if len(elems) == 0 {
		return 0, fmt.Errorf("tagged: empty node array")
	}
	var kind uint64
	if err := cbor.Unmarshal(elems[0], &kind); err != nil {
		return 0, fmt.Errorf("tagged: decoding kind tag: %w", err)
	}
	if kind > uint64(KindDataFrame) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return Kind(kind), nil
}

func decodeElems(raw []byte) ([]cbor.RawMessage, error) {
	if len(raw) > 0 && raw[0] == indefiniteArrayMajor {
		return nil, ErrIndefiniteArray
	}
	var elems []cbor.RawMessage
	if err := cbor.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("tagged: decoding node array: %w", err)
	}
	return elems, nil
}

func decodeField[T any](elems []cbor.RawMessage, idx int, dst *T) error {
	if idx >= len(elems) {
		var zero T
		*dst = zero
		return nil
	}
	if err := cbor.Unmarshal(elems[idx], dst); err != nil {
		return fmt.Errorf("tagged: decoding field %d: %w", idx, err)
	}
	return nil
}

// Shredding is the [entry_end_idx, shred_end_idx] pair carried per-entry in a block.
type Shredding struct {
	EntryEndIdx int
	ShredEndIdx int
}

// SlotMeta carries a block's optional parent-slot, block-time, and
// block-height fields. BlockTime/BlockHeight are themselves CBOR-null-able
// options in the archive format, so HasBlockTime/HasBlockHeight reflect
// whether the field was actually present rather than merely non-zero.
type SlotMeta struct {
	ParentSlot     int
	HasBlockTime   bool
	BlockTime      int64
	HasBlockHeight bool
	BlockHeight    uint64
}

// Block is the decoded `{kind, slot, shredding, entries, meta, rewards?}` node.
type Block struct {
	Slot      int
	Shredding []Shredding
	Entries   LinkList
	Meta      SlotMeta
	Rewards   *CidRef
}

// DecodeBlock decodes raw into a Block node, failing if its kind tag isn't KindBlock.
func DecodeBlock(raw []byte) (*Block, error) {
	elems, err := decodeElems(raw)
	if err != nil {
		return nil, err
	}
	kind, err := firstKind(elems)
	if err != nil {
		return nil, err
	}
	if kind != KindBlock {
		return nil, fmt.Errorf("%w: expected Block, got %s", ErrWrongKind, kind)
	}
	b := &Block{}
	if err := decodeField(elems, 1, &b.Slot); err != nil {
		return nil, err
	}
	var rawShredding []cbor.RawMessage
	if err := decodeField(elems, 2, &rawShredding); err != nil {
		return nil, err
	}
	b.Shredding = make([]Shredding, 0, len(rawShredding))
	for _, s := range rawShredding {
		var pair []int
		if err := cbor.Unmarshal(s, &pair); err != nil {
			return nil, fmt.Errorf("tagged: decoding shredding entry: %w", err)
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("tagged: shredding entry has %d elements, want 2", len(pair))
		}
		b.Shredding = append(b.Shredding, Shredding{EntryEndIdx: pair[0], ShredEndIdx: pair[1]})
	}
	var entryElems []cbor.RawMessage
	if len(elems) > 3 {
		if err := cbor.Unmarshal(elems[3], &entryElems); err != nil {
			return nil, fmt.Errorf("tagged: decoding entries list: %w", err)
		}
	}
	b.Entries = LinkList{elems: entryElems}
	if len(elems) > 4 {
		var metaElems []cbor.RawMessage
		if err := cbor.Unmarshal(elems[4], &metaElems); err != nil {
			return nil, fmt.Errorf("tagged: decoding slot meta: %w", err)
		}
		if len(metaElems) > 0 {
			_ = cbor.Unmarshal(metaElems[0], &b.Meta.ParentSlot)
		}
		if len(metaElems) > 1 {
			var bt *int64
			if err := cbor.Unmarshal(metaElems[1], &bt); err == nil && bt != nil {
				b.Meta.HasBlockTime = true
				b.Meta.BlockTime = *bt
			}
		}
		if len(metaElems) > 2 {
			var bh *uint64
			if err := cbor.Unmarshal(metaElems[2], &bh); err == nil && bh != nil {
				b.Meta.HasBlockHeight = true
				b.Meta.BlockHeight = *bh
			}
		}
	}
	if len(elems) > 5 {
		var isNil bool
		if err := cbor.Unmarshal(elems[5], &isNil); err == nil && !isNil {
			// not a bool; fall through to link decode below
		}
		ref, err := tryCidRefFromRaw(elems[5])
		if err == nil {
			b.Rewards = &ref
		}
	}
	return b, nil
}

func tryCidRefFromRaw(raw cbor.RawMessage) (CidRef, error) {
	if string(raw) == "\xf6" { // CBOR null
		return CidRef{}, fmt.Errorf("tagged: nil rewards link")
	}
	return cidRefFromRaw(raw)
}

// Entry is the decoded `{kind, num_hashes, hash, transactions}` node.
type Entry struct {
	NumHashes    int
	Hash         [32]byte
	Transactions LinkList
}

// DecodeEntry decodes raw into an Entry node.
func DecodeEntry(raw []byte) (*Entry, error) {
	elems, err := decodeElems(raw)
	if err != nil {
		return nil, err
	}
	kind, err := firstKind(elems)
	if err != nil {
		return nil, err
	}
	if kind != KindEntry {
		return nil, fmt.Errorf("%w: expected Entry, got %s", ErrWrongKind, kind)
	}
	e := &Entry{}
	if err := decodeField(elems, 1, &e.NumHashes); err != nil {
		return nil, err
	}
	var hashBytes []byte
	if err := decodeField(elems, 2, &hashBytes); err != nil {
		return nil, err
	}
	copy(e.Hash[:], hashBytes)
	var txElems []cbor.RawMessage
	if len(elems) > 3 {
		if err := cbor.Unmarshal(elems[3], &txElems); err != nil {
			return nil, fmt.Errorf("tagged: decoding transactions list: %w", err)
		}
	}
	e.Transactions = LinkList{elems: txElems}
	return e, nil
}

// DataFrame is the decoded `{kind, hash?, index?, total?, data, next?}` node.
type DataFrame struct {
	Hash  *int
	Index *int
	Total *int
	Data  []byte
	Next  *CidRef
}

// DecodeDataFrame decodes raw into a DataFrame node.
func DecodeDataFrame(raw []byte) (*DataFrame, error) {
	elems, err := decodeElems(raw)
	if err != nil {
		return nil, err
	}
	kind, err := firstKind(elems)
	if err != nil {
		return nil, err
	}
	if kind != KindDataFrame {
		return nil, fmt.Errorf("%w: expected DataFrame, got %s", ErrWrongKind, kind)
	}
	df := &DataFrame{}
	df.Hash = decodeOptionalInt(elems, 1)
	df.Index = decodeOptionalInt(elems, 2)
	df.Total = decodeOptionalInt(elems, 3)
	if err := decodeField(elems, 4, &df.Data); err != nil {
		return nil, err
	}
	if len(elems) > 5 {
		if ref, err := tryCidRefFromRaw(elems[5]); err == nil {
			df.Next = &ref
			return nil, fmt.Errorf("%w", ErrContinuationUnsupported)
		}
	}
	return df, nil
}

func decodeOptionalInt(elems []cbor.RawMessage, idx int) *int {
	if idx >= len(elems) {
		return nil
	}
	if string(elems[idx]) == "\xf6" {
		return nil
	}
	var v int
	if err := cbor.Unmarshal(elems[idx], &v); err != nil {
		return nil
	}
	return &v
}

// Transaction is the decoded `{kind, data, metadata, slot, index?}` node.
type Transaction struct {
	Data     DataFrame
	Metadata DataFrame
	Slot     int
	Index    *int
}

// DecodeTransaction decodes raw into a Transaction node.
func DecodeTransaction(raw []byte) (*Transaction, error) {
	elems, err := decodeElems(raw)
	if err != nil {
		return nil, err
	}
	kind, err := firstKind(elems)
	if err != nil {
		return nil, err
	}
	if kind != KindTransaction {
		return nil, fmt.Errorf("%w: expected Transaction, got %s", ErrWrongKind, kind)
	}
	tx := &Transaction{}
	if len(elems) > 1 {
		df, err := DecodeDataFrame(wrapArray(1, elems[1]))
		if err != nil {
			return nil, fmt.Errorf("tagged: decoding transaction data frame: %w", err)
		}
		tx.Data = *df
	}
	if len(elems) > 2 {
		df, err := DecodeDataFrame(wrapArray(1, elems[2]))
		if err != nil {
			return nil, fmt.Errorf("tagged: decoding transaction metadata frame: %w", err)
		}
		tx.Metadata = *df
	}
	if err := decodeField(elems, 3, &tx.Slot); err != nil {
		return nil, err
	}
	tx.Index = decodeOptionalInt(elems, 4)
	return tx, nil
}

// wrapArray re-wraps a nested raw array element so it can be re-dispatched
// through the kind-tagged decoders, which all expect an outer array whose
// first element is the kind tag. Nested data-frame fields are themselves
// full tagged arrays, so this simply forwards the bytes.
func wrapArray(_ int, raw cbor.RawMessage) []byte { return raw }

func firstKind(elems []cbor.RawMessage) (Kind, error) {
	if len(elems) == 0 {
		return 0, fmt.Errorf("tagged: empty node array")
	}
	var kind uint64
	if err := cbor.Unmarshal(elems[0], &kind); err != nil {
		return 0, fmt.Errorf("tagged: decoding kind tag: %w", err)
	}
	if kind > uint64(KindDataFrame) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return Kind(kind), nil
}
