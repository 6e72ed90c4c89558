// Package txcompact rewrites a decoded Solana transaction into the compact
// representation of spec §3/§4.7: signatures and instruction payloads are
// copied verbatim, every account key (message-level and, for V0 messages,
// address-table-lookup-level) is replaced by its key-registry id, and the
// recent blockhash is resolved against the epoch's blockhash registry or
// carried inline as a durable-nonce value on a miss.
package txcompact

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/augustin-cheron/blockzilla/compactcodec"
)

// MessageKind discriminates the Legacy | V0 union (spec §3).
type MessageKind uint8

const (
	MessageLegacy MessageKind = iota
	MessageV0
)

// BlockhashRefKind discriminates a registry hit from a durable-nonce miss.
type BlockhashRefKind uint8

const (
	BlockhashRefID BlockhashRefKind = iota
	BlockhashRefNonce
)

// KeyRegistry resolves a 32-byte account key to its dense registry id,
// assuming membership (spec invariant I4: the counting pass is a superset
// of every key the encoding pass touches).
type KeyRegistry interface {
	LookupUnchecked(key [32]byte) uint32
}

// KeyStore resolves a registry id back to its 32-byte key.
type KeyStore interface {
	Get(id uint32) ([32]byte, bool)
}

// HashRegistry resolves a 32-byte blockhash to its signed registry id.
type HashRegistry interface {
	Lookup(hash [32]byte) (int32, bool)
}

// HashStore resolves a signed registry id back to its 32-byte blockhash.
type HashStore interface {
	Get(id int32) ([32]byte, bool)
}

// Instruction is a message-local compiled instruction, passed through
// unchanged apart from the (already small) account-index bytes.
type Instruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// AddressTableLookup is a V0 message's per-table lookup with its account
// key replaced by a registry id.
type AddressTableLookup struct {
	AccountKeyID    uint32
	WritableIndexes []uint8
	ReadonlyIndexes []uint8
}

// Transaction is the decoded compact transaction record (spec §3): the
// in-memory mirror of what Encode writes and Decode reads back.
type Transaction struct {
	Signatures [][64]byte

	Kind                        MessageKind
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
	AccountKeyIDs               []uint32

	BlockhashRef BlockhashRefKind
	BlockhashID  int32
	Nonce        [32]byte

	Instructions []Instruction

	AddressTableLookups []AddressTableLookup
}

// Encode writes tx's compact representation to w.
func Encode(w *compactcodec.Writer, tx *solana.Transaction, keys KeyRegistry, hashes HashRegistry) {
	w.Varint(uint64(len(tx.Signatures)))
	for _, sig := range tx.Signatures {
		w.Fixed(sig[:])
	}

	msg := &tx.Message
	if msg.IsVersioned() {
		w.U8(uint8(MessageV0))
	} else {
		w.U8(uint8(MessageLegacy))
	}

	w.U8(msg.Header.NumRequiredSignatures)
	w.U8(msg.Header.NumReadonlySignedAccounts)
	w.U8(msg.Header.NumReadonlyUnsignedAccounts)

	w.Varint(uint64(len(msg.AccountKeys)))
	for _, key := range msg.AccountKeys {
		w.U32(keys.LookupUnchecked(key))
	}

	if id, ok := hashes.Lookup(msg.RecentBlockhash); ok {
		w.U8(uint8(BlockhashRefID))
		w.I32(id)
	} else {
		w.U8(uint8(BlockhashRefNonce))
		w.Fixed(msg.RecentBlockhash[:])
	}

	w.Varint(uint64(len(msg.Instructions)))
	for _, ix := range msg.Instructions {
		w.U8(uint8(ix.ProgramIDIndex))
		w.Varint(uint64(len(ix.Accounts)))
		for _, a := range ix.Accounts {
			w.U8(uint8(a))
		}
		w.LenPrefixedBytes(ix.Data)
	}

	if msg.IsVersioned() {
		w.Varint(uint64(len(msg.AddressTableLookups)))
		for _, lookup := range msg.AddressTableLookups {
			w.U32(keys.LookupUnchecked(lookup.AccountKey))
			w.Varint(uint64(len(lookup.WritableIndexes)))
			for _, idx := range lookup.WritableIndexes {
				w.U8(idx)
			}
			w.Varint(uint64(len(lookup.ReadonlyIndexes)))
			for _, idx := range lookup.ReadonlyIndexes {
				w.U8(idx)
			}
		}
	}
}

// Decode reads one compact transaction record back from r.
func Decode(r *compactcodec.Reader) (*Transaction, error) {
	tx := &Transaction{}

	sigCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("txcompact: signature count: %w", err)
	}
	tx.Signatures = make([][64]byte, sigCount)
	for i := range tx.Signatures {
		b, err := r.Fixed(64)
		if err != nil {
			return nil, fmt.Errorf("txcompact: signature %d: %w", i, err)
		}
		copy(tx.Signatures[i][:], b)
	}

	kind, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("txcompact: message kind: %w", err)
	}
	tx.Kind = MessageKind(kind)

	if tx.NumRequiredSignatures, err = r.U8(); err != nil {
		return nil, fmt.Errorf("txcompact: header.numRequiredSignatures: %w", err)
	}
	if tx.NumReadonlySignedAccounts, err = r.U8(); err != nil {
		return nil, fmt.Errorf("txcompact: header.numReadonlySignedAccounts: %w", err)
	}
	if tx.NumReadonlyUnsignedAccounts, err = r.U8(); err != nil {
		return nil, fmt.Errorf("txcompact: header.numReadonlyUnsignedAccounts: %w", err)
	}

	keyCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("txcompact: account key count: %w", err)
	}
	tx.AccountKeyIDs = make([]uint32, keyCount)
	for i := range tx.AccountKeyIDs {
		if tx.AccountKeyIDs[i], err = r.U32(); err != nil {
			return nil, fmt.Errorf("txcompact: account key %d: %w", i, err)
		}
	}

	refKind, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("txcompact: blockhash ref kind: %w", err)
	}
	tx.BlockhashRef = BlockhashRefKind(refKind)
	switch tx.BlockhashRef {
	case BlockhashRefID:
		if tx.BlockhashID, err = r.I32(); err != nil {
			return nil, fmt.Errorf("txcompact: blockhash id: %w", err)
		}
	case BlockhashRefNonce:
		b, err := r.Fixed(32)
		if err != nil {
			return nil, fmt.Errorf("txcompact: blockhash nonce: %w", err)
		}
		copy(tx.Nonce[:], b)
	default:
		return nil, fmt.Errorf("txcompact: unknown blockhash ref kind %d", refKind)
	}

	ixCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("txcompact: instruction count: %w", err)
	}
	tx.Instructions = make([]Instruction, ixCount)
	for i := range tx.Instructions {
		ix := &tx.Instructions[i]
		if ix.ProgramIDIndex, err = r.U8(); err != nil {
			return nil, fmt.Errorf("txcompact: instruction %d programIdIndex: %w", i, err)
		}
		accCount, err := r.Varint()
		if err != nil {
			return nil, fmt.Errorf("txcompact: instruction %d account count: %w", i, err)
		}
		ix.Accounts = make([]uint8, accCount)
		for j := range ix.Accounts {
			if ix.Accounts[j], err = r.U8(); err != nil {
				return nil, fmt.Errorf("txcompact: instruction %d account %d: %w", i, j, err)
			}
		}
		if ix.Data, err = r.LenPrefixedBytes(); err != nil {
			return nil, fmt.Errorf("txcompact: instruction %d data: %w", i, err)
		}
	}

	if tx.Kind == MessageV0 {
		lookupCount, err := r.Varint()
		if err != nil {
			return nil, fmt.Errorf("txcompact: address table lookup count: %w", err)
		}
		tx.AddressTableLookups = make([]AddressTableLookup, lookupCount)
		for i := range tx.AddressTableLookups {
			lk := &tx.AddressTableLookups[i]
			if lk.AccountKeyID, err = r.U32(); err != nil {
				return nil, fmt.Errorf("txcompact: lookup %d account key: %w", i, err)
			}
			wCount, err := r.Varint()
			if err != nil {
				return nil, fmt.Errorf("txcompact: lookup %d writable count: %w", i, err)
			}
			lk.WritableIndexes = make([]uint8, wCount)
			for j := range lk.WritableIndexes {
				if lk.WritableIndexes[j], err = r.U8(); err != nil {
					return nil, fmt.Errorf("txcompact: lookup %d writable %d: %w", i, j, err)
				}
			}
			roCount, err := r.Varint()
			if err != nil {
				return nil, fmt.Errorf("txcompact: lookup %d readonly count: %w", i, err)
			}
			lk.ReadonlyIndexes = make([]uint8, roCount)
			for j := range lk.ReadonlyIndexes {
				if lk.ReadonlyIndexes[j], err = r.U8(); err != nil {
					return nil, fmt.Errorf("txcompact: lookup %d readonly %d: %w", i, j, err)
				}
			}
		}
	}

	return tx, nil
}
