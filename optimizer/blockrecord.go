// Package optimizer orchestrates the two-pass compaction pipeline (spec
// §4.6/§4.7/§5): a blockhash-registry extraction pass, a counting pass that
// builds the epoch's key registry, and an encoding pass that rewrites every
// block into the compact binary format, all resumable per phase.
package optimizer

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/augustin-cheron/blockzilla/blockhashregistry"
	"github.com/augustin-cheron/blockzilla/compactcodec"
	"github.com/augustin-cheron/blockzilla/keyregistry"
	"github.com/augustin-cheron/blockzilla/metacompact"
	"github.com/augustin-cheron/blockzilla/txcompact"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

// BlockHeader is the compact block header (spec §3): blockhash_id is the
// block's stream position k, previous_blockhash_id is max(0, k-1) per
// blockhashregistry.PreviousIDForPos's documented convention for block 0.
type BlockHeader struct {
	Slot                int
	ParentSlot          int
	BlockhashID         int32
	PreviousBlockhashID int32
	HasBlockTime        bool
	BlockTime           int64
	HasBlockHeight      bool
	BlockHeight         uint64
}

// TxWithMeta pairs one compact transaction with its optional compact metadata.
type TxWithMeta struct {
	Tx      *txcompact.Transaction
	HasMeta bool
	Meta    *metacompact.Meta
}

// BlockRecord is one decoded compact block record.
type BlockRecord struct {
	Header BlockHeader
	Txs    []TxWithMeta
}

// EncodeBlockHeader writes h to w.
func EncodeBlockHeader(w *compactcodec.Writer, h BlockHeader) {
	w.Varint(uint64(h.Slot))
	w.Varint(uint64(h.ParentSlot))
	w.I32(h.BlockhashID)
	w.I32(h.PreviousBlockhashID)
	w.Bool(h.HasBlockTime)
	if h.HasBlockTime {
		w.U64(uint64(h.BlockTime))
	}
	w.Bool(h.HasBlockHeight)
	if h.HasBlockHeight {
		w.U64(h.BlockHeight)
	}
}

// DecodeBlockHeader reads a BlockHeader back from r.
func DecodeBlockHeader(r *compactcodec.Reader) (BlockHeader, error) {
	var h BlockHeader
	slot, err := r.Varint()
	if err != nil {
		return h, fmt.Errorf("optimizer: header slot: %w", err)
	}
	h.Slot = int(slot)
	parent, err := r.Varint()
	if err != nil {
		return h, fmt.Errorf("optimizer: header parent slot: %w", err)
	}
	h.ParentSlot = int(parent)
	if h.BlockhashID, err = r.I32(); err != nil {
		return h, fmt.Errorf("optimizer: header blockhash id: %w", err)
	}
	if h.PreviousBlockhashID, err = r.I32(); err != nil {
		return h, fmt.Errorf("optimizer: header previous blockhash id: %w", err)
	}
	if h.HasBlockTime, err = r.Bool(); err != nil {
		return h, fmt.Errorf("optimizer: header block time presence: %w", err)
	}
	if h.HasBlockTime {
		v, err := r.U64()
		if err != nil {
			return h, fmt.Errorf("optimizer: header block time: %w", err)
		}
		h.BlockTime = int64(v)
	}
	if h.HasBlockHeight, err = r.Bool(); err != nil {
		return h, fmt.Errorf("optimizer: header block height presence: %w", err)
	}
	if h.HasBlockHeight {
		if h.BlockHeight, err = r.U64(); err != nil {
			return h, fmt.Errorf("optimizer: header block height: %w", err)
		}
	}
	return h, nil
}

// RawTx is one transaction as read off the archive: tx-encoded bytes plus
// its raw metadata envelope (nil when the block carries no metadata).
type RawTx struct {
	Data []byte
	Meta []byte
}

// frameWriter is the subset of *frame.Writer this package needs.
type frameWriter interface {
	Write(payload []byte) error
}

// EncodeBlockRecord rewrites one block's raw transactions into its compact
// record and writes it as a single frame via fw.
func EncodeBlockRecord(
	fw frameWriter,
	header BlockHeader,
	txs []RawTx,
	index *keyregistry.Index,
	store *keyregistry.Store,
	hashes *blockhashregistry.Registry,
	metaDecoder *txmeta.Decoder,
) error {
	w := compactcodec.NewWriter()
	EncodeBlockHeader(w, header)
	w.Varint(uint64(len(txs)))
	for i, raw := range txs {
		tx, err := solana.TransactionFromBytes(raw.Data)
		if err != nil {
			return fmt.Errorf("optimizer: decoding transaction %d at slot %d: %w", i, header.Slot, err)
		}
		txcompact.Encode(w, tx, index, hashes)

		w.Bool(raw.Meta != nil)
		if raw.Meta != nil {
			meta, err := metaDecoder.Decode(uint64(header.Slot), raw.Meta)
			if err != nil {
				return fmt.Errorf("optimizer: decoding metadata %d at slot %d: %w", i, header.Slot, err)
			}
			if err := metacompact.Encode(w, meta, index, store, index); err != nil {
				return fmt.Errorf("optimizer: encoding metadata %d at slot %d: %w", i, header.Slot, err)
			}
		}
	}
	return fw.Write(w.Bytes())
}

// DecodeBlockRecord reads one compact block record from raw frame payload bytes.
func DecodeBlockRecord(raw []byte) (*BlockRecord, error) {
	r := compactcodec.NewReader(raw)
	header, err := DecodeBlockHeader(r)
	if err != nil {
		return nil, err
	}
	count, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("optimizer: tx count: %w", err)
	}
	rec := &BlockRecord{Header: header, Txs: make([]TxWithMeta, count)}
	for i := range rec.Txs {
		tx, err := txcompact.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("optimizer: tx %d: %w", i, err)
		}
		hasMeta, err := r.Bool()
		if err != nil {
			return nil, fmt.Errorf("optimizer: tx %d meta presence: %w", i, err)
		}
		entry := TxWithMeta{Tx: tx, HasMeta: hasMeta}
		if hasMeta {
			meta, err := metacompact.Decode(r)
			if err != nil {
				return nil, fmt.Errorf("optimizer: tx %d meta: %w", i, err)
			}
			entry.Meta = meta
		}
		rec.Txs[i] = entry
	}
	return rec, nil
}
