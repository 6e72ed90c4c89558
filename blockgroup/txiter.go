package blockgroup

import (
	"errors"
	"fmt"

	"github.com/augustin-cheron/blockzilla/tagged"
)

// TxIter is a two-level cursor: an outer cursor over a block's entries and
// an inner cursor over each entry's transactions. Each call to Next
// invalidates the Transaction and metadata bytes returned by the previous
// call; both live in scratch storage owned by the iterator.
type TxIter struct {
	group *Group
	block *tagged.Block

	entryPos   int
	curEntry   *tagged.Entry
	curTxIter  *tagged.LinkIter
	entriesEnd bool

	tx       tagged.Transaction
	metaData []byte
}

// Next advances to the next transaction, decoding it and (if present) its
// metadata bytes into scratch storage owned by the iterator. ok is false
// only at clean end-of-block.
func (it *TxIter) Next() (tx *tagged.Transaction, metaBytes []byte, ok bool, err error) {
	for {
		if it.curTxIter == nil {
			if it.entryPos >= it.block.Entries.Len() {
				return nil, nil, false, nil
			}
			ref, err := it.block.Entries.At(it.entryPos)
			if err != nil {
				return nil, nil, false, fmt.Errorf("blockgroup: reading entry link %d: %w", it.entryPos, err)
			}
			it.entryPos++
			entryPayload, err := it.group.DecodeByDigest(ref.Digest())
			if err != nil {
				return nil, nil, false, fmt.Errorf("blockgroup: %w", err)
			}
			entry, err := tagged.DecodeEntry(entryPayload)
			if err != nil {
				return nil, nil, false, fmt.Errorf("blockgroup: decoding entry: %w", err)
			}
			it.curEntry = entry
			txIter := entry.Transactions.Iter()
			it.curTxIter = txIter
			continue
		}

		ref, ok, err := it.curTxIter.Next()
		if err != nil {
			return nil, nil, false, fmt.Errorf("blockgroup: reading transaction link: %w", err)
		}
		if !ok {
			it.curTxIter = nil
			it.curEntry = nil
			continue
		}
		txPayload, err := it.group.DecodeByDigest(ref.Digest())
		if err != nil {
			return nil, nil, false, fmt.Errorf("blockgroup: %w", err)
		}
		decoded, err := tagged.DecodeTransaction(txPayload)
		if err != nil {
			if errors.Is(err, tagged.ErrContinuationUnsupported) {
				return nil, nil, false, fmt.Errorf("blockgroup: transaction data-frame continuation: %w", err)
			}
			return nil, nil, false, fmt.Errorf("blockgroup: decoding transaction: %w", err)
		}
		it.tx = *decoded
		if len(it.tx.Metadata.Data) == 0 {
			it.metaData = nil
		} else {
			it.metaData = it.tx.Metadata.Data
		}
		return &it.tx, it.metaData, true, nil
	}
}
