package optimizer

import (
	"errors"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/keyregistry"
	"github.com/augustin-cheron/blockzilla/tagged"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

// BuildKeyRegistry runs phase 2 (spec §4.6): walk the archive once, counting
// every key touched by a transaction's account_keys, V0 address-table
// lookups, metadata's loaded writable/readonly addresses, and token-balance
// mint/owner/program_id fields, then finalize and write registry.bin.
func BuildKeyRegistry(archivePath, outPath string, bincodeEpochCutoff uint64, resume bool, progressEvery int) error {
	if resume && phaseDone(outPath) {
		klog.Infof("key registry exists, skipping: %s", outPath)
		return nil
	}

	ar, err := openArchive(archivePath, progressEvery > 0)
	if err != nil {
		return err
	}
	defer ar.Close()

	metaDecoder, err := txmeta.NewDecoder(bincodeEpochCutoff)
	if err != nil {
		return fmt.Errorf("optimizer: creating metadata decoder: %w", err)
	}
	defer metaDecoder.Close()

	counter := keyregistry.NewCounter()
	blocksDone := 0
	for {
		g, err := ar.Reader.NextGroup()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("optimizer: reading group %d: %w", blocksDone, err)
		}
		txIter, err := g.Transactions()
		if err != nil {
			return fmt.Errorf("optimizer: building transaction iterator for block %d: %w", blocksDone, err)
		}
		for {
			tx, metaBytes, ok, err := txIter.Next()
			if err != nil {
				return fmt.Errorf("optimizer: iterating transactions in block %d: %w", blocksDone, err)
			}
			if !ok {
				break
			}
			if err := countTransaction(counter, tx, metaBytes, metaDecoder); err != nil {
				return fmt.Errorf("optimizer: counting keys in block %d: %w", blocksDone, err)
			}
		}
		blocksDone++
		if progressEvery > 0 && blocksDone%progressEvery == 0 {
			klog.Infof("key registry counting pass: %d blocks, %d distinct keys so far", blocksDone, counter.Len())
		}
	}

	store, _ := counter.Finalize(keyregistry.Builtins())
	if err := writeFileAtomic(outPath, store.Bytes()); err != nil {
		return err
	}
	klog.Infof("key registry written to %s: %d distinct keys", outPath, store.Len())
	return nil
}

func countTransaction(counter *keyregistry.Counter, raw *tagged.Transaction, metaBytes []byte, metaDecoder *txmeta.Decoder) error {
	tx, err := solana.TransactionFromBytes(raw.Data.Data)
	if err != nil {
		return fmt.Errorf("decoding transaction at slot %d: %w", raw.Slot, err)
	}
	for _, key := range tx.Message.AccountKeys {
		counter.Count(keyregistry.Key(key))
	}
	if tx.Message.IsVersioned() {
		for _, lookup := range tx.Message.AddressTableLookups {
			counter.Count(keyregistry.Key(lookup.AccountKey))
		}
	}

	if metaBytes == nil {
		return nil
	}
	meta, err := metaDecoder.Decode(uint64(raw.Slot), metaBytes)
	if err != nil {
		return fmt.Errorf("decoding metadata at slot %d: %w", raw.Slot, err)
	}
	countLoadedAddresses(counter, meta.LoadedWritable)
	countLoadedAddresses(counter, meta.LoadedReadonly)
	countTokenBalances(counter, meta.PreTokenBalances)
	countTokenBalances(counter, meta.PostTokenBalances)
	return nil
}

func countLoadedAddresses(counter *keyregistry.Counter, addrs [][]byte) {
	for _, addr := range addrs {
		if len(addr) != 32 {
			continue
		}
		var key keyregistry.Key
		copy(key[:], addr)
		counter.Count(key)
	}
}

func countTokenBalances(counter *keyregistry.Counter, balances []txmeta.TokenBalance) {
	for _, tb := range balances {
		countBase58(counter, tb.Mint)
		countBase58(counter, tb.Owner)
		countBase58(counter, tb.ProgramID)
	}
}

func countBase58(counter *keyregistry.Counter, text string) {
	if text == "" {
		return
	}
	decoded, err := base58.Decode(text)
	if err != nil || len(decoded) != 32 {
		return
	}
	var key keyregistry.Key
	copy(key[:], decoded)
	counter.Count(key)
}
