package optimizer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/valyala/bytebufferpool"
	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/blockgroup"
	"github.com/augustin-cheron/blockzilla/blockhashregistry"
	"github.com/augustin-cheron/blockzilla/frame"
	"github.com/augustin-cheron/blockzilla/keyregistry"
	"github.com/augustin-cheron/blockzilla/tagged"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

// flushThreshold bounds how much output compact.bin staging accumulates in
// memory before it's flushed to disk, the same tmp-then-rename convention
// the teacher's index builders use for their own staged writes.
const flushThreshold = 4 << 20 // 4 MiB

// pooledWriter buffers frame output in a bytebufferpool.ByteBuffer, flushing
// to the underlying file once the buffer grows past flushThreshold instead
// of issuing a syscall per block record.
type pooledWriter struct {
	out *os.File
	buf *bytebufferpool.ByteBuffer
}

func newPooledWriter(out *os.File) *pooledWriter {
	return &pooledWriter{out: out, buf: bytebufferpool.Get()}
}

func (p *pooledWriter) Write(b []byte) (int, error) {
	n, _ := p.buf.Write(b)
	if p.buf.Len() >= flushThreshold {
		if err := p.flush(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (p *pooledWriter) flush() error {
	if p.buf.Len() == 0 {
		return nil
	}
	if _, err := p.out.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("optimizer: flushing staged output: %w", err)
	}
	p.buf.Reset()
	return nil
}

func (p *pooledWriter) release() {
	bytebufferpool.Put(p.buf)
}

// Compact runs phase 3 (spec §4.7): walk the archive a second time, emitting
// one framed compact block record per block. Each block's blockhash_id is
// its 0-based position in the output stream; previous_blockhash_id follows
// blockhashregistry.PreviousIDForPos's block-0 convention rather than a
// registry lookup of the parent's hash.
func Compact(
	archivePath, keyRegistryPath, blockhashRegistryPath, outPath string,
	prevTail []blockhashregistry.Hash,
	bincodeEpochCutoff uint64,
	resume bool,
	progressEvery int,
) error {
	if resume && phaseDone(outPath) {
		klog.Infof("compact output exists, skipping: %s", outPath)
		return nil
	}

	keyBytes, err := os.ReadFile(keyRegistryPath)
	if err != nil {
		return fmt.Errorf("optimizer: reading key registry %s: %w", keyRegistryPath, err)
	}
	store, index, err := keyregistry.Load(keyBytes)
	if err != nil {
		return fmt.Errorf("optimizer: loading key registry: %w", err)
	}

	hashBytes, err := os.ReadFile(blockhashRegistryPath)
	if err != nil {
		return fmt.Errorf("optimizer: reading blockhash registry %s: %w", blockhashRegistryPath, err)
	}
	currentHashes, err := blockhashregistry.Load(hashBytes)
	if err != nil {
		return fmt.Errorf("optimizer: loading blockhash registry: %w", err)
	}
	hashes, err := blockhashregistry.New(currentHashes, prevTail)
	if err != nil {
		return fmt.Errorf("optimizer: rebuilding blockhash registry: %w", err)
	}

	metaDecoder, err := txmeta.NewDecoder(bincodeEpochCutoff)
	if err != nil {
		return fmt.Errorf("optimizer: creating metadata decoder: %w", err)
	}
	defer metaDecoder.Close()

	ar, err := openArchive(archivePath, progressEvery > 0)
	if err != nil {
		return err
	}
	defer ar.Close()

	tmpPath := outPath + ".tmp"
	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("optimizer: creating %s: %w", tmpPath, err)
	}
	pw := newPooledWriter(out)
	defer pw.release()
	fw := frame.NewWriter(pw)

	pos := 0
	for {
		g, err := ar.Reader.NextGroup()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			out.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("optimizer: reading group %d: %w", pos, err)
		}

		block, err := tagged.DecodeBlock(g.BlockPayload())
		if err != nil {
			out.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("optimizer: decoding block %d root: %w", pos, err)
		}

		header := BlockHeader{
			Slot:                block.Slot,
			ParentSlot:          block.Meta.ParentSlot,
			BlockhashID:         int32(pos),
			PreviousBlockhashID: int32(blockhashregistry.PreviousIDForPos(pos)),
			HasBlockTime:        block.Meta.HasBlockTime,
			BlockTime:           block.Meta.BlockTime,
			HasBlockHeight:      block.Meta.HasBlockHeight,
			BlockHeight:         block.Meta.BlockHeight,
		}

		txs, err := collectBlockTxs(g)
		if err != nil {
			out.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("optimizer: collecting transactions for block %d (slot %d): %w", pos, block.Slot, err)
		}

		if err := EncodeBlockRecord(fw, header, txs, index, store, hashes, metaDecoder); err != nil {
			out.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("optimizer: encoding block %d (slot %d): %w", pos, block.Slot, err)
		}

		pos++
		if progressEvery > 0 && pos%progressEvery == 0 {
			klog.Infof("compact pass: %d blocks written", pos)
		}
	}

	if err := pw.flush(); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("optimizer: fsyncing %s: %w", tmpPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("optimizer: closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("optimizer: renaming %s to %s: %w", tmpPath, outPath, err)
	}

	klog.Infof("compact output written to %s: %d blocks", outPath, pos)
	return nil
}

// collectBlockTxs walks g's transactions and returns their raw tx/metadata
// bytes, copied out of the iterator's scratch storage (TxIter.Next
// invalidates its previous return value on each advance).
func collectBlockTxs(g *blockgroup.Group) ([]RawTx, error) {
	txIter, err := g.Transactions()
	if err != nil {
		return nil, fmt.Errorf("building transaction iterator: %w", err)
	}
	var out []RawTx
	for {
		tx, metaBytes, ok, err := txIter.Next()
		if err != nil {
			return nil, fmt.Errorf("iterating transactions: %w", err)
		}
		if !ok {
			break
		}
		entry := RawTx{Data: append([]byte(nil), tx.Data.Data...)}
		if metaBytes != nil {
			entry.Meta = append([]byte(nil), metaBytes...)
		}
		out = append(out, entry)
	}
	return out, nil
}
