package optimizer

import (
	"errors"
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/blockgroup"
	"github.com/augustin-cheron/blockzilla/blockhashregistry"
	"github.com/augustin-cheron/blockzilla/tagged"
)

// lastEntryHash returns the blockhash of a group's block: the hash carried
// by its last entry, the same convention the RPC getBlock/getBlockHash
// handlers use to derive a slot's blockhash and its parent's
// previousBlockhash.
func lastEntryHash(g *blockgroup.Group) ([32]byte, error) {
	block, err := tagged.DecodeBlock(g.BlockPayload())
	if err != nil {
		return [32]byte{}, fmt.Errorf("optimizer: decoding block root: %w", err)
	}
	if block.Entries.Len() == 0 {
		return [32]byte{}, fmt.Errorf("optimizer: block at slot %d has no entries", block.Slot)
	}
	ref, err := block.Entries.At(block.Entries.Len() - 1)
	if err != nil {
		return [32]byte{}, fmt.Errorf("optimizer: reading last entry link: %w", err)
	}
	payload, err := g.DecodeByDigest(ref.Digest())
	if err != nil {
		return [32]byte{}, fmt.Errorf("optimizer: %w", err)
	}
	entry, err := tagged.DecodeEntry(payload)
	if err != nil {
		return [32]byte{}, fmt.Errorf("optimizer: decoding last entry: %w", err)
	}
	return entry.Hash, nil
}

// BuildBlockhashRegistry runs phase 1 (spec §4.5/§9's block-0 convention):
// walk the archive once collecting each block's blockhash in slot order,
// and write it to outPath as the raw concatenated registry.bin shape
// blockhashregistry.Load expects. prevTail carries over the bounded tail of
// hashes from the previous epoch (nil for the very first epoch).
func BuildBlockhashRegistry(archivePath, outPath string, prevTail []blockhashregistry.Hash, resume bool, progressEvery int) error {
	if resume && phaseDone(outPath) {
		klog.Infof("blockhash registry exists, skipping: %s", outPath)
		return nil
	}

	ar, err := openArchive(archivePath, progressEvery > 0)
	if err != nil {
		return err
	}
	defer ar.Close()

	var hashes []blockhashregistry.Hash
	for n := 0; ; n++ {
		g, err := ar.Reader.NextGroup()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("optimizer: reading group %d: %w", n, err)
		}
		hash, err := lastEntryHash(g)
		if err != nil {
			return err
		}
		hashes = append(hashes, hash)
		if progressEvery > 0 && (n+1)%progressEvery == 0 {
			klog.Infof("blockhash registry: %d blocks processed", n+1)
		}
	}

	reg, err := blockhashregistry.New(hashes, prevTail)
	if err != nil {
		return fmt.Errorf("optimizer: building blockhash registry: %w", err)
	}
	if err := writeFileAtomic(outPath, reg.Bytes()); err != nil {
		return err
	}
	klog.Infof("blockhash registry written to %s: %d blocks", outPath, reg.Len())
	return nil
}
