// Package analyzer stream-scans a produced compact.bin file (spec §4.9) and
// tallies per-field byte breakdowns by re-serializing each sub-field through
// the same codecs the optimizer used to produce it. This is the only
// component allowed to pay that re-serialization cost.
package analyzer

import (
	"fmt"
	"io"

	"github.com/augustin-cheron/blockzilla/compactcodec"
	"github.com/augustin-cheron/blockzilla/frame"
	"github.com/augustin-cheron/blockzilla/logstream"
	"github.com/augustin-cheron/blockzilla/optimizer"
	"github.com/augustin-cheron/blockzilla/txcompact"
)

// TxBreakdown tallies the byte size of a transaction's sub-parts.
type TxBreakdown struct {
	Signatures           uint64
	MessageHeader        uint64
	AccountKeys          uint64
	RecentBlockhash      uint64
	InstructionContainer uint64
	InstructionAccounts  uint64
	InstructionData      uint64
	AddressTableLookups  uint64
}

// MetaBreakdown tallies the byte size of a metadata record's sub-parts.
type MetaBreakdown struct {
	LogsContainer uint64
	LogStrings    uint64
	EventsTotal   uint64
}

// LogEventTally accumulates count and bytes for one log-event kind.
type LogEventTally struct {
	Count uint64
	Bytes uint64
}

// Report is the full tally produced by Analyze.
type Report struct {
	Blocks               uint64
	Transactions         uint64
	TransactionsWithMeta uint64

	HeaderBytes      uint64
	TxBytes          uint64
	MetaBytes        uint64
	FrameLengthBytes uint64

	Tx   TxBreakdown
	Meta MetaBreakdown

	ByLogKind map[logstream.Kind]*LogEventTally
}

func newReport() *Report {
	return &Report{ByLogKind: make(map[logstream.Kind]*LogEventTally)}
}

// Analyze streams r (a compact.bin's contents) and returns its Report,
// stopping early once limitBlocks blocks have been read (0 means no limit).
func Analyze(r io.Reader, limitBlocks int) (*Report, error) {
	rep := newReport()
	fr := frame.NewReader(r)

	for {
		if limitBlocks > 0 && int(rep.Blocks) >= limitBlocks {
			break
		}
		payload, err := fr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("analyzer: reading frame %d: %w", rep.Blocks, err)
		}
		rep.FrameLengthBytes += 4
		rep.HeaderBytes += headerSize(payload)
		rep.TxBytes += uint64(len(payload)) - headerSize(payload)

		rec, err := optimizer.DecodeBlockRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("analyzer: decoding block record %d: %w", rep.Blocks, err)
		}
		rep.Blocks++
		rep.Transactions += uint64(len(rec.Txs))

		for _, entry := range rec.Txs {
			tallyTx(rep, entry)
			if entry.HasMeta {
				rep.TransactionsWithMeta++
				tallyMeta(rep, entry)
			}
		}
	}

	return rep, nil
}

// headerSize re-serializes just the block header to measure its byte size.
func headerSize(payload []byte) uint64 {
	r := compactcodec.NewReader(payload)
	h, err := optimizer.DecodeBlockHeader(r)
	if err != nil {
		return 0
	}
	w := compactcodec.NewWriter()
	optimizer.EncodeBlockHeader(w, h)
	return uint64(len(w.Bytes()))
}

func tallyTx(rep *Report, entry optimizer.TxWithMeta) {
	tx := entry.Tx
	rep.Tx.Signatures += uint64(len(tx.Signatures)) * 64
	rep.Tx.MessageHeader += 3
	rep.Tx.AccountKeys += uint64(len(tx.AccountKeyIDs)) * 4
	if tx.BlockhashRef == txcompact.BlockhashRefNonce {
		rep.Tx.RecentBlockhash += 1 + 32
	} else {
		rep.Tx.RecentBlockhash += 1 + 4
	}

	rep.Tx.InstructionContainer += uint64(len(tx.Instructions))
	for _, ins := range tx.Instructions {
		rep.Tx.InstructionAccounts += uint64(len(ins.Accounts))
		rep.Tx.InstructionData += uint64(len(ins.Data))
	}
	for _, lookup := range tx.AddressTableLookups {
		rep.Tx.AddressTableLookups += 4 + uint64(len(lookup.WritableIndexes)) + uint64(len(lookup.ReadonlyIndexes))
	}
}

func tallyMeta(rep *Report, entry optimizer.TxWithMeta) {
	meta := entry.Meta
	if !meta.HasLogMessages || meta.LogStream == nil {
		return
	}
	rep.Meta.LogsContainer++
	for _, s := range meta.LogStream.Strings.Strings() {
		rep.Meta.LogStrings += uint64(len(s))
	}
	for _, ev := range meta.LogStream.Events {
		size := uint64(logstream.EncodedEventSize(ev))
		rep.Meta.EventsTotal += size
		tally, ok := rep.ByLogKind[ev.Kind]
		if !ok {
			tally = &LogEventTally{}
			rep.ByLogKind[ev.Kind] = tally
		}
		tally.Count++
		tally.Bytes += size
	}
}
