package analyzer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/augustin-cheron/blockzilla/frame"
	"github.com/augustin-cheron/blockzilla/logstream"
	"github.com/augustin-cheron/blockzilla/optimizer"
)

// DumpLogStrings streams r (a compact.bin's contents) and writes every
// rendered runtime log line to w, one per line, stopping once limitBlocks
// blocks have been read or maxLines lines have been written (0 means no
// limit for either). When includeData is set, each KindData/KindReturn
// event's resolved base64 token blob size is appended after its rendered
// line. store resolves the registry ids a rendered line embeds (program
// invocations, custom program errors' program, etc) back to base58 text;
// callers load it from the same epoch's registry.bin.
func DumpLogStrings(r io.Reader, w io.Writer, store logstream.KeyStore, limitBlocks, maxLines int, includeData bool) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fr := frame.NewReader(r)
	blocks := 0
	lines := 0

	for {
		if limitBlocks > 0 && blocks >= limitBlocks {
			break
		}
		if maxLines > 0 && lines >= maxLines {
			break
		}
		payload, err := fr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("analyzer: reading frame %d: %w", blocks, err)
		}

		rec, err := optimizer.DecodeBlockRecord(payload)
		if err != nil {
			return fmt.Errorf("analyzer: decoding block record %d: %w", blocks, err)
		}
		blocks++

		for _, entry := range rec.Txs {
			if maxLines > 0 && lines >= maxLines {
				break
			}
			if !entry.HasMeta || !entry.Meta.HasLogMessages || entry.Meta.LogStream == nil {
				continue
			}
			n, err := dumpStream(bw, entry.Meta.LogStream, store, maxLines-lines, includeData)
			if err != nil {
				return fmt.Errorf("analyzer: writing log lines for block %d: %w", blocks, err)
			}
			lines += n
		}
	}

	return nil
}

// CollectDataTokens streams r and returns the decoded token slices behind
// every KindData/KindReturn event, up to limitBlocks blocks and maxItems
// events (0 means no limit for either). Intended for a debug dump of
// Program data/return payloads alongside the rendered log lines.
func CollectDataTokens(r io.Reader, limitBlocks, maxItems int) ([][][]byte, error) {
	fr := frame.NewReader(r)
	blocks := 0
	var out [][][]byte

	for {
		if limitBlocks > 0 && blocks >= limitBlocks {
			break
		}
		if maxItems > 0 && len(out) >= maxItems {
			break
		}
		payload, err := fr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("analyzer: reading frame %d: %w", blocks, err)
		}

		rec, err := optimizer.DecodeBlockRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("analyzer: decoding block record %d: %w", blocks, err)
		}
		blocks++

		for _, entry := range rec.Txs {
			if maxItems > 0 && len(out) >= maxItems {
				break
			}
			if !entry.HasMeta || !entry.Meta.HasLogMessages || entry.Meta.LogStream == nil {
				continue
			}
			for _, ev := range entry.Meta.LogStream.Events {
				if maxItems > 0 && len(out) >= maxItems {
					break
				}
				if ev.Kind != logstream.KindData && ev.Kind != logstream.KindReturn {
					continue
				}
				out = append(out, entry.Meta.LogStream.DataTbl.ResolveTokens(ev.Data))
			}
		}
	}

	return out, nil
}

// dumpStream writes up to limit lines from s (0 means unlimited) and
// returns how many it wrote.
func dumpStream(w *bufio.Writer, s *logstream.Stream, store logstream.KeyStore, limit int, includeData bool) (int, error) {
	written := 0
	for _, ev := range s.Events {
		if limit > 0 && written >= limit {
			break
		}
		line := logstream.RenderCompactEvent(ev, store, s.Strings, s.DataTbl)
		if _, err := w.WriteString(line); err != nil {
			return written, err
		}
		if includeData && (ev.Kind == logstream.KindData || ev.Kind == logstream.KindReturn) {
			if _, err := w.WriteString(fmt.Sprintf(" [%d bytes]", len(s.DataTbl.Resolve(ev.Data)))); err != nil {
				return written, err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
