// Package logstream classifies and renders per-transaction runtime log
// lines into a compact tagged-event stream, interning free text and binary
// payloads into per-transaction string/data tables so repeated substrings
// (pubkeys, error messages, instruction names) are stored once.
package logstream

// StrId is a 0-based index into a StringTable.
type StrId uint32

// DataId is a 0-based index into a DataTable.
type DataId uint32

// StringTable is an append-only per-transaction pool of interned strings.
type StringTable struct {
	strs []string
}

// NewStringTable returns an empty StringTable.
func NewStringTable() *StringTable {
	return &StringTable{}
}

// Push appends s and returns its id. Unlike a general string interner this
// does not dedupe: callers push text once per log line, so the common case
// of repeated identical lines is rare enough that dedup cost isn't worth it.
func (t *StringTable) Push(s string) StrId {
	id := StrId(len(t.strs))
	t.strs = append(t.strs, s)
	return id
}

// Resolve returns the string for id. Panics if id is out of range: a
// classifier bug, not a recoverable condition.
func (t *StringTable) Resolve(id StrId) string {
	return t.strs[id]
}

// Len returns the number of interned strings.
func (t *StringTable) Len() int { return len(t.strs) }

// Strings returns the underlying slice in push order, for persistence.
func (t *StringTable) Strings() []string { return t.strs }

// LoadStringTable reconstructs a StringTable from its persisted string slice.
func LoadStringTable(strs []string) *StringTable {
	return &StringTable{strs: append([]string(nil), strs...)}
}

// DataTable is an append-only per-transaction pool of interned binary blobs,
// used for base64-decoded `Program data:`/`Program return:` payload arrays.
type DataTable struct {
	blobs [][]byte
}

// NewDataTable returns an empty DataTable.
func NewDataTable() *DataTable {
	return &DataTable{}
}

// Push appends a blob (itself a sequence of whitespace-separated
// base64-decoded tokens, flattened length-prefixed by the caller) and
// returns its id.
func (t *DataTable) Push(tokens [][]byte) DataId {
	id := DataId(len(t.blobs))
	flat := flattenTokens(tokens)
	t.blobs = append(t.blobs, flat)
	return id
}

// Resolve returns the flattened, length-prefixed token blob for id.
func (t *DataTable) Resolve(id DataId) []byte {
	return t.blobs[id]
}

// ResolveTokens returns the original whitespace-separated token slices
// pushed for id, for callers that want the decoded tokens rather than the
// flattened wire blob (e.g. a debug dump).
func (t *DataTable) ResolveTokens(id DataId) [][]byte {
	return splitTokens(t.blobs[id])
}

// Len returns the number of interned blobs.
func (t *DataTable) Len() int { return len(t.blobs) }

// Blobs returns the underlying slice in push order, for persistence.
func (t *DataTable) Blobs() [][]byte { return t.blobs }

// LoadDataTable reconstructs a DataTable from its persisted blob slice.
func LoadDataTable(blobs [][]byte) *DataTable {
	return &DataTable{blobs: append([][]byte(nil), blobs...)}
}

func flattenTokens(tokens [][]byte) []byte {
	n := 4
	for _, tok := range tokens {
		n += 4 + len(tok)
	}
	out := make([]byte, 0, n)
	out = appendU32(out, uint32(len(tokens)))
	for _, tok := range tokens {
		out = appendU32(out, uint32(len(tok)))
		out = append(out, tok...)
	}
	return out
}

func appendU32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// Tokens splits a flattened data blob back into its original token slices.
func splitTokens(blob []byte) [][]byte {
	if len(blob) < 4 {
		return nil
	}
	n := readU32(blob)
	blob = blob[4:]
	out := make([][]byte, 0, n)
	for i := uint32(0); i < n; i++ {
		if len(blob) < 4 {
			break
		}
		l := readU32(blob)
		blob = blob[4:]
		if uint32(len(blob)) < l {
			break
		}
		out = append(out, blob[:l])
		blob = blob[l:]
	}
	return out
}

func readU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
