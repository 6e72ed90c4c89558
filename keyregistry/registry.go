// Package keyregistry implements the per-epoch key registry: a
// count-then-sort table mapping 32-byte account keys to small dense
// 1-based integer ids. Id 0 is reserved and never returned by a successful
// lookup.
package keyregistry

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mr-tron/base58"
	"github.com/tidwall/hashmap"
)

// Key is a 32-byte account key.
type Key = [32]byte

// Counter accumulates per-key occurrence counts during the counting pass.
type Counter struct {
	counts map[Key]uint32
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[Key]uint32, 1<<20)}
}

// Count increments the occurrence count for key by one.
func (c *Counter) Count(key Key) {
	c.counts[key]++
}

// Len returns the number of distinct keys counted so far.
func (c *Counter) Len() int { return len(c.counts) }

// Finalize sorts the counted keys by count descending, then key bytes
// ascending, prepending any of builtins that were not already counted, and
// returns the resulting Store and its companion Index.
func (c *Counter) Finalize(builtins []Key) (*Store, *Index) {
	type counted struct {
		key   Key
		count uint32
	}
	seen := make(map[Key]bool, len(c.counts)+len(builtins))
	entries := make([]counted, 0, len(c.counts)+len(builtins))
	for _, b := range builtins {
		if c.counts[b] == 0 && !seen[b] {
			entries = append(entries, counted{key: b, count: 0})
			seen[b] = true
		}
	}
	for k, n := range c.counts {
		if seen[k] {
			continue
		}
		entries = append(entries, counted{key: k, count: n})
		seen[k] = true
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return bytes.Compare(entries[i].key[:], entries[j].key[:]) < 0
	})

	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return newStore(keys), newIndex(keys)
}

// Store maps a 1-based id back to its key: position-in-file + 1 = id.
type Store struct {
	keys []Key
}

func newStore(keys []Key) *Store {
	return &Store{keys: keys}
}

// Len returns the number of keys in the store.
func (s *Store) Len() int { return len(s.keys) }

// Get returns the key for a 1-based id, or ok=false if id is out of range
// (including the reserved id 0).
func (s *Store) Get(id uint32) (Key, bool) {
	if id == 0 || int(id) > len(s.keys) {
		return Key{}, false
	}
	return s.keys[id-1], true
}

// Bytes returns the raw concatenated-32-byte on-disk encoding of the store.
func (s *Store) Bytes() []byte {
	out := make([]byte, 0, len(s.keys)*32)
	for _, k := range s.keys {
		out = append(out, k[:]...)
	}
	return out
}

// Load reconstructs a Store (and its Index) from a registry.bin byte slice.
// The length must be a multiple of 32.
func Load(raw []byte) (*Store, *Index, error) {
	if len(raw)%32 != 0 {
		return nil, nil, fmt.Errorf("keyregistry: registry length %d not a multiple of 32", len(raw))
	}
	n := len(raw) / 32
	keys := make([]Key, n)
	for i := 0; i < n; i++ {
		copy(keys[i][:], raw[i*32:(i+1)*32])
	}
	return newStore(keys), newIndex(keys), nil
}

// Index is the key->id hash lookup side of the registry.
type Index struct {
	m       hashmap.Map[Key, uint32]
	b58hits map[string]uint32
}

func newIndex(keys []Key) *Index {
	idx := &Index{b58hits: make(map[string]uint32, 256)}
	for i, k := range keys {
		idx.m.Set(k, uint32(i+1))
	}
	return idx
}

// LookupUnchecked returns the id for key, assuming membership: the counting
// pass is required to be a superset of every key the encoding pass touches
// (invariant I4). A miss here is a build bug, not a recoverable condition.
func (idx *Index) LookupUnchecked(key Key) uint32 {
	id, ok := idx.m.Get(key)
	if !ok {
		panic(fmt.Sprintf("keyregistry: key %x missing from index (counting/encoding pass mismatch)", key))
	}
	return id
}

// Lookup returns the id for key, or ok=false if key is not registered.
func (idx *Index) Lookup(key Key) (uint32, bool) {
	return idx.m.Get(key)
}

// LookupBase58 decodes a base58-encoded pubkey and looks it up, caching
// hits for repeat lookups of the same text (hot path for log-line parsing).
func (idx *Index) LookupBase58(text string) (uint32, bool) {
	if id, ok := idx.b58hits[text]; ok {
		return id, true
	}
	decoded, err := base58.Decode(text)
	if err != nil || len(decoded) != 32 {
		return 0, false
	}
	var key Key
	copy(key[:], decoded)
	id, ok := idx.m.Get(key)
	if ok {
		idx.b58hits[text] = id
	}
	return id, ok
}
