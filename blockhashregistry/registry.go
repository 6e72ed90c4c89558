// Package blockhashregistry implements the per-epoch blockhash registry: an
// ordered list of slot-terminal hashes for the current epoch, plus a
// bounded tail of hashes carried over from the previous epoch.
package blockhashregistry

import "fmt"

// PrevTailLen is the maximum number of previous-epoch hashes retained.
const PrevTailLen = 200

// Hash is a 32-byte blockhash value.
type Hash = [32]byte

// Registry resolves a blockhash to its signed id: ids >= 0 index the
// current epoch; ids < 0 index the previous-epoch tail (-1 = newest).
// On collision between the two ranges, the current-epoch id wins.
type Registry struct {
	current  []Hash
	prevTail []Hash // oldest first, so prevTail[len-1] is the newest (id -1)
	index    map[Hash]int32
}

// New builds a Registry from the current epoch's ordered hash list and a
// previous-epoch tail (oldest-first, length <= PrevTailLen).
func New(current []Hash, prevTail []Hash) (*Registry, error) {
	if len(prevTail) > PrevTailLen {
		return nil, fmt.Errorf("blockhashregistry: prev tail length %d exceeds max %d", len(prevTail), PrevTailLen)
	}
	r := &Registry{
		current:  current,
		prevTail: prevTail,
		index:    make(map[Hash]int32, len(current)+len(prevTail)),
	}
	// Prev tail first so current-epoch entries overwrite on collision.
	for i, h := range prevTail {
		// oldest-first position i; newest is len(prevTail)-1 -> id -1.
		id := int32(i) - int32(len(prevTail))
		r.index[h] = id
	}
	for i, h := range current {
		r.index[h] = int32(i)
	}
	return r, nil
}

// Len returns the number of current-epoch hashes.
func (r *Registry) Len() int { return len(r.current) }

// PrevTailLen returns the number of retained previous-epoch hashes.
func (r *Registry) PrevTailLen() int { return len(r.prevTail) }

// Lookup returns the signed id for hash, or ok=false if it appears in
// neither the current epoch nor the previous-epoch tail (durable-nonce path).
func (r *Registry) Lookup(hash Hash) (int32, bool) {
	id, ok := r.index[hash]
	return id, ok
}

// Get resolves a signed id back to its hash. id==0 with an empty current
// epoch is out of range and returns ok=false.
func (r *Registry) Get(id int32) (Hash, bool) {
	if id >= 0 {
		if int(id) >= len(r.current) {
			return Hash{}, false
		}
		return r.current[id], true
	}
	pos := len(r.prevTail) + int(id) // id is negative
	if pos < 0 || pos >= len(r.prevTail) {
		return Hash{}, false
	}
	return r.prevTail[pos], true
}

// PreviousIDForPos returns the previous_blockhash_id for the block emitted
// at position pos (0-based) in the compact output stream: 0 for the first
// block of the epoch (a deliberate convention, not "-1 = prev tail
// newest"), pos-1 for every subsequent block.
func PreviousIDForPos(pos int) int {
	if pos == 0 {
		return 0
	}
	return pos - 1
}

// Bytes returns the raw concatenated-32-byte on-disk encoding of the
// current epoch's hash list (position = id).
func (r *Registry) Bytes() []byte {
	out := make([]byte, 0, len(r.current)*32)
	for _, h := range r.current {
		out = append(out, h[:]...)
	}
	return out
}

// Load reconstructs the current-epoch hash list from a
// blockhash_registry.bin byte slice. The length must be a multiple of 32.
func Load(raw []byte) ([]Hash, error) {
	if len(raw)%32 != 0 {
		return nil, fmt.Errorf("blockhashregistry: length %d not a multiple of 32", len(raw))
	}
	n := len(raw) / 32
	out := make([]Hash, n)
	for i := 0; i < n; i++ {
		copy(out[i][:], raw[i*32:(i+1)*32])
	}
	return out, nil
}
