// Package metacompact rewrites a decoded transaction metadata record
// (txmeta.Meta) into the compact representation of spec §3/§4.7: scalar
// fields and raw error bytes pass through verbatim, every pubkey-valued
// field is replaced by its key-registry id, and the optional runtime log
// stream is rewritten through the logstream compactor.
package metacompact

import (
	"fmt"
	"strconv"

	"github.com/mr-tron/base58"

	"github.com/augustin-cheron/blockzilla/compactcodec"
	"github.com/augustin-cheron/blockzilla/logstream"
	"github.com/augustin-cheron/blockzilla/txmeta"
)

// KeyRegistry resolves a 32-byte account key to its dense registry id. Id 0
// is used for the "absent" convention on optional pubkey fields (empty
// mint/owner/program_id on a token balance, per spec §4.7).
type KeyRegistry interface {
	LookupUnchecked(key [32]byte) uint32
}

// KeyStore resolves a registry id back to its 32-byte key.
type KeyStore interface {
	Get(id uint32) ([32]byte, bool)
}

const absentKeyID = 0

// Encode writes meta's compact representation to w. keys resolves pubkey
// fields to registry ids; index and store are the same registry's two
// directions, needed by the logstream compactor to classify log lines and
// then render their structured sub-parses back to interned text.
func Encode(w *compactcodec.Writer, meta *txmeta.Meta, index logstream.KeyIndex, store logstream.KeyStore, keys KeyRegistry) error {
	w.Bool(meta.ErrBytes != nil)
	if meta.ErrBytes != nil {
		w.LenPrefixedBytes(meta.ErrBytes)
	}

	w.U64(meta.Fee)

	w.Varint(uint64(len(meta.PreBalances)))
	for _, b := range meta.PreBalances {
		w.U64(b)
	}
	w.Varint(uint64(len(meta.PostBalances)))
	for _, b := range meta.PostBalances {
		w.U64(b)
	}

	w.Bool(meta.HasInnerInstructions)
	if meta.HasInnerInstructions {
		w.Varint(uint64(len(meta.InnerInstructions)))
		for _, set := range meta.InnerInstructions {
			w.U8(set.Index)
			w.Varint(uint64(len(set.Instructions)))
			for _, entry := range set.Instructions {
				w.U8(entry.Instruction.ProgramIDIndex)
				w.LenPrefixedBytes(entry.Instruction.Accounts)
				w.LenPrefixedBytes(entry.Instruction.Data)
				w.Bool(entry.StackHeight != nil)
				if entry.StackHeight != nil {
					w.U32(*entry.StackHeight)
				}
			}
		}
	}

	w.Bool(meta.HasLogMessages)
	if meta.HasLogMessages {
		stream := logstream.BuildStream(meta.LogMessages, index, store)
		logstream.Encode(w, stream)
	}

	if err := encodeTokenBalances(w, meta.PreTokenBalances, keys); err != nil {
		return fmt.Errorf("metacompact: pre token balances: %w", err)
	}
	if err := encodeTokenBalances(w, meta.PostTokenBalances, keys); err != nil {
		return fmt.Errorf("metacompact: post token balances: %w", err)
	}

	w.Varint(uint64(len(meta.Rewards)))
	for _, rwd := range meta.Rewards {
		id, err := pubkeyID(rwd.Pubkey, keys)
		if err != nil {
			return fmt.Errorf("metacompact: reward pubkey: %w", err)
		}
		w.U32(id)
		w.U64(uint64(rwd.Lamports))
		w.U64(rwd.PostBalance)
		w.I32(rwd.RewardType)
		w.Bool(rwd.Commission != nil)
		if rwd.Commission != nil {
			w.U8(*rwd.Commission)
		}
	}

	w.Varint(uint64(len(meta.LoadedWritable)))
	for _, addr := range meta.LoadedWritable {
		if len(addr) != 32 {
			continue
		}
		var key [32]byte
		copy(key[:], addr)
		w.U32(keys.LookupUnchecked(key))
	}
	w.Varint(uint64(len(meta.LoadedReadonly)))
	for _, addr := range meta.LoadedReadonly {
		if len(addr) != 32 {
			continue
		}
		var key [32]byte
		copy(key[:], addr)
		w.U32(keys.LookupUnchecked(key))
	}

	w.Bool(meta.ReturnData != nil)
	if meta.ReturnData != nil {
		w.U32(keys.LookupUnchecked(meta.ReturnData.ProgramID))
		w.LenPrefixedBytes(meta.ReturnData.Data)
	}

	w.Bool(meta.ComputeUnitsConsumed != nil)
	if meta.ComputeUnitsConsumed != nil {
		w.U64(*meta.ComputeUnitsConsumed)
	}
	w.Bool(meta.CostUnits != nil)
	if meta.CostUnits != nil {
		w.U64(*meta.CostUnits)
	}

	return nil
}

func encodeTokenBalances(w *compactcodec.Writer, balances []txmeta.TokenBalance, keys KeyRegistry) error {
	w.Varint(uint64(len(balances)))
	for _, tb := range balances {
		w.U8(tb.AccountIndex)

		mintID, err := pubkeyIDOrAbsent(tb.Mint, keys)
		if err != nil {
			return fmt.Errorf("mint: %w", err)
		}
		w.U32(mintID)

		ownerID, err := pubkeyIDOrAbsent(tb.Owner, keys)
		if err != nil {
			return fmt.Errorf("owner: %w", err)
		}
		w.U32(ownerID)

		programID, err := pubkeyIDOrAbsent(tb.ProgramID, keys)
		if err != nil {
			return fmt.Errorf("program_id: %w", err)
		}
		w.U32(programID)

		amount, err := strconv.ParseUint(tb.Amount, 10, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", tb.Amount, err)
		}
		w.U64(amount)
		w.U8(tb.Decimals)
	}
	return nil
}

func pubkeyIDOrAbsent(text string, keys KeyRegistry) (uint32, error) {
	if text == "" {
		return absentKeyID, nil
	}
	return pubkeyID(text, keys)
}

// pubkeyID resolves text to its registry id. A base58 parse failure is
// non-fatal, mirroring the counting pass's countBase58: the pubkey is
// simply omitted, and the compact field gets absentKeyID ("unknown")
// instead of aborting the whole record.
func pubkeyID(text string, keys KeyRegistry) (uint32, error) {
	decoded, err := base58.Decode(text)
	if err != nil || len(decoded) != 32 {
		return absentKeyID, nil
	}
	var key [32]byte
	copy(key[:], decoded)
	return keys.LookupUnchecked(key), nil
}

// TokenBalance is a decoded compact token-balance entry; Mint/Owner/ProgramID
// are registry ids (0 means absent).
type TokenBalance struct {
	AccountIndex uint8
	MintID       uint32
	OwnerID      uint32
	ProgramIDID  uint32
	Amount       uint64
	Decimals     uint8
}

// Reward is a decoded compact reward entry.
type Reward struct {
	PubkeyID    uint32
	Lamports    uint64
	PostBalance uint64
	RewardType  int32
	Commission  *uint8
}

// InnerInstructionEntry is a decoded compact inner instruction.
type InnerInstructionEntry struct {
	ProgramIDIndex uint8
	Accounts       []byte
	Data           []byte
	StackHeight    *uint32
}

// InnerInstructionSet is a decoded compact group of inner instructions.
type InnerInstructionSet struct {
	Index        uint8
	Instructions []InnerInstructionEntry
}

// Meta is the decoded compact metadata record (spec §3's "Compact metadata
// (v1)"), the inverse of Encode.
type Meta struct {
	ErrBytes []byte

	Fee          uint64
	PreBalances  []uint64
	PostBalances []uint64

	HasInnerInstructions bool
	InnerInstructions    []InnerInstructionSet

	HasLogMessages bool
	LogStream      *logstream.Stream

	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	Rewards           []Reward

	LoadedWritableIDs []uint32
	LoadedReadonlyIDs []uint32

	HasReturnData   bool
	ReturnProgramID uint32
	ReturnData      []byte

	ComputeUnitsConsumed *uint64
	CostUnits            *uint64
}

// Decode reads one compact metadata record back from r.
func Decode(r *compactcodec.Reader) (*Meta, error) {
	m := &Meta{}

	hasErr, err := r.Bool()
	if err != nil {
		return nil, fmt.Errorf("metacompact: err presence: %w", err)
	}
	if hasErr {
		if m.ErrBytes, err = r.LenPrefixedBytes(); err != nil {
			return nil, fmt.Errorf("metacompact: err bytes: %w", err)
		}
	}

	if m.Fee, err = r.U64(); err != nil {
		return nil, fmt.Errorf("metacompact: fee: %w", err)
	}

	preCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("metacompact: pre balance count: %w", err)
	}
	m.PreBalances = make([]uint64, preCount)
	for i := range m.PreBalances {
		if m.PreBalances[i], err = r.U64(); err != nil {
			return nil, fmt.Errorf("metacompact: pre balance %d: %w", i, err)
		}
	}
	postCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("metacompact: post balance count: %w", err)
	}
	m.PostBalances = make([]uint64, postCount)
	for i := range m.PostBalances {
		if m.PostBalances[i], err = r.U64(); err != nil {
			return nil, fmt.Errorf("metacompact: post balance %d: %w", i, err)
		}
	}

	if m.HasInnerInstructions, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("metacompact: inner instructions presence: %w", err)
	}
	if m.HasInnerInstructions {
		setCount, err := r.Varint()
		if err != nil {
			return nil, fmt.Errorf("metacompact: inner instruction set count: %w", err)
		}
		m.InnerInstructions = make([]InnerInstructionSet, setCount)
		for i := range m.InnerInstructions {
			set := &m.InnerInstructions[i]
			if set.Index, err = r.U8(); err != nil {
				return nil, fmt.Errorf("metacompact: inner set %d index: %w", i, err)
			}
			entryCount, err := r.Varint()
			if err != nil {
				return nil, fmt.Errorf("metacompact: inner set %d entry count: %w", i, err)
			}
			set.Instructions = make([]InnerInstructionEntry, entryCount)
			for j := range set.Instructions {
				entry := &set.Instructions[j]
				if entry.ProgramIDIndex, err = r.U8(); err != nil {
					return nil, fmt.Errorf("metacompact: inner set %d entry %d programIdIndex: %w", i, j, err)
				}
				if entry.Accounts, err = r.LenPrefixedBytes(); err != nil {
					return nil, fmt.Errorf("metacompact: inner set %d entry %d accounts: %w", i, j, err)
				}
				if entry.Data, err = r.LenPrefixedBytes(); err != nil {
					return nil, fmt.Errorf("metacompact: inner set %d entry %d data: %w", i, j, err)
				}
				hasStack, err := r.Bool()
				if err != nil {
					return nil, fmt.Errorf("metacompact: inner set %d entry %d stack presence: %w", i, j, err)
				}
				if hasStack {
					h, err := r.U32()
					if err != nil {
						return nil, fmt.Errorf("metacompact: inner set %d entry %d stack height: %w", i, j, err)
					}
					entry.StackHeight = &h
				}
			}
		}
	}

	if m.HasLogMessages, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("metacompact: log messages presence: %w", err)
	}
	if m.HasLogMessages {
		if m.LogStream, err = logstream.Decode(r); err != nil {
			return nil, fmt.Errorf("metacompact: log stream: %w", err)
		}
	}

	if m.PreTokenBalances, err = decodeTokenBalances(r); err != nil {
		return nil, fmt.Errorf("metacompact: pre token balances: %w", err)
	}
	if m.PostTokenBalances, err = decodeTokenBalances(r); err != nil {
		return nil, fmt.Errorf("metacompact: post token balances: %w", err)
	}

	rewardCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("metacompact: reward count: %w", err)
	}
	m.Rewards = make([]Reward, rewardCount)
	for i := range m.Rewards {
		rwd := &m.Rewards[i]
		if rwd.PubkeyID, err = r.U32(); err != nil {
			return nil, fmt.Errorf("metacompact: reward %d pubkey: %w", i, err)
		}
		if rwd.Lamports, err = r.U64(); err != nil {
			return nil, fmt.Errorf("metacompact: reward %d lamports: %w", i, err)
		}
		if rwd.PostBalance, err = r.U64(); err != nil {
			return nil, fmt.Errorf("metacompact: reward %d post balance: %w", i, err)
		}
		if rwd.RewardType, err = r.I32(); err != nil {
			return nil, fmt.Errorf("metacompact: reward %d reward type: %w", i, err)
		}
		hasCommission, err := r.Bool()
		if err != nil {
			return nil, fmt.Errorf("metacompact: reward %d commission presence: %w", i, err)
		}
		if hasCommission {
			c, err := r.U8()
			if err != nil {
				return nil, fmt.Errorf("metacompact: reward %d commission: %w", i, err)
			}
			rwd.Commission = &c
		}
	}

	writableCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("metacompact: loaded writable count: %w", err)
	}
	m.LoadedWritableIDs = make([]uint32, writableCount)
	for i := range m.LoadedWritableIDs {
		if m.LoadedWritableIDs[i], err = r.U32(); err != nil {
			return nil, fmt.Errorf("metacompact: loaded writable %d: %w", i, err)
		}
	}
	readonlyCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("metacompact: loaded readonly count: %w", err)
	}
	m.LoadedReadonlyIDs = make([]uint32, readonlyCount)
	for i := range m.LoadedReadonlyIDs {
		if m.LoadedReadonlyIDs[i], err = r.U32(); err != nil {
			return nil, fmt.Errorf("metacompact: loaded readonly %d: %w", i, err)
		}
	}

	if m.HasReturnData, err = r.Bool(); err != nil {
		return nil, fmt.Errorf("metacompact: return data presence: %w", err)
	}
	if m.HasReturnData {
		if m.ReturnProgramID, err = r.U32(); err != nil {
			return nil, fmt.Errorf("metacompact: return data program id: %w", err)
		}
		if m.ReturnData, err = r.LenPrefixedBytes(); err != nil {
			return nil, fmt.Errorf("metacompact: return data: %w", err)
		}
	}

	hasComputeUnits, err := r.Bool()
	if err != nil {
		return nil, fmt.Errorf("metacompact: compute units presence: %w", err)
	}
	if hasComputeUnits {
		v, err := r.U64()
		if err != nil {
			return nil, fmt.Errorf("metacompact: compute units: %w", err)
		}
		m.ComputeUnitsConsumed = &v
	}
	hasCostUnits, err := r.Bool()
	if err != nil {
		return nil, fmt.Errorf("metacompact: cost units presence: %w", err)
	}
	if hasCostUnits {
		v, err := r.U64()
		if err != nil {
			return nil, fmt.Errorf("metacompact: cost units: %w", err)
		}
		m.CostUnits = &v
	}

	return m, nil
}

func decodeTokenBalances(r *compactcodec.Reader) ([]TokenBalance, error) {
	count, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	out := make([]TokenBalance, count)
	for i := range out {
		tb := &out[i]
		if tb.AccountIndex, err = r.U8(); err != nil {
			return nil, fmt.Errorf("balance %d account index: %w", i, err)
		}
		if tb.MintID, err = r.U32(); err != nil {
			return nil, fmt.Errorf("balance %d mint: %w", i, err)
		}
		if tb.OwnerID, err = r.U32(); err != nil {
			return nil, fmt.Errorf("balance %d owner: %w", i, err)
		}
		if tb.ProgramIDID, err = r.U32(); err != nil {
			return nil, fmt.Errorf("balance %d program id: %w", i, err)
		}
		if tb.Amount, err = r.U64(); err != nil {
			return nil, fmt.Errorf("balance %d amount: %w", i, err)
		}
		if tb.Decimals, err = r.U8(); err != nil {
			return nil, fmt.Errorf("balance %d decimals: %w", i, err)
		}
	}
	return out, nil
}
