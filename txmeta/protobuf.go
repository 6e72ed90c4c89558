package txmeta

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers for the tag/length/value metadata encoding, in the same
// declaration order as the normalized Meta struct (and as the teacher's
// confirmed_block.TransactionStatusMeta reset list). This project does not
// ship the generated confirmed_block.pb.go schema, so these fields are read
// directly off the wire with protowire instead.
const (
	fieldErr                  = 1
	fieldFee                  = 2
	fieldPreBalances          = 3
	fieldPostBalances         = 4
	fieldInnerInstructions    = 5
	fieldInnerInstructionNone = 6
	fieldLogMessages          = 7
	fieldLogMessagesNone      = 8
	fieldPreTokenBalances     = 9
	fieldPostTokenBalances    = 10
	fieldRewards              = 11
	fieldLoadedWritable       = 12
	fieldLoadedReadonly       = 13
	fieldReturnData           = 14
	fieldReturnDataNone       = 15
	fieldComputeUnits         = 16
	fieldCostUnits            = 17
)

func decodeProtobuf(body []byte) (*Meta, error) {
	m := &Meta{}
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("txmeta: protobuf decode: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case fieldErr:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			m.ErrBytes = append([]byte(nil), raw...)
			b = b[nn:]
		case fieldFee:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			m.Fee = v
			b = b[nn:]
		case fieldPreBalances:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			m.PreBalances = append(m.PreBalances, v)
			b = b[nn:]
		case fieldPostBalances:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			m.PostBalances = append(m.PostBalances, v)
			b = b[nn:]
		case fieldInnerInstructions:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			set, err := decodeInnerInstructionSet(raw)
			if err != nil {
				return nil, err
			}
			m.HasInnerInstructions = true
			m.InnerInstructions = append(m.InnerInstructions, set)
			b = b[nn:]
		case fieldInnerInstructionNone:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			if v != 0 {
				m.HasInnerInstructions = false
			} else {
				m.HasInnerInstructions = true
			}
			b = b[nn:]
		case fieldLogMessages:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			m.HasLogMessages = true
			m.LogMessages = append(m.LogMessages, string(raw))
			b = b[nn:]
		case fieldLogMessagesNone:
			_, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			b = b[nn:]
		case fieldPreTokenBalances:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			tb, err := decodeTokenBalance(raw)
			if err != nil {
				return nil, err
			}
			m.PreTokenBalances = append(m.PreTokenBalances, tb)
			b = b[nn:]
		case fieldPostTokenBalances:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			tb, err := decodeTokenBalance(raw)
			if err != nil {
				return nil, err
			}
			m.PostTokenBalances = append(m.PostTokenBalances, tb)
			b = b[nn:]
		case fieldRewards:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			r, err := decodeReward(raw)
			if err != nil {
				return nil, err
			}
			m.Rewards = append(m.Rewards, r)
			b = b[nn:]
		case fieldLoadedWritable:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			m.LoadedWritable = append(m.LoadedWritable, append([]byte(nil), raw...))
			b = b[nn:]
		case fieldLoadedReadonly:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			m.LoadedReadonly = append(m.LoadedReadonly, append([]byte(nil), raw...))
			b = b[nn:]
		case fieldReturnData:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			rd, err := decodeReturnData(raw)
			if err != nil {
				return nil, err
			}
			m.ReturnData = rd
			b = b[nn:]
		case fieldReturnDataNone:
			_, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			b = b[nn:]
		case fieldComputeUnits:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			cuc := v
			m.ComputeUnitsConsumed = &cuc
			b = b[nn:]
		case fieldCostUnits:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return nil, err
			}
			cu := v
			m.CostUnits = &cu
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return nil, fmt.Errorf("txmeta: skipping unknown field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return m, nil
}

func consumeVarint(b []byte, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("txmeta: expected varint wire type, got %d", typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("txmeta: consuming varint: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeBytesField(b []byte, typ protowire.Type) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("txmeta: expected length-delimited wire type, got %d", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("txmeta: consuming bytes: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

const (
	tokenBalanceFieldAccountIndex = 1
	tokenBalanceFieldMint         = 2
	tokenBalanceFieldUiAmount     = 3 // nested UiTokenAmount message
	tokenBalanceFieldOwner        = 4
	tokenBalanceFieldProgramID    = 5

	uiAmountFieldAmount   = 3
	uiAmountFieldDecimals = 2
)

func decodeTokenBalance(body []byte) (TokenBalance, error) {
	var tb TokenBalance
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return tb, fmt.Errorf("txmeta: token balance tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case tokenBalanceFieldAccountIndex:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return tb, err
			}
			tb.AccountIndex = uint8(v)
			b = b[nn:]
		case tokenBalanceFieldMint:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return tb, err
			}
			tb.Mint = string(v)
			b = b[nn:]
		case tokenBalanceFieldUiAmount:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return tb, err
			}
			amount, decimals, err := decodeUiTokenAmount(raw)
			if err != nil {
				return tb, err
			}
			tb.Amount = amount
			tb.Decimals = decimals
			b = b[nn:]
		case tokenBalanceFieldOwner:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return tb, err
			}
			tb.Owner = string(v)
			b = b[nn:]
		case tokenBalanceFieldProgramID:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return tb, err
			}
			tb.ProgramID = string(v)
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return tb, fmt.Errorf("txmeta: skipping token balance field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return tb, nil
}

func decodeUiTokenAmount(body []byte) (amount string, decimals uint8, err error) {
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", 0, fmt.Errorf("txmeta: ui token amount tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case uiAmountFieldDecimals:
			v, nn, e := consumeVarint(b, typ)
			if e != nil {
				return "", 0, e
			}
			decimals = uint8(v)
			b = b[nn:]
		case uiAmountFieldAmount:
			v, nn, e := consumeBytesField(b, typ)
			if e != nil {
				return "", 0, e
			}
			amount = string(v)
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return "", 0, fmt.Errorf("txmeta: skipping ui amount field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return amount, decimals, nil
}

const (
	rewardFieldPubkey      = 1
	rewardFieldLamports    = 2
	rewardFieldPostBalance = 3
	rewardFieldRewardType  = 4
	rewardFieldCommission  = 5
)

func decodeReward(body []byte) (Reward, error) {
	r := Reward{RewardType: -1}
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return r, fmt.Errorf("txmeta: reward tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case rewardFieldPubkey:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return r, err
			}
			r.Pubkey = string(v)
			b = b[nn:]
		case rewardFieldLamports:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return r, err
			}
			r.Lamports = int64(v)
			b = b[nn:]
		case rewardFieldPostBalance:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return r, err
			}
			r.PostBalance = v
			b = b[nn:]
		case rewardFieldRewardType:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return r, err
			}
			r.RewardType = int32(v)
			b = b[nn:]
		case rewardFieldCommission:
			// confirmed_block.Reward.commission is a proto string (the
			// stored Option<u8> rendered as decimal text), not a varint.
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return r, err
			}
			if text := string(v); text != "" {
				if parsed, perr := strconv.ParseUint(text, 10, 8); perr == nil {
					c := uint8(parsed)
					r.Commission = &c
				}
			}
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return r, fmt.Errorf("txmeta: skipping reward field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return r, nil
}

const (
	innerSetFieldIndex        = 1
	innerSetFieldInstructions = 2

	innerEntryFieldInstruction = 1
	innerEntryFieldStackHeight = 2

	instrFieldProgramIDIndex = 1
	instrFieldAccounts       = 2
	instrFieldData           = 3
)

func decodeInnerInstructionSet(body []byte) (InnerInstructionSet, error) {
	var set InnerInstructionSet
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return set, fmt.Errorf("txmeta: inner instruction set tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case innerSetFieldIndex:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return set, err
			}
			set.Index = uint8(v)
			b = b[nn:]
		case innerSetFieldInstructions:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return set, err
			}
			entry, err := decodeInnerInstructionEntry(raw)
			if err != nil {
				return set, err
			}
			set.Instructions = append(set.Instructions, entry)
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return set, fmt.Errorf("txmeta: skipping inner instruction set field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return set, nil
}

func decodeInnerInstructionEntry(body []byte) (InnerInstructionEntry, error) {
	var entry InnerInstructionEntry
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return entry, fmt.Errorf("txmeta: inner instruction entry tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case innerEntryFieldInstruction:
			raw, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return entry, err
			}
			instr, err := decodeInstruction(raw)
			if err != nil {
				return entry, err
			}
			entry.Instruction = instr
			b = b[nn:]
		case innerEntryFieldStackHeight:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return entry, err
			}
			sh := uint32(v)
			entry.StackHeight = &sh
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return entry, fmt.Errorf("txmeta: skipping inner instruction entry field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return entry, nil
}

func decodeInstruction(body []byte) (Instruction, error) {
	var instr Instruction
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return instr, fmt.Errorf("txmeta: instruction tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case instrFieldProgramIDIndex:
			v, nn, err := consumeVarint(b, typ)
			if err != nil {
				return instr, err
			}
			instr.ProgramIDIndex = uint8(v)
			b = b[nn:]
		case instrFieldAccounts:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return instr, err
			}
			instr.Accounts = append([]byte(nil), v...)
			b = b[nn:]
		case instrFieldData:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return instr, err
			}
			instr.Data = append([]byte(nil), v...)
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return instr, fmt.Errorf("txmeta: skipping instruction field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return instr, nil
}

const (
	returnDataFieldProgramID = 1
	returnDataFieldData      = 2
)

func decodeReturnData(body []byte) (*ReturnData, error) {
	rd := &ReturnData{}
	b := body
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("txmeta: return data tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case returnDataFieldProgramID:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			copy(rd.ProgramID[:], v)
			b = b[nn:]
		case returnDataFieldData:
			v, nn, err := consumeBytesField(b, typ)
			if err != nil {
				return nil, err
			}
			rd.Data = append([]byte(nil), v...)
			b = b[nn:]
		default:
			nn := protowire.ConsumeFieldValue(num, typ, b)
			if nn < 0 {
				return nil, fmt.Errorf("txmeta: skipping return data field %d: %w", num, protowire.ParseError(nn))
			}
			b = b[nn:]
		}
	}
	return rd, nil
}
