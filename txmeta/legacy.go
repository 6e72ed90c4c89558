package txmeta

import (
	"fmt"

	serde_agave "github.com/augustin-cheron/blockzilla/parse_legacy_transaction_status_meta"
)

// decodeLegacy decodes the bincode-era (epoch < cutoff) metadata encoding
// via the generated serde/bincode deserializer, which already implements
// the optional-trailing-field EOF-as-None convention (spec.md §9).
func decodeLegacy(body []byte) (*Meta, error) {
	raw, err := serde_agave.BincodeDeserializeTransactionStatusMeta(body)
	if err != nil {
		return nil, fmt.Errorf("txmeta: legacy bincode decode: %w", err)
	}
	return normalizeLegacy(&raw), nil
}

func normalizeLegacy(raw *serde_agave.TransactionStatusMeta) *Meta {
	m := &Meta{
		Fee:          raw.Fee,
		PreBalances:  raw.PreBalances,
		PostBalances: raw.PostBalances,
	}

	if errResult, ok := raw.Status.(*serde_agave.Result__Err); ok {
		if serialized, err := errResult.Value.BincodeSerialize(); err == nil {
			m.ErrBytes = serialized
		}
	}

	if raw.InnerInstructions != nil {
		m.HasInnerInstructions = true
		for _, ii := range *raw.InnerInstructions {
			set := InnerInstructionSet{Index: ii.Index}
			for _, inner := range ii.Instructions {
				set.Instructions = append(set.Instructions, InnerInstructionEntry{
					Instruction: Instruction{
						ProgramIDIndex: inner.Instruction.ProgramIdIndex,
						Accounts:       inner.Instruction.Accounts,
						Data:           inner.Instruction.Data,
					},
					StackHeight: inner.StackHeight,
				})
			}
			m.InnerInstructions = append(m.InnerInstructions, set)
		}
	}

	if raw.LogMessages != nil {
		m.HasLogMessages = true
		m.LogMessages = *raw.LogMessages
	}

	if raw.PreTokenBalances != nil {
		m.PreTokenBalances = normalizeLegacyTokenBalances(*raw.PreTokenBalances)
	}
	if raw.PostTokenBalances != nil {
		m.PostTokenBalances = normalizeLegacyTokenBalances(*raw.PostTokenBalances)
	}

	if raw.Rewards != nil {
		for _, r := range *raw.Rewards {
			rewardType := int32(-1)
			if r.RewardType != nil {
				rewardType = int32(*r.RewardType)
			}
			m.Rewards = append(m.Rewards, Reward{
				Pubkey:      r.Pubkey,
				Lamports:    r.Lamports,
				PostBalance: r.PostBalance,
				RewardType:  rewardType,
				Commission:  r.Commission,
			})
		}
	}

	for _, pk := range raw.LoadedAddresses.Writable {
		k := pk
		m.LoadedWritable = append(m.LoadedWritable, append([]byte(nil), k[:]...))
	}
	for _, pk := range raw.LoadedAddresses.Readonly {
		k := pk
		m.LoadedReadonly = append(m.LoadedReadonly, append([]byte(nil), k[:]...))
	}

	if raw.ReturnData != nil {
		rd := &ReturnData{Data: raw.ReturnData.Data}
		copy(rd.ProgramID[:], raw.ReturnData.ProgramId[:])
		m.ReturnData = rd
	}

	m.ComputeUnitsConsumed = raw.ComputeUnitsConsumed
	return m
}

func normalizeLegacyTokenBalances(in []serde_agave.TransactionTokenBalance) []TokenBalance {
	out := make([]TokenBalance, 0, len(in))
	for _, tb := range in {
		out = append(out, TokenBalance{
			AccountIndex: tb.AccountIndex,
			Mint:         tb.Mint,
			Owner:        tb.Owner,
			ProgramID:    tb.ProgramId,
			Amount:       tb.UiTokenAmount.Amount,
			Decimals:     tb.UiTokenAmount.Decimals,
		})
	}
	return out
}
