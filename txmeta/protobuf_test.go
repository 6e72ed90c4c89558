package txmeta

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func TestDecodeProtobufScalarFields(t *testing.T) {
	var body []byte
	body = appendVarintField(body, fieldFee, 7777)
	body = appendVarintField(body, fieldPreBalances, 10)
	body = appendVarintField(body, fieldPreBalances, 20)
	body = appendVarintField(body, fieldPostBalances, 9)
	body = appendVarintField(body, fieldLogMessagesNone, 1)
	body = appendBytesField(body, fieldLoadedWritable, []byte{1, 2, 3})

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.Equal(t, uint64(7777), m.Fee)
	require.Equal(t, []uint64{10, 20}, m.PreBalances)
	require.Equal(t, []uint64{9}, m.PostBalances)
	require.False(t, m.HasLogMessages)
	require.Equal(t, [][]byte{{1, 2, 3}}, m.LoadedWritable)
}

func TestDecodeProtobufInnerInstructions(t *testing.T) {
	var instrBody []byte
	instrBody = appendVarintField(instrBody, instrFieldProgramIDIndex, 3)
	instrBody = appendBytesField(instrBody, instrFieldAccounts, []byte{0, 1})
	instrBody = appendBytesField(instrBody, instrFieldData, []byte{9, 9})

	var entryBody []byte
	entryBody = appendBytesField(entryBody, innerEntryFieldInstruction, instrBody)
	entryBody = appendVarintField(entryBody, innerEntryFieldStackHeight, 2)

	var setBody []byte
	setBody = appendVarintField(setBody, innerSetFieldIndex, 1)
	setBody = appendBytesField(setBody, innerSetFieldInstructions, entryBody)

	var body []byte
	body = appendBytesField(body, fieldInnerInstructions, setBody)

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.True(t, m.HasInnerInstructions)
	require.Len(t, m.InnerInstructions, 1)
	set := m.InnerInstructions[0]
	require.EqualValues(t, 1, set.Index)
	require.Len(t, set.Instructions, 1)
	require.EqualValues(t, 3, set.Instructions[0].Instruction.ProgramIDIndex)
	require.Equal(t, []byte{0, 1}, set.Instructions[0].Instruction.Accounts)
	require.NotNil(t, set.Instructions[0].StackHeight)
	require.EqualValues(t, 2, *set.Instructions[0].StackHeight)
}

func TestDecodeProtobufRewardDefaultsRewardType(t *testing.T) {
	var rewardBody []byte
	rewardBody = appendBytesField(rewardBody, rewardFieldPubkey, []byte("abc"))
	rewardBody = appendVarintField(rewardBody, rewardFieldLamports, 100)

	var body []byte
	body = appendBytesField(body, fieldRewards, rewardBody)

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.Len(t, m.Rewards, 1)
	require.Equal(t, int32(-1), m.Rewards[0].RewardType)
	require.Equal(t, "abc", m.Rewards[0].Pubkey)
}

func TestDecodeProtobufRewardCommissionIsString(t *testing.T) {
	var rewardBody []byte
	rewardBody = appendBytesField(rewardBody, rewardFieldPubkey, []byte("abc"))
	rewardBody = appendBytesField(rewardBody, rewardFieldCommission, []byte("42"))

	var body []byte
	body = appendBytesField(body, fieldRewards, rewardBody)

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.Len(t, m.Rewards, 1)
	require.NotNil(t, m.Rewards[0].Commission)
	require.EqualValues(t, 42, *m.Rewards[0].Commission)
}

func TestDecodeProtobufRewardCommissionEmptyIsAbsent(t *testing.T) {
	var rewardBody []byte
	rewardBody = appendBytesField(rewardBody, rewardFieldPubkey, []byte("abc"))
	rewardBody = appendBytesField(rewardBody, rewardFieldCommission, []byte(""))

	var body []byte
	body = appendBytesField(body, fieldRewards, rewardBody)

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.Len(t, m.Rewards, 1)
	require.Nil(t, m.Rewards[0].Commission)
}

func TestDecodeProtobufReturnData(t *testing.T) {
	var rdBody []byte
	pid := make([]byte, 32)
	pid[0] = 0xAB
	rdBody = appendBytesField(rdBody, returnDataFieldProgramID, pid)
	rdBody = appendBytesField(rdBody, returnDataFieldData, []byte{1, 2, 3})

	var body []byte
	body = appendBytesField(body, fieldReturnData, rdBody)
	body = appendVarintField(body, fieldComputeUnits, 555)

	m, err := decodeProtobuf(body)
	require.NoError(t, err)
	require.NotNil(t, m.ReturnData)
	require.Equal(t, byte(0xAB), m.ReturnData.ProgramID[0])
	require.Equal(t, []byte{1, 2, 3}, m.ReturnData.Data)
	require.NotNil(t, m.ComputeUnitsConsumed)
	require.EqualValues(t, 555, *m.ComputeUnitsConsumed)
}
