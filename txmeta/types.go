// Package txmeta decodes per-transaction execution metadata: an older
// variable-length (bincode) encoding for early epochs and a tag/length/value
// field-numbered (protobuf) encoding for later epochs, transparently
// decompressing a self-framed compression envelope when present.
package txmeta

// TokenBalance is one pre/post token-balance entry. Owner and ProgramID are
// empty strings when the source record omitted them.
type TokenBalance struct {
	AccountIndex uint8
	Mint         string
	Owner        string
	ProgramID    string
	Amount       string
	Decimals     uint8
}

// Reward is one block/transaction reward entry. RewardType is -1 when absent.
type Reward struct {
	Pubkey      string
	Lamports    int64
	PostBalance uint64
	RewardType  int32
	Commission  *uint8
}

// Instruction is a message-local compiled instruction.
type Instruction struct {
	ProgramIDIndex uint8
	Accounts       []byte
	Data           []byte
}

// InnerInstructionSet groups the inner instructions invoked by one top-level
// instruction, identified by its message-local index.
type InnerInstructionSet struct {
	Index        uint8
	Instructions []InnerInstructionEntry
}

// InnerInstructionEntry is one inner instruction plus its optional CPI stack height.
type InnerInstructionEntry struct {
	Instruction Instruction
	StackHeight *uint32
}

// ReturnData is a program's optional return-data payload.
type ReturnData struct {
	ProgramID [32]byte
	Data      []byte
}

// Meta is the normalized, format-independent metadata record produced by
// either decode path.
type Meta struct {
	// ErrBytes holds the raw bincode-serialized TransactionError when the
	// transaction failed, retained verbatim (spec §4.7); nil means success.
	ErrBytes []byte

	Fee          uint64
	PreBalances  []uint64
	PostBalances []uint64

	HasInnerInstructions bool
	InnerInstructions    []InnerInstructionSet

	HasLogMessages bool
	LogMessages    []string

	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	Rewards           []Reward

	LoadedWritable [][]byte
	LoadedReadonly [][]byte

	ReturnData           *ReturnData
	ComputeUnitsConsumed *uint64
	CostUnits            *uint64
}
