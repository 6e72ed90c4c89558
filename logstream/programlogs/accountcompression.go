package programlogs

import "strings"

// AccountCompressionSTRID is the SPL Account Compression program id.
const AccountCompressionSTRID = "cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK"

type AccountCompressionKind uint8

const (
	AccountCompressionInstructionInitEmptyMerkleTree AccountCompressionKind = iota
	AccountCompressionInstructionAppend
	AccountCompressionInstructionInsertOrAppend
	AccountCompressionInstructionReplaceLeaf
	AccountCompressionInstructionTransferAuthority
	AccountCompressionInstructionVerifyLeaf
	AccountCompressionInstructionCloseEmptyTree
	AccountCompressionErrorConcurrentMerkleTreeError
	AccountCompressionErrorLeafIndexOutOfBounds
	AccountCompressionErrorInvalidProof
	AccountCompressionErrorTreeAlreadyInitialized
)

// AccountCompressionLog is a parsed SPL Account Compression program log line.
type AccountCompressionLog struct {
	Kind AccountCompressionKind
}

var accountCompressionInstructionName = map[AccountCompressionKind]string{
	AccountCompressionInstructionInitEmptyMerkleTree: "InitEmptyMerkleTree",
	AccountCompressionInstructionAppend:              "Append",
	AccountCompressionInstructionInsertOrAppend:      "InsertOrAppend",
	AccountCompressionInstructionReplaceLeaf:         "ReplaceLeaf",
	AccountCompressionInstructionTransferAuthority:   "TransferAuthority",
	AccountCompressionInstructionVerifyLeaf:          "VerifyLeaf",
	AccountCompressionInstructionCloseEmptyTree:      "CloseEmptyTree",
}

var accountCompressionErrorText = map[AccountCompressionKind]string{
	AccountCompressionErrorConcurrentMerkleTreeError: "Error: concurrent merkle tree error",
	AccountCompressionErrorLeafIndexOutOfBounds:      "Error: leaf index out of bounds",
	AccountCompressionErrorInvalidProof:              "Error: invalid merkle proof",
	AccountCompressionErrorTreeAlreadyInitialized:    "Error: tree already initialized",
}

var accountCompressionNameToKind map[string]AccountCompressionKind
var accountCompressionTextToKind map[string]AccountCompressionKind

func init() {
	accountCompressionNameToKind = make(map[string]AccountCompressionKind, len(accountCompressionInstructionName))
	for k, v := range accountCompressionInstructionName {
		accountCompressionNameToKind[v] = k
	}
	accountCompressionTextToKind = make(map[string]AccountCompressionKind, len(accountCompressionErrorText))
	for k, v := range accountCompressionErrorText {
		accountCompressionTextToKind[v] = k
	}
}

// ParseAccountCompressionLog recognizes a canonical SPL Account Compression
// log payload.
func ParseAccountCompressionLog(text string) (AccountCompressionLog, bool) {
	if k, ok := accountCompressionTextToKind[text]; ok {
		return AccountCompressionLog{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return AccountCompressionLog{}, false
	}
	if k, ok := accountCompressionNameToKind[strings.TrimSpace(name)]; ok {
		return AccountCompressionLog{Kind: k}, true
	}
	return AccountCompressionLog{}, false
}

// Render returns the exact canonical text for l.
func (l AccountCompressionLog) Render() string {
	if s, ok := accountCompressionErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + accountCompressionInstructionName[l.Kind]
}
