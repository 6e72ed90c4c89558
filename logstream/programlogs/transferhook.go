package programlogs

import "strings"

// TransferHookSTRID is a placeholder program id slot: Transfer Hook
// implementations are deployed per-mint rather than at one well-known
// address, but the classifier still recognizes the interface's fixed log
// vocabulary (spl-transfer-hook-interface) wherever it's invoked from.
const TransferHookSTRID = "HooKiT2f5oLWd9oCd6amBqMSRZpB5bQKPndQYzP9m1C"

type TransferHookKind uint8

const (
	TransferHookInstructionExecute TransferHookKind = iota
	TransferHookInstructionInitializeExtraAccountMetaList
	TransferHookInstructionUpdateExtraAccountMetaList
	TransferHookErrorIncorrectAccount
	TransferHookErrorProgramCalledOutsideOfTransfer
)

// TransferHookLog is a parsed Transfer Hook interface log line.
type TransferHookLog struct {
	Kind TransferHookKind
}

var transferHookInstructionName = map[TransferHookKind]string{
	TransferHookInstructionExecute:                         "Execute",
	TransferHookInstructionInitializeExtraAccountMetaList:  "InitializeExtraAccountMetaList",
	TransferHookInstructionUpdateExtraAccountMetaList:      "UpdateExtraAccountMetaList",
}

var transferHookErrorText = map[TransferHookKind]string{
	TransferHookErrorIncorrectAccount:               "Error: Incorrect account provided",
	TransferHookErrorProgramCalledOutsideOfTransfer: "Error: Program called outside of a token transfer",
}

var transferHookNameToKind map[string]TransferHookKind
var transferHookTextToKind map[string]TransferHookKind

func init() {
	transferHookNameToKind = make(map[string]TransferHookKind, len(transferHookInstructionName))
	for k, v := range transferHookInstructionName {
		transferHookNameToKind[v] = k
	}
	transferHookTextToKind = make(map[string]TransferHookKind, len(transferHookErrorText))
	for k, v := range transferHookErrorText {
		transferHookTextToKind[v] = k
	}
}

// ParseTransferHookLog recognizes a canonical Transfer Hook interface log payload.
func ParseTransferHookLog(text string) (TransferHookLog, bool) {
	if k, ok := transferHookTextToKind[text]; ok {
		return TransferHookLog{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return TransferHookLog{}, false
	}
	if k, ok := transferHookNameToKind[strings.TrimSpace(name)]; ok {
		return TransferHookLog{Kind: k}, true
	}
	return TransferHookLog{}, false
}

// Render returns the exact canonical text for l.
func (l TransferHookLog) Render() string {
	if s, ok := transferHookErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + transferHookInstructionName[l.Kind]
}
