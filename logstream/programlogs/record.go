package programlogs

import "strings"

// RecordSTRID is the SPL Record program id.
const RecordSTRID = "recr1L3PCGKLbckBqMNcJhuuyU1zgo8nBhfLVsJNwr5"

type RecordKind uint8

const (
	RecordInstructionInitialize RecordKind = iota
	RecordInstructionWrite
	RecordInstructionSetAuthority
	RecordInstructionCloseAccount
	RecordErrorAlreadyInitialized
	RecordErrorIncorrectAuthority
)

// RecordLog is a parsed SPL Record program log line.
type RecordLog struct {
	Kind RecordKind
}

var recordInstructionName = map[RecordKind]string{
	RecordInstructionInitialize:    "Initialize",
	RecordInstructionWrite:         "Write",
	RecordInstructionSetAuthority:  "SetAuthority",
	RecordInstructionCloseAccount:  "CloseAccount",
}

var recordErrorText = map[RecordKind]string{
	RecordErrorAlreadyInitialized: "Error: record account already initialized",
	RecordErrorIncorrectAuthority: "Error: incorrect authority for record account",
}

var recordNameToKind map[string]RecordKind
var recordTextToKind map[string]RecordKind

func init() {
	recordNameToKind = make(map[string]RecordKind, len(recordInstructionName))
	for k, v := range recordInstructionName {
		recordNameToKind[v] = k
	}
	recordTextToKind = make(map[string]RecordKind, len(recordErrorText))
	for k, v := range recordErrorText {
		recordTextToKind[v] = k
	}
}

// ParseRecordLog recognizes a canonical SPL Record log payload.
func ParseRecordLog(text string) (RecordLog, bool) {
	if k, ok := recordTextToKind[text]; ok {
		return RecordLog{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return RecordLog{}, false
	}
	if k, ok := recordNameToKind[strings.TrimSpace(name)]; ok {
		return RecordLog{Kind: k}, true
	}
	return RecordLog{}, false
}

// Render returns the exact canonical text for l.
func (l RecordLog) Render() string {
	if s, ok := recordErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + recordInstructionName[l.Kind]
}
