package logstream

import "github.com/augustin-cheron/blockzilla/logstream/programlogs"

// Kind tags which of the classifier's matchers (spec §4.8, priorities 1-17)
// produced a LogEvent.
type Kind uint8

const (
	KindSystemProgram Kind = iota
	KindCustomProgramError
	KindFailedToComplete
	KindUnknownProgram
	KindVerifyEd25519
	KindVerifySecp256k1
	KindCloseContextState
	KindProgramLogNoID
	KindProgramLogError
	KindProgramLogCustomProgramError
	KindProgramLogWithID
	KindInvoke
	KindSuccess
	KindFailure
	KindFailureInvalidAccountData
	KindFailureInvalidProgramArgument
	KindFailureCustomProgramError
	KindConsumed
	KindCbRequestUnits
	KindData
	KindReturn
	KindConsumption
	KindProgramNotDeployed
	KindPlain
	KindUnparsed
)

var kindNames = [...]string{
	"SystemProgram",
	"CustomProgramError",
	"FailedToComplete",
	"UnknownProgram",
	"VerifyEd25519",
	"VerifySecp256k1",
	"CloseContextState",
	"ProgramLogNoID",
	"ProgramLogError",
	"ProgramLogCustomProgramError",
	"ProgramLogWithID",
	"Invoke",
	"Success",
	"Failure",
	"FailureInvalidAccountData",
	"FailureInvalidProgramArgument",
	"FailureCustomProgramError",
	"Consumed",
	"CbRequestUnits",
	"Data",
	"Return",
	"Consumption",
	"ProgramNotDeployed",
	"Plain",
	"Unparsed",
}

// String names k for diagnostics (the analyzer's per-kind report, log
// output); it is never part of the wire encoding.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// LogEvent is one classified log line. Only the fields relevant to Kind are
// populated; this flat kind-tagged layout mirrors the project's CBOR node
// encoding rather than a Go sum-type interface.
type LogEvent struct {
	Kind Kind

	// Program is the registry id of the program pubkey this event names, or
	// 0 when HasProgram is false (matchers 7-10, 12, 14, 16).
	Program    uint32
	HasProgram bool

	Depth uint8    // matcher 8
	Used  uint64   // matcher 11
	Limit uint64   // matcher 11
	Units uint64   // matchers 12, 15
	Code  uint32   // matchers 2, 7, 10 (custom program error code)

	Text StrId // free text: reasons, messages, pubkey text, plain fallback
	Data DataId

	SystemLog  programlogs.SystemProgramLog // matcher 1
	ProgramLog ProgramLog                    // matchers 6, 7 dispatch result

	// ReferencesAccount distinguishes the two matcher-4 message templates:
	// "Unknown program <pk>" (false) vs "Instruction references an unknown
	// account <pk>" (true).
	ReferencesAccount bool
}
