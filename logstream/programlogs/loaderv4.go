package programlogs

import "strings"

// LoaderV4STRID is the BPF Loader (v4) program id.
const LoaderV4STRID = "LoaderV411111111111111111111111111111111111"

type LoaderV4Kind uint8

const (
	LoaderV4InstructionWrite LoaderV4Kind = iota
	LoaderV4InstructionCopy
	LoaderV4InstructionSetProgramLength
	LoaderV4InstructionDeploy
	LoaderV4InstructionRetract
	LoaderV4InstructionTransferAuthority
	LoaderV4InstructionFinalize
	LoaderV4ErrorInvalidProgramState
	LoaderV4ErrorImmutable
)

// LoaderV4Log is a parsed BPF Loader v4 program log line.
type LoaderV4Log struct {
	Kind LoaderV4Kind
}

var loaderV4InstructionName = map[LoaderV4Kind]string{
	LoaderV4InstructionWrite:             "Write",
	LoaderV4InstructionCopy:              "Copy",
	LoaderV4InstructionSetProgramLength:   "SetProgramLength",
	LoaderV4InstructionDeploy:             "Deploy",
	LoaderV4InstructionRetract:            "Retract",
	LoaderV4InstructionTransferAuthority:  "TransferAuthority",
	LoaderV4InstructionFinalize:           "Finalize",
}

var loaderV4ErrorText = map[LoaderV4Kind]string{
	LoaderV4ErrorInvalidProgramState: "Error: invalid program state",
	LoaderV4ErrorImmutable:           "Error: program is immutable",
}

var loaderV4NameToKind map[string]LoaderV4Kind
var loaderV4TextToKind map[string]LoaderV4Kind

func init() {
	loaderV4NameToKind = make(map[string]LoaderV4Kind, len(loaderV4InstructionName))
	for k, v := range loaderV4InstructionName {
		loaderV4NameToKind[v] = k
	}
	loaderV4TextToKind = make(map[string]LoaderV4Kind, len(loaderV4ErrorText))
	for k, v := range loaderV4ErrorText {
		loaderV4TextToKind[v] = k
	}
}

// ParseLoaderV4Log recognizes a canonical BPF Loader v4 log payload.
func ParseLoaderV4Log(text string) (LoaderV4Log, bool) {
	if k, ok := loaderV4TextToKind[text]; ok {
		return LoaderV4Log{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return LoaderV4Log{}, false
	}
	if k, ok := loaderV4NameToKind[strings.TrimSpace(name)]; ok {
		return LoaderV4Log{Kind: k}, true
	}
	return LoaderV4Log{}, false
}

// Render returns the exact canonical text for l.
func (l LoaderV4Log) Render() string {
	if s, ok := loaderV4ErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + loaderV4InstructionName[l.Kind]
}
