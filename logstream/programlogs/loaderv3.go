package programlogs

import "strings"

// LoaderV3STRID is the BPF Loader Upgradeable (v3) program id.
const LoaderV3STRID = "BPFLoaderUpgradeab1e11111111111111111111111"

type LoaderV3Kind uint8

const (
	LoaderV3InstructionInitializeBuffer LoaderV3Kind = iota
	LoaderV3InstructionWrite
	LoaderV3InstructionDeployWithMaxDataLen
	LoaderV3InstructionUpgrade
	LoaderV3InstructionSetAuthority
	LoaderV3InstructionClose
	LoaderV3InstructionExtendProgram
	LoaderV3InstructionSetAuthorityChecked
	LoaderV3InstructionMigrate
	LoaderV3ErrorDeployedProgramNotUpgradeable
	LoaderV3ErrorUpgradeAuthorityIncorrect
	LoaderV3ErrorAccountAlreadyInitialized
)

// LoaderV3Log is a parsed BPF Loader Upgradeable program log line.
type LoaderV3Log struct {
	Kind LoaderV3Kind
}

var loaderV3InstructionName = map[LoaderV3Kind]string{
	LoaderV3InstructionInitializeBuffer:     "InitializeBuffer",
	LoaderV3InstructionWrite:                "Write",
	LoaderV3InstructionDeployWithMaxDataLen:  "DeployWithMaxDataLen",
	LoaderV3InstructionUpgrade:               "Upgrade",
	LoaderV3InstructionSetAuthority:          "SetAuthority",
	LoaderV3InstructionClose:                 "Close",
	LoaderV3InstructionExtendProgram:         "ExtendProgram",
	LoaderV3InstructionSetAuthorityChecked:   "SetAuthorityChecked",
	LoaderV3InstructionMigrate:               "Migrate",
}

var loaderV3ErrorText = map[LoaderV3Kind]string{
	LoaderV3ErrorDeployedProgramNotUpgradeable: "Deployed program account is not upgradeable",
	LoaderV3ErrorUpgradeAuthorityIncorrect:      "Incorrect upgrade authority provided",
	LoaderV3ErrorAccountAlreadyInitialized:      "Account is already initialized",
}

var loaderV3NameToKind map[string]LoaderV3Kind
var loaderV3TextToKind map[string]LoaderV3Kind

func init() {
	loaderV3NameToKind = make(map[string]LoaderV3Kind, len(loaderV3InstructionName))
	for k, v := range loaderV3InstructionName {
		loaderV3NameToKind[v] = k
	}
	loaderV3TextToKind = make(map[string]LoaderV3Kind, len(loaderV3ErrorText))
	for k, v := range loaderV3ErrorText {
		loaderV3TextToKind[v] = k
	}
}

// ParseLoaderV3Log recognizes a canonical BPF Loader Upgradeable log payload.
func ParseLoaderV3Log(text string) (LoaderV3Log, bool) {
	if k, ok := loaderV3TextToKind[text]; ok {
		return LoaderV3Log{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return LoaderV3Log{}, false
	}
	if k, ok := loaderV3NameToKind[strings.TrimSpace(name)]; ok {
		return LoaderV3Log{Kind: k}, true
	}
	return LoaderV3Log{}, false
}

// Render returns the exact canonical text for l.
func (l LoaderV3Log) Render() string {
	if s, ok := loaderV3ErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + loaderV3InstructionName[l.Kind]
}
