package programlogs

import "strings"

// AtaSTRID is the Associated Token Account program id.
const AtaSTRID = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"

type AtaKind uint8

const (
	AtaErrorInvalidSeeds AtaKind = iota
	AtaErrorInvalidOwnerSeeds
	AtaErrorInvalidNestedSeeds
	AtaErrorInvalidDestinationSeeds
	AtaErrorMissingRequiredSignature
	AtaErrorIllegalMintOwner
	AtaErrorIllegalAtaProgramOwner
	AtaErrorIllegalNestedProgramOwner
	AtaErrorIllegalNestedOwner
	AtaErrorIllegalNestedMintOwner
	AtaErrorIllegalAtaOwner
	AtaInstructionCreate
	AtaInstructionCreateIdempotent
	AtaInstructionRecoverNested
	AtaInitAta
)

// AtaLog is a parsed Associated Token Account program log line.
type AtaLog struct {
	Kind AtaKind
}

var ataText = map[AtaKind]string{
	AtaErrorInvalidSeeds:            "Error: Associated address does not match seed derivation",
	AtaErrorInvalidOwnerSeeds:       "Error: Owner associated address does not match seed derivation",
	AtaErrorInvalidNestedSeeds:      "Error: Nested associated address does not match seed derivation",
	AtaErrorInvalidDestinationSeeds: "Error: Destination associated address does not match seed derivation",
	AtaErrorMissingRequiredSignature: "Wallet of the owner associated token account must sign",
	AtaErrorIllegalMintOwner:        "Owner mint not owned by provided token program",
	AtaErrorIllegalAtaProgramOwner:  "Owner associated token account not owned by provided token program, recreate the owner associated token account first",
	AtaErrorIllegalNestedProgramOwner: "Nested associated token account not owned by provided token program",
	AtaErrorIllegalNestedOwner:      "Nested associated token account not owned by provided associated token account",
	AtaErrorIllegalNestedMintOwner:  "Nested mint account not owned by provided token program",
	AtaErrorIllegalAtaOwner:         "Owner associated token account not owned by provided wallet",
	AtaInitAta:                      "Initialize the associated token account",
}

var ataInstructionName = map[AtaKind]string{
	AtaInstructionCreate:            "Create",
	AtaInstructionCreateIdempotent:  "CreateIdempotent",
	AtaInstructionRecoverNested:     "RecoverNested",
}

var ataTextToKind map[string]AtaKind
var ataNameToKind map[string]AtaKind

func init() {
	ataTextToKind = make(map[string]AtaKind, len(ataText))
	for k, v := range ataText {
		ataTextToKind[v] = k
	}
	ataNameToKind = make(map[string]AtaKind, len(ataInstructionName))
	for k, v := range ataInstructionName {
		ataNameToKind[v] = k
	}
}

// ParseAtaLog recognizes a canonical Associated Token Account log payload.
func ParseAtaLog(text string) (AtaLog, bool) {
	if k, ok := ataTextToKind[text]; ok {
		return AtaLog{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return AtaLog{}, false
	}
	name = strings.TrimSpace(name)
	if k, ok := ataNameToKind[name]; ok {
		return AtaLog{Kind: k}, true
	}
	return AtaLog{}, false
}

// Render returns the exact canonical text for l.
func (l AtaLog) Render() string {
	if s, ok := ataText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + ataInstructionName[l.Kind]
}
