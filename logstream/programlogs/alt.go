package programlogs

import "strings"

// AddressLookupTableSTRID is the Address Lookup Table program id.
const AddressLookupTableSTRID = "AddressLookupTab1e1111111111111111111111111"

type AddressLookupTableKind uint8

const (
	AltInstructionCreateLookupTable AddressLookupTableKind = iota
	AltInstructionFreezeLookupTable
	AltInstructionExtendLookupTable
	AltInstructionDeactivateLookupTable
	AltInstructionCloseLookupTable
	AltErrorLookupTableNotFound
	AltErrorLookupTableFrozen
	AltErrorLookupTableAlreadyFrozen
	AltErrorLookupTableNotDeactivated
	AltErrorLookupTableDeactivated
)

// AddressLookupTableLog is a parsed Address Lookup Table program log line.
type AddressLookupTableLog struct {
	Kind AddressLookupTableKind
}

var altInstructionName = map[AddressLookupTableKind]string{
	AltInstructionCreateLookupTable:     "CreateLookupTable",
	AltInstructionFreezeLookupTable:     "FreezeLookupTable",
	AltInstructionExtendLookupTable:     "ExtendLookupTable",
	AltInstructionDeactivateLookupTable: "DeactivateLookupTable",
	AltInstructionCloseLookupTable:      "CloseLookupTable",
}

var altErrorText = map[AddressLookupTableKind]string{
	AltErrorLookupTableNotFound:       "Error: Lookup table account is not found",
	AltErrorLookupTableFrozen:         "Error: Lookup table is frozen",
	AltErrorLookupTableAlreadyFrozen:  "Error: Lookup table is already frozen",
	AltErrorLookupTableNotDeactivated: "Error: Lookup table is not deactivated",
	AltErrorLookupTableDeactivated:    "Error: Lookup table is already deactivated",
}

var altNameToKind map[string]AddressLookupTableKind
var altTextToKind map[string]AddressLookupTableKind

func init() {
	altNameToKind = make(map[string]AddressLookupTableKind, len(altInstructionName))
	for k, v := range altInstructionName {
		altNameToKind[v] = k
	}
	altTextToKind = make(map[string]AddressLookupTableKind, len(altErrorText))
	for k, v := range altErrorText {
		altTextToKind[v] = k
	}
}

// ParseAddressLookupTableLog recognizes a canonical Address Lookup Table
// log payload.
func ParseAddressLookupTableLog(text string) (AddressLookupTableLog, bool) {
	if k, ok := altTextToKind[text]; ok {
		return AddressLookupTableLog{Kind: k}, true
	}
	name, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return AddressLookupTableLog{}, false
	}
	if k, ok := altNameToKind[strings.TrimSpace(name)]; ok {
		return AddressLookupTableLog{Kind: k}, true
	}
	return AddressLookupTableLog{}, false
}

// Render returns the exact canonical text for l.
func (l AddressLookupTableLog) Render() string {
	if s, ok := altErrorText[l.Kind]; ok {
		return s
	}
	return "Instruction: " + altInstructionName[l.Kind]
}
