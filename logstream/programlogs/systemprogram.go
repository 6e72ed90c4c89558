package programlogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
)

// SystemProgramSTRID is the System Program id.
const SystemProgramSTRID = "11111111111111111111111111111111111111111"

// KeyIndex resolves a base58-encoded pubkey to its registry id. Declared
// locally (rather than importing keyregistry) so this package depends only
// on the behavior it needs.
type KeyIndex interface {
	LookupBase58(text string) (uint32, bool)
}

// KeyStore resolves a registry id back to its 32-byte key.
type KeyStore interface {
	Get(id uint32) ([32]byte, bool)
}

type SystemProgramKind uint8

const (
	SystemInstructionRevokePendingActivation SystemProgramKind = iota
	SystemCreateAddressMismatch
	SystemCreateAccountAlreadyInUse
	SystemAllocateAlreadyInUse
	SystemAllocateToMustSign
	SystemAssignAccountMustSign
	SystemAllocateRequestedTooLarge
	SystemTransferFromMustNotCarryData
	SystemTransferFromMustSign
	SystemTransferInsufficient
	SystemTransferFromAddressMismatch
	SystemAdvanceNonceRecentBlockhashesEmpty
	SystemInitializeNonceRecentBlockhashesEmpty
	SystemAuthorizeNonceAccount
	SystemUnparsed
)

// SystemProgramLog is a parsed System Program log line. Only the fields
// relevant to Kind are populated.
type SystemProgramLog struct {
	Kind SystemProgramKind

	ProvidedAddr uint32
	DerivedAddr  uint32
	Addr         uint32
	From         uint32

	Requested  uint64
	MaxAllowed uint64
	Have       uint64
	Need       uint64

	Msg  string
	Text string
}

// ParseSystemProgramLog recognizes a canonical System Program log payload
// (the text after "Program log: " or "Program <id> log: "), resolving any
// embedded pubkeys through index.
func ParseSystemProgramLog(text string, index KeyIndex) (SystemProgramLog, bool) {
	text = strings.TrimSpace(text)

	if name, ok := strings.CutPrefix(text, "Instruction: "); ok {
		if strings.TrimSpace(name) == "RevokePendingActivation" {
			return SystemProgramLog{Kind: SystemInstructionRevokePendingActivation}, true
		}
		return SystemProgramLog{}, false
	}

	if rest, ok := strings.CutPrefix(text, "Create: address "); ok {
		if mid := strings.Index(rest, " does not match derived address "); mid >= 0 {
			provided, ok1 := lookupPubkeyID(index, rest[:mid])
			derived, ok2 := lookupPubkeyID(index, rest[mid+len(" does not match derived address "):])
			if ok1 && ok2 {
				return SystemProgramLog{Kind: SystemCreateAddressMismatch, ProvidedAddr: provided, DerivedAddr: derived}, true
			}
		}
	}

	if rest, ok := strings.CutPrefix(text, "Transfer: 'from' address "); ok {
		if mid := strings.Index(rest, " does not match derived address "); mid >= 0 {
			provided, ok1 := lookupPubkeyID(index, rest[:mid])
			derived, ok2 := lookupPubkeyID(index, rest[mid+len(" does not match derived address "):])
			if ok1 && ok2 {
				return SystemProgramLog{Kind: SystemTransferFromAddressMismatch, ProvidedAddr: provided, DerivedAddr: derived}, true
			}
		}
	}

	if addrTxt, ok := parseBetween(text, "Create Account: account ", " already in use"); ok {
		if addr, ok := parseDebugAddress(index, addrTxt); ok {
			return SystemProgramLog{Kind: SystemCreateAccountAlreadyInUse, Addr: addr}, true
		}
	}

	if addrTxt, ok := parseBetween(text, "Allocate: account ", " already in use"); ok {
		if addr, ok := parseDebugAddress(index, addrTxt); ok {
			return SystemProgramLog{Kind: SystemAllocateAlreadyInUse, Addr: addr}, true
		}
	}

	if addrTxt, ok := parseBetween(text, "Allocate: 'to' account ", " must sign"); ok {
		if addr, ok := parseDebugAddress(index, addrTxt); ok {
			return SystemProgramLog{Kind: SystemAllocateToMustSign, Addr: addr}, true
		}
	}

	if addrTxt, ok := parseBetween(text, "Assign: account ", " must sign"); ok {
		if addr, ok := parseDebugAddress(index, addrTxt); ok {
			return SystemProgramLog{Kind: SystemAssignAccountMustSign, Addr: addr}, true
		}
	}

	if rest, ok := strings.CutPrefix(text, "Allocate: requested "); ok {
		if pos := strings.Index(rest, ", max allowed "); pos >= 0 {
			requested, ok1 := parseU64Commas(rest[:pos])
			maxAllowed, ok2 := parseU64Commas(rest[pos+len(", max allowed "):])
			if ok1 && ok2 {
				return SystemProgramLog{Kind: SystemAllocateRequestedTooLarge, Requested: requested, MaxAllowed: maxAllowed}, true
			}
		}
	}

	if text == "Transfer: `from` must not carry data" {
		return SystemProgramLog{Kind: SystemTransferFromMustNotCarryData}, true
	}

	if rest, ok := strings.CutPrefix(text, "Transfer: `from` account "); ok {
		if pkTxt, ok := strings.CutSuffix(rest, " must sign"); ok {
			if from, ok := lookupPubkeyID(index, strings.TrimSpace(pkTxt)); ok {
				return SystemProgramLog{Kind: SystemTransferFromMustSign, From: from}, true
			}
		}
	}

	if rest, ok := strings.CutPrefix(text, "Transfer: insufficient lamports "); ok {
		if pos := strings.Index(rest, ", need "); pos >= 0 {
			have, ok1 := parseU64Commas(rest[:pos])
			need, ok2 := parseU64Commas(rest[pos+len(", need "):])
			if ok1 && ok2 {
				return SystemProgramLog{Kind: SystemTransferInsufficient, Have: have, Need: need}, true
			}
		}
		return SystemProgramLog{Kind: SystemUnparsed, Text: text}, true
	}

	if text == "Advance nonce account: recent blockhash list is empty" {
		return SystemProgramLog{Kind: SystemAdvanceNonceRecentBlockhashesEmpty}, true
	}

	if text == "Initialize nonce account: recent blockhash list is empty" {
		return SystemProgramLog{Kind: SystemInitializeNonceRecentBlockhashesEmpty}, true
	}

	if msg, ok := strings.CutPrefix(text, "Authorize nonce account: "); ok {
		return SystemProgramLog{Kind: SystemAuthorizeNonceAccount, Msg: msg}, true
	}

	return SystemProgramLog{}, false
}

// Render returns the exact canonical text for l, resolving pubkey ids
// through store.
func (l SystemProgramLog) Render(store KeyStore) string {
	switch l.Kind {
	case SystemInstructionRevokePendingActivation:
		return "Instruction: RevokePendingActivation"
	case SystemCreateAddressMismatch:
		return fmt.Sprintf("Create: address %s does not match derived address %s",
			pubkeyText(store, l.ProvidedAddr), pubkeyText(store, l.DerivedAddr))
	case SystemTransferFromAddressMismatch:
		return fmt.Sprintf("Transfer: 'from' address %s does not match derived address %s",
			pubkeyText(store, l.ProvidedAddr), pubkeyText(store, l.DerivedAddr))
	case SystemCreateAccountAlreadyInUse:
		return fmt.Sprintf("Create Account: account %s already in use", pubkeyText(store, l.Addr))
	case SystemAllocateAlreadyInUse:
		return fmt.Sprintf("Allocate: account %s already in use", pubkeyText(store, l.Addr))
	case SystemAllocateToMustSign:
		return fmt.Sprintf("Allocate: 'to' account %s must sign", pubkeyText(store, l.Addr))
	case SystemAssignAccountMustSign:
		return fmt.Sprintf("Assign: account %s must sign", pubkeyText(store, l.Addr))
	case SystemAllocateRequestedTooLarge:
		return fmt.Sprintf("Allocate: requested %d, max allowed %d", l.Requested, l.MaxAllowed)
	case SystemTransferFromMustNotCarryData:
		return "Transfer: `from` must not carry data"
	case SystemTransferFromMustSign:
		return fmt.Sprintf("Transfer: `from` account %s must sign", pubkeyText(store, l.From))
	case SystemTransferInsufficient:
		return fmt.Sprintf("Transfer: insufficient lamports %d, need %d", l.Have, l.Need)
	case SystemAdvanceNonceRecentBlockhashesEmpty:
		return "Advance nonce account: recent blockhash list is empty"
	case SystemInitializeNonceRecentBlockhashesEmpty:
		return "Initialize nonce account: recent blockhash list is empty"
	case SystemAuthorizeNonceAccount:
		return "Authorize nonce account: " + l.Msg
	case SystemUnparsed:
		return l.Text
	default:
		return ""
	}
}

func parseBetween(line, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, suffix) {
		return "", false
	}
	return line[len(prefix) : len(line)-len(suffix)], true
}

// parseDebugAddress accepts the System Program's two observed renderings of
// a Debug-formatted Address: `Address { address: <PK> }` or a bare `<PK>`.
func parseDebugAddress(index KeyIndex, addrTxt string) (uint32, bool) {
	s := strings.TrimSpace(addrTxt)
	if inner, ok := strings.CutPrefix(s, "Address {"); ok {
		inner = strings.TrimSpace(inner)
		inner, ok := strings.CutPrefix(inner, "address:")
		if !ok {
			inner, ok = strings.CutPrefix(inner, "address :")
			if !ok {
				return 0, false
			}
		}
		inner = strings.TrimSpace(inner)
		end := strings.IndexFunc(inner, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\n' || r == '}'
		})
		if end < 0 {
			end = len(inner)
		}
		pkTxt := strings.TrimSuffix(strings.TrimSpace(inner[:end]), "}")
		return lookupPubkeyID(index, pkTxt)
	}
	return lookupPubkeyID(index, s)
}

func lookupPubkeyID(index KeyIndex, pkTxt string) (uint32, bool) {
	return index.LookupBase58(strings.TrimSpace(pkTxt))
}

func pubkeyText(store KeyStore, id uint32) string {
	key, ok := store.Get(id)
	if !ok {
		return ""
	}
	return base58.Encode(key[:])
}

func parseU64Commas(s string) (uint64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
