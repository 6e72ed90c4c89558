package logstream

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
)

// Render is the exact inverse of Classify: every LogEvent produces one
// string matching the original input up to whitespace trimming.
func Render(ev LogEvent, store KeyStore, st *StringTable, dt *DataTable) string {
	switch ev.Kind {
	case KindSystemProgram:
		return ev.SystemLog.Render(store)
	case KindCustomProgramError:
		return "custom program error: 0x" + strconv.FormatUint(uint64(ev.Code), 16)
	case KindFailedToComplete:
		return "Program failed to complete: " + st.Resolve(ev.Text)
	case KindUnknownProgram:
		if ev.ReferencesAccount {
			return "Instruction references an unknown account " + st.Resolve(ev.Text)
		}
		return "Unknown program " + st.Resolve(ev.Text)
	case KindVerifyEd25519:
		return "VerifyEd25519"
	case KindVerifySecp256k1:
		return "VerifySecp256k1"
	case KindCloseContextState:
		return "CloseContextState"
	case KindProgramLogNoID:
		return "Program log: " + RenderProgramLog(ev.ProgramLog, store, st)
	case KindProgramLogError:
		prefix := "Program log: "
		if ev.HasProgram {
			prefix = "Program " + pubkeyText(store, ev.Program) + " log: "
		}
		return prefix + "Error: " + st.Resolve(ev.Text)
	case KindProgramLogCustomProgramError:
		return "Program log: custom program error: 0x" + strconv.FormatUint(uint64(ev.Code), 16)
	case KindProgramLogWithID:
		return "Program " + pubkeyText(store, ev.Program) + " log: " + RenderProgramLog(ev.ProgramLog, store, st)
	case KindInvoke:
		return "Program " + pubkeyText(store, ev.Program) + " invoke [" + strconv.Itoa(int(ev.Depth)) + "]"
	case KindSuccess:
		return "Program " + pubkeyText(store, ev.Program) + " success"
	case KindFailure:
		return "Program " + pubkeyText(store, ev.Program) + " failed: " + st.Resolve(ev.Text)
	case KindFailureInvalidAccountData:
		return "Program " + pubkeyText(store, ev.Program) + " failed: invalid account data for instruction"
	case KindFailureInvalidProgramArgument:
		return "Program " + pubkeyText(store, ev.Program) + " failed: invalid program argument"
	case KindFailureCustomProgramError:
		return "Program " + pubkeyText(store, ev.Program) + " failed: custom program error: 0x" + strconv.FormatUint(uint64(ev.Code), 16)
	case KindConsumed:
		return "Program " + pubkeyText(store, ev.Program) + " consumed " + strconv.FormatUint(ev.Used, 10) +
			" of " + strconv.FormatUint(ev.Limit, 10) + " compute units"
	case KindCbRequestUnits:
		return "Program " + computeBudgetSTRID + " request units " + strconv.FormatUint(ev.Units, 10)
	case KindData:
		return "Program data: " + renderBase64Tokens(dt.Resolve(ev.Data))
	case KindReturn:
		return "Program return: " + pubkeyText(store, ev.Program) + " " + renderBase64Tokens(dt.Resolve(ev.Data))
	case KindConsumption:
		return "Program consumption: " + strconv.FormatUint(ev.Units, 10) + " units remaining"
	case KindProgramNotDeployed:
		if ev.HasProgram {
			return "Program " + pubkeyText(store, ev.Program) + " is not deployed"
		}
		return "Program is not deployed"
	case KindPlain, KindUnparsed:
		return st.Resolve(ev.Text)
	default:
		return ""
	}
}

func pubkeyText(store KeyStore, id uint32) string {
	key, ok := store.Get(id)
	if !ok {
		return ""
	}
	return base58.Encode(key[:])
}

func renderBase64Tokens(blob []byte) string {
	tokens := splitTokens(blob)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = base64.StdEncoding.EncodeToString(tok)
	}
	return strings.Join(parts, " ")
}
