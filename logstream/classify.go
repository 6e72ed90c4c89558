package logstream

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const computeBudgetSTRID = "ComputeBudget111111111111111111111111111111"

// Classify recognizes one trimmed, non-empty transaction log line, trying
// the matchers in spec §4.8's fixed priority order and recording the first
// that succeeds.
func Classify(line string, index KeyIndex, st *StringTable, dt *DataTable) LogEvent {
	line = strings.TrimSpace(line)

	// 1. System-program structured parser.
	if sys, ok := ParseSystemProgramLog(line, index); ok {
		return LogEvent{Kind: KindSystemProgram, SystemLog: sys}
	}

	// 2. Standalone custom program error.
	if code, ok := parseCustomProgramErrorCode(line); ok {
		return LogEvent{Kind: KindCustomProgramError, Code: code}
	}

	// 3. Program failed to complete.
	if msg, ok := strings.CutPrefix(line, "Program failed to complete: "); ok {
		return LogEvent{Kind: KindFailedToComplete, Text: st.Push(msg)}
	}

	// 4. Unknown program / unknown account reference.
	if pk, ok := strings.CutPrefix(line, "Unknown program "); ok {
		return LogEvent{Kind: KindUnknownProgram, Text: st.Push(pk), ReferencesAccount: false}
	}
	if pk, ok := strings.CutPrefix(line, "Instruction references an unknown account "); ok {
		return LogEvent{Kind: KindUnknownProgram, Text: st.Push(pk), ReferencesAccount: true}
	}

	// 5. Literal verifier/close markers.
	switch line {
	case "VerifyEd25519":
		return LogEvent{Kind: KindVerifyEd25519}
	case "VerifySecp256k1":
		return LogEvent{Kind: KindVerifySecp256k1}
	case "CloseContextState":
		return LogEvent{Kind: KindCloseContextState}
	}

	// 6. Program log: <payload>, no program id.
	if payload, ok := strings.CutPrefix(line, "Program log: "); ok {
		if code, ok := parseNestedCustomProgramErrorCode(payload); ok {
			return LogEvent{Kind: KindProgramLogCustomProgramError, Code: code}
		}
		if msg, ok := strings.CutPrefix(payload, "Error: "); ok {
			return LogEvent{Kind: KindProgramLogError, Text: st.Push(msg)}
		}
		pl := ParseProgramLogNoID(payload, index, st)
		return LogEvent{Kind: KindProgramLogNoID, ProgramLog: pl}
	}

	// 7. Program <pubkey> log: <payload>.
	if pkTxt, payload, ok := cutProgramLine(line, " log: "); ok {
		if id, ok := index.LookupBase58(pkTxt); ok {
			if code, ok := parseNestedCustomProgramErrorCode(payload); ok {
				return LogEvent{Kind: KindFailureCustomProgramError, Program: id, HasProgram: true, Code: code}
			}
			if msg, ok := strings.CutPrefix(payload, "Error: "); ok {
				return LogEvent{Kind: KindProgramLogError, Program: id, HasProgram: true, Text: st.Push(msg)}
			}
			pl := ParseProgramLogForProgram(pkTxt, payload, index, st)
			return LogEvent{Kind: KindProgramLogWithID, Program: id, HasProgram: true, ProgramLog: pl}
		}
	}

	// 8. Program <pubkey> invoke [<depth>].
	if pkTxt, rest, ok := cutProgramLine(line, " invoke ["); ok {
		if depthTxt, ok := strings.CutSuffix(rest, "]"); ok {
			if id, ok := index.LookupBase58(pkTxt); ok {
				depth := parseSaturatingU8(depthTxt)
				return LogEvent{Kind: KindInvoke, Program: id, HasProgram: true, Depth: depth}
			}
		}
	}

	// 9. Program <pubkey> success.
	if pkTxt, ok := strings.CutPrefix(line, "Program "); ok {
		if pkTxt, ok := strings.CutSuffix(pkTxt, " success"); ok {
			if id, ok := index.LookupBase58(pkTxt); ok {
				return LogEvent{Kind: KindSuccess, Program: id, HasProgram: true}
			}
		}
	}

	// 10. Program <pubkey> failed: <reason>.
	if pkTxt, reason, ok := cutProgramLine(line, " failed: "); ok {
		if id, ok := index.LookupBase58(pkTxt); ok {
			if code, ok := parseCustomProgramErrorCode(reason); ok {
				return LogEvent{Kind: KindFailureCustomProgramError, Program: id, HasProgram: true, Code: code}
			}
			if reason == "invalid account data for instruction" {
				return LogEvent{Kind: KindFailureInvalidAccountData, Program: id, HasProgram: true}
			}
			if reason == "invalid program argument" {
				return LogEvent{Kind: KindFailureInvalidProgramArgument, Program: id, HasProgram: true}
			}
			return LogEvent{Kind: KindFailure, Program: id, HasProgram: true, Text: st.Push(reason)}
		}
	}

	// 11. Program <pubkey> consumed <used> of <limit> compute units.
	if pkTxt, rest, ok := cutProgramLine(line, " consumed "); ok {
		if used, limit, ok := parseConsumed(rest); ok {
			if id, ok := index.LookupBase58(pkTxt); ok {
				return LogEvent{Kind: KindConsumed, Program: id, HasProgram: true, Used: used, Limit: limit}
			}
		}
	}

	// 12. Program <pubkey> request units <n>, only for the compute-budget key.
	if pkTxt, rest, ok := cutProgramLine(line, " request units "); ok {
		if pkTxt == computeBudgetSTRID {
			if units, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 64); err == nil {
				return LogEvent{Kind: KindCbRequestUnits, Units: units}
			}
		}
	}

	// 13. Program data: <b64 tokens>.
	if payload, ok := strings.CutPrefix(line, "Program data: "); ok {
		if tokens, ok := decodeBase64Tokens(payload); ok {
			return LogEvent{Kind: KindData, Data: dt.Push(tokens)}
		}
		return LogEvent{Kind: KindUnparsed, Text: st.Push(line)}
	}

	// 14. Program return: <pubkey> <b64 tokens>.
	if rest, ok := strings.CutPrefix(line, "Program return: "); ok {
		pkTxt, payload, found := strings.Cut(rest, " ")
		if found {
			if id, ok := index.LookupBase58(pkTxt); ok {
				if tokens, ok := decodeBase64Tokens(payload); ok {
					return LogEvent{Kind: KindReturn, Program: id, HasProgram: true, Data: dt.Push(tokens)}
				}
			}
		}
		return LogEvent{Kind: KindUnparsed, Text: st.Push(line)}
	}

	// 15. Program consumption: <n> units remaining.
	if rest, ok := strings.CutPrefix(line, "Program consumption: "); ok {
		if n, ok := strings.CutSuffix(rest, " units remaining"); ok {
			if units, err := strconv.ParseUint(strings.TrimSpace(n), 10, 64); err == nil {
				return LogEvent{Kind: KindConsumption, Units: units}
			}
		}
		return LogEvent{Kind: KindUnparsed, Text: st.Push(line)}
	}

	// 16. Program is not deployed.
	if line == "Program is not deployed" {
		return LogEvent{Kind: KindProgramNotDeployed, HasProgram: false}
	}
	if pkTxt, ok := strings.CutPrefix(line, "Program "); ok {
		if pkTxt, ok := strings.CutSuffix(pkTxt, " is not deployed"); ok {
			if id, ok := index.LookupBase58(pkTxt); ok {
				return LogEvent{Kind: KindProgramNotDeployed, Program: id, HasProgram: true}
			}
		}
	}

	// 17. Fallback.
	return LogEvent{Kind: KindPlain, Text: st.Push(line)}
}

// cutProgramLine matches "Program <pubkey><mid><rest>" and returns the
// pubkey text plus everything after mid.
func cutProgramLine(line, mid string) (pubkeyText, rest string, ok bool) {
	body, ok := strings.CutPrefix(line, "Program ")
	if !ok {
		return "", "", false
	}
	idx := strings.Index(body, mid)
	if idx < 0 {
		return "", "", false
	}
	return body[:idx], body[idx+len(mid):], true
}

func parseCustomProgramErrorCode(text string) (uint32, bool) {
	hexPart, ok := strings.CutPrefix(text, "custom program error: 0x")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func parseNestedCustomProgramErrorCode(payload string) (uint32, bool) {
	idx := strings.Index(payload, "custom program error: 0x")
	if idx < 0 {
		return 0, false
	}
	return parseCustomProgramErrorCode(payload[idx:])
}

func parseSaturatingU8(s string) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}

func parseConsumed(rest string) (used, limit uint64, ok bool) {
	usedTxt, tail, found := strings.Cut(rest, " of ")
	if !found {
		return 0, 0, false
	}
	limitTxt, ok2 := strings.CutSuffix(tail, " compute units")
	if !ok2 {
		return 0, 0, false
	}
	u, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(usedTxt), ",", ""), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	l, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(limitTxt), ",", ""), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return u, l, true
}

// decodeBase64Tokens splits payload on whitespace and base64-decodes each
// field. A payload with no fields at all (an empty "Program data:" or
// "Program return: PK " line) decodes to an empty, non-nil token slice
// rather than failing: spec's boundary behavior treats that as a valid
// empty data-array entry, not an unparsed line.
func decodeBase64Tokens(payload string) ([][]byte, bool) {
	fields := strings.Fields(payload)
	out := make([][]byte, 0, len(fields))
	for _, f := range fields {
		b, err := base64.StdEncoding.DecodeString(f)
		if err != nil {
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}
