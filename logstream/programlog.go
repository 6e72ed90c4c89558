package logstream

import (
	"strconv"
	"strings"

	"github.com/augustin-cheron/blockzilla/logstream/programlogs"
)

// ProgramLogKind tags which per-program vocabulary (or cross-cutting Anchor
// matcher) recognized a "Program log:" / "Program <id> log:" payload.
type ProgramLogKind uint8

const (
	ProgramLogToken ProgramLogKind = iota
	ProgramLogToken2022
	ProgramLogAta
	ProgramLogAddressLookupTable
	ProgramLogLoaderV3
	ProgramLogLoaderV4
	ProgramLogMemo
	ProgramLogRecord
	ProgramLogTransferHook
	ProgramLogAccountCompression
	ProgramLogAnchorInstruction
	ProgramLogAnchorErrorOccurred
	ProgramLogAnchorErrorThrown
	ProgramLogUnknown
)

// ProgramLog is the parsed result of dispatching one "Program log:" payload
// to its per-program vocabulary (spec §4.8a). Only the fields relevant to
// Kind are populated.
type ProgramLog struct {
	Kind ProgramLogKind

	Token              programlogs.TokenLog
	Token2022          programlogs.Token2022Log
	Ata                programlogs.AtaLog
	AddressLookupTable programlogs.AddressLookupTableLog
	LoaderV3           programlogs.LoaderV3Log
	LoaderV4           programlogs.LoaderV4Log
	Memo               programlogs.MemoLog
	Record             programlogs.RecordLog
	TransferHook       programlogs.TransferHookLog
	AccountCompression programlogs.AccountCompressionLog

	AnchorName   StrId
	AnchorCode   StrId
	AnchorNumber uint32
	AnchorMsg    StrId
	AnchorFile   StrId
	AnchorLine   uint32

	Unknown StrId
}

// KeyIndex resolves a base58-encoded pubkey to its registry id, needed by
// the handful of per-program parsers (Token-2022, System Program) that
// embed account keys in their log text.
type KeyIndex interface {
	LookupBase58(text string) (uint32, bool)
}

// KeyStore resolves a registry id back to its 32-byte key, the render-side
// counterpart of KeyIndex.
type KeyStore interface {
	Get(id uint32) ([32]byte, bool)
}

// ParseProgramLogNoID dispatches a "Program log: <payload>" line with no
// known program id: fast zero-alloc parsers first, then parsers needing the
// string table, then the Unknown fallback.
func ParseProgramLogNoID(payload string, index KeyIndex, st *StringTable) ProgramLog {
	if t, ok := programlogs.ParseTokenLog(payload); ok {
		return ProgramLog{Kind: ProgramLogToken, Token: t}
	}
	if t, ok := programlogs.ParseAtaLog(payload); ok {
		return ProgramLog{Kind: ProgramLogAta, Ata: t}
	}
	if ev, ok := parseAnchorInstruction(payload, st); ok {
		return ev
	}

	if t, ok := programlogs.ParseToken2022Log(payload, index); ok {
		return ProgramLog{Kind: ProgramLogToken2022, Token2022: t}
	}
	if x, ok := programlogs.ParseAddressLookupTableLog(payload); ok {
		return ProgramLog{Kind: ProgramLogAddressLookupTable, AddressLookupTable: x}
	}
	if x, ok := programlogs.ParseLoaderV3Log(payload); ok {
		return ProgramLog{Kind: ProgramLogLoaderV3, LoaderV3: x}
	}
	if x, ok := programlogs.ParseLoaderV4Log(payload); ok {
		return ProgramLog{Kind: ProgramLogLoaderV4, LoaderV4: x}
	}
	if x, ok := programlogs.ParseMemoLog(payload); ok {
		return ProgramLog{Kind: ProgramLogMemo, Memo: x}
	}
	if x, ok := programlogs.ParseRecordLog(payload); ok {
		return ProgramLog{Kind: ProgramLogRecord, Record: x}
	}
	if x, ok := programlogs.ParseTransferHookLog(payload); ok {
		return ProgramLog{Kind: ProgramLogTransferHook, TransferHook: x}
	}
	if x, ok := programlogs.ParseAccountCompressionLog(payload); ok {
		return ProgramLog{Kind: ProgramLogAccountCompression, AccountCompression: x}
	}
	if ev, ok := parseAnchorError(payload, st); ok {
		return ev
	}

	return ProgramLog{Kind: ProgramLogUnknown, Unknown: st.Push(payload)}
}

// ParseProgramLogForProgram dispatches a "Program <id> log: <payload>" line
// whose program id is known, trying that program's dedicated parser first.
func ParseProgramLogForProgram(program string, payload string, index KeyIndex, st *StringTable) ProgramLog {
	if log, ok := tryParseProgramLogWithTable(program, payload, index, st); ok {
		return log
	}
	if ev, ok := parseAnchorInstruction(payload, st); ok {
		return ev
	}
	if ev, ok := parseAnchorError(payload, st); ok {
		return ev
	}
	return ProgramLog{Kind: ProgramLogUnknown, Unknown: st.Push(payload)}
}

func tryParseProgramLogWithTable(program, payload string, index KeyIndex, st *StringTable) (ProgramLog, bool) {
	switch program {
	case programlogs.TokenSTRID:
		if t, ok := programlogs.ParseTokenLog(payload); ok {
			return ProgramLog{Kind: ProgramLogToken, Token: t}, true
		}
	case programlogs.Token2022STRID:
		if t, ok := programlogs.ParseToken2022Log(payload, index); ok {
			return ProgramLog{Kind: ProgramLogToken2022, Token2022: t}, true
		}
	case programlogs.AtaSTRID:
		if t, ok := programlogs.ParseAtaLog(payload); ok {
			return ProgramLog{Kind: ProgramLogAta, Ata: t}, true
		}
	case programlogs.AddressLookupTableSTRID:
		if x, ok := programlogs.ParseAddressLookupTableLog(payload); ok {
			return ProgramLog{Kind: ProgramLogAddressLookupTable, AddressLookupTable: x}, true
		}
	case programlogs.LoaderV3STRID:
		if x, ok := programlogs.ParseLoaderV3Log(payload); ok {
			return ProgramLog{Kind: ProgramLogLoaderV3, LoaderV3: x}, true
		}
	case programlogs.LoaderV4STRID:
		if x, ok := programlogs.ParseLoaderV4Log(payload); ok {
			return ProgramLog{Kind: ProgramLogLoaderV4, LoaderV4: x}, true
		}
	case programlogs.MemoSTRID:
		if x, ok := programlogs.ParseMemoLog(payload); ok {
			return ProgramLog{Kind: ProgramLogMemo, Memo: x}, true
		}
	case programlogs.RecordSTRID:
		if x, ok := programlogs.ParseRecordLog(payload); ok {
			return ProgramLog{Kind: ProgramLogRecord, Record: x}, true
		}
	case programlogs.TransferHookSTRID:
		if x, ok := programlogs.ParseTransferHookLog(payload); ok {
			return ProgramLog{Kind: ProgramLogTransferHook, TransferHook: x}, true
		}
	case programlogs.AccountCompressionSTRID:
		if x, ok := programlogs.ParseAccountCompressionLog(payload); ok {
			return ProgramLog{Kind: ProgramLogAccountCompression, AccountCompression: x}, true
		}
	}
	return ProgramLog{}, false
}

// RenderProgramLog is the exact inverse of the Parse* functions above.
func RenderProgramLog(log ProgramLog, store KeyStore, st *StringTable) string {
	switch log.Kind {
	case ProgramLogToken:
		return log.Token.Render()
	case ProgramLogToken2022:
		return log.Token2022.Render(store)
	case ProgramLogAta:
		return log.Ata.Render()
	case ProgramLogAddressLookupTable:
		return log.AddressLookupTable.Render()
	case ProgramLogLoaderV3:
		return log.LoaderV3.Render()
	case ProgramLogLoaderV4:
		return log.LoaderV4.Render()
	case ProgramLogMemo:
		return log.Memo.Render()
	case ProgramLogRecord:
		return log.Record.Render()
	case ProgramLogTransferHook:
		return log.TransferHook.Render()
	case ProgramLogAccountCompression:
		return log.AccountCompression.Render()
	case ProgramLogAnchorInstruction:
		return "Instruction: " + st.Resolve(log.AnchorName)
	case ProgramLogAnchorErrorOccurred:
		return "AnchorError occurred. Error Code: " + st.Resolve(log.AnchorCode) +
			". Error Number: " + strconv.FormatUint(uint64(log.AnchorNumber), 10) +
			". Error Message: " + st.Resolve(log.AnchorMsg) + "."
	case ProgramLogAnchorErrorThrown:
		return "AnchorError thrown in " + st.Resolve(log.AnchorFile) + ":" + strconv.FormatUint(uint64(log.AnchorLine), 10) +
			". Error Code: " + st.Resolve(log.AnchorCode) +
			". Error Number: " + strconv.FormatUint(uint64(log.AnchorNumber), 10) +
			". Error Message: " + st.Resolve(log.AnchorMsg) + "."
	case ProgramLogUnknown:
		return st.Resolve(log.Unknown)
	default:
		return ""
	}
}

func parseAnchorInstruction(text string, st *StringTable) (ProgramLog, bool) {
	rest, ok := strings.CutPrefix(text, "Instruction: ")
	if !ok {
		return ProgramLog{}, false
	}
	name := strings.TrimSpace(rest)
	if name == "" {
		return ProgramLog{}, false
	}
	return ProgramLog{Kind: ProgramLogAnchorInstruction, AnchorName: st.Push(name)}, true
}

func parseAnchorError(text string, st *StringTable) (ProgramLog, bool) {
	if rest, ok := strings.CutPrefix(text, "AnchorError thrown in "); ok {
		loc, tail, found := strings.Cut(rest, ". Error Code: ")
		if !found {
			return ProgramLog{}, false
		}
		colon := strings.LastIndexByte(loc, ':')
		if colon < 0 {
			return ProgramLog{}, false
		}
		file := st.Push(strings.TrimSpace(loc[:colon]))
		line, err := strconv.ParseUint(strings.TrimSpace(loc[colon+1:]), 10, 32)
		if err != nil {
			return ProgramLog{}, false
		}
		code, number, msg, ok := parseErrorFields(tail, st)
		if !ok {
			return ProgramLog{}, false
		}
		return ProgramLog{
			Kind:         ProgramLogAnchorErrorThrown,
			AnchorFile:   file,
			AnchorLine:   uint32(line),
			AnchorCode:   code,
			AnchorNumber: number,
			AnchorMsg:    msg,
		}, true
	}

	if rest, ok := strings.CutPrefix(text, "AnchorError occurred. Error Code: "); ok {
		code, number, msg, ok := parseErrorFields(rest, st)
		if !ok {
			return ProgramLog{}, false
		}
		return ProgramLog{Kind: ProgramLogAnchorErrorOccurred, AnchorCode: code, AnchorNumber: number, AnchorMsg: msg}, true
	}

	return ProgramLog{}, false
}

func parseErrorFields(text string, st *StringTable) (code StrId, number uint32, msg StrId, ok bool) {
	codeStr, tail, found := strings.Cut(text, ". Error Number: ")
	if !found {
		return 0, 0, 0, false
	}
	numStr, msgStr, found := strings.Cut(tail, ". Error Message: ")
	if !found {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(strings.TrimSpace(numStr), 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	code = st.Push(strings.TrimSpace(codeStr))
	msg = st.Push(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(msgStr), ".")))
	return code, uint32(n), msg, true
}
