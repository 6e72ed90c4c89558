package logstream

import (
	"fmt"
	"strconv"

	"github.com/augustin-cheron/blockzilla/compactcodec"
)

// CompactEvent is the on-wire shape of one classified log line (spec §3's
// compact log stream `LogEvent`). The three dispatch-heavy kinds
// (SystemProgram, ProgramLogNoID, ProgramLogWithID) carry their fully
// rendered payload text in Text rather than re-deriving the sub-parser's
// structured fields on the wire: the structured SystemProgramLog/ProgramLog
// values exist to make Classify/Render exact inverses in-process, but once
// rendered to text they intern identically to every other free-text field.
type CompactEvent struct {
	Kind Kind

	HasProgram bool
	Program    uint32

	Depth uint8
	Used  uint64
	Limit uint64
	Units uint64
	Code  uint32

	Text StrId
	Data DataId

	ReferencesAccount bool
}

// Stream is a decoded compact log stream: its tagged events plus the
// interned string/data tables they reference.
type Stream struct {
	Events  []CompactEvent
	Strings *StringTable
	DataTbl *DataTable
}

// BuildStream classifies every line of a transaction's runtime log into a
// Stream, rendering the three structured kinds down to plain interned text
// using store (the classifier itself only needs index to resolve embedded
// pubkeys to ids).
func BuildStream(lines []string, index KeyIndex, store KeyStore) *Stream {
	st := NewStringTable()
	dt := NewDataTable()
	events := make([]CompactEvent, 0, len(lines))

	for _, line := range lines {
		ev := Classify(line, index, st, dt)
		ce := CompactEvent{
			Kind:              ev.Kind,
			HasProgram:        ev.HasProgram,
			Program:           ev.Program,
			Depth:             ev.Depth,
			Used:              ev.Used,
			Limit:             ev.Limit,
			Units:             ev.Units,
			Code:              ev.Code,
			Text:              ev.Text,
			Data:              ev.Data,
			ReferencesAccount: ev.ReferencesAccount,
		}
		switch ev.Kind {
		case KindSystemProgram:
			ce.Text = st.Push(ev.SystemLog.Render(store))
		case KindProgramLogNoID, KindProgramLogWithID:
			ce.Text = st.Push(RenderProgramLog(ev.ProgramLog, store, st))
		}
		events = append(events, ce)
	}

	return &Stream{Events: events, Strings: st, DataTbl: dt}
}

// Encode writes s's on-wire representation: a varint event count, one
// record per event, then the string table and data table.
func Encode(w *compactcodec.Writer, s *Stream) {
	w.Varint(uint64(len(s.Events)))
	for _, ev := range s.Events {
		encodeEvent(w, ev)
	}

	strs := s.Strings.Strings()
	w.Varint(uint64(len(strs)))
	for _, str := range strs {
		w.LenPrefixedBytes([]byte(str))
	}

	blobs := s.DataTbl.Blobs()
	w.Varint(uint64(len(blobs)))
	for _, b := range blobs {
		w.LenPrefixedBytes(b)
	}
}

// EncodedEventSize returns the number of bytes ev occupies in its stream's
// event record (excluding the shared string/data tables), by re-serializing
// it through the same per-event encoder the analyzer is allowed to pay for.
func EncodedEventSize(ev CompactEvent) int {
	w := compactcodec.NewWriter()
	encodeEvent(w, ev)
	return len(w.Bytes())
}

func encodeEvent(w *compactcodec.Writer, ev CompactEvent) {
	w.U8(uint8(ev.Kind))
	w.Bool(ev.HasProgram)
	if ev.HasProgram {
		w.U32(ev.Program)
	}

	switch ev.Kind {
	case KindInvoke:
		w.U8(ev.Depth)
	case KindConsumed:
		w.U64(ev.Used)
		w.U64(ev.Limit)
	case KindCbRequestUnits, KindConsumption:
		w.U64(ev.Units)
	case KindCustomProgramError, KindProgramLogCustomProgramError, KindFailureCustomProgramError:
		w.U32(ev.Code)
	case KindData, KindReturn:
		w.Varint(uint64(ev.Data))
	case KindUnknownProgram:
		w.Bool(ev.ReferencesAccount)
		w.Varint(uint64(ev.Text))
	case KindSuccess, KindFailureInvalidAccountData, KindFailureInvalidProgramArgument, KindProgramNotDeployed:
		// No further payload: Kind + HasProgram/Program is enough.
	default:
		w.Varint(uint64(ev.Text))
	}
}

// Decode reads back a Stream previously written by Encode.
func Decode(r *compactcodec.Reader) (*Stream, error) {
	eventCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("logstream: event count: %w", err)
	}
	events := make([]CompactEvent, eventCount)
	for i := range events {
		ev, err := decodeEvent(r)
		if err != nil {
			return nil, fmt.Errorf("logstream: event %d: %w", i, err)
		}
		events[i] = ev
	}

	strCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("logstream: string count: %w", err)
	}
	strs := make([]string, strCount)
	for i := range strs {
		b, err := r.LenPrefixedBytes()
		if err != nil {
			return nil, fmt.Errorf("logstream: string %d: %w", i, err)
		}
		strs[i] = string(b)
	}

	dataCount, err := r.Varint()
	if err != nil {
		return nil, fmt.Errorf("logstream: data count: %w", err)
	}
	blobs := make([][]byte, dataCount)
	for i := range blobs {
		b, err := r.LenPrefixedBytes()
		if err != nil {
			return nil, fmt.Errorf("logstream: data %d: %w", i, err)
		}
		blobs[i] = append([]byte(nil), b...)
	}

	return &Stream{
		Events:  events,
		Strings: LoadStringTable(strs),
		DataTbl: LoadDataTable(blobs),
	}, nil
}

func decodeEvent(r *compactcodec.Reader) (CompactEvent, error) {
	kindByte, err := r.U8()
	if err != nil {
		return CompactEvent{}, fmt.Errorf("kind: %w", err)
	}
	ev := CompactEvent{Kind: Kind(kindByte)}

	hasProgram, err := r.Bool()
	if err != nil {
		return CompactEvent{}, fmt.Errorf("hasProgram: %w", err)
	}
	ev.HasProgram = hasProgram
	if hasProgram {
		if ev.Program, err = r.U32(); err != nil {
			return CompactEvent{}, fmt.Errorf("program: %w", err)
		}
	}

	switch ev.Kind {
	case KindInvoke:
		if ev.Depth, err = r.U8(); err != nil {
			return CompactEvent{}, fmt.Errorf("depth: %w", err)
		}
	case KindConsumed:
		if ev.Used, err = r.U64(); err != nil {
			return CompactEvent{}, fmt.Errorf("used: %w", err)
		}
		if ev.Limit, err = r.U64(); err != nil {
			return CompactEvent{}, fmt.Errorf("limit: %w", err)
		}
	case KindCbRequestUnits, KindConsumption:
		if ev.Units, err = r.U64(); err != nil {
			return CompactEvent{}, fmt.Errorf("units: %w", err)
		}
	case KindCustomProgramError, KindProgramLogCustomProgramError, KindFailureCustomProgramError:
		if ev.Code, err = r.U32(); err != nil {
			return CompactEvent{}, fmt.Errorf("code: %w", err)
		}
	case KindData, KindReturn:
		id, err := r.Varint()
		if err != nil {
			return CompactEvent{}, fmt.Errorf("data id: %w", err)
		}
		ev.Data = DataId(id)
	case KindUnknownProgram:
		refs, err := r.Bool()
		if err != nil {
			return CompactEvent{}, fmt.Errorf("referencesAccount: %w", err)
		}
		ev.ReferencesAccount = refs
		id, err := r.Varint()
		if err != nil {
			return CompactEvent{}, fmt.Errorf("text id: %w", err)
		}
		ev.Text = StrId(id)
	case KindSuccess, KindFailureInvalidAccountData, KindFailureInvalidProgramArgument, KindProgramNotDeployed:
		// No further payload.
	default:
		id, err := r.Varint()
		if err != nil {
			return CompactEvent{}, fmt.Errorf("text id: %w", err)
		}
		ev.Text = StrId(id)
	}

	return ev, nil
}

// RenderCompactEvent reconstructs the original log line for a decoded
// CompactEvent, the wire-format counterpart of Render.
func RenderCompactEvent(ev CompactEvent, store KeyStore, st *StringTable, dt *DataTable) string {
	switch ev.Kind {
	case KindSystemProgram:
		return st.Resolve(ev.Text)
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
		return "Program log: " + st.Resolve(ev.Text)
	case KindProgramLogError:
		prefix := "Program log: "
		if ev.HasProgram {
			prefix = "Program " + pubkeyText(store, ev.Program) + " log: "
		}
		return prefix + "Error: " + st.Resolve(ev.Text)
	case KindProgramLogCustomProgramError:
		return "Program log: custom program error: 0x" + strconv.FormatUint(uint64(ev.Code), 16)
	case KindProgramLogWithID:
		return "Program " + pubkeyText(store, ev.Program) + " log: " + st.Resolve(ev.Text)
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
