package programlogs

// MemoSTRID is the (v2) Memo program id.
const MemoSTRID = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"

type MemoKind uint8

const (
	MemoErrorInvalidUTF8 MemoKind = iota
	MemoErrorSignerNotFoundInSigners
)

// MemoLog is a parsed Memo program log line. Memo's free-form memo text
// itself is not structured here: the classifier's generic Program-log
// fallback carries it verbatim through the string table, since no fixed
// vocabulary can represent arbitrary memo contents without losing bytes.
type MemoLog struct {
	Kind MemoKind
}

var memoErrorText = map[MemoKind]string{
	MemoErrorInvalidUTF8:             "Invalid UTF-8, from byte 0",
	MemoErrorSignerNotFoundInSigners: "Signer wasn't found among transaction's signers",
}

var memoTextToKind map[string]MemoKind

func init() {
	memoTextToKind = make(map[string]MemoKind, len(memoErrorText))
	for k, v := range memoErrorText {
		memoTextToKind[v] = k
	}
}

// ParseMemoLog recognizes the Memo program's fixed error strings; free-form
// memo contents fall through to the classifier's generic Program-log path.
func ParseMemoLog(text string) (MemoLog, bool) {
	if k, ok := memoTextToKind[text]; ok {
		return MemoLog{Kind: k}, true
	}
	return MemoLog{}, false
}

// Render returns the canonical text for l.
func (l MemoLog) Render() string {
	return memoErrorText[l.Kind]
}
