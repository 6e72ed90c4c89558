package programlogs

import "testing"

func TestTokenLogRoundTrip(t *testing.T) {
	cases := []string{
		"Error: insufficient funds",
		"Instruction: TransferChecked",
		"Please upgrade to SPL Token 2022 for immutable owner support",
	}
	for _, text := range cases {
		l, ok := ParseTokenLog(text)
		if !ok {
			t.Fatalf("ParseTokenLog(%q) failed to parse", text)
		}
		if got := l.Render(); got != text {
			t.Errorf("round trip mismatch: got %q, want %q", got, text)
		}
	}
}

func TestTokenLogRejectsUnknown(t *testing.T) {
	if _, ok := ParseTokenLog("Instruction: DoesNotExist"); ok {
		t.Fatal("expected ParseTokenLog to reject an unknown instruction name")
	}
}

func TestAtaLogRoundTrip(t *testing.T) {
	cases := []string{
		"Instruction: CreateIdempotent",
		"Owner mint not owned by provided token program",
		"Initialize the associated token account",
	}
	for _, text := range cases {
		l, ok := ParseAtaLog(text)
		if !ok {
			t.Fatalf("ParseAtaLog(%q) failed to parse", text)
		}
		if got := l.Render(); got != text {
			t.Errorf("round trip mismatch: got %q, want %q", got, text)
		}
	}
}

func TestToken2022LogRoundTrip(t *testing.T) {
	l, ok := ParseToken2022Log("Error: Balance mismatch", nil)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got := l.Render(nil); got != "Error: Balance mismatch" {
		t.Errorf("got %q", got)
	}
}

func TestToken2022AccountNeedsResize(t *testing.T) {
	l, ok := ParseToken2022Log("account needs resize, +128 bytes", nil)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if l.Kind != Token2022AccountNeedsResizePlusBytesDebug {
		t.Fatalf("expected canonical Debug kind, got %v", l.Kind)
	}
	if got := l.Render(nil); got != "account needs resize, +128 bytes" {
		t.Errorf("got %q", got)
	}
}

type fakeKeyIndex struct {
	id uint32
}

func (f fakeKeyIndex) LookupBase58(string) (uint32, bool) { return f.id, true }

type fakeKeyStore struct {
	key [32]byte
}

func (f fakeKeyStore) Get(id uint32) ([32]byte, bool) { return f.key, true }

func TestSystemProgramLogRoundTrip(t *testing.T) {
	idx := fakeKeyIndex{id: 1}
	store := fakeKeyStore{}

	l, ok := ParseSystemProgramLog("Allocate: requested 10, max allowed 100", idx)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got := l.Render(store); got != "Allocate: requested 10, max allowed 100" {
		t.Errorf("got %q", got)
	}

	l2, ok := ParseSystemProgramLog("Transfer: `from` must not carry data", idx)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got := l2.Render(store); got != "Transfer: `from` must not carry data" {
		t.Errorf("got %q", got)
	}
}

func TestAddressLookupTableLogRoundTrip(t *testing.T) {
	text := "Instruction: ExtendLookupTable"
	l, ok := ParseAddressLookupTableLog(text)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got := l.Render(); got != text {
		t.Errorf("got %q", got)
	}
}
