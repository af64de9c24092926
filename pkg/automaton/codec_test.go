package automaton

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocument_RoundTrip(t *testing.T) {
	a := evenZeros(t)

	back, err := FromDocument(a.Document())
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}

	if !reflect.DeepEqual(back.States(), a.States()) {
		t.Errorf("States = %v, want %v", back.States(), a.States())
	}
	if !reflect.DeepEqual(back.Alphabet(), a.Alphabet()) {
		t.Errorf("Alphabet = %v, want %v", back.Alphabet(), a.Alphabet())
	}
	if !reflect.DeepEqual(back.AcceptStates(), a.AcceptStates()) {
		t.Errorf("AcceptStates = %v, want %v", back.AcceptStates(), a.AcceptStates())
	}
	if back.Start() != a.Start() {
		t.Errorf("Start = %q, want %q", back.Start(), a.Start())
	}
	if !reflect.DeepEqual(back.Document(), a.Document()) {
		t.Error("Document() differs after round trip")
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	a := evenZeros(t)

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	back, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if back.Fingerprint() != a.Fingerprint() {
		t.Error("fingerprint changed across a JSON round trip")
	}
}

func TestDocument_CommaInStateLabel(t *testing.T) {
	// The triple encoding must survive labels the legacy "state,symbol"
	// composite keys could not.
	a, err := New([]State{"a,b", "c"}, []Symbol{','},
		map[Key]State{{From: "a,b", On: ','}: "c"}, "a,b", []State{"c"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	back, err := FromDocument(a.Document())
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if to, ok := back.Next("a,b", ','); !ok || to != "c" {
		t.Errorf("Next(a,b on ,) = (%q, %v), want (c, true)", to, ok)
	}
}

func TestFromDocument_InvalidTuple(t *testing.T) {
	doc := Document{
		States:       []State{"a"},
		Alphabet:     []string{"x"},
		Start:        "a",
		AcceptStates: []State{"a", "ghost"},
	}
	_, err := FromDocument(doc)
	if !IsInvalid(err, AcceptNotSubsetOfStates) {
		t.Fatalf("FromDocument() error = %v, want AcceptNotSubsetOfStates", err)
	}
}

func TestFromDocument_MultiRuneSymbol(t *testing.T) {
	doc := Document{
		States:   []State{"a"},
		Alphabet: []string{"ab"},
		Start:    "a",
	}
	if _, err := FromDocument(doc); err == nil {
		t.Fatal("FromDocument() accepted a multi-rune symbol")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := evenZeros(t)
	b := evenZeros(t)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("structurally equal automata produced different fingerprints")
	}

	other, err := New([]State{"even", "odd"}, []Symbol{'0', '1'},
		map[Key]State{{From: "even", On: '0'}: "odd"}, "even", []State{"odd"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Fingerprint() == other.Fingerprint() {
		t.Error("different automata share a fingerprint")
	}
}
