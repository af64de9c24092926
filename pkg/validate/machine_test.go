package validate

import (
	"reflect"
	"testing"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
)

func TestMachine_ValidURL(t *testing.T) {
	v := NewMachine(urlgrammar.New())

	report := v.Validate("https://example.com/docs?page=2#top")
	if !report.Valid {
		t.Fatalf("Validate() rejected a valid URL: %+v", report)
	}
	if report.RejectionReason != "" {
		t.Errorf("RejectionReason = %q, want empty", report.RejectionReason)
	}
	if report.Components == nil {
		t.Fatal("Components = nil, want populated")
	}
	if report.Components.Scheme != "https" || report.Components.Authority != "example.com" {
		t.Errorf("Components = %+v", report.Components)
	}
	if last := report.StateSequence[len(report.StateSequence)-1]; last != urlgrammar.StateFragment {
		t.Errorf("sequence ends in %s, want fragment", last)
	}
}

func TestMachine_InvalidURL(t *testing.T) {
	v := NewMachine(urlgrammar.New())

	report := v.Validate("ftp://example.com")
	if report.Valid {
		t.Fatal("Validate() accepted an ftp URL")
	}
	if report.RejectionReason == "" {
		t.Error("RejectionReason empty for an invalid URL")
	}
	if report.Components != nil {
		t.Error("Components populated for an invalid URL")
	}
	// Entering the sink ends the sequence: one rejected marker, exactly the
	// shape the heuristic strategy produces for the same input.
	want := []automaton.State{urlgrammar.StateStart, urlgrammar.StateRejected}
	if !reflect.DeepEqual(report.StateSequence, want) {
		t.Errorf("StateSequence = %v, want %v", report.StateSequence, want)
	}
}

func TestMachine_UnknownSymbolBecomesRejection(t *testing.T) {
	v := NewMachine(urlgrammar.New())

	// Space is outside the alphabet; API callers get a rejection, not an error.
	report := v.Validate("https://exa mple.com")
	if report.Valid {
		t.Fatal("Validate() accepted a URL with a space")
	}
	if report.RejectionReason == "" {
		t.Error("RejectionReason empty")
	}
	if last := report.StateSequence[len(report.StateSequence)-1]; last != urlgrammar.StateRejected {
		t.Errorf("sequence ends in %s, want rejected", last)
	}
}

func TestMachine_EmptyURL(t *testing.T) {
	v := NewMachine(urlgrammar.New())

	report := v.Validate("")
	if report.Valid {
		t.Fatal("Validate() accepted the empty string")
	}
	if report.RejectionReason != "URL cannot be empty" {
		t.Errorf("RejectionReason = %q", report.RejectionReason)
	}
}
