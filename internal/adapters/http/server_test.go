package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rbaliev/dfakit/internal/logging"
	"github.com/rbaliev/dfakit/pkg/adapters/memory"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
	"github.com/rbaliev/dfakit/pkg/validate"
)

func newTestHandler() http.Handler {
	return NewHandler(
		validate.NewMachine(urlgrammar.New()),
		validate.NewHeuristic(),
		memory.NewStore(),
		logging.NewNop(),
	)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestValidateURL_Valid(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/validate", map[string]string{
		"url": "https://example.com/docs?page=1#top",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	out := decode(t, w)
	if out["valid"] != true {
		t.Errorf("valid = %v, want true", out["valid"])
	}
	if out["components"] == nil {
		t.Error("components missing for a valid URL")
	}
	seq, ok := out["state_sequence"].([]any)
	if !ok || len(seq) == 0 {
		t.Fatalf("state_sequence = %v", out["state_sequence"])
	}
	if seq[len(seq)-1] != "fragment" {
		t.Errorf("sequence ends in %v, want fragment", seq[len(seq)-1])
	}
}

func TestValidateURL_InvalidWithReason(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/validate", map[string]string{"url": "ftp://x.com"})
	out := decode(t, w)
	if out["valid"] != false {
		t.Errorf("valid = %v, want false", out["valid"])
	}
	if out["rejection_reason"] == nil || out["rejection_reason"] == "" {
		t.Error("rejection_reason missing")
	}
}

func TestValidateURL_HeuristicStrategy(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/validate?strategy=heuristic", map[string]string{
		"url": "https://example.com",
	})
	out := decode(t, w)
	if out["valid"] != true {
		t.Errorf("valid = %v, want true", out["valid"])
	}
}

func TestValidateURL_UnknownStrategy(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/validate?strategy=psychic", map[string]string{"url": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestValidateURL_SecurityIssues(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/validate", map[string]string{
		"url": "https://example.com/q?id=1%27--",
	})
	out := decode(t, w)
	issues, ok := out["security_issues"].(map[string]any)
	if !ok {
		t.Fatalf("security_issues = %v", out["security_issues"])
	}
	if _, ok := issues["sql_injection"]; !ok {
		t.Errorf("sql_injection not flagged: %v", issues)
	}
}

func TestCreateAndRunAutomaton(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/automata", map[string]any{
		"states":   []string{"even", "odd"},
		"alphabet": []string{"0", "1"},
		"transitions": []map[string]string{
			{"from": "even", "on": "0", "to": "odd"},
			{"from": "even", "on": "1", "to": "even"},
			{"from": "odd", "on": "0", "to": "even"},
			{"from": "odd", "on": "1", "to": "odd"},
		},
		"start_state":   "even",
		"accept_states": []string{"even"},
	})
	out := decode(t, w)
	if out["success"] != true {
		t.Fatalf("create failed: %v", out)
	}
	id, _ := out["automaton_id"].(string)
	if id == "" {
		t.Fatal("automaton_id missing")
	}

	w = postJSON(t, handler, "/api/automata/run", map[string]string{
		"automaton_id": id,
		"input_string": "0110",
	})
	out = decode(t, w)
	if out["success"] != true || out["accepted"] != true {
		t.Fatalf("run = %v", out)
	}

	// Identical input yields an identical sequence on a second run.
	w2 := postJSON(t, handler, "/api/automata/run", map[string]string{
		"automaton_id": id,
		"input_string": "0110",
	})
	if w.Body.String() != w2.Body.String() {
		t.Error("two identical runs produced different responses")
	}
}

func TestCreateAutomaton_InvalidTuple(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/automata", map[string]any{
		"states":        []string{"a"},
		"alphabet":      []string{"x"},
		"start_state":   "a",
		"accept_states": []string{"ghost"},
	})
	out := decode(t, w)
	if out["success"] != false {
		t.Fatalf("create of an invalid tuple succeeded: %v", out)
	}
	msg, _ := out["message"].(string)
	if !strings.Contains(msg, "accept") {
		t.Errorf("message = %q, want mention of the accept set", msg)
	}
}

func TestRunAutomaton_NotFound(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/automata/run", map[string]string{
		"automaton_id": "missing",
		"input_string": "01",
	})
	out := decode(t, w)
	if out["success"] != false {
		t.Errorf("run of a missing automaton succeeded: %v", out)
	}
}

func TestRunAutomaton_UnknownSymbolIsStructured(t *testing.T) {
	handler := newTestHandler()

	w := postJSON(t, handler, "/api/automata", map[string]any{
		"states":        []string{"a"},
		"alphabet":      []string{"x"},
		"transitions":   []map[string]string{{"from": "a", "on": "x", "to": "a"}},
		"start_state":   "a",
		"accept_states": []string{"a"},
	})
	id, _ := decode(t, w)["automaton_id"].(string)

	w = postJSON(t, handler, "/api/automata/run", map[string]string{
		"automaton_id": id,
		"input_string": "xyz",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a structured rejection", w.Code)
	}
	out := decode(t, w)
	if out["success"] != false {
		t.Errorf("unknown symbol not converted to a structured failure: %v", out)
	}
}

func TestHealthzAndMetrics(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("healthz status = %d", w.Code)
	}

	// Drive one validation so the counter has a sample.
	postJSON(t, handler, "/api/validate", map[string]string{"url": "https://example.com"})

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "dfakit_validations_total") {
		t.Error("metrics output missing dfakit_validations_total")
	}
}
