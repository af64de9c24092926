// Package http exposes the validation and automaton APIs over HTTP.
//
// Every expected domain failure (invalid tuple, unknown symbol, missing
// automaton) is converted into a structured {success, message} JSON response
// instead of propagating as a fault; only transport-level problems produce
// non-200 statuses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/ports"
	"github.com/rbaliev/dfakit/pkg/validate"
)

// Server carries the handler dependencies. Validators are injected so tests
// can swap grammars; there is no package-level validator instance.
type Server struct {
	machine   validate.Validator
	heuristic validate.Validator
	store     ports.AutomatonStore
	logger    *slog.Logger

	validations *prometheus.CounterVec
	runSeconds  prometheus.Histogram
}

// NewHandler builds the chi router with all API routes, metrics and CORS.
func NewHandler(machine, heuristic validate.Validator, store ports.AutomatonStore, logger *slog.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	s := &Server{
		machine:   machine,
		heuristic: heuristic,
		store:     store,
		logger:    logger,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dfakit_validations_total",
			Help: "URL validations by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		runSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfakit_run_duration_seconds",
			Help:    "Duration of automaton simulation requests.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	registry.MustRegister(s.validations, s.runSeconds)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Post("/api/validate", s.ValidateURL)
	r.Post("/api/automata", s.CreateAutomaton)
	r.Get("/api/automata", s.ListAutomata)
	r.Post("/api/automata/run", s.RunAutomaton)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeFailure(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": false,
		"message": message,
	})
}

// ValidateURL handles POST /api/validate.
func (s *Server) ValidateURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("validate: invalid request body", "error", err)
		return
	}

	strategy := r.URL.Query().Get("strategy")
	validator := s.machine
	if strategy == "" {
		strategy = "machine"
	}
	if strategy == "heuristic" {
		validator = s.heuristic
	} else if strategy != "machine" {
		http.Error(w, fmt.Sprintf("Unknown strategy %q", strategy), http.StatusBadRequest)
		return
	}

	report := validator.Validate(body.URL)
	report.SecurityIssues = validator.DetectSecurityIssues(body.URL)

	outcome := "rejected"
	if report.Valid {
		outcome = "accepted"
	}
	s.validations.WithLabelValues(strategy, outcome).Inc()

	s.writeJSON(w, http.StatusOK, report)
}

// createRequest is the loose wire form of a user-supplied automaton. The
// body is decoded to a generic map first and mapped onto this struct, so
// partially-typed payloads (numbers where strings are expected, missing
// lists) fail with a readable message instead of a json.UnmarshalTypeError.
type createRequest struct {
	States       []string            `mapstructure:"states"`
	Alphabet     []string            `mapstructure:"alphabet"`
	Transitions  []map[string]string `mapstructure:"transitions"`
	StartState   string              `mapstructure:"start_state"`
	AcceptStates []string            `mapstructure:"accept_states"`
}

// CreateAutomaton handles POST /api/automata. The automaton is validated at
// construction and stored under its content fingerprint, so structurally
// equal submissions share one identifier.
func (s *Server) CreateAutomaton(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var req createRequest
	if err := mapstructure.WeakDecode(raw, &req); err != nil {
		s.writeFailure(w, fmt.Sprintf("Error creating automaton: %v", err))
		return
	}

	doc := automaton.Document{
		Start: automaton.State(req.StartState),
	}
	for _, st := range req.States {
		doc.States = append(doc.States, automaton.State(st))
	}
	doc.Alphabet = req.Alphabet
	for _, st := range req.AcceptStates {
		doc.AcceptStates = append(doc.AcceptStates, automaton.State(st))
	}
	for _, t := range req.Transitions {
		doc.Transitions = append(doc.Transitions, automaton.Transition{
			From: automaton.State(t["from"]),
			On:   t["on"],
			To:   automaton.State(t["to"]),
		})
	}

	a, err := automaton.FromDocument(doc)
	if err != nil {
		s.writeFailure(w, fmt.Sprintf("Error creating automaton: %v", err))
		return
	}

	id := a.Fingerprint()
	if err := s.store.Save(r.Context(), id, a); err != nil {
		s.logger.Error("failed to save automaton", "id", id, "error", err)
		s.writeFailure(w, "Error saving automaton")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Automaton created successfully",
		"automaton_id": id,
	})
}

// ListAutomata handles GET /api/automata.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list automata", "error", err)
		s.writeFailure(w, "Error listing automata")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"automaton_ids": ids,
	})
}

// RunAutomaton handles POST /api/automata/run.
func (s *Server) RunAutomaton(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AutomatonID string `json:"automaton_id"`
		Input       string `json:"input_string"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	defer func() {
		s.runSeconds.Observe(time.Since(start).Seconds())
	}()

	a, err := s.store.Load(r.Context(), body.AutomatonID)
	if errors.Is(err, ports.ErrNotFound) {
		s.writeFailure(w, fmt.Sprintf("Automaton %q not found", body.AutomatonID))
		return
	}
	if err != nil {
		s.logger.Error("failed to load automaton", "id", body.AutomatonID, "error", err)
		s.writeFailure(w, "Error loading automaton")
		return
	}

	res, err := a.Run(body.Input)
	if err != nil {
		// Unknown symbol: a structured rejection, not a fault.
		s.writeFailure(w, fmt.Sprintf("Error testing automaton: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"accepted":       res.Accepted,
		"state_sequence": res.Trace,
	})
}
