// Package mcp exposes URL validation and automaton simulation as MCP tools,
// so agent hosts can call the engine over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/ports"
	"github.com/rbaliev/dfakit/pkg/validate"
)

// RunResponse is the structured result of the run_automaton tool.
type RunResponse struct {
	Accepted      bool              `json:"accepted" jsonschema_description:"Whether the input was accepted"`
	StateSequence []automaton.State `json:"state_sequence" jsonschema_description:"Ordered states visited during the run"`
	Message       string            `json:"message,omitempty" jsonschema_description:"Why the input was rejected without a full run, if so"`
}

// Server wraps the validator and store and exposes them as an MCP server.
type Server struct {
	validator validate.Validator
	store     ports.AutomatonStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(validator validate.Validator, store ports.AutomatonStore, version string) *Server {
	s := &Server{
		validator: validator,
		store:     store,
		mcpServer: server.NewMCPServer("dfakit-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_url",
		mcp.WithDescription("Validate a URL against the DFA grammar and scan it for suspicious content."),
		mcp.WithString("url", mcp.Required(), mcp.Description("The URL to validate")),
		mcp.WithOutputSchema[validate.Report](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	runTool := mcp.NewTool("run_automaton",
		mcp.WithDescription("Simulate an input string against a stored automaton."),
		mcp.WithString("automaton_id", mcp.Required(), mcp.Description("Identifier of a stored automaton")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string to simulate")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (validate.Report, error) {
	url, _ := args["url"].(string)

	report := s.validator.Validate(url)
	report.SecurityIssues = s.validator.DetectSecurityIssues(url)
	return report, nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	id, _ := args["automaton_id"].(string)
	input, _ := args["input"].(string)

	a, err := s.store.Load(ctx, id)
	if err != nil {
		return RunResponse{}, fmt.Errorf("load failed: %w", err)
	}

	res, err := a.Run(input)
	var ue *automaton.UnknownSymbolError
	if errors.As(err, &ue) {
		// A symbol outside the alphabet is a structured rejection, not a
		// tool fault; report the states reached before it.
		resp := RunResponse{StateSequence: []automaton.State{a.Start()}, Message: ue.Error()}
		if prefix, prefixErr := a.Run(input[:ue.Pos]); prefixErr == nil {
			resp.StateSequence = prefix.Trace
		}
		return resp, nil
	}
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}

	return RunResponse{Accepted: res.Accepted, StateSequence: res.Trace}, nil
}
