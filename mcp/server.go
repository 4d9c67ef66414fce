package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spetersoncode/schemagen/workflow"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server whose tools drive wf.
func NewServer(wf *workflow.Workflow, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "schemagen",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	handlers := map[string]server.ToolHandlerFunc{
		ToolGenerateSchema:       runHandler(wf, workflow.ActionGenerate),
		ToolRefineSchema:         runHandler(wf, workflow.ActionRefine),
		ToolListIntegrationSteps: listStepsHandler(wf),
		ToolCheckIntegrationStep: checkStepHandler(wf),
	}
	for _, t := range tools() {
		s.AddTool(t, handlers[t.Name])
	}

	return s
}

type promptArgs struct {
	Prompt string `json:"prompt"`
}

type stepArgs struct {
	Step string `json:"step"`
}

// decodeArgs round-trips the loosely typed arguments into v.
func decodeArgs(req mcp.CallToolRequest, v any) error {
	args := req.Params.Arguments
	if args == nil {
		args = map[string]any{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func jsonResult(v any, isError bool) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	if isError {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func runHandler(wf *workflow.Workflow, action string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args promptArgs
		if err := decodeArgs(req, &args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res := wf.Run(ctx, action, args.Prompt)
		return jsonResult(res, res.IsError())
	}
}

func listStepsHandler(wf *workflow.Workflow) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{
			"integration_steps": wf.IntegrationSteps(),
		}, false)
	}
}

func checkStepHandler(wf *workflow.Workflow) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args stepArgs
		if err := decodeArgs(req, &args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if strings.TrimSpace(args.Step) == "" {
			return mcp.NewToolResultError("integration step is required"), nil
		}
		if wf.HasIntegrationStep(args.Step) {
			return jsonResult(map[string]any{"exists": true}, false)
		}
		return jsonResult(map[string]any{
			"exists":          false,
			"available_steps": wf.IntegrationSteps(),
		}, false)
	}
}

// ServeStdio starts an MCP server for wf on stdin/stdout.
func ServeStdio(wf *workflow.Workflow, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(wf, opts...))
}
