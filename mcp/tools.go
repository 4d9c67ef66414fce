package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	ToolGenerateSchema       = "generate_schema"
	ToolRefineSchema         = "refine_schema"
	ToolListIntegrationSteps = "list_integration_steps"
	ToolCheckIntegrationStep = "check_integration_step"
)

var promptSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"prompt": {"type": "string", "description": "Natural-language description of the schema or of the change to make"}
	},
	"required": ["prompt"]
}`)

var stepSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"step": {"type": "string", "description": "Integration step name"}
	},
	"required": ["step"]
}`)

var emptySchema = json.RawMessage(`{"type": "object", "properties": {}}`)

func tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewToolWithRawSchema(ToolGenerateSchema,
			"Generate a new JSON Schema (Draft-07) from a description. The result replaces the stored schema.",
			promptSchema),
		mcp.NewToolWithRawSchema(ToolRefineSchema,
			"Modify the stored JSON Schema according to a description. Behaves like generate_schema when nothing is stored.",
			promptSchema),
		mcp.NewToolWithRawSchema(ToolListIntegrationSteps,
			"List the integration steps of the stored schema.",
			emptySchema),
		mcp.NewToolWithRawSchema(ToolCheckIntegrationStep,
			"Check whether the stored schema lists an integration step.",
			stepSchema),
	}
}
