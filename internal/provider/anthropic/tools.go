package anthropic

import "github.com/anthropics/anthropic-sdk-go"

// jsonResponseToolName is the name of the synthetic tool used for JSON mode.
const jsonResponseToolName = "emit_json_schema"

// jsonTool builds a tool accepting any JSON object and a choice forcing
// the model to call it.
func jsonTool() (anthropic.ToolUnionParam, anthropic.ToolChoiceUnionParam) {
	tool := anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        jsonResponseToolName,
			Description: anthropic.String("Output the JSON Schema document as the tool input"),
			InputSchema: anthropic.ToolInputSchemaParam{},
		},
	}

	choice := anthropic.ToolChoiceUnionParam{
		OfTool: &anthropic.ToolChoiceToolParam{
			Name: jsonResponseToolName,
		},
	}

	return tool, choice
}
