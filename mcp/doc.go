// Package mcp exposes a schema workflow as an MCP (Model Context Protocol)
// server, so MCP clients can generate and refine schemas as tools.
//
// Tools:
//
//   - generate_schema: {"prompt": string} generates a fresh schema
//   - refine_schema: {"prompt": string} refines the stored schema
//   - list_integration_steps: returns the steps of the stored schema
//   - check_integration_step: {"step": string} reports whether a step exists
//
// Successful calls return the workflow result as JSON text. Failed
// generations are returned as tool errors carrying the same JSON.
//
//	wf := workflow.New(c)
//	if err := mcp.ServeStdio(wf, mcp.WithName("schemagen")); err != nil {
//	    log.Fatal(err)
//	}
package mcp
