// Package anthropic implements schemagen.CompletionProvider with the
// Anthropic Messages API.
//
// Claude has no json_object response format. JSON output is obtained by
// forcing a single tool call whose input is the schema document.
package anthropic
