// Package google implements schemagen.CompletionProvider with the Gemini API.
package google
