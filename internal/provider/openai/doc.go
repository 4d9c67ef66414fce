// Package openai implements schemagen.CompletionProvider on top of the
// official OpenAI Go SDK. Any server that speaks the chat-completions
// protocol works, which is how the MWS GPT endpoint is reached.
package openai
