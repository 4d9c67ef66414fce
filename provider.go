package schemagen

import "context"

// Provider identifies a completion backend.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// CompletionProvider sends a composed request to a remote model and returns its raw content.
//
// Implementations report remote non-success statuses as *APIError and every other
// failure (timeouts, connection problems, malformed replies) as *TransportError.
type CompletionProvider interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}
