package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/internal/provider/anthropic"
	"github.com/spetersoncode/schemagen/internal/provider/google"
	"github.com/spetersoncode/schemagen/internal/provider/openai"
	"github.com/spetersoncode/schemagen/internal/transport"
)

// DefaultTimeout bounds a single completion request.
const DefaultTimeout = 15 * time.Second

// Config holds configuration for creating a completion client.
type Config struct {
	// Provider selects the backend. Defaults to schemagen.ProviderOpenAI.
	Provider schemagen.Provider

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL overrides the provider endpoint. For the openai provider this is
	// the root of any OpenAI-compatible API.
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient replaces the SDK's default HTTP client.
	HTTPClient *http.Client

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when no API key is configured for the provider.
type ErrMissingAPIKey struct {
	Provider schemagen.Provider
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrUnknownProvider is returned for a provider name schemagen cannot serve.
type ErrUnknownProvider struct {
	Provider schemagen.Provider
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider %q", e.Provider)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithEvents sets the channel receiving client events.
func WithEvents(ch chan<- Event) ClientOption {
	return func(c *Client) {
		c.events = ch
	}
}

// Client sends completion requests to a single backend. It applies the
// request timeout, reports every failure as a typed schemagen error and
// never retries.
type Client struct {
	backend  schemagen.CompletionProvider
	provider schemagen.Provider
	timeout  time.Duration
	events   chan<- Event
}

// New creates a client for the configured provider.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = schemagen.ProviderOpenAI
	}
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: provider}
	}

	var backend schemagen.CompletionProvider
	switch provider {
	case schemagen.ProviderOpenAI:
		clientOpts := []openai.ClientOption{openai.WithBaseURL(cfg.BaseURL)}
		if cfg.HTTPClient != nil {
			clientOpts = append(clientOpts, openai.WithHTTPClient(cfg.HTTPClient))
		}
		backend = openai.New(cfg.APIKey, clientOpts...)
	case schemagen.ProviderAnthropic:
		clientOpts := []anthropic.ClientOption{anthropic.WithBaseURL(cfg.BaseURL)}
		if cfg.HTTPClient != nil {
			clientOpts = append(clientOpts, anthropic.WithHTTPClient(cfg.HTTPClient))
		}
		backend = anthropic.New(cfg.APIKey, clientOpts...)
	case schemagen.ProviderGoogle:
		clientOpts := []google.ClientOption{google.WithBaseURL(cfg.BaseURL)}
		if cfg.HTTPClient != nil {
			clientOpts = append(clientOpts, google.WithHTTPClient(cfg.HTTPClient))
		}
		g, err := google.New(context.Background(), cfg.APIKey, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("init google client: %w", err)
		}
		backend = g
	default:
		return nil, &ErrUnknownProvider{Provider: provider}
	}

	c := NewWithProvider(backend, opts...)
	c.provider = provider
	if cfg.Timeout > 0 {
		c.timeout = cfg.Timeout
	}
	if cfg.Events != nil {
		c.events = cfg.Events
	}
	return c, nil
}

// NewWithProvider wraps an existing CompletionProvider.
func NewWithProvider(backend schemagen.CompletionProvider, opts ...ClientOption) *Client {
	c := &Client{
		backend: backend,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the backend name, empty for custom providers.
func (c *Client) Provider() schemagen.Provider {
	return c.provider
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Complete sends req once and returns the raw model output. Failures are
// *schemagen.APIError or *schemagen.TransportError; a panic inside the
// backend is reported as a transport failure.
func (c *Client) Complete(ctx context.Context, req *schemagen.Request) (resp *schemagen.Response, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	emit(c.events, Event{
		Type:     EventRequestStart,
		Provider: c.provider,
		Model:    req.Model,
	})

	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &schemagen.TransportError{
				Kind:    schemagen.TransportUnknown,
				Details: fmt.Sprintf("panic in completion backend: %v", r),
			}
		}
		if err != nil {
			emit(c.events, Event{
				Type:     EventRequestError,
				Provider: c.provider,
				Model:    req.Model,
				Duration: time.Since(start),
				Error:    err,
			})
			return
		}
		emit(c.events, Event{
			Type:     EventRequestComplete,
			Provider: c.provider,
			Model:    req.Model,
			Duration: time.Since(start),
			Usage:    &resp.Usage,
		})
	}()

	resp, err = c.backend.Complete(ctx, req)
	if err != nil {
		return nil, transport.Classify(err)
	}
	if resp == nil {
		return nil, schemagen.NewTransportError(schemagen.TransportMalformed, schemagen.ErrEmptyResponse)
	}
	return resp, nil
}

var _ schemagen.CompletionProvider = (*Client)(nil)
