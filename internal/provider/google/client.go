package google

import (
	"context"
	"net/http"
	"strings"

	"github.com/spetersoncode/schemagen"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to implement schemagen.CompletionProvider.
type Client struct {
	client *genai.Client
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the Google client.
type ClientOption func(*clientConfig)

// WithBaseURL overrides the Gemini API endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// New creates a new Gemini API client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.httpClient,
	}
	if cfg.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Complete sends the request to generateContent. JSON output is requested
// through the response MIME type.
func (c *Client) Complete(ctx context.Context, req *schemagen.Request) (*schemagen.Response, error) {
	contents, system := convertMessages(req.Messages)

	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:       &temp,
		SystemInstruction: system,
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.WantsJSON() {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, wrapError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, schemagen.NewTransportError(schemagen.TransportMalformed, schemagen.ErrEmptyResponse)
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			content.WriteString(part.Text)
		}
	}

	usage := schemagen.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &schemagen.Response{
		Content:      content.String(),
		FinishReason: string(resp.Candidates[0].FinishReason),
		Usage:        usage,
	}, nil
}

var _ schemagen.CompletionProvider = (*Client)(nil)
