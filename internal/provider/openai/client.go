package openai

import (
	"context"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/schemagen"
)

// Client wraps the OpenAI SDK to implement schemagen.CompletionProvider
// against any OpenAI-compatible chat-completions endpoint.
type Client struct {
	client  *openai.Client
	options []option.RequestOption
}

// New creates a new OpenAI-compatible client with the given API key.
// SDK retries are disabled; every request is sent exactly once.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		options: []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	client := openai.NewClient(c.options...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithBaseURL points the client at an OpenAI-compatible endpoint,
// e.g. "https://api.gpt.mws.ru/v1".
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.options = append(c.options, option.WithBaseURL(baseURL))
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.options = append(c.options, option.WithHTTPClient(hc))
	}
}

// Complete sends the request and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, req *schemagen.Request) (*schemagen.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:       req.Model,
		Messages:    convertMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.WantsJSON() {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: "json_object",
			},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, schemagen.NewTransportError(schemagen.TransportMalformed, schemagen.ErrEmptyResponse)
	}

	return &schemagen.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: schemagen.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

var _ schemagen.CompletionProvider = (*Client)(nil)
