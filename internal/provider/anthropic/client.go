package anthropic

import (
	"context"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spetersoncode/schemagen"
)

const defaultMaxTokens = 2000

// Client wraps the Anthropic SDK to implement schemagen.CompletionProvider.
type Client struct {
	client  *anthropic.Client
	options []option.RequestOption
}

// New creates a new Anthropic client with the given API key.
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
	client := anthropic.NewClient(c.options...)
	c.client = &client
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint.
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

// Complete sends the request to the Messages API. When JSON output is
// requested, the model is forced to answer through a synthetic tool and
// the tool input is returned as the content.
func (c *Client) Complete(ctx context.Context, req *schemagen.Request) (*schemagen.Response, error) {
	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	msgs, system := convertMessages(req.Messages)
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   maxTokens,
		Messages:    msgs,
		Temperature: anthropic.Float(req.Temperature),
	}
	if len(system) > 0 {
		params.System = system
	}

	useJSONTool := req.WantsJSON()
	if useJSONTool {
		tool, choice := jsonTool()
		params.Tools = []anthropic.ToolUnionParam{tool}
		params.ToolChoice = choice
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if resp == nil || len(resp.Content) == 0 {
		return nil, schemagen.NewTransportError(schemagen.TransportMalformed, schemagen.ErrEmptyResponse)
	}

	var text strings.Builder
	content := ""
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			if useJSONTool && block.Name == jsonResponseToolName {
				content = string(block.Input)
			}
		}
	}
	if content == "" {
		content = text.String()
	}

	return &schemagen.Response{
		Content:      content,
		FinishReason: string(resp.StopReason),
		Usage: schemagen.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

var _ schemagen.CompletionProvider = (*Client)(nil)
