package schemagen

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message represents a single message in a completion request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system instruction message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user prompt message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// ResponseFormat tells the remote service how to shape its reply.
type ResponseFormat struct {
	Type string `json:"type"`
}

// ResponseFormatJSONObject asks the service to return a single JSON object.
var ResponseFormatJSONObject = ResponseFormat{Type: "json_object"}

// Request is the outbound chat-completion payload.
// Field names follow the wire format of OpenAI-compatible endpoints.
type Request struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// System returns the content of the first system message, or "".
func (r *Request) System() string {
	for _, m := range r.Messages {
		if m.Role == RoleSystem {
			return m.Content
		}
	}
	return ""
}

// Prompt returns the content of the last user message, or "".
func (r *Request) Prompt() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// WantsJSON reports whether the request asks for a JSON object response.
func (r *Request) WantsJSON() bool {
	return r.ResponseFormat != nil && r.ResponseFormat.Type == ResponseFormatJSONObject.Type
}

// Response represents the raw reply of a completion provider.
type Response struct {
	Content      string `json:"content"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}
