package anthropic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spetersoncode/schemagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testRequest() *schemagen.Request {
	return &schemagen.Request{
		Model: "claude-sonnet-4-5",
		Messages: []schemagen.Message{
			schemagen.SystemMessage("only json"),
			schemagen.UserMessage("user profile"),
		},
		Temperature:    0.1,
		MaxTokens:      2000,
		ResponseFormat: &schemagen.ResponseFormatJSONObject,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL))
}

func TestComplete(t *testing.T) {
	t.Run("tool input becomes content", func(t *testing.T) {
		seen := make(chan []byte, 1)
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			seen <- body
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{
				"id": "msg_1",
				"type": "message",
				"role": "assistant",
				"model": "claude-sonnet-4-5",
				"content": [{"type": "tool_use", "id": "tu_1", "name": "emit_json_schema", "input": {"title": "User"}}],
				"stop_reason": "tool_use",
				"usage": {"input_tokens": 10, "output_tokens": 4}
			}`)
		})

		resp, err := c.Complete(context.Background(), testRequest())
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"User"}`, resp.Content)
		assert.Equal(t, "tool_use", resp.FinishReason)
		assert.Equal(t, 10, resp.Usage.InputTokens)

		body := <-seen
		assert.Equal(t, "only json", gjson.GetBytes(body, "system.0.text").String())
		assert.Equal(t, "emit_json_schema", gjson.GetBytes(body, "tool_choice.name").String())
		assert.Equal(t, int64(2000), gjson.GetBytes(body, "max_tokens").Int())
	})

	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens too large"}}`)
		})

		_, err := c.Complete(context.Background(), testRequest())
		var apiErr *schemagen.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, "max_tokens too large", apiErr.Message)
	})
}

func TestConvertMessages(t *testing.T) {
	msgs, system := convertMessages([]schemagen.Message{
		schemagen.SystemMessage("rules"),
		schemagen.UserMessage(""),
		schemagen.UserMessage("hello"),
	})
	require.Len(t, system, 1)
	assert.Equal(t, "rules", system[0].Text)
	assert.Len(t, msgs, 1)
}
