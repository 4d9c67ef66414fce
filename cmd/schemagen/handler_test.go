package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type queueCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
}

func (q *queueCompleter) Complete(context.Context, *schemagen.Request) (*schemagen.Response, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	r := q.replies[0]
	if len(q.replies) > 1 {
		q.replies = q.replies[1:]
	}
	return &schemagen.Response{Content: r}, nil
}

const pipelineSchema = `{"title":"Pipeline","type":"object","properties":{"stage":{"type":"string"}},"integrationSteps":["Build","Test"]}`

func newTestServer(t *testing.T, c schemagen.CompletionProvider) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wf := workflow.New(c, workflow.WithLogger(logger))
	srv := httptest.NewServer(NewServer(wf, logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestGenerateSchema(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"pipeline"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.True(t, gjson.Get(body, "success").Bool())
		assert.Equal(t, `["Build","Test"]`, gjson.Get(body, "integration_steps").Raw)
		assert.Equal(t, "Pipeline", gjson.Get(gjson.Get(body, "schema").String(), "title").String())
	})

	t.Run("success without steps", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{`{"title":"User","type":"object","properties":{}}`}})

		_, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"user"}`)
		assert.Equal(t, `[]`, gjson.Get(body, "integration_steps").Raw)
	})

	t.Run("clarification", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{`{"type":"object"}`}})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"thing"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `["title","properties"]`, gjson.Get(body, "missing_fields").Raw)
		assert.Equal(t, workflow.ClarificationMessage, gjson.Get(body, "message").String())
	})

	t.Run("warning on refine", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"add integration step \"Deploy\"","action":"refine"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, workflow.MissingStepsMessage+"Deploy", gjson.Get(body, "warning").String())
		assert.Equal(t, `["Build","Test"]`, gjson.Get(body, "available_steps").Raw)
	})

	t.Run("invalid JSON from model", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{"sorry, I can't help"}})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"user"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, workflow.InvalidJSONMessage, gjson.Get(body, "error").String())
		assert.Equal(t, "sorry, I can't help", gjson.Get(body, "response").String())
	})

	t.Run("api error", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{err: schemagen.NewAPIError(500, "overloaded", nil)})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"prompt":"user"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "overloaded", gjson.Get(body, "error").String())
	})

	t.Run("not JSON", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

		resp, err := http.Post(srv.URL+"/generate-schema", "text/plain", strings.NewReader("prompt=x"))
		require.NoError(t, err)
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Request must be JSON"}`, string(data))
	})

	t.Run("missing prompt", func(t *testing.T) {
		srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

		status, body := postJSON(t, srv.URL+"/generate-schema", `{"action":"generate"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Prompt is required"}`, body)
	})
}

func TestIntegrationEndpoints(t *testing.T) {
	srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})
	_, _ = postJSON(t, srv.URL+"/generate-schema", `{"prompt":"pipeline"}`)

	t.Run("check existing", func(t *testing.T) {
		status, body := postJSON(t, srv.URL+"/check-integration", `{"step":"Build"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"exists":true}`, body)
	})

	t.Run("check missing", func(t *testing.T) {
		_, body := postJSON(t, srv.URL+"/check-integration", `{"step":"Deploy"}`)
		assert.JSONEq(t, `{"exists":false,"available_steps":["Build","Test"]}`, body)
	})

	t.Run("check requires step", func(t *testing.T) {
		status, _ := postJSON(t, srv.URL+"/check-integration", `{}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("list", func(t *testing.T) {
		_, body := get(t, srv.URL+"/integration-steps")
		assert.JSONEq(t, `{"integration_steps":["Build","Test"]}`, body)
	})

	t.Run("reset", func(t *testing.T) {
		status, _ := postJSON(t, srv.URL+"/reset", `{}`)
		assert.Equal(t, http.StatusOK, status)
		_, body := get(t, srv.URL+"/integration-steps")
		assert.JSONEq(t, `{"integration_steps":[]}`, body)
	})
}

func TestModelsAndHealth(t *testing.T) {
	srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

	_, body := get(t, srv.URL+"/api/models")
	assert.Equal(t, "qwen2.5-32b-instruct", gjson.Get(body, "selected_model").String())
	assert.Len(t, gjson.Get(body, "available_models").Array(), 7)

	status, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &queueCompleter{replies: []string{pipelineSchema}})

	status, _ := get(t, srv.URL+"/generate-schema")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
