package schemagen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Run("falls back to default message", func(t *testing.T) {
		err := NewAPIError(500, "", nil)
		assert.Equal(t, DefaultAPIErrorMessage, err.Message)
		assert.Equal(t, 500, err.StatusCode)
	})

	t.Run("keeps envelope message", func(t *testing.T) {
		err := NewAPIError(500, "overloaded", nil)
		assert.Equal(t, "api error (status 500): overloaded", err.Error())
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("sdk error")
		err := NewAPIError(400, "bad", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestTransportError(t *testing.T) {
	t.Run("details default to cause", func(t *testing.T) {
		err := NewTransportError(TransportTimeout, context.DeadlineExceeded)
		assert.Equal(t, TransportTimeout, err.Kind)
		assert.Equal(t, "context deadline exceeded", err.Details)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("formats without details", func(t *testing.T) {
		err := &TransportError{Kind: TransportMalformed}
		assert.Equal(t, "request failed (malformed_response)", err.Error())
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"nil", nil, ""},
		{"missing prompt", ErrMissingPrompt, ErrorMissingPrompt},
		{"api error", NewAPIError(503, "down", nil), ErrorAPI},
		{"wrapped api error", fmt.Errorf("call: %w", NewAPIError(401, "nope", nil)), ErrorAPI},
		{"transport error", NewTransportError(TransportConnection, errors.New("refused")), ErrorTransport},
		{"unknown error", errors.New("boom"), ErrorTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, 429, StatusCodeOf(NewAPIError(429, "slow down", nil)))
	assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
}
