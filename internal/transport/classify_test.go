package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/spetersoncode/schemagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNetError struct {
	msg     string
	timeout bool
}

func (e *mockNetError) Error() string   { return e.msg }
func (e *mockNetError) Timeout() bool   { return e.timeout }
func (e *mockNetError) Temporary() bool { return false }

var _ net.Error = (*mockNetError)(nil)

func TestKindOf(t *testing.T) {
	var syntaxErr *json.SyntaxError
	badJSON := json.Unmarshal([]byte("{nope"), &map[string]any{})
	require.True(t, errors.As(badJSON, &syntaxErr))

	tests := []struct {
		name string
		err  error
		want schemagen.TransportKind
	}{
		{"deadline", context.DeadlineExceeded, schemagen.TransportTimeout},
		{"wrapped deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), schemagen.TransportTimeout},
		{"canceled", context.Canceled, schemagen.TransportCanceled},
		{"net timeout", &mockNetError{msg: "i/o timeout", timeout: true}, schemagen.TransportTimeout},
		{"url timeout", &url.Error{Op: "Post", URL: "http://x", Err: &mockNetError{msg: "slow", timeout: true}}, schemagen.TransportTimeout},
		{"refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, schemagen.TransportConnection},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.invalid"}, schemagen.TransportConnection},
		{"reset text", errors.New("read: connection reset by peer"), schemagen.TransportConnection},
		{"bad json", fmt.Errorf("decode: %w", badJSON), schemagen.TransportMalformed},
		{"empty response", schemagen.ErrEmptyResponse, schemagen.TransportMalformed},
		{"other", errors.New("something odd"), schemagen.TransportUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("api errors pass through", func(t *testing.T) {
		apiErr := schemagen.NewAPIError(500, "overloaded", nil)
		assert.Same(t, apiErr, Classify(apiErr))
	})

	t.Run("wraps with kind", func(t *testing.T) {
		err := Classify(context.DeadlineExceeded)
		var te *schemagen.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, schemagen.TransportTimeout, te.Kind)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, schemagen.ErrorTransport, schemagen.KindOf(err))
	})
}
