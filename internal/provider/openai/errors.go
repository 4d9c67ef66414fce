package openai

import (
	"errors"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/internal/transport"
	"github.com/tidwall/gjson"
)

// wrapError converts an OpenAI SDK error into a schemagen error.
// Non-success HTTP statuses become *schemagen.APIError; everything else
// is classified as a transport failure.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return transport.Classify(err)
	}

	return schemagen.NewAPIError(apiErr.StatusCode, errorMessage(apiErr.Message, apiErr.RawJSON()), err)
}

// errorMessage picks the message out of an {"error":{"message":...}}
// envelope. Some compatible servers put the message at the top level.
func errorMessage(parsed, raw string) string {
	if parsed != "" {
		return parsed
	}
	for _, path := range []string{"error.message", "message", "error"} {
		if r := gjson.Get(raw, path); r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return ""
}
