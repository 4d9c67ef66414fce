package google

import (
	"errors"

	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/internal/transport"
	"google.golang.org/genai"
)

// wrapError converts a Google GenAI error into a schemagen error.
// genai.APIError is returned by value, not by pointer.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return schemagen.NewAPIError(apiErr.Code, apiErr.Message, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return schemagen.NewAPIError(apiErrPtr.Code, apiErrPtr.Message, err)
	}
	return transport.Classify(err)
}
