package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/internal/transport"
	"github.com/tidwall/gjson"
)

// wrapError converts an Anthropic SDK error into a schemagen error.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return transport.Classify(err)
	}

	msg := gjson.Get(apiErr.RawJSON(), "error.message").String()
	return schemagen.NewAPIError(apiErr.StatusCode, msg, err)
}
