package schemagen

import (
	"errors"
	"fmt"
)

// ErrMissingPrompt is returned when a generate or refine call has no prompt text.
var ErrMissingPrompt = errors.New("prompt is required")

// ErrEmptyResponse is returned by providers when the reply carries no choices.
var ErrEmptyResponse = errors.New("response contains no choices")

// ErrorKind classifies a failure surfaced to callers of the schema workflow.
type ErrorKind string

const (
	// ErrorMissingPrompt indicates the caller supplied an empty prompt.
	ErrorMissingPrompt ErrorKind = "missing_prompt"

	// ErrorAPI indicates the remote service answered with a non-success status.
	ErrorAPI ErrorKind = "api_error"

	// ErrorInvalidJSON indicates the model output could not be parsed as JSON.
	ErrorInvalidJSON ErrorKind = "invalid_json_from_api"

	// ErrorInvalidSchema indicates the model output is JSON but not a valid Draft-07 schema.
	ErrorInvalidSchema ErrorKind = "invalid_schema"

	// ErrorTransport indicates a network, timeout or response decoding failure.
	ErrorTransport ErrorKind = "transport_failure"
)

// DefaultAPIErrorMessage is used when the remote error envelope carries no message.
const DefaultAPIErrorMessage = "Unknown error"

// APIError is returned when the remote service responds with a non-success status.
type APIError struct {
	StatusCode int
	Message    string
	Cause      error
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap returns the underlying SDK error.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates an APIError, substituting the default message when msg is empty.
func NewAPIError(statusCode int, msg string, cause error) *APIError {
	if msg == "" {
		msg = DefaultAPIErrorMessage
	}
	return &APIError{StatusCode: statusCode, Message: msg, Cause: cause}
}

// TransportKind narrows down why a request never produced a usable reply.
type TransportKind string

const (
	TransportTimeout    TransportKind = "timeout"
	TransportConnection TransportKind = "connection"
	TransportMalformed  TransportKind = "malformed_response"
	TransportCanceled   TransportKind = "canceled"
	TransportUnknown    TransportKind = "unknown"
)

// TransportError is returned for failures below the API level.
type TransportError struct {
	Kind    TransportKind
	Details string
	Cause   error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("request failed (%s)", e.Kind)
	}
	return fmt.Sprintf("request failed (%s): %s", e.Kind, e.Details)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a TransportError whose details default to the cause's message.
func NewTransportError(kind TransportKind, cause error) *TransportError {
	te := &TransportError{Kind: kind, Cause: cause}
	if cause != nil {
		te.Details = cause.Error()
	}
	return te
}

// KindOf maps an error returned by a CompletionProvider to an ErrorKind.
// Unrecognized errors are reported as transport failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrMissingPrompt) {
		return ErrorMissingPrompt
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorAPI
	}
	return ErrorTransport
}

// StatusCodeOf returns the HTTP status code carried by an APIError, or 0.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
