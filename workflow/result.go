package workflow

import (
	"strings"

	"github.com/spetersoncode/schemagen"
)

// Status tags the variant of a Result.
type Status string

const (
	StatusSuccess            Status = "success"
	StatusNeedsClarification Status = "needs_clarification"
	StatusWarning            Status = "warning"
	StatusError              Status = "error"
)

// User-facing messages.
const (
	ClarificationMessage = "Требуется уточнение для недостающих полей"
	MissingStepsMessage  = "Шаги интеграции не найдены: "
	InvalidJSONMessage   = "Invalid JSON from API"
	InvalidSchemaMessage = "Invalid Schema"
	RequestFailedMessage = "Request failed"
	MissingPromptMessage = "Prompt is required"
)

// Result is the outcome of a generate or refine call. Which fields are set
// depends on Status:
//
//   - success: Schema, IntegrationSteps
//   - needs_clarification: Schema, MissingFields, Message
//   - warning: Schema, Message, MissingSteps, AvailableSteps
//   - error: ErrorKind, Message, and RawContent for parse and schema
//     failures; StatusCode for API errors
//
// Schema is always the 2-space indented JSON text of the stored schema.
type Result struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	Schema           string   `json:"schema,omitempty"`
	IntegrationSteps []string `json:"integration_steps,omitempty"`
	MissingFields    []string `json:"missing_fields,omitempty"`
	MissingSteps     []string `json:"missing_steps,omitempty"`
	AvailableSteps   []string `json:"available_steps,omitempty"`
	Message          string   `json:"message,omitempty"`

	ErrorKind  schemagen.ErrorKind `json:"error_kind,omitempty"`
	StatusCode int                 `json:"status_code,omitempty"`
	RawContent string              `json:"raw_content,omitempty"`

	// Err is the underlying error for error results.
	Err error `json:"-"`
}

// IsError reports whether the call failed.
func (r *Result) IsError() bool {
	return r.Status == StatusError
}

// Stored reports whether the call replaced the active schema.
func (r *Result) Stored() bool {
	return r.Status != StatusError
}

func successResult(id, schema string, steps []string) *Result {
	return &Result{
		ID:               id,
		Status:           StatusSuccess,
		Schema:           schema,
		IntegrationSteps: steps,
	}
}

func clarificationResult(id, schema string, missing []string) *Result {
	return &Result{
		ID:            id,
		Status:        StatusNeedsClarification,
		Schema:        schema,
		MissingFields: missing,
		Message:       ClarificationMessage,
	}
}

func warningResult(id, schema string, missing, available []string) *Result {
	return &Result{
		ID:             id,
		Status:         StatusWarning,
		Schema:         schema,
		Message:        MissingStepsMessage + strings.Join(missing, ", "),
		MissingSteps:   missing,
		AvailableSteps: available,
	}
}

func errorResult(id string, kind schemagen.ErrorKind, msg, raw string, err error) *Result {
	return &Result{
		ID:         id,
		Status:     StatusError,
		ErrorKind:  kind,
		Message:    msg,
		RawContent: raw,
		StatusCode: schemagen.StatusCodeOf(err),
		Err:        err,
	}
}
