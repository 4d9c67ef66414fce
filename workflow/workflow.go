package workflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/integration"
	"github.com/spetersoncode/schemagen/prompt"
	"github.com/spetersoncode/schemagen/validator"
)

// Actions accepted by Run.
const (
	ActionGenerate = "generate"
	ActionRefine   = "refine"
)

// Workflow turns prompts into validated JSON Schema documents and keeps the
// latest one as the base for refinements.
type Workflow struct {
	completer schemagen.CompletionProvider
	state     *State
	composer  *prompt.Composer
	validator *validator.Validator
	logger    *slog.Logger
}

// New creates a workflow that sends requests through completer.
func New(completer schemagen.CompletionProvider, opts ...Option) *Workflow {
	w := &Workflow{
		completer: completer,
		state:     NewState(),
		composer:  prompt.New(),
		validator: validator.MustNew(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Generate produces a fresh schema, ignoring any stored one.
func (w *Workflow) Generate(ctx context.Context, text string) *Result {
	return w.run(ctx, text, false)
}

// Refine modifies the stored schema according to text. Without a stored
// schema it behaves like Generate, except for the mentioned-step check.
func (w *Workflow) Refine(ctx context.Context, text string) *Result {
	return w.run(ctx, text, true)
}

// Run dispatches on action: "generate" generates, anything else refines.
func (w *Workflow) Run(ctx context.Context, action, text string) *Result {
	if action == ActionGenerate {
		return w.Generate(ctx, text)
	}
	return w.Refine(ctx, text)
}

// IntegrationSteps returns the steps of the stored schema.
func (w *Workflow) IntegrationSteps() []string {
	return w.state.Steps()
}

// HasIntegrationStep reports whether the stored schema lists name.
func (w *Workflow) HasIntegrationStep(name string) bool {
	return w.state.HasStep(name)
}

// CurrentSchema returns the stored schema as indented JSON, or "" when
// nothing has been generated.
func (w *Workflow) CurrentSchema() string {
	doc := w.state.Schema()
	if doc == nil {
		return ""
	}
	return doc.Indent()
}

// Reset forgets the stored schema.
func (w *Workflow) Reset() {
	w.state.Reset()
}

// State returns the state object backing the workflow.
func (w *Workflow) State() *State {
	return w.state
}

// Model returns the model requests are sent to.
func (w *Workflow) Model() string {
	return w.composer.Model()
}

func (w *Workflow) run(ctx context.Context, text string, refine bool) *Result {
	id := uuid.NewString()
	action := ActionGenerate
	if refine {
		action = ActionRefine
	}
	log := w.logger.With("request_id", id, "action", action)

	if strings.TrimSpace(text) == "" {
		return errorResult(id, schemagen.ErrorMissingPrompt, MissingPromptMessage, "", schemagen.ErrMissingPrompt)
	}

	var current *document.Document
	if refine {
		current = w.state.Schema()
	}
	req := w.composer.Compose(text, refine, current)
	log.Debug("sending completion request",
		"model", req.Model,
		"refining", current != nil,
		"system", req.System(),
		"prompt", req.Prompt(),
	)

	resp, err := w.completer.Complete(ctx, req)
	if err != nil {
		res := w.failure(id, err)
		log.Warn("completion failed", "kind", res.ErrorKind, "error", err)
		return res
	}
	log.Debug("model response", "content", resp.Content, "finish_reason", resp.FinishReason)

	doc, err := document.ParseString(resp.Content)
	if err != nil {
		log.Warn("model returned invalid JSON", "error", err)
		return errorResult(id, schemagen.ErrorInvalidJSON, InvalidJSONMessage, resp.Content, err)
	}
	if err := w.validator.Validate(doc); err != nil {
		log.Warn("model returned invalid schema", "error", err)
		return errorResult(id, schemagen.ErrorInvalidSchema, InvalidSchemaMessage+": "+err.Error(), resp.Content, err)
	}

	steps := w.state.Replace(doc)
	schema := doc.Indent()

	if refine {
		if missing := integration.Missing(integration.Mentioned(text), steps); len(missing) > 0 {
			log.Info("mentioned integration steps missing", "missing", missing)
			return warningResult(id, schema, missing, steps)
		}
	}

	if missing := document.MissingFields(doc); len(missing) > 0 {
		log.Info("schema needs clarification", "missing_fields", missing)
		return clarificationResult(id, schema, missing)
	}

	log.Info("schema stored", "integration_steps", len(steps))
	return successResult(id, schema, steps)
}

func (w *Workflow) failure(id string, err error) *Result {
	var apiErr *schemagen.APIError
	if errors.As(err, &apiErr) {
		return errorResult(id, schemagen.ErrorAPI, apiErr.Message, "", err)
	}

	msg := RequestFailedMessage
	var te *schemagen.TransportError
	if errors.As(err, &te) && te.Details != "" {
		msg += ": " + te.Details
	} else {
		msg += ": " + err.Error()
	}
	return errorResult(id, schemagen.ErrorTransport, msg, "", err)
}
