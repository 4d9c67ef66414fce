package workflow

import (
	"log/slog"

	"github.com/spetersoncode/schemagen/prompt"
	"github.com/spetersoncode/schemagen/validator"
)

// Option is a functional option for workflow configuration.
type Option func(*Workflow)

// WithState injects the state object. Workflows sharing a State share the
// active schema.
func WithState(s *State) Option {
	return func(w *Workflow) {
		if s != nil {
			w.state = s
		}
	}
}

// WithComposer sets the prompt composer (model, temperature, max tokens).
func WithComposer(c *prompt.Composer) Option {
	return func(w *Workflow) {
		if c != nil {
			w.composer = c
		}
	}
}

// WithValidator sets the schema validator.
func WithValidator(v *validator.Validator) Option {
	return func(w *Workflow) {
		if v != nil {
			w.validator = v
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		if l != nil {
			w.logger = l
		}
	}
}
