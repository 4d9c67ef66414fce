// Package prompt builds the completion requests sent to the model.
package prompt

import (
	"strings"

	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/model"
)

const (
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 2000
)

// DefaultInstructions is the system instruction for every request.
const DefaultInstructions = `You are a JSON Schema generator. Return ONLY a valid JSON Schema document without any explanations or surrounding text.
The schema must include "title", "type" and "properties". If the request mentions integration steps,
add them to the "integrationSteps" array.`

// refinementDirective introduces the current schema in refinement mode.
const refinementDirective = "\nCurrent schema: %s. Modify this schema according to the request instead of generating a new one from scratch."

// Composer builds completion requests. A zero Composer is not usable; use New.
type Composer struct {
	model        string
	temperature  float64
	maxTokens    int
	instructions string
}

// Option configures a Composer.
type Option func(*Composer)

// WithModel sets the model identifier placed in every request.
func WithModel(id string) Option {
	return func(c *Composer) {
		if id != "" {
			c.model = id
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Composer) {
		c.temperature = t
	}
}

// WithMaxTokens sets the completion token ceiling.
func WithMaxTokens(n int) Option {
	return func(c *Composer) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithInstructions replaces the base system instruction.
func WithInstructions(s string) Option {
	return func(c *Composer) {
		if strings.TrimSpace(s) != "" {
			c.instructions = s
		}
	}
}

// New creates a Composer with the default model, temperature, token ceiling and instructions.
func New(opts ...Option) *Composer {
	c := &Composer{
		model:        model.Default.ID(),
		temperature:  DefaultTemperature,
		maxTokens:    DefaultMaxTokens,
		instructions: DefaultInstructions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier used in composed requests.
func (c *Composer) Model() string {
	return c.model
}

// SystemInstructions returns the system message for a request.
// In refinement mode with a current schema, the compact schema and a directive to
// modify it are appended. Otherwise the base instructions are returned unchanged.
func (c *Composer) SystemInstructions(isRefinement bool, current *document.Document) string {
	if !isRefinement || current == nil {
		return c.instructions
	}
	return c.instructions + strings.Replace(refinementDirective, "%s", current.Compact(), 1)
}

// Compose builds the request for prompt.
func (c *Composer) Compose(prompt string, isRefinement bool, current *document.Document) *schemagen.Request {
	format := schemagen.ResponseFormatJSONObject
	return &schemagen.Request{
		Model: c.model,
		Messages: []schemagen.Message{
			schemagen.SystemMessage(c.SystemInstructions(isRefinement, current)),
			schemagen.UserMessage(prompt),
		},
		Temperature:    c.temperature,
		MaxTokens:      c.maxTokens,
		ResponseFormat: &format,
	}
}
