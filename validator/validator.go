// Package validator checks that candidate documents are structurally valid
// JSON Schema (Draft-07) documents.
//
// The candidate is validated as data against the Draft-07 meta-schema; no $ref
// in the candidate is ever resolved or fetched.
package validator

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spetersoncode/schemagen/document"
)

// MetaSchemaURL identifies the meta-schema candidates are checked against.
const MetaSchemaURL = "http://json-schema.org/draft-07/schema"

//go:embed draft-07.json
var draft07 string

// Validator performs Draft-07 meta-schema validation. It is safe for concurrent use.
type Validator struct {
	meta *jsonschema.Schema
}

// New compiles the embedded Draft-07 meta-schema.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(MetaSchemaURL, strings.NewReader(draft07)); err != nil {
		return nil, fmt.Errorf("load meta-schema: %w", err)
	}
	meta, err := c.Compile(MetaSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile meta-schema: %w", err)
	}
	return &Validator{meta: meta}, nil
}

// MustNew is like New but panics if the embedded meta-schema cannot be compiled.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks candidate against the Draft-07 meta-schema.
//
// candidate may be a string or []byte (parsed as JSON first), a *document.Document,
// or an already decoded JSON value. A nil error means the candidate is a valid schema.
func (v *Validator) Validate(candidate any) error {
	value, err := decode(candidate)
	if err != nil {
		return &Error{Message: "Invalid JSON: " + err.Error(), InvalidJSON: true, Cause: err}
	}
	if err := v.meta.Validate(value); err != nil {
		return &Error{Message: describe(err), Cause: err}
	}
	return nil
}

// Check mirrors Validate as an (ok, message) pair.
func (v *Validator) Check(candidate any) (bool, string) {
	if err := v.Validate(candidate); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Error describes why a candidate was rejected.
type Error struct {
	Message string
	// InvalidJSON is set when the candidate could not be parsed at all.
	InvalidJSON bool
	Cause       error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func decode(candidate any) (any, error) {
	switch c := candidate.(type) {
	case string:
		doc, err := document.ParseString(c)
		if err != nil {
			return nil, err
		}
		return doc.Value(), nil
	case []byte:
		doc, err := document.Parse(c)
		if err != nil {
			return nil, err
		}
		return doc.Value(), nil
	case *document.Document:
		if c == nil {
			return nil, nil
		}
		return c.Value(), nil
	default:
		return candidate, nil
	}
}

// describe reduces a validation error to its most specific cause.
func describe(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s (at %s, keyword %s)", leaf.Message, loc, leaf.KeywordLocation)
}
