// Package document holds JSON Schema documents produced by the model.
//
// A [Document] keeps the bytes exactly as the model produced them next to the
// decoded value, so serialized output preserves the model's key order and any
// non-ASCII text verbatim.
package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// RequiredFields are the top-level keys every generated schema is expected to carry, in order.
var RequiredFields = []string{"title", "type", "properties"}

// Document is a parsed JSON value together with its source text.
type Document struct {
	raw   []byte
	value any
}

// Parse decodes data as a single JSON value.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, err
	}
	raw := make([]byte, len(trimmed))
	copy(raw, trimmed)
	return &Document{raw: raw, value: v}, nil
}

// ParseString decodes s as a single JSON value.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// FromValue builds a document from an already decoded value.
func FromValue(v any) (*Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return Parse(data)
}

// Value returns the decoded JSON value.
func (d *Document) Value() any {
	return d.value
}

// Object returns the document as a JSON object, if it is one.
func (d *Document) Object() (map[string]any, bool) {
	obj, ok := d.value.(map[string]any)
	return obj, ok
}

// Get returns the value stored under a top-level key.
func (d *Document) Get(key string) (any, bool) {
	obj, ok := d.Object()
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// Has reports whether the document is an object with the given top-level key.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Raw returns a copy of the source bytes.
func (d *Document) Raw() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// Compact returns the document on a single line.
func (d *Document) Compact() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, d.raw); err != nil {
		return string(d.raw)
	}
	return buf.String()
}

// Indent returns the document indented with two spaces.
func (d *Document) Indent() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.raw, "", "  "); err != nil {
		return string(d.raw)
	}
	return buf.String()
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return d.Compact()
}

// Equal reports whether two documents have the same compact serialization.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Compact() == other.Compact()
}

// MarshalJSON embeds the document as its source JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	return []byte(d.Compact()), nil
}

// MissingFields returns the entries of RequiredFields absent from doc.
// A non-object document is missing all of them.
func MissingFields(doc *Document) []string {
	var missing []string
	for _, field := range RequiredFields {
		if doc == nil || !doc.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}
