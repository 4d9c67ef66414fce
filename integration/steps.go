// Package integration extracts and reconciles the integration steps embedded in
// generated schemas under the "integrationSteps" key.
package integration

import (
	json "github.com/goccy/go-json"

	"github.com/spetersoncode/schemagen/document"
)

// Key is the top-level schema key holding the integration steps.
const Key = "integrationSteps"

// Extract returns the integration steps of doc in order.
// It never fails: a missing key, a non-array value or a nil document yield an empty slice.
// String elements are returned as-is; any other element is carried as its compact JSON text.
func Extract(doc *document.Document) []string {
	steps := []string{}
	if doc == nil {
		return steps
	}
	v, ok := doc.Get(Key)
	if !ok {
		return steps
	}
	items, ok := v.([]any)
	if !ok {
		return steps
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			steps = append(steps, s)
			continue
		}
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		steps = append(steps, string(data))
	}
	return steps
}

// ExtractString parses s and extracts its integration steps.
// Unparsable input yields an empty slice.
func ExtractString(s string) []string {
	doc, err := document.ParseString(s)
	if err != nil {
		return []string{}
	}
	return Extract(doc)
}

// Contains reports whether name is one of steps. Matching is exact.
func Contains(steps []string, name string) bool {
	for _, s := range steps {
		if s == name {
			return true
		}
	}
	return false
}

// Missing returns the entries of mentioned that are not in available, preserving order.
func Missing(mentioned, available []string) []string {
	var missing []string
	for _, m := range mentioned {
		if !Contains(available, m) {
			missing = append(missing, m)
		}
	}
	return missing
}
