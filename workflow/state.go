package workflow

import (
	"slices"
	"sync"

	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/integration"
)

// State holds the active schema and the integration steps extracted from it.
// It is safe for concurrent use. The two values only change together, so a
// reader never sees steps that belong to a different schema.
type State struct {
	mu     sync.RWMutex
	schema *document.Document
	steps  []string
}

// NewState creates an empty state.
func NewState() *State {
	return &State{steps: []string{}}
}

// Snapshot returns the schema and a copy of its steps, read together.
// The schema is nil when nothing has been generated yet.
func (s *State) Snapshot() (*document.Document, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema, slices.Clone(s.steps)
}

// Schema returns the active schema, or nil.
func (s *State) Schema() *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema
}

// Steps returns a copy of the current integration steps.
func (s *State) Steps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.steps)
}

// HasStep reports whether name is one of the current integration steps.
func (s *State) HasStep(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return integration.Contains(s.steps, name)
}

// Empty reports whether no schema is stored.
func (s *State) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema == nil
}

// Replace stores doc as the active schema together with the steps
// extracted from it, and returns a copy of those steps.
func (s *State) Replace(doc *document.Document) []string {
	steps := integration.Extract(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = doc
	s.steps = steps
	return slices.Clone(steps)
}

// Reset forgets the active schema.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = nil
	s.steps = []string{}
}
