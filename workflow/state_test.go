package workflow

import (
	"sync"
	"testing"

	"github.com/spetersoncode/schemagen/document"
	"github.com/spetersoncode/schemagen/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		s := NewState()
		schema, steps := s.Snapshot()
		assert.Nil(t, schema)
		assert.Empty(t, steps)
		assert.True(t, s.Empty())
	})

	t.Run("replace sets both", func(t *testing.T) {
		s := NewState()
		doc, err := document.ParseString(deploySchema)
		require.NoError(t, err)

		steps := s.Replace(doc)
		assert.Equal(t, []string{"Build", "Test"}, steps)
		assert.Same(t, doc, s.Schema())
		assert.True(t, s.HasStep("Test"))
	})

	t.Run("steps are copies", func(t *testing.T) {
		s := NewState()
		doc, _ := document.ParseString(deploySchema)
		s.Replace(doc)

		steps := s.Steps()
		steps[0] = "changed"
		assert.Equal(t, "Build", s.Steps()[0])
	})

	t.Run("reset", func(t *testing.T) {
		s := NewState()
		doc, _ := document.ParseString(deploySchema)
		s.Replace(doc)
		s.Reset()
		assert.True(t, s.Empty())
		assert.Empty(t, s.Steps())
	})
}

func TestStateSnapshotConsistency(t *testing.T) {
	s := NewState()
	a, _ := document.ParseString(`{"title":"A","type":"object","properties":{},"integrationSteps":["a1","a2"]}`)
	b, _ := document.ParseString(`{"title":"B","type":"object","properties":{},"integrationSteps":["b1"]}`)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(doc *document.Document) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Replace(doc)
			}
		}([]*document.Document{a, b}[i%2])
	}

	for i := 0; i < 500; i++ {
		schema, steps := s.Snapshot()
		if schema == nil {
			continue
		}
		assert.Equal(t, integration.Extract(schema), steps)
	}
	wg.Wait()
}
