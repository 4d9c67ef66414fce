package integration

import (
	"testing"

	"github.com/spetersoncode/schemagen/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *document.Document {
	t.Helper()
	doc, err := document.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestExtract(t *testing.T) {
	t.Run("returns steps in order", func(t *testing.T) {
		doc := mustParse(t, `{"title":"T","integrationSteps":["Validate","Transform","Deploy"]}`)
		assert.Equal(t, []string{"Validate", "Transform", "Deploy"}, Extract(doc))
	})

	t.Run("missing key yields empty", func(t *testing.T) {
		doc := mustParse(t, `{"title":"T","type":"object"}`)
		steps := Extract(doc)
		assert.NotNil(t, steps)
		assert.Empty(t, steps)
	})

	t.Run("repeated extraction without key stays empty", func(t *testing.T) {
		doc := mustParse(t, `{"properties":{}}`)
		assert.Empty(t, Extract(doc))
		assert.Empty(t, Extract(doc))
	})

	t.Run("non-array value yields empty", func(t *testing.T) {
		doc := mustParse(t, `{"integrationSteps":"Deploy"}`)
		assert.Empty(t, Extract(doc))
	})

	t.Run("non-string elements carried as JSON text", func(t *testing.T) {
		doc := mustParse(t, `{"integrationSteps":["Deploy",2,{"name":"x"}]}`)
		assert.Equal(t, []string{"Deploy", "2", `{"name":"x"}`}, Extract(doc))
	})

	t.Run("keeps duplicates verbatim", func(t *testing.T) {
		doc := mustParse(t, `{"integrationSteps":["A","A"]}`)
		assert.Equal(t, []string{"A", "A"}, Extract(doc))
	})

	t.Run("nil document", func(t *testing.T) {
		assert.Empty(t, Extract(nil))
	})
}

func TestExtractString(t *testing.T) {
	assert.Equal(t, []string{"Sync"}, ExtractString(`{"integrationSteps":["Sync"]}`))
	assert.Empty(t, ExtractString("not json"))
	assert.NotNil(t, ExtractString("not json"))
}

func TestContains(t *testing.T) {
	steps := []string{"Validate", "Deploy"}
	assert.True(t, Contains(steps, "Deploy"))
	assert.False(t, Contains(steps, "deploy"))
	assert.False(t, Contains(nil, "Deploy"))
}

func TestMissing(t *testing.T) {
	assert.Equal(t, []string{"Deploy", "Notify"}, Missing([]string{"Deploy", "Validate", "Notify"}, []string{"Validate"}))
	assert.Nil(t, Missing([]string{"Validate"}, []string{"Validate"}))
	assert.Nil(t, Missing(nil, []string{"Validate"}))
}
