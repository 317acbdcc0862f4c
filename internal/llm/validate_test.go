package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonHintSchema = &Schema{
	Name: "validate-lesson-hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{"type": "string", "minLength": 1},
			"level": map[string]any{"type": "string", "enum": []string{"Beginner", "Intermediate", "Advanced"}},
			"steps": map[string]any{"type": "integer", "minimum": 1},
			"links": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": map[string]any{"lesson": map[string]any{"type": "string"}},
					"required":   []string{"lesson"},
				},
			},
		},
		"required": []string{"reply", "steps"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", `{"reply":"Start with returns.","level":"Beginner","steps":2,"links":[{"lesson":"pandas-basics"}]}`, true},
		{"optional fields omitted", `{"reply":"Start with returns.","steps":1}`, true},
		{"missing required", `{"reply":"Start with returns."}`, false},
		{"wrong type", `{"reply":"Start with returns.","steps":"two"}`, false},
		{"outside enum", `{"reply":"x","steps":1,"level":"Expert"}`, false},
		{"below minimum", `{"reply":"x","steps":0}`, false},
		{"nested item invalid", `{"reply":"x","steps":1,"links":[{"title":"no lesson"}]}`, false},
		{"not JSON", `{reply: x}`, false},
		{"empty", ``, false},
		{"trailing data", `{"reply":"x","steps":1} {}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(lessonHintSchema, json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestValidateResponse_BadDefinition(t *testing.T) {
	bad := &Schema{Name: "validate-bad-definition", Definition: map[string]any{"type": 42}}
	err := validateResponse(bad, json.RawMessage(`{}`))

	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.ErrorContains(t, err, "compile schema")
}

func TestCompiledSchemaIsCached(t *testing.T) {
	first, err := compiled(lessonHintSchema)
	require.NoError(t, err)
	second, err := compiled(lessonHintSchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
