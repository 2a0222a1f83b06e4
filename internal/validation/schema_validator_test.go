package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v, err := NewSchemaValidator("person.schema.json", []byte(personSchema))
	require.NoError(t, err)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "below minimum", data: `{"name": "John", "age": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "unknown field", data: `{"name": "John", "nick": "J"}`, wantError: true, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"name": `, wantError: true, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateDocument(t *testing.T) {
	v, err := NewSchemaValidator("person.schema.json", []byte(personSchema))
	require.NoError(t, err)

	// YAML decoders hand back Go ints rather than JSON numbers
	assert.NoError(t, v.ValidateDocument(map[string]interface{}{"name": "Ada", "age": 36}))

	err = v.ValidateDocument(map[string]interface{}{"age": 36})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestNewSchemaValidator_Invalid(t *testing.T) {
	_, err := NewSchemaValidator("broken.schema.json", []byte(`{"type": `))
	assert.Error(t, err)

	_, err = NewSchemaValidator("bad-type.schema.json", []byte(`{"type": "banana"}`))
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustSchemaValidator("broken.schema.json", []byte(`{`))
	})
}
