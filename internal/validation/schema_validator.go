package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSchemaViolation wraps every document that does not match its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// SchemaValidator validates decoded documents against one compiled JSON schema
type SchemaValidator interface {
	// ValidateJSON validates raw JSON bytes
	ValidateJSON(data []byte) error
	// ValidateDocument validates an already decoded document, such as the
	// generic value a YAML decoder produces. It is normalized through JSON first.
	ValidateDocument(doc interface{}) error
}

type validator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schema under the resource name url
func NewSchemaValidator(url string, schema []byte) (SchemaValidator, error) {
	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &validator{schema: compiled}, nil
}

// MustSchemaValidator is NewSchemaValidator for embedded schemas known to compile
func MustSchemaValidator(url string, schema []byte) SchemaValidator {
	v, err := NewSchemaValidator(url, schema)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *validator) ValidateJSON(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *validator) ValidateDocument(doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return v.ValidateJSON(data)
}

// formatValidationError lists every failing location, one per line
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
	}
	return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
}

// collectErrors walks the cause tree, leaves carry the useful messages
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
