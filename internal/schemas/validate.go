// Package schemas provides JSON Schema validation for the root shape of
// topic results.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/career-pulse/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed topics/*.schema.json
var topicSchemas embed.FS

var (
	compiled   = make(map[types.Topic]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// TopicSchema returns the raw JSON Schema for a topic's root shape
func TopicSchema(topic types.Topic) (string, error) {
	path := schemaPath(topic)
	data, err := topicSchemas.ReadFile(path)
	if err != nil {
		return "", &SchemaLoadError{Path: path, Message: "no schema for topic", Cause: err}
	}
	return string(data), nil
}

// ValidateTopic validates JSON content against the root shape of a topic.
// Compiled schemas are cached for the life of the process.
func ValidateTopic(topic types.Topic, jsonContent string) error {
	schema, err := loadTopicSchema(topic)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaPath(topic),
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func loadTopicSchema(topic types.Topic) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[topic]; ok {
		return schema, nil
	}

	raw, err := TopicSchema(topic)
	if err != nil {
		return nil, err
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Path: schemaPath(topic), Message: "invalid schema", Cause: err}
	}
	compiled[topic] = schema
	return schema, nil
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

func schemaPath(topic types.Topic) string {
	return "topics/" + string(topic) + ".schema.json"
}
