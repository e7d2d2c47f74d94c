package recording

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded .wwrec schema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource("wwrec.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("wwrec.schema.json")
	})
	return schema, schemaErr
}

// Violation is a single schema violation found in a document.
type Violation struct {
	// Path locates the offending value in dot notation; empty for the root.
	Path string

	// Message describes what the value fails to satisfy.
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidateDocument checks raw JSON against the .wwrec format schema.
// It returns the violations found, or an error when the data is not JSON
// at all or the schema cannot be compiled. A nil, nil return means the
// document conforms.
func ValidateDocument(data []byte) ([]Violation, error) {
	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	err = sch.Validate(value)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		var out []Violation
		collectViolations(ve, &out)
		return out, nil
	}
	return nil, err
}

// ValidateFile checks a .wwrec file against the format schema.
func ValidateFile(path string) ([]Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read recording file: %w", err)
	}
	return ValidateDocument(data)
}

// collectViolations walks the error tree, keeping leaf causes which carry
// the actionable messages.
func collectViolations(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, Violation{
			Path:    fieldFromPointer(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, out)
	}
}

// fieldFromPointer converts a JSON Pointer path to dot notation.
func fieldFromPointer(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}
