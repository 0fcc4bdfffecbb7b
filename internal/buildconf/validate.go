package buildconf

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var rootSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	if err := compiler.AddResource("schema.json", doc); err != nil {
		panic(err)
	}

	rootSchema, err = compiler.Compile("schema.json")
	if err != nil {
		panic(err)
	}
}

// Schema returns the JSON Schema every configuration document must satisfy.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// SchemaError lists the places where a document does not fit the schema.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return "config does not match the schema: " + strings.Join(e.Issues, "; ")
}

// ValidateDocument checks the shape of a decoded configuration document:
// unknown keys and values of the wrong type are reported with their location.
// A nil document is valid.
func ValidateDocument(doc map[string]any) error {
	if doc == nil {
		return nil
	}

	err := rootSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	return &SchemaError{Issues: leafIssues(verr, nil)}
}

func leafIssues(e *jsonschema.ValidationError, out []string) []string {
	if len(e.Causes) == 0 {
		return append(out, e.Error())
	}

	for _, cause := range e.Causes {
		out = leafIssues(cause, out)
	}

	return out
}
