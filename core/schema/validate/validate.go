// Package validate checks artifact JSON against the embedded schemas.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var (
	compileOnce      sync.Once
	compileErr       error
	exportSchema     *jsonschema.Schema
	parametersSchema *jsonschema.Schema
)

// ValidateExportDocument checks a serialized export document against the
// design export schema.
func ValidateExportDocument(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validateJSON(exportSchema, data)
}

// ValidateParameterSet checks a serialized parameter set. Unknown fields are
// rejected so typos in input files surface instead of silently falling back
// to defaults.
func ValidateParameterSet(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validateJSON(parametersSchema, data)
}

func compileSchemas() error {
	compileOnce.Do(func() {
		exportSchema, compileErr = compileSchema("schemas/design_export.schema.json")
		if compileErr != nil {
			return
		}
		parametersSchema, compileErr = compileSchema("schemas/parameter_set.schema.json")
	})
	return compileErr
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return schema, nil
}

func validateJSON(schema *jsonschema.Schema, data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("input is not valid JSON")
	}
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("schema validation failed: %v", result.Errors)
}
