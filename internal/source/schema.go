package source

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// datasetSchema accepts a JSON array, or a container record whose "data"
// field is one. Individual records are not constrained here; malformed
// records survive normalization as placeholders.
const datasetSchema = `{
  "anyOf": [
    {"type": "array"},
    {
      "type": "object",
      "required": ["data"],
      "properties": {"data": {"type": "array"}}
    }
  ]
}`

const datasetSchemaURL = "schema://dataset.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func datasetValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(datasetSchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(datasetSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(datasetSchemaURL)
	})
	return compiled, compileErr
}

// Validate checks that raw is a usable dataset payload.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := datasetValidator()
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
