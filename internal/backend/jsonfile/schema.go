package jsonfile

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://task-tracker.local/schemas/tasks.json"

// taskFileSchema describes the shape of the task file. Field rules beyond
// shape (unique ids, non-empty text) are checked by service.Collection.Validate.
const taskFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "task", "status", "createdAt"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "task": {"type": "string"},
      "status": {"enum": ["todo", "in-progress", "done"]},
      "createdAt": {"type": "string"},
      "updatedAt": {"type": "string"}
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(taskFileSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// validateShape checks a decoded JSON document against taskFileSchema.
func validateShape(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return firstSchemaError(err)
	}
	return nil
}

// firstSchemaError reduces a schema validation tree to its first leaf.
func firstSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("at %s: %s", loc, ve.Message)
}
