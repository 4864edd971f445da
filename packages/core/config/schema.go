package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON Schema every config document must satisfy. Strict about
// unknown keys so a typo'd option fails loudly instead of being ignored.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "method": {
      "type": "string",
      "minLength": 1
    },
    "includeTests": {
      "type": "boolean"
    },
    "exclude": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "verbose": {
      "type": "boolean"
    },
    "noColor": {
      "type": "boolean"
    },
    "watch": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "debounceMs": {
          "type": "integer",
          "minimum": 0
        }
      }
    }
  }
}`

// ValidateSchema checks a JSON config document against Schema.
func ValidateSchema(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(Schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var errors []string
	for _, desc := range result.Errors() {
		errors = append(errors, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(errors, "; "))
}
