package squad

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const datasetSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "data"],
  "properties": {
    "version": { "type": "string" },
    "data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["paragraphs"],
        "properties": {
          "title": { "type": "string" },
          "paragraphs": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["context", "qas"],
              "properties": {
                "context": { "type": "string" },
                "qas": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["id", "question", "answers"],
                    "properties": {
                      "id": { "type": "string", "minLength": 1 },
                      "question": { "type": "string" },
                      "is_impossible": { "type": "boolean" },
                      "answers": { "$ref": "#/$defs/answers" },
                      "plausible_answers": { "$ref": "#/$defs/answers" }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "answers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": { "type": "string" },
          "answer_start": { "type": "integer" }
        }
      }
    }
  }
}`

const predictionsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": { "type": "string" }
}`

var (
	schemaOnce        sync.Once
	compiledDataset   *jsonschema.Schema
	compiledPredicted *jsonschema.Schema
	schemaErr         error
)

func compiledSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledDataset, schemaErr = jsonschema.CompileString("squad-dataset.schema.json", datasetSchema)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile dataset schema: %w", schemaErr)
			return
		}
		compiledPredicted, schemaErr = jsonschema.CompileString("squad-predictions.schema.json", predictionsSchema)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile predictions schema: %w", schemaErr)
		}
	})
	return compiledDataset, compiledPredicted, schemaErr
}
