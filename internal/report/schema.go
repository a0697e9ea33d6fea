package report

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// reportSchema is the contract the emitted document must satisfy: a
// non-empty week label and, per park, exactly seven complete day
// records with canonical labels and non-negative figures.
const reportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["weekOf", "parks"],
  "properties": {
    "weekOf": {"type": "string", "minLength": 1},
    "parks": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["days"],
        "properties": {
          "days": {
            "type": "array",
            "minItems": 7,
            "maxItems": 7,
            "items": {
              "type": "object",
              "required": ["dow", "hours", "cost", "revenue", "pct"],
              "properties": {
                "dow": {"enum": ["Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"]},
                "hours": {"type": "number", "minimum": 0},
                "cost": {"type": "number", "minimum": 0},
                "revenue": {"type": "number", "minimum": 0},
                "pct": {"type": "number"}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("report.schema.json", reportSchema)

// Validate checks an encoded report document against the schema.
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode report document: %w", err)
	}
	return compiledSchema.Validate(doc)
}
