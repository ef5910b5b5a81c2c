package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed status.json
var statusSchema json.RawMessage
var statusSchemaLoader = gojsonschema.NewBytesLoader(statusSchema)

// Schema validates status payloads.
type Schema struct {
	schema *gojsonschema.Schema
}

// New compiles the embedded status schema.
func New() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(statusSchemaLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Validate validates the raw JSON document against the status schema.
func (s *Schema) Validate(data []byte) (*gojsonschema.Result, error) {
	return s.schema.Validate(gojsonschema.NewBytesLoader(data))
}
