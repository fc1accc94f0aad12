package cpx

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema generates the JSON Schema for the posture document by reflecting
// over the entity types (Draft 2020-12). Hosts can use it to validate
// documents emitted by other OpenCPX implementations.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Posture{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posture schema: %w", err)
	}
	return data, nil
}
