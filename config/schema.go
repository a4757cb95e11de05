package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the hookman configuration
// file. The embedded schema used for validation is produced from this output.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown keys are configuration mistakes.
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		DoNotReference:            true,
		// Property names follow the TOML file.
		FieldNameTag: "toml",
	}

	schema := r.Reflect(&Config{})
	schema.ID = ""
	schema.Title = "hookman configuration"
	schema.Description = "Hooks that hookman renders into git hook scripts."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
