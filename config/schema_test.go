package config

import (
	"encoding/json"
	"testing"

	"github.com/mindriot101/hookman/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Contains(t, doc["required"], "hooks")

	props := doc["properties"].(map[string]interface{})
	hooks := props["hooks"].(map[string]interface{})
	items := hooks["items"].(map[string]interface{})
	assert.Equal(t, []interface{}{"command"}, items["required"])

	hookProps := items["properties"].(map[string]interface{})
	stage := hookProps["stage"].(map[string]interface{})
	assert.Equal(t, []interface{}{"pre-commit", "pre-push", "post-commit"}, stage["enum"])
	assert.Contains(t, hookProps, "pass_git_files")
}

func TestGeneratedSchemaMatchesEmbedded(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	generated, err := schema.Compile(data)
	require.NoError(t, err)
	embedded, err := schema.NewValidator()
	require.NoError(t, err)

	documents := []struct {
		name  string
		doc   map[string]interface{}
		valid bool
	}{
		{"minimal", map[string]interface{}{"hooks": []interface{}{}}, true},
		{"full hook", map[string]interface{}{"hooks": []interface{}{map[string]interface{}{
			"name": "x", "command": "y", "stage": "pre-push", "background": true, "pass_git_files": false,
		}}}, true},
		{"no hooks", map[string]interface{}{}, false},
		{"no command", map[string]interface{}{"hooks": []interface{}{map[string]interface{}{"name": "x"}}}, false},
		{"bad stage", map[string]interface{}{"hooks": []interface{}{map[string]interface{}{"command": "y", "stage": "x"}}}, false},
		{"extra key", map[string]interface{}{"hooks": []interface{}{map[string]interface{}{"command": "y", "z": 1}}}, false},
	}

	for _, tt := range documents {
		t.Run(tt.name, func(t *testing.T) {
			genErr := generated.Validate(tt.doc)
			embErr := embedded.Validate(tt.doc)
			assert.Equal(t, tt.valid, genErr == nil, "generated: %v", genErr)
			assert.Equal(t, tt.valid, embErr == nil, "embedded: %v", embErr)
		})
	}
}
