package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemaCompiles(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	require.NotNil(t, v)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(Embedded(), &doc))
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
}

func TestValidate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	valid := map[string]interface{}{
		"hooks": []map[string]interface{}{
			{"command": "pytest", "stage": "pre-push"},
			{"command": "ctags", "background": true, "pass_git_files": true},
		},
	}
	assert.NoError(t, v.Validate(valid))

	invalid := map[string]interface{}{
		"hooks": []map[string]interface{}{
			{"name": "no command"},
			{"command": "x", "stage": "commit"},
		},
	}
	err = v.Validate(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "/hooks/0")
	assert.Contains(t, err.Error(), "/hooks/1/stage")
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	_, err := Compile([]byte("{not json"))
	assert.Error(t, err)
}

func TestEmbeddedReturnsCopy(t *testing.T) {
	data := Embedded()
	data[0] = 'x'
	assert.NotEqual(t, byte('x'), Embedded()[0])
}
