package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/readme-generator/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"profile_state.schema.json",
	"project_state.schema.json",
}

func TestSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareSchemaShape(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "properties")
			assert.Equal(t, "object", schemaObj["type"])
		})
	}
}

func TestProfileStateSchema_AcceptsEmptySnapshot(t *testing.T) {
	schemaContent, err := os.ReadFile("profile_state.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{}`)
	assert.NoError(t, err, "an empty snapshot is a valid form state")
}

func TestProfileStateSchema_RejectsUnknownField(t *testing.T) {
	schemaContent, err := os.ReadFile("profile_state.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{"fullName": "Ada"}`)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestProjectStateSchema_RejectsBadMediaType(t *testing.T) {
	schemaContent, err := os.ReadFile("project_state.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{"mediaType": "gif"}`)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestProjectStateSchema_AcceptsFullSnapshot(t *testing.T) {
	schemaContent, err := os.ReadFile("project_state.schema.json")
	require.NoError(t, err)

	snapshot := `{
		"projectName": "Task Tracker",
		"description": "A CLI to-do manager",
		"usage": "Run tracker add <task>",
		"imageUrl": "",
		"videoUrl": "https://youtu.be/abc123",
		"mediaType": "video",
		"authorType": "group",
		"authors": [{"id": "a1", "name": "Ada Lovelace", "githubUsername": ""}],
		"features": [{"id": "f1", "text": "Fast"}],
		"installationSteps": [
			{"id": "s1", "title": "Clone", "description": "", "commands": [{"id": "c1", "text": "git clone"}]}
		],
		"customSections": [{"id": "x1", "title": "FAQ", "content": "None yet", "isExpanded": true}]
	}`
	assert.NoError(t, schemas.ValidateJSONString(string(schemaContent), snapshot))
}
