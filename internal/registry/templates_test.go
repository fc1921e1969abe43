package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileTemplateByID(t *testing.T) {
	tmpl := ProfileTemplateByID("developer")
	assert.Equal(t, "developer", tmpl.ID)
	assert.Equal(t, "Developer", tmpl.Name)
}

func TestProfileTemplateByID_UnknownFallsBack(t *testing.T) {
	tmpl := ProfileTemplateByID("no-such-template")
	assert.Equal(t, ProfileTemplates[0].ID, tmpl.ID)

	tmpl = ProfileTemplateByID("")
	assert.Equal(t, ProfileTemplates[0].ID, tmpl.ID)
}

func TestProjectTemplateByID(t *testing.T) {
	tmpl := ProjectTemplateByID("portfolio")
	assert.Equal(t, "portfolio", tmpl.ID)

	tmpl = ProjectTemplateByID("bogus")
	assert.Equal(t, ProjectTemplates[0].ID, tmpl.ID)
}

func TestTemplateCatalogs_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range ProfileTemplates {
		require.NotEmpty(t, tmpl.ID)
		assert.False(t, seen[tmpl.ID], "profile template id %q duplicated", tmpl.ID)
		seen[tmpl.ID] = true
	}

	seen = map[string]bool{}
	for _, tmpl := range ProjectTemplates {
		require.NotEmpty(t, tmpl.ID)
		assert.False(t, seen[tmpl.ID], "project template id %q duplicated", tmpl.ID)
		seen[tmpl.ID] = true
	}
}
