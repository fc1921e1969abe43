package generator

import (
	"strings"
	"testing"

	"github.com/jonathan/readme-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Deterministic(t *testing.T) {
	state := types.ProjectState{ProjectName: "Tracker", Description: "A CLI to-do manager"}

	assert.Equal(t, Project(state), Project(state))
}

func TestProject_EmptyState(t *testing.T) {
	doc := Project(types.ProjectState{})

	assert.True(t, strings.HasPrefix(doc, "<div align=\"center\">\n\n# 🚀 [Project Name] 🚀\n\n</div>\n"))
	assert.Contains(t, doc, "## 🤝 Contributing\n\nContributions are welcome!")
	assert.Contains(t, doc, "## 🌟 Support\n\nIf you found this project helpful, please give it a ⭐️!")
	assert.Contains(t, doc, "- [@yourusername](https://github.com/yourusername)")

	assert.NotContains(t, doc, "## ✨ Features")
	assert.NotContains(t, doc, "## 🔧 Installation")

	assert.True(t, strings.HasSuffix(doc, "\n"))
	assert.False(t, strings.HasSuffix(doc, "\n\n"))
}

func TestProject_ImageOnlyInImageMode(t *testing.T) {
	state := types.ProjectState{
		ProjectName: "Tracker",
		ImageURL:    "https://example.com/shot.png",
		MediaType:   types.MediaVideo,
	}

	doc := Project(state)
	assert.NotContains(t, doc, "📸 Screenshots", "an image URL is ignored in video mode")

	state.MediaType = types.MediaImage
	doc = Project(state)
	assert.Contains(t, doc, "## 📸 Screenshots\n\n![Tracker](https://example.com/shot.png)")
}

func TestProject_ScreenshotAltFallback(t *testing.T) {
	state := types.ProjectState{
		ImageURL:  "https://example.com/shot.png",
		MediaType: types.MediaImage,
	}

	doc := Project(state)
	assert.Contains(t, doc, "![Project Screenshot](https://example.com/shot.png)")
}

func TestProject_YouTubeEmbed(t *testing.T) {
	state := types.ProjectState{
		VideoURL:  "https://www.youtube.com/watch?v=abc123&t=10",
		MediaType: types.MediaVideo,
	}

	doc := Project(state)

	assert.Contains(t, doc, "## 🎥 Demo Video")
	assert.Contains(t, doc, "https://www.youtube.com/embed/abc123?autoplay=1&mute=1&loop=1&playlist=abc123")
	assert.Contains(t, doc, "[Watch on YouTube](https://www.youtube.com/watch?v=abc123&t=10)")
}

func TestProject_VimeoEmbed(t *testing.T) {
	state := types.ProjectState{
		VideoURL:  "https://vimeo.com/12345",
		MediaType: types.MediaVideo,
	}

	doc := Project(state)

	assert.Contains(t, doc, "https://player.vimeo.com/video/12345?autoplay=1")
	assert.Contains(t, doc, "[Watch on Vimeo](https://vimeo.com/12345)")
}

func TestProject_DirectVideoFile(t *testing.T) {
	state := types.ProjectState{
		VideoURL:  "https://example.com/demo.MP4",
		MediaType: types.MediaVideo,
	}

	doc := Project(state)

	assert.Contains(t, doc, `<source src="https://example.com/demo.MP4" type="video/mp4">`)
	assert.Contains(t, doc, "[Download Video](https://example.com/demo.MP4)")
}

func TestProject_GenericVideoLink(t *testing.T) {
	state := types.ProjectState{
		VideoURL:  "https://example.com/demo",
		MediaType: types.MediaVideo,
	}

	doc := Project(state)

	assert.Contains(t, doc, "[🎥 Watch Demo Video](https://example.com/demo)")
	assert.NotContains(t, doc, "<iframe")
}

func TestProject_Features(t *testing.T) {
	state := types.ProjectState{
		Features: []types.Feature{
			{ID: "1", Text: "  Fast startup  "},
			{ID: "2", Text: "   "},
			{ID: "3", Text: "Cross-platform"},
		},
	}

	doc := Project(state)

	assert.Contains(t, doc, "## ✨ Features\n\n⭐ Fast startup\n⭐ Cross-platform\n\n")
}

func TestProject_InstallationSteps(t *testing.T) {
	state := types.ProjectState{
		InstallationSteps: []types.InstallationStep{
			{
				ID:          "1",
				Title:       "Clone the repo",
				Description: "Grab the source.",
				Commands: []types.Command{
					{ID: "c1", Text: "git clone https://github.com/ada/tracker"},
					{ID: "c2", Text: "cd tracker"},
					{ID: "c3", Text: "   "},
				},
			},
			{ID: "2"},
		},
	}

	doc := Project(state)

	assert.Contains(t, doc, "### 1. Clone the repo\n\nGrab the source.\n\n")
	assert.Contains(t, doc, "```bash\ngit clone https://github.com/ada/tracker\n```\n\n")
	assert.Contains(t, doc, "```bash\ncd tracker\n```\n\n")
	assert.Equal(t, 2, strings.Count(doc, "```bash"), "blank commands get no fenced block")
	assert.Contains(t, doc, "### 2. Installation Step\n\n", "untitled steps keep their number")
}

func TestProject_UsageAndCustomSections(t *testing.T) {
	state := types.ProjectState{
		Usage: "Run `tracker add`",
		CustomSections: []types.ProjectSection{
			{ID: "1", Title: "FAQ", Content: "None yet", IsExpanded: false},
			{ID: "2", Title: "Empty"},
		},
	}

	doc := Project(state)

	assert.Contains(t, doc, "## 🚀 Usage\n\nRun `tracker add`\n\n")
	assert.Contains(t, doc, "## FAQ\n\nNone yet\n\n", "collapsed sections still render")
	assert.NotContains(t, doc, "## Empty")
}

func TestProject_Authors(t *testing.T) {
	state := types.ProjectState{
		Authors: []types.Author{
			{ID: "1", Name: "Grace Hopper", GitHubUsername: "ghopper"},
			{ID: "2", Name: "Ada Lovelace"},
			{ID: "3", Name: "  "},
		},
	}

	doc := Project(state)

	assert.Contains(t, doc, "- 👤 [Grace Hopper](https://github.com/ghopper)\n")
	assert.Contains(t, doc, "- 👤 [Ada Lovelace](https://github.com/adalovelace)\n",
		"missing username is derived from the lowercased name")
	assert.NotContains(t, doc, "- [@yourusername]")
}

func TestProject_AuthorPlaceholder(t *testing.T) {
	state := types.ProjectState{
		Authors: []types.Author{{ID: "1", Name: "   "}},
	}

	doc := Project(state)

	assert.Contains(t, doc, "- [@yourusername](https://github.com/yourusername)")
}

func TestProject_SectionOrder(t *testing.T) {
	state := types.ProjectState{
		ProjectName: "Tracker",
		Description: "A CLI to-do manager",
		Usage:       "tracker add",
		Features:    []types.Feature{{ID: "1", Text: "Fast"}},
	}

	doc := Project(state)

	descIdx := strings.Index(doc, "## 📋 Description")
	featIdx := strings.Index(doc, "## ✨ Features")
	usageIdx := strings.Index(doc, "## 🚀 Usage")
	contribIdx := strings.Index(doc, "## 🤝 Contributing")
	authorsIdx := strings.Index(doc, "## 👥 Authors")

	require.GreaterOrEqual(t, descIdx, 0)
	assert.Less(t, descIdx, featIdx)
	assert.Less(t, featIdx, usageIdx)
	assert.Less(t, usageIdx, contribIdx)
	assert.Less(t, contribIdx, authorsIdx)
}
