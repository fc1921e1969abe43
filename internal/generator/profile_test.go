package generator

import (
	"strings"
	"testing"

	"github.com/jonathan/readme-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Deterministic(t *testing.T) {
	state := types.ProfileState{
		Name:           "Ada Lovelace",
		GitHub:         "https://github.com/ada",
		SelectedSkills: []string{"Go", "React"},
	}

	first := Profile(state)
	second := Profile(state)

	assert.Equal(t, first, second)
}

func TestProfile_EmptyState(t *testing.T) {
	doc := Profile(types.ProfileState{})

	assert.True(t, strings.HasPrefix(doc, "# <span style=\"font-size: 2.5em; font-weight: bold;\">Hi there, I'm [Your Name]</span> 👋\n"))
	assert.Contains(t, doc, "⭐️ *From [Your Name](#)*")
	assert.Contains(t, doc, "## 🌟 Crafted with ❤️")

	assert.NotContains(t, doc, "Connect with me")
	assert.NotContains(t, doc, "🛠️ Skills")
	assert.NotContains(t, doc, "📊 GitHub Stats")

	assert.True(t, strings.HasSuffix(doc, "\n"))
	assert.False(t, strings.HasSuffix(doc, "\n\n"), "exactly one trailing newline")
}

func TestProfile_BasicFields(t *testing.T) {
	state := types.ProfileState{
		Name:         "Ada Lovelace",
		Bio:          "First programmer",
		ProfileImage: "https://example.com/ada.png",
		Learning:     "analytical engines",
		ResumeLink:   "https://example.com/resume.pdf",
	}

	doc := Profile(state)

	assert.Contains(t, doc, "Hi there, I'm Ada Lovelace")
	assert.Contains(t, doc, "![Profile Image](https://example.com/ada.png)\n\n")
	assert.Contains(t, doc, "> First programmer\n\n")
	assert.Contains(t, doc, "🌱 I'm currently learning</span>\n\nanalytical engines\n\n")
	assert.Contains(t, doc, "[View Resume](https://example.com/resume.pdf)")
}

func TestProfile_SocialBadgesAndStats(t *testing.T) {
	state := types.ProfileState{
		Name:     "Ada Lovelace",
		GitHub:   "https://github.com/ada",
		LinkedIn: "https://linkedin.com/in/ada",
	}

	doc := Profile(state)

	assert.Contains(t, doc,
		"[![GitHub](https://img.shields.io/badge/GitHub-100000?style=for-the-badge&logo=github&logoColor=white)](https://github.com/ada)")
	assert.Contains(t, doc,
		"[![LinkedIn](https://img.shields.io/badge/LinkedIn-0077B5?style=for-the-badge&logo=linkedin&logoColor=white)](https://linkedin.com/in/ada)")

	// Username derived from the profile URL drives the stats widgets.
	assert.Contains(t, doc, "github-readme-stats.vercel.app/api?username=ada")
	assert.Contains(t, doc, "github-profile-trophy.vercel.app/?username=ada")

	assert.Contains(t, doc, "⭐️ *From [Ada Lovelace](https://github.com/ada)*")

	assert.Equal(t, 2, strings.Count(doc, "🌐 Connect with me"),
		"the social section appears at the top and again near the end")
}

func TestProfile_NoStatsWithoutGitHub(t *testing.T) {
	doc := Profile(types.ProfileState{Name: "Ada", LinkedIn: "https://linkedin.com/in/ada"})

	assert.NotContains(t, doc, "📊 GitHub Stats")
	assert.Contains(t, doc, "🌐 Connect with me")
}

func TestProfile_TrailingSlashGitHubSkipsStats(t *testing.T) {
	doc := Profile(types.ProfileState{GitHub: "https://github.com/ada/"})

	assert.NotContains(t, doc, "📊 GitHub Stats")
	assert.Contains(t, doc, "Connect with me", "the badge still renders from the raw value")
}

func TestProfile_SkillClassification(t *testing.T) {
	state := types.ProfileState{
		SelectedSkills: []string{"Go", "React", "Underwater Basket Weaving"},
	}

	doc := Profile(state)

	assert.Contains(t, doc, "### Programming Languages")
	assert.Contains(t, doc, "### Frontend Development")
	assert.Contains(t, doc, "devicons/devicon/icons/go/go-original.svg")
	assert.Contains(t, doc, "### Additional Skills")
	assert.Contains(t, doc, "<sub><b>Underwater Basket Weaving</b></sub>")

	custom := doc[strings.Index(doc, "### Additional Skills"):]
	assert.NotContains(t, custom, "<img", "custom skills render without icons")
}

func TestProfile_SkillGridRowBreaks(t *testing.T) {
	state := types.ProfileState{
		SelectedSkills: []string{"JavaScript", "TypeScript", "Python", "Java", "Go"},
	}

	doc := Profile(state)

	table := doc[strings.Index(doc, "### Programming Languages"):]
	table = table[:strings.Index(table, "</table>")]
	assert.Equal(t, 2, strings.Count(table, "<tr>"), "five skills fill two rows of four")
}

func TestProfile_FeaturedProjectsFirst(t *testing.T) {
	state := types.ProfileState{
		Projects: []types.Project{
			{ID: "1", Name: "Plain Project"},
			{ID: "2", Name: "Star Project", Featured: true},
		},
	}

	doc := Profile(state)

	featuredIdx := strings.Index(doc, "### ⭐ Featured Projects")
	otherIdx := strings.Index(doc, "### Other Projects")
	require.GreaterOrEqual(t, featuredIdx, 0)
	require.GreaterOrEqual(t, otherIdx, 0)
	assert.Less(t, featuredIdx, otherIdx)

	assert.Less(t, strings.Index(doc, "#### Star Project"), strings.Index(doc, "#### Plain Project"))
}

func TestProfile_NoOtherHeadingWithoutFeatured(t *testing.T) {
	state := types.ProfileState{
		Projects: []types.Project{{ID: "1", Name: "Only Project"}},
	}

	doc := Profile(state)

	assert.Contains(t, doc, "#### Only Project")
	assert.NotContains(t, doc, "### Other Projects")
	assert.NotContains(t, doc, "### ⭐ Featured Projects")
}

func TestProfile_UnnamedProjectSkipped(t *testing.T) {
	state := types.ProfileState{
		Projects: []types.Project{
			{ID: "1", Description: "no name, no render"},
			{ID: "2", Name: "Named", TechStack: "Go, Postgres"},
		},
	}

	doc := Profile(state)

	assert.NotContains(t, doc, "no name, no render")
	assert.Contains(t, doc, "#### Named")
	assert.Contains(t, doc, "**Tech Stack:** `Go`, `Postgres`")
}

func TestProfile_ProjectLinksAndDates(t *testing.T) {
	state := types.ProfileState{
		Projects: []types.Project{{
			ID:        "1",
			Name:      "Tracker",
			URL:       "https://github.com/ada/tracker",
			DemoURL:   "https://tracker.example.com",
			StartDate: "2023-01",
			EndDate:   "2024-06",
		}},
	}

	doc := Profile(state)

	assert.Contains(t, doc, "[Repository](https://github.com/ada/tracker) | [Live Demo](https://tracker.example.com)")
	assert.Contains(t, doc, "*2023-01 - 2024-06*")
}

func TestProfile_CodingProfilesAndPlatformStats(t *testing.T) {
	state := types.ProfileState{
		LeetCode:   "https://leetcode.com/ada",
		HackerRank: "https://hackerrank.com/ada",
	}

	doc := Profile(state)

	assert.Contains(t, doc, "🏆 Coding Profiles")
	assert.Contains(t, doc, "- [LeetCode](https://leetcode.com/ada)")
	assert.Contains(t, doc, "- [HackerRank](https://hackerrank.com/ada)")

	assert.Contains(t, doc, "## 📊 Coding Platform Stats")
	assert.Contains(t, doc, "leetcard.jacoblin.cool/ada")
	assert.NotContains(t, doc, "codeforces-readme-stats", "only populated platforms get stat cards")
}

func TestProfile_CustomSections(t *testing.T) {
	state := types.ProfileState{
		CustomSections: []types.CustomSection{
			{ID: "1", Heading: "Talks", Description: "GopherCon 2025"},
			{ID: "2", Heading: "Incomplete"},
		},
	}

	doc := Profile(state)

	assert.Contains(t, doc, ">Talks</span>\n\nGopherCon 2025\n\n")
	assert.NotContains(t, doc, "Incomplete", "sections missing a field are skipped")
}

func TestProfile_CustomPlatformsNotRendered(t *testing.T) {
	state := types.ProfileState{
		CustomPlatforms: []types.CustomPlatform{
			{ID: "1", Name: "Exercism", URL: "https://exercism.org/u/ada"},
		},
	}

	doc := Profile(state)

	assert.NotContains(t, doc, "Exercism")
}
