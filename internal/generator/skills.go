package generator

import (
	"fmt"

	"github.com/jonathan/readme-generator/internal/registry"
	"github.com/jonathan/readme-generator/internal/types"
)

const skillGridColumns = 4

// skillsSection renders the selected skills as per-category icon tables.
// Predefined skills are grouped under their catalog category in first-seen
// order; unknown names go to a trailing "Additional Skills" table without
// icons. Returns "" when no skills are selected.
func skillsSection(state types.ProfileState) string {
	if len(state.SelectedSkills) == 0 {
		return ""
	}

	var order []string
	grouped := map[string][]registry.Skill{}
	var custom []string
	for _, name := range state.SelectedSkills {
		skill, ok := registry.FindSkill(name)
		if !ok {
			custom = append(custom, name)
			continue
		}
		if _, seen := grouped[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}

	out := styledHeading("🛠️ Skills")
	for _, category := range order {
		out += fmt.Sprintf("### %s\n\n", category)
		out += skillTable(grouped[category], true)
	}
	if len(custom) > 0 {
		out += "### Additional Skills\n\n"
		var entries []registry.Skill
		for _, name := range custom {
			entries = append(entries, registry.Skill{Name: name})
		}
		out += skillTable(entries, false)
	}
	return out
}

// skillTable renders one HTML table of skill cells, four per row. withIcons
// controls whether a devicon image is embedded above the name.
func skillTable(skills []registry.Skill, withIcons bool) string {
	out := "<table>\n  <tr>\n"
	for i, skill := range skills {
		out += "    <td align=\"center\">\n"
		if withIcons {
			out += fmt.Sprintf("      <img src=\"https://cdn.jsdelivr.net/gh/devicons/devicon/icons/%s/%s-original.svg\" alt=\"%s\" width=\"40\" height=\"40\"/>\n",
				skill.Icon, skill.Icon, skill.Name)
			out += "      <br/>\n"
		}
		out += fmt.Sprintf("      <sub><b>%s</b></sub>\n", skill.Name)
		out += "    </td>\n"
		if (i+1)%skillGridColumns == 0 && i < len(skills)-1 {
			out += "  </tr>\n  <tr>\n"
		}
	}
	out += "  </tr>\n</table>\n\n"
	return out
}
