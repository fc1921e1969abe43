package generator

import (
	"fmt"

	"github.com/jonathan/readme-generator/internal/types"
)

// Profile renders the complete profile README for the given form state. The
// output depends only on the state: the same snapshot always yields the same
// document.
func Profile(state types.ProfileState) string {
	name := state.Name
	if name == "" {
		name = "[Your Name]"
	}
	readme := fmt.Sprintf("# <span style=\"font-size: 2.5em; font-weight: bold;\">Hi there, I'm %s</span> 👋\n\n", name)

	if state.ProfileImage != "" {
		readme += fmt.Sprintf("![Profile Image](%s)\n\n", state.ProfileImage)
	}
	if state.Bio != "" {
		readme += fmt.Sprintf("> %s\n\n", state.Bio)
	}
	if state.Collaborate != "" {
		readme += styledHeading("👯 I'm looking to collaborate on") + state.Collaborate + "\n\n"
	}
	if state.HelpWith != "" {
		readme += styledHeading("🤝 I'm looking for help with") + state.HelpWith + "\n\n"
	}
	if state.Learning != "" {
		readme += styledHeading("🌱 I'm currently learning") + state.Learning + "\n\n"
	}
	if state.HowToReach != "" {
		readme += styledHeading("📫 How to reach me") + state.HowToReach + "\n\n"
	}
	if state.ResumeLink != "" {
		readme += styledHeading("📄 Resume") + fmt.Sprintf("[View Resume](%s)\n\n", state.ResumeLink)
	}
	for _, section := range state.CustomSections {
		if section.Heading != "" && section.Description != "" {
			readme += styledHeading(section.Heading) + section.Description + "\n\n"
		}
	}

	readme += socialSection(state)
	readme += skillsSection(state)
	readme += projectsSection(state)

	if block := githubStatsBlock(state); block != "" {
		readme += block + "\n"
	}
	if block := platformStatsBlock(state); block != "" {
		readme += block + "\n"
	}
	readme += codingProfilesSection(state)

	// The social section repeats near the end so long READMEs keep the links
	// in view.
	readme += socialSection(state)

	github := state.GitHub
	if github == "" {
		github = "#"
	}
	attribution := state.Name
	if attribution == "" {
		attribution = "Your Name"
	}
	readme += fmt.Sprintf("⭐️ *From [%s](%s)*", attribution, github)
	readme += profileFooter

	return normalize(readme)
}

// projectsSection renders the profile's project entries, featured first.
// Entries without a name are skipped entirely. Returns "" when no projects
// exist.
func projectsSection(state types.ProfileState) string {
	if len(state.Projects) == 0 {
		return ""
	}
	var featured, regular []types.Project
	for _, p := range state.Projects {
		if p.Featured {
			featured = append(featured, p)
		} else {
			regular = append(regular, p)
		}
	}

	out := styledHeading("🚀 Projects")
	if len(featured) > 0 {
		out += "### ⭐ Featured Projects\n\n"
		for _, p := range featured {
			if p.Name == "" {
				continue
			}
			out += projectEntry(p)
			out += "---\n\n"
		}
	}
	if len(regular) > 0 {
		if len(featured) > 0 {
			out += "### Other Projects\n\n"
		}
		for _, p := range regular {
			if p.Name == "" {
				continue
			}
			out += projectEntry(p)
		}
	}
	return out + "\n"
}

// projectEntry renders one project's body: description, tech stack, media,
// links and date range. The caller has already checked the name.
func projectEntry(p types.Project) string {
	out := fmt.Sprintf("#### %s\n\n", p.Name)
	if p.Description != "" {
		out += p.Description + "\n\n"
	}
	if line := techStackLine(p.TechStack); line != "" {
		out += line + "\n\n"
	}
	if p.ImageURL != "" {
		out += fmt.Sprintf("![%s](%s)\n\n", p.Name, p.ImageURL)
	}
	if p.VideoURL != "" {
		out += projectEntryVideo(p.Name, p.VideoURL)
	}

	var links []string
	if p.URL != "" {
		links = append(links, fmt.Sprintf("[Repository](%s)", p.URL))
	}
	if p.DemoURL != "" {
		links = append(links, fmt.Sprintf("[Live Demo](%s)", p.DemoURL))
	}
	if len(links) > 0 {
		out += joinLines(links, " | ") + "\n\n"
	}

	var dates []string
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d != "" {
			dates = append(dates, d)
		}
	}
	if len(dates) > 0 {
		out += fmt.Sprintf("*%s*\n\n", joinLines(dates, " - "))
	}
	return out
}

const profileFooter = "\n\n---\n\n<div align=\"center\">\n\n## 🌟 Crafted with ❤️\n\n*This README was generated using **[README Generator](https://readme-g.vercel.app/)** - The ultimate tool for creating stunning GitHub profile READMEs!*\n\n### 💡 Want to create your own amazing README?\n\n[![Try README Generator](https://img.shields.io/badge/Try%20README%20Generator-FF6B6B?style=for-the-badge&logo=github&logoColor=white)](https://readme-g.vercel.app/)\n[![GitHub](https://img.shields.io/badge/Follow%20Creator-181717?style=for-the-badge&logo=github&logoColor=white)](https://github.com/avi-i05)\n\n---\n\n\n</div>"
