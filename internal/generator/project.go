package generator

import (
	"fmt"
	"strings"

	"github.com/jonathan/readme-generator/internal/types"
)

// Project renders the complete project README for the given form state. Like
// Profile, it is a pure function of the snapshot and never fails.
func Project(state types.ProjectState) string {
	name := state.ProjectName
	if name == "" {
		name = "[Project Name]"
	}
	readme := fmt.Sprintf("<div align=\"center\">\n\n# 🚀 %s 🚀\n\n</div>\n\n", name)

	if state.Description != "" {
		readme += fmt.Sprintf("## 📋 Description\n\n%s\n\n", state.Description)
	}

	if state.ImageURL != "" && state.MediaType == types.MediaImage {
		alt := state.ProjectName
		if alt == "" {
			alt = "Project Screenshot"
		}
		readme += fmt.Sprintf("<div align=\"center\">\n\n## 📸 Screenshots\n\n![%s](%s)\n\n</div>\n\n", alt, state.ImageURL)
	}
	if state.VideoURL != "" && state.MediaType == types.MediaVideo {
		readme += demoVideoSection(state.VideoURL)
	}

	readme += featuresSection(state.Features)
	readme += installationSection(state.InstallationSteps)

	if state.Usage != "" {
		readme += fmt.Sprintf("## 🚀 Usage\n\n%s\n\n", state.Usage)
	}

	for _, section := range state.CustomSections {
		if section.Title != "" && section.Content != "" {
			readme += fmt.Sprintf("## %s\n\n%s\n\n", section.Title, section.Content)
		}
	}

	readme += "## 🤝 Contributing\n\nContributions are welcome! Please feel free to submit a Pull Request.\n\n"
	readme += "---\n\n"
	readme += "## 🌟 Support\n\nIf you found this project helpful, please give it a ⭐️!\n\n"
	readme += "---\n\n"
	readme += authorsSection(state.Authors)
	readme += "\n---\n\n"
	readme += projectFooter

	return normalize(readme)
}

// featuresSection renders the feature bullet list, skipping entries whose text
// is blank. Returns "" when nothing remains.
func featuresSection(features []types.Feature) string {
	var valid []string
	for _, f := range features {
		if strings.TrimSpace(f.Text) != "" {
			valid = append(valid, strings.TrimSpace(f.Text))
		}
	}
	if len(valid) == 0 {
		return ""
	}
	out := "## ✨ Features\n\n"
	for _, text := range valid {
		out += "⭐ " + text + "\n"
	}
	return out + "\n"
}

// installationSection renders the numbered installation steps with their
// fenced command blocks. Steps keep their position even when untitled; blank
// commands are skipped.
func installationSection(steps []types.InstallationStep) string {
	if len(steps) == 0 {
		return ""
	}
	out := "## 🔧 Installation\n\n"
	for i, step := range steps {
		title := step.Title
		if title == "" {
			title = "Installation Step"
		}
		out += fmt.Sprintf("### %d. %s\n\n", i+1, title)
		if step.Description != "" {
			out += step.Description + "\n\n"
		}
		for _, cmd := range step.Commands {
			if strings.TrimSpace(cmd.Text) == "" {
				continue
			}
			out += "```bash\n" + cmd.Text + "\n```\n\n"
		}
	}
	return out
}

// authorsSection renders the author list. Authors with a blank name are
// skipped; when none remain a placeholder author is emitted instead. An author
// without a GitHub username gets one derived from the lowercased name with
// whitespace removed.
func authorsSection(authors []types.Author) string {
	out := "## 👥 Authors\n\n"
	var valid []types.Author
	for _, a := range authors {
		if strings.TrimSpace(a.Name) != "" {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return out + "- [@yourusername](https://github.com/yourusername)"
	}
	for _, a := range valid {
		username := a.GitHubUsername
		if username == "" {
			username = strings.Join(strings.Fields(strings.ToLower(a.Name)), "")
		}
		out += fmt.Sprintf("- 👤 [%s](https://github.com/%s)\n", a.Name, username)
	}
	return out
}

const projectFooter = "<div align=\"center\">\n\n## 🌟 Crafted with ❤️\n\n*This README was generated using **[README Generator](https://readme-g.vercel.app/)** - The ultimate tool for creating stunning GitHub project READMEs!*\n\n### 💡 Want to create your own amazing README?\n\n[![Try README Generator](https://img.shields.io/badge/Try%20README%20Generator-FF6B6B?style=for-the-badge&logo=github&logoColor=white)](https://readme-g.vercel.app/)\n[![GitHub](https://img.shields.io/badge/Follow%20Creator-181717?style=for-the-badge&logo=github&logoColor=white)](https://github.com/avi-i05)\n\n---\n\n</div>"
