// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/readme-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileState outputs a human-readable summary of a profile form
// snapshot before generation.
func (p *Printer) PrintProfileState(state *types.ProfileState) {
	if state == nil {
		return
	}

	var sb strings.Builder

	name := state.Name
	if name == "" {
		name = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Skills:   %d selected\n", len(state.SelectedSkills)))
	sb.WriteString(fmt.Sprintf("Projects: %d\n", len(state.Projects)))

	social := socialCount(state)
	sb.WriteString(fmt.Sprintf("Socials:  %d linked\n", social))

	if len(state.SelectedSkills) > 0 {
		sb.WriteString("\nSelected Skills:\n")
		count := min(len(state.SelectedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", state.SelectedSkills[i]))
		}
		if len(state.SelectedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(state.SelectedSkills)-maxItemsToShow))
		}
	}

	p.printBox("PROFILE FORM STATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjectState outputs a human-readable summary of a project form
// snapshot before generation.
func (p *Printer) PrintProjectState(state *types.ProjectState) {
	if state == nil {
		return
	}

	var sb strings.Builder

	name := state.ProjectName
	if name == "" {
		name = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Project:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Media:    %s\n", state.MediaType))
	sb.WriteString(fmt.Sprintf("Authors:  %d (%s)\n", len(state.Authors), state.AuthorType))
	sb.WriteString(fmt.Sprintf("Features: %d\n", len(state.Features)))
	sb.WriteString(fmt.Sprintf("Steps:    %d\n", len(state.InstallationSteps)))

	if len(state.Features) > 0 {
		sb.WriteString("\nFeatures:\n")
		count := min(len(state.Features), maxItemsToShow)
		for i := 0; i < count; i++ {
			text := state.Features[i].Text
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		if len(state.Features) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(state.Features)-maxItemsToShow))
		}
	}

	p.printBox("PROJECT FORM STATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentStats outputs size and section counts for a generated README.
func (p *Printer) PrintDocumentStats(markdown string) {
	var sb strings.Builder

	lines := strings.Split(markdown, "\n")
	sb.WriteString(fmt.Sprintf("Size:     %d bytes, %d lines\n", len(markdown), len(lines)))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", countSections(lines)))

	headings := sectionHeadings(lines)
	if len(headings) > 0 {
		sb.WriteString("\nHeadings:\n")
		count := min(len(headings), maxItemsToShow)
		for i := 0; i < count; i++ {
			heading := headings[i]
			if len(heading) > 45 {
				heading = heading[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", heading))
		}
		if len(headings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(headings)-maxItemsToShow))
		}
	}

	p.printBox("GENERATED README", strings.TrimSuffix(sb.String(), "\n"))
}

// socialCount counts populated social platform fields.
func socialCount(state *types.ProfileState) int {
	fields := []string{
		state.GitHub, state.LinkedIn, state.Twitter, state.Website,
		state.Instagram, state.Facebook, state.YouTube, state.DevTo,
		state.Hashnode, state.Discord, state.Telegram, state.Medium,
		state.Reddit, state.StackOverflow, state.GitLab, state.Bitbucket,
	}
	count := 0
	for _, f := range fields {
		if f != "" {
			count++
		}
	}
	return count
}

// countSections counts level-2 markdown headings.
func countSections(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			count++
		}
	}
	return count
}

// sectionHeadings returns the text of each level-2 heading, with the inline
// styling span stripped.
func sectionHeadings(lines []string) []string {
	var headings []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		text := strings.TrimPrefix(line, "## ")
		if strings.HasPrefix(text, "<span") {
			if _, after, ok := strings.Cut(text, ">"); ok {
				text, _, _ = strings.Cut(after, "<")
			}
		}
		headings = append(headings, text)
	}
	return headings
}
