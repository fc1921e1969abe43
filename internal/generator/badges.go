package generator

import (
	"fmt"

	"github.com/jonathan/readme-generator/internal/types"
)

// socialPlatform describes one entry of the fixed "Connect with me" badge list.
// Badge is the shields.io color segment and Logo the shields.io logo slug.
type socialPlatform struct {
	Label string
	Badge string
	Logo  string
	Value func(types.ProfileState) string
}

// socialPlatforms is the fixed badge emission order.
var socialPlatforms = []socialPlatform{
	{Label: "GitHub", Badge: "GitHub-100000", Logo: "github", Value: func(s types.ProfileState) string { return s.GitHub }},
	{Label: "LinkedIn", Badge: "LinkedIn-0077B5", Logo: "linkedin", Value: func(s types.ProfileState) string { return s.LinkedIn }},
	{Label: "Twitter", Badge: "Twitter-1DA1F2", Logo: "twitter", Value: func(s types.ProfileState) string { return s.Twitter }},
	{Label: "Website", Badge: "Website-000000", Logo: "About.me", Value: func(s types.ProfileState) string { return s.Website }},
	{Label: "Instagram", Badge: "Instagram-E4405F", Logo: "instagram", Value: func(s types.ProfileState) string { return s.Instagram }},
	{Label: "Facebook", Badge: "Facebook-1877F2", Logo: "facebook", Value: func(s types.ProfileState) string { return s.Facebook }},
	{Label: "YouTube", Badge: "YouTube-FF0000", Logo: "youtube", Value: func(s types.ProfileState) string { return s.YouTube }},
	{Label: "Dev.to", Badge: "dev.to-0A0A0A", Logo: "dev.to", Value: func(s types.ProfileState) string { return s.DevTo }},
	{Label: "Hashnode", Badge: "Hashnode-2962FF", Logo: "hashnode", Value: func(s types.ProfileState) string { return s.Hashnode }},
	{Label: "Discord", Badge: "Discord-5865F2", Logo: "discord", Value: func(s types.ProfileState) string { return s.Discord }},
	{Label: "Telegram", Badge: "Telegram-2CA5E0", Logo: "telegram", Value: func(s types.ProfileState) string { return s.Telegram }},
	{Label: "Medium", Badge: "Medium-12100E", Logo: "medium", Value: func(s types.ProfileState) string { return s.Medium }},
	{Label: "Reddit", Badge: "Reddit-FF4500", Logo: "reddit", Value: func(s types.ProfileState) string { return s.Reddit }},
	{Label: "Stack Overflow", Badge: "Stack_Overflow-FE7A16", Logo: "stack-overflow", Value: func(s types.ProfileState) string { return s.StackOverflow }},
	{Label: "GitLab", Badge: "GitLab-FC6D26", Logo: "gitlab", Value: func(s types.ProfileState) string { return s.GitLab }},
	{Label: "Bitbucket", Badge: "Bitbucket-0052CC", Logo: "bitbucket", Value: func(s types.ProfileState) string { return s.Bitbucket }},
}

// buildSocialBadges returns one image-as-link badge per populated platform, in
// fixed order. An error means a platform definition was unusable; the caller
// falls back to plain links for the whole section, never per platform.
func buildSocialBadges(state types.ProfileState) ([]string, error) {
	var badges []string
	for _, p := range socialPlatforms {
		if p.Badge == "" || p.Logo == "" {
			return nil, fmt.Errorf("incomplete badge definition for %s", p.Label)
		}
		value := p.Value(state)
		if value == "" {
			continue
		}
		badges = append(badges, fmt.Sprintf(
			"[![%s](https://img.shields.io/badge/%s?style=for-the-badge&logo=%s&logoColor=white)](%s)",
			p.Label, p.Badge, p.Logo, value))
	}
	return badges, nil
}

// plainSocialLinks is the degraded rendering of the social section: one bullet
// link per populated platform.
func plainSocialLinks(state types.ProfileState) []string {
	var links []string
	for _, p := range socialPlatforms {
		value := p.Value(state)
		if value == "" {
			continue
		}
		links = append(links, fmt.Sprintf("- [%s](%s)", p.Label, value))
	}
	return links
}

// socialSection renders the full "Connect with me" section, or "" when no
// platform is populated.
func socialSection(state types.ProfileState) string {
	lines, err := buildSocialBadges(state)
	if err != nil {
		lines = plainSocialLinks(state)
	}
	if len(lines) == 0 {
		return ""
	}
	return styledHeading("🌐 Connect with me") + joinLines(lines, " ") + "\n\n"
}

func joinLines(lines []string, sep string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += sep
		}
		out += l
	}
	return out
}

// codingProfile describes one entry of the fixed "Coding Profiles" bullet list.
type codingProfile struct {
	Label string
	Value func(types.ProfileState) string
}

// codingProfiles is the fixed bullet emission order.
var codingProfiles = []codingProfile{
	{Label: "LeetCode", Value: func(s types.ProfileState) string { return s.LeetCode }},
	{Label: "HackerRank", Value: func(s types.ProfileState) string { return s.HackerRank }},
	{Label: "CodeChef", Value: func(s types.ProfileState) string { return s.CodeChef }},
	{Label: "CodeForces", Value: func(s types.ProfileState) string { return s.CodeForces }},
	{Label: "TopCoder", Value: func(s types.ProfileState) string { return s.TopCoder }},
	{Label: "GeeksforGeeks", Value: func(s types.ProfileState) string { return s.GeeksForGeeks }},
	{Label: "InterviewBit", Value: func(s types.ProfileState) string { return s.InterviewBit }},
	{Label: "SPOJ", Value: func(s types.ProfileState) string { return s.SPOJ }},
	{Label: "AtCoder", Value: func(s types.ProfileState) string { return s.AtCoder }},
	{Label: "Google Kick Start", Value: func(s types.ProfileState) string { return s.KickStart }},
	{Label: "Project Euler", Value: func(s types.ProfileState) string { return s.ProjectEuler }},
}

// codingProfilesSection renders the plain bullet list of coding profiles, or ""
// when none are populated. The raw field value is used as the link target.
func codingProfilesSection(state types.ProfileState) string {
	var bullets []string
	for _, p := range codingProfiles {
		value := p.Value(state)
		if value == "" {
			continue
		}
		bullets = append(bullets, fmt.Sprintf("- [%s](%s)", p.Label, value))
	}
	if len(bullets) == 0 {
		return ""
	}
	return styledHeading("🏆 Coding Profiles") + joinLines(bullets, "\n") + "\n\n"
}
