// Package generator turns form state into GitHub-flavored Markdown README
// documents. Generation is a pure function over a state snapshot: it always
// succeeds, omits sections whose fields are unset, substitutes bracketed
// placeholders for missing required-looking fields, and silently skips
// incomplete entities in repeatable collections.
package generator

import (
	"fmt"
	"strings"
)

// styledHeading renders a level-2 heading with the oversized inline styling the
// README layouts use.
func styledHeading(text string) string {
	return fmt.Sprintf("## <span style=\"font-size: 1.8em; font-weight: bold;\">%s</span>\n\n", text)
}

// normalize trims surrounding whitespace and guarantees exactly one trailing
// newline, regardless of how the sections composed.
func normalize(doc string) string {
	return strings.TrimSpace(doc) + "\n"
}

// usernameFrom extracts a username from a raw field value that may be a full
// profile URL or a bare username: the final "/"-delimited segment, or the whole
// value when no slash is present. A trailing slash yields the empty string;
// callers treat that as "not provided".
func usernameFrom(value string) string {
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "/")
	return parts[len(parts)-1]
}

// techStackLine renders a comma-delimited tech stack string as inline-code
// entries, dropping empty fragments. Returns "" when nothing remains.
func techStackLine(techStack string) string {
	if strings.TrimSpace(techStack) == "" {
		return ""
	}
	var tags []string
	for _, tech := range strings.Split(techStack, ",") {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			continue
		}
		tags = append(tags, "`"+tech+"`")
	}
	if len(tags) == 0 {
		return ""
	}
	return "**Tech Stack:** " + strings.Join(tags, ", ")
}
