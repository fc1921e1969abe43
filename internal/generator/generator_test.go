package generator

import (
	"testing"

	"github.com/jonathan/readme-generator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestUsernameFrom(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"full profile URL", "https://github.com/ada", "ada"},
		{"bare username", "ada", "ada"},
		{"trailing slash", "https://github.com/ada/", ""},
		{"empty", "", ""},
		{"nested path", "https://leetcode.com/u/ada", "ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameFrom(tt.value))
		})
	}
}

func TestTechStackLine(t *testing.T) {
	assert.Equal(t, "**Tech Stack:** `Go`, `Postgres`", techStackLine("Go, Postgres"))
	assert.Equal(t, "**Tech Stack:** `Go`", techStackLine("  Go , , "))
	assert.Empty(t, techStackLine("   "))
	assert.Empty(t, techStackLine(""))
	assert.Empty(t, techStackLine(" , ,"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "doc\n", normalize("\n\ndoc\n\n\n"))
	assert.Equal(t, "doc\n", normalize("doc"))
}

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=abc123", "abc123"},
		{"watch URL with params", "https://www.youtube.com/watch?v=abc123&t=10", "abc123"},
		{"short link", "https://youtu.be/abc123", "abc123"},
		{"short link with params", "https://youtu.be/abc123?t=5", "abc123"},
		{"channel URL has no id", "https://www.youtube.com/@somechannel", ""},
		{"not youtube", "https://vimeo.com/12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, youTubeVideoID(tt.url))
		})
	}
}

func TestVimeoVideoID(t *testing.T) {
	assert.Equal(t, "12345", vimeoVideoID("https://vimeo.com/12345"))
	assert.Equal(t, "12345", vimeoVideoID("https://vimeo.com/12345?autoplay=1"))
	assert.Empty(t, vimeoVideoID("https://example.com/video"))
	assert.Empty(t, vimeoVideoID("https://player.vimeo.com"))
}

func TestDirectVideoExt(t *testing.T) {
	assert.Equal(t, "mp4", directVideoExt("https://example.com/demo.mp4"))
	assert.Equal(t, "webm", directVideoExt("https://example.com/demo.WEBM"))
	assert.Empty(t, directVideoExt("https://example.com/demo.mov"))
}

func TestProjectEntryVideo_YouTubeWithoutID(t *testing.T) {
	assert.Empty(t, projectEntryVideo("Tracker", "https://www.youtube.com/@somechannel"),
		"a YouTube URL with no extractable id renders nothing")
}

func TestBuildSocialBadges_OrderFollowsPlatformList(t *testing.T) {
	state := minimalSocialState()

	badges, err := buildSocialBadges(state)
	assert.NoError(t, err)
	assert.Len(t, badges, 2)
	assert.Contains(t, badges[0], "GitHub")
	assert.Contains(t, badges[1], "Bitbucket")
}

func TestPlainSocialLinks(t *testing.T) {
	links := plainSocialLinks(minimalSocialState())

	assert.Equal(t, []string{
		"- [GitHub](https://github.com/ada)",
		"- [Bitbucket](https://bitbucket.org/ada)",
	}, links)
}

func minimalSocialState() types.ProfileState {
	return types.ProfileState{
		GitHub:    "https://github.com/ada",
		Bitbucket: "https://bitbucket.org/ada",
	}
}
