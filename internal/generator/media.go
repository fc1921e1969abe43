package generator

import (
	"fmt"
	"strings"
)

// youTubeVideoID extracts the video id from watch-page and short-link URLs.
// Returns "" when the URL does not look like a YouTube link or carries no id.
func youTubeVideoID(url string) string {
	if strings.Contains(url, "youtube.com/watch?v=") {
		_, after, _ := strings.Cut(url, "v=")
		id, _, _ := strings.Cut(after, "&")
		return id
	}
	if strings.Contains(url, "youtu.be/") {
		_, after, _ := strings.Cut(url, "youtu.be/")
		id, _, _ := strings.Cut(after, "?")
		return id
	}
	return ""
}

// vimeoVideoID extracts the numeric id from a Vimeo URL. Returns "" when the
// URL does not look like a Vimeo link or carries no id.
func vimeoVideoID(url string) string {
	if !strings.Contains(url, "vimeo.com/") {
		return ""
	}
	_, after, _ := strings.Cut(url, "vimeo.com/")
	id, _, _ := strings.Cut(after, "?")
	return id
}

// directVideoExt returns the lowercased extension of a directly embeddable
// video file URL, or "" when the URL is not one.
func directVideoExt(url string) string {
	lower := strings.ToLower(url)
	for _, ext := range []string{"mp4", "webm", "ogg"} {
		if strings.HasSuffix(lower, "."+ext) {
			return ext
		}
	}
	return ""
}

// projectEntryVideo renders the demo-video block of a profile project entry:
// a clickable thumbnail for YouTube links, a generic link otherwise. A YouTube
// URL with no extractable id yields nothing rather than a broken thumbnail.
func projectEntryVideo(name, url string) string {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		id := youTubeVideoID(url)
		if id == "" {
			return ""
		}
		return fmt.Sprintf("[![%s Demo Video](https://img.youtube.com/vi/%s/maxresdefault.jpg)](%s)\n\n", name, id, url)
	}
	return fmt.Sprintf("[🎥 Watch Demo Video](%s)\n\n", url)
}

// demoVideoSection renders the centered "Demo Video" section of a project
// README. YouTube and Vimeo links get an autoplaying embedded player, direct
// video files an HTML5 video tag, and anything else a plain link.
func demoVideoSection(url string) string {
	var body string
	switch {
	case strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be"):
		id := youTubeVideoID(url)
		if id == "" {
			return ""
		}
		body = fmt.Sprintf(`<div style="position: relative; padding-bottom: 56.25%%; height: 0; overflow: hidden; max-width: 100%%; margin: 1rem 0;">
  <iframe width="560" height="315" src="https://www.youtube.com/embed/%s?autoplay=1&mute=1&loop=1&playlist=%s" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen style="position: absolute; top: 0; left: 0; width: 100%%; height: 100%%;"></iframe>
</div>

[Watch on YouTube](%s)`, id, id, url)
	case vimeoVideoID(url) != "":
		body = fmt.Sprintf(`<div style="position: relative; padding-bottom: 56.25%%; height: 0; overflow: hidden; max-width: 100%%; margin: 1rem 0;">
  <iframe src="https://player.vimeo.com/video/%s?autoplay=1&loop=1&muted=1&title=0&byline=0&portrait=0" style="position: absolute; top: 0; left: 0; width: 100%%; height: 100%%;" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen></iframe>
</div>

[Watch on Vimeo](%s)`, vimeoVideoID(url), url)
	case directVideoExt(url) != "":
		body = fmt.Sprintf(`<video autoplay loop muted playsinline style="max-width: 100%%; max-height: 400px; border-radius: 8px; margin: 1rem 0;">
  <source src="%s" type="video/%s">
  Your browser does not support the video tag.
</video>

[Download Video](%s)`, url, directVideoExt(url), url)
	default:
		body = fmt.Sprintf("[🎥 Watch Demo Video](%s)", url)
	}
	return fmt.Sprintf("<div align=\"center\">\n\n## 🎥 Demo Video\n\n%s\n\n</div>\n\n", body)
}
