// Package types provides type definitions for the form state consumed by the README generators.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MediaType identifies which kind of media a project or document embeds.
type MediaType string

const (
	// MediaImage selects the image URL for rendering.
	MediaImage MediaType = "image"
	// MediaVideo selects the video URL for rendering.
	MediaVideo MediaType = "video"
)

// ProfileState holds every field of the profile README form.
// All scalar fields default to the empty string; an empty field and an absent
// field mean the same thing ("not provided") and the generator omits the
// corresponding section.
type ProfileState struct {
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
	ResumeLink   string `json:"resumeLink"`

	// Free-text "additional section" fields, each rendered under a fixed heading.
	Collaborate string `json:"collaborate"`
	HelpWith    string `json:"helpWith"`
	Learning    string `json:"learning"`
	HowToReach  string `json:"howToReach"`

	// Social platforms. Each holds a raw URL or a bare username string.
	GitHub        string `json:"github"`
	LinkedIn      string `json:"linkedin"`
	Twitter       string `json:"twitter"`
	Website       string `json:"website"`
	Instagram     string `json:"instagram"`
	Facebook      string `json:"facebook"`
	YouTube       string `json:"youtube"`
	DevTo         string `json:"devto"`
	Hashnode      string `json:"hashnode"`
	Discord       string `json:"discord"`
	Telegram      string `json:"telegram"`
	Medium        string `json:"medium"`
	Reddit        string `json:"reddit"`
	StackOverflow string `json:"stackoverflow"`
	GitLab        string `json:"gitlab"`
	Bitbucket     string `json:"bitbucket"`

	// Coding platforms.
	LeetCode      string `json:"leetcode"`
	HackerRank    string `json:"hackerrank"`
	CodeChef      string `json:"codechef"`
	CodeForces    string `json:"codeforces"`
	TopCoder      string `json:"topcoder"`
	GeeksForGeeks string `json:"geeksforgeeks"`
	InterviewBit  string `json:"interviewbit"`
	SPOJ          string `json:"spoj"`
	AtCoder       string `json:"atcoder"`
	KickStart     string `json:"kickstart"`
	ProjectEuler  string `json:"projecteuler"`

	// SelectedSkills is an ordered list of skill names. Names matching the skill
	// registry are "predefined"; the rest are "custom". The caller guarantees
	// there are no duplicates.
	SelectedSkills []string `json:"selectedSkills"`

	CustomSections  []CustomSection  `json:"customSections"`
	CustomPlatforms []CustomPlatform `json:"customPlatforms"`
	Projects        []Project        `json:"projects"`
}

// CustomSection is a user-defined heading/description pair. Entries missing
// either field are skipped entirely during generation.
type CustomSection struct {
	ID          string `json:"id"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

// CustomPlatform is a user-defined coding platform entry.
type CustomPlatform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Project is a portfolio entry on the profile form. ImageURL and VideoURL are
// mutually exclusive; MediaType is sticky to whichever was most recently set.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	DemoURL     string    `json:"demoUrl"`
	ImageURL    string    `json:"imageUrl"`
	VideoURL    string    `json:"videoUrl"`
	MediaType   MediaType `json:"mediaType"`
	TechStack   string    `json:"techStack"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Featured    bool      `json:"featured"`
}
