package types

// AuthorType selects single- or multi-author mode on the project form.
type AuthorType string

const (
	// AuthorIndividual keeps the author list at a single entry.
	AuthorIndividual AuthorType = "individual"
	// AuthorGroup allows an arbitrary number of authors.
	AuthorGroup AuthorType = "group"
)

// ProjectState holds every field of the project README form.
type ProjectState struct {
	ProjectName string     `json:"projectName"`
	Description string     `json:"description"`
	Usage       string     `json:"usage"`
	ImageURL    string     `json:"imageUrl"`
	VideoURL    string     `json:"videoUrl"`
	MediaType   MediaType  `json:"mediaType"`
	AuthorType  AuthorType `json:"authorType"`

	Authors           []Author           `json:"authors"`
	Features          []Feature          `json:"features"`
	InstallationSteps []InstallationStep `json:"installationSteps"`
	CustomSections    []ProjectSection   `json:"customSections"`
}

// Author is a project author. GitHubUsername is optional; when empty the
// generator derives a username from Name.
type Author struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	GitHubUsername string `json:"githubUsername"`
}

// Feature is a single feature bullet. Entries with empty text are skipped.
type Feature struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// InstallationStep is one numbered step of the installation section, with an
// ordered list of shell commands rendered one fenced block per command.
type InstallationStep struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Commands    []Command `json:"commands"`
}

// Command is a single shell command within an installation step.
type Command struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ProjectSection is a user-defined section on the project form. IsExpanded is
// presentation state for the form UI and is ignored by generation.
type ProjectSection struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	IsExpanded bool   `json:"isExpanded"`
}
