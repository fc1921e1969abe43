package registry

// ProfileSections holds the per-template section visibility flags for profile
// templates. The flags are descriptive metadata consumed by template pickers;
// generation is driven purely by form-state field presence and does not branch
// on them.
type ProfileSections struct {
	ShowProfileImage       bool   `json:"showProfileImage"`
	ShowBio                bool   `json:"showBio"`
	ShowSkills             bool   `json:"showSkills"`
	ShowSocialLinks        bool   `json:"showSocialLinks"`
	ShowStats              bool   `json:"showStats"`
	ShowCodingProfiles     bool   `json:"showCodingProfiles"`
	ShowAdditionalSections bool   `json:"showAdditionalSections"`
	FooterStyle            string `json:"footerStyle"`
}

// ProjectSections holds the per-template section visibility flags for project
// templates. Descriptive metadata only, same as ProfileSections.
type ProjectSections struct {
	ShowProjectTitle bool   `json:"showProjectTitle"`
	ShowDescription  bool   `json:"showDescription"`
	ShowFeatures     bool   `json:"showFeatures"`
	ShowTechStack    bool   `json:"showTechStack"`
	ShowInstallation bool   `json:"showInstallation"`
	ShowUsage        bool   `json:"showUsage"`
	ShowContributing bool   `json:"showContributing"`
	ShowLicense      bool   `json:"showLicense"`
	ShowScreenshots  bool   `json:"showScreenshots"`
	FooterStyle      string `json:"footerStyle"`
}

// Styling holds presentation hints attached to a template.
type Styling struct {
	Theme       string `json:"theme"`
	AccentColor string `json:"accentColor"`
	FontSize    string `json:"fontSize"`
	Spacing     string `json:"spacing"`
}

// ProfileTemplate describes one selectable profile README template.
type ProfileTemplate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Preview     string          `json:"preview"`
	Sections    ProfileSections `json:"sections"`
	Styling     Styling         `json:"styling"`
}

// ProjectTemplate describes one selectable project README template.
type ProjectTemplate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Preview     string          `json:"preview"`
	Sections    ProjectSections `json:"sections"`
	Styling     Styling         `json:"styling"`
}

// ProfileTemplates is the profile template catalog in picker display order.
var ProfileTemplates = []ProfileTemplate{
	{
		ID:          "minimalist",
		Name:        "Minimalist",
		Description: "Clean, simple design focused on essential information",
		Preview:     "A sleek, professional look with subtle styling",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true,
			ShowSocialLinks: true, FooterStyle: "simple",
		},
		Styling: Styling{Theme: "light", AccentColor: "#3b82f6", FontSize: "medium", Spacing: "compact"},
	},
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Corporate-style layout perfect for job seekers",
		Preview:     "Structured, business-oriented design",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true, ShowSocialLinks: true,
			ShowStats: true, ShowCodingProfiles: true, ShowAdditionalSections: true,
			FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "light", AccentColor: "#1f2937", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Colorful, artistic design for creative professionals",
		Preview:     "Vibrant colors and unique layout elements",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true, ShowSocialLinks: true,
			ShowStats: true, ShowAdditionalSections: true, FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "colorful", AccentColor: "#8b5cf6", FontSize: "large", Spacing: "relaxed"},
	},
	{
		ID:          "developer",
		Name:        "Developer",
		Description: "Tech-focused design with dark theme and coding emphasis",
		Preview:     "Dark theme perfect for developers",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true, ShowSocialLinks: true,
			ShowStats: true, ShowCodingProfiles: true, ShowAdditionalSections: true,
			FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "dark", AccentColor: "#10b981", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "student",
		Name:        "Student",
		Description: "Perfect for students showcasing academic projects",
		Preview:     "Clean layout highlighting learning journey",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true, ShowSocialLinks: true,
			ShowCodingProfiles: true, ShowAdditionalSections: true, FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "light", AccentColor: "#f59e0b", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "entrepreneur",
		Name:        "Entrepreneur",
		Description: "Business-focused design for founders and entrepreneurs",
		Preview:     "Professional layout emphasizing achievements",
		Sections: ProfileSections{
			ShowProfileImage: true, ShowBio: true, ShowSkills: true, ShowSocialLinks: true,
			ShowAdditionalSections: true, FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "gradient", AccentColor: "#7c3aed", FontSize: "large", Spacing: "relaxed"},
	},
}

// ProjectTemplates is the project template catalog in picker display order.
var ProjectTemplates = []ProjectTemplate{
	{
		ID:          "basic",
		Name:        "Basic Project",
		Description: "Simple project layout with essential sections",
		Preview:     "Clean and straightforward project documentation",
		Sections: ProjectSections{
			ShowProjectTitle: true, ShowDescription: true, ShowFeatures: true,
			ShowTechStack: true, ShowInstallation: true, ShowUsage: true,
			ShowLicense: true, FooterStyle: "simple",
		},
		Styling: Styling{Theme: "light", AccentColor: "#3b82f6", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "comprehensive",
		Name:        "Comprehensive Project",
		Description: "Detailed project layout for thorough documentation",
		Preview:     "Complete guide with all necessary sections",
		Sections: ProjectSections{
			ShowProjectTitle: true, ShowDescription: true, ShowFeatures: true,
			ShowTechStack: true, ShowInstallation: true, ShowUsage: true,
			ShowContributing: true, ShowLicense: true, ShowScreenshots: true,
			FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "light", AccentColor: "#1f2937", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "minimal",
		Name:        "Minimal Project",
		Description: "Minimalist project layout for quick setups",
		Preview:     "Focus on core information only",
		Sections: ProjectSections{
			ShowProjectTitle: true, ShowDescription: true, ShowTechStack: true,
			ShowInstallation: true, FooterStyle: "simple",
		},
		Styling: Styling{Theme: "light", AccentColor: "#10b981", FontSize: "small", Spacing: "compact"},
	},
	{
		ID:          "developer",
		Name:        "Developer Project",
		Description: "Tech-focused layout for developer tools and libraries",
		Preview:     "Emphasizes technical details and code",
		Sections: ProjectSections{
			ShowProjectTitle: true, ShowDescription: true, ShowFeatures: true,
			ShowTechStack: true, ShowInstallation: true, ShowUsage: true,
			ShowContributing: true, ShowLicense: true, FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "dark", AccentColor: "#8b5cf6", FontSize: "medium", Spacing: "normal"},
	},
	{
		ID:          "portfolio",
		Name:        "Portfolio Project",
		Description: "Showcase-style layout for portfolio projects",
		Preview:     "Highlights visual appeal and features",
		Sections: ProjectSections{
			ShowProjectTitle: true, ShowDescription: true, ShowFeatures: true,
			ShowTechStack: true, ShowUsage: true, ShowScreenshots: true,
			FooterStyle: "enhanced",
		},
		Styling: Styling{Theme: "gradient", AccentColor: "#f59e0b", FontSize: "large", Spacing: "relaxed"},
	},
}

// ProfileTemplateByID returns the profile template with the given id, falling
// back to the first catalog entry when the id is unknown.
func ProfileTemplateByID(id string) ProfileTemplate {
	for _, t := range ProfileTemplates {
		if t.ID == id {
			return t
		}
	}
	return ProfileTemplates[0]
}

// ProjectTemplateByID returns the project template with the given id, falling
// back to the first catalog entry when the id is unknown.
func ProjectTemplateByID(id string) ProjectTemplate {
	for _, t := range ProjectTemplates {
		if t.ID == id {
			return t
		}
	}
	return ProjectTemplates[0]
}
