// Package registry provides the static skill and template catalogs consulted by the
// README generators. The catalogs are read-only data loaded at startup and never
// mutated.
package registry

// Skill is one entry of the predefined skill catalog. Icon is a devicon slug used
// to build the badge image URL.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// Skills is the full predefined skill catalog, grouped by category. A selected
// skill name is "predefined" iff it exactly matches a Name here; anything else is
// treated as a custom skill.
var Skills = []Skill{
	// Programming Languages
	{Name: "JavaScript", Category: "Programming Languages", Icon: "javascript"},
	{Name: "TypeScript", Category: "Programming Languages", Icon: "typescript"},
	{Name: "Python", Category: "Programming Languages", Icon: "python"},
	{Name: "Java", Category: "Programming Languages", Icon: "java"},
	{Name: "Go", Category: "Programming Languages", Icon: "go"},
	{Name: "Rust", Category: "Programming Languages", Icon: "rust"},
	{Name: "C", Category: "Programming Languages", Icon: "c"},
	{Name: "C++", Category: "Programming Languages", Icon: "cplusplus"},
	{Name: "C#", Category: "Programming Languages", Icon: "csharp"},
	{Name: "Ruby", Category: "Programming Languages", Icon: "ruby"},
	{Name: "PHP", Category: "Programming Languages", Icon: "php"},
	{Name: "Swift", Category: "Programming Languages", Icon: "swift"},
	{Name: "Kotlin", Category: "Programming Languages", Icon: "kotlin"},
	{Name: "Dart", Category: "Programming Languages", Icon: "dart"},
	{Name: "Scala", Category: "Programming Languages", Icon: "scala"},
	{Name: "R", Category: "Programming Languages", Icon: "r"},

	// Frontend Development
	{Name: "React", Category: "Frontend Development", Icon: "react"},
	{Name: "Vue.js", Category: "Frontend Development", Icon: "vuejs"},
	{Name: "Angular", Category: "Frontend Development", Icon: "angularjs"},
	{Name: "Svelte", Category: "Frontend Development", Icon: "svelte"},
	{Name: "Next.js", Category: "Frontend Development", Icon: "nextjs"},
	{Name: "HTML5", Category: "Frontend Development", Icon: "html5"},
	{Name: "CSS3", Category: "Frontend Development", Icon: "css3"},
	{Name: "Sass", Category: "Frontend Development", Icon: "sass"},
	{Name: "Tailwind CSS", Category: "Frontend Development", Icon: "tailwindcss"},
	{Name: "Bootstrap", Category: "Frontend Development", Icon: "bootstrap"},
	{Name: "Redux", Category: "Frontend Development", Icon: "redux"},

	// Backend Development
	{Name: "Node.js", Category: "Backend Development", Icon: "nodejs"},
	{Name: "Express", Category: "Backend Development", Icon: "express"},
	{Name: "Django", Category: "Backend Development", Icon: "django"},
	{Name: "Flask", Category: "Backend Development", Icon: "flask"},
	{Name: "Spring", Category: "Backend Development", Icon: "spring"},
	{Name: "Rails", Category: "Backend Development", Icon: "rails"},
	{Name: "Laravel", Category: "Backend Development", Icon: "laravel"},
	{Name: "FastAPI", Category: "Backend Development", Icon: "fastapi"},
	{Name: "GraphQL", Category: "Backend Development", Icon: "graphql"},

	// Mobile Development
	{Name: "React Native", Category: "Mobile Development", Icon: "react"},
	{Name: "Flutter", Category: "Mobile Development", Icon: "flutter"},
	{Name: "Android", Category: "Mobile Development", Icon: "android"},
	{Name: "iOS", Category: "Mobile Development", Icon: "apple"},

	// Databases
	{Name: "PostgreSQL", Category: "Databases", Icon: "postgresql"},
	{Name: "MySQL", Category: "Databases", Icon: "mysql"},
	{Name: "MongoDB", Category: "Databases", Icon: "mongodb"},
	{Name: "Redis", Category: "Databases", Icon: "redis"},
	{Name: "SQLite", Category: "Databases", Icon: "sqlite"},

	// DevOps & Cloud
	{Name: "Docker", Category: "DevOps & Cloud", Icon: "docker"},
	{Name: "Kubernetes", Category: "DevOps & Cloud", Icon: "kubernetes"},
	{Name: "AWS", Category: "DevOps & Cloud", Icon: "amazonwebservices"},
	{Name: "Google Cloud", Category: "DevOps & Cloud", Icon: "googlecloud"},
	{Name: "Azure", Category: "DevOps & Cloud", Icon: "azure"},
	{Name: "Terraform", Category: "DevOps & Cloud", Icon: "terraform"},
	{Name: "Jenkins", Category: "DevOps & Cloud", Icon: "jenkins"},
	{Name: "Nginx", Category: "DevOps & Cloud", Icon: "nginx"},

	// Data Science & ML
	{Name: "TensorFlow", Category: "Data Science & ML", Icon: "tensorflow"},
	{Name: "PyTorch", Category: "Data Science & ML", Icon: "pytorch"},
	{Name: "Pandas", Category: "Data Science & ML", Icon: "pandas"},
	{Name: "NumPy", Category: "Data Science & ML", Icon: "numpy"},
	{Name: "Jupyter", Category: "Data Science & ML", Icon: "jupyter"},

	// Tools
	{Name: "Git", Category: "Tools", Icon: "git"},
	{Name: "Linux", Category: "Tools", Icon: "linux"},
	{Name: "Bash", Category: "Tools", Icon: "bash"},
	{Name: "Vim", Category: "Tools", Icon: "vim"},
	{Name: "Figma", Category: "Tools", Icon: "figma"},
}

// FindSkill looks up a skill by exact name match.
func FindSkill(name string) (Skill, bool) {
	for _, s := range Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// IsPredefined reports whether name exactly matches a catalog entry.
func IsPredefined(name string) bool {
	_, ok := FindSkill(name)
	return ok
}

// SkillsByCategory returns the catalog entries for a single category, in catalog
// order.
func SkillsByCategory(category string) []Skill {
	var out []Skill
	for _, s := range Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}
