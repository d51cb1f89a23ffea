// Package catalog provides the static skill taxonomy used for extraction and matching.
package catalog

import "strings"

// Category keys, in taxonomy order.
const (
	ProgrammingLanguages = "programming_languages"
	WebTechnologies      = "web_technologies"
	Databases            = "databases"
	DataScience          = "data_science"
	CloudDevOps          = "cloud_devops"
	Mobile               = "mobile"
	Design               = "design"
	SoftSkills           = "soft_skills"
	OtherTechnical       = "other_technical"
)

// Category is one named group of canonical skills.
type Category struct {
	Key    string
	Skills []string
}

// Catalog is an immutable mapping of category -> canonical skills with
// normalized lookup. A Catalog is safe for unlimited concurrent readers.
type Catalog struct {
	categories []Category
	byVariant  map[string]entry // normalized variant -> canonical skill + category
}

type entry struct {
	canonical string
	category  string
}

// aliases maps common ASCII-only spellings to the canonical lowercase form.
var aliases = map[string]string{
	"nextjs": "next.js",
	"nodejs": "node.js",
	"vuejs":  "vue.js",
	"nuxtjs": "nuxt.js",
}

// Default returns the built-in skill taxonomy.
func Default() *Catalog {
	return New([]Category{
		{Key: ProgrammingLanguages, Skills: []string{
			"Python", "Java", "JavaScript", "C++", "C#", "Go", "Rust", "Ruby",
			"PHP", "Swift", "Kotlin", "TypeScript", "Scala", "R", "MATLAB", "Perl",
		}},
		{Key: WebTechnologies, Skills: []string{
			"HTML", "CSS", "React", "Vue.js", "Angular", "Node.js", "Express",
			"Django", "Flask", "Spring Boot", "ASP.NET", "GraphQL", "REST APIs",
			"Webpack", "Next.js", "Nuxt.js", "Redux", "jQuery",
		}},
		{Key: Databases, Skills: []string{
			"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQL Server",
			"Redis", "Cassandra", "DynamoDB", "Firebase", "SQLite", "MariaDB",
			"Elasticsearch",
		}},
		{Key: DataScience, Skills: []string{
			"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
			"Statistics", "Data Analysis", "Pandas", "NumPy", "Scikit-learn",
			"TensorFlow", "PyTorch", "Keras", "Jupyter", "Matplotlib", "Seaborn",
			"SciPy", "Feature Engineering", "MLOps",
		}},
		{Key: CloudDevOps, Skills: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Terraform",
			"Ansible", "CI/CD", "DevOps", "Linux", "Bash", "Git", "GitHub",
			"GitLab", "Prometheus", "Grafana", "Microservices",
		}},
		{Key: Mobile, Skills: []string{
			"React Native", "Flutter", "Swift", "Kotlin", "Android Studio",
			"Xcode", "Mobile UI", "Firebase", "API Integration",
		}},
		{Key: Design, Skills: []string{
			"UI Design", "UX Design", "Figma", "Adobe XD", "Sketch", "Photoshop",
			"Illustrator", "InVision", "Prototyping", "Wireframing", "User Testing",
			"Design Systems", "Accessibility", "Responsive Design", "Animation",
		}},
		{Key: SoftSkills, Skills: []string{
			"Communication", "Leadership", "Problem Solving", "Teamwork",
			"Project Management", "Agile", "Scrum", "Time Management",
		}},
		{Key: OtherTechnical, Skills: []string{
			"Testing", "Unit Testing", "Integration Testing", "Debugging",
			"Performance Optimization", "Security", "Cryptography", "Algorithms",
			"Data Structures", "OOP", "Design Patterns", "System Design",
		}},
	})
}

// New builds a Catalog from explicit category definitions. A skill listed in
// more than one category keeps its first category for lookup purposes.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byVariant:  make(map[string]entry),
	}
	for _, cat := range categories {
		for _, skill := range cat.Skills {
			norm := normalize(skill)
			if _, exists := c.byVariant[norm]; !exists {
				c.byVariant[norm] = entry{canonical: skill, category: cat.Key}
			}
			// Register alias spellings pointing at the same entry.
			for alias, canonical := range aliases {
				if canonical == norm {
					if _, exists := c.byVariant[alias]; !exists {
						c.byVariant[alias] = entry{canonical: skill, category: cat.Key}
					}
				}
			}
		}
	}
	return c
}

// normalize lowercases and trims a skill name, collapsing known alias
// spellings to the canonical lowercase form.
func normalize(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[lower]; ok {
		return canonical
	}
	return lower
}

// Categories returns the ordered category keys.
func (c *Catalog) Categories() []string {
	keys := make([]string, len(c.categories))
	for i, cat := range c.categories {
		keys[i] = cat.Key
	}
	return keys
}

// NumCategories returns the total number of categories.
func (c *Catalog) NumCategories() int {
	return len(c.categories)
}

// Skills returns the canonical skills for a category, or nil for an unknown
// category key.
func (c *Catalog) Skills(category string) []string {
	for _, cat := range c.categories {
		if cat.Key == category {
			return cat.Skills
		}
	}
	return nil
}

// AllSkills returns every canonical skill in taxonomy order.
func (c *Catalog) AllSkills() []string {
	var all []string
	for _, cat := range c.categories {
		all = append(all, cat.Skills...)
	}
	return all
}

// Canonical resolves a skill name (any casing, alias spellings included) to
// its canonical form and category.
func (c *Catalog) Canonical(name string) (skill, category string, ok bool) {
	e, found := c.byVariant[normalize(name)]
	if !found {
		return "", "", false
	}
	return e.canonical, e.category, true
}

// CategoryOf returns the category for a skill, defaulting to other_technical
// for skills not in the taxonomy.
func (c *Catalog) CategoryOf(skill string) string {
	if _, category, ok := c.Canonical(skill); ok {
		return category
	}
	return OtherTechnical
}

// TechnicalCategories returns the category keys counted as technical for the
// technical-skill metrics. Design and soft skills are deliberately excluded.
func TechnicalCategories() []string {
	return []string{
		ProgrammingLanguages, WebTechnologies, Databases,
		DataScience, CloudDevOps, Mobile, OtherTechnical,
	}
}
