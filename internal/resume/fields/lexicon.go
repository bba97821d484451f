package fields

import "github.com/resumeparser/resume-parser-backend/internal/resume/domain"

var defaultSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
	"swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css", "sass", "less",

	// Frameworks and libraries
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel",
	"rails", "asp.net", ".net", "fastapi", "nextjs", "nuxt", "svelte", "jquery",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server", "elasticsearch",
	"firebase", "dynamodb", "cassandra", "neo4j",

	// Cloud and DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "gitlab ci",
	"github actions", "terraform", "ansible", "vagrant", "chef", "puppet",

	// Data science and AI
	"machine learning", "deep learning", "artificial intelligence", "data science", "pandas",
	"numpy", "scikit-learn", "tensorflow", "pytorch", "keras", "opencv", "nltk", "spacy",

	// Other
	"git", "linux", "unix", "windows", "macos", "bash", "powershell", "rest api", "graphql",
	"microservices", "agile", "scrum", "kanban", "jira", "confluence", "slack", "teams",
}

// Only these keywords get a category; everything else is "other".
var defaultCategories = map[string]domain.SkillCategory{
	"python":     domain.CategoryProgrammingLanguage,
	"java":       domain.CategoryProgrammingLanguage,
	"javascript": domain.CategoryProgrammingLanguage,
	"c++":        domain.CategoryProgrammingLanguage,
	"php":        domain.CategoryProgrammingLanguage,
	"ruby":       domain.CategoryProgrammingLanguage,

	"react":   domain.CategoryFramework,
	"angular": domain.CategoryFramework,
	"django":  domain.CategoryFramework,
	"flask":   domain.CategoryFramework,
	"spring":  domain.CategoryFramework,

	"mysql":      domain.CategoryDatabase,
	"mongodb":    domain.CategoryDatabase,
	"postgresql": domain.CategoryDatabase,
	"redis":      domain.CategoryDatabase,

	"aws":        domain.CategoryCloudDevOps,
	"azure":      domain.CategoryCloudDevOps,
	"gcp":        domain.CategoryCloudDevOps,
	"docker":     domain.CategoryCloudDevOps,
	"kubernetes": domain.CategoryCloudDevOps,
}

var experienceKeywords = []string{
	"intern", "junior", "senior", "lead", "principal", "architect", "manager", "director",
	"ceo", "cto", "vp", "head", "specialist", "consultant", "analyst", "developer",
	"engineer", "programmer", "designer", "administrator",
}

var roleWords = []string{"engineer", "developer", "manager", "analyst", "designer", "specialist"}

var (
	institutionKeywords = []string{"university", "college", "institute", "school"}
	summaryKeywords     = []string{"summary", "objective", "profile", "about"}
	nameSkipKeywords    = []string{"email", "phone", "address", "linkedin"}
)

// Lexicon is the skill vocabulary. It is never modified after construction
// and is safe for concurrent use.
type Lexicon struct {
	skills     []string
	categories map[string]domain.SkillCategory
}

var defaultLexicon = NewLexicon(defaultSkills, defaultCategories)

// DefaultLexicon returns the built-in skill vocabulary
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// NewLexicon copies skills (lowercased keywords, in priority order) and
// their categories into a new Lexicon.
func NewLexicon(skills []string, categories map[string]domain.SkillCategory) *Lexicon {
	l := &Lexicon{
		skills:     append([]string(nil), skills...),
		categories: make(map[string]domain.SkillCategory, len(categories)),
	}
	for k, v := range categories {
		l.categories[k] = v
	}
	return l
}

// Len returns the number of keywords
func (l *Lexicon) Len() int {
	return len(l.skills)
}

// Category returns the category of keyword, or "other"
func (l *Lexicon) Category(keyword string) domain.SkillCategory {
	if c, ok := l.categories[keyword]; ok {
		return c
	}
	return domain.CategoryOther
}
