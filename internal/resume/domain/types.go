package domain

// MIME types accepted for resume uploads
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeDOC  = "application/msword"
)

// SupportedMIMETypes lists every accepted MIME type in display order
var SupportedMIMETypes = []string{MIMETypePDF, MIMETypeDOC, MIMETypeDOCX}

// IsSupportedMIMEType reports whether mimeType is one of the accepted document types
func IsSupportedMIMEType(mimeType string) bool {
	for _, t := range SupportedMIMETypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// ExtractionSource records which strategy produced the candidate name
type ExtractionSource string

const (
	SourceTextAnalysis      ExtractionSource = "text_analysis"
	SourceEntityRecognition ExtractionSource = "entity_recognition"
	SourceNotFound          ExtractionSource = "not_found"
)

// SummarySource records whether a summary section was found
type SummarySource string

const (
	SummaryExtracted SummarySource = "extracted"
	SummaryNotFound  SummarySource = "not_found"
)

// ExperienceLevel is a coarse seniority bucket derived from total years
type ExperienceLevel string

const (
	LevelUnknown ExperienceLevel = "unknown"
	LevelEntry   ExperienceLevel = "entry_level"
	LevelJunior  ExperienceLevel = "junior"
	LevelMid     ExperienceLevel = "mid_level"
	LevelSenior  ExperienceLevel = "senior"
)

// SkillCategory groups matched skills
type SkillCategory string

const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryFramework           SkillCategory = "framework"
	CategoryDatabase            SkillCategory = "database"
	CategoryCloudDevOps         SkillCategory = "cloud_devops"
	CategoryOther               SkillCategory = "other"
)

// PersonalInfo holds the candidate name, if one was found
type PersonalInfo struct {
	Name             *string          `json:"name"`
	ExtractionSource ExtractionSource `json:"extraction_source"`
}

// Location is a loose "City, Region" guess
type Location struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// ContactInfo holds contact details found anywhere in the text
type ContactInfo struct {
	Emails         []string  `json:"emails"`
	Phones         []string  `json:"phones"`
	LinkedInHandle *string   `json:"linkedin_handle"`
	Location       *Location `json:"location"`
}

// Skill is one matched keyword with its mention count
type Skill struct {
	Skill    string        `json:"skill"`
	Mentions int           `json:"mentions"`
	Category SkillCategory `json:"category"`
}

// Skills holds the top matched skills.
// TotalSkillsFound counts every match, including those beyond the cap.
type Skills struct {
	TechnicalSkills  []Skill `json:"technical_skills"`
	TotalSkillsFound int     `json:"total_skills_found"`
}

// Degree is a degree keyword with its field of study
type Degree struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
}

type Education struct {
	Degrees         []Degree `json:"degrees"`
	Institutions    []string `json:"institutions"`
	GraduationYears []int    `json:"graduation_years"`
}

type Experience struct {
	TotalYears      *int            `json:"total_years"`
	JobTitles       []string        `json:"job_titles"`
	Companies       []string        `json:"companies"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
}

type Summary struct {
	Text   *string       `json:"text"`
	Source SummarySource `json:"source"`
}

// Metadata describes the parse itself
type Metadata struct {
	Filename            string `json:"filename"`
	MIMEType            string `json:"mime_type"`
	ExtractionTimestamp string `json:"extraction_timestamp"`
	TextLength          int    `json:"text_length"`
	ParserVersion       string `json:"parser_version"`
}

// ResumeRecord is the structured result of parsing one document.
// It is built per request and never stored.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	ContactInfo    ContactInfo  `json:"contact_info"`
	Skills         Skills       `json:"skills"`
	Education      Education    `json:"education"`
	Experience     Experience   `json:"experience"`
	Summary        Summary      `json:"summary"`
	RawTextPreview string       `json:"raw_text_preview"`
	Metadata       Metadata     `json:"metadata"`
}

// BatchStatus is the outcome of one batch item
type BatchStatus string

const (
	BatchSuccess BatchStatus = "success"
	BatchError   BatchStatus = "error"
)

// BatchItem is the per-file result inside a batch response
type BatchItem struct {
	Filename  string        `json:"filename"`
	Status    BatchStatus   `json:"status"`
	Data      *ResumeRecord `json:"data,omitempty"`
	Message   string        `json:"message,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
}

// Document is an uploaded file ready for parsing
type Document struct {
	Filename string
	MIMEType string
	Data     []byte
}
