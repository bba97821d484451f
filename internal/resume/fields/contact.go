package fields

import (
	"regexp"
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.]?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`),            // US
		regexp.MustCompile(`\+?\d{1,3}[-.]?\(?\d{3,4}\)?[-.]?\d{3,4}[-.]?\d{3,4}`), // international
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}-\d{4}`),                              // (123) 456-7890
	}

	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9-]+)`)

	// Matches any "words, words" pair; good enough for "City, ST" headers.
	locationPattern = regexp.MustCompile(`\b([A-Za-z\s]+),\s*([A-Za-z\s]{2,})\b`)
)

// ContactInfo collects emails, phone numbers, a LinkedIn handle and a
// location guess from anywhere in text.
func ContactInfo(text string) domain.ContactInfo {
	info := domain.ContactInfo{
		Emails: dedupe(emailPattern.FindAllString(text, -1)),
	}

	var phones []string
	for _, p := range phonePatterns {
		phones = append(phones, p.FindAllString(text, -1)...)
	}
	info.Phones = dedupe(phones)

	if m := linkedInPattern.FindStringSubmatch(text); m != nil {
		handle := m[1]
		info.LinkedInHandle = &handle
	}

	if m := locationPattern.FindStringSubmatch(text); m != nil {
		info.Location = &domain.Location{
			City:   strings.TrimSpace(m[1]),
			Region: strings.TrimSpace(m[2]),
		}
	}

	return info
}
