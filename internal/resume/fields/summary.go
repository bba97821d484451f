package fields

import (
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

const summaryLines = 3

// Summary returns the lines following the first summary, objective,
// profile or about heading. A heading with nothing after it counts as
// not found.
func Summary(text string) domain.Summary {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), summaryKeywords) {
			continue
		}

		end := i + 1 + summaryLines
		if end > len(lines) {
			end = len(lines)
		}
		s := strings.TrimSpace(strings.Join(lines[i+1:end], "\n"))
		if s == "" {
			break
		}
		return domain.Summary{Text: &s, Source: domain.SummaryExtracted}
	}

	return domain.Summary{Source: domain.SummaryNotFound}
}
