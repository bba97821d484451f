package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

const (
	maxJobTitles = 5
	maxCompanies = 5
)

var (
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*of\s*experience`)

	// One pattern per keyword, in keyword order: the keyword, at most three
	// filler words, then a role word.
	titlePatterns = buildTitlePatterns()

	companyPattern  = regexp.MustCompile(`\bat[ \t]+([A-Z][\w&-]*(?:[ \t]+[A-Z][\w&-]*)*)(\.)?`)
	companySuffixes = map[string]bool{"Inc": true, "Corp": true, "Ltd": true, "Co": true}
)

func buildTitlePatterns() []*regexp.Regexp {
	roles := strings.Join(roleWords, "|")
	patterns := make([]*regexp.Regexp, 0, len(experienceKeywords))
	for _, kw := range experienceKeywords {
		// At most 3 filler words: on single-line text an unbounded gap would
		// run from one keyword to any role word later in the document.
		patterns = append(patterns, regexp.MustCompile(
			`(?i)\b`+regexp.QuoteMeta(kw)+`\s+(?:\w+\s+){0,3}?(?:`+roles+`)\b`,
		))
	}
	return patterns
}

// Experience extracts stated years of experience, job titles and companies
func Experience(text string) domain.Experience {
	exp := domain.Experience{
		TotalYears: totalYears(text),
		JobTitles:  jobTitles(text),
		Companies:  companies(text),
	}
	exp.ExperienceLevel = ExperienceLevel(exp.TotalYears)
	return exp
}

// ExperienceLevel buckets total years: under 2 entry level, under 5 junior,
// under 10 mid level, otherwise senior.
func ExperienceLevel(years *int) domain.ExperienceLevel {
	switch {
	case years == nil:
		return domain.LevelUnknown
	case *years < 2:
		return domain.LevelEntry
	case *years < 5:
		return domain.LevelJunior
	case *years < 10:
		return domain.LevelMid
	default:
		return domain.LevelSenior
	}
}

// totalYears returns the largest "N years of experience" figure, or nil
func totalYears(text string) *int {
	var best *int
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if best == nil || n > *best {
			v := n
			best = &v
		}
	}
	return best
}

func jobTitles(text string) []string {
	var titles []string
	for _, p := range titlePatterns {
		for _, m := range p.FindAllString(text, -1) {
			titles = append(titles, titleCase(strings.Join(strings.Fields(m), " ")))
		}
	}
	return firstN(dedupe(titles), maxJobTitles)
}

func companies(text string) []string {
	var names []string
	for _, m := range companyPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if m[2] != "" {
			words := strings.Fields(name)
			if companySuffixes[words[len(words)-1]] {
				name += "."
			}
		}
		names = append(names, name)
	}
	return firstN(dedupe(names), maxCompanies)
}
