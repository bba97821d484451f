package fields

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

const maxInstitutions = 3

var (
	degreePattern = regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|diploma|b\.tech|m\.tech|b\.sc|m\.sc|mba|bca|mca).*?(?:in|of)\s+([\w\s]+)`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	fourDigits    = regexp.MustCompile(`\d{4}`)
)

// Education extracts degrees, graduation years and institution lines
func Education(text string) domain.Education {
	edu := domain.Education{
		Degrees:         make([]domain.Degree, 0),
		Institutions:    make([]string, 0),
		GraduationYears: graduationYears(text),
	}

	for _, m := range degreePattern.FindAllStringSubmatch(text, -1) {
		edu.Degrees = append(edu.Degrees, domain.Degree{
			Degree: titleCase(m[1]),
			Field:  titleCase(strings.TrimSpace(m[2])),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if !containsAny(strings.ToLower(line), institutionKeywords) {
			continue
		}
		clean := strings.TrimSpace(fourDigits.ReplaceAllString(line, ""))
		if runeLen(clean) > 5 {
			edu.Institutions = append(edu.Institutions, clean)
		}
		if len(edu.Institutions) == maxInstitutions {
			break
		}
	}

	return edu
}

// graduationYears returns distinct 19xx/20xx years in ascending order
func graduationYears(text string) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, m := range yearPattern.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
