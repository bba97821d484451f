package fields

import (
	"sort"
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

// MaxTechnicalSkills caps the skills returned in a record
const MaxTechnicalSkills = 20

// Skills matches lex against text case-insensitively. Each keyword found
// is reported with its non-overlapping occurrence count; the list is sorted
// by count, ties kept in lexicon order, and capped at MaxTechnicalSkills.
func Skills(text string, lex *Lexicon) domain.Skills {
	lower := strings.ToLower(text)

	found := make([]domain.Skill, 0)
	for _, kw := range lex.skills {
		if !strings.Contains(lower, kw) {
			continue
		}
		found = append(found, domain.Skill{
			Skill:    titleCase(kw),
			Mentions: strings.Count(lower, kw),
			Category: lex.Category(kw),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Mentions > found[j].Mentions
	})

	return domain.Skills{
		TechnicalSkills:  firstN(found, MaxTechnicalSkills),
		TotalSkillsFound: len(found),
	}
}
