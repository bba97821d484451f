package fields

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_NoMatches(t *testing.T) {
	skills := Skills("12345 !!!", DefaultLexicon())

	assert.NotNil(t, skills.TechnicalSkills)
	assert.Empty(t, skills.TechnicalSkills)
	assert.Equal(t, 0, skills.TotalSkillsFound)

	b, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.JSONEq(t, `{"technical_skills":[],"total_skills_found":0}`, string(b))
}

func TestSkills_CountsAndOrder(t *testing.T) {
	lex := NewLexicon([]string{"alpha", "beta", "gamma", "delta"}, map[string]domain.SkillCategory{
		"beta": domain.CategoryDatabase,
	})

	skills := Skills("Beta beta ALPHA gamma. Gamma BETA", lex)

	assert.Equal(t, []domain.Skill{
		{Skill: "Beta", Mentions: 3, Category: domain.CategoryDatabase},
		{Skill: "Gamma", Mentions: 2, Category: domain.CategoryOther},
		{Skill: "Alpha", Mentions: 1, Category: domain.CategoryOther},
	}, skills.TechnicalSkills)
	assert.Equal(t, 3, skills.TotalSkillsFound)
}

func TestSkills_TiesKeepLexiconOrder(t *testing.T) {
	lex := NewLexicon([]string{"zeta", "alpha", "mu"}, nil)

	skills := Skills("mu alpha zeta", lex)

	require.Len(t, skills.TechnicalSkills, 3)
	assert.Equal(t, "Zeta", skills.TechnicalSkills[0].Skill)
	assert.Equal(t, "Alpha", skills.TechnicalSkills[1].Skill)
	assert.Equal(t, "Mu", skills.TechnicalSkills[2].Skill)
}

func TestSkills_DefaultLexicon(t *testing.T) {
	skills := Skills("Python developer. Python, Django and Docker. python", DefaultLexicon())

	require.NotEmpty(t, skills.TechnicalSkills)
	assert.Equal(t, domain.Skill{Skill: "Python", Mentions: 3, Category: domain.CategoryProgrammingLanguage}, skills.TechnicalSkills[0])

	byName := make(map[string]domain.Skill)
	for _, s := range skills.TechnicalSkills {
		byName[s.Skill] = s
	}
	assert.Equal(t, domain.CategoryFramework, byName["Django"].Category)
	assert.Equal(t, domain.CategoryCloudDevOps, byName["Docker"].Category)
}

func TestSkills_CapAndInvariants(t *testing.T) {
	lex := DefaultLexicon()
	text := strings.Join(defaultSkills, " ")

	skills := Skills(text, lex)

	assert.Len(t, skills.TechnicalSkills, MaxTechnicalSkills)
	assert.Equal(t, lex.Len(), skills.TotalSkillsFound)
	assert.GreaterOrEqual(t, skills.TotalSkillsFound, len(skills.TechnicalSkills))
	for i := 1; i < len(skills.TechnicalSkills); i++ {
		assert.GreaterOrEqual(t, skills.TechnicalSkills[i-1].Mentions, skills.TechnicalSkills[i].Mentions)
	}
}

func TestLexicon_IsCopied(t *testing.T) {
	src := []string{"alpha"}
	cats := map[string]domain.SkillCategory{"alpha": domain.CategoryFramework}
	lex := NewLexicon(src, cats)

	src[0] = "beta"
	cats["alpha"] = domain.CategoryDatabase

	assert.Equal(t, domain.CategoryFramework, lex.Category("alpha"))
	assert.Equal(t, 1, Skills("alpha", lex).TotalSkillsFound)
}
