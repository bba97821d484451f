package fields

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/ner"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

const (
	nameScanLines = 5
	nerScanChars  = 500
)

// PersonalInfo guesses the candidate's name from the first lines of text.
// When no line qualifies and rec is non-nil, the first PERSON entity in the
// opening characters is used instead. Recognizer failures are logged and
// treated as no result.
func PersonalInfo(ctx context.Context, text string, rec ner.Recognizer, log *logger.Logger) domain.PersonalInfo {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || containsAny(strings.ToLower(line), nameSkipKeywords) {
			continue
		}
		if looksLikeName(line) {
			return domain.PersonalInfo{Name: &line, ExtractionSource: domain.SourceTextAnalysis}
		}
	}

	if rec != nil {
		entities, err := rec.Entities(ctx, text[:prefixLen(text, nerScanChars)])
		if err != nil {
			log.Warn().Err(err).Msg("entity recognition failed, skipping name fallback")
		}
		for _, e := range entities {
			if e.Label == ner.LabelPerson && strings.TrimSpace(e.Text) != "" {
				name := strings.TrimSpace(e.Text)
				return domain.PersonalInfo{Name: &name, ExtractionSource: domain.SourceEntityRecognition}
			}
		}
	}

	return domain.PersonalInfo{ExtractionSource: domain.SourceNotFound}
}

// looksLikeName accepts 2 to 4 alphabetic tokens (periods ignored) with at
// least one capitalized token.
func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	capitalized := false
	for _, w := range words {
		bare := strings.ReplaceAll(w, ".", "")
		if bare == "" || !isAlpha(bare) {
			return false
		}
		if r, _ := utf8.DecodeRuneInString(w); unicode.IsUpper(r) {
			capitalized = true
		}
	}
	return capitalized
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// prefixLen returns the byte length of the first n runes of s
func prefixLen(s string, n int) int {
	i := 0
	for pos := range s {
		if i == n {
			return pos
		}
		i++
	}
	return len(s)
}
