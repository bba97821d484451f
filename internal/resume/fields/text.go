package fields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\pZ\x{85}]+`)
	newlineRun    = regexp.MustCompile(`\n+`)
	horizontalRun = regexp.MustCompile(`[\t\f\v \pZ\x{85}]+`)
)

// Normalize collapses every whitespace run, newlines included, to a single
// space, collapses newline runs and trims. The result is a single line.
func Normalize(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// NormalizeLines is like Normalize but keeps line structure: each line has
// its whitespace runs collapsed and is trimmed, blank lines are dropped.
func NormalizeLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(horizontalRun.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// titleCase uppercases every letter that follows a non-letter and
// lowercases the rest ("node.js" -> "Node.Js", "c++" -> "C++").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// dedupe keeps the first occurrence of each value
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func firstN[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Preview returns the first limit characters of text, with "..." appended
// when text is longer.
func Preview(text string, limit int) string {
	if runeLen(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}
