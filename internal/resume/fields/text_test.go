package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses spaces and newlines", "  John   Smith \n\n Engineer\t", "John Smith Engineer"},
		{"non-breaking spaces", "a\u00a0\u00a0b", "a b"},
		{"vertical tab and form feed", "a\v\fb", "a b"},
		{"empty", "", ""},
		{"only whitespace", " \n\t\r\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"John Smith\nSoftware Engineer\njohn.smith@example.com\n(555) 123-4567",
		"\n\n  lots   of\t\tspace \r\n\r\n here  ",
		"Ünïcödé line para\u0085next",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
		assert.NotContains(t, once, "\n")
	}
}

func TestNormalizeLines(t *testing.T) {
	in := "John   Smith\r\n\r\n  Software\tEngineer \n\n\nSummary\r"

	out := NormalizeLines(in)

	assert.Equal(t, "John Smith\nSoftware Engineer\nSummary", out)
	assert.Equal(t, out, NormalizeLines(out))
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"python":       "Python",
		"node.js":      "Node.Js",
		"c++":          "C++",
		"c#":           "C#",
		".net":         ".Net",
		"scikit-learn": "Scikit-Learn",
		"neo4j":        "Neo4J",
		"sql server":   "Sql Server",
		"B.TECH":       "B.Tech",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 1000))

	exact := strings.Repeat("a", 1000)
	assert.Equal(t, exact, Preview(exact, 1000))

	long := strings.Repeat("ä", 1001)
	got := Preview(long, 1000)
	assert.Equal(t, strings.Repeat("ä", 1000)+"...", got)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, dedupe([]string{"b", "a", "b", "a"}))
	assert.NotNil(t, dedupe(nil))
}
