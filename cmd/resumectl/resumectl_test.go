package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/resumeparser/resume-parser-backend/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestFileType(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"pdf extension", "cv.PDF", nil, domain.MIMETypePDF},
		{"doc extension", "cv.doc", nil, domain.MIMETypeDOC},
		{"docx extension", "cv.docx", []byte("%PDF"), domain.MIMETypeDOCX},
		{"sniffed pdf", "upload", []byte("%PDF-1.5\n"), domain.MIMETypePDF},
		{"plain text", "notes.txt", []byte("hello"), "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileType(tt.file, tt.data))
		})
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("ok", func(t *testing.T) {
		path := writeFile(t, dir, "cv.pdf", []byte("%PDF-1.4"))
		doc, appErr := readDocument(path, 1<<20)
		require.Nil(t, appErr)
		assert.Equal(t, "cv.pdf", doc.Filename)
		assert.Equal(t, domain.MIMETypePDF, doc.MIMEType)
	})

	t.Run("too large", func(t *testing.T) {
		path := writeFile(t, dir, "big.pdf", bytes.Repeat([]byte("x"), 32))
		_, appErr := readDocument(path, 16)
		require.NotNil(t, appErr)
		assert.Equal(t, "FILE_TOO_LARGE", appErr.Code)
	})

	t.Run("unsupported", func(t *testing.T) {
		path := writeFile(t, dir, "notes.txt", []byte("just text"))
		_, appErr := readDocument(path, 1<<20)
		require.NotNil(t, appErr)
		assert.Equal(t, "UNSUPPORTED_FORMAT", appErr.Code)
	})

	t.Run("missing", func(t *testing.T) {
		_, appErr := readDocument(filepath.Join(dir, "nope.pdf"), 1<<20)
		require.NotNil(t, appErr)
		assert.Equal(t, "BAD_REQUEST", appErr.Code)
	})
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	docx := writeFile(t, dir, "jane.docx", testutil.BuildDOCX(
		"Jane Doe",
		"jane.doe@example.com",
		"Skills: Python, Docker",
	))

	t.Run("single file", func(t *testing.T) {
		out, err := runCommand(t, "parse", "--compact", docx)
		require.NoError(t, err)

		var record domain.ResumeRecord
		require.NoError(t, json.Unmarshal([]byte(out), &record))
		assert.Equal(t, "jane.docx", record.Metadata.Filename)
		assert.Equal(t, []string{"jane.doe@example.com"}, record.ContactInfo.Emails)
	})

	t.Run("several files keep order", func(t *testing.T) {
		txt := writeFile(t, dir, "notes.txt", []byte("not a resume"))

		out, err := runCommand(t, "parse", docx, txt)
		require.NoError(t, err)

		var items []domain.BatchItem
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 2)
		assert.Equal(t, domain.BatchSuccess, items[0].Status)
		assert.Equal(t, "notes.txt", items[1].Filename)
		assert.Equal(t, "UNSUPPORTED_FORMAT", items[1].ErrorCode)
	})

	t.Run("unsupported single file fails", func(t *testing.T) {
		txt := writeFile(t, dir, "other.txt", []byte("plain"))

		_, err := runCommand(t, "parse", txt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported file type")
	})
}

func TestPrintCapabilities(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := printCapabilities(cmd, []extractor.Capability{
		{MIMEType: domain.MIMETypePDF, Decoder: "pdf", Available: true},
		{MIMEType: domain.MIMETypeDOC, Missing: "antiword"},
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "available")
	assert.Contains(t, lines[2], "missing antiword")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "resumectl version: unknown\n", out)
}
