package extractor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
	"github.com/resumeparser/resume-parser-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFDecoder(t *testing.T) {
	ctx := context.Background()
	data := testutil.BuildPDF(
		"John Smith\nSoftware Engineer",
		"",
		"Python developer with 5 years of experience",
	)

	t.Run("one block per page", func(t *testing.T) {
		pages, err := NewPDFDecoder().Decode(ctx, data)

		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "John Smith\nSoftware Engineer", strings.TrimSpace(pages[0]))
		assert.Empty(t, strings.TrimSpace(pages[1]))
		assert.Equal(t, "Python developer with 5 years of experience", strings.TrimSpace(pages[2]))
	})

	t.Run("pages joined in order, blank page skipped", func(t *testing.T) {
		r := NewRegistry(logger.Nop(), NewPDFDecoder())

		text, err := r.Extract(ctx, data, domain.MIMETypePDF)

		require.NoError(t, err)
		assert.Equal(t, "John Smith\nSoftware Engineer\nPython developer with 5 years of experience", text)
	})

	t.Run("escaped characters", func(t *testing.T) {
		pages, err := NewPDFDecoder().Decode(ctx, testutil.BuildPDF(`R&D (lead) C:\tools`))

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, `R&D (lead) C:\tools`, strings.TrimSpace(pages[0]))
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewPDFDecoder().Decode(cancelled, data)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPDFDecoder_Corrupt(t *testing.T) {
	r := NewRegistry(logger.Nop(), NewPDFDecoder())

	_, err := r.Extract(context.Background(), []byte("this is not a pdf"), domain.MIMETypePDF)

	assert.True(t, errors.Is(err, ErrExtractionFailed))
}

func TestDOCXDecoder(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(logger.Nop(), NewDOCXDecoder())

	t.Run("paragraphs", func(t *testing.T) {
		data := testutil.BuildDOCX("Jane Doe", "Senior Software Engineer", "jane@example.com")

		text, err := r.Extract(ctx, data, domain.MIMETypeDOCX)

		require.NoError(t, err)
		assert.Contains(t, text, "Jane Doe")
		assert.Contains(t, text, "jane@example.com")
	})

	t.Run("corrupt archive", func(t *testing.T) {
		_, err := r.Extract(ctx, []byte("PK\x03\x04 truncated"), domain.MIMETypeDOCX)

		assert.True(t, errors.Is(err, ErrExtractionFailed))
	})
}

func TestDOCDecoder_Available(t *testing.T) {
	missing := newDOCDecoder(func(string) (string, error) { return "", exec.ErrNotFound })
	assert.ErrorIs(t, missing.Available(), exec.ErrNotFound)
	assert.Equal(t, "antiword", missing.Requires())

	present := newDOCDecoder(func(string) (string, error) { return "/usr/bin/antiword", nil })
	assert.NoError(t, present.Available())
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, paragraphs("  a \n\n\n b c\n"))
	assert.Empty(t, paragraphs(""))
}
