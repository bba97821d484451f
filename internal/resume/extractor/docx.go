package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

// DOCXDecoder extracts paragraphs from Office Open XML documents
type DOCXDecoder struct{}

func NewDOCXDecoder() *DOCXDecoder {
	return &DOCXDecoder{}
}

func (d *DOCXDecoder) Name() string { return "docx" }

func (d *DOCXDecoder) MIMETypes() []string { return []string{domain.MIMETypeDOCX} }

func (d *DOCXDecoder) Decode(ctx context.Context, data []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("convert docx: %w", err)
	}

	return paragraphs(text), nil
}

func paragraphs(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
