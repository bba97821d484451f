package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"code.sajari.com/docconv"
	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
)

const antiwordBinary = "antiword"

// DOCDecoder handles legacy Word documents. docconv shells out to antiword,
// so the binary is looked up once when the decoder is created.
type DOCDecoder struct {
	lookErr error
}

func NewDOCDecoder() *DOCDecoder {
	return newDOCDecoder(exec.LookPath)
}

func newDOCDecoder(lookPath func(string) (string, error)) *DOCDecoder {
	_, err := lookPath(antiwordBinary)
	return &DOCDecoder{lookErr: err}
}

func (d *DOCDecoder) Name() string { return "doc" }

func (d *DOCDecoder) MIMETypes() []string { return []string{domain.MIMETypeDOC} }

func (d *DOCDecoder) Available() error {
	if d.lookErr != nil {
		return fmt.Errorf("%s not found: %w", antiwordBinary, d.lookErr)
	}
	return nil
}

func (d *DOCDecoder) Requires() string { return antiwordBinary }

func (d *DOCDecoder) Decode(ctx context.Context, data []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, _, err := docconv.ConvertDoc(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("convert doc: %w", err)
	}

	return paragraphs(text), nil
}
