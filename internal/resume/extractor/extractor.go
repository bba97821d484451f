package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

// Decoder turns a document into text blocks (pages or paragraphs).
// Implementations must not retain data after Decode returns.
type Decoder interface {
	// Name returns the decoder name for logging and the health report
	Name() string

	// MIMETypes returns the content types this decoder handles
	MIMETypes() []string

	Decode(ctx context.Context, data []byte) ([]string, error)
}

// Checker is implemented by decoders that depend on something outside the
// process, such as an external binary. A non-nil error marks the decoder
// unavailable; Requires names what is missing.
type Checker interface {
	Available() error
	Requires() string
}

// Capability reports whether a MIME type can currently be decoded
type Capability struct {
	MIMEType  string `json:"mime_type"`
	Decoder   string `json:"decoder,omitempty"`
	Available bool   `json:"available"`
	Missing   string `json:"missing,omitempty"`
}

// Registry dispatches documents to decoders by MIME type. It is built once
// at startup and read-only afterwards.
type Registry struct {
	decoders map[string]Decoder
	missing  map[string]string
}

// NewRegistry registers decoders in order; the first decoder for a MIME type wins.
// Decoders implementing Checker that report themselves unavailable are recorded but never called.
func NewRegistry(log *logger.Logger, decoders ...Decoder) *Registry {
	r := &Registry{
		decoders: make(map[string]Decoder),
		missing:  make(map[string]string),
	}

	for _, d := range decoders {
		if p, ok := d.(Checker); ok {
			if err := p.Available(); err != nil {
				log.Warn().Err(err).
					Str("decoder", d.Name()).
					Str("missing", p.Requires()).
					Msg("decoder unavailable")
				for _, t := range d.MIMETypes() {
					if _, taken := r.decoders[t]; !taken {
						r.missing[t] = p.Requires()
					}
				}
				continue
			}
		}

		for _, t := range d.MIMETypes() {
			if _, taken := r.decoders[t]; taken {
				continue
			}
			r.decoders[t] = d
			delete(r.missing, t)
		}
		log.Debug().Str("decoder", d.Name()).Strs("mime_types", d.MIMETypes()).Msg("decoder registered")
	}

	return r
}

// NewDefaultRegistry registers the PDF, DOCX and DOC decoders
func NewDefaultRegistry(log *logger.Logger) *Registry {
	return NewRegistry(log, NewPDFDecoder(), NewDOCXDecoder(), NewDOCDecoder())
}

// Extract returns the plain text of data. Non-empty blocks are joined with a
// newline and the result is trimmed.
func (r *Registry) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	if !domain.IsSupportedMIMEType(mimeType) {
		return "", &Error{Kind: ErrUnsupportedFormat, MIMEType: mimeType}
	}

	d, ok := r.decoders[mimeType]
	if !ok {
		capability := r.missing[mimeType]
		if capability == "" {
			capability = "decoder"
		}
		return "", &Error{Kind: ErrDecoderUnavailable, MIMEType: mimeType, Capability: capability}
	}

	blocks, err := safeDecode(ctx, d, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &Error{Kind: ErrExtractionFailed, MIMEType: mimeType, Err: err}
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b) == "" {
			continue
		}
		parts = append(parts, b)
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// Capabilities lists every supported MIME type with its decoder status
func (r *Registry) Capabilities() []Capability {
	caps := make([]Capability, 0, len(domain.SupportedMIMETypes))
	for _, t := range domain.SupportedMIMETypes {
		c := Capability{MIMEType: t}
		if d, ok := r.decoders[t]; ok {
			c.Decoder = d.Name()
			c.Available = true
		} else if m, ok := r.missing[t]; ok {
			c.Missing = m
		} else {
			c.Missing = "decoder"
		}
		caps = append(caps, c)
	}
	return caps
}

// Third-party decoders panic on some malformed inputs.
func safeDecode(ctx context.Context, d Decoder, data []byte) (blocks []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s decoder panicked: %v", d.Name(), rec)
		}
	}()
	return d.Decode(ctx, data)
}
