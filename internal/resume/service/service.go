package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/fields"
	"github.com/resumeparser/resume-parser-backend/internal/resume/ner"
	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/httputil"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

// PreviewLength is how much raw text a record carries
const PreviewLength = 1000

// Extractor turns a document into plain text
type Extractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
}

// EventPublisher announces finished parses. Implementations handle their
// own failures.
type EventPublisher interface {
	PublishResumeParsed(ctx context.Context, record *domain.ResumeRecord)
}

// Service runs the parse pipeline: extract → normalize → field extractors → record
type Service struct {
	extractor  Extractor
	recognizer ner.Recognizer
	events     EventPublisher
	lexicon    *fields.Lexicon
	normalize  func(string) string
	version    string
	workers    int
	log        *logger.Logger
}

// NewService creates a new resume parsing service. recognizer and events may be nil.
func NewService(ext Extractor, recognizer ner.Recognizer, events EventPublisher, cfg config.ParserConfig, log *logger.Logger) *Service {
	normalize := fields.Normalize
	if cfg.PreserveLineBreaks {
		normalize = fields.NormalizeLines
	}

	workers := cfg.BatchWorkers
	if workers < 1 {
		workers = 1
	}

	return &Service{
		extractor:  ext,
		recognizer: recognizer,
		events:     events,
		lexicon:    fields.DefaultLexicon(),
		normalize:  normalize,
		version:    cfg.Version,
		workers:    workers,
		log:        log.WithComponent("resume_service"),
	}
}

// Parse builds a ResumeRecord from one document. Extraction errors are
// returned unchanged. doc.Data is zeroed once text extraction has finished,
// whether or not it succeeded.
func (s *Service) Parse(ctx context.Context, doc domain.Document) (*domain.ResumeRecord, error) {
	start := time.Now()
	log := s.log.WithFilename(doc.Filename)
	if requestID := httputil.GetRequestID(ctx); requestID != "" {
		log = log.WithRequestID(requestID)
	}

	raw, err := s.extractor.Extract(ctx, doc.Data, doc.MIMEType)
	ZeroBytes(doc.Data)
	if err != nil {
		log.Warn().Err(err).Str("mime_type", doc.MIMEType).Msg("text extraction failed")
		return nil, err
	}

	text := s.normalize(raw)

	record := &domain.ResumeRecord{
		PersonalInfo:   fields.PersonalInfo(ctx, text, s.recognizer, log),
		ContactInfo:    fields.ContactInfo(text),
		Skills:         fields.Skills(text, s.lexicon),
		Education:      fields.Education(text),
		Experience:     fields.Experience(text),
		Summary:        fields.Summary(text),
		RawTextPreview: fields.Preview(raw, PreviewLength),
		Metadata: domain.Metadata{
			Filename:            doc.Filename,
			MIMEType:            doc.MIMEType,
			ExtractionTimestamp: time.Now().UTC().Format(time.RFC3339),
			TextLength:          utf8.RuneCountInString(raw),
			ParserVersion:       s.version,
		},
	}

	if s.events != nil {
		s.events.PublishResumeParsed(ctx, record)
	}

	log.Info().
		Int("text_length", record.Metadata.TextLength).
		Int("skills_found", record.Skills.TotalSkillsFound).
		Str("experience_level", string(record.Experience.ExperienceLevel)).
		Dur("duration", time.Since(start)).
		Msg("resume parsed")

	return record, nil
}

// ZeroBytes overwrites b so uploaded documents do not linger in memory
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
