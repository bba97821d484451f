package events

import (
	"context"
	"time"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/pkg/httputil"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
	"github.com/resumeparser/resume-parser-backend/pkg/messaging"
)

const sourceName = "resume-service"

type publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// ResumeEventPublisher publishes resume-related events
type ResumeEventPublisher struct {
	publisher publisher
	logger    *logger.Logger
}

// NewResumeEventPublisher declares the resume exchange and returns a publisher on it
func NewResumeEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*ResumeEventPublisher, error) {
	p, err := messaging.NewPublisher(rmq, messaging.ExchangeResumeEvents, sourceName, log)
	if err != nil {
		return nil, err
	}

	return &ResumeEventPublisher{
		publisher: p,
		logger:    log,
	}, nil
}

// PublishResumeParsed publishes a resume parsed event. Only counts and
// classifications leave the service; extracted contact data does not.
func (p *ResumeEventPublisher) PublishResumeParsed(ctx context.Context, record *domain.ResumeRecord) {
	data := parsedEvent(record)
	if requestID := httputil.GetRequestID(ctx); requestID != "" {
		ctx = messaging.WithCorrelationID(ctx, requestID)
	}

	if err := p.publisher.Publish(ctx, messaging.EventResumeParsed, data); err != nil {
		p.logger.Error().Err(err).Str("filename", record.Metadata.Filename).Msg("failed to publish resume parsed event")
	}
}

func parsedEvent(record *domain.ResumeRecord) messaging.ResumeParsedEvent {
	return messaging.ResumeParsedEvent{
		Filename:        record.Metadata.Filename,
		MIMEType:        record.Metadata.MIMEType,
		TextLength:      record.Metadata.TextLength,
		SkillsFound:     record.Skills.TotalSkillsFound,
		ExperienceLevel: string(record.Experience.ExperienceLevel),
		ParsedAt:        time.Now().UTC(),
	}
}
