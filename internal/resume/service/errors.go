package service

import (
	"context"

	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/resumeparser/resume-parser-backend/pkg/errors"
)

// ClassifyError maps pipeline errors onto API errors
func ClassifyError(err error, doc domain.Document) *errors.AppError {
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var extErr *extractor.Error
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return errors.UnsupportedFormat(doc.MIMEType)
	case errors.Is(err, extractor.ErrDecoderUnavailable):
		capability := ""
		if errors.As(err, &extErr) {
			capability = extErr.Capability
		}
		return errors.DecoderUnavailable(doc.MIMEType, capability).WithCause(err)
	case errors.Is(err, extractor.ErrExtractionFailed):
		return errors.ExtractionFailed(doc.Filename).WithCause(err)
	default:
		return errors.Internal("failed to parse resume").WithCause(err)
	}
}

// ErrorItem renders err as a failed batch entry in the request's locale
func ErrorItem(ctx context.Context, filename string, err *errors.AppError) domain.BatchItem {
	return domain.BatchItem{
		Filename:  filename,
		Status:    domain.BatchError,
		Message:   err.Localize(ctx),
		ErrorCode: err.Code,
	}
}
