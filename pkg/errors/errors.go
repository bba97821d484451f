package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/resumeparser/resume-parser-backend/pkg/i18n"
)

// Standard error types
var (
	ErrBadRequest        = errors.New("bad request")
	ErrInternal          = errors.New("internal server error")
	ErrValidation        = errors.New("validation error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrUnavailable       = errors.New("capability unavailable")
	ErrUnprocessable     = errors.New("unprocessable document")
)

// AppError represents an application error with context
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	MessageKey string            `json:"-"` // i18n key for localization
	Params     map[string]string `json:"-"` // Parameters for i18n interpolation
	Code       string            `json:"code"`
	StatusCode int               `json:"status_code"`
	Details    map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Localize returns a localized version of the error message
func (e *AppError) Localize(ctx context.Context) string {
	if e.MessageKey == "" {
		return e.Message
	}
	return i18n.TFromContext(ctx, e.MessageKey, e.Params)
}

// WithCause records the underlying error without changing the message
func (e *AppError) WithCause(err error) *AppError {
	e.Err = errors.Join(e.Err, err)
	return e
}

// Common error constructors

func BadRequest(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
		MessageKey: "errors.bad_request",
		StatusCode: http.StatusBadRequest,
	}
}

// BadRequestWithKey creates a bad request error whose message comes from the catalog
func BadRequestWithKey(messageKey string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "BAD_REQUEST",
		Message:    i18n.T(messageKey),
		MessageKey: messageKey,
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(message string) *AppError {
	return &AppError{
		Err:        ErrInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		MessageKey: "errors.internal",
		StatusCode: http.StatusInternalServerError,
	}
}

func Validation(details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Code:       "VALIDATION_ERROR",
		Message:    "validation failed",
		MessageKey: "errors.validation_failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

// Resume upload and extraction errors

// UnsupportedFormat is returned for content types other than PDF, DOC and DOCX.
func UnsupportedFormat(contentType string) *AppError {
	params := map[string]string{"content_type": contentType}
	return &AppError{
		Err:        ErrUnsupportedFormat,
		Code:       "UNSUPPORTED_FORMAT",
		Message:    i18n.T("errors.unsupported_format", params),
		MessageKey: "errors.unsupported_format",
		Params:     params,
		StatusCode: http.StatusBadRequest,
	}
}

// FileTooLarge is returned when an upload exceeds the configured size limit.
func FileTooLarge(maxBytes int64) *AppError {
	params := map[string]string{"max_size": formatMB(maxBytes)}
	return &AppError{
		Err:        ErrPayloadTooLarge,
		Code:       "FILE_TOO_LARGE",
		Message:    i18n.T("errors.file_too_large", params),
		MessageKey: "errors.file_too_large",
		Params:     params,
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// TooManyFiles is returned when a batch holds more files than allowed.
func TooManyFiles(maxFiles int) *AppError {
	params := map[string]string{"max_files": fmt.Sprint(maxFiles)}
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "TOO_MANY_FILES",
		Message:    i18n.T("errors.too_many_files", params),
		MessageKey: "errors.too_many_files",
		Params:     params,
		StatusCode: http.StatusBadRequest,
	}
}

// DecoderUnavailable is returned when the decoder for a supported format is not installed.
func DecoderUnavailable(contentType, capability string) *AppError {
	params := map[string]string{"content_type": contentType, "capability": capability}
	return &AppError{
		Err:        ErrUnavailable,
		Code:       "DECODER_UNAVAILABLE",
		Message:    i18n.T("errors.decoder_unavailable", params),
		MessageKey: "errors.decoder_unavailable",
		Params:     params,
		StatusCode: http.StatusServiceUnavailable,
	}
}

// ExtractionFailed is returned when a document is corrupt or unreadable.
func ExtractionFailed(filename string) *AppError {
	params := map[string]string{"filename": filename}
	return &AppError{
		Err:        ErrUnprocessable,
		Code:       "EXTRACTION_FAILED",
		Message:    i18n.T("errors.extraction_failed", params),
		MessageKey: "errors.extraction_failed",
		Params:     params,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func formatMB(n int64) string {
	if n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}

// Is checks if the error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target any) bool {
	return errors.As(err, target)
}
