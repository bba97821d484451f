package extractor

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrDecoderUnavailable = errors.New("decoder unavailable")
	ErrExtractionFailed   = errors.New("extraction failed")
)

// Error describes a failed extraction. It matches its Kind sentinel with
// errors.Is and unwraps to the decoder's own error.
type Error struct {
	Kind       error
	MIMEType   string
	Capability string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrDecoderUnavailable && e.Capability != "":
		return fmt.Sprintf("%v: %s (%s missing)", e.Kind, e.MIMEType, e.Capability)
	case e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.MIMEType, e.Err)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.MIMEType)
	}
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
