package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure so callers can choose a policy (abort, log, retry) per class.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindIO
	KindService
	KindMetadata
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	case KindService:
		return "service"
	case KindMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey    = New(KindConfig, "API key is required")
	ErrInvalidAPIKey    = New(KindConfig, "invalid API key format")
	ErrInvalidConfig    = New(KindConfig, "invalid configuration")
	ErrProviderNotFound = New(KindConfig, "provider not found")

	// File errors
	ErrFileOpenFailed  = New(KindIO, "file open failed")
	ErrFileWriteFailed = New(KindIO, "file write failed")
	ErrDirectoryFailed = New(KindIO, "directory access failed")

	// Transcription service errors
	ErrRequestFailed   = New(KindService, "request failed")
	ErrResponseInvalid = New(KindService, "invalid response")

	// Audio metadata errors
	ErrDurationUnavailable = New(KindMetadata, "audio duration unavailable")
)

// Error represents a classified error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, message: message, cause: err}
}

// Wrapf wraps an error with a kind and formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), cause: err}
}

// WithCause returns a copy of a sentinel carrying cause, so errors.Is still matches the sentinel.
func (e *Error) WithCause(cause error) *Error {
	return &Error{kind: e.kind, message: e.message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure class
func (e *Error) Kind() Kind {
	return e.kind
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf returns the kind of the outermost classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// Ensure classifies err as kind unless it already carries a classification.
func Ensure(err error, kind Kind, message string) error {
	if err == nil || KindOf(err) != KindUnknown {
		return err
	}
	return Wrap(err, kind, message)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf(KindConfig, "%s is invalid: %s", field, reason)
}
